package pass

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodePayload_RoundTrip(t *testing.T) {
	req := &PassRequest{
		TeamID:           "GT-2026-4496",
		TeamName:         "RoboWarriors",
		EventName:        "RoboRumble 2026",
		CollegeName:      "Granite Tech",
		ParticipantName:  "Kate Marlowe",
		ParticipantEmail: "kate@example.com",
		ParticipantPhone: "+15550100",
		PaymentStatus:    "verified",
	}

	raw, err := EncodePayload(req)
	require.NoError(t, err)

	decoded, err := DecodePayload(raw)
	require.NoError(t, err)

	assert.Equal(t, req.TeamID, decoded.TeamID)
	assert.Equal(t, req.ParticipantName, decoded.Name)
	assert.Equal(t, req.TeamName, decoded.TeamName)
	assert.Equal(t, req.EventName, decoded.EventName)
	assert.Equal(t, req.CollegeName, decoded.CollegeName)
	assert.Equal(t, req.ParticipantEmail, decoded.Email)
	assert.Equal(t, req.ParticipantPhone, decoded.Phone)
	assert.Equal(t, req.PaymentStatus, decoded.PaymentStatus)
}

// The scanner is a separate consumer; the JSON keys are a wire contract.
func TestEncodePayload_FieldNames(t *testing.T) {
	raw, err := EncodePayload(&PassRequest{
		TeamID:           "GT-2026-4496",
		TeamName:         "RoboWarriors",
		EventName:        "RoboRumble 2026",
		CollegeName:      "Granite Tech",
		ParticipantName:  "Kate Marlowe",
		ParticipantEmail: "kate@example.com",
	})
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &fields))

	for _, key := range []string{"teamId", "name", "teamName", "eventName", "collegeName", "email"} {
		assert.Contains(t, fields, key)
	}
}

func TestEncodePayload_OmitsEmptyOptionalFields(t *testing.T) {
	raw, err := EncodePayload(&PassRequest{
		TeamID:           "GT-2026-4496",
		ParticipantName:  "Kate Marlowe",
		ParticipantEmail: "kate@example.com",
	})
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &fields))

	assert.NotContains(t, fields, "phone")
	assert.NotContains(t, fields, "paymentStatus")
}

func TestDecodePayload_Invalid(t *testing.T) {
	t.Run("not json", func(t *testing.T) {
		_, err := DecodePayload("not a payload")
		assert.Error(t, err)
	})

	t.Run("missing email join key", func(t *testing.T) {
		_, err := DecodePayload(`{"teamId":"GT-2026-4496","name":"Kate Marlowe"}`)
		assert.Error(t, err)
	})

	t.Run("missing team identifier", func(t *testing.T) {
		_, err := DecodePayload(`{"name":"Kate Marlowe","email":"kate@example.com"}`)
		assert.Error(t, err)
	})
}
