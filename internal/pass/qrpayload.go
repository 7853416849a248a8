package pass

import (
	"encoding/json"
	"fmt"
)

// QRPayload is the self-describing document embedded in every pass QR code.
// The attendance scanner joins on TeamID + Email, so both are mandatory.
// Field names are a wire contract shared with the scanning flow; renaming one
// breaks every pass already in circulation.
type QRPayload struct {
	TeamID        string `json:"teamId"`
	Name          string `json:"name"`
	TeamName      string `json:"teamName"`
	EventName     string `json:"eventName"`
	CollegeName   string `json:"collegeName"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	PaymentStatus string `json:"paymentStatus,omitempty"`
}

func EncodePayload(req *PassRequest) (string, error) {
	payload := QRPayload{
		TeamID:        req.TeamID,
		Name:          req.ParticipantName,
		TeamName:      req.TeamName,
		EventName:     req.EventName,
		CollegeName:   req.CollegeName,
		Email:         req.ParticipantEmail,
		Phone:         req.ParticipantPhone,
		PaymentStatus: req.PaymentStatus,
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode pass payload: %w", err)
	}

	return string(raw), nil
}

// DecodePayload parses a scanned QR payload and validates the join keys.
func DecodePayload(raw string) (*QRPayload, error) {
	payload := new(QRPayload)
	if err := json.Unmarshal([]byte(raw), payload); err != nil {
		return nil, fmt.Errorf("invalid pass payload: %w", err)
	}

	if payload.TeamID == "" || payload.Email == "" {
		return nil, fmt.Errorf("pass payload missing team identifier or email")
	}

	return payload, nil
}
