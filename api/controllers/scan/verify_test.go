package scan_controller_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scan_controller "github.com/kitfest-dev/event-pass-api/api/controllers/scan"
	membermodel "github.com/kitfest-dev/event-pass-api/api/model/memberModel"
	scanmodel "github.com/kitfest-dev/event-pass-api/api/model/scanModel"
	"github.com/kitfest-dev/event-pass-api/type/payload"
	"github.com/kitfest-dev/event-pass-api/type/shared/model"
)

const validQRPayload = `{"teamId":"GT-2026-4496","name":"Kate Marlowe","teamName":"RoboWarriors","eventName":"RoboRumble 2026","collegeName":"Granite Tech","email":"kate@example.com"}`

func setupScanApp(memberRepo membermodel.IMemberRepository, scanRepo scanmodel.IScanLogRepository) *fiber.App {
	app := fiber.New()
	ctrl := scan_controller.NewScanController(memberRepo, scanRepo)
	app.Post("/scan/verify", ctrl.Verify)
	return app
}

func sendVerify(t *testing.T, app *fiber.App, body payload.VerifyScanPayload) (int, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/scan/verify", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp.StatusCode, parsed
}

func matchedMemberRepo() *membermodel.MockMemberRepository {
	repo := membermodel.NewMockMemberRepository()
	repo.FindByTeamCodeAndEmailFunc = func(teamCode string, email string) (*model.Member, *model.Team, error) {
		member := &model.Member{
			ID:    "m-1",
			Name:  "Kate Marlowe",
			Email: "kate@example.com",
			Role:  model.RoleCaptain,
		}
		team := &model.Team{
			ID:            "team-4496",
			Code:          "GT-2026-4496",
			PaymentStatus: "verified",
		}
		return member, team, nil
	}
	return repo
}

func TestVerify_MatchedMember(t *testing.T) {
	memberRepo := matchedMemberRepo()
	scanRepo := scanmodel.NewMockScanLogRepository()
	var logged []*scanmodel.ScanRecord
	scanRepo.RecordFunc = func(record *scanmodel.ScanRecord) error {
		logged = append(logged, record)
		return nil
	}
	app := setupScanApp(memberRepo, scanRepo)

	status, body := sendVerify(t, app, payload.VerifyScanPayload{Payload: validQRPayload})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]any)
	assert.Equal(t, "Kate Marlowe", data["name"])
	assert.Equal(t, "GT-2026-4496", data["team_code"])
	assert.Equal(t, "verified", data["payment_status"])
	assert.Equal(t, false, data["checked_in"])

	require.Len(t, logged, 1)
	assert.Equal(t, scanmodel.ScanResultVerified, logged[0].Result)
	assert.False(t, logged[0].CheckedIn)
}

func TestVerify_CheckInMarksAttendance(t *testing.T) {
	memberRepo := matchedMemberRepo()
	var attended []string
	memberRepo.MarkAttendedFunc = func(memberID string) error {
		attended = append(attended, memberID)
		return nil
	}
	app := setupScanApp(memberRepo, scanmodel.NewMockScanLogRepository())

	status, body := sendVerify(t, app, payload.VerifyScanPayload{Payload: validQRPayload, CheckIn: true})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []string{"m-1"}, attended)

	data := body["data"].(map[string]any)
	assert.Equal(t, true, data["checked_in"])
	assert.Equal(t, true, data["attended"])
}

// A re-scan of an already attended member verifies but does not check in again.
func TestVerify_CheckInIdempotent(t *testing.T) {
	memberRepo := matchedMemberRepo()
	base := memberRepo.FindByTeamCodeAndEmailFunc
	memberRepo.FindByTeamCodeAndEmailFunc = func(teamCode string, email string) (*model.Member, *model.Team, error) {
		member, team, err := base(teamCode, email)
		member.Attended = true
		return member, team, err
	}
	markCalls := 0
	memberRepo.MarkAttendedFunc = func(memberID string) error {
		markCalls++
		return nil
	}
	app := setupScanApp(memberRepo, scanmodel.NewMockScanLogRepository())

	status, body := sendVerify(t, app, payload.VerifyScanPayload{Payload: validQRPayload, CheckIn: true})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 0, markCalls)

	data := body["data"].(map[string]any)
	assert.Equal(t, true, data["attended"])
	assert.Equal(t, false, data["checked_in"])
}

func TestVerify_UnmatchedMember(t *testing.T) {
	memberRepo := membermodel.NewMockMemberRepository()
	scanRepo := scanmodel.NewMockScanLogRepository()
	var logged []*scanmodel.ScanRecord
	scanRepo.RecordFunc = func(record *scanmodel.ScanRecord) error {
		logged = append(logged, record)
		return nil
	}
	app := setupScanApp(memberRepo, scanRepo)

	status, body := sendVerify(t, app, payload.VerifyScanPayload{Payload: validQRPayload})
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, false, body["success"])

	require.Len(t, logged, 1)
	assert.Equal(t, scanmodel.ScanResultUnmatched, logged[0].Result)
	assert.Equal(t, "GT-2026-4496", logged[0].TeamCode)
}

func TestVerify_UnreadablePayload(t *testing.T) {
	app := setupScanApp(membermodel.NewMockMemberRepository(), scanmodel.NewMockScanLogRepository())

	status, body := sendVerify(t, app, payload.VerifyScanPayload{Payload: "scribbles"})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
}

func TestVerify_MissingPayloadField(t *testing.T) {
	app := setupScanApp(membermodel.NewMockMemberRepository(), scanmodel.NewMockScanLogRepository())

	status, _ := sendVerify(t, app, payload.VerifyScanPayload{})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestVerify_LookupErrorIsInternal(t *testing.T) {
	memberRepo := membermodel.NewMockMemberRepository()
	memberRepo.FindByTeamCodeAndEmailFunc = func(teamCode string, email string) (*model.Member, *model.Team, error) {
		return nil, nil, errors.New("db down")
	}
	app := setupScanApp(memberRepo, scanmodel.NewMockScanLogRepository())

	status, _ := sendVerify(t, app, payload.VerifyScanPayload{Payload: validQRPayload})
	assert.Equal(t, fiber.StatusInternalServerError, status)
}

// Scan-log persistence is best-effort; a failing log never blocks the gate.
func TestVerify_ScanLogFailureIgnored(t *testing.T) {
	scanRepo := scanmodel.NewMockScanLogRepository()
	scanRepo.RecordFunc = func(record *scanmodel.ScanRecord) error {
		return errors.New("mongo unavailable")
	}
	app := setupScanApp(matchedMemberRepo(), scanRepo)

	status, body := sendVerify(t, app, payload.VerifyScanPayload{Payload: validQRPayload})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
}
