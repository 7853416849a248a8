package scan_controller

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	scanmodel "github.com/kitfest-dev/event-pass-api/api/model/scanModel"
	"github.com/kitfest-dev/event-pass-api/common/util"
	"github.com/kitfest-dev/event-pass-api/internal/pass"
	"github.com/kitfest-dev/event-pass-api/type/payload"
	"github.com/kitfest-dev/event-pass-api/type/response"
)

// Verify decodes a scanned QR payload and resolves the member it belongs to,
// joining on team code + participant email. With check_in set, the first
// successful scan also marks attendance. Every hit is written to the scan log.
func (ctrl *ScanController) Verify(c *fiber.Ctx) error {
	body := new(payload.VerifyScanPayload)
	if err := c.BodyParser(body); err != nil {
		return response.SendFailed(c, "Invalid request body")
	}

	if err := util.ValidateStruct(body); err != nil {
		return response.SendFailed(c, strings.Join(util.GetValidationErrors(err), ", "))
	}

	decoded, err := pass.DecodePayload(body.Payload)
	if err != nil {
		slog.Warn("Scan Verify unreadable payload", "error", err)
		return response.SendFailed(c, "Invalid or unreadable pass payload")
	}

	member, team, err := ctrl.memberRepo.FindByTeamCodeAndEmail(decoded.TeamID, decoded.Email)
	if err != nil {
		slog.Error("Scan Verify lookup failed", "error", err, "team_code", decoded.TeamID, "email", decoded.Email)
		return response.SendInternalError(c, err)
	}

	if member == nil {
		slog.Warn("Scan Verify no matching member", "team_code", decoded.TeamID, "email", decoded.Email)
		ctrl.logScan(&scanmodel.ScanRecord{
			TeamCode: decoded.TeamID,
			Email:    decoded.Email,
			Result:   scanmodel.ScanResultUnmatched,
		})
		return response.SendNotFound(c, "No member matches this pass")
	}

	checkedIn := false
	if body.CheckIn && !member.Attended {
		if markErr := ctrl.memberRepo.MarkAttended(member.ID); markErr != nil {
			slog.Error("Scan Verify check-in failed", "error", markErr, "member_id", member.ID)
		} else {
			member.Attended = true
			checkedIn = true
		}
	}

	ctrl.logScan(&scanmodel.ScanRecord{
		MemberID:  member.ID,
		TeamID:    team.ID,
		TeamCode:  team.Code,
		Email:     member.Email,
		Result:    scanmodel.ScanResultVerified,
		CheckedIn: checkedIn,
	})

	result := payload.VerifyScanResult{
		MemberID:      member.ID,
		Name:          member.Name,
		Email:         member.Email,
		Role:          member.Role,
		TeamID:        team.ID,
		TeamCode:      team.Code,
		PaymentStatus: team.PaymentStatus,
		Attended:      member.Attended,
		CheckedIn:     checkedIn,
	}

	return response.SendSuccess(c, "Pass verified", result)
}

// logScan is best-effort; a scan-log failure never blocks the gate.
func (ctrl *ScanController) logScan(record *scanmodel.ScanRecord) {
	if err := ctrl.scanRepo.Record(record); err != nil {
		slog.Warn("Scan Verify failed to write scan log", "error", err, "team_code", record.TeamCode)
	}
}
