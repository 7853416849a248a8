package pass_controller

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/kitfest-dev/event-pass-api/api/middleware"
	"github.com/kitfest-dev/event-pass-api/internal/pass"
	"github.com/kitfest-dev/event-pass-api/type/payload"
	"github.com/kitfest-dev/event-pass-api/type/response"
)

// Generate runs the pass batch for a single team.
func (ctrl *PassController) Generate(c *fiber.Ctx) error {
	teamId := c.Params("teamId")

	if teamId == "" {
		slog.Warn("Pass Generate attempt with empty team ID")
		return response.SendFailed(c, "Team ID is required")
	}

	if adminId, ok := middleware.GetAdminFromContext(c); ok {
		slog.Info("Pass Generate requested", "team_id", teamId, "admin_id", adminId)
	}

	result, err := ctrl.runner.RunForTeam(c.UserContext(), teamId)
	if err != nil {
		if errors.Is(err, pass.ErrTeamNotFound) {
			slog.Warn("Pass Generate team not found", "team_id", teamId)
			return response.SendNotFound(c, "Team not found")
		}
		if errors.Is(err, pass.ErrTeamNotPaid) {
			slog.Warn("Pass Generate attempted for unpaid team", "team_id", teamId)
			return response.SendFailed(c, "Team has not completed payment")
		}
		slog.Error("Pass Generate batch failed", "error", err, "team_id", teamId)
		return response.SendInternalError(c, err)
	}

	return response.SendSuccess(c, "Passes generated", toGenerateResult(result))
}

func toGenerateResult(result *pass.BatchResult) payload.GeneratePassResult {
	artifacts := make([]payload.GeneratedArtifact, 0, len(result.Artifacts))
	for _, artifact := range result.Artifacts {
		artifacts = append(artifacts, payload.GeneratedArtifact{
			MemberID: artifact.MemberID,
			Name:     artifact.Name,
			Email:    artifact.Email,
			URL:      artifact.URL,
		})
	}

	return payload.GeneratePassResult{
		TeamID:          result.TeamID,
		TeamCode:        result.TeamCode,
		TotalMembers:    result.TotalMembers,
		SuccessCount:    len(result.Artifacts),
		FailedCount:     result.TotalMembers - len(result.Artifacts),
		Artifacts:       artifacts,
		Notified:        result.Notified,
		MarkedGenerated: result.MarkedGenerated,
	}
}
