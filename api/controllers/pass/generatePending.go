package pass_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/kitfest-dev/event-pass-api/common"
	"github.com/kitfest-dev/event-pass-api/type/payload"
	"github.com/kitfest-dev/event-pass-api/type/response"
)

// defaultGenerateLimit caps teams processed per invocation so a scheduled
// trigger stays inside platform execution-time limits.
const defaultGenerateLimit = 5

// GeneratePending processes up to the configured number of paid teams that do
// not have passes yet. Per-team failures are logged and skipped.
func (ctrl *PassController) GeneratePending(c *fiber.Ctx) error {
	limit := defaultGenerateLimit
	if common.Config != nil && common.Config.GenerateLimit != nil && *common.Config.GenerateLimit > 0 {
		limit = *common.Config.GenerateLimit
	}

	teams, err := ctrl.teamRepo.ListPendingGeneration(limit)
	if err != nil {
		slog.Error("Pass GeneratePending list failed", "error", err)
		return response.SendInternalError(c, err)
	}

	results := make([]payload.GeneratePassResult, 0, len(teams))
	failedTeams := 0

	for _, team := range teams {
		result, runErr := ctrl.runner.RunForTeam(c.UserContext(), team.ID)
		if runErr != nil {
			slog.Error("Pass GeneratePending team batch failed", "error", runErr, "team_id", team.ID)
			failedTeams++
			continue
		}
		results = append(results, toGenerateResult(result))
	}

	slog.Info("Pass GeneratePending completed",
		"pending", len(teams),
		"processed", len(results),
		"failed", failedTeams)

	return response.SendSuccess(c, "Pending teams processed", map[string]any{
		"pending":   len(teams),
		"processed": len(results),
		"failed":    failedTeams,
		"results":   results,
	})
}
