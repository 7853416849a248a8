package pass_controller

import (
	"context"

	teammodel "github.com/kitfest-dev/event-pass-api/api/model/teamModel"
	"github.com/kitfest-dev/event-pass-api/internal/pass"
)

// BatchRunner is the orchestrator surface the controller needs; mocked in tests.
type BatchRunner interface {
	RunForTeam(ctx context.Context, teamID string) (*pass.BatchResult, error)
}

// PassController handles pass-generation HTTP requests
type PassController struct {
	teamRepo teammodel.ITeamRepository
	runner   BatchRunner
}

// NewPassController creates a new pass controller with injected dependencies
func NewPassController(teamRepo teammodel.ITeamRepository, runner BatchRunner) *PassController {
	return &PassController{
		teamRepo: teamRepo,
		runner:   runner,
	}
}
