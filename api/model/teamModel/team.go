package teammodel

import (
	"errors"
	"log/slog"

	"github.com/kitfest-dev/event-pass-api/type/shared/model"
	"gorm.io/gorm"
)

// TeamRepository handles team lookups and the passes-generated flag.
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository with injected dependencies
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// GetTeamWithMembers loads a team by storage ID or display code, with its
// event and full member roster. Returns nil without error when not found.
func (r *TeamRepository) GetTeamWithMembers(teamID string) (*model.Team, error) {
	team := new(model.Team)
	queryErr := r.db.
		Preload("Event").
		Preload("Members").
		Where("id = ? OR code = ?", teamID, teamID).
		First(team).Error

	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("Team GetTeamWithMembers", "error", queryErr, "team_id", teamID)
		return nil, queryErr
	}

	return team, nil
}

// MarkPassesGenerated flips the team's passes_generated flag. Written exactly
// once per successful batch run.
func (r *TeamRepository) MarkPassesGenerated(teamID string) error {
	queryErr := r.db.Model(new(model.Team)).
		Where("id = ?", teamID).
		Update("passes_generated", true).Error

	if queryErr != nil {
		slog.Error("Team MarkPassesGenerated", "error", queryErr, "team_id", teamID)
		return queryErr
	}

	return nil
}

// ListPendingGeneration returns up to limit teams that have paid but do not
// have passes yet, oldest registration first.
func (r *TeamRepository) ListPendingGeneration(limit int) ([]*model.Team, error) {
	var teams []*model.Team
	queryErr := r.db.
		Where("has_paid = ? AND passes_generated = ?", true, false).
		Order("created_at").
		Limit(limit).
		Find(&teams).Error

	if queryErr != nil {
		slog.Error("Team ListPendingGeneration", "error", queryErr, "limit", limit)
		return nil, queryErr
	}

	return teams, nil
}
