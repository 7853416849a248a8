package membermodel

import (
	"errors"
	"log/slog"
	"time"

	"github.com/kitfest-dev/event-pass-api/type/shared/model"
	"gorm.io/gorm"
)

// MemberRepository handles member pass URLs and attendance state.
type MemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository with injected dependencies
func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// UpdatePassUrl records the durable pass URL on a member record.
func (r *MemberRepository) UpdatePassUrl(memberID string, url string) error {
	queryErr := r.db.Model(new(model.Member)).
		Where("id = ?", memberID).
		Update("pass_url", url).Error

	if queryErr != nil {
		slog.Error("Member UpdatePassUrl", "error", queryErr, "member_id", memberID)
		return queryErr
	}

	return nil
}

// FindByTeamCodeAndEmail resolves a scanned pass: the team by display code
// (full or prefix), then the member by email within that team. Both nil when
// nothing matches.
func (r *MemberRepository) FindByTeamCodeAndEmail(teamCode string, email string) (*model.Member, *model.Team, error) {
	team := new(model.Team)
	queryErr := r.db.
		Where("code = ? OR code LIKE ?", teamCode, teamCode+"%").
		First(team).Error

	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, nil, nil
		}
		slog.Error("Member FindByTeamCodeAndEmail team lookup", "error", queryErr, "team_code", teamCode)
		return nil, nil, queryErr
	}

	member := new(model.Member)
	queryErr = r.db.
		Where("team_id = ? AND email = ?", team.ID, email).
		First(member).Error

	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, nil, nil
		}
		slog.Error("Member FindByTeamCodeAndEmail member lookup", "error", queryErr, "team_id", team.ID, "email", email)
		return nil, nil, queryErr
	}

	return member, team, nil
}

// MarkAttended sets the attendance flag with the check-in timestamp.
func (r *MemberRepository) MarkAttended(memberID string) error {
	now := time.Now()
	queryErr := r.db.Model(new(model.Member)).
		Where("id = ?", memberID).
		Updates(map[string]any{
			"attended":    true,
			"attended_at": now,
		}).Error

	if queryErr != nil {
		slog.Error("Member MarkAttended", "error", queryErr, "member_id", memberID)
		return queryErr
	}

	return nil
}
