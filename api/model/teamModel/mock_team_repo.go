package teammodel

import (
	"github.com/kitfest-dev/event-pass-api/type/shared/model"
)

// ITeamRepository defines the interface for team repository operations
type ITeamRepository interface {
	GetTeamWithMembers(teamID string) (*model.Team, error)
	MarkPassesGenerated(teamID string) error
	ListPendingGeneration(limit int) ([]*model.Team, error)
}

// Ensure TeamRepository implements ITeamRepository
var _ ITeamRepository = (*TeamRepository)(nil)

// MockTeamRepository is a mock implementation for testing
type MockTeamRepository struct {
	GetTeamWithMembersFunc    func(teamID string) (*model.Team, error)
	MarkPassesGeneratedFunc   func(teamID string) error
	ListPendingGenerationFunc func(limit int) ([]*model.Team, error)
}

// Ensure MockTeamRepository implements ITeamRepository
var _ ITeamRepository = (*MockTeamRepository)(nil)

// NewMockTeamRepository creates a new mock repository
func NewMockTeamRepository() *MockTeamRepository {
	return &MockTeamRepository{}
}

func (m *MockTeamRepository) GetTeamWithMembers(teamID string) (*model.Team, error) {
	if m.GetTeamWithMembersFunc != nil {
		return m.GetTeamWithMembersFunc(teamID)
	}
	return nil, nil
}

func (m *MockTeamRepository) MarkPassesGenerated(teamID string) error {
	if m.MarkPassesGeneratedFunc != nil {
		return m.MarkPassesGeneratedFunc(teamID)
	}
	return nil
}

func (m *MockTeamRepository) ListPendingGeneration(limit int) ([]*model.Team, error) {
	if m.ListPendingGenerationFunc != nil {
		return m.ListPendingGenerationFunc(limit)
	}
	return nil, nil
}
