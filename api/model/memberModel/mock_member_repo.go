package membermodel

import (
	"github.com/kitfest-dev/event-pass-api/type/shared/model"
)

// IMemberRepository defines the interface for member repository operations
type IMemberRepository interface {
	UpdatePassUrl(memberID string, url string) error
	FindByTeamCodeAndEmail(teamCode string, email string) (*model.Member, *model.Team, error)
	MarkAttended(memberID string) error
}

// Ensure MemberRepository implements IMemberRepository
var _ IMemberRepository = (*MemberRepository)(nil)

// MockMemberRepository is a mock implementation for testing
type MockMemberRepository struct {
	UpdatePassUrlFunc          func(memberID string, url string) error
	FindByTeamCodeAndEmailFunc func(teamCode string, email string) (*model.Member, *model.Team, error)
	MarkAttendedFunc           func(memberID string) error
}

// Ensure MockMemberRepository implements IMemberRepository
var _ IMemberRepository = (*MockMemberRepository)(nil)

// NewMockMemberRepository creates a new mock repository
func NewMockMemberRepository() *MockMemberRepository {
	return &MockMemberRepository{}
}

func (m *MockMemberRepository) UpdatePassUrl(memberID string, url string) error {
	if m.UpdatePassUrlFunc != nil {
		return m.UpdatePassUrlFunc(memberID, url)
	}
	return nil
}

func (m *MockMemberRepository) FindByTeamCodeAndEmail(teamCode string, email string) (*model.Member, *model.Team, error) {
	if m.FindByTeamCodeAndEmailFunc != nil {
		return m.FindByTeamCodeAndEmailFunc(teamCode, email)
	}
	return nil, nil, nil
}

func (m *MockMemberRepository) MarkAttended(memberID string) error {
	if m.MarkAttendedFunc != nil {
		return m.MarkAttendedFunc(memberID)
	}
	return nil
}
