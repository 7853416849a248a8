package pass_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/kitfest-dev/event-pass-api/type/payload"
	"github.com/kitfest-dev/event-pass-api/type/response"
)

// Status reports whether a team is eligible for generation and which members
// already have a durable pass URL.
func (ctrl *PassController) Status(c *fiber.Ctx) error {
	teamId := c.Params("teamId")

	team, err := ctrl.teamRepo.GetTeamWithMembers(teamId)
	if err != nil {
		slog.Error("Pass Status lookup failed", "error", err, "team_id", teamId)
		return response.SendInternalError(c, err)
	}

	if team == nil {
		slog.Warn("Pass Status team not found", "team_id", teamId)
		return response.SendNotFound(c, "Team not found")
	}

	members := make([]payload.MemberPassStatus, 0, len(team.Members))
	for _, member := range team.Members {
		members = append(members, payload.MemberPassStatus{
			MemberID: member.ID,
			Name:     member.Name,
			Role:     member.Role,
			HasPass:  member.PassURL != "",
			PassURL:  member.PassURL,
		})
	}

	status := payload.TeamPassStatus{
		TeamID:          team.ID,
		TeamCode:        team.Code,
		HasPaid:         team.HasPaid,
		PassesGenerated: team.PassesGenerated,
		Members:         members,
	}

	return response.SendSuccess(c, "Team pass status", status)
}
