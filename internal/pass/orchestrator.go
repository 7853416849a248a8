package pass

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sync"

	"github.com/kitfest-dev/event-pass-api/type/shared/model"
)

var (
	ErrTeamNotFound = errors.New("team not found")
	ErrTeamNotPaid  = errors.New("team has not completed payment")
)

// TeamStore is the narrow read/flag surface the orchestrator needs from the
// team repository.
type TeamStore interface {
	GetTeamWithMembers(teamID string) (*model.Team, error)
	MarkPassesGenerated(teamID string) error
}

type MemberStore interface {
	UpdatePassUrl(memberID string, url string) error
}

type PassRenderer interface {
	Render(req *PassRequest) ([]byte, error)
}

type Mailer interface {
	SendPassNotification(to string, teamName string, artifacts []*PublishedArtifact) error
}

// MailerFunc adapts a plain function to the Mailer interface.
type MailerFunc func(to string, teamName string, artifacts []*PublishedArtifact) error

func (f MailerFunc) SendPassNotification(to string, teamName string, artifacts []*PublishedArtifact) error {
	return f(to, teamName, artifacts)
}

type PublishedArtifact struct {
	MemberID string
	Name     string
	Email    string
	URL      string
}

type BatchResult struct {
	TeamID          string
	TeamCode        string
	TotalMembers    int
	Artifacts       []*PublishedArtifact
	Notified        bool
	MarkedGenerated bool
}

// Orchestrator drives pass generation for one team end to end: load, fan-out
// render+publish per member, fan-in, notify the captain once, flip the flag.
type Orchestrator struct {
	teams     TeamStore
	members   MemberStore
	renderer  PassRenderer
	publisher ArtifactPublisher
	mailer    Mailer
	strict    bool
}

// NewOrchestrator wires the batch pipeline. With strict=true the team is only
// marked generated when every member got an artifact, leaving partial batches
// eligible for retry; the default mirrors the reference behavior of marking
// after any full attempt.
func NewOrchestrator(teams TeamStore, members MemberStore, renderer PassRenderer, publisher ArtifactPublisher, mailer Mailer, strict bool) *Orchestrator {
	return &Orchestrator{
		teams:     teams,
		members:   members,
		renderer:  renderer,
		publisher: publisher,
		mailer:    mailer,
		strict:    strict,
	}
}

// RunForTeam processes the full member set of one team. Per-member failures
// are swallowed (logged, member omitted from the notification); the only
// errors returned are team lookup failures and the unpaid precondition.
func (o *Orchestrator) RunForTeam(ctx context.Context, teamID string) (*BatchResult, error) {
	team, err := o.teams.GetTeamWithMembers(teamID)
	if err != nil {
		return nil, err
	}

	if team == nil {
		return nil, ErrTeamNotFound
	}

	if !team.HasPaid {
		return nil, ErrTeamNotPaid
	}

	artifacts := o.generateAll(ctx, team)

	for _, artifact := range artifacts {
		if IsInlineURI(artifact.URL) {
			// Not a durable link, never persist it.
			continue
		}
		if err := o.members.UpdatePassUrl(artifact.MemberID, artifact.URL); err != nil {
			slog.Warn("Failed to record member pass URL",
				"error", err,
				"team_id", team.ID,
				"member_id", artifact.MemberID)
		}
	}

	result := &BatchResult{
		TeamID:       team.ID,
		TeamCode:     team.Code,
		TotalMembers: len(team.Members),
		Artifacts:    artifacts,
	}

	if len(team.Members) > 0 {
		if captain := team.Captain(); captain != nil {
			if err := o.mailer.SendPassNotification(captain.Email, team.Name, artifacts); err != nil {
				slog.Error("Pass notification send failed",
					"error", err,
					"team_id", team.ID,
					"recipient", captain.Email)
			} else {
				result.Notified = true
			}
		} else {
			slog.Warn("Team has no captain, skipping notification", "team_id", team.ID)
		}
	}

	allSucceeded := len(artifacts) == len(team.Members)
	if o.strict && !allSucceeded {
		slog.Warn("Partial pass generation, leaving team unmarked for retry",
			"team_id", team.ID,
			"generated", len(artifacts),
			"members", len(team.Members))
	} else {
		if err := o.teams.MarkPassesGenerated(team.ID); err != nil {
			slog.Error("Failed to mark team passes generated", "error", err, "team_id", team.ID)
		} else {
			result.MarkedGenerated = true
		}
	}

	slog.Info("Pass batch completed",
		"team_id", team.ID,
		"team_code", team.Code,
		"members", len(team.Members),
		"generated", len(artifacts),
		"notified", result.Notified,
		"marked", result.MarkedGenerated)

	return result, nil
}

type passJob struct {
	index  int
	member model.Member
}

// generateAll fans render+publish out across a small worker pool and fans in
// before returning. Failed members leave a nil slot that is filtered out, so
// one bad member never sinks the batch. Artifacts come back in roster order.
func (o *Orchestrator) generateAll(ctx context.Context, team *model.Team) []*PublishedArtifact {
	members := team.Members
	if len(members) == 0 {
		return []*PublishedArtifact{}
	}

	results := make([]*PublishedArtifact, len(members))
	jobs := make(chan passJob, len(members))

	numWorkers := min(runtime.NumCPU(), len(members))

	var wg sync.WaitGroup
	for range numWorkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				results[job.index] = o.generateOne(ctx, team, &job.member)
			}
		}()
	}

	for i, member := range members {
		jobs <- passJob{index: i, member: member}
	}
	close(jobs)
	wg.Wait()

	artifacts := make([]*PublishedArtifact, 0, len(members))
	for _, artifact := range results {
		if artifact != nil {
			artifacts = append(artifacts, artifact)
		}
	}
	return artifacts
}

func (o *Orchestrator) generateOne(ctx context.Context, team *model.Team, member *model.Member) *PublishedArtifact {
	eventName := ""
	if team.Event != nil {
		eventName = team.Event.Name
	}

	req := &PassRequest{
		TeamID:           team.Code,
		TeamName:         team.Name,
		EventName:        eventName,
		CollegeName:      team.CollegeName,
		ParticipantName:  member.Name,
		ParticipantEmail: member.Email,
		ParticipantPhone: member.Phone,
		PaymentStatus:    team.PaymentStatus,
	}

	image, err := o.renderer.Render(req)
	if err != nil {
		slog.Error("Pass render failed",
			"error", err,
			"team_id", team.ID,
			"member_id", member.ID,
			"participant", member.Name)
		return nil
	}

	url, err := o.publisher.Publish(ctx, image, member.Name, team.Code)
	if err != nil {
		slog.Error("Pass publish failed",
			"error", err,
			"team_id", team.ID,
			"member_id", member.ID,
			"participant", member.Name)
		return nil
	}

	return &PublishedArtifact{
		MemberID: member.ID,
		Name:     member.Name,
		Email:    member.Email,
		URL:      url,
	}
}
