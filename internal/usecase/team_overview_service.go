package usecase

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/pitchside/clubadmin/internal/domain/coach"
	"github.com/pitchside/clubadmin/internal/domain/match"
	"github.com/pitchside/clubadmin/internal/domain/player"
	"github.com/pitchside/clubadmin/internal/domain/team"
	"github.com/pitchside/clubadmin/internal/domain/training"
)

// TeamOverview aggregates everything the team page shows in one response.
type TeamOverview struct {
	Team     team.Team
	Players  []player.Player
	Coaches  []coach.Coach
	Matches  []match.Match
	Sessions []training.Session
}

type TeamOverviewService struct {
	hierarchy    *HierarchyService
	playerRepo   player.Repository
	coachRepo    coach.Repository
	matchRepo    match.Repository
	trainingRepo training.Repository
}

func NewTeamOverviewService(
	hierarchy *HierarchyService,
	playerRepo player.Repository,
	coachRepo coach.Repository,
	matchRepo match.Repository,
	trainingRepo training.Repository,
) *TeamOverviewService {
	return &TeamOverviewService{
		hierarchy:    hierarchy,
		playerRepo:   playerRepo,
		coachRepo:    coachRepo,
		matchRepo:    matchRepo,
		trainingRepo: trainingRepo,
	}
}

// Get loads the team's members, fixtures and sessions in parallel. The first
// failing read cancels the rest.
func (s *TeamOverviewService) Get(ctx context.Context, clubID, ageGroupID, teamID string) (TeamOverview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamOverviewService.Get")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		return TeamOverview{}, err
	}

	overview := TeamOverview{Team: *path.Team}
	id := path.Team.ID

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		players, err := s.playerRepo.ListByTeam(ctx, id)
		if err != nil {
			return fmt.Errorf("list players: %w", err)
		}
		overview.Players = players
		return nil
	})
	p.Go(func(ctx context.Context) error {
		coaches, err := s.coachRepo.ListByTeam(ctx, id)
		if err != nil {
			return fmt.Errorf("list coaches: %w", err)
		}
		overview.Coaches = coaches
		return nil
	})
	p.Go(func(ctx context.Context) error {
		matches, err := s.matchRepo.ListByTeam(ctx, id)
		if err != nil {
			return fmt.Errorf("list matches: %w", err)
		}
		overview.Matches = matches
		return nil
	})
	p.Go(func(ctx context.Context) error {
		sessions, err := s.trainingRepo.ListByTeam(ctx, id)
		if err != nil {
			return fmt.Errorf("list training sessions: %w", err)
		}
		overview.Sessions = sessions
		return nil
	})

	if err := p.Wait(); err != nil {
		return TeamOverview{}, err
	}

	return overview, nil
}
