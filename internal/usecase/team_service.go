package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pitchside/clubadmin/internal/domain/scope"
	"github.com/pitchside/clubadmin/internal/domain/team"
	"github.com/pitchside/clubadmin/internal/platform/id"
)

type CreateTeamInput struct {
	Name  string
	Short string
}

type UpdateTeamInput struct {
	Name  string
	Short string
}

type TeamService struct {
	repo      team.Repository
	hierarchy *HierarchyService
	ids       id.Generator
	notifier  EventNotifier
	now       func() time.Time
}

func NewTeamService(repo team.Repository, hierarchy *HierarchyService, ids id.Generator, notifier EventNotifier) *TeamService {
	if notifier == nil {
		notifier = NewNoopEventNotifier()
	}
	return &TeamService{repo: repo, hierarchy: hierarchy, ids: ids, notifier: notifier, now: time.Now}
}

func (s *TeamService) ListByAgeGroup(ctx context.Context, clubID, ageGroupID string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListByAgeGroup")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, "")
	if err != nil {
		return nil, err
	}

	teams, err := s.repo.ListByAgeGroup(ctx, path.AgeGroup.ID)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return teams, nil
}

func (s *TeamService) Get(ctx context.Context, clubID, ageGroupID, teamID string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Get")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		return team.Team{}, err
	}

	return *path.Team, nil
}

// Create adds a team under an age group. Blocked while the age group is
// archived, regardless of the club's flag.
func (s *TeamService) Create(ctx context.Context, clubID, ageGroupID string, input CreateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Create")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, "")
	if err != nil {
		return team.Team{}, err
	}

	decision := scope.CanMutate(scope.ActionCreateChild, path.Ref, path.Ancestors(), path.AgeGroup.IsArchived)
	if !decision.Allowed {
		return team.Team{}, fmt.Errorf("%w: %s", ErrForbidden, decision.Reason)
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	t := team.Team{
		ID:         newID,
		ClubID:     path.Club.ID,
		AgeGroupID: path.AgeGroup.ID,
		Name:       strings.TrimSpace(input.Name),
		Short:      strings.TrimSpace(input.Short),
		UpdatedAt:  s.now().UTC(),
	}
	if err := t.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.repo.Upsert(ctx, t); err != nil {
		return team.Team{}, fmt.Errorf("save team: %w", err)
	}

	return t, nil
}

func (s *TeamService) Update(ctx context.Context, clubID, ageGroupID, teamID string, input UpdateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Update")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		return team.Team{}, err
	}

	t := *path.Team
	decision := scope.CanMutate(scope.ActionUpdate, path.Ref, path.Ancestors(), t.IsArchived)
	if !decision.Allowed {
		return team.Team{}, fmt.Errorf("%w: %s", ErrForbidden, decision.Reason)
	}

	t.Name = strings.TrimSpace(input.Name)
	t.Short = strings.TrimSpace(input.Short)
	t.UpdatedAt = s.now().UTC()
	if err := t.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.repo.Upsert(ctx, t); err != nil {
		return team.Team{}, fmt.Errorf("save team: %w", err)
	}

	return t, nil
}

func (s *TeamService) SetArchived(ctx context.Context, clubID, ageGroupID, teamID string, archived bool) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.SetArchived")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		return team.Team{}, err
	}

	t := *path.Team
	action := scope.ActionArchive
	if !archived {
		action = scope.ActionUnarchive
	}
	decision := scope.CanMutate(action, path.Ref, path.Ancestors(), t.IsArchived)
	if !decision.Allowed {
		return team.Team{}, fmt.Errorf("%w: %s", ErrForbidden, decision.Reason)
	}

	t.IsArchived = archived
	t.UpdatedAt = s.now().UTC()
	if err := s.repo.Upsert(ctx, t); err != nil {
		return team.Team{}, fmt.Errorf("save team: %w", err)
	}

	s.notifier.NotifyArchiveChanged(ctx, ArchiveEvent{
		Resource:   "team",
		ClubID:     t.ClubID,
		ResourceID: t.ID,
		Archived:   archived,
	})

	return t, nil
}
