package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pitchside/clubadmin/internal/domain/coach"
	"github.com/pitchside/clubadmin/internal/domain/scope"
	"github.com/pitchside/clubadmin/internal/platform/id"
)

type CoachInput struct {
	Name  string
	Role  string
	Email string
}

type CoachService struct {
	repo      coach.Repository
	hierarchy *HierarchyService
	ids       id.Generator
	now       func() time.Time
}

func NewCoachService(repo coach.Repository, hierarchy *HierarchyService, ids id.Generator) *CoachService {
	return &CoachService{repo: repo, hierarchy: hierarchy, ids: ids, now: time.Now}
}

func (s *CoachService) ListByTeam(ctx context.Context, clubID, ageGroupID, teamID string) ([]coach.Coach, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CoachService.ListByTeam")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		return nil, err
	}

	coaches, err := s.repo.ListByTeam(ctx, path.Team.ID)
	if err != nil {
		return nil, fmt.Errorf("list coaches: %w", err)
	}

	return coaches, nil
}

func (s *CoachService) Get(ctx context.Context, clubID, ageGroupID, teamID, coachID string) (coach.Coach, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CoachService.Get")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		return coach.Coach{}, err
	}

	c, ok, err := s.repo.GetByID(ctx, strings.TrimSpace(coachID))
	if err != nil {
		return coach.Coach{}, fmt.Errorf("get coach: %w", err)
	}
	if !ok || c.TeamID != path.Team.ID {
		return coach.Coach{}, fmt.Errorf("%w: coach %q", ErrNotFound, coachID)
	}

	return c, nil
}

func (s *CoachService) Create(ctx context.Context, clubID, ageGroupID, teamID string, input CoachInput) (coach.Coach, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CoachService.Create")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		return coach.Coach{}, err
	}

	decision := scope.CanMutate(scope.ActionCreateChild, path.Ref, path.Ancestors(), path.Team.IsArchived)
	if !decision.Allowed {
		return coach.Coach{}, fmt.Errorf("%w: %s", ErrForbidden, decision.Reason)
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return coach.Coach{}, fmt.Errorf("generate coach id: %w", err)
	}

	c := coach.Coach{
		ID:        newID,
		TeamID:    path.Team.ID,
		Name:      strings.TrimSpace(input.Name),
		Role:      strings.TrimSpace(input.Role),
		Email:     strings.TrimSpace(input.Email),
		UpdatedAt: s.now().UTC(),
	}
	if err := c.Validate(); err != nil {
		return coach.Coach{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.repo.Upsert(ctx, c); err != nil {
		return coach.Coach{}, fmt.Errorf("save coach: %w", err)
	}

	return c, nil
}

func (s *CoachService) Update(ctx context.Context, clubID, ageGroupID, teamID, coachID string, input CoachInput) (coach.Coach, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CoachService.Update")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		return coach.Coach{}, err
	}

	c, err := s.Get(ctx, clubID, ageGroupID, teamID, coachID)
	if err != nil {
		return coach.Coach{}, err
	}

	decision := scope.CanMutate(scope.ActionUpdate, path.Ref, path.Ancestors(), c.IsArchived)
	if !decision.Allowed {
		return coach.Coach{}, fmt.Errorf("%w: %s", ErrForbidden, decision.Reason)
	}

	c.Name = strings.TrimSpace(input.Name)
	c.Role = strings.TrimSpace(input.Role)
	c.Email = strings.TrimSpace(input.Email)
	c.UpdatedAt = s.now().UTC()
	if err := c.Validate(); err != nil {
		return coach.Coach{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.repo.Upsert(ctx, c); err != nil {
		return coach.Coach{}, fmt.Errorf("save coach: %w", err)
	}

	return c, nil
}

func (s *CoachService) SetArchived(ctx context.Context, clubID, ageGroupID, teamID, coachID string, archived bool) (coach.Coach, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CoachService.SetArchived")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		return coach.Coach{}, err
	}

	c, err := s.Get(ctx, clubID, ageGroupID, teamID, coachID)
	if err != nil {
		return coach.Coach{}, err
	}

	action := scope.ActionArchive
	if !archived {
		action = scope.ActionUnarchive
	}
	decision := scope.CanMutate(action, path.Ref, path.Ancestors(), c.IsArchived)
	if !decision.Allowed {
		return coach.Coach{}, fmt.Errorf("%w: %s", ErrForbidden, decision.Reason)
	}

	c.IsArchived = archived
	c.UpdatedAt = s.now().UTC()
	if err := s.repo.Upsert(ctx, c); err != nil {
		return coach.Coach{}, fmt.Errorf("save coach: %w", err)
	}

	return c, nil
}
