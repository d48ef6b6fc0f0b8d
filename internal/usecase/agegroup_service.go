package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pitchside/clubadmin/internal/domain/agegroup"
	"github.com/pitchside/clubadmin/internal/domain/scope"
	"github.com/pitchside/clubadmin/internal/platform/id"
)

type CreateAgeGroupInput struct {
	Name      string
	BirthYear int
}

type UpdateAgeGroupInput struct {
	Name      string
	BirthYear int
}

type AgeGroupService struct {
	repo      agegroup.Repository
	hierarchy *HierarchyService
	ids       id.Generator
	notifier  EventNotifier
	now       func() time.Time
}

func NewAgeGroupService(repo agegroup.Repository, hierarchy *HierarchyService, ids id.Generator, notifier EventNotifier) *AgeGroupService {
	if notifier == nil {
		notifier = NewNoopEventNotifier()
	}
	return &AgeGroupService{repo: repo, hierarchy: hierarchy, ids: ids, notifier: notifier, now: time.Now}
}

func (s *AgeGroupService) ListByClub(ctx context.Context, clubID string) ([]agegroup.AgeGroup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AgeGroupService.ListByClub")
	defer span.End()

	if _, err := s.hierarchy.ResolveScope(ctx, clubID, "", ""); err != nil {
		return nil, err
	}

	groups, err := s.repo.ListByClub(ctx, strings.TrimSpace(clubID))
	if err != nil {
		return nil, fmt.Errorf("list age groups: %w", err)
	}

	return groups, nil
}

func (s *AgeGroupService) Get(ctx context.Context, clubID, ageGroupID string) (agegroup.AgeGroup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AgeGroupService.Get")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, "")
	if err != nil {
		return agegroup.AgeGroup{}, err
	}

	return *path.AgeGroup, nil
}

// Create adds an age group under a club. An archived club does not block
// creation; only the archive flag of the enclosing age group ever gates
// writes, and a club-level target has none.
func (s *AgeGroupService) Create(ctx context.Context, clubID string, input CreateAgeGroupInput) (agegroup.AgeGroup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AgeGroupService.Create")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, "", "")
	if err != nil {
		return agegroup.AgeGroup{}, err
	}

	decision := scope.CanMutate(scope.ActionCreateChild, path.Ref, path.Ancestors(), false)
	if !decision.Allowed {
		return agegroup.AgeGroup{}, fmt.Errorf("%w: %s", ErrForbidden, decision.Reason)
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return agegroup.AgeGroup{}, fmt.Errorf("generate age group id: %w", err)
	}

	g := agegroup.AgeGroup{
		ID:        newID,
		ClubID:    path.Club.ID,
		Name:      strings.TrimSpace(input.Name),
		BirthYear: input.BirthYear,
		UpdatedAt: s.now().UTC(),
	}
	if err := g.Validate(); err != nil {
		return agegroup.AgeGroup{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.repo.Upsert(ctx, g); err != nil {
		return agegroup.AgeGroup{}, fmt.Errorf("save age group: %w", err)
	}

	return g, nil
}

func (s *AgeGroupService) Update(ctx context.Context, clubID, ageGroupID string, input UpdateAgeGroupInput) (agegroup.AgeGroup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AgeGroupService.Update")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, "")
	if err != nil {
		return agegroup.AgeGroup{}, err
	}

	g := *path.AgeGroup
	decision := scope.CanMutate(scope.ActionUpdate, path.Ref, path.Ancestors(), g.IsArchived)
	if !decision.Allowed {
		return agegroup.AgeGroup{}, fmt.Errorf("%w: %s", ErrForbidden, decision.Reason)
	}

	g.Name = strings.TrimSpace(input.Name)
	g.BirthYear = input.BirthYear
	g.UpdatedAt = s.now().UTC()
	if err := g.Validate(); err != nil {
		return agegroup.AgeGroup{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.repo.Upsert(ctx, g); err != nil {
		return agegroup.AgeGroup{}, fmt.Errorf("save age group: %w", err)
	}

	return g, nil
}

func (s *AgeGroupService) SetArchived(ctx context.Context, clubID, ageGroupID string, archived bool) (agegroup.AgeGroup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AgeGroupService.SetArchived")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, "")
	if err != nil {
		return agegroup.AgeGroup{}, err
	}

	g := *path.AgeGroup
	action := scope.ActionArchive
	if !archived {
		action = scope.ActionUnarchive
	}
	decision := scope.CanMutate(action, path.Ref, path.Ancestors(), g.IsArchived)
	if !decision.Allowed {
		return agegroup.AgeGroup{}, fmt.Errorf("%w: %s", ErrForbidden, decision.Reason)
	}

	g.IsArchived = archived
	g.UpdatedAt = s.now().UTC()
	if err := s.repo.Upsert(ctx, g); err != nil {
		return agegroup.AgeGroup{}, fmt.Errorf("save age group: %w", err)
	}

	s.notifier.NotifyArchiveChanged(ctx, ArchiveEvent{
		Resource:   "age_group",
		ClubID:     g.ClubID,
		ResourceID: g.ID,
		Archived:   archived,
	})

	return g, nil
}
