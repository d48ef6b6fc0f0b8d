package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pitchside/clubadmin/internal/domain/formation"
	"github.com/pitchside/clubadmin/internal/domain/scope"
	"github.com/pitchside/clubadmin/internal/domain/tactic"
	"github.com/pitchside/clubadmin/internal/platform/id"
)

type TacticInput struct {
	Name              string
	Category          string
	Description       string
	ParentFormationID string
	Attributes        []string
	Overrides         map[int]tactic.Override
}

type TacticService struct {
	repo          tactic.Repository
	formationRepo formation.Repository
	hierarchy     *HierarchyService
	ids           id.Generator
	now           func() time.Time
}

func NewTacticService(repo tactic.Repository, formationRepo formation.Repository, hierarchy *HierarchyService, ids id.Generator) *TacticService {
	return &TacticService{repo: repo, formationRepo: formationRepo, hierarchy: hierarchy, ids: ids, now: time.Now}
}

func (s *TacticService) ListScoped(ctx context.Context, clubID, ageGroupID, teamID string, filters ScopedListFilters) (scope.Result[tactic.Tactic], error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TacticService.ListScoped")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		return scope.Result[tactic.Tactic]{}, err
	}

	all, err := s.repo.ListByClub(ctx, path.Club.ID)
	if err != nil {
		return scope.Result[tactic.Tactic]{}, fmt.Errorf("list tactics: %w", err)
	}

	active := make([]tactic.Tactic, 0, len(all))
	for _, t := range all {
		if !t.IsArchived {
			active = append(active, t)
		}
	}

	return scope.Resolve(active, path.Ref, filters.toScopeFilters()), nil
}

func (s *TacticService) Get(ctx context.Context, clubID, ageGroupID, teamID, tacticID string) (tactic.Tactic, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TacticService.Get")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		return tactic.Tactic{}, err
	}

	t, ok, err := s.repo.GetByID(ctx, strings.TrimSpace(tacticID))
	if err != nil {
		return tactic.Tactic{}, fmt.Errorf("get tactic: %w", err)
	}
	if !ok || !t.Scope.VisibleAt(path.Ref) {
		return tactic.Tactic{}, fmt.Errorf("%w: tactic %q", ErrNotFound, tacticID)
	}

	return t, nil
}

// Create authors a tactic at the addressed scope. The parent formation must
// exist and the tactic inherits its squad size.
func (s *TacticService) Create(ctx context.Context, clubID, ageGroupID, teamID string, input TacticInput) (tactic.Tactic, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TacticService.Create")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		return tactic.Tactic{}, err
	}

	decision := scope.CanMutate(scope.ActionCreateChild, path.Ref, path.Ancestors(), path.DeepestArchived())
	if !decision.Allowed {
		return tactic.Tactic{}, fmt.Errorf("%w: %s", ErrForbidden, decision.Reason)
	}

	f, err := s.parentFormation(ctx, input.ParentFormationID)
	if err != nil {
		return tactic.Tactic{}, err
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return tactic.Tactic{}, fmt.Errorf("generate tactic id: %w", err)
	}

	t := tactic.Tactic{
		ID:                newID,
		Name:              strings.TrimSpace(input.Name),
		Category:          strings.TrimSpace(input.Category),
		Description:       strings.TrimSpace(input.Description),
		Scope:             path.Ref,
		SquadSize:         f.SquadSize,
		ParentFormationID: f.ID,
		Overrides:         input.Overrides,
		Attributes:        normalizeAttributeCodes(input.Attributes),
		UpdatedAt:         s.now().UTC(),
	}
	if err := t.Validate(); err != nil {
		return tactic.Tactic{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.repo.Upsert(ctx, t); err != nil {
		return tactic.Tactic{}, fmt.Errorf("save tactic: %w", err)
	}

	return t, nil
}

func (s *TacticService) Update(ctx context.Context, clubID, ageGroupID, teamID, tacticID string, input TacticInput) (tactic.Tactic, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TacticService.Update")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		return tactic.Tactic{}, err
	}

	t, err := s.Get(ctx, clubID, ageGroupID, teamID, tacticID)
	if err != nil {
		return tactic.Tactic{}, err
	}
	if !t.Scope.Equal(path.Ref) {
		return tactic.Tactic{}, fmt.Errorf("%w: tactic %q is defined at %s", ErrForbidden, tacticID, t.Scope)
	}

	decision := scope.CanMutate(scope.ActionUpdate, path.Ref, path.Ancestors(), t.IsArchived)
	if !decision.Allowed {
		return tactic.Tactic{}, fmt.Errorf("%w: %s", ErrForbidden, decision.Reason)
	}

	f, err := s.parentFormation(ctx, input.ParentFormationID)
	if err != nil {
		return tactic.Tactic{}, err
	}

	t.Name = strings.TrimSpace(input.Name)
	t.Category = strings.TrimSpace(input.Category)
	t.Description = strings.TrimSpace(input.Description)
	t.SquadSize = f.SquadSize
	t.ParentFormationID = f.ID
	t.Overrides = input.Overrides
	t.Attributes = normalizeAttributeCodes(input.Attributes)
	t.UpdatedAt = s.now().UTC()
	if err := t.Validate(); err != nil {
		return tactic.Tactic{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.repo.Upsert(ctx, t); err != nil {
		return tactic.Tactic{}, fmt.Errorf("save tactic: %w", err)
	}

	return t, nil
}

func (s *TacticService) SetArchived(ctx context.Context, clubID, ageGroupID, teamID, tacticID string, archived bool) (tactic.Tactic, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TacticService.SetArchived")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		return tactic.Tactic{}, err
	}

	t, err := s.Get(ctx, clubID, ageGroupID, teamID, tacticID)
	if err != nil {
		return tactic.Tactic{}, err
	}
	if !t.Scope.Equal(path.Ref) {
		return tactic.Tactic{}, fmt.Errorf("%w: tactic %q is defined at %s", ErrForbidden, tacticID, t.Scope)
	}

	action := scope.ActionArchive
	if !archived {
		action = scope.ActionUnarchive
	}
	decision := scope.CanMutate(action, path.Ref, path.Ancestors(), t.IsArchived)
	if !decision.Allowed {
		return tactic.Tactic{}, fmt.Errorf("%w: %s", ErrForbidden, decision.Reason)
	}

	t.IsArchived = archived
	t.UpdatedAt = s.now().UTC()
	if err := s.repo.Upsert(ctx, t); err != nil {
		return tactic.Tactic{}, fmt.Errorf("save tactic: %w", err)
	}

	return t, nil
}

// ResolvePositions merges a tactic's sparse overrides onto its parent
// formation and returns the full per-slot layout. A tactic whose stored
// squad size no longer matches its parent formation is rejected rather than
// resolved against inconsistent data.
func (s *TacticService) ResolvePositions(ctx context.Context, clubID, ageGroupID, teamID, tacticID string) ([]tactic.ResolvedPosition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TacticService.ResolvePositions")
	defer span.End()

	t, err := s.Get(ctx, clubID, ageGroupID, teamID, tacticID)
	if err != nil {
		return nil, err
	}

	f, err := s.parentFormation(ctx, t.ParentFormationID)
	if err != nil {
		return nil, err
	}
	if t.SquadSize != f.SquadSize {
		return nil, fmt.Errorf("%w: tactic squad size %d does not match formation %q squad size %d",
			ErrInvalidInput, t.SquadSize, f.ID, f.SquadSize)
	}

	return tactic.ResolvePositions(f, &t), nil
}

func (s *TacticService) parentFormation(ctx context.Context, formationID string) (formation.Formation, error) {
	formationID = strings.TrimSpace(formationID)
	if formationID == "" {
		return formation.Formation{}, fmt.Errorf("%w: parent formation id is required", ErrInvalidInput)
	}

	f, ok, err := s.formationRepo.GetByID(ctx, formationID)
	if err != nil {
		return formation.Formation{}, fmt.Errorf("get formation: %w", err)
	}
	if !ok {
		return formation.Formation{}, fmt.Errorf("%w: formation %q", ErrInvalidInput, formationID)
	}

	return f, nil
}
