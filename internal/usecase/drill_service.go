package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pitchside/clubadmin/internal/domain/drill"
	"github.com/pitchside/clubadmin/internal/domain/scope"
	"github.com/pitchside/clubadmin/internal/platform/id"
)

// ScopedListFilters carries the optional narrowing params of a scoped list
// request. Empty fields impose no constraint.
type ScopedListFilters struct {
	Category       string
	SearchTerm     string
	AttributeCodes []string
}

func (f ScopedListFilters) toScopeFilters() scope.Filters {
	return scope.Filters{
		Category:       f.Category,
		SearchTerm:     f.SearchTerm,
		AttributeCodes: f.AttributeCodes,
	}
}

type DrillInput struct {
	Name            string
	Category        string
	Description     string
	Attributes      []string
	DurationMinutes int
}

type DrillService struct {
	repo      drill.Repository
	hierarchy *HierarchyService
	ids       id.Generator
	now       func() time.Time
}

func NewDrillService(repo drill.Repository, hierarchy *HierarchyService, ids id.Generator) *DrillService {
	return &DrillService{repo: repo, hierarchy: hierarchy, ids: ids, now: time.Now}
}

// ListScoped returns the drills visible at the addressed scope, split into
// items defined there and items inherited from enclosing scopes. Archived
// drills are not listed.
func (s *DrillService) ListScoped(ctx context.Context, clubID, ageGroupID, teamID string, filters ScopedListFilters) (scope.Result[drill.Drill], error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DrillService.ListScoped")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		return scope.Result[drill.Drill]{}, err
	}

	all, err := s.repo.ListByClub(ctx, path.Club.ID)
	if err != nil {
		return scope.Result[drill.Drill]{}, fmt.Errorf("list drills: %w", err)
	}

	active := make([]drill.Drill, 0, len(all))
	for _, d := range all {
		if !d.IsArchived {
			active = append(active, d)
		}
	}

	return scope.Resolve(active, path.Ref, filters.toScopeFilters()), nil
}

func (s *DrillService) Get(ctx context.Context, clubID, ageGroupID, teamID, drillID string) (drill.Drill, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DrillService.Get")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		return drill.Drill{}, err
	}

	d, ok, err := s.repo.GetByID(ctx, strings.TrimSpace(drillID))
	if err != nil {
		return drill.Drill{}, fmt.Errorf("get drill: %w", err)
	}
	if !ok || !d.Scope.VisibleAt(path.Ref) {
		return drill.Drill{}, fmt.Errorf("%w: drill %q", ErrNotFound, drillID)
	}

	return d, nil
}

// Create authors a drill at the addressed scope. Creation under a team is
// blocked while the enclosing age group is archived.
func (s *DrillService) Create(ctx context.Context, clubID, ageGroupID, teamID string, input DrillInput) (drill.Drill, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DrillService.Create")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		return drill.Drill{}, err
	}

	decision := scope.CanMutate(scope.ActionCreateChild, path.Ref, path.Ancestors(), path.DeepestArchived())
	if !decision.Allowed {
		return drill.Drill{}, fmt.Errorf("%w: %s", ErrForbidden, decision.Reason)
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return drill.Drill{}, fmt.Errorf("generate drill id: %w", err)
	}

	d := drill.Drill{
		ID:              newID,
		Name:            strings.TrimSpace(input.Name),
		Category:        strings.TrimSpace(input.Category),
		Description:     strings.TrimSpace(input.Description),
		Scope:           path.Ref,
		Attributes:      normalizeAttributeCodes(input.Attributes),
		DurationMinutes: input.DurationMinutes,
		UpdatedAt:       s.now().UTC(),
	}
	if err := d.Validate(); err != nil {
		return drill.Drill{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.repo.Upsert(ctx, d); err != nil {
		return drill.Drill{}, fmt.Errorf("save drill: %w", err)
	}

	return d, nil
}

// Update modifies a drill through the scope it was defined at. The addressed
// path must equal the drill's definition scope; editing an inherited item
// from a descendant scope is not allowed.
func (s *DrillService) Update(ctx context.Context, clubID, ageGroupID, teamID, drillID string, input DrillInput) (drill.Drill, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DrillService.Update")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		return drill.Drill{}, err
	}

	d, err := s.Get(ctx, clubID, ageGroupID, teamID, drillID)
	if err != nil {
		return drill.Drill{}, err
	}
	if !d.Scope.Equal(path.Ref) {
		return drill.Drill{}, fmt.Errorf("%w: drill %q is defined at %s", ErrForbidden, drillID, d.Scope)
	}

	decision := scope.CanMutate(scope.ActionUpdate, path.Ref, path.Ancestors(), d.IsArchived)
	if !decision.Allowed {
		return drill.Drill{}, fmt.Errorf("%w: %s", ErrForbidden, decision.Reason)
	}

	d.Name = strings.TrimSpace(input.Name)
	d.Category = strings.TrimSpace(input.Category)
	d.Description = strings.TrimSpace(input.Description)
	d.Attributes = normalizeAttributeCodes(input.Attributes)
	d.DurationMinutes = input.DurationMinutes
	d.UpdatedAt = s.now().UTC()
	if err := d.Validate(); err != nil {
		return drill.Drill{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.repo.Upsert(ctx, d); err != nil {
		return drill.Drill{}, fmt.Errorf("save drill: %w", err)
	}

	return d, nil
}

func (s *DrillService) SetArchived(ctx context.Context, clubID, ageGroupID, teamID, drillID string, archived bool) (drill.Drill, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DrillService.SetArchived")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		return drill.Drill{}, err
	}

	d, err := s.Get(ctx, clubID, ageGroupID, teamID, drillID)
	if err != nil {
		return drill.Drill{}, err
	}
	if !d.Scope.Equal(path.Ref) {
		return drill.Drill{}, fmt.Errorf("%w: drill %q is defined at %s", ErrForbidden, drillID, d.Scope)
	}

	action := scope.ActionArchive
	if !archived {
		action = scope.ActionUnarchive
	}
	decision := scope.CanMutate(action, path.Ref, path.Ancestors(), d.IsArchived)
	if !decision.Allowed {
		return drill.Drill{}, fmt.Errorf("%w: %s", ErrForbidden, decision.Reason)
	}

	d.IsArchived = archived
	d.UpdatedAt = s.now().UTC()
	if err := s.repo.Upsert(ctx, d); err != nil {
		return drill.Drill{}, fmt.Errorf("save drill: %w", err)
	}

	return d, nil
}

// normalizeAttributeCodes trims, upper-cases and deduplicates codes while
// preserving first-seen order.
func normalizeAttributeCodes(codes []string) []string {
	if len(codes) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(codes))
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	if len(out) == 0 {
		return nil
	}

	return out
}
