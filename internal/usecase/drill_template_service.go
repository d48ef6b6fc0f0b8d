package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pitchside/clubadmin/internal/domain/drill"
	"github.com/pitchside/clubadmin/internal/domain/drilltemplate"
	"github.com/pitchside/clubadmin/internal/domain/scope"
	"github.com/pitchside/clubadmin/internal/platform/id"
)

type TemplateBlockInput struct {
	DrillID         string
	DurationMinutes int
	Note            string
}

type DrillTemplateInput struct {
	Name        string
	Category    string
	Description string
	Attributes  []string
	Blocks      []TemplateBlockInput
}

type DrillTemplateService struct {
	repo      drilltemplate.Repository
	drillRepo drill.Repository
	hierarchy *HierarchyService
	ids       id.Generator
	now       func() time.Time
}

func NewDrillTemplateService(repo drilltemplate.Repository, drillRepo drill.Repository, hierarchy *HierarchyService, ids id.Generator) *DrillTemplateService {
	return &DrillTemplateService{repo: repo, drillRepo: drillRepo, hierarchy: hierarchy, ids: ids, now: time.Now}
}

func (s *DrillTemplateService) ListScoped(ctx context.Context, clubID, ageGroupID, teamID string, filters ScopedListFilters) (scope.Result[drilltemplate.Template], error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DrillTemplateService.ListScoped")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		return scope.Result[drilltemplate.Template]{}, err
	}

	all, err := s.repo.ListByClub(ctx, path.Club.ID)
	if err != nil {
		return scope.Result[drilltemplate.Template]{}, fmt.Errorf("list drill templates: %w", err)
	}

	active := make([]drilltemplate.Template, 0, len(all))
	for _, t := range all {
		if !t.IsArchived {
			active = append(active, t)
		}
	}

	return scope.Resolve(active, path.Ref, filters.toScopeFilters()), nil
}

func (s *DrillTemplateService) Get(ctx context.Context, clubID, ageGroupID, teamID, templateID string) (drilltemplate.Template, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DrillTemplateService.Get")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		return drilltemplate.Template{}, err
	}

	t, ok, err := s.repo.GetByID(ctx, strings.TrimSpace(templateID))
	if err != nil {
		return drilltemplate.Template{}, fmt.Errorf("get drill template: %w", err)
	}
	if !ok || !t.Scope.VisibleAt(path.Ref) {
		return drilltemplate.Template{}, fmt.Errorf("%w: drill template %q", ErrNotFound, templateID)
	}

	return t, nil
}

func (s *DrillTemplateService) Create(ctx context.Context, clubID, ageGroupID, teamID string, input DrillTemplateInput) (drilltemplate.Template, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DrillTemplateService.Create")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		return drilltemplate.Template{}, err
	}

	decision := scope.CanMutate(scope.ActionCreateChild, path.Ref, path.Ancestors(), path.DeepestArchived())
	if !decision.Allowed {
		return drilltemplate.Template{}, fmt.Errorf("%w: %s", ErrForbidden, decision.Reason)
	}

	blocks, err := s.resolveBlocks(ctx, path.Ref, input.Blocks)
	if err != nil {
		return drilltemplate.Template{}, err
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return drilltemplate.Template{}, fmt.Errorf("generate drill template id: %w", err)
	}

	t := drilltemplate.Template{
		ID:          newID,
		Name:        strings.TrimSpace(input.Name),
		Category:    strings.TrimSpace(input.Category),
		Description: strings.TrimSpace(input.Description),
		Scope:       path.Ref,
		Attributes:  normalizeAttributeCodes(input.Attributes),
		Blocks:      blocks,
		UpdatedAt:   s.now().UTC(),
	}
	if err := t.Validate(); err != nil {
		return drilltemplate.Template{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.repo.Upsert(ctx, t); err != nil {
		return drilltemplate.Template{}, fmt.Errorf("save drill template: %w", err)
	}

	return t, nil
}

func (s *DrillTemplateService) Update(ctx context.Context, clubID, ageGroupID, teamID, templateID string, input DrillTemplateInput) (drilltemplate.Template, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DrillTemplateService.Update")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		return drilltemplate.Template{}, err
	}

	t, err := s.Get(ctx, clubID, ageGroupID, teamID, templateID)
	if err != nil {
		return drilltemplate.Template{}, err
	}
	if !t.Scope.Equal(path.Ref) {
		return drilltemplate.Template{}, fmt.Errorf("%w: drill template %q is defined at %s", ErrForbidden, templateID, t.Scope)
	}

	decision := scope.CanMutate(scope.ActionUpdate, path.Ref, path.Ancestors(), t.IsArchived)
	if !decision.Allowed {
		return drilltemplate.Template{}, fmt.Errorf("%w: %s", ErrForbidden, decision.Reason)
	}

	blocks, err := s.resolveBlocks(ctx, path.Ref, input.Blocks)
	if err != nil {
		return drilltemplate.Template{}, err
	}

	t.Name = strings.TrimSpace(input.Name)
	t.Category = strings.TrimSpace(input.Category)
	t.Description = strings.TrimSpace(input.Description)
	t.Attributes = normalizeAttributeCodes(input.Attributes)
	t.Blocks = blocks
	t.UpdatedAt = s.now().UTC()
	if err := t.Validate(); err != nil {
		return drilltemplate.Template{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.repo.Upsert(ctx, t); err != nil {
		return drilltemplate.Template{}, fmt.Errorf("save drill template: %w", err)
	}

	return t, nil
}

func (s *DrillTemplateService) SetArchived(ctx context.Context, clubID, ageGroupID, teamID, templateID string, archived bool) (drilltemplate.Template, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DrillTemplateService.SetArchived")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		return drilltemplate.Template{}, err
	}

	t, err := s.Get(ctx, clubID, ageGroupID, teamID, templateID)
	if err != nil {
		return drilltemplate.Template{}, err
	}
	if !t.Scope.Equal(path.Ref) {
		return drilltemplate.Template{}, fmt.Errorf("%w: drill template %q is defined at %s", ErrForbidden, templateID, t.Scope)
	}

	action := scope.ActionArchive
	if !archived {
		action = scope.ActionUnarchive
	}
	decision := scope.CanMutate(action, path.Ref, path.Ancestors(), t.IsArchived)
	if !decision.Allowed {
		return drilltemplate.Template{}, fmt.Errorf("%w: %s", ErrForbidden, decision.Reason)
	}

	t.IsArchived = archived
	t.UpdatedAt = s.now().UTC()
	if err := s.repo.Upsert(ctx, t); err != nil {
		return drilltemplate.Template{}, fmt.Errorf("save drill template: %w", err)
	}

	return t, nil
}

// resolveBlocks checks every referenced drill exists and is visible at the
// template's scope before the template is stored.
func (s *DrillTemplateService) resolveBlocks(ctx context.Context, ref scope.Reference, inputs []TemplateBlockInput) ([]drilltemplate.Block, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: a drill template needs at least one block", ErrInvalidInput)
	}

	blocks := make([]drilltemplate.Block, 0, len(inputs))
	for i, in := range inputs {
		drillID := strings.TrimSpace(in.DrillID)
		if drillID == "" {
			return nil, fmt.Errorf("%w: block %d is missing a drill id", ErrInvalidInput, i)
		}

		d, ok, err := s.drillRepo.GetByID(ctx, drillID)
		if err != nil {
			return nil, fmt.Errorf("get drill for block %d: %w", i, err)
		}
		if !ok || d.IsArchived || !d.Scope.VisibleAt(ref) {
			return nil, fmt.Errorf("%w: block %d references unknown drill %q", ErrInvalidInput, i, drillID)
		}

		blocks = append(blocks, drilltemplate.Block{
			DrillID:         drillID,
			DurationMinutes: in.DurationMinutes,
			Note:            strings.TrimSpace(in.Note),
		})
	}

	return blocks, nil
}
