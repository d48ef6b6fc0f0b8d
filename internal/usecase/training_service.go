package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pitchside/clubadmin/internal/domain/drill"
	"github.com/pitchside/clubadmin/internal/domain/drilltemplate"
	"github.com/pitchside/clubadmin/internal/domain/scope"
	"github.com/pitchside/clubadmin/internal/domain/training"
	"github.com/pitchside/clubadmin/internal/platform/id"
)

type SessionBlockInput struct {
	DrillID         string
	DurationMinutes int
	Note            string
}

type TrainingSessionInput struct {
	StartsAt time.Time
	Blocks   []SessionBlockInput
	// TemplateID seeds the session's blocks from a drill template when no
	// explicit blocks are given.
	TemplateID string
}

type TrainingService struct {
	repo         training.Repository
	drillRepo    drill.Repository
	templateRepo drilltemplate.Repository
	hierarchy    *HierarchyService
	ids          id.Generator
	now          func() time.Time
}

func NewTrainingService(
	repo training.Repository,
	drillRepo drill.Repository,
	templateRepo drilltemplate.Repository,
	hierarchy *HierarchyService,
	ids id.Generator,
) *TrainingService {
	return &TrainingService{
		repo:         repo,
		drillRepo:    drillRepo,
		templateRepo: templateRepo,
		hierarchy:    hierarchy,
		ids:          ids,
		now:          time.Now,
	}
}

func (s *TrainingService) ListByTeam(ctx context.Context, clubID, ageGroupID, teamID string) ([]training.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TrainingService.ListByTeam")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		return nil, err
	}

	sessions, err := s.repo.ListByTeam(ctx, path.Team.ID)
	if err != nil {
		return nil, fmt.Errorf("list training sessions: %w", err)
	}

	return sessions, nil
}

func (s *TrainingService) Get(ctx context.Context, clubID, ageGroupID, teamID, sessionID string) (training.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TrainingService.Get")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		return training.Session{}, err
	}

	sess, ok, err := s.repo.GetByID(ctx, strings.TrimSpace(sessionID))
	if err != nil {
		return training.Session{}, fmt.Errorf("get training session: %w", err)
	}
	if !ok || sess.TeamID != path.Team.ID {
		return training.Session{}, fmt.Errorf("%w: training session %q", ErrNotFound, sessionID)
	}

	return sess, nil
}

// Create schedules a training session. When a template id is given and no
// explicit blocks, the template's blocks seed the session. Blocked while the
// enclosing age group or the team itself is archived.
func (s *TrainingService) Create(ctx context.Context, clubID, ageGroupID, teamID string, input TrainingSessionInput) (training.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TrainingService.Create")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		return training.Session{}, err
	}

	decision := scope.CanMutate(scope.ActionCreateChild, path.Ref, path.Ancestors(), path.Team.IsArchived)
	if !decision.Allowed {
		return training.Session{}, fmt.Errorf("%w: %s", ErrForbidden, decision.Reason)
	}

	blocks, templateID, err := s.resolveSessionBlocks(ctx, path.Ref, input)
	if err != nil {
		return training.Session{}, err
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return training.Session{}, fmt.Errorf("generate training session id: %w", err)
	}

	sess := training.Session{
		ID:         newID,
		TeamID:     path.Team.ID,
		StartsAt:   input.StartsAt,
		Blocks:     blocks,
		TemplateID: templateID,
		UpdatedAt:  s.now().UTC(),
	}
	if err := sess.Validate(); err != nil {
		return training.Session{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.repo.Upsert(ctx, sess); err != nil {
		return training.Session{}, fmt.Errorf("save training session: %w", err)
	}

	return sess, nil
}

func (s *TrainingService) Update(ctx context.Context, clubID, ageGroupID, teamID, sessionID string, input TrainingSessionInput) (training.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TrainingService.Update")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		return training.Session{}, err
	}

	sess, err := s.Get(ctx, clubID, ageGroupID, teamID, sessionID)
	if err != nil {
		return training.Session{}, err
	}

	decision := scope.CanMutate(scope.ActionUpdate, path.Ref, path.Ancestors(), sess.IsArchived)
	if !decision.Allowed {
		return training.Session{}, fmt.Errorf("%w: %s", ErrForbidden, decision.Reason)
	}

	blocks, templateID, err := s.resolveSessionBlocks(ctx, path.Ref, input)
	if err != nil {
		return training.Session{}, err
	}

	sess.StartsAt = input.StartsAt
	sess.Blocks = blocks
	sess.TemplateID = templateID
	sess.UpdatedAt = s.now().UTC()
	if err := sess.Validate(); err != nil {
		return training.Session{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.repo.Upsert(ctx, sess); err != nil {
		return training.Session{}, fmt.Errorf("save training session: %w", err)
	}

	return sess, nil
}

func (s *TrainingService) SetArchived(ctx context.Context, clubID, ageGroupID, teamID, sessionID string, archived bool) (training.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TrainingService.SetArchived")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		return training.Session{}, err
	}

	sess, err := s.Get(ctx, clubID, ageGroupID, teamID, sessionID)
	if err != nil {
		return training.Session{}, err
	}

	action := scope.ActionArchive
	if !archived {
		action = scope.ActionUnarchive
	}
	decision := scope.CanMutate(action, path.Ref, path.Ancestors(), sess.IsArchived)
	if !decision.Allowed {
		return training.Session{}, fmt.Errorf("%w: %s", ErrForbidden, decision.Reason)
	}

	sess.IsArchived = archived
	sess.UpdatedAt = s.now().UTC()
	if err := s.repo.Upsert(ctx, sess); err != nil {
		return training.Session{}, fmt.Errorf("save training session: %w", err)
	}

	return sess, nil
}

func (s *TrainingService) resolveSessionBlocks(ctx context.Context, ref scope.Reference, input TrainingSessionInput) ([]training.Block, string, error) {
	templateID := strings.TrimSpace(input.TemplateID)

	if len(input.Blocks) == 0 && templateID != "" {
		tpl, ok, err := s.templateRepo.GetByID(ctx, templateID)
		if err != nil {
			return nil, "", fmt.Errorf("get drill template: %w", err)
		}
		if !ok || tpl.IsArchived || !tpl.Scope.VisibleAt(ref) {
			return nil, "", fmt.Errorf("%w: drill template %q is not visible to this team", ErrInvalidInput, templateID)
		}

		blocks := make([]training.Block, 0, len(tpl.Blocks))
		for _, b := range tpl.Blocks {
			blocks = append(blocks, training.Block{
				DrillID:         b.DrillID,
				DurationMinutes: b.DurationMinutes,
				Note:            b.Note,
			})
		}

		return blocks, templateID, nil
	}

	if len(input.Blocks) == 0 {
		return nil, "", fmt.Errorf("%w: a session needs blocks or a template id", ErrInvalidInput)
	}

	blocks := make([]training.Block, 0, len(input.Blocks))
	for i, in := range input.Blocks {
		drillID := strings.TrimSpace(in.DrillID)
		if drillID == "" {
			return nil, "", fmt.Errorf("%w: block %d is missing a drill id", ErrInvalidInput, i)
		}

		d, ok, err := s.drillRepo.GetByID(ctx, drillID)
		if err != nil {
			return nil, "", fmt.Errorf("get drill for block %d: %w", i, err)
		}
		if !ok || d.IsArchived || !d.Scope.VisibleAt(ref) {
			return nil, "", fmt.Errorf("%w: block %d references unknown drill %q", ErrInvalidInput, i, drillID)
		}

		blocks = append(blocks, training.Block{
			DrillID:         drillID,
			DurationMinutes: in.DurationMinutes,
			Note:            strings.TrimSpace(in.Note),
		})
	}

	return blocks, templateID, nil
}
