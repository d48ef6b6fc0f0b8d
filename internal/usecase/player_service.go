package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pitchside/clubadmin/internal/domain/player"
	"github.com/pitchside/clubadmin/internal/domain/scope"
	"github.com/pitchside/clubadmin/internal/platform/id"
)

type PlayerInput struct {
	Name          string
	BirthDate     time.Time
	ShirtNumber   int
	PreferredFoot string
}

type PlayerService struct {
	repo      player.Repository
	hierarchy *HierarchyService
	ids       id.Generator
	now       func() time.Time
}

func NewPlayerService(repo player.Repository, hierarchy *HierarchyService, ids id.Generator) *PlayerService {
	return &PlayerService{repo: repo, hierarchy: hierarchy, ids: ids, now: time.Now}
}

func (s *PlayerService) ListByTeam(ctx context.Context, clubID, ageGroupID, teamID string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListByTeam")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		return nil, err
	}

	players, err := s.repo.ListByTeam(ctx, path.Team.ID)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return players, nil
}

func (s *PlayerService) Get(ctx context.Context, clubID, ageGroupID, teamID, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Get")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		return player.Player{}, err
	}

	p, ok, err := s.repo.GetByID(ctx, strings.TrimSpace(playerID))
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !ok || p.TeamID != path.Team.ID {
		return player.Player{}, fmt.Errorf("%w: player %q", ErrNotFound, playerID)
	}

	return p, nil
}

func (s *PlayerService) Create(ctx context.Context, clubID, ageGroupID, teamID string, input PlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Create")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		return player.Player{}, err
	}

	decision := scope.CanMutate(scope.ActionCreateChild, path.Ref, path.Ancestors(), path.Team.IsArchived)
	if !decision.Allowed {
		return player.Player{}, fmt.Errorf("%w: %s", ErrForbidden, decision.Reason)
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	p := player.Player{
		ID:            newID,
		TeamID:        path.Team.ID,
		Name:          strings.TrimSpace(input.Name),
		BirthDate:     input.BirthDate,
		ShirtNumber:   input.ShirtNumber,
		PreferredFoot: strings.TrimSpace(input.PreferredFoot),
		UpdatedAt:     s.now().UTC(),
	}
	if err := p.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.repo.Upsert(ctx, p); err != nil {
		return player.Player{}, fmt.Errorf("save player: %w", err)
	}

	return p, nil
}

func (s *PlayerService) Update(ctx context.Context, clubID, ageGroupID, teamID, playerID string, input PlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Update")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		return player.Player{}, err
	}

	p, err := s.Get(ctx, clubID, ageGroupID, teamID, playerID)
	if err != nil {
		return player.Player{}, err
	}

	decision := scope.CanMutate(scope.ActionUpdate, path.Ref, path.Ancestors(), p.IsArchived)
	if !decision.Allowed {
		return player.Player{}, fmt.Errorf("%w: %s", ErrForbidden, decision.Reason)
	}

	p.Name = strings.TrimSpace(input.Name)
	p.BirthDate = input.BirthDate
	p.ShirtNumber = input.ShirtNumber
	p.PreferredFoot = strings.TrimSpace(input.PreferredFoot)
	p.UpdatedAt = s.now().UTC()
	if err := p.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.repo.Upsert(ctx, p); err != nil {
		return player.Player{}, fmt.Errorf("save player: %w", err)
	}

	return p, nil
}

func (s *PlayerService) SetArchived(ctx context.Context, clubID, ageGroupID, teamID, playerID string, archived bool) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.SetArchived")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		return player.Player{}, err
	}

	p, err := s.Get(ctx, clubID, ageGroupID, teamID, playerID)
	if err != nil {
		return player.Player{}, err
	}

	action := scope.ActionArchive
	if !archived {
		action = scope.ActionUnarchive
	}
	decision := scope.CanMutate(action, path.Ref, path.Ancestors(), p.IsArchived)
	if !decision.Allowed {
		return player.Player{}, fmt.Errorf("%w: %s", ErrForbidden, decision.Reason)
	}

	p.IsArchived = archived
	p.UpdatedAt = s.now().UTC()
	if err := s.repo.Upsert(ctx, p); err != nil {
		return player.Player{}, fmt.Errorf("save player: %w", err)
	}

	return p, nil
}
