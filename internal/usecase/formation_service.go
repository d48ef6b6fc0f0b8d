package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/pitchside/clubadmin/internal/domain/formation"
)

// FormationService exposes the seeded formation reference data. Formations
// are never authored through the API.
type FormationService struct {
	repo formation.Repository
}

func NewFormationService(repo formation.Repository) *FormationService {
	return &FormationService{repo: repo}
}

func (s *FormationService) List(ctx context.Context, squadSize int) ([]formation.Formation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FormationService.List")
	defer span.End()

	if squadSize < 0 {
		return nil, fmt.Errorf("%w: squad size cannot be negative", ErrInvalidInput)
	}

	var (
		formations []formation.Formation
		err        error
	)
	if squadSize == 0 {
		formations, err = s.repo.List(ctx)
	} else {
		formations, err = s.repo.ListBySquadSize(ctx, squadSize)
	}
	if err != nil {
		return nil, fmt.Errorf("list formations: %w", err)
	}

	return formations, nil
}

func (s *FormationService) Get(ctx context.Context, formationID string) (formation.Formation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FormationService.Get")
	defer span.End()

	formationID = strings.TrimSpace(formationID)
	if formationID == "" {
		return formation.Formation{}, fmt.Errorf("%w: formation id is required", ErrInvalidInput)
	}

	f, ok, err := s.repo.GetByID(ctx, formationID)
	if err != nil {
		return formation.Formation{}, fmt.Errorf("get formation: %w", err)
	}
	if !ok {
		return formation.Formation{}, fmt.Errorf("%w: formation %q", ErrNotFound, formationID)
	}

	return f, nil
}
