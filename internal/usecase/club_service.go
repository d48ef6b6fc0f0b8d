package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pitchside/clubadmin/internal/domain/club"
	"github.com/pitchside/clubadmin/internal/domain/scope"
	"github.com/pitchside/clubadmin/internal/platform/id"
)

type CreateClubInput struct {
	Name      string
	FoundedAt time.Time
}

type UpdateClubInput struct {
	Name string
}

type ClubService struct {
	repo     club.Repository
	ids      id.Generator
	notifier EventNotifier
	now      func() time.Time
}

func NewClubService(repo club.Repository, ids id.Generator, notifier EventNotifier) *ClubService {
	if notifier == nil {
		notifier = NewNoopEventNotifier()
	}
	return &ClubService{repo: repo, ids: ids, notifier: notifier, now: time.Now}
}

func (s *ClubService) List(ctx context.Context) ([]club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.List")
	defer span.End()

	clubs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clubs: %w", err)
	}

	return clubs, nil
}

func (s *ClubService) Get(ctx context.Context, clubID string) (club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.Get")
	defer span.End()

	clubID = strings.TrimSpace(clubID)
	if clubID == "" {
		return club.Club{}, fmt.Errorf("%w: club id is required", ErrInvalidInput)
	}

	c, ok, err := s.repo.GetByID(ctx, clubID)
	if err != nil {
		return club.Club{}, fmt.Errorf("get club: %w", err)
	}
	if !ok {
		return club.Club{}, fmt.Errorf("%w: club %q", ErrNotFound, clubID)
	}

	return c, nil
}

func (s *ClubService) Create(ctx context.Context, input CreateClubInput) (club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.Create")
	defer span.End()

	newID, err := s.ids.NewID()
	if err != nil {
		return club.Club{}, fmt.Errorf("generate club id: %w", err)
	}

	c := club.Club{
		ID:        newID,
		Name:      strings.TrimSpace(input.Name),
		FoundedAt: input.FoundedAt,
		UpdatedAt: s.now().UTC(),
	}
	if err := c.Validate(); err != nil {
		return club.Club{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.repo.Upsert(ctx, c); err != nil {
		return club.Club{}, fmt.Errorf("save club: %w", err)
	}

	return c, nil
}

func (s *ClubService) Update(ctx context.Context, clubID string, input UpdateClubInput) (club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.Update")
	defer span.End()

	c, err := s.Get(ctx, clubID)
	if err != nil {
		return club.Club{}, err
	}

	decision := scope.CanMutate(scope.ActionUpdate, scope.Club(c.ID), scope.Ancestors{}, c.IsArchived)
	if !decision.Allowed {
		return club.Club{}, fmt.Errorf("%w: %s", ErrForbidden, decision.Reason)
	}

	c.Name = strings.TrimSpace(input.Name)
	c.UpdatedAt = s.now().UTC()
	if err := c.Validate(); err != nil {
		return club.Club{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.repo.Upsert(ctx, c); err != nil {
		return club.Club{}, fmt.Errorf("save club: %w", err)
	}

	return c, nil
}

func (s *ClubService) SetArchived(ctx context.Context, clubID string, archived bool) (club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.SetArchived")
	defer span.End()

	c, err := s.Get(ctx, clubID)
	if err != nil {
		return club.Club{}, err
	}

	action := scope.ActionArchive
	if !archived {
		action = scope.ActionUnarchive
	}
	decision := scope.CanMutate(action, scope.Club(c.ID), scope.Ancestors{}, c.IsArchived)
	if !decision.Allowed {
		return club.Club{}, fmt.Errorf("%w: %s", ErrForbidden, decision.Reason)
	}

	c.IsArchived = archived
	c.UpdatedAt = s.now().UTC()
	if err := s.repo.Upsert(ctx, c); err != nil {
		return club.Club{}, fmt.Errorf("save club: %w", err)
	}

	s.notifier.NotifyArchiveChanged(ctx, ArchiveEvent{
		Resource:   "club",
		ClubID:     c.ID,
		ResourceID: c.ID,
		Archived:   archived,
	})

	return c, nil
}
