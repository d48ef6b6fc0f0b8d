package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/pitchside/clubadmin/internal/domain/agegroup"
	"github.com/pitchside/clubadmin/internal/domain/club"
	"github.com/pitchside/clubadmin/internal/domain/scope"
	"github.com/pitchside/clubadmin/internal/domain/team"
)

// ScopePath is a fully loaded hierarchy path from a club down to the level the
// request named. AgeGroup and Team are nil above their level.
type ScopePath struct {
	Ref      scope.Reference
	Club     club.Club
	AgeGroup *agegroup.AgeGroup
	Team     *team.Team
}

// Ancestors adapts the loaded path to the archive guard's view of the scopes
// enclosing the deepest level.
func (p ScopePath) Ancestors() scope.Ancestors {
	a := scope.Ancestors{Club: p.Club}
	if p.Ref.Level() == scope.LevelTeam && p.AgeGroup != nil {
		a.AgeGroup = *p.AgeGroup
	}
	return a
}

// DeepestArchived reports whether the entity at the path's own level carries
// the archived flag.
func (p ScopePath) DeepestArchived() bool {
	switch p.Ref.Level() {
	case scope.LevelTeam:
		return p.Team.IsArchived
	case scope.LevelAgeGroup:
		return p.AgeGroup.IsArchived
	default:
		return p.Club.IsArchived
	}
}

// HierarchyService loads and validates club/age-group/team paths so that
// other services can trust the references they operate on.
type HierarchyService struct {
	clubRepo     club.Repository
	ageGroupRepo agegroup.Repository
	teamRepo     team.Repository
}

func NewHierarchyService(clubRepo club.Repository, ageGroupRepo agegroup.Repository, teamRepo team.Repository) *HierarchyService {
	return &HierarchyService{
		clubRepo:     clubRepo,
		ageGroupRepo: ageGroupRepo,
		teamRepo:     teamRepo,
	}
}

// ResolveScope loads the path named by the ids. ageGroupID and teamID may be
// empty to address a shallower level; a teamID without an ageGroupID is
// invalid. Unknown or mismatched ids map to ErrNotFound.
func (s *HierarchyService) ResolveScope(ctx context.Context, clubID, ageGroupID, teamID string) (ScopePath, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HierarchyService.ResolveScope")
	defer span.End()

	clubID = strings.TrimSpace(clubID)
	ageGroupID = strings.TrimSpace(ageGroupID)
	teamID = strings.TrimSpace(teamID)

	if clubID == "" {
		return ScopePath{}, fmt.Errorf("%w: club id is required", ErrInvalidInput)
	}
	if teamID != "" && ageGroupID == "" {
		return ScopePath{}, fmt.Errorf("%w: a team id requires an age group id", ErrInvalidInput)
	}

	c, ok, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return ScopePath{}, fmt.Errorf("get club: %w", err)
	}
	if !ok {
		return ScopePath{}, fmt.Errorf("%w: club %q", ErrNotFound, clubID)
	}

	path := ScopePath{Ref: scope.Club(clubID), Club: c}
	if ageGroupID == "" {
		return path, nil
	}

	g, ok, err := s.ageGroupRepo.GetByID(ctx, ageGroupID)
	if err != nil {
		return ScopePath{}, fmt.Errorf("get age group: %w", err)
	}
	if !ok || g.ClubID != clubID {
		return ScopePath{}, fmt.Errorf("%w: age group %q in club %q", ErrNotFound, ageGroupID, clubID)
	}

	path.Ref = scope.AgeGroup(clubID, ageGroupID)
	path.AgeGroup = &g
	if teamID == "" {
		return path, nil
	}

	t, ok, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return ScopePath{}, fmt.Errorf("get team: %w", err)
	}
	if !ok || t.AgeGroupID != ageGroupID || t.ClubID != clubID {
		return ScopePath{}, fmt.Errorf("%w: team %q in age group %q", ErrNotFound, teamID, ageGroupID)
	}

	path.Ref = scope.Team(clubID, ageGroupID, teamID)
	path.Team = &t

	return path, nil
}

// ResolveReference re-loads the path for an already-built reference, e.g. the
// definition scope stored on an item.
func (s *HierarchyService) ResolveReference(ctx context.Context, ref scope.Reference) (ScopePath, error) {
	return s.ResolveScope(ctx, ref.ClubID(), ref.AgeGroupID(), ref.TeamID())
}
