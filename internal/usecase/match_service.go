package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pitchside/clubadmin/internal/domain/formation"
	"github.com/pitchside/clubadmin/internal/domain/match"
	"github.com/pitchside/clubadmin/internal/domain/player"
	"github.com/pitchside/clubadmin/internal/domain/scope"
	"github.com/pitchside/clubadmin/internal/domain/tactic"
	"github.com/pitchside/clubadmin/internal/platform/id"
)

type MatchInput struct {
	Opponent  string
	KickoffAt time.Time
	Venue     string
	Home      bool
	TacticID  string
	Lineup    []match.LineupEntry
}

// LineupPosition is one resolved slot of a match lineup: the pitch position
// after tactic overrides plus the player assigned to it, if any.
type LineupPosition struct {
	SlotIndex int
	Role      string
	X         float64
	Y         float64
	Player    *player.Player
}

type MatchService struct {
	repo          match.Repository
	playerRepo    player.Repository
	tacticRepo    tactic.Repository
	formationRepo formation.Repository
	hierarchy     *HierarchyService
	ids           id.Generator
	now           func() time.Time
}

func NewMatchService(
	repo match.Repository,
	playerRepo player.Repository,
	tacticRepo tactic.Repository,
	formationRepo formation.Repository,
	hierarchy *HierarchyService,
	ids id.Generator,
) *MatchService {
	return &MatchService{
		repo:          repo,
		playerRepo:    playerRepo,
		tacticRepo:    tacticRepo,
		formationRepo: formationRepo,
		hierarchy:     hierarchy,
		ids:           ids,
		now:           time.Now,
	}
}

func (s *MatchService) ListByTeam(ctx context.Context, clubID, ageGroupID, teamID string) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListByTeam")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		return nil, err
	}

	matches, err := s.repo.ListByTeam(ctx, path.Team.ID)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	return matches, nil
}

func (s *MatchService) Get(ctx context.Context, clubID, ageGroupID, teamID, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Get")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		return match.Match{}, err
	}

	m, ok, err := s.repo.GetByID(ctx, strings.TrimSpace(matchID))
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !ok || m.TeamID != path.Team.ID {
		return match.Match{}, fmt.Errorf("%w: match %q", ErrNotFound, matchID)
	}

	return m, nil
}

// Create schedules a match for a team. Blocked while the enclosing age group
// or the team itself is archived.
func (s *MatchService) Create(ctx context.Context, clubID, ageGroupID, teamID string, input MatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Create")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		return match.Match{}, err
	}

	decision := scope.CanMutate(scope.ActionCreateChild, path.Ref, path.Ancestors(), path.Team.IsArchived)
	if !decision.Allowed {
		return match.Match{}, fmt.Errorf("%w: %s", ErrForbidden, decision.Reason)
	}

	tacticID, err := s.validateTactic(ctx, path, input.TacticID)
	if err != nil {
		return match.Match{}, err
	}
	if err := s.validateLineup(ctx, path.Team.ID, input.Lineup); err != nil {
		return match.Match{}, err
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}

	m := match.Match{
		ID:        newID,
		TeamID:    path.Team.ID,
		Opponent:  strings.TrimSpace(input.Opponent),
		KickoffAt: input.KickoffAt,
		Venue:     strings.TrimSpace(input.Venue),
		Home:      input.Home,
		TacticID:  tacticID,
		Lineup:    input.Lineup,
		UpdatedAt: s.now().UTC(),
	}
	if err := m.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.repo.Upsert(ctx, m); err != nil {
		return match.Match{}, fmt.Errorf("save match: %w", err)
	}

	return m, nil
}

func (s *MatchService) Update(ctx context.Context, clubID, ageGroupID, teamID, matchID string, input MatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Update")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		return match.Match{}, err
	}

	m, err := s.Get(ctx, clubID, ageGroupID, teamID, matchID)
	if err != nil {
		return match.Match{}, err
	}

	decision := scope.CanMutate(scope.ActionUpdate, path.Ref, path.Ancestors(), m.IsArchived)
	if !decision.Allowed {
		return match.Match{}, fmt.Errorf("%w: %s", ErrForbidden, decision.Reason)
	}

	tacticID, err := s.validateTactic(ctx, path, input.TacticID)
	if err != nil {
		return match.Match{}, err
	}
	if err := s.validateLineup(ctx, path.Team.ID, input.Lineup); err != nil {
		return match.Match{}, err
	}

	m.Opponent = strings.TrimSpace(input.Opponent)
	m.KickoffAt = input.KickoffAt
	m.Venue = strings.TrimSpace(input.Venue)
	m.Home = input.Home
	m.TacticID = tacticID
	m.Lineup = input.Lineup
	m.UpdatedAt = s.now().UTC()
	if err := m.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.repo.Upsert(ctx, m); err != nil {
		return match.Match{}, fmt.Errorf("save match: %w", err)
	}

	return m, nil
}

func (s *MatchService) SetArchived(ctx context.Context, clubID, ageGroupID, teamID, matchID string, archived bool) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.SetArchived")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		return match.Match{}, err
	}

	m, err := s.Get(ctx, clubID, ageGroupID, teamID, matchID)
	if err != nil {
		return match.Match{}, err
	}

	action := scope.ActionArchive
	if !archived {
		action = scope.ActionUnarchive
	}
	decision := scope.CanMutate(action, path.Ref, path.Ancestors(), m.IsArchived)
	if !decision.Allowed {
		return match.Match{}, fmt.Errorf("%w: %s", ErrForbidden, decision.Reason)
	}

	m.IsArchived = archived
	m.UpdatedAt = s.now().UTC()
	if err := s.repo.Upsert(ctx, m); err != nil {
		return match.Match{}, fmt.Errorf("save match: %w", err)
	}

	return m, nil
}

// Lineup resolves the match's tactic into per-slot positions and joins the
// assigned players onto them. A match without a tactic has no resolvable
// layout.
func (s *MatchService) Lineup(ctx context.Context, clubID, ageGroupID, teamID, matchID string) ([]LineupPosition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Lineup")
	defer span.End()

	m, err := s.Get(ctx, clubID, ageGroupID, teamID, matchID)
	if err != nil {
		return nil, err
	}
	if m.TacticID == "" {
		return nil, fmt.Errorf("%w: match %q has no tactic assigned", ErrInvalidInput, matchID)
	}

	t, ok, err := s.tacticRepo.GetByID(ctx, m.TacticID)
	if err != nil {
		return nil, fmt.Errorf("get tactic: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: tactic %q", ErrNotFound, m.TacticID)
	}

	f, ok, err := s.formationRepo.GetByID(ctx, t.ParentFormationID)
	if err != nil {
		return nil, fmt.Errorf("get formation: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: formation %q", ErrNotFound, t.ParentFormationID)
	}
	if t.SquadSize != f.SquadSize {
		return nil, fmt.Errorf("%w: tactic squad size %d does not match formation %q squad size %d",
			ErrInvalidInput, t.SquadSize, f.ID, f.SquadSize)
	}

	playersBySlot := make(map[int]player.Player, len(m.Lineup))
	for _, entry := range m.Lineup {
		p, ok, err := s.playerRepo.GetByID(ctx, entry.PlayerID)
		if err != nil {
			return nil, fmt.Errorf("get lineup player: %w", err)
		}
		if ok {
			playersBySlot[entry.SlotIndex] = p
		}
	}

	resolved := tactic.ResolvePositions(f, &t)
	out := make([]LineupPosition, 0, len(resolved))
	for _, pos := range resolved {
		lp := LineupPosition{
			SlotIndex: pos.SlotIndex,
			Role:      pos.Role,
			X:         pos.X,
			Y:         pos.Y,
		}
		if p, ok := playersBySlot[pos.SlotIndex]; ok {
			p := p
			lp.Player = &p
		}
		out = append(out, lp)
	}

	return out, nil
}

func (s *MatchService) validateTactic(ctx context.Context, path ScopePath, tacticID string) (string, error) {
	tacticID = strings.TrimSpace(tacticID)
	if tacticID == "" {
		return "", nil
	}

	t, ok, err := s.tacticRepo.GetByID(ctx, tacticID)
	if err != nil {
		return "", fmt.Errorf("get tactic: %w", err)
	}
	if !ok || !t.Scope.VisibleAt(path.Ref) {
		return "", fmt.Errorf("%w: tactic %q is not visible to this team", ErrInvalidInput, tacticID)
	}

	return tacticID, nil
}

func (s *MatchService) validateLineup(ctx context.Context, teamID string, entries []match.LineupEntry) error {
	for _, entry := range entries {
		p, ok, err := s.playerRepo.GetByID(ctx, entry.PlayerID)
		if err != nil {
			return fmt.Errorf("get lineup player: %w", err)
		}
		if !ok || p.TeamID != teamID {
			return fmt.Errorf("%w: lineup player %q is not on this team", ErrInvalidInput, entry.PlayerID)
		}
	}

	return nil
}
