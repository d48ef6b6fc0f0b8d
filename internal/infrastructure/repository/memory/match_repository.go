package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/pitchside/clubadmin/internal/domain/match"
)

type MatchRepository struct {
	mu   sync.RWMutex
	byID map[string]match.Match
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	r := &MatchRepository{byID: make(map[string]match.Match, len(matches))}
	for _, m := range matches {
		r.byID[m.ID] = m
	}

	return r
}

func (r *MatchRepository) ListByTeam(_ context.Context, teamID string) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []match.Match
	for _, m := range r.byID {
		if m.TeamID == teamID {
			out = append(out, cloneMatch(m))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].KickoffAt.Before(out[j].KickoffAt) })

	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[matchID]
	if !ok {
		return match.Match{}, false, nil
	}

	return cloneMatch(m), true, nil
}

func (r *MatchRepository) Upsert(_ context.Context, item match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[item.ID] = cloneMatch(item)

	return nil
}

func cloneMatch(m match.Match) match.Match {
	m.Lineup = append([]match.LineupEntry(nil), m.Lineup...)
	return m
}
