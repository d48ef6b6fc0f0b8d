package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/pitchside/clubadmin/internal/domain/coach"
)

type CoachRepository struct {
	mu   sync.RWMutex
	byID map[string]coach.Coach
}

func NewCoachRepository(coaches []coach.Coach) *CoachRepository {
	r := &CoachRepository{byID: make(map[string]coach.Coach, len(coaches))}
	for _, c := range coaches {
		r.byID[c.ID] = c
	}

	return r
}

func (r *CoachRepository) ListByTeam(_ context.Context, teamID string) ([]coach.Coach, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []coach.Coach
	for _, c := range r.byID {
		if c.TeamID == teamID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *CoachRepository) GetByID(_ context.Context, coachID string) (coach.Coach, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[coachID]

	return c, ok, nil
}

func (r *CoachRepository) Upsert(_ context.Context, item coach.Coach) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[item.ID] = item

	return nil
}
