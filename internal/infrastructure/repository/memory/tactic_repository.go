package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/pitchside/clubadmin/internal/domain/tactic"
)

type TacticRepository struct {
	mu   sync.RWMutex
	byID map[string]tactic.Tactic
}

func NewTacticRepository(tactics []tactic.Tactic) *TacticRepository {
	r := &TacticRepository{byID: make(map[string]tactic.Tactic, len(tactics))}
	for _, t := range tactics {
		r.byID[t.ID] = t
	}

	return r
}

func (r *TacticRepository) ListByClub(_ context.Context, clubID string) ([]tactic.Tactic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []tactic.Tactic
	for _, t := range r.byID {
		if t.Scope.ClubID() == clubID {
			out = append(out, cloneTactic(t))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *TacticRepository) GetByID(_ context.Context, tacticID string) (tactic.Tactic, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byID[tacticID]
	if !ok {
		return tactic.Tactic{}, false, nil
	}

	return cloneTactic(t), true, nil
}

func (r *TacticRepository) Upsert(_ context.Context, item tactic.Tactic) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[item.ID] = cloneTactic(item)

	return nil
}

// cloneTactic copies the overrides map so callers cannot mutate stored state.
func cloneTactic(t tactic.Tactic) tactic.Tactic {
	if t.Overrides == nil {
		return t
	}

	overrides := make(map[int]tactic.Override, len(t.Overrides))
	for idx, o := range t.Overrides {
		overrides[idx] = o
	}
	t.Overrides = overrides

	return t
}
