package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/pitchside/clubadmin/internal/domain/drill"
)

type DrillRepository struct {
	mu   sync.RWMutex
	byID map[string]drill.Drill
}

func NewDrillRepository(drills []drill.Drill) *DrillRepository {
	r := &DrillRepository{byID: make(map[string]drill.Drill, len(drills))}
	for _, d := range drills {
		r.byID[d.ID] = d
	}

	return r
}

func (r *DrillRepository) ListByClub(_ context.Context, clubID string) ([]drill.Drill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []drill.Drill
	for _, d := range r.byID {
		if d.Scope.ClubID() == clubID {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *DrillRepository) GetByID(_ context.Context, drillID string) (drill.Drill, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byID[drillID]

	return d, ok, nil
}

func (r *DrillRepository) Upsert(_ context.Context, item drill.Drill) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[item.ID] = item

	return nil
}
