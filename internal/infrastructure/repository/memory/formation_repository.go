package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/pitchside/clubadmin/internal/domain/formation"
)

type FormationRepository struct {
	mu   sync.RWMutex
	byID map[string]formation.Formation
}

func NewFormationRepository(formations []formation.Formation) *FormationRepository {
	r := &FormationRepository{byID: make(map[string]formation.Formation, len(formations))}
	for _, f := range formations {
		r.byID[f.ID] = f
	}

	return r
}

func (r *FormationRepository) List(_ context.Context) ([]formation.Formation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]formation.Formation, 0, len(r.byID))
	for _, f := range r.byID {
		out = append(out, f)
	}
	sortFormations(out)

	return out, nil
}

func (r *FormationRepository) ListBySquadSize(_ context.Context, squadSize int) ([]formation.Formation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []formation.Formation
	for _, f := range r.byID {
		if f.SquadSize == squadSize {
			out = append(out, f)
		}
	}
	sortFormations(out)

	return out, nil
}

func (r *FormationRepository) GetByID(_ context.Context, formationID string) (formation.Formation, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.byID[formationID]

	return f, ok, nil
}

func sortFormations(formations []formation.Formation) {
	sort.SliceStable(formations, func(i, j int) bool {
		if formations[i].SquadSize != formations[j].SquadSize {
			return formations[i].SquadSize < formations[j].SquadSize
		}
		return formations[i].Name < formations[j].Name
	})
}
