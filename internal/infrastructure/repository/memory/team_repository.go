package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/pitchside/clubadmin/internal/domain/team"
)

type TeamRepository struct {
	mu   sync.RWMutex
	byID map[string]team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	r := &TeamRepository{byID: make(map[string]team.Team, len(teams))}
	for _, t := range teams {
		r.byID[t.ID] = t
	}

	return r
}

func (r *TeamRepository) ListByAgeGroup(_ context.Context, ageGroupID string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []team.Team
	for _, t := range r.byID {
		if t.AgeGroupID == ageGroupID {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byID[teamID]

	return t, ok, nil
}

func (r *TeamRepository) Upsert(_ context.Context, item team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[item.ID] = item

	return nil
}
