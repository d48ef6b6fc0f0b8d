package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/pitchside/clubadmin/internal/domain/agegroup"
)

type AgeGroupRepository struct {
	mu   sync.RWMutex
	byID map[string]agegroup.AgeGroup
}

func NewAgeGroupRepository(groups []agegroup.AgeGroup) *AgeGroupRepository {
	r := &AgeGroupRepository{byID: make(map[string]agegroup.AgeGroup, len(groups))}
	for _, g := range groups {
		r.byID[g.ID] = g
	}

	return r
}

func (r *AgeGroupRepository) ListByClub(_ context.Context, clubID string) ([]agegroup.AgeGroup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []agegroup.AgeGroup
	for _, g := range r.byID {
		if g.ClubID == clubID {
			out = append(out, g)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *AgeGroupRepository) GetByID(_ context.Context, ageGroupID string) (agegroup.AgeGroup, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.byID[ageGroupID]

	return g, ok, nil
}

func (r *AgeGroupRepository) Upsert(_ context.Context, item agegroup.AgeGroup) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[item.ID] = item

	return nil
}
