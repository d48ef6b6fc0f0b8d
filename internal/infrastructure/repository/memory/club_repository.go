package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/pitchside/clubadmin/internal/domain/club"
)

type ClubRepository struct {
	mu    sync.RWMutex
	byID  map[string]club.Club
	order []string
}

func NewClubRepository(clubs []club.Club) *ClubRepository {
	r := &ClubRepository{byID: make(map[string]club.Club, len(clubs))}
	for _, c := range clubs {
		if _, ok := r.byID[c.ID]; !ok {
			r.order = append(r.order, c.ID)
		}
		r.byID[c.ID] = c
	}

	return r
}

func (r *ClubRepository) List(_ context.Context) ([]club.Club, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]club.Club, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *ClubRepository) GetByID(_ context.Context, clubID string) (club.Club, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[clubID]

	return c, ok, nil
}

func (r *ClubRepository) Upsert(_ context.Context, item club.Club) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[item.ID]; !ok {
		r.order = append(r.order, item.ID)
	}
	r.byID[item.ID] = item

	return nil
}
