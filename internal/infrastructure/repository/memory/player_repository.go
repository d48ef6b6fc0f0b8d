package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/pitchside/clubadmin/internal/domain/player"
)

type PlayerRepository struct {
	mu   sync.RWMutex
	byID map[string]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	r := &PlayerRepository{byID: make(map[string]player.Player, len(players))}
	for _, p := range players {
		r.byID[p.ID] = p
	}

	return r
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []player.Player
	for _, p := range r.byID {
		if p.TeamID == teamID {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ShirtNumber != out[j].ShirtNumber {
			return out[i].ShirtNumber < out[j].ShirtNumber
		}
		return out[i].Name < out[j].Name
	})

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[playerID]

	return p, ok, nil
}

func (r *PlayerRepository) Upsert(_ context.Context, item player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[item.ID] = item

	return nil
}
