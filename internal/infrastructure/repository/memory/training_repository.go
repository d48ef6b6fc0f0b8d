package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/pitchside/clubadmin/internal/domain/training"
)

type TrainingRepository struct {
	mu   sync.RWMutex
	byID map[string]training.Session
}

func NewTrainingRepository(sessions []training.Session) *TrainingRepository {
	r := &TrainingRepository{byID: make(map[string]training.Session, len(sessions))}
	for _, s := range sessions {
		r.byID[s.ID] = s
	}

	return r
}

func (r *TrainingRepository) ListByTeam(_ context.Context, teamID string) ([]training.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []training.Session
	for _, s := range r.byID {
		if s.TeamID == teamID {
			out = append(out, cloneSession(s))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartsAt.Before(out[j].StartsAt) })

	return out, nil
}

func (r *TrainingRepository) GetByID(_ context.Context, sessionID string) (training.Session, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[sessionID]
	if !ok {
		return training.Session{}, false, nil
	}

	return cloneSession(s), true, nil
}

func (r *TrainingRepository) Upsert(_ context.Context, item training.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[item.ID] = cloneSession(item)

	return nil
}

func cloneSession(s training.Session) training.Session {
	s.Blocks = append([]training.Block(nil), s.Blocks...)
	return s
}
