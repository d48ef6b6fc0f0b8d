package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/pitchside/clubadmin/internal/domain/drilltemplate"
)

type DrillTemplateRepository struct {
	mu   sync.RWMutex
	byID map[string]drilltemplate.Template
}

func NewDrillTemplateRepository(templates []drilltemplate.Template) *DrillTemplateRepository {
	r := &DrillTemplateRepository{byID: make(map[string]drilltemplate.Template, len(templates))}
	for _, t := range templates {
		r.byID[t.ID] = t
	}

	return r
}

func (r *DrillTemplateRepository) ListByClub(_ context.Context, clubID string) ([]drilltemplate.Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []drilltemplate.Template
	for _, t := range r.byID {
		if t.Scope.ClubID() == clubID {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *DrillTemplateRepository) GetByID(_ context.Context, templateID string) (drilltemplate.Template, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byID[templateID]

	return t, ok, nil
}

func (r *DrillTemplateRepository) Upsert(_ context.Context, item drilltemplate.Template) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[item.ID] = item

	return nil
}
