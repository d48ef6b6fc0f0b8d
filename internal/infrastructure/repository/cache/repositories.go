// Package cache wraps the persistent repositories with read-through caching.
// Scoped resolution reads whole-club listings, so each write invalidates the
// club listing it belongs to along with its own id key. Inheritance is
// resolved from these listings on every request, which keeps a stale
// resolved view impossible as long as the listings are fresh.
package cache

import (
	"context"
	"strconv"

	"github.com/pitchside/clubadmin/internal/domain/agegroup"
	"github.com/pitchside/clubadmin/internal/domain/club"
	"github.com/pitchside/clubadmin/internal/domain/drill"
	"github.com/pitchside/clubadmin/internal/domain/drilltemplate"
	"github.com/pitchside/clubadmin/internal/domain/formation"
	"github.com/pitchside/clubadmin/internal/domain/tactic"
	"github.com/pitchside/clubadmin/internal/domain/team"
	basecache "github.com/pitchside/clubadmin/internal/platform/cache"
)

type ClubRepository struct {
	next  club.Repository
	cache *basecache.Store
}

func NewClubRepository(next club.Repository, cache *basecache.Store) *ClubRepository {
	return &ClubRepository{next: next, cache: cache}
}

func (r *ClubRepository) List(ctx context.Context) ([]club.Club, error) {
	v, err := r.cache.GetOrLoad(ctx, "club:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]club.Club(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]club.Club)
	return append([]club.Club(nil), items...), nil
}

func (r *ClubRepository) GetByID(ctx context.Context, clubID string) (club.Club, bool, error) {
	key := "club:id:" + clubID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, clubID)
		if err != nil {
			return nil, err
		}
		return cachedClubByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return club.Club{}, false, err
	}

	cached, _ := v.(cachedClubByID)
	return cached.value, cached.exists, nil
}

func (r *ClubRepository) Upsert(ctx context.Context, item club.Club) error {
	if err := r.next.Upsert(ctx, item); err != nil {
		return err
	}
	r.cache.Delete(ctx, "club:list")
	r.cache.Delete(ctx, "club:id:"+item.ID)
	return nil
}

type cachedClubByID struct {
	value  club.Club
	exists bool
}

type AgeGroupRepository struct {
	next  agegroup.Repository
	cache *basecache.Store
}

func NewAgeGroupRepository(next agegroup.Repository, cache *basecache.Store) *AgeGroupRepository {
	return &AgeGroupRepository{next: next, cache: cache}
}

func (r *AgeGroupRepository) ListByClub(ctx context.Context, clubID string) ([]agegroup.AgeGroup, error) {
	key := "age-group:list:club:" + clubID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByClub(ctx, clubID)
		if err != nil {
			return nil, err
		}
		return append([]agegroup.AgeGroup(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]agegroup.AgeGroup)
	return append([]agegroup.AgeGroup(nil), items...), nil
}

func (r *AgeGroupRepository) GetByID(ctx context.Context, ageGroupID string) (agegroup.AgeGroup, bool, error) {
	key := "age-group:id:" + ageGroupID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, ageGroupID)
		if err != nil {
			return nil, err
		}
		return cachedAgeGroupByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return agegroup.AgeGroup{}, false, err
	}

	cached, _ := v.(cachedAgeGroupByID)
	return cached.value, cached.exists, nil
}

func (r *AgeGroupRepository) Upsert(ctx context.Context, item agegroup.AgeGroup) error {
	if err := r.next.Upsert(ctx, item); err != nil {
		return err
	}
	r.cache.Delete(ctx, "age-group:list:club:"+item.ClubID)
	r.cache.Delete(ctx, "age-group:id:"+item.ID)
	return nil
}

type cachedAgeGroupByID struct {
	value  agegroup.AgeGroup
	exists bool
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) ListByAgeGroup(ctx context.Context, ageGroupID string) ([]team.Team, error) {
	key := "team:list:age-group:" + ageGroupID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByAgeGroup(ctx, ageGroupID)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	key := "team:id:" + teamID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return cachedTeamByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeamByID)
	return cached.value, cached.exists, nil
}

func (r *TeamRepository) Upsert(ctx context.Context, item team.Team) error {
	if err := r.next.Upsert(ctx, item); err != nil {
		return err
	}
	r.cache.Delete(ctx, "team:list:age-group:"+item.AgeGroupID)
	r.cache.Delete(ctx, "team:id:"+item.ID)
	return nil
}

type cachedTeamByID struct {
	value  team.Team
	exists bool
}

type DrillRepository struct {
	next  drill.Repository
	cache *basecache.Store
}

func NewDrillRepository(next drill.Repository, cache *basecache.Store) *DrillRepository {
	return &DrillRepository{next: next, cache: cache}
}

func (r *DrillRepository) ListByClub(ctx context.Context, clubID string) ([]drill.Drill, error) {
	key := "drill:list:club:" + clubID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByClub(ctx, clubID)
		if err != nil {
			return nil, err
		}
		out := make([]drill.Drill, 0, len(items))
		for _, item := range items {
			out = append(out, cloneDrill(item))
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]drill.Drill)
	out := make([]drill.Drill, 0, len(items))
	for _, item := range items {
		out = append(out, cloneDrill(item))
	}
	return out, nil
}

func (r *DrillRepository) GetByID(ctx context.Context, drillID string) (drill.Drill, bool, error) {
	key := "drill:id:" + drillID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, drillID)
		if err != nil {
			return nil, err
		}
		return cachedDrillByID{value: cloneDrill(item), exists: exists}, nil
	})
	if err != nil {
		return drill.Drill{}, false, err
	}

	cached, _ := v.(cachedDrillByID)
	return cloneDrill(cached.value), cached.exists, nil
}

func (r *DrillRepository) Upsert(ctx context.Context, item drill.Drill) error {
	if err := r.next.Upsert(ctx, item); err != nil {
		return err
	}
	r.cache.Delete(ctx, "drill:list:club:"+item.Scope.ClubID())
	r.cache.Delete(ctx, "drill:id:"+item.ID)
	return nil
}

type cachedDrillByID struct {
	value  drill.Drill
	exists bool
}

func cloneDrill(item drill.Drill) drill.Drill {
	out := item
	out.Attributes = append([]string(nil), item.Attributes...)
	return out
}

type DrillTemplateRepository struct {
	next  drilltemplate.Repository
	cache *basecache.Store
}

func NewDrillTemplateRepository(next drilltemplate.Repository, cache *basecache.Store) *DrillTemplateRepository {
	return &DrillTemplateRepository{next: next, cache: cache}
}

func (r *DrillTemplateRepository) ListByClub(ctx context.Context, clubID string) ([]drilltemplate.Template, error) {
	key := "drill-template:list:club:" + clubID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByClub(ctx, clubID)
		if err != nil {
			return nil, err
		}
		out := make([]drilltemplate.Template, 0, len(items))
		for _, item := range items {
			out = append(out, cloneTemplate(item))
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]drilltemplate.Template)
	out := make([]drilltemplate.Template, 0, len(items))
	for _, item := range items {
		out = append(out, cloneTemplate(item))
	}
	return out, nil
}

func (r *DrillTemplateRepository) GetByID(ctx context.Context, templateID string) (drilltemplate.Template, bool, error) {
	key := "drill-template:id:" + templateID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, templateID)
		if err != nil {
			return nil, err
		}
		return cachedTemplateByID{value: cloneTemplate(item), exists: exists}, nil
	})
	if err != nil {
		return drilltemplate.Template{}, false, err
	}

	cached, _ := v.(cachedTemplateByID)
	return cloneTemplate(cached.value), cached.exists, nil
}

func (r *DrillTemplateRepository) Upsert(ctx context.Context, item drilltemplate.Template) error {
	if err := r.next.Upsert(ctx, item); err != nil {
		return err
	}
	r.cache.Delete(ctx, "drill-template:list:club:"+item.Scope.ClubID())
	r.cache.Delete(ctx, "drill-template:id:"+item.ID)
	return nil
}

type cachedTemplateByID struct {
	value  drilltemplate.Template
	exists bool
}

func cloneTemplate(item drilltemplate.Template) drilltemplate.Template {
	out := item
	out.Attributes = append([]string(nil), item.Attributes...)
	out.Blocks = append([]drilltemplate.Block(nil), item.Blocks...)
	return out
}

type TacticRepository struct {
	next  tactic.Repository
	cache *basecache.Store
}

func NewTacticRepository(next tactic.Repository, cache *basecache.Store) *TacticRepository {
	return &TacticRepository{next: next, cache: cache}
}

func (r *TacticRepository) ListByClub(ctx context.Context, clubID string) ([]tactic.Tactic, error) {
	key := "tactic:list:club:" + clubID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByClub(ctx, clubID)
		if err != nil {
			return nil, err
		}
		out := make([]tactic.Tactic, 0, len(items))
		for _, item := range items {
			out = append(out, cloneTactic(item))
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]tactic.Tactic)
	out := make([]tactic.Tactic, 0, len(items))
	for _, item := range items {
		out = append(out, cloneTactic(item))
	}
	return out, nil
}

func (r *TacticRepository) GetByID(ctx context.Context, tacticID string) (tactic.Tactic, bool, error) {
	key := "tactic:id:" + tacticID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, tacticID)
		if err != nil {
			return nil, err
		}
		return cachedTacticByID{value: cloneTactic(item), exists: exists}, nil
	})
	if err != nil {
		return tactic.Tactic{}, false, err
	}

	cached, _ := v.(cachedTacticByID)
	return cloneTactic(cached.value), cached.exists, nil
}

func (r *TacticRepository) Upsert(ctx context.Context, item tactic.Tactic) error {
	if err := r.next.Upsert(ctx, item); err != nil {
		return err
	}
	r.cache.Delete(ctx, "tactic:list:club:"+item.Scope.ClubID())
	r.cache.Delete(ctx, "tactic:id:"+item.ID)
	return nil
}

type cachedTacticByID struct {
	value  tactic.Tactic
	exists bool
}

func cloneTactic(item tactic.Tactic) tactic.Tactic {
	out := item
	out.Attributes = append([]string(nil), item.Attributes...)
	if item.Overrides != nil {
		out.Overrides = make(map[int]tactic.Override, len(item.Overrides))
		for idx, o := range item.Overrides {
			out.Overrides[idx] = o
		}
	}
	return out
}

// FormationRepository caches the formation catalog. The catalog is seeded
// reference data, so there is nothing to invalidate.
type FormationRepository struct {
	next  formation.Repository
	cache *basecache.Store
}

func NewFormationRepository(next formation.Repository, cache *basecache.Store) *FormationRepository {
	return &FormationRepository{next: next, cache: cache}
}

func (r *FormationRepository) List(ctx context.Context) ([]formation.Formation, error) {
	v, err := r.cache.GetOrLoad(ctx, "formation:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]formation.Formation, 0, len(items))
		for _, item := range items {
			out = append(out, cloneFormation(item))
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]formation.Formation)
	out := make([]formation.Formation, 0, len(items))
	for _, item := range items {
		out = append(out, cloneFormation(item))
	}
	return out, nil
}

func (r *FormationRepository) ListBySquadSize(ctx context.Context, squadSize int) ([]formation.Formation, error) {
	key := "formation:list:squad:" + strconv.Itoa(squadSize)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListBySquadSize(ctx, squadSize)
		if err != nil {
			return nil, err
		}
		out := make([]formation.Formation, 0, len(items))
		for _, item := range items {
			out = append(out, cloneFormation(item))
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]formation.Formation)
	out := make([]formation.Formation, 0, len(items))
	for _, item := range items {
		out = append(out, cloneFormation(item))
	}
	return out, nil
}

func (r *FormationRepository) GetByID(ctx context.Context, formationID string) (formation.Formation, bool, error) {
	key := "formation:id:" + formationID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, formationID)
		if err != nil {
			return nil, err
		}
		return cachedFormationByID{value: cloneFormation(item), exists: exists}, nil
	})
	if err != nil {
		return formation.Formation{}, false, err
	}

	cached, _ := v.(cachedFormationByID)
	return cloneFormation(cached.value), cached.exists, nil
}

type cachedFormationByID struct {
	value  formation.Formation
	exists bool
}

func cloneFormation(item formation.Formation) formation.Formation {
	out := item
	out.Slots = append([]formation.Slot(nil), item.Slots...)
	return out
}
