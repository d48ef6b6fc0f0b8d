package app

import (
	"fmt"

	"github.com/pitchside/clubadmin/internal/config"
	"github.com/pitchside/clubadmin/internal/domain/agegroup"
	"github.com/pitchside/clubadmin/internal/domain/club"
	"github.com/pitchside/clubadmin/internal/domain/coach"
	"github.com/pitchside/clubadmin/internal/domain/drill"
	"github.com/pitchside/clubadmin/internal/domain/drilltemplate"
	"github.com/pitchside/clubadmin/internal/domain/formation"
	"github.com/pitchside/clubadmin/internal/domain/match"
	"github.com/pitchside/clubadmin/internal/domain/player"
	"github.com/pitchside/clubadmin/internal/domain/tactic"
	"github.com/pitchside/clubadmin/internal/domain/team"
	"github.com/pitchside/clubadmin/internal/domain/training"
	cacherepo "github.com/pitchside/clubadmin/internal/infrastructure/repository/cache"
	"github.com/pitchside/clubadmin/internal/infrastructure/repository/memory"
	"github.com/pitchside/clubadmin/internal/infrastructure/repository/postgres"
	basecache "github.com/pitchside/clubadmin/internal/platform/cache"
	"github.com/pitchside/clubadmin/internal/platform/logging"
)

type repositories struct {
	clubs      club.Repository
	ageGroups  agegroup.Repository
	teams      team.Repository
	players    player.Repository
	coaches    coach.Repository
	drills     drill.Repository
	templates  drilltemplate.Repository
	formations formation.Repository
	tactics    tactic.Repository
	matches    match.Repository
	sessions   training.Repository
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, func() error, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		return buildPostgresRepositories(cfg, logger)
	case config.StorageMemory:
		return buildMemoryRepositories(), func() error { return nil }, nil
	default:
		return repositories{}, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func buildMemoryRepositories() repositories {
	return repositories{
		clubs:      memory.NewClubRepository(memory.SeedClubs()),
		ageGroups:  memory.NewAgeGroupRepository(memory.SeedAgeGroups()),
		teams:      memory.NewTeamRepository(memory.SeedTeams()),
		players:    memory.NewPlayerRepository(memory.SeedPlayers()),
		coaches:    memory.NewCoachRepository(memory.SeedCoaches()),
		drills:     memory.NewDrillRepository(memory.SeedDrills()),
		templates:  memory.NewDrillTemplateRepository(memory.SeedDrillTemplates()),
		formations: memory.NewFormationRepository(memory.SeedFormations()),
		tactics:    memory.NewTacticRepository(memory.SeedTactics()),
		matches:    memory.NewMatchRepository(nil),
		sessions:   memory.NewTrainingRepository(nil),
	}
}

// buildPostgresRepositories keeps the team schedule stores in memory: player,
// coach, match and training rows are not yet persisted, only the club
// hierarchy and the coaching catalog are.
func buildPostgresRepositories(cfg config.Config, logger *logging.Logger) (repositories, func() error, error) {
	db, err := openDB(cfg, logger)
	if err != nil {
		return repositories{}, nil, err
	}

	repos := repositories{
		clubs:      postgres.NewClubRepository(db),
		ageGroups:  postgres.NewAgeGroupRepository(db),
		teams:      postgres.NewTeamRepository(db),
		players:    memory.NewPlayerRepository(nil),
		coaches:    memory.NewCoachRepository(nil),
		drills:     postgres.NewDrillRepository(db),
		templates:  postgres.NewDrillTemplateRepository(db),
		formations: postgres.NewFormationRepository(db),
		tactics:    postgres.NewTacticRepository(db),
		matches:    memory.NewMatchRepository(nil),
		sessions:   memory.NewTrainingRepository(nil),
	}

	return repos, db.Close, nil
}

func wrapWithCache(repos repositories, store *basecache.Store) repositories {
	repos.clubs = cacherepo.NewClubRepository(repos.clubs, store)
	repos.ageGroups = cacherepo.NewAgeGroupRepository(repos.ageGroups, store)
	repos.teams = cacherepo.NewTeamRepository(repos.teams, store)
	repos.drills = cacherepo.NewDrillRepository(repos.drills, store)
	repos.templates = cacherepo.NewDrillTemplateRepository(repos.templates, store)
	repos.tactics = cacherepo.NewTacticRepository(repos.tactics, store)
	repos.formations = cacherepo.NewFormationRepository(repos.formations, store)
	return repos
}
