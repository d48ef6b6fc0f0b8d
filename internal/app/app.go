package app

import (
	"fmt"
	"net/http"

	"github.com/pitchside/clubadmin/internal/config"
	"github.com/pitchside/clubadmin/internal/infrastructure/account/memberauth"
	"github.com/pitchside/clubadmin/internal/interfaces/httpapi"
	basecache "github.com/pitchside/clubadmin/internal/platform/cache"
	idgen "github.com/pitchside/clubadmin/internal/platform/id"
	"github.com/pitchside/clubadmin/internal/platform/logging"
	"github.com/pitchside/clubadmin/internal/platform/resilience"
	"github.com/pitchside/clubadmin/internal/usecase"
)

// NewHTTPServer builds the fully wired API server. The returned cleanup
// releases storage handles and must run after the server has shut down.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, cleanup, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	if cfg.CacheEnabled {
		repos = wrapWithCache(repos, basecache.NewStore(cfg.CacheTTL))
	}

	ids := idgen.NewRandomGenerator()
	notifier := buildEventNotifier(cfg, logger)

	hierarchySvc := usecase.NewHierarchyService(repos.clubs, repos.ageGroups, repos.teams)
	clubSvc := usecase.NewClubService(repos.clubs, ids, notifier)
	ageGroupSvc := usecase.NewAgeGroupService(repos.ageGroups, hierarchySvc, ids, notifier)
	teamSvc := usecase.NewTeamService(repos.teams, hierarchySvc, ids, notifier)
	overviewSvc := usecase.NewTeamOverviewService(hierarchySvc, repos.players, repos.coaches, repos.matches, repos.sessions)
	playerSvc := usecase.NewPlayerService(repos.players, hierarchySvc, ids)
	coachSvc := usecase.NewCoachService(repos.coaches, hierarchySvc, ids)
	drillSvc := usecase.NewDrillService(repos.drills, hierarchySvc, ids)
	importSvc := usecase.NewDrillImportService(repos.drills, hierarchySvc, ids, cfg.ImportMaxWorkers)
	templateSvc := usecase.NewDrillTemplateService(repos.templates, repos.drills, hierarchySvc, ids)
	formationSvc := usecase.NewFormationService(repos.formations)
	tacticSvc := usecase.NewTacticService(repos.tactics, repos.formations, hierarchySvc, ids)
	matchSvc := usecase.NewMatchService(repos.matches, repos.players, repos.tactics, repos.formations, hierarchySvc, ids)
	trainingSvc := usecase.NewTrainingService(repos.sessions, repos.drills, repos.templates, hierarchySvc, ids)

	authClient := memberauth.NewClient(
		&http.Client{Timeout: cfg.MemberAuthTimeout},
		cfg.MemberAuthBaseURL,
		cfg.MemberAuthIntrospectPath,
		cfg.MemberAuthAdminKey,
		resilience.CircuitBreakerConfig{
			Enabled:          cfg.MemberAuthCircuitEnabled,
			FailureThreshold: cfg.MemberAuthCircuitFailureCount,
			OpenTimeout:      cfg.MemberAuthCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.MemberAuthCircuitHalfOpenMax,
		},
		cfg.MemberAuthCacheTTL,
		logger,
	)

	handler := httpapi.NewHandler(
		clubSvc,
		ageGroupSvc,
		teamSvc,
		overviewSvc,
		playerSvc,
		coachSvc,
		drillSvc,
		importSvc,
		templateSvc,
		formationSvc,
		tacticSvc,
		matchSvc,
		trainingSvc,
		logger,
	)
	router := httpapi.NewRouter(handler, authClient, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}
