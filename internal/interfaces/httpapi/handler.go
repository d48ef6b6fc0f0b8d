package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"github.com/pitchside/clubadmin/internal/platform/logging"
	"github.com/pitchside/clubadmin/internal/usecase"
)

type Handler struct {
	clubService      *usecase.ClubService
	ageGroupService  *usecase.AgeGroupService
	teamService      *usecase.TeamService
	overviewService  *usecase.TeamOverviewService
	playerService    *usecase.PlayerService
	coachService     *usecase.CoachService
	drillService     *usecase.DrillService
	importService    *usecase.DrillImportService
	templateService  *usecase.DrillTemplateService
	formationService *usecase.FormationService
	tacticService    *usecase.TacticService
	matchService     *usecase.MatchService
	trainingService  *usecase.TrainingService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	clubService *usecase.ClubService,
	ageGroupService *usecase.AgeGroupService,
	teamService *usecase.TeamService,
	overviewService *usecase.TeamOverviewService,
	playerService *usecase.PlayerService,
	coachService *usecase.CoachService,
	drillService *usecase.DrillService,
	importService *usecase.DrillImportService,
	templateService *usecase.DrillTemplateService,
	formationService *usecase.FormationService,
	tacticService *usecase.TacticService,
	matchService *usecase.MatchService,
	trainingService *usecase.TrainingService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		clubService:      clubService,
		ageGroupService:  ageGroupService,
		teamService:      teamService,
		overviewService:  overviewService,
		playerService:    playerService,
		coachService:     coachService,
		drillService:     drillService,
		importService:    importService,
		templateService:  templateService,
		formationService: formationService,
		tacticService:    tacticService,
		matchService:     matchService,
		trainingService:  trainingService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeRequest parses a JSON body strictly: unknown fields are rejected so
// client typos surface as 400s instead of silently dropped fields.
func decodeRequest(body io.Reader, target any) error {
	decoder := jsoniter.ConfigCompatibleWithStandardLibrary.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// scopeParams reads the hierarchy path wildcards. Routes registered at the
// club or age-group depth simply leave the deeper ids empty.
func scopeParams(r *http.Request) (clubID, ageGroupID, teamID string) {
	return r.PathValue("clubID"), r.PathValue("ageGroupID"), r.PathValue("teamID")
}

// scopedFilters reads the optional narrowing query params shared by every
// scoped listing: category, search, and a comma-separated attributes list.
func scopedFilters(r *http.Request) usecase.ScopedListFilters {
	q := r.URL.Query()

	filters := usecase.ScopedListFilters{
		Category:   strings.TrimSpace(q.Get("category")),
		SearchTerm: strings.TrimSpace(q.Get("search")),
	}
	if raw := strings.TrimSpace(q.Get("attributes")); raw != "" {
		for _, code := range strings.Split(raw, ",") {
			if code = strings.TrimSpace(code); code != "" {
				filters.AttributeCodes = append(filters.AttributeCodes, code)
			}
		}
	}

	return filters
}

func queryInt(r *http.Request, key string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, key)
	}

	return value, nil
}
