package httpapi

import (
	"net/http"
	"time"

	"github.com/pitchside/clubadmin/internal/domain/team"
	"github.com/pitchside/clubadmin/internal/usecase"
)

type teamDTO struct {
	ID         string    `json:"id"`
	ClubID     string    `json:"clubId"`
	AgeGroupID string    `json:"ageGroupId"`
	Name       string    `json:"name"`
	Short      string    `json:"short,omitempty"`
	Archived   bool      `json:"archived"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type teamRequest struct {
	Name  string `json:"name" validate:"required,max=60"`
	Short string `json:"short" validate:"omitempty,max=8"`
}

type teamOverviewDTO struct {
	Team     teamDTO              `json:"team"`
	Players  []playerDTO          `json:"players"`
	Coaches  []coachDTO           `json:"coaches"`
	Matches  []matchDTO           `json:"matches"`
	Sessions []trainingSessionDTO `json:"sessions"`
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:         t.ID,
		ClubID:     t.ClubID,
		AgeGroupID: t.AgeGroupID,
		Name:       t.Name,
		Short:      t.Short,
		Archived:   t.IsArchived,
		UpdatedAt:  t.UpdatedAt,
	}
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.teamService.ListByAgeGroup(ctx, r.PathValue("clubID"), r.PathValue("ageGroupID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	t, err := h.teamService.Get(ctx, r.PathValue("clubID"), r.PathValue("ageGroupID"), r.PathValue("teamID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(t))
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	var req teamRequest
	if err := decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	t, err := h.teamService.Create(ctx, r.PathValue("clubID"), r.PathValue("ageGroupID"), usecase.CreateTeamInput{
		Name:  req.Name,
		Short: req.Short,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create team failed", "age_group_id", r.PathValue("ageGroupID"), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(t))
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTeam")
	defer span.End()

	var req teamRequest
	if err := decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	t, err := h.teamService.Update(ctx, r.PathValue("clubID"), r.PathValue("ageGroupID"), r.PathValue("teamID"), usecase.UpdateTeamInput{
		Name:  req.Name,
		Short: req.Short,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update team failed", "team_id", r.PathValue("teamID"), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(t))
}

func (h *Handler) ArchiveTeam(w http.ResponseWriter, r *http.Request) {
	h.setTeamArchived(w, r, true)
}

func (h *Handler) UnarchiveTeam(w http.ResponseWriter, r *http.Request) {
	h.setTeamArchived(w, r, false)
}

func (h *Handler) setTeamArchived(w http.ResponseWriter, r *http.Request, archived bool) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.setTeamArchived")
	defer span.End()

	t, err := h.teamService.SetArchived(ctx, r.PathValue("clubID"), r.PathValue("ageGroupID"), r.PathValue("teamID"), archived)
	if err != nil {
		h.logger.WarnContext(ctx, "set team archived failed", "team_id", r.PathValue("teamID"), "archived", archived, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(t))
}

// GetTeamOverview aggregates the roster, staff and schedule for one team in
// a single response.
func (h *Handler) GetTeamOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamOverview")
	defer span.End()

	overview, err := h.overviewService.Get(ctx, r.PathValue("clubID"), r.PathValue("ageGroupID"), r.PathValue("teamID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	dto := teamOverviewDTO{
		Team:     teamToDTO(overview.Team),
		Players:  make([]playerDTO, 0, len(overview.Players)),
		Coaches:  make([]coachDTO, 0, len(overview.Coaches)),
		Matches:  make([]matchDTO, 0, len(overview.Matches)),
		Sessions: make([]trainingSessionDTO, 0, len(overview.Sessions)),
	}
	for _, p := range overview.Players {
		dto.Players = append(dto.Players, playerToDTO(p))
	}
	for _, c := range overview.Coaches {
		dto.Coaches = append(dto.Coaches, coachToDTO(c))
	}
	for _, m := range overview.Matches {
		dto.Matches = append(dto.Matches, matchToDTO(m))
	}
	for _, s := range overview.Sessions {
		dto.Sessions = append(dto.Sessions, trainingSessionToDTO(s))
	}

	writeSuccess(ctx, w, http.StatusOK, dto)
}
