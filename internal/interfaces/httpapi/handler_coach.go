package httpapi

import (
	"net/http"
	"time"

	"github.com/pitchside/clubadmin/internal/domain/coach"
	"github.com/pitchside/clubadmin/internal/usecase"
)

type coachDTO struct {
	ID        string    `json:"id"`
	TeamID    string    `json:"teamId"`
	Name      string    `json:"name"`
	Role      string    `json:"role,omitempty"`
	Email     string    `json:"email,omitempty"`
	Archived  bool      `json:"archived"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type coachRequest struct {
	Name  string `json:"name" validate:"required,max=120"`
	Role  string `json:"role" validate:"omitempty,max=60"`
	Email string `json:"email" validate:"omitempty,email"`
}

func coachToDTO(c coach.Coach) coachDTO {
	return coachDTO{
		ID:        c.ID,
		TeamID:    c.TeamID,
		Name:      c.Name,
		Role:      c.Role,
		Email:     c.Email,
		Archived:  c.IsArchived,
		UpdatedAt: c.UpdatedAt,
	}
}

func (h *Handler) ListCoaches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCoaches")
	defer span.End()

	clubID, ageGroupID, teamID := scopeParams(r)
	coaches, err := h.coachService.ListByTeam(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items := make([]coachDTO, 0, len(coaches))
	for _, c := range coaches {
		items = append(items, coachToDTO(c))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetCoach(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCoach")
	defer span.End()

	clubID, ageGroupID, teamID := scopeParams(r)
	c, err := h.coachService.Get(ctx, clubID, ageGroupID, teamID, r.PathValue("coachID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, coachToDTO(c))
}

func (h *Handler) CreateCoach(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateCoach")
	defer span.End()

	var req coachRequest
	if err := decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	clubID, ageGroupID, teamID := scopeParams(r)
	c, err := h.coachService.Create(ctx, clubID, ageGroupID, teamID, usecase.CoachInput{
		Name:  req.Name,
		Role:  req.Role,
		Email: req.Email,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create coach failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, coachToDTO(c))
}

func (h *Handler) UpdateCoach(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateCoach")
	defer span.End()

	var req coachRequest
	if err := decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	clubID, ageGroupID, teamID := scopeParams(r)
	c, err := h.coachService.Update(ctx, clubID, ageGroupID, teamID, r.PathValue("coachID"), usecase.CoachInput{
		Name:  req.Name,
		Role:  req.Role,
		Email: req.Email,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update coach failed", "coach_id", r.PathValue("coachID"), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, coachToDTO(c))
}

func (h *Handler) ArchiveCoach(w http.ResponseWriter, r *http.Request) {
	h.setCoachArchived(w, r, true)
}

func (h *Handler) UnarchiveCoach(w http.ResponseWriter, r *http.Request) {
	h.setCoachArchived(w, r, false)
}

func (h *Handler) setCoachArchived(w http.ResponseWriter, r *http.Request, archived bool) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.setCoachArchived")
	defer span.End()

	clubID, ageGroupID, teamID := scopeParams(r)
	c, err := h.coachService.SetArchived(ctx, clubID, ageGroupID, teamID, r.PathValue("coachID"), archived)
	if err != nil {
		h.logger.WarnContext(ctx, "set coach archived failed", "coach_id", r.PathValue("coachID"), "archived", archived, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, coachToDTO(c))
}
