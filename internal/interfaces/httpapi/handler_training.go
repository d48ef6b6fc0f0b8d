package httpapi

import (
	"net/http"
	"time"

	"github.com/pitchside/clubadmin/internal/domain/training"
	"github.com/pitchside/clubadmin/internal/usecase"
)

type sessionBlockDTO struct {
	DrillID         string `json:"drillId"`
	DurationMinutes int    `json:"durationMinutes"`
	Note            string `json:"note,omitempty"`
}

type trainingSessionDTO struct {
	ID           string            `json:"id"`
	TeamID       string            `json:"teamId"`
	StartsAt     time.Time         `json:"startsAt"`
	Blocks       []sessionBlockDTO `json:"blocks"`
	TemplateID   string            `json:"templateId,omitempty"`
	TotalMinutes int               `json:"totalMinutes"`
	Archived     bool              `json:"archived"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

type sessionBlockRequest struct {
	DrillID         string `json:"drillId" validate:"required"`
	DurationMinutes int    `json:"durationMinutes" validate:"required,gte=1,lte=240"`
	Note            string `json:"note" validate:"omitempty,max=500"`
}

type trainingSessionRequest struct {
	StartsAt   time.Time             `json:"startsAt" validate:"required"`
	Blocks     []sessionBlockRequest `json:"blocks" validate:"omitempty,dive"`
	TemplateID string                `json:"templateId"`
}

func trainingSessionToDTO(s training.Session) trainingSessionDTO {
	blocks := make([]sessionBlockDTO, 0, len(s.Blocks))
	for _, b := range s.Blocks {
		blocks = append(blocks, sessionBlockDTO{
			DrillID:         b.DrillID,
			DurationMinutes: b.DurationMinutes,
			Note:            b.Note,
		})
	}

	return trainingSessionDTO{
		ID:           s.ID,
		TeamID:       s.TeamID,
		StartsAt:     s.StartsAt,
		Blocks:       blocks,
		TemplateID:   s.TemplateID,
		TotalMinutes: s.TotalMinutes(),
		Archived:     s.IsArchived,
		UpdatedAt:    s.UpdatedAt,
	}
}

func (r trainingSessionRequest) toInput() usecase.TrainingSessionInput {
	blocks := make([]usecase.SessionBlockInput, 0, len(r.Blocks))
	for _, b := range r.Blocks {
		blocks = append(blocks, usecase.SessionBlockInput{
			DrillID:         b.DrillID,
			DurationMinutes: b.DurationMinutes,
			Note:            b.Note,
		})
	}

	return usecase.TrainingSessionInput{
		StartsAt:   r.StartsAt,
		Blocks:     blocks,
		TemplateID: r.TemplateID,
	}
}

func (h *Handler) ListTrainingSessions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTrainingSessions")
	defer span.End()

	clubID, ageGroupID, teamID := scopeParams(r)
	sessions, err := h.trainingService.ListByTeam(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items := make([]trainingSessionDTO, 0, len(sessions))
	for _, s := range sessions {
		items = append(items, trainingSessionToDTO(s))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTrainingSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTrainingSession")
	defer span.End()

	clubID, ageGroupID, teamID := scopeParams(r)
	s, err := h.trainingService.Get(ctx, clubID, ageGroupID, teamID, r.PathValue("sessionID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, trainingSessionToDTO(s))
}

func (h *Handler) CreateTrainingSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTrainingSession")
	defer span.End()

	var req trainingSessionRequest
	if err := decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	clubID, ageGroupID, teamID := scopeParams(r)
	s, err := h.trainingService.Create(ctx, clubID, ageGroupID, teamID, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "create training session failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, trainingSessionToDTO(s))
}

func (h *Handler) UpdateTrainingSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTrainingSession")
	defer span.End()

	var req trainingSessionRequest
	if err := decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	clubID, ageGroupID, teamID := scopeParams(r)
	s, err := h.trainingService.Update(ctx, clubID, ageGroupID, teamID, r.PathValue("sessionID"), req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "update training session failed", "session_id", r.PathValue("sessionID"), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, trainingSessionToDTO(s))
}

func (h *Handler) ArchiveTrainingSession(w http.ResponseWriter, r *http.Request) {
	h.setTrainingSessionArchived(w, r, true)
}

func (h *Handler) UnarchiveTrainingSession(w http.ResponseWriter, r *http.Request) {
	h.setTrainingSessionArchived(w, r, false)
}

func (h *Handler) setTrainingSessionArchived(w http.ResponseWriter, r *http.Request, archived bool) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.setTrainingSessionArchived")
	defer span.End()

	clubID, ageGroupID, teamID := scopeParams(r)
	s, err := h.trainingService.SetArchived(ctx, clubID, ageGroupID, teamID, r.PathValue("sessionID"), archived)
	if err != nil {
		h.logger.WarnContext(ctx, "set training session archived failed", "session_id", r.PathValue("sessionID"), "archived", archived, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, trainingSessionToDTO(s))
}
