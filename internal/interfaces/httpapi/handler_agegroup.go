package httpapi

import (
	"net/http"
	"time"

	"github.com/pitchside/clubadmin/internal/domain/agegroup"
	"github.com/pitchside/clubadmin/internal/usecase"
)

type ageGroupDTO struct {
	ID        string    `json:"id"`
	ClubID    string    `json:"clubId"`
	Name      string    `json:"name"`
	BirthYear int       `json:"birthYear,omitempty"`
	Archived  bool      `json:"archived"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ageGroupRequest struct {
	Name      string `json:"name" validate:"required,max=60"`
	BirthYear int    `json:"birthYear" validate:"omitempty,gte=1900,lte=2100"`
}

func ageGroupToDTO(g agegroup.AgeGroup) ageGroupDTO {
	return ageGroupDTO{
		ID:        g.ID,
		ClubID:    g.ClubID,
		Name:      g.Name,
		BirthYear: g.BirthYear,
		Archived:  g.IsArchived,
		UpdatedAt: g.UpdatedAt,
	}
}

func (h *Handler) ListAgeGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAgeGroups")
	defer span.End()

	groups, err := h.ageGroupService.ListByClub(ctx, r.PathValue("clubID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items := make([]ageGroupDTO, 0, len(groups))
	for _, g := range groups {
		items = append(items, ageGroupToDTO(g))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetAgeGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAgeGroup")
	defer span.End()

	g, err := h.ageGroupService.Get(ctx, r.PathValue("clubID"), r.PathValue("ageGroupID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, ageGroupToDTO(g))
}

func (h *Handler) CreateAgeGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateAgeGroup")
	defer span.End()

	var req ageGroupRequest
	if err := decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	g, err := h.ageGroupService.Create(ctx, r.PathValue("clubID"), usecase.CreateAgeGroupInput{
		Name:      req.Name,
		BirthYear: req.BirthYear,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create age group failed", "club_id", r.PathValue("clubID"), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, ageGroupToDTO(g))
}

func (h *Handler) UpdateAgeGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateAgeGroup")
	defer span.End()

	var req ageGroupRequest
	if err := decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	g, err := h.ageGroupService.Update(ctx, r.PathValue("clubID"), r.PathValue("ageGroupID"), usecase.UpdateAgeGroupInput{
		Name:      req.Name,
		BirthYear: req.BirthYear,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update age group failed", "age_group_id", r.PathValue("ageGroupID"), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, ageGroupToDTO(g))
}

func (h *Handler) ArchiveAgeGroup(w http.ResponseWriter, r *http.Request) {
	h.setAgeGroupArchived(w, r, true)
}

func (h *Handler) UnarchiveAgeGroup(w http.ResponseWriter, r *http.Request) {
	h.setAgeGroupArchived(w, r, false)
}

func (h *Handler) setAgeGroupArchived(w http.ResponseWriter, r *http.Request, archived bool) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.setAgeGroupArchived")
	defer span.End()

	g, err := h.ageGroupService.SetArchived(ctx, r.PathValue("clubID"), r.PathValue("ageGroupID"), archived)
	if err != nil {
		h.logger.WarnContext(ctx, "set age group archived failed", "age_group_id", r.PathValue("ageGroupID"), "archived", archived, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, ageGroupToDTO(g))
}
