package httpapi

import (
	"net/http"
	"time"

	"github.com/pitchside/clubadmin/internal/domain/club"
	"github.com/pitchside/clubadmin/internal/usecase"
)

type clubDTO struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	FoundedAt *time.Time `json:"foundedAt,omitempty"`
	Archived  bool       `json:"archived"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type createClubRequest struct {
	Name      string     `json:"name" validate:"required,max=120"`
	FoundedAt *time.Time `json:"foundedAt,omitempty"`
}

type updateClubRequest struct {
	Name string `json:"name" validate:"required,max=120"`
}

func clubToDTO(c club.Club) clubDTO {
	dto := clubDTO{
		ID:        c.ID,
		Name:      c.Name,
		Archived:  c.IsArchived,
		UpdatedAt: c.UpdatedAt,
	}
	if !c.FoundedAt.IsZero() {
		founded := c.FoundedAt
		dto.FoundedAt = &founded
	}
	return dto
}

func (h *Handler) ListClubs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListClubs")
	defer span.End()

	clubs, err := h.clubService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list clubs failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]clubDTO, 0, len(clubs))
	for _, c := range clubs {
		items = append(items, clubToDTO(c))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetClub")
	defer span.End()

	c, err := h.clubService.Get(ctx, r.PathValue("clubID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clubToDTO(c))
}

func (h *Handler) CreateClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateClub")
	defer span.End()

	var req createClubRequest
	if err := decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	input := usecase.CreateClubInput{Name: req.Name}
	if req.FoundedAt != nil {
		input.FoundedAt = *req.FoundedAt
	}
	c, err := h.clubService.Create(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "create club failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, clubToDTO(c))
}

func (h *Handler) UpdateClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateClub")
	defer span.End()

	var req updateClubRequest
	if err := decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	c, err := h.clubService.Update(ctx, r.PathValue("clubID"), usecase.UpdateClubInput{Name: req.Name})
	if err != nil {
		h.logger.WarnContext(ctx, "update club failed", "club_id", r.PathValue("clubID"), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clubToDTO(c))
}

func (h *Handler) ArchiveClub(w http.ResponseWriter, r *http.Request) {
	h.setClubArchived(w, r, true)
}

func (h *Handler) UnarchiveClub(w http.ResponseWriter, r *http.Request) {
	h.setClubArchived(w, r, false)
}

func (h *Handler) setClubArchived(w http.ResponseWriter, r *http.Request, archived bool) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.setClubArchived")
	defer span.End()

	c, err := h.clubService.SetArchived(ctx, r.PathValue("clubID"), archived)
	if err != nil {
		h.logger.WarnContext(ctx, "set club archived failed", "club_id", r.PathValue("clubID"), "archived", archived, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clubToDTO(c))
}
