package httpapi

import (
	"net/http"
	"time"

	"github.com/pitchside/clubadmin/internal/domain/drill"
	"github.com/pitchside/clubadmin/internal/domain/scope"
	"github.com/pitchside/clubadmin/internal/usecase"
)

type scopeRefDTO struct {
	Level      string `json:"level"`
	ClubID     string `json:"clubId"`
	AgeGroupID string `json:"ageGroupId,omitempty"`
	TeamID     string `json:"teamId,omitempty"`
}

func scopeRefToDTO(ref scope.Reference) scopeRefDTO {
	return scopeRefDTO{
		Level:      ref.Level().String(),
		ClubID:     ref.ClubID(),
		AgeGroupID: ref.AgeGroupID(),
		TeamID:     ref.TeamID(),
	}
}

type drillDTO struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Category        string      `json:"category,omitempty"`
	Description     string      `json:"description,omitempty"`
	Scope           scopeRefDTO `json:"scope"`
	Attributes      []string    `json:"attributes,omitempty"`
	DurationMinutes int         `json:"durationMinutes,omitempty"`
	Archived        bool        `json:"archived"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

type scopedDrillListDTO struct {
	ScopeItems     []drillDTO `json:"scopeItems"`
	InheritedItems []drillDTO `json:"inheritedItems"`
}

type drillRequest struct {
	Name            string   `json:"name" validate:"required,max=120"`
	Category        string   `json:"category" validate:"omitempty,max=60"`
	Description     string   `json:"description" validate:"omitempty,max=2000"`
	Attributes      []string `json:"attributes" validate:"omitempty,dive,max=40"`
	DurationMinutes int      `json:"durationMinutes" validate:"omitempty,gte=1,lte=240"`
}

type drillImportRequest struct {
	Rows       []drillRequest `json:"rows" validate:"required,min=1,max=500,dive"`
	MaxWorkers int            `json:"maxWorkers" validate:"omitempty,gte=1,lte=16"`
	DryRun     bool           `json:"dryRun"`
}

func drillToDTO(d drill.Drill) drillDTO {
	return drillDTO{
		ID:              d.ID,
		Name:            d.Name,
		Category:        d.Category,
		Description:     d.Description,
		Scope:           scopeRefToDTO(d.Scope),
		Attributes:      d.Attributes,
		DurationMinutes: d.DurationMinutes,
		Archived:        d.IsArchived,
		UpdatedAt:       d.UpdatedAt,
	}
}

func (r drillRequest) toInput() usecase.DrillInput {
	return usecase.DrillInput{
		Name:            r.Name,
		Category:        r.Category,
		Description:     r.Description,
		Attributes:      r.Attributes,
		DurationMinutes: r.DurationMinutes,
	}
}

func (h *Handler) ListDrills(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDrills")
	defer span.End()

	clubID, ageGroupID, teamID := scopeParams(r)
	result, err := h.drillService.ListScoped(ctx, clubID, ageGroupID, teamID, scopedFilters(r))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	dto := scopedDrillListDTO{
		ScopeItems:     make([]drillDTO, 0, len(result.ScopeItems)),
		InheritedItems: make([]drillDTO, 0, len(result.InheritedItems)),
	}
	for _, d := range result.ScopeItems {
		dto.ScopeItems = append(dto.ScopeItems, drillToDTO(d))
	}
	for _, d := range result.InheritedItems {
		dto.InheritedItems = append(dto.InheritedItems, drillToDTO(d))
	}

	writeSuccess(ctx, w, http.StatusOK, dto)
}

func (h *Handler) GetDrill(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDrill")
	defer span.End()

	clubID, ageGroupID, teamID := scopeParams(r)
	d, err := h.drillService.Get(ctx, clubID, ageGroupID, teamID, r.PathValue("drillID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, drillToDTO(d))
}

func (h *Handler) CreateDrill(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateDrill")
	defer span.End()

	var req drillRequest
	if err := decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	clubID, ageGroupID, teamID := scopeParams(r)
	d, err := h.drillService.Create(ctx, clubID, ageGroupID, teamID, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "create drill failed", "club_id", clubID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, drillToDTO(d))
}

func (h *Handler) UpdateDrill(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateDrill")
	defer span.End()

	var req drillRequest
	if err := decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	clubID, ageGroupID, teamID := scopeParams(r)
	d, err := h.drillService.Update(ctx, clubID, ageGroupID, teamID, r.PathValue("drillID"), req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "update drill failed", "drill_id", r.PathValue("drillID"), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, drillToDTO(d))
}

func (h *Handler) ArchiveDrill(w http.ResponseWriter, r *http.Request) {
	h.setDrillArchived(w, r, true)
}

func (h *Handler) UnarchiveDrill(w http.ResponseWriter, r *http.Request) {
	h.setDrillArchived(w, r, false)
}

func (h *Handler) setDrillArchived(w http.ResponseWriter, r *http.Request, archived bool) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.setDrillArchived")
	defer span.End()

	clubID, ageGroupID, teamID := scopeParams(r)
	d, err := h.drillService.SetArchived(ctx, clubID, ageGroupID, teamID, r.PathValue("drillID"), archived)
	if err != nil {
		h.logger.WarnContext(ctx, "set drill archived failed", "drill_id", r.PathValue("drillID"), "archived", archived, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, drillToDTO(d))
}

// ImportDrills bulk-creates drills at the addressed scope. The whole batch
// either passes the archive guard or fails up front; rows then succeed or
// fail individually.
func (h *Handler) ImportDrills(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportDrills")
	defer span.End()

	var req drillImportRequest
	if err := decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	rows := make([]usecase.DrillInput, 0, len(req.Rows))
	for _, row := range req.Rows {
		rows = append(rows, row.toInput())
	}

	clubID, ageGroupID, teamID := scopeParams(r)
	result, err := h.importService.Import(ctx, clubID, ageGroupID, teamID, usecase.DrillImportInput{
		Rows:       rows,
		MaxWorkers: req.MaxWorkers,
		DryRun:     req.DryRun,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "drill import failed", "club_id", clubID, "row_count", len(rows), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
