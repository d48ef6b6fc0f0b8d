package httpapi

import (
	"net/http"
	"time"

	"github.com/pitchside/clubadmin/internal/domain/drilltemplate"
	"github.com/pitchside/clubadmin/internal/usecase"
)

type templateBlockDTO struct {
	DrillID         string `json:"drillId"`
	DurationMinutes int    `json:"durationMinutes"`
	Note            string `json:"note,omitempty"`
}

type drillTemplateDTO struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Category    string             `json:"category,omitempty"`
	Description string             `json:"description,omitempty"`
	Scope       scopeRefDTO        `json:"scope"`
	Attributes  []string           `json:"attributes,omitempty"`
	Blocks      []templateBlockDTO `json:"blocks"`
	Archived    bool               `json:"archived"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

type scopedTemplateListDTO struct {
	ScopeItems     []drillTemplateDTO `json:"scopeItems"`
	InheritedItems []drillTemplateDTO `json:"inheritedItems"`
}

type templateBlockRequest struct {
	DrillID         string `json:"drillId" validate:"required"`
	DurationMinutes int    `json:"durationMinutes" validate:"required,gte=1,lte=240"`
	Note            string `json:"note" validate:"omitempty,max=500"`
}

type drillTemplateRequest struct {
	Name        string                 `json:"name" validate:"required,max=120"`
	Category    string                 `json:"category" validate:"omitempty,max=60"`
	Description string                 `json:"description" validate:"omitempty,max=2000"`
	Attributes  []string               `json:"attributes" validate:"omitempty,dive,max=40"`
	Blocks      []templateBlockRequest `json:"blocks" validate:"required,min=1,dive"`
}

func drillTemplateToDTO(t drilltemplate.Template) drillTemplateDTO {
	blocks := make([]templateBlockDTO, 0, len(t.Blocks))
	for _, b := range t.Blocks {
		blocks = append(blocks, templateBlockDTO{
			DrillID:         b.DrillID,
			DurationMinutes: b.DurationMinutes,
			Note:            b.Note,
		})
	}

	return drillTemplateDTO{
		ID:          t.ID,
		Name:        t.Name,
		Category:    t.Category,
		Description: t.Description,
		Scope:       scopeRefToDTO(t.Scope),
		Attributes:  t.Attributes,
		Blocks:      blocks,
		Archived:    t.IsArchived,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (r drillTemplateRequest) toInput() usecase.DrillTemplateInput {
	blocks := make([]usecase.TemplateBlockInput, 0, len(r.Blocks))
	for _, b := range r.Blocks {
		blocks = append(blocks, usecase.TemplateBlockInput{
			DrillID:         b.DrillID,
			DurationMinutes: b.DurationMinutes,
			Note:            b.Note,
		})
	}

	return usecase.DrillTemplateInput{
		Name:        r.Name,
		Category:    r.Category,
		Description: r.Description,
		Attributes:  r.Attributes,
		Blocks:      blocks,
	}
}

func (h *Handler) ListDrillTemplates(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDrillTemplates")
	defer span.End()

	clubID, ageGroupID, teamID := scopeParams(r)
	result, err := h.templateService.ListScoped(ctx, clubID, ageGroupID, teamID, scopedFilters(r))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	dto := scopedTemplateListDTO{
		ScopeItems:     make([]drillTemplateDTO, 0, len(result.ScopeItems)),
		InheritedItems: make([]drillTemplateDTO, 0, len(result.InheritedItems)),
	}
	for _, t := range result.ScopeItems {
		dto.ScopeItems = append(dto.ScopeItems, drillTemplateToDTO(t))
	}
	for _, t := range result.InheritedItems {
		dto.InheritedItems = append(dto.InheritedItems, drillTemplateToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, dto)
}

func (h *Handler) GetDrillTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDrillTemplate")
	defer span.End()

	clubID, ageGroupID, teamID := scopeParams(r)
	t, err := h.templateService.Get(ctx, clubID, ageGroupID, teamID, r.PathValue("templateID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, drillTemplateToDTO(t))
}

func (h *Handler) CreateDrillTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateDrillTemplate")
	defer span.End()

	var req drillTemplateRequest
	if err := decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	clubID, ageGroupID, teamID := scopeParams(r)
	t, err := h.templateService.Create(ctx, clubID, ageGroupID, teamID, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "create drill template failed", "club_id", clubID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, drillTemplateToDTO(t))
}

func (h *Handler) UpdateDrillTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateDrillTemplate")
	defer span.End()

	var req drillTemplateRequest
	if err := decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	clubID, ageGroupID, teamID := scopeParams(r)
	t, err := h.templateService.Update(ctx, clubID, ageGroupID, teamID, r.PathValue("templateID"), req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "update drill template failed", "template_id", r.PathValue("templateID"), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, drillTemplateToDTO(t))
}

func (h *Handler) ArchiveDrillTemplate(w http.ResponseWriter, r *http.Request) {
	h.setDrillTemplateArchived(w, r, true)
}

func (h *Handler) UnarchiveDrillTemplate(w http.ResponseWriter, r *http.Request) {
	h.setDrillTemplateArchived(w, r, false)
}

func (h *Handler) setDrillTemplateArchived(w http.ResponseWriter, r *http.Request, archived bool) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.setDrillTemplateArchived")
	defer span.End()

	clubID, ageGroupID, teamID := scopeParams(r)
	t, err := h.templateService.SetArchived(ctx, clubID, ageGroupID, teamID, r.PathValue("templateID"), archived)
	if err != nil {
		h.logger.WarnContext(ctx, "set drill template archived failed", "template_id", r.PathValue("templateID"), "archived", archived, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, drillTemplateToDTO(t))
}
