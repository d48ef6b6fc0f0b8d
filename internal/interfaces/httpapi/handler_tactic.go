package httpapi

import (
	"net/http"
	"time"

	"github.com/pitchside/clubadmin/internal/domain/tactic"
	"github.com/pitchside/clubadmin/internal/usecase"
)

type tacticOverrideDTO struct {
	Role *string  `json:"role,omitempty"`
	X    *float64 `json:"x,omitempty"`
	Y    *float64 `json:"y,omitempty"`
}

type tacticDTO struct {
	ID                string                    `json:"id"`
	Name              string                    `json:"name"`
	Category          string                    `json:"category,omitempty"`
	Description       string                    `json:"description,omitempty"`
	Scope             scopeRefDTO               `json:"scope"`
	SquadSize         int                       `json:"squadSize"`
	ParentFormationID string                    `json:"parentFormationId"`
	Overrides         map[int]tacticOverrideDTO `json:"overrides,omitempty"`
	Attributes        []string                  `json:"attributes,omitempty"`
	Archived          bool                      `json:"archived"`
	UpdatedAt         time.Time                 `json:"updatedAt"`
}

type scopedTacticListDTO struct {
	ScopeItems     []tacticDTO `json:"scopeItems"`
	InheritedItems []tacticDTO `json:"inheritedItems"`
}

type tacticRequest struct {
	Name              string                    `json:"name" validate:"required,max=120"`
	Category          string                    `json:"category" validate:"omitempty,max=60"`
	Description       string                    `json:"description" validate:"omitempty,max=2000"`
	ParentFormationID string                    `json:"parentFormationId" validate:"required"`
	Attributes        []string                  `json:"attributes" validate:"omitempty,dive,max=40"`
	Overrides         map[int]tacticOverrideDTO `json:"overrides"`
}

func tacticToDTO(t tactic.Tactic) tacticDTO {
	var overrides map[int]tacticOverrideDTO
	if len(t.Overrides) > 0 {
		overrides = make(map[int]tacticOverrideDTO, len(t.Overrides))
		for idx, o := range t.Overrides {
			overrides[idx] = tacticOverrideDTO{Role: o.Role, X: o.X, Y: o.Y}
		}
	}

	return tacticDTO{
		ID:                t.ID,
		Name:              t.Name,
		Category:          t.Category,
		Description:       t.Description,
		Scope:             scopeRefToDTO(t.Scope),
		SquadSize:         t.SquadSize,
		ParentFormationID: t.ParentFormationID,
		Overrides:         overrides,
		Attributes:        t.Attributes,
		Archived:          t.IsArchived,
		UpdatedAt:         t.UpdatedAt,
	}
}

func (r tacticRequest) toInput() usecase.TacticInput {
	var overrides map[int]tactic.Override
	if len(r.Overrides) > 0 {
		overrides = make(map[int]tactic.Override, len(r.Overrides))
		for idx, o := range r.Overrides {
			overrides[idx] = tactic.Override{Role: o.Role, X: o.X, Y: o.Y}
		}
	}

	return usecase.TacticInput{
		Name:              r.Name,
		Category:          r.Category,
		Description:       r.Description,
		ParentFormationID: r.ParentFormationID,
		Attributes:        r.Attributes,
		Overrides:         overrides,
	}
}

func (h *Handler) ListTactics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTactics")
	defer span.End()

	clubID, ageGroupID, teamID := scopeParams(r)
	result, err := h.tacticService.ListScoped(ctx, clubID, ageGroupID, teamID, scopedFilters(r))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	dto := scopedTacticListDTO{
		ScopeItems:     make([]tacticDTO, 0, len(result.ScopeItems)),
		InheritedItems: make([]tacticDTO, 0, len(result.InheritedItems)),
	}
	for _, t := range result.ScopeItems {
		dto.ScopeItems = append(dto.ScopeItems, tacticToDTO(t))
	}
	for _, t := range result.InheritedItems {
		dto.InheritedItems = append(dto.InheritedItems, tacticToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, dto)
}

func (h *Handler) GetTactic(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTactic")
	defer span.End()

	clubID, ageGroupID, teamID := scopeParams(r)
	t, err := h.tacticService.Get(ctx, clubID, ageGroupID, teamID, r.PathValue("tacticID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tacticToDTO(t))
}

func (h *Handler) CreateTactic(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTactic")
	defer span.End()

	var req tacticRequest
	if err := decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	clubID, ageGroupID, teamID := scopeParams(r)
	t, err := h.tacticService.Create(ctx, clubID, ageGroupID, teamID, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "create tactic failed", "club_id", clubID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, tacticToDTO(t))
}

func (h *Handler) UpdateTactic(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTactic")
	defer span.End()

	var req tacticRequest
	if err := decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	clubID, ageGroupID, teamID := scopeParams(r)
	t, err := h.tacticService.Update(ctx, clubID, ageGroupID, teamID, r.PathValue("tacticID"), req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "update tactic failed", "tactic_id", r.PathValue("tacticID"), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tacticToDTO(t))
}

func (h *Handler) ArchiveTactic(w http.ResponseWriter, r *http.Request) {
	h.setTacticArchived(w, r, true)
}

func (h *Handler) UnarchiveTactic(w http.ResponseWriter, r *http.Request) {
	h.setTacticArchived(w, r, false)
}

func (h *Handler) setTacticArchived(w http.ResponseWriter, r *http.Request, archived bool) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.setTacticArchived")
	defer span.End()

	clubID, ageGroupID, teamID := scopeParams(r)
	t, err := h.tacticService.SetArchived(ctx, clubID, ageGroupID, teamID, r.PathValue("tacticID"), archived)
	if err != nil {
		h.logger.WarnContext(ctx, "set tactic archived failed", "tactic_id", r.PathValue("tacticID"), "archived", archived, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tacticToDTO(t))
}

// GetTacticPositions returns the tactic's parent formation with its overrides
// applied, one position per slot in slot order.
func (h *Handler) GetTacticPositions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTacticPositions")
	defer span.End()

	clubID, ageGroupID, teamID := scopeParams(r)
	positions, err := h.tacticService.ResolvePositions(ctx, clubID, ageGroupID, teamID, r.PathValue("tacticID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items := make([]formationSlotDTO, 0, len(positions))
	for _, p := range positions {
		items = append(items, formationSlotDTO{
			SlotIndex: p.SlotIndex,
			Role:      p.Role,
			X:         p.X,
			Y:         p.Y,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
