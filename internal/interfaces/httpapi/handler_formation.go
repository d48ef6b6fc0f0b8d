package httpapi

import (
	"net/http"

	"github.com/pitchside/clubadmin/internal/domain/formation"
)

type formationSlotDTO struct {
	SlotIndex int     `json:"slotIndex"`
	Role      string  `json:"role"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
}

type formationDTO struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	SquadSize int                `json:"squadSize"`
	Slots     []formationSlotDTO `json:"slots"`
}

func formationToDTO(f formation.Formation) formationDTO {
	slots := make([]formationSlotDTO, 0, len(f.Slots))
	for _, s := range f.Slots {
		slots = append(slots, formationSlotDTO{
			SlotIndex: s.SlotIndex,
			Role:      s.Role,
			X:         s.X,
			Y:         s.Y,
		})
	}

	return formationDTO{
		ID:        f.ID,
		Name:      f.Name,
		SquadSize: f.SquadSize,
		Slots:     slots,
	}
}

// ListFormations returns the formation catalog, optionally narrowed to one
// squad size via ?squadSize=.
func (h *Handler) ListFormations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFormations")
	defer span.End()

	squadSize, err := queryInt(r, "squadSize")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	formations, err := h.formationService.List(ctx, squadSize)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items := make([]formationDTO, 0, len(formations))
	for _, f := range formations {
		items = append(items, formationToDTO(f))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetFormation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFormation")
	defer span.End()

	f, err := h.formationService.Get(ctx, r.PathValue("formationID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, formationToDTO(f))
}
