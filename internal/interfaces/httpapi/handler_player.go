package httpapi

import (
	"net/http"
	"time"

	"github.com/pitchside/clubadmin/internal/domain/player"
	"github.com/pitchside/clubadmin/internal/usecase"
)

type playerDTO struct {
	ID            string    `json:"id"`
	TeamID        string    `json:"teamId"`
	Name          string    `json:"name"`
	BirthDate     time.Time `json:"birthDate"`
	ShirtNumber   int       `json:"shirtNumber,omitempty"`
	PreferredFoot string    `json:"preferredFoot,omitempty"`
	Archived      bool      `json:"archived"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type playerRequest struct {
	Name          string    `json:"name" validate:"required,max=120"`
	BirthDate     time.Time `json:"birthDate" validate:"required"`
	ShirtNumber   int       `json:"shirtNumber" validate:"omitempty,gte=1,lte=99"`
	PreferredFoot string    `json:"preferredFoot" validate:"omitempty,oneof=left right both"`
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:            p.ID,
		TeamID:        p.TeamID,
		Name:          p.Name,
		BirthDate:     p.BirthDate,
		ShirtNumber:   p.ShirtNumber,
		PreferredFoot: p.PreferredFoot,
		Archived:      p.IsArchived,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	clubID, ageGroupID, teamID := scopeParams(r)
	players, err := h.playerService.ListByTeam(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	clubID, ageGroupID, teamID := scopeParams(r)
	p, err := h.playerService.Get(ctx, clubID, ageGroupID, teamID, r.PathValue("playerID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(p))
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req playerRequest
	if err := decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	clubID, ageGroupID, teamID := scopeParams(r)
	p, err := h.playerService.Create(ctx, clubID, ageGroupID, teamID, usecase.PlayerInput{
		Name:          req.Name,
		BirthDate:     req.BirthDate,
		ShirtNumber:   req.ShirtNumber,
		PreferredFoot: req.PreferredFoot,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(p))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	var req playerRequest
	if err := decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	clubID, ageGroupID, teamID := scopeParams(r)
	p, err := h.playerService.Update(ctx, clubID, ageGroupID, teamID, r.PathValue("playerID"), usecase.PlayerInput{
		Name:          req.Name,
		BirthDate:     req.BirthDate,
		ShirtNumber:   req.ShirtNumber,
		PreferredFoot: req.PreferredFoot,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "player_id", r.PathValue("playerID"), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(p))
}

func (h *Handler) ArchivePlayer(w http.ResponseWriter, r *http.Request) {
	h.setPlayerArchived(w, r, true)
}

func (h *Handler) UnarchivePlayer(w http.ResponseWriter, r *http.Request) {
	h.setPlayerArchived(w, r, false)
}

func (h *Handler) setPlayerArchived(w http.ResponseWriter, r *http.Request, archived bool) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.setPlayerArchived")
	defer span.End()

	clubID, ageGroupID, teamID := scopeParams(r)
	p, err := h.playerService.SetArchived(ctx, clubID, ageGroupID, teamID, r.PathValue("playerID"), archived)
	if err != nil {
		h.logger.WarnContext(ctx, "set player archived failed", "player_id", r.PathValue("playerID"), "archived", archived, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(p))
}
