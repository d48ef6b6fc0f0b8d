package httpapi

import (
	"net/http"
	"time"

	"github.com/pitchside/clubadmin/internal/domain/match"
	"github.com/pitchside/clubadmin/internal/usecase"
)

type lineupEntryDTO struct {
	SlotIndex int    `json:"slotIndex"`
	PlayerID  string `json:"playerId"`
}

type matchDTO struct {
	ID        string           `json:"id"`
	TeamID    string           `json:"teamId"`
	Opponent  string           `json:"opponent"`
	KickoffAt time.Time        `json:"kickoffAt"`
	Venue     string           `json:"venue,omitempty"`
	Home      bool             `json:"home"`
	TacticID  string           `json:"tacticId,omitempty"`
	Lineup    []lineupEntryDTO `json:"lineup,omitempty"`
	Archived  bool             `json:"archived"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

type lineupPositionDTO struct {
	SlotIndex int        `json:"slotIndex"`
	Role      string     `json:"role"`
	X         float64    `json:"x"`
	Y         float64    `json:"y"`
	Player    *playerDTO `json:"player,omitempty"`
}

type lineupEntryRequest struct {
	SlotIndex int    `json:"slotIndex" validate:"gte=0"`
	PlayerID  string `json:"playerId" validate:"required"`
}

type matchRequest struct {
	Opponent  string               `json:"opponent" validate:"required,max=120"`
	KickoffAt time.Time            `json:"kickoffAt" validate:"required"`
	Venue     string               `json:"venue" validate:"omitempty,max=200"`
	Home      bool                 `json:"home"`
	TacticID  string               `json:"tacticId"`
	Lineup    []lineupEntryRequest `json:"lineup" validate:"omitempty,dive"`
}

func matchToDTO(m match.Match) matchDTO {
	var lineup []lineupEntryDTO
	if len(m.Lineup) > 0 {
		lineup = make([]lineupEntryDTO, 0, len(m.Lineup))
		for _, e := range m.Lineup {
			lineup = append(lineup, lineupEntryDTO{SlotIndex: e.SlotIndex, PlayerID: e.PlayerID})
		}
	}

	return matchDTO{
		ID:        m.ID,
		TeamID:    m.TeamID,
		Opponent:  m.Opponent,
		KickoffAt: m.KickoffAt,
		Venue:     m.Venue,
		Home:      m.Home,
		TacticID:  m.TacticID,
		Lineup:    lineup,
		Archived:  m.IsArchived,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r matchRequest) toInput() usecase.MatchInput {
	var lineup []match.LineupEntry
	if len(r.Lineup) > 0 {
		lineup = make([]match.LineupEntry, 0, len(r.Lineup))
		for _, e := range r.Lineup {
			lineup = append(lineup, match.LineupEntry{SlotIndex: e.SlotIndex, PlayerID: e.PlayerID})
		}
	}

	return usecase.MatchInput{
		Opponent:  r.Opponent,
		KickoffAt: r.KickoffAt,
		Venue:     r.Venue,
		Home:      r.Home,
		TacticID:  r.TacticID,
		Lineup:    lineup,
	}
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	clubID, ageGroupID, teamID := scopeParams(r)
	matches, err := h.matchService.ListByTeam(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	clubID, ageGroupID, teamID := scopeParams(r)
	m, err := h.matchService.Get(ctx, clubID, ageGroupID, teamID, r.PathValue("matchID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(m))
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	var req matchRequest
	if err := decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	clubID, ageGroupID, teamID := scopeParams(r)
	m, err := h.matchService.Create(ctx, clubID, ageGroupID, teamID, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(m))
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatch")
	defer span.End()

	var req matchRequest
	if err := decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	clubID, ageGroupID, teamID := scopeParams(r)
	m, err := h.matchService.Update(ctx, clubID, ageGroupID, teamID, r.PathValue("matchID"), req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "update match failed", "match_id", r.PathValue("matchID"), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(m))
}

func (h *Handler) ArchiveMatch(w http.ResponseWriter, r *http.Request) {
	h.setMatchArchived(w, r, true)
}

func (h *Handler) UnarchiveMatch(w http.ResponseWriter, r *http.Request) {
	h.setMatchArchived(w, r, false)
}

func (h *Handler) setMatchArchived(w http.ResponseWriter, r *http.Request, archived bool) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.setMatchArchived")
	defer span.End()

	clubID, ageGroupID, teamID := scopeParams(r)
	m, err := h.matchService.SetArchived(ctx, clubID, ageGroupID, teamID, r.PathValue("matchID"), archived)
	if err != nil {
		h.logger.WarnContext(ctx, "set match archived failed", "match_id", r.PathValue("matchID"), "archived", archived, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(m))
}

// GetMatchLineup resolves the match tactic's positions and joins the assigned
// players onto them by slot index.
func (h *Handler) GetMatchLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchLineup")
	defer span.End()

	clubID, ageGroupID, teamID := scopeParams(r)
	positions, err := h.matchService.Lineup(ctx, clubID, ageGroupID, teamID, r.PathValue("matchID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items := make([]lineupPositionDTO, 0, len(positions))
	for _, p := range positions {
		item := lineupPositionDTO{
			SlotIndex: p.SlotIndex,
			Role:      p.Role,
			X:         p.X,
			Y:         p.Y,
		}
		if p.Player != nil {
			dto := playerToDTO(*p.Player)
			item.Player = &dto
		}
		items = append(items, item)
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
