package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/PackOpenSim_Go/internal/eventlog"
	"github.com/osse101/PackOpenSim_Go/internal/logger"
	"github.com/osse101/PackOpenSim_Go/internal/pack"
	"github.com/osse101/PackOpenSim_Go/internal/player"
)

// RegisterPlayerRequest is the body of POST /players
type RegisterPlayerRequest struct {
	Username string `json:"username" validate:"required,min=1,max=50,username"`
}

// PlayerHandlers serves player reads and pack opening
type PlayerHandlers struct {
	players player.Service
	events  eventlog.Service
}

// NewPlayerHandlers creates the player handler group
func NewPlayerHandlers(players player.Service, events eventlog.Service) *PlayerHandlers {
	return &PlayerHandlers{players: players, events: events}
}

// HandleRegister registers a new player
// @Summary Register player
// @Tags players
// @Accept json
// @Produce json
// @Param request body RegisterPlayerRequest true "Username"
// @Success 201 {object} domain.Player
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/players [post]
func (h *PlayerHandlers) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterPlayerRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register player"); err != nil {
			return
		}

		p, err := h.players.Register(r.Context(), req.Username)
		if err != nil {
			respondServiceError(w, r, "Register player", err)
			return
		}

		logger.FromContext(r.Context()).Info("Player registered", "player_id", p.ID)
		respondJSON(w, http.StatusCreated, p)
	}
}

// HandleGetPlayer returns the player record with sealed packs
// @Summary Get player
// @Tags players
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} domain.Player
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/players/{playerID} [get]
func (h *PlayerHandlers) HandleGetPlayer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := h.players.GetPlayer(r.Context(), playerIDParam(r))
		if err != nil {
			respondServiceError(w, r, "Get player", err)
			return
		}
		for i := range p.PackInventory {
			p.PackInventory[i].Cards = nil
		}
		respondJSON(w, http.StatusOK, p)
	}
}

// HandleListPacks lists unopened packs without their contents
// @Summary List packs
// @Tags packs
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {array} domain.BoosterPack
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/packs [get]
func (h *PlayerHandlers) HandleListPacks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		packs, err := h.players.ListPacks(r.Context(), playerIDParam(r))
		if err != nil {
			respondServiceError(w, r, "List packs", err)
			return
		}
		respondJSON(w, http.StatusOK, packs)
	}
}

// HandleOpenPack opens one pack by id and reveals its cards
// @Summary Open pack
// @Tags packs
// @Produce json
// @Param playerID path string true "Player ID"
// @Param packID path int true "Pack ID"
// @Success 200 {object} pack.OpenResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/packs/{packID}/open [post]
func (h *PlayerHandlers) HandleOpenPack() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		packID, err := pack.ParsePackID(chi.URLParam(r, ParamPackID))
		if err != nil {
			logger.FromContext(r.Context()).Warn("Invalid pack id", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidPackID)
			return
		}

		res, err := h.players.OpenPack(r.Context(), playerIDParam(r), packID)
		if err != nil {
			respondServiceError(w, r, "Open pack", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}

// HandleGetCollection returns the player's owned cards
// @Summary Get collection
// @Tags cards
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} player.Collection
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/cards [get]
func (h *PlayerHandlers) HandleGetCollection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := h.players.GetCollection(r.Context(), playerIDParam(r))
		if err != nil {
			respondServiceError(w, r, "Get collection", err)
			return
		}
		respondJSON(w, http.StatusOK, c)
	}
}

// HandleGetHistory returns the player's most recent logged events
// @Summary Player event history
// @Tags players
// @Produce json
// @Param playerID path string true "Player ID"
// @Param limit query int false "Max events (default 50, max 500)"
// @Success 200 {array} repository.EventLogEntry
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/history [get]
func (h *PlayerHandlers) HandleGetHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := getLimitParam(w, r)
		if !ok {
			return
		}

		entries, err := h.events.History(r.Context(), playerIDParam(r), limit)
		if err != nil {
			respondServiceError(w, r, "Get history", err)
			return
		}
		respondJSON(w, http.StatusOK, entries)
	}
}
