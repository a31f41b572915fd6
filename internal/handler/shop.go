package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/PackOpenSim_Go/internal/shop"
)

// BuyPackRequest is the body of POST /players/{playerID}/packs
type BuyPackRequest struct {
	PackType string `json:"pack_type" validate:"required,max=64"`
}

// ShopHandlers serves pack purchases and card sales
type ShopHandlers struct {
	shop shop.Service
}

// NewShopHandlers creates the shop handler group
func NewShopHandlers(s shop.Service) *ShopHandlers {
	return &ShopHandlers{shop: s}
}

// HandleListPackTypes lists the pack variants on sale
// @Summary List pack types
// @Tags shop
// @Produce json
// @Success 200 {array} domain.PackType
// @Router /api/v1/shop/packs [get]
func (h *ShopHandlers) HandleListPackTypes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, h.shop.PackTypes())
	}
}

// HandleBuyPack buys one pack for the player
// @Summary Buy pack
// @Tags shop
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param request body BuyPackRequest true "Pack type"
// @Success 201 {object} shop.BuyResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/packs [post]
func (h *ShopHandlers) HandleBuyPack() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BuyPackRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Buy pack"); err != nil {
			return
		}

		res, err := h.shop.BuyPack(r.Context(), playerIDParam(r), req.PackType)
		if err != nil {
			respondServiceError(w, r, "Buy pack", err)
			return
		}
		respondJSON(w, http.StatusCreated, res)
	}
}

// HandleSellCard sells one copy of a card
// @Summary Sell card
// @Tags shop
// @Produce json
// @Param playerID path string true "Player ID"
// @Param cardID path string true "Card ID"
// @Success 200 {object} shop.SellResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/cards/{cardID}/sell [post]
func (h *ShopHandlers) HandleSellCard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := h.shop.SellCard(r.Context(), playerIDParam(r), chi.URLParam(r, ParamCardID))
		if err != nil {
			respondServiceError(w, r, "Sell card", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}
