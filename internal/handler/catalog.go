package handler

import (
	"net/http"

	"github.com/osse101/PackOpenSim_Go/internal/catalog"
	"github.com/osse101/PackOpenSim_Go/internal/logger"
)

// ImportCardsRequest is the body of POST /admin/cards/import
type ImportCardsRequest struct {
	SetID string `json:"set_id" validate:"required,max=32"`
}

// ImportCardsResponse reports how many cards were stored
type ImportCardsResponse struct {
	Message string `json:"message"`
	SetID   string `json:"set_id"`
	Count   int    `json:"count"`
}

// CatalogHandlers serves the card catalog
type CatalogHandlers struct {
	catalog      catalog.Service
	defaultSetID string
}

// NewCatalogHandlers creates the catalog handler group
func NewCatalogHandlers(s catalog.Service, defaultSetID string) *CatalogHandlers {
	return &CatalogHandlers{catalog: s, defaultSetID: defaultSetID}
}

// HandleListCards lists the cards of a set
// @Summary List cards
// @Tags cards
// @Produce json
// @Param set query string false "Set id (defaults to the configured set)"
// @Success 200 {array} domain.Card
// @Router /api/v1/cards [get]
func (h *CatalogHandlers) HandleListCards() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		setID := GetOptionalQueryParam(r, QueryParamSet, h.defaultSetID)
		cards, err := h.catalog.ListCards(r.Context(), setID)
		if err != nil {
			respondServiceError(w, r, "List cards", err)
			return
		}
		respondJSON(w, http.StatusOK, cards)
	}
}

// HandleImportCards fetches a set from the upstream card API and stores it
// @Summary Import card set
// @Tags admin
// @Accept json
// @Produce json
// @Param request body ImportCardsRequest true "Set to import"
// @Success 200 {object} ImportCardsResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/admin/cards/import [post]
func (h *CatalogHandlers) HandleImportCards() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ImportCardsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Import cards"); err != nil {
			return
		}

		n, err := h.catalog.Import(r.Context(), req.SetID)
		if err != nil {
			respondServiceError(w, r, "Import cards", err)
			return
		}

		logger.FromContext(r.Context()).Info("Cards imported", "set_id", req.SetID, "count", n)
		respondJSON(w, http.StatusOK, ImportCardsResponse{Message: MsgCardsImported, SetID: req.SetID, Count: n})
	}
}
