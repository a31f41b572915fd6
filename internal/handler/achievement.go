package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/PackOpenSim_Go/internal/achievement"
)

// AchievementHandlers serves achievement status and claims
type AchievementHandlers struct {
	achievements achievement.Service
}

// NewAchievementHandlers creates the achievement handler group
func NewAchievementHandlers(s achievement.Service) *AchievementHandlers {
	return &AchievementHandlers{achievements: s}
}

// HandleList returns every achievement with the player's progress
// @Summary List achievements
// @Tags achievements
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {array} achievement.Status
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/achievements [get]
func (h *AchievementHandlers) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		statuses, err := h.achievements.List(r.Context(), playerIDParam(r))
		if err != nil {
			respondServiceError(w, r, "List achievements", err)
			return
		}
		respondJSON(w, http.StatusOK, statuses)
	}
}

// HandleClaim pays out an unlocked achievement
// @Summary Claim achievement
// @Tags achievements
// @Produce json
// @Param playerID path string true "Player ID"
// @Param achievementID path string true "Achievement ID"
// @Success 200 {object} achievement.ClaimResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/achievements/{achievementID}/claim [post]
func (h *AchievementHandlers) HandleClaim() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := h.achievements.Claim(r.Context(), playerIDParam(r), chi.URLParam(r, ParamAchievementID))
		if err != nil {
			respondServiceError(w, r, "Claim achievement", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}
