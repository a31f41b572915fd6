package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/osse101/PackOpenSim_Go/internal/domain"
	"github.com/osse101/PackOpenSim_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload.
// The payload is encoded before the header is written, so an encode failure
// still produces a 500 instead of a truncated 200.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		logger.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgInvalidInputError  = "Invalid request. Please check your inputs."

	ErrMsgPlayerNotFoundError      = "Player not found"
	ErrMsgUsernameTakenError       = "Username is already taken"
	ErrMsgPackNotFoundError        = "Pack not found"
	ErrMsgUnknownPackTypeError     = "Unknown pack type"
	ErrMsgCardNotFoundError        = "Card not found"
	ErrMsgCardNotOwnedError        = "You don't own that card"
	ErrMsgNotEnoughMoneyError      = "Not enough money"
	ErrMsgAchievementNotFoundError = "Achievement not found"
	ErrMsgAchievementLockedError   = "Achievement is not unlocked yet"
	ErrMsgAchievementClaimedError  = "Achievement already claimed"
	ErrMsgPoolExhaustedError       = "Packs are unavailable right now. Please try again later."
)

// mapServiceErrorToUserMessage converts service errors to an HTTP status and a
// message the client can act on. Unknown errors become a generic 500.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFoundError
	case errors.Is(err, domain.ErrPackNotFound):
		return http.StatusNotFound, ErrMsgPackNotFoundError
	case errors.Is(err, domain.ErrCardNotFound):
		return http.StatusNotFound, ErrMsgCardNotFoundError
	case errors.Is(err, domain.ErrAchievementNotFound):
		return http.StatusNotFound, ErrMsgAchievementNotFoundError
	case errors.Is(err, domain.ErrUnknownPackType):
		return http.StatusBadRequest, ErrMsgUnknownPackTypeError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughMoneyError
	case errors.Is(err, domain.ErrCardNotOwned):
		return http.StatusBadRequest, ErrMsgCardNotOwnedError
	case errors.Is(err, domain.ErrAchievementLocked):
		return http.StatusBadRequest, ErrMsgAchievementLockedError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrAchievementClaimed):
		return http.StatusConflict, ErrMsgAchievementClaimedError
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusConflict, ErrMsgUsernameTakenError
	case errors.Is(err, domain.ErrPoolExhausted):
		return http.StatusServiceUnavailable, ErrMsgPoolExhaustedError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs err and writes the mapped error response.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err, "status", status)
	} else {
		log.Warn(opName+" rejected", "error", err, "status", status)
	}
	respondError(w, status, msg)
}
