package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Pack errors
	ErrMsgPoolExhausted   = "card pool exhausted"
	ErrMsgPackNotFound    = "pack not found"
	ErrMsgUnknownPackType = "unknown pack type"

	// Player errors
	ErrMsgPlayerNotFound = "player not found"
	ErrMsgUsernameTaken  = "username already taken"

	// Card errors
	ErrMsgCardNotFound = "card not found"
	ErrMsgCardNotOwned = "card not owned"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Achievement errors
	ErrMsgAchievementNotFound = "achievement not found"
	ErrMsgAchievementLocked   = "achievement condition not met"
	ErrMsgAchievementClaimed  = "achievement already claimed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Database/System errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrPoolExhausted   = errors.New(ErrMsgPoolExhausted)
	ErrPackNotFound    = errors.New(ErrMsgPackNotFound)
	ErrUnknownPackType = errors.New(ErrMsgUnknownPackType)

	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)
	ErrUsernameTaken  = errors.New(ErrMsgUsernameTaken)

	ErrCardNotFound = errors.New(ErrMsgCardNotFound)
	ErrCardNotOwned = errors.New(ErrMsgCardNotOwned)

	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	ErrAchievementNotFound = errors.New(ErrMsgAchievementNotFound)
	ErrAchievementLocked   = errors.New(ErrMsgAchievementLocked)
	ErrAchievementClaimed  = errors.New(ErrMsgAchievementClaimed)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
