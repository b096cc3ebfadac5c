package model

import "errors"

// Common errors used across the application
var (
	// Identity errors
	ErrDuplicateID = errors.New("id already exists")
	ErrNotFound    = errors.New("entity not found")

	// Reference errors
	ErrReferenceNotFound = errors.New("referenced entity not found")
	ErrInvalidParent     = errors.New("invalid parent reference")

	// Balance errors
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrLimitExceeded       = errors.New("withdrawal limit exceeded")

	// Bet errors
	ErrAlreadyResolved   = errors.New("bet is already resolved")
	ErrPlayerHasOpenBets = errors.New("player has unresolved bets")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
)
