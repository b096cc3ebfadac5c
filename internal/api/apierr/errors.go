package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shoockrates/casinosim/internal/command"
	"github.com/shoockrates/casinosim/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeParseError          = "PARSE_ERROR"
	CodeDuplicateID         = "DUPLICATE_ID"
	CodeNotFound            = "NOT_FOUND"
	CodeSessionNotFound     = "SESSION_NOT_FOUND"
	CodeReferenceNotFound   = "REFERENCE_NOT_FOUND"
	CodeInvalidParent       = "INVALID_PARENT"
	CodeInvalidAmount       = "INVALID_AMOUNT"
	CodeInsufficientBalance = "INSUFFICIENT_BALANCE"
	CodeLimitExceeded       = "LIMIT_EXCEEDED"
	CodeAlreadyResolved     = "ALREADY_RESOLVED"
	CodePlayerHasOpenBets   = "PLAYER_HAS_OPEN_BETS"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Parse failures carry their own message
	var pe *command.ParseError
	if errors.As(err, &pe) {
		return &httpError{http.StatusBadRequest, APIError{CodeParseError, pe.Error()}}
	}

	switch {
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSessionNotFound, "Session not found"}}
	case errors.Is(err, model.ErrDuplicateID):
		return &httpError{http.StatusConflict, APIError{CodeDuplicateID, "Id already exists"}}
	case errors.Is(err, model.ErrNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeNotFound, "Entity not found"}}
	case errors.Is(err, model.ErrReferenceNotFound):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeReferenceNotFound, "Referenced entity not found"}}
	case errors.Is(err, model.ErrInvalidParent):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeInvalidParent, "Invalid parent reference"}}
	case errors.Is(err, model.ErrInvalidAmount):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidAmount, "Amount must be positive"}}
	case errors.Is(err, model.ErrInsufficientBalance):
		return &httpError{http.StatusConflict, APIError{CodeInsufficientBalance, "Insufficient balance"}}
	case errors.Is(err, model.ErrLimitExceeded):
		return &httpError{http.StatusConflict, APIError{CodeLimitExceeded, "Withdrawal limit exceeded"}}
	case errors.Is(err, model.ErrAlreadyResolved):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyResolved, "Bet is already resolved"}}
	case errors.Is(err, model.ErrPlayerHasOpenBets):
		return &httpError{http.StatusConflict, APIError{CodePlayerHasOpenBets, "Player has unresolved bets"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
