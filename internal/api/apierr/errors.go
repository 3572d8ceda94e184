package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/linesgame/linesim/internal/model"
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
	CodeInvalidConfig       = "INVALID_CONFIG"
	CodeInvalidPosition     = "INVALID_POSITION"
	CodeSourceEmpty         = "SOURCE_EMPTY"
	CodeDestinationOccupied = "DESTINATION_OCCUPIED"
	CodeNoPath              = "NO_PATH"
	CodeSessionNotFound     = "SESSION_NOT_FOUND"
	CodeGameOver            = "GAME_OVER"
	CodeUnknownStrategy     = "UNKNOWN_STRATEGY"
	CodeNoValidMoves        = "NO_VALID_MOVES"
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
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSessionNotFound, "Session not found"}}
	case errors.Is(err, model.ErrInvalidConfig):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidConfig, "Invalid game configuration"}}
	case errors.Is(err, model.ErrInvalidPosition):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPosition, "Position is outside the board"}}
	case errors.Is(err, model.ErrSourceEmpty):
		return &httpError{http.StatusConflict, APIError{CodeSourceEmpty, "Source cell is empty"}}
	case errors.Is(err, model.ErrDestinationOccupied):
		return &httpError{http.StatusConflict, APIError{CodeDestinationOccupied, "Destination cell is occupied"}}
	case errors.Is(err, model.ErrNoPath):
		return &httpError{http.StatusConflict, APIError{CodeNoPath, "No path from source to destination"}}
	case errors.Is(err, model.ErrGameOver):
		return &httpError{http.StatusConflict, APIError{CodeGameOver, "Game is over"}}
	case errors.Is(err, model.ErrUnknownStrategy):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownStrategy, "Unknown bot strategy"}}
	case errors.Is(err, model.ErrNoValidMoves):
		return &httpError{http.StatusConflict, APIError{CodeNoValidMoves, "No valid moves available"}}

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
