// Package lib holds small helpers shared by the HTTP handlers.
package lib

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/discoverrwanda/discover-rwanda-api/internal/types"
)

// WriteJSON encodes v with the given status. Encoding failures are ignored;
// by then the status line is already on the wire.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ErrorBody is the JSON error envelope returned by every handler.
type ErrorBody struct {
	Error  string             `json:"error"`
	Fields []types.FieldError `json:"fields,omitempty"`
}

// WriteError maps a domain error to an HTTP status and writes the envelope.
func WriteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, types.ErrNotFound):
		WriteJSON(w, http.StatusNotFound, ErrorBody{Error: "not found"})
	case errors.Is(err, types.ErrBadRequest):
		WriteJSON(w, http.StatusBadRequest, ErrorBody{Error: err.Error()})
	case errors.Is(err, types.ErrSubmissionFailed):
		WriteJSON(w, http.StatusBadGateway, ErrorBody{Error: "booking submission failed, please try again"})
	default:
		WriteJSON(w, http.StatusInternalServerError, ErrorBody{Error: "internal server error"})
	}
}

// WriteValidationError returns the per-field messages with a 400.
func WriteValidationError(w http.ResponseWriter, fields []types.FieldError) {
	WriteJSON(w, http.StatusBadRequest, ErrorBody{Error: "validation failed", Fields: fields})
}

// QueryInt parses an integer query value, falling back to def when the value
// is missing, malformed, or below min.
func QueryInt(r *http.Request, name string, def, min int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < min {
		return def
	}
	return n
}
