// Package shared holds the JSON response helpers used by every feature
// handler so error envelopes stay consistent across the API.
package shared

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "github.com/Shozab-N18/StreamingServiceAPI/pkg/domain-errors"
)

// ErrorResponse is the JSON envelope for all failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// MessageResponse is the JSON envelope for plain success acknowledgements.
type MessageResponse struct {
	Message string `json:"message"`
}

// WriteJSON writes v with the given status. Encoding failures are ignored;
// the status line is already on the wire at that point.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into an HTTP response. The transport
// layer alone owns the code-to-status mapping; services never see HTTP.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	message := ""
	var dErr *dErrors.Error
	if errors.As(err, &dErr) {
		message = dErr.Message
	}
	WriteJSON(w, dErrors.ToHTTPStatus(code), ErrorResponse{
		Error:   string(code),
		Message: message,
	})
}
