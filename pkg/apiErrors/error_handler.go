package apiErrors

import (
	"encoding/json"
	"net/http"
)

// APIError is the error envelope every route answers with. Details carries
// the upstream response body when a third-party call fails.
type APIError struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standardized error envelope with the given status.
func WriteError(w http.ResponseWriter, status int, message string, details any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(APIError{
		Error:   message,
		Details: details,
	})
}

// WriteBadRequest answers a client input error with a short message.
func WriteBadRequest(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadRequest, message, nil)
}

// WriteInternalError answers an uncaught failure with the error's text.
func WriteInternalError(w http.ResponseWriter, err error) {
	WriteError(w, http.StatusInternalServerError, err.Error(), nil)
}
