package httpx

import (
	"encoding/json"
	"net/http"
)

// Envelope status strings.
const (
	StatusSuccess      = "success"
	StatusBadRequest   = "Bad request"
	StatusUnauthorized = "Unauthorized"
	StatusForbidden    = "Forbidden"
	StatusError        = "Error"
)

// ErrorEnvelope is the body of every non-2xx response.
type ErrorEnvelope struct {
	Status     string              `json:"status"`
	Message    string              `json:"message"`
	Errors     map[string][]string `json:"errors,omitempty"`
	StatusCode int                 `json:"statusCode"`
}

// WriteJSON writes v as JSON with no-cache headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes an ErrorEnvelope without field errors.
func WriteError(w http.ResponseWriter, code int, status, message string) {
	WriteJSON(w, code, ErrorEnvelope{Status: status, Message: message, StatusCode: code})
}

// WriteFieldErrors writes an ErrorEnvelope carrying per-field messages. The
// errors key is always present, even when empty.
func WriteFieldErrors(w http.ResponseWriter, code int, status, message string, errs map[string][]string) {
	if errs == nil {
		errs = map[string][]string{}
	}
	WriteJSON(w, code, struct {
		Status     string              `json:"status"`
		Message    string              `json:"message"`
		Errors     map[string][]string `json:"errors"`
		StatusCode int                 `json:"statusCode"`
	}{status, message, errs, code})
}

// NoCache disables caching; responses may carry tokens.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}
