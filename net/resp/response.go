// Package resp writes uniform JSON responses. Failure bodies carry a single
// human-readable message and nothing else.
package resp

import (
	"encoding/json"
	"net/http"
)

// Exception represents a failure response.
type Exception struct {
	Status  int    `json:"-"`                 // HTTP status
	Message string `json:"message,omitempty"` // Message
}

// newResponse creates a new failure response.
func newResponse(status int, message string) *Exception {
	return &Exception{
		Status:  status,
		Message: message,
	}
}

// Success handles success responses.
func Success(w http.ResponseWriter, data ...any) {
	WithStatusCode(w, http.StatusOK, data...)
}

// WithStatusCode handles success responses with custom status code. A string
// payload is wrapped as a message object.
func WithStatusCode(w http.ResponseWriter, statusCode int, data ...any) {
	var responseData any
	if len(data) > 0 {
		responseData = data[0]
		if strData, ok := responseData.(string); ok {
			responseData = map[string]any{"message": strData}
		}
	}
	if responseData == nil {
		responseData = map[string]any{"message": "ok"}
	}

	writeResponse(w, statusCode, responseData)
}

// Fail handles failure responses.
func Fail(w http.ResponseWriter, r *Exception) {
	if r == nil {
		r = newResponse(http.StatusInternalServerError, "Erreur serveur")
	}

	status := r.Status
	if status == 0 {
		status = http.StatusBadRequest
	}

	writeResponse(w, status, r)
}

// writeResponse writes the JSON response with the specified status code.
func writeResponse(w http.ResponseWriter, code int, res any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(res); err != nil {
		http.Error(w, "Failed to encode JSON response", http.StatusInternalServerError)
	}
}
