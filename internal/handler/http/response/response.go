package response

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// ErrorDetail is the body of every error that is not tied to request fields.
type ErrorDetail struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Success responses
func OK(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

func Created(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusCreated, data)
}

// Error responses
func BadRequest(w http.ResponseWriter, detail string) {
	writeJSON(w, http.StatusBadRequest, ErrorDetail{Detail: detail})
}

// ValidationError reports messages keyed by request field.
func ValidationError(w http.ResponseWriter, details map[string][]string) {
	writeJSON(w, http.StatusBadRequest, details)
}

func Unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
	writeJSON(w, http.StatusUnauthorized, ErrorDetail{Detail: detail})
}

func NotFound(w http.ResponseWriter, detail string) {
	writeJSON(w, http.StatusNotFound, ErrorDetail{Detail: detail})
}

func MethodNotAllowed(w http.ResponseWriter, method string) {
	writeJSON(w, http.StatusMethodNotAllowed, ErrorDetail{
		Detail: fmt.Sprintf("Method %q not allowed.", method),
	})
}

func UnprocessableEntity(w http.ResponseWriter, payload interface{}) {
	writeJSON(w, http.StatusUnprocessableEntity, payload)
}

func InternalServerError(w http.ResponseWriter, detail string) {
	writeJSON(w, http.StatusInternalServerError, ErrorDetail{Detail: detail})
}

func ServiceUnavailable(w http.ResponseWriter, detail string) {
	writeJSON(w, http.StatusServiceUnavailable, ErrorDetail{Detail: detail})
}
