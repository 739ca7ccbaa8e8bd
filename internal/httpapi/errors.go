package httpapi

import (
	"encoding/json"
	"net/http"

	"hostevents/internal/upstream"
	"hostevents/pkg/types"
)

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg, Code: status})
}

// statusForQueueError maps loop errors to HTTP status codes.
func statusForQueueError(err error) int {
	switch {
	case upstream.IsTooBusy(err):
		return http.StatusTooManyRequests
	case upstream.IsUnavailable(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
