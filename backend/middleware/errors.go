// ABOUTME: JSON error response helper for middleware
// ABOUTME: Ensures middleware error responses match the API's {"detail"} format

package middleware

import (
	"encoding/json"
	"net/http"
)

// writeJSONError writes an error response as JSON with the given status code.
// Matches the format used by handlers for consistency.
func writeJSONError(w http.ResponseWriter, detail string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(struct {
		Detail string `json:"detail"`
	}{
		Detail: detail,
	})
}
