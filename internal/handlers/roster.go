package handlers

import (
	"net/http"

	"veridoc/internal/roster"
)

// ListRoster: GET /api/v1/roster
// Returns the active roster the matcher runs against.
func ListRoster(w http.ResponseWriter, r *http.Request) {
	writeJSONResp(w, http.StatusOK, roster.Active(profiles))
}
