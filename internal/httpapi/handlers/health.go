package handlers

import (
	"net/http"

	"github.com/bengobox/time-service/internal/httpapi"
)

// Health responds with basic liveness status.
func Health(w http.ResponseWriter, r *http.Request) {
	if err := httpapi.JSON(w, http.StatusOK, map[string]any{"status": "ok"}); err != nil {
		httpapi.InternalError(w, "")
	}
}
