package handlers

import (
	"net/http"

	"github.com/bengobox/time-service/internal/httpapi"
	"github.com/bengobox/time-service/internal/httpapi/middleware"
)

// StatusResponse is the body of GET /.
type StatusResponse struct {
	Message string `json:"message"`
}

// StatusHandler serves a fixed confirmation that the service is up.
type StatusHandler struct {
	message string
}

// NewStatusHandler constructs a handler.
func NewStatusHandler(message string) *StatusHandler {
	return &StatusHandler{message: message}
}

// Status handles GET /.
func (h *StatusHandler) Status(w http.ResponseWriter, r *http.Request) {
	if err := httpapi.JSON(w, http.StatusOK, StatusResponse{Message: h.message}); err != nil {
		httpapi.InternalError(w, middleware.GetRequestID(r.Context()))
	}
}
