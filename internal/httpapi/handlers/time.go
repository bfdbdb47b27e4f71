package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/bengobox/time-service/internal/clock"
	"github.com/bengobox/time-service/internal/httpapi"
	"github.com/bengobox/time-service/internal/httpapi/middleware"
	"github.com/bengobox/time-service/internal/metrics"
)

// TimeHandler exposes the server wall clock.
type TimeHandler struct {
	clock  clock.Clock
	logger *zap.Logger
}

// NewTimeHandler constructs a handler.
func NewTimeHandler(c clock.Clock, logger *zap.Logger) *TimeHandler {
	if c == nil {
		c = clock.System{}
	}
	return &TimeHandler{
		clock:  c,
		logger: logger,
	}
}

// Time handles GET /time.
func (h *TimeHandler) Time(w http.ResponseWriter, r *http.Request) {
	resp, err := clock.NewTimeResponse(h.clock)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.respond(w, r, resp)
}

func (h *TimeHandler) respond(w http.ResponseWriter, r *http.Request, payload any) {
	if err := httpapi.JSON(w, http.StatusOK, payload); err != nil {
		h.handleError(w, r, err)
	}
}

func (h *TimeHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	metrics.ClockFailures.Inc()
	reqID := middleware.GetRequestID(r.Context())
	h.logger.Error("time handler error", zap.String("request_id", reqID), zap.Error(err))
	httpapi.InternalError(w, reqID)
}
