package app

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/bengobox/time-service/internal/clock"
	"github.com/bengobox/time-service/internal/config"
	"github.com/bengobox/time-service/internal/httpapi"
	"github.com/bengobox/time-service/internal/httpapi/handlers"
	httpmiddleware "github.com/bengobox/time-service/internal/httpapi/middleware"
)

// App wires core dependencies and exposes server lifecycle controls.
type App struct {
	cfg        *config.Config
	logger     *zap.Logger
	httpServer *http.Server
}

// Option customises App construction.
type Option func(*options)

type options struct {
	clock clock.Clock
}

// WithClock replaces the system clock used by GET /time.
func WithClock(c clock.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// New constructs the application.
func New(cfg *config.Config, logger *zap.Logger, opts ...Option) *App {
	o := options{clock: clock.System{}}
	for _, opt := range opts {
		opt(&o)
	}

	statusHandler := handlers.NewStatusHandler(cfg.App.StatusMessage)
	timeHandler := handlers.NewTimeHandler(o.clock, logger)

	deps := httpapi.RouterDeps{
		StatusHandler: statusHandler.Status,
		TimeHandler:   timeHandler.Time,
		HealthHandler: handlers.Health,
		Middlewares: []func(http.Handler) http.Handler{
			httpmiddleware.AccessLog(logger),
			httpmiddleware.Metrics,
		},
		RequestTimeout:     cfg.HTTP.RequestTimeout,
		CORSAllowedOrigins: cfg.HTTP.CORSAllowedOrigins,
	}
	if cfg.Metrics.Enabled {
		deps.MetricsHandler = promhttp.Handler()
	}

	server := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           httpapi.NewRouter(deps),
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		ErrorLog:          zap.NewStdLog(logger),
	}

	return &App{
		cfg:        cfg,
		logger:     logger,
		httpServer: server,
	}
}

// Run starts the HTTP server on the configured address. It returns nil
// once Shutdown has been called.
func (a *App) Run() error {
	ln, err := net.Listen("tcp", a.httpServer.Addr)
	if err != nil {
		return err
	}
	return a.Serve(ln)
}

// Serve accepts connections on ln until Shutdown.
func (a *App) Serve(ln net.Listener) error {
	a.logger.Info("starting HTTP server", zap.String("addr", ln.Addr().String()))
	if err := a.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("stopping HTTP server")
	return a.httpServer.Shutdown(ctx)
}

// Handler exposes the routed http.Handler for testing.
func (a *App) Handler() http.Handler {
	return a.httpServer.Handler
}
