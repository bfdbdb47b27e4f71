package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bengobox/time-service/internal/config"
)

// New builds the process logger for app. Every entry carries the service
// name and environment. opts are applied before those fields are attached.
func New(app config.AppConfig, opts ...zap.Option) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if IsDevelopment(app.Environment) {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)

	opts = append(opts, zap.Fields(
		zap.String("service", app.ServiceName),
		zap.String("env", app.Environment),
	))
	return cfg.Build(opts...)
}

// IsDevelopment reports whether env selects the human-readable console encoder.
func IsDevelopment(env string) bool {
	return env == "development" || env == "local"
}

// ZapError is a helper to avoid importing zap in every package.
func ZapError(err error) zap.Field {
	return zap.Error(err)
}
