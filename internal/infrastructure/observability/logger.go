package observability

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"

	"github.com/simonindia/office-assistant/pkg/config"
)

// InitLogger configures the global zerolog logger from the loaded
// configuration: human-readable console output in development, JSON
// with caller information otherwise.
func InitLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	base := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", cfg.OTEL.ServiceName)

	if cfg.Env == "development" {
		log.Logger = base.Logger().Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	} else {
		log.Logger = base.Caller().Logger()
	}
}

// LoggerFromContext returns a logger carrying the current span's trace
// and span ids, when one is active.
func LoggerFromContext(ctx context.Context) *zerolog.Logger {
	logger := log.With().Logger()

	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		logger = logger.With().
			Str("trace_id", span.SpanContext().TraceID().String()).
			Str("span_id", span.SpanContext().SpanID().String()).
			Logger()
	}

	return &logger
}

// GetLogger returns the global logger
func GetLogger() *zerolog.Logger {
	return &log.Logger
}
