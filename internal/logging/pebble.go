package logging

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// PebbleLogger routes the log output of Pebble to a zerolog logger.
// Tracing is disabled.
type PebbleLogger struct {
	Logger zerolog.Logger
}

// Infof implements LoggerAndTracer.
func (l PebbleLogger) Infof(format string, args ...interface{}) {
	l.Logger.Debug().Str("component", "pebble").Msgf(format, args...)
}

// Errorf implements LoggerAndTracer.
func (l PebbleLogger) Errorf(format string, args ...interface{}) {
	l.Logger.Error().Str("component", "pebble").Msgf(format, args...)
}

// Fatalf implements LoggerAndTracer. It panics instead of exiting so that
// deferred closes still run.
func (l PebbleLogger) Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.Logger.Error().Str("component", "pebble").Msg(msg)
	panic(msg)
}

// Eventf implements LoggerAndTracer.
func (l PebbleLogger) Eventf(ctx context.Context, format string, args ...interface{}) {
}

// IsTracingEnabled implements LoggerAndTracer.
func (l PebbleLogger) IsTracingEnabled(ctx context.Context) bool {
	return false
}
