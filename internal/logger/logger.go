// Package logger configures the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ParseLevel maps a level name to a zerolog level. Unknown names mean info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Init initializes the global logger, writing JSON to stderr or, when pretty
// is set, human-readable console output.
func Init(level string, pretty bool) {
	InitWithWriter(level, pretty, os.Stderr)
}

// InitWithWriter is Init with an explicit destination.
func InitWithWriter(level string, pretty bool, w io.Writer) {
	zerolog.SetGlobalLevel(ParseLevel(level))
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if pretty {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
	}
	log.Logger = zerolog.New(w).With().
		Timestamp().
		Str("service", "coffeemaker").
		Logger()
}

// Logger returns the global logger instance.
func Logger() zerolog.Logger {
	return log.Logger
}

// WithRequestID returns the global logger tagged with a request ID.
func WithRequestID(requestID string) zerolog.Logger {
	if requestID == "" {
		return log.Logger
	}
	return log.Logger.With().Str("request_id", requestID).Logger()
}

// WithContext returns a logger with context fields.
func WithContext(fields map[string]any) zerolog.Logger {
	return log.Logger.With().Fields(fields).Logger()
}
