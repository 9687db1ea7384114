// Package logging provides structured logging for the fcc-db system using
// zerolog. Interactive runs get console output and scripted runs get JSON;
// the merged database itself is written to stdout, so log lines go to
// stderr unless configured otherwise.
//
// The command-line shell resolves level and format once and installs the
// result; everything downstream receives the logger through context:
//
//	ctx := logging.WithLogger(ctx, logger)
//	logging.Ctx(ctx).Info().Str("file", "AM.dat").Msg("Loaded extract")
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// defaultLogger serves code that logs before the CLI installs a configured
// logger, and tests exercising the package-level event functions.
var defaultLogger = NewLoggerFromConfig(bootstrapConfig())

// bootstrapConfig assembles the startup configuration from the
// conventional environment variables.
func bootstrapConfig() *Config {
	cfg := DefaultConfig()
	switch {
	case os.Getenv("LOG_LEVEL") != "":
		cfg.Level = os.Getenv("LOG_LEVEL")
	case os.Getenv("DEBUG") != "":
		cfg.Level = "debug"
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		cfg.Format = format
	}
	return cfg
}

// Default returns the default global logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault sets the default global logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger // keep zerolog's own global in step
}

// New creates a logger writing JSON lines to w at the global level.
func New(w io.Writer) zerolog.Logger {
	return zerolog.New(w).
		Level(zerolog.GlobalLevel()).
		With().
		Timestamp().
		Logger()
}

// NewConsole creates a human-readable logger on stderr.
func NewConsole() zerolog.Logger {
	return New(consoleWriter(os.Stderr, DefaultConfig()))
}

// NewJSON creates a structured JSON logger. A nil writer means stderr.
func NewJSON(w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return New(w)
}

// With creates a child context of the default logger for attaching fields.
func With() zerolog.Context {
	return defaultLogger.With()
}

// Debug starts a new debug level log event on the default logger.
func Debug() *zerolog.Event {
	return defaultLogger.Debug()
}

// Info starts a new info level log event on the default logger.
func Info() *zerolog.Event {
	return defaultLogger.Info()
}

// Warn starts a new warning level log event on the default logger.
func Warn() *zerolog.Event {
	return defaultLogger.Warn()
}

// Error starts a new error level log event on the default logger.
func Error() *zerolog.Event {
	return defaultLogger.Error()
}

// Err starts an error event carrying err on the default logger.
func Err(err error) *zerolog.Event {
	return defaultLogger.Err(err)
}
