package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Config holds logger configuration options.
type Config struct {
	// Level is the minimum level that gets written.
	Level string

	// Format selects the output shape: "json", "console", or "auto",
	// which picks console on a terminal and JSON otherwise.
	Format string

	// Output is the destination: "stderr", "stdout", "discard", or a
	// file path opened for append.
	Output string

	// TimeFormat is the timestamp layout used in console output.
	TimeFormat string

	// NoColor disables color in console output.
	NoColor bool

	// AddCaller includes file:line on every event.
	AddCaller bool
}

// DefaultConfig returns the configuration in effect before the CLI has
// resolved anything: info level, format decided by the terminal, stderr.
func DefaultConfig() *Config {
	return &Config{
		Level:      "info",
		Format:     "auto",
		Output:     "stderr",
		TimeFormat: "kitchen",
		NoColor:    os.Getenv("NO_COLOR") != "",
	}
}

// NewLoggerFromConfig creates a logger from cfg. The level also becomes
// the global zerolog level, so the package-level event functions respect
// it.
func NewLoggerFromConfig(cfg *Config) zerolog.Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	level := parseLevel(cfg.Level)
	zerolog.SetGlobalLevel(level)

	logger := zerolog.New(writerFor(cfg)).
		Level(level).
		With().
		Timestamp().
		Logger()

	if cfg.AddCaller || level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}

	return logger
}

// Configure replaces the default logger with one built from cfg.
func Configure(cfg *Config) {
	SetDefault(NewLoggerFromConfig(cfg))
}

// writerFor resolves the destination and format named by cfg.
func writerFor(cfg *Config) io.Writer {
	var out io.Writer
	switch strings.ToLower(cfg.Output) {
	case "", "stderr":
		out = os.Stderr
	case "stdout":
		out = os.Stdout
	case "discard", "none":
		return io.Discard
	default:
		f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			// A log file that cannot open must not kill the run
			out = os.Stderr
		} else {
			out = f
		}
	}

	format := strings.ToLower(cfg.Format)
	if format == "auto" {
		format = "json"
		if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			format = "console"
		}
	}

	if format == "console" || format == "pretty" {
		return consoleWriter(out, cfg)
	}
	return out
}

// consoleWriter wraps out in zerolog's human-readable writer.
func consoleWriter(out io.Writer, cfg *Config) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: timeLayout(cfg.TimeFormat),
		NoColor:    cfg.NoColor,
	}
}

// parseLevel maps a level name to a zerolog level, accepting a few
// aliases. Unknown names fall back to info rather than failing; logging
// is never the reason a merge aborts.
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "", "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "disabled", "none", "off":
		return zerolog.Disabled
	default:
		if l, err := zerolog.ParseLevel(level); err == nil {
			return l
		}
		return zerolog.InfoLevel
	}
}

// timeLayout maps a configured timestamp name to a layout string. Names
// that already look like a reference layout pass through unchanged.
func timeLayout(name string) string {
	switch strings.ToLower(name) {
	case "", "kitchen":
		return time.Kitchen
	case "rfc3339":
		return time.RFC3339
	case "unix", "epoch":
		return "" // zerolog renders Unix timestamps for an empty layout
	default:
		if strings.Contains(name, "2006") || strings.Contains(name, "15:04") {
			return name
		}
		return time.Kitchen
	}
}
