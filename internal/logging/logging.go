// Package logging configures zerolog output and carries ULID trace IDs
// through context for the CLI and TUI surfaces.
package logging

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// Config selects log level, format and optional file output.
type Config struct {
	// Level is a zerolog level name; unparseable values fall back to info.
	Level string `yaml:"level"`
	// Format is "console" (human-readable, default) or "json".
	Format string `yaml:"format"`
	// File, when set, receives log output instead of stderr.
	File string `yaml:"file"`
}

// Result reports how the logger was wired, so callers can tell users where
// logs went and clean up the file handle.
type Result struct {
	Logger    zerolog.Logger
	UsingFile bool
	FilePath  string

	file *os.File
}

// Close releases the log file handle, if any.
func (r *Result) Close() {
	if r.file != nil {
		_ = r.file.Close()
		r.file = nil
	}
}

// New builds a logger from the config. File-open failures degrade to stderr
// rather than erroring; logging must never block the command itself.
func New(cfg Config) Result {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	result := Result{}
	var out io.Writer = os.Stderr
	if cfg.File != "" {
		file, openErr := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if openErr == nil {
			out = file
			result.UsingFile = true
			result.FilePath = cfg.File
			result.file = file
		}
	}

	if cfg.Format != "json" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	result.Logger = zerolog.New(out).Level(level).With().Timestamp().Logger()
	return result
}

// ComponentLogger tags a logger with the component emitting it.
func ComponentLogger(base zerolog.Logger, component string) zerolog.Logger {
	return base.With().Str("component", component).Logger()
}

type traceIDKey struct{}

// ContextWithTraceID stores a trace ID on the context.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the stored trace ID, or "".
func TraceIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(traceIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GetOrGenerateTraceID returns the context's trace ID, minting a ULID when
// none is present.
func GetOrGenerateTraceID(ctx context.Context) string {
	if id := TraceIDFromContext(ctx); id != "" {
		return id
	}
	return ulid.Make().String()
}
