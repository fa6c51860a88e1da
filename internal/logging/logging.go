// Package logging builds the zerolog loggers used across sustaintrack and
// carries them, along with a per-invocation trace ID, through context.Context.
package logging

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config controls logger construction.
type Config struct {
	// Level is a zerolog level name; unparseable values fall back to info.
	Level string
	// Format is "console" or "json".
	Format string
	// File, when set, receives JSON log output instead of Writer.
	File string
	// Writer is the destination when File is empty. Defaults to os.Stderr.
	Writer io.Writer
}

// Result is a constructed logger plus the file handle it writes to, if any.
type Result struct {
	Logger zerolog.Logger
	file   *os.File
}

// Close releases the log file, if one was opened.
func (r *Result) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// UsingFile reports whether output goes to a log file.
func (r *Result) UsingFile() bool {
	return r != nil && r.file != nil
}

// New builds a logger from cfg. When the log file cannot be opened, New
// falls back to cfg.Writer and returns the open error alongside a usable
// logger.
func New(cfg Config) (*Result, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	out := cfg.Writer
	if out == nil {
		out = os.Stderr
	}

	result := &Result{}
	var openErr error
	if cfg.File != "" {
		f, fileErr := openLogFile(cfg.File)
		if fileErr != nil {
			openErr = fileErr
		} else {
			result.file = f
			out = f
		}
	}

	if cfg.Format != FormatJSON && result.file == nil {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	result.Logger = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	return result, openErr
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}

// ComponentLogger returns l tagged with a component name.
func ComponentLogger(l zerolog.Logger, component string) zerolog.Logger {
	return l.With().Str("component", component).Logger()
}

// FromContext returns the logger stored in ctx. When none is stored it
// returns a disabled logger so callers never need a nil check.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		l := zerolog.Nop()
		return &l
	}
	return zerolog.Ctx(ctx)
}

type traceIDKey struct{}

// NewTraceID returns a fresh ULID string.
func NewTraceID() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}

// ContextWithTraceID stores traceID in ctx.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace ID stored in ctx, or "".
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(traceIDKey{}).(string)
	return id
}

// GetOrGenerateTraceID returns the trace ID in ctx or a new one.
func GetOrGenerateTraceID(ctx context.Context) string {
	if id := TraceIDFromContext(ctx); id != "" {
		return id
	}
	return NewTraceID()
}

// Attach stores l in ctx with the trace ID field added.
func Attach(ctx context.Context, l zerolog.Logger) context.Context {
	traceID := GetOrGenerateTraceID(ctx)
	ctx = ContextWithTraceID(ctx, traceID)
	l = l.With().Str("trace_id", traceID).Logger()
	return l.WithContext(ctx)
}
