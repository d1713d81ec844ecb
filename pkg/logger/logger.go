// Package logger configures the process-wide zerolog logger.
//
// Call Init once at startup, then derive per-subsystem loggers with
// Component. Services receive their logger through their constructor, so
// nothing below main ever reaches for the global.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options controls logger behaviour at initialisation time.
type Options struct {
	// Level is the minimum log level: debug, info, warn, error.
	// Unrecognised values fall back to info.
	Level string
	// Pretty switches to coloured console output for local development.
	// Production keeps the default JSON stream.
	Pretty bool
	// Output overrides the destination. Defaults to os.Stdout.
	Output io.Writer
}

var (
	mu    sync.Mutex
	root  *zerolog.Logger
	saved Options
)

func build(o Options) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	out := o.Output
	if out == nil {
		out = os.Stdout
	}
	if o.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	lvl := parseLevel(o.Level)
	zerolog.SetGlobalLevel(lvl)

	return zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// Init builds the root logger from o. Only the first call has any effect;
// later calls return the already-built logger.
func Init(o Options) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if root == nil {
		l := build(o)
		root = &l
		saved = o
	}
	return *root
}

// Get returns the root logger, building it with defaults when Init was
// never called.
func Get() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if root == nil {
		l := build(saved)
		root = &l
	}
	return *root
}

// Component returns the root logger tagged with a subsystem name.
func Component(name string) zerolog.Logger {
	return Get().With().Str("component", name).Logger()
}

// Reset discards the built logger so the next Init starts fresh.
// Intended for use in tests only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	root = nil
	saved = Options{}
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
