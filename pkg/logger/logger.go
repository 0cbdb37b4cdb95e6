// Package logger provides the process-wide structured logger backed by
// zerolog. Initialise once at startup with Init; the returned logger is
// injected into services and middleware, never fetched globally.
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
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Defaults to "info" when empty or unrecognised.
	Level string
	// Pretty enables human-friendly console output for development.
	// Leave false in production to emit pure JSON.
	Pretty bool
	// Output is the writer logs are sent to. Defaults to os.Stdout.
	Output io.Writer
}

var once sync.Once

// Init builds the root logger and sets the global zerolog level. Safe to call
// multiple times; only the first call sets process-wide state.
func Init(opts Options) zerolog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	lvl := parseLevel(opts.Level)
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		zerolog.SetGlobalLevel(lvl)
	})

	return zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Caller().
		Logger()
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
