// Package logger wires the process-wide structured logger backed by zerolog.
package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options controls how the shared logger is built.
type Options struct {
	// Level is a zerolog level name. Empty or unrecognised values fall
	// back to info.
	Level string
	// Pretty switches to colourised console output for development.
	// Leave false in production to emit pure JSON.
	Pretty bool
	// Output defaults to os.Stdout.
	Output io.Writer
}

var (
	mu       sync.Mutex
	instance = zerolog.New(os.Stdout).With().Timestamp().Logger()
)

// Init builds the shared logger from opts and installs it. Calling Init
// again replaces the previous instance.
func Init(opts Options) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	lvl, err := zerolog.ParseLevel(opts.Level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	l := zerolog.New(out).Level(lvl).With().Timestamp().Logger()

	mu.Lock()
	instance = l
	mu.Unlock()
	return l
}

// Get returns the currently installed logger.
func Get() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return instance
}
