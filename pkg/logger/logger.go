// Package logger owns the process-wide zerolog logger. main calls Init
// once with the configured level and service name; everything else pulls
// the instance through dependency injection or, at the edges, Get.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options controls logger initialisation.
type Options struct {
	// Service is stamped on every event as the "service" field so log
	// aggregation can tell this process apart from its neighbours.
	// Defaults to "tour-agency-api".
	Service string
	// Level is the minimum level (zerolog notation: trace, debug, info,
	// warn, error). Unrecognised or empty values fall back to info.
	Level string
	// Pretty switches to console output for local development; leave
	// false in production to emit one JSON object per line.
	Pretty bool
	// Output defaults to os.Stdout.
	Output io.Writer
}

const defaultService = "tour-agency-api"

var (
	instance    zerolog.Logger
	once        sync.Once
	initialized bool
)

// Init builds the singleton. Only the first call has any effect; later
// calls return the already-built instance.
func Init(opts Options) zerolog.Logger {
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano

		out := opts.Output
		if out == nil {
			out = os.Stdout
		}
		if opts.Pretty {
			out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
		}

		service := opts.Service
		if service == "" {
			service = defaultService
		}

		lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(opts.Level)))
		if err != nil || lvl == zerolog.NoLevel {
			lvl = zerolog.InfoLevel
		}

		instance = zerolog.New(out).
			Level(lvl).
			With().
			Timestamp().
			Str("service", service).
			Logger()

		initialized = true
	})
	return instance
}

// Get returns the singleton. Panics when Init has not run; that is a wiring
// bug, not a runtime condition to tolerate.
func Get() zerolog.Logger {
	if !initialized {
		panic("logger: Get before Init")
	}
	return instance
}

// Reset discards the singleton so the next Init rebuilds it. Test use only.
func Reset() {
	once = sync.Once{}
	instance = zerolog.Logger{}
	initialized = false
}
