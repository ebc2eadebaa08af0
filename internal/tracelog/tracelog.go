// Package tracelog is scout's only standard-library-backed ambient
// concern: a thin façade over log.Logger that writes to stderr only when
// SCOUT_DEBUG is set, since the terminal's alternate screen owns stdout and
// stderr for the whole run. No pack example pairs a structured logging
// library (zerolog/logrus/zap) with this project's own dependency stack, so
// this stays on the standard library rather than adopting one speculatively.
package tracelog

import (
	"io"
	"log"
	"os"
)

var logger = newLogger()

func newLogger() *log.Logger {
	out := io.Discard
	if os.Getenv("SCOUT_DEBUG") != "" {
		out = os.Stderr
	}
	return log.New(out, "scout: ", log.Ltime|log.Lmicroseconds)
}

// Debugf writes a formatted trace line when SCOUT_DEBUG is set, and is a
// no-op otherwise.
func Debugf(format string, args ...any) {
	logger.Printf(format, args...)
}

// Enabled reports whether SCOUT_DEBUG tracing is turned on.
func Enabled() bool {
	return os.Getenv("SCOUT_DEBUG") != ""
}
