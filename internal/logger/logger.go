// Package logger provides opt-in tracing of binding lifecycles.
// Nothing is written unless verbose mode is on; the propbind CLI turns it
// on with --verbose or PROPBIND_VERBOSE.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables tracing.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if tracing is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the trace destination. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func write(level, format string, args []any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "["+level+"] "+format+"\n", args...)
	}
}

// Debug traces fine-grained lifecycle steps (subscribe, transfer).
func Debug(format string, args ...any) { write("DEBUG", format, args) }

// Info traces orchestrator-level events (apply, detach).
func Info(format string, args ...any) { write("INFO", format, args) }

// Warn traces recoverable problems such as a rolled back apply.
func Warn(format string, args ...any) { write("WARN", format, args) }
