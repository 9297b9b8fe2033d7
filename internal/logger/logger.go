// Package logger provides the diagnostic channel for whatlang.
// Diagnostics never mix with the primary output: everything here goes to
// stderr (or the writer set for tests).
//
// Two independent gates control emission. Warnings are off by default so
// embedding the library stays silent; the CLI entry point switches them on.
// Verbose messages additionally require the --verbose flag.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu       sync.RWMutex
	warnings bool
	verbose  bool
	output   io.Writer = os.Stderr
)

// SetWarnings enables or disables all diagnostic output.
// This is the process-wide toggle exposed to library users.
func SetWarnings(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	warnings = enabled
}

// WarningsEnabled returns true if diagnostics are being emitted.
func WarningsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return warnings
}

// SetVerbose enables or disables verbose trace messages.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for diagnostics.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Warn prints a warning if diagnostics are enabled.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if warnings {
		fmt.Fprintf(output, "Warning: "+format+"\n", args...)
	}
}

// Debug prints a trace message if both diagnostics and verbose mode are enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if warnings && verbose {
		fmt.Fprintf(output, "[DEBUG] "+format+"\n", args...)
	}
}

// Info prints an informational message if both diagnostics and verbose mode are enabled.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if warnings && verbose {
		fmt.Fprintf(output, "[INFO] "+format+"\n", args...)
	}
}
