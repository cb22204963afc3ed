// Package logger provides the command-line logging for issueblog.
//
// Debug and informational messages are printed only in verbose mode
// (the --verbose flag). Warnings are always printed: they mark degraded
// results, such as an empty post listing after a failed tracker fetch.
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

// SetVerbose enables or disables verbose logging.
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

// SetOutput sets the output writer. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Output returns the current output writer.
func Output() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return output
}

// Debug prints a message in verbose mode.
func Debug(format string, args ...any) {
	write(false, "[DEBUG] "+format+"\n", args...)
}

// Info prints an informational message in verbose mode.
func Info(format string, args ...any) {
	write(false, "[INFO] "+format+"\n", args...)
}

// Warn prints a warning.
func Warn(format string, args ...any) {
	write(true, "[WARN] "+format+"\n", args...)
}

// Section prints a section header in verbose mode.
func Section(name string) {
	write(false, "\n=== %s ===\n", name)
}

func write(always bool, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if always || verbose {
		fmt.Fprintf(output, format, args...)
	}
}
