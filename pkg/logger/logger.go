// Package logger provides logging functionality for the cleaner.
package logger

import (
	"fmt"
	"io"
	"sync"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=logger.go -destination=mocklogger.gen.go -package=logger

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted progress message.
	Logf(format string, args ...interface{})

	// Debugf logs a formatted message that is only shown in verbose mode.
	Debugf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// Debugf does nothing for noop logger.
func (n *noopLogger) Debugf(_ string, _ ...interface{}) {}

// defaultLogger is a thread-safe logger that writes one line per message.
type defaultLogger struct {
	mu      sync.Mutex
	out     io.Writer
	verbose bool
}

// NewLogger creates a default logger writing to out.
func NewLogger(out io.Writer, verbose bool) Logger {
	return &defaultLogger{out: out, verbose: verbose}
}

// Logf writes a formatted message with thread safety.
func (d *defaultLogger) Logf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.out, format+"\n", args...)
}

// Debugf writes a formatted message when verbose output is enabled.
func (d *defaultLogger) Debugf(format string, args ...interface{}) {
	if !d.verbose {
		return
	}
	d.Logf(format, args...)
}
