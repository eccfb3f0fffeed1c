// Package ports defines the interfaces between the runtime core and its
// adapters.
package ports

import "io"

// Logger is the abstraction for user-facing diagnostics. Implementations
// must be safe for concurrent use.
type Logger interface {
	// Debug logs a message that is only useful when tracing runtime internals.
	Debug(msg string)

	// Info logs an informational message.
	Info(msg string)

	// Warn logs a warning message.
	Warn(msg string)

	// Error logs an error, unwrapping the cause chain for display.
	// A nil error is ignored.
	Error(err error)

	// SetOutput redirects log output. A nil writer resets to stderr.
	SetOutput(w io.Writer)

	// SetJSON switches between machine-readable JSON lines and pretty output.
	SetJSON(enable bool)
}
