package interfaces

// Logger defines the interface for logging throughout the application.
//
// Example usage:
//
//	logger.Warn("Classification degraded", map[string]interface{}{
//		"kind":  "rate_limited",
//		"model": "facebook/bart-large-mnli",
//	})
type Logger interface {
	// Debug logs a debug level message with optional structured fields.
	Debug(msg string, fields map[string]interface{})

	// Info logs an info level message with optional structured fields.
	Info(msg string, fields map[string]interface{})

	// Warn logs a warning for a degraded but recoverable condition.
	Warn(msg string, fields map[string]interface{})

	// Error logs a failure that needs attention.
	Error(msg string, fields map[string]interface{})

	// With returns a logger that adds fields to every entry.
	With(fields map[string]interface{}) Logger
}

// NopLogger discards everything. Handy as a default for optional loggers.
type NopLogger struct{}

func (NopLogger) Debug(string, map[string]interface{}) {}
func (NopLogger) Info(string, map[string]interface{})  {}
func (NopLogger) Warn(string, map[string]interface{})  {}
func (NopLogger) Error(string, map[string]interface{}) {}

// With returns the same no-op logger
func (n NopLogger) With(map[string]interface{}) Logger { return n }
