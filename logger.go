package timesystem

// Logger defines the interface for structured logging with key-value pairs.
// Registration steps are logged through this interface so the embedding
// build orchestrator controls how (and whether) they appear.
//
// The variadic arguments are key-value pairs, compatible with slog, zap's
// sugared logger, and similar structured loggers:
//
//	logger.Debug("registered tool", "tool", "tipLib")
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Warn(msg string, args ...any)
	Debug(msg string, args ...any)
}

// NopLogger discards all log output. It is the default when no logger is
// configured.
type NopLogger struct{}

func (NopLogger) Info(msg string, args ...any)  {}
func (NopLogger) Error(msg string, args ...any) {}
func (NopLogger) Warn(msg string, args ...any)  {}
func (NopLogger) Debug(msg string, args ...any) {}
