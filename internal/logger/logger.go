package logger

// Log levels used across the application.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

// New returns a logger configured with the provided level. Each component
// holds the instance it is given; there is no process-wide logger state.
func New(level string) *Logger {
	return newZapLogger(level)
}
