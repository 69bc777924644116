package domain

// VisitStore defines operations for recording and querying browsing history.
type VisitStore interface {
	// Record saves a visit. Revisiting a URL updates its timestamp.
	Record(v Visit) error

	// Recent returns the most recent visits, newest first.
	Recent(limit int) ([]Visit, error)

	// Prune deletes all but the newest keep visits.
	Prune(keep int) (int64, error)

	// Close closes the store connection.
	Close() error
}

// ConfigProvider defines operations for reading and writing configuration.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// GetAll returns all configuration values.
	GetAll() (map[string]string, error)

	// Set sets a configuration value.
	Set(key, value string) error

	// Unset removes a configuration value.
	Unset(key string) error
}

// Logger defines logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// Close closes the logger.
	Close() error
}
