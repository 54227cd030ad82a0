package dynamo

import "errors"

// Domain errors for mover construction and configuration.
var (
	// ErrInvalidConfiguration indicates a value that is structurally unusable,
	// such as a negative container dimension or an unknown boundary behavior.
	ErrInvalidConfiguration = errors.New("dynamo: invalid configuration")

	// ErrMoverStopped indicates an operation on a mover that has been torn down.
	ErrMoverStopped = errors.New("dynamo: mover stopped")
)

// ConfigError wraps ErrInvalidConfiguration with the offending field.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return "dynamo: invalid configuration: " + e.Field + ": " + e.Reason
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfiguration
}
