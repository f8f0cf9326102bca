package domain

import (
	"errors"
	"fmt"
)

// ErrTimeout signals that a bounded wait elapsed without a qualifying reply.
// It is an expected outcome, not a failure: loops continue past it.
var ErrTimeout = errors.New("timed out waiting for reply")

// ConfigError reports an invalid or missing configuration value, detected
// before any network call is made.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Field, e.Reason)
}
