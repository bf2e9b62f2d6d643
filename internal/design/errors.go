package design

import (
	"errors"
	"fmt"
)

// ConfigurationError reports a structurally invalid template slot
// configuration. It is fatal to the single design-generation call and is
// never retried.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid slot configuration: %s", e.Reason)
}

// IsConfigurationError reports whether err wraps a ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}
