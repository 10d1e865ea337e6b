package autoload

import "fmt"

// ConfigurationError indicates that a configuration location does not exist.
type ConfigurationError struct {
	Location string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration location does not exist: %v", e.Location)
}
