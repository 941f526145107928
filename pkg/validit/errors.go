package validit

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidConfig wraps every configuration problem so callers can tell a
	// broken rule set apart from invalid data.
	ErrInvalidConfig = errors.New("invalid validation config")

	// ErrParsingConfig is returned when environment variables cannot be parsed into Config.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")
)

// ConfigError reports rule sets or catalogs that cannot be evaluated: unknown
// predicates, missing message templates, malformed parameters and empty rules.
type ConfigError struct {
	Problems []error
}

func (e *ConfigError) Error() string {
	if len(e.Problems) == 1 {
		return fmt.Sprintf("%s: %s", ErrInvalidConfig, e.Problems[0])
	}

	parts := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		parts[i] = p.Error()
	}
	return fmt.Sprintf("%s: %s", ErrInvalidConfig, strings.Join(parts, "; "))
}

// Unwrap exposes the sentinel and every problem to errors.Is and errors.As.
func (e *ConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.Problems...)
}

// IsConfigError reports whether err is a configuration error.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

func configError(problems ...error) error {
	if len(problems) == 0 {
		return nil
	}
	return &ConfigError{Problems: problems}
}
