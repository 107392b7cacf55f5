package uptime

import (
	"errors"
	"fmt"
)

var (
	ErrConfiguration     = errors.New("invalid configuration")
	ErrSourceUnavailable = errors.New("history source unavailable")
)

// ConfigurationError reports a request parameter outside the accepted range.
type ConfigurationError struct {
	Field  string
	Value  int
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s=%d: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// SourceUnavailableError wraps any failure to obtain the history text.
type SourceUnavailableError struct {
	Source string
	Err    error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("history source %s unavailable: %v", e.Source, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}

func (e *SourceUnavailableError) Is(target error) bool {
	return target == ErrSourceUnavailable
}
