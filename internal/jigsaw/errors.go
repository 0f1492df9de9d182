package jigsaw

import (
	"errors"
	"fmt"
)

// ErrConfig matches every *ConfigError via errors.Is.
var ErrConfig = errors.New("jigsaw: invalid configuration")

// ErrIndexOutOfRange is carried by the panic raised when a piece index
// outside [0, rows*columns) reaches the puzzle API. It is a programming
// error, not something a caller recovers from.
var ErrIndexOutOfRange = errors.New("jigsaw: piece index out of range")

// ConfigError reports a puzzle that cannot be constructed.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("jigsaw: invalid %s: %s", e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrConfig) true for any ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

func configErrorf(field, format string, args ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func panicOutOfRange(index, count int) {
	panic(fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, count))
}
