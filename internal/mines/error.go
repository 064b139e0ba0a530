package mines

import (
	"errors"
	"fmt"
)

var ErrInvalidParams = errors.New("invalid game params")

// ConfigError is returned by [NewGame] when the requested dimensions or
// mine count cannot describe a playable board. It unwraps to
// [ErrInvalidParams].
type ConfigError struct {
	Params Params
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s (%s): %s", ErrInvalidParams, e.Params.Seed(), e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidParams
}

type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}

func assert(cond bool, format string, args ...any) {
	if !cond {
		panic(AssertionError{fmt.Sprintf(format, args...)})
	}
}
