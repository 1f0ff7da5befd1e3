package locomotion

import (
	"errors"
	"strings"
)

var (
	ErrNotReady      = errors.New("locomotion interpreter is not ready")
	ErrInvalidParams = errors.New("invalid locomotion params")
)

// SetupError reports the handles that could not be resolved at setup.
type SetupError struct {
	Missing []string
}

func (e *SetupError) Error() string {
	return "locomotion setup failed, missing: " + strings.Join(e.Missing, ", ")
}

func (e *SetupError) Is(target error) bool {
	return target == ErrNotReady
}
