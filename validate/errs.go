package validate

import (
	"errors"
	"fmt"
)

// ErrValidation is the category of every error returned by Validate;
// errors.Is(err, ErrValidation) matches any schema violation.
var ErrValidation = errors.New("document does not conform to schema")

// Error is a single schema violation, the first one found by the walk.
type Error struct {
	Msg string
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return ErrValidation
}

func errf(format string, args ...any) error {
	return &Error{Msg: fmt.Sprintf(format, args...)}
}
