package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedChar = errors.New("unexpected character")
	ErrUnterminated   = errors.New("unterminated")
	ErrBadEscape      = errors.New("bad escape")
	ErrNumber         = errors.New("bad number")
	ErrName           = errors.New("bad name")
	ErrChar           = errors.New("bad character literal")
)

// Error is a lexical error pinned to a 1-based source line.
type Error struct {
	Line int
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s on line %d", e.Err, e.Line)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func scanErr(err error, line int) error {
	return &Error{Line: line, Err: err}
}
