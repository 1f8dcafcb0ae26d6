package openddl

import (
	"errors"
	"fmt"
)

// ErrParse is the category sentinel for all parse failures; use
// errors.Is(err, ErrParse) to detect them without matching message text.
var ErrParse = errors.New("parse error")

// Error is a parse failure pinned to a 1-based source line. The message
// carries the offending expectation, e.g. "expected } character on line 3".
type Error struct {
	Line int
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s on line %d", e.Msg, e.Line)
}

func (e *Error) Unwrap() error {
	return ErrParse
}

func parseErr(msg string, line int) error {
	return &Error{Line: line, Msg: msg}
}

func expectedErr(c byte, line int) error {
	return &Error{Line: line, Msg: fmt.Sprintf("expected %c character", c)}
}
