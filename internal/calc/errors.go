package calc

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying evaluation failures. Use errors.Is to test.
var (
	ErrIncomplete     = errors.New("incomplete expression")
	ErrSyntax         = errors.New("invalid expression")
	ErrDivisionByZero = errors.New("division by zero")
)

// SyntaxError reports a malformed expression. It matches ErrSyntax.
type SyntaxError struct {
	// Col is the 1-based character position where parsing failed.
	Col int
	// Reason describes what the parser found.
	Reason string
}

func (err *SyntaxError) Error() string {
	return fmt.Sprintf("col %d: %s", err.Col, err.Reason)
}

func (err *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// UnexpectedError wraps any failure that is not incomplete input, bad syntax
// or division by zero.
type UnexpectedError struct {
	Err error
}

func (err *UnexpectedError) Error() string {
	return err.Err.Error()
}

func (err *UnexpectedError) Unwrap() error {
	return err.Err
}

// IsUnexpected reports whether err is an *UnexpectedError.
func IsUnexpected(err error) bool {
	var u *UnexpectedError
	return errors.As(err, &u)
}
