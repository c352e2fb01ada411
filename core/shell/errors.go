package shell

import (
	"errors"
	"fmt"
	"syscall"
)

var (
	ErrNoProgram             = errors.New("no program given")
	ErrDuplicateRedirect     = errors.New("duplicate redirection")
	ErrMissingRedirectTarget = errors.New("missing redirection target")
	ErrAmbiguousRedirect     = errors.New("ambiguous redirect")
	ErrExpansion             = errors.New("word expansion failed")

	// ErrFatal is returned by Session.Run when the session ended because of
	// an unrecoverable error.
	ErrFatal = errors.New("fatal shell error")
)

// Error is a failure recorded by a state, it's reported by the error state.
type Error struct {
	// Code is the system error number of the cause, or 1.
	Code int
	Err  error
}

func newError(err error) *Error {
	code := 1
	var errno syscall.Errno
	if errors.As(err, &errno) && errno != 0 {
		code = int(errno)
	}
	return &Error{Code: code, Err: err}
}

func (e *Error) Error() string {
	return fmt.Sprintf("internal error (%d) %v", e.Code, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
