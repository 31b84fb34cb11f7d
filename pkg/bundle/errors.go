// File: pkg/bundle/errors.go
package bundle

import (
	"errors"
	"fmt"
)

// Kind classifies a bundle failure so callers can choose how to report it.
type Kind int

const (
	KindIO              Kind = iota // General read/write failure
	KindMissingArgument             // A required option was not supplied
	KindInvalidOption               // An option carried a value outside its domain
	KindInvalidPath                 // The output path's directory does not exist
)

// Sentinel errors usable with errors.Is.
var (
	ErrIO              = &Error{Kind: KindIO}
	ErrMissingArgument = &Error{Kind: KindMissingArgument}
	ErrInvalidOption   = &Error{Kind: KindInvalidOption}
	ErrInvalidPath     = &Error{Kind: KindInvalidPath}
)

// Error is the error type returned by every stage of the pipeline.
type Error struct {
	Kind Kind   // Failure class
	Op   string // What was being attempted, e.g. "open output"
	Err  error  // Underlying cause, may be nil
}

func (e *Error) Error() string {
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case e.Op != "":
		return e.Op
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

func (k Kind) String() string {
	switch k {
	case KindMissingArgument:
		return "missing argument"
	case KindInvalidOption:
		return "invalid option"
	case KindInvalidPath:
		return "invalid path"
	default:
		return "i/o error"
	}
}

func newError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// UserMessage renders err the way the command line reports it.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrInvalidPath) {
		return "Error: file path is invalid"
	}
	return fmt.Sprintf("Error: %v", err)
}
