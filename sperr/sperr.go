// Package sperr holds common error objects used by the view package.
// Notably, it contains the Error type, which can be created
// with one or more 'cause' errors. Calling errors.Is() on this Error type
// with an argument consisting of any of the errors it has as a cause will
// return true.
//
// This package also holds the sentinel error values returned (wrapped) by
// sophtrie's core packages.
package sperr

import "errors"

var (
	ErrMissingEntry             = errors.New("no definition exists for the requested varname")
	ErrCircularDependency       = errors.New("definition depends on itself through a chain of transclusions")
	ErrEmptyStack               = errors.New("cursor stack has no frames left")
	ErrUnexpectedNone           = errors.New("expected a positioned cursor but found none")
	ErrUnexpectedChildItemType  = errors.New("child item is not of the expected kind")
	ErrIndexOutOfRange          = errors.New("index is out of range for the item's children")
)

// Error is a typed error returned by functions in sophtrie's core packages.
// It contains both a message explaining what happened and one or more error
// values it considers to be its causes. Error is compatible with the use of
// errors.Is() - calling errors.Is on some Error value err along with any
// value of error it holds as one of its causes will return true.
//
// Error should not be used directly; call New to create one.
type Error struct {
	msg   string
	cause []error
}

// Error returns the message defined for the Error, concatenated with the
// result of calling Error() on its first cause if one is defined.
func (e Error) Error() string {
	if e.msg == "" && e.cause != nil {
		return e.cause[0].Error()
	}
	if e.cause != nil {
		return e.msg + ": " + e.cause[0].Error()
	}
	return e.msg
}

// Unwrap returns the causes of Error, for use with errors.Is/errors.As.
func (e Error) Unwrap() []error {
	if len(e.cause) > 0 {
		return e.cause
	}
	return nil
}

// New creates a new Error with the given message, along with any errors it
// should wrap as its causes.
func New(msg string, causes ...error) Error {
	err := Error{msg: msg}
	if len(causes) > 0 {
		err.cause = make([]error, len(causes))
		copy(err.cause, causes)
	}
	return err
}

// MissingEntry builds an Error wrapping ErrMissingEntry for the given
// varname.
func MissingEntry(varname string) Error {
	return New("no def named "+quote(varname), ErrMissingEntry)
}

// CircularDependency builds an Error wrapping ErrCircularDependency,
// reporting the def that was being expanded and the varname that would
// re-enter it.
func CircularDependency(defVarname, varname string) Error {
	return New("def "+quote(defVarname)+" transitively transcludes itself via "+quote(varname), ErrCircularDependency)
}

func quote(s string) string {
	return "\"" + s + "\""
}
