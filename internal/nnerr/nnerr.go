// Package nnerr defines the single error kind returned by the network and its trainers.
package nnerr

import (
	"errors"
	"fmt"
)

var (
	// ErrNeuralNetwork matches every error produced by this module's core.
	ErrNeuralNetwork = errors.New("neural network error")

	// ErrNilArgument is returned when a required argument is missing.
	ErrNilArgument = &Error{Msg: "required argument is nil"}
)

// Error is a domain error carrying a descriptive message and an optional cause.
type Error struct {
	Msg string
	Err error
}

// Newf formats a new domain error.
func Newf(format string, args ...any) error {
	return &Error{Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches msg to err as a domain error. A nil err yields nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Msg: msg, Err: err}
}

// NilArgument reports that the named argument was nil.
func NilArgument(name string) error {
	return &Error{Msg: fmt.Sprintf("argument %s cannot be nil", name), Err: ErrNilArgument}
}

func (e *Error) Error() string {
	if e.Err == nil || e.Err == ErrNilArgument {
		return e.Msg
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is makes every *Error match ErrNeuralNetwork.
func (e *Error) Is(target error) bool {
	return target == ErrNeuralNetwork
}
