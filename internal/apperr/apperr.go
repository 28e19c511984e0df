// Package apperr defines the failure kinds surfaced to the user.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation: missing video path, empty prompt.
	ErrValidation = errors.New("validation error")
	// ErrStorage: cache directory or transcript file could not be written or read.
	ErrStorage = errors.New("storage error")
	// ErrTranscription: the speech model or media decoding failed.
	ErrTranscription = errors.New("transcription error")
	// ErrGeneration: the language model failed to load or to answer.
	ErrGeneration = errors.New("generation error")
)

// Error ties a failure kind to the operation that failed and its cause.
// errors.Is matches both the kind sentinel and anything in the cause chain.
type Error struct {
	Kind error
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func wrap(kind error, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Validation builds an ErrValidation with a user-facing message.
func Validation(op, msg string) error {
	return wrap(ErrValidation, op, errors.New(msg))
}

// Storage wraps err as ErrStorage.
func Storage(op string, err error) error { return wrap(ErrStorage, op, err) }

// Transcription wraps err as ErrTranscription.
func Transcription(op string, err error) error { return wrap(ErrTranscription, op, err) }

// Generation wraps err as ErrGeneration.
func Generation(op string, err error) error { return wrap(ErrGeneration, op, err) }

// KindOf returns the kind sentinel carried by err, or nil.
func KindOf(err error) error {
	for _, kind := range []error{ErrValidation, ErrStorage, ErrTranscription, ErrGeneration} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// Message returns the text shown to the user for err.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Err != nil {
		if errors.Is(err, ErrValidation) {
			return e.Err.Error()
		}
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	}
	return err.Error()
}
