package errors

import (
	"errors"
	"fmt"
)

var (
	ErrValidation                = fmt.Errorf("validation failed")
	ErrStorageRead               = fmt.Errorf("malformed persisted value")
	ErrSimulatedTransientFailure = fmt.Errorf("an error occurred, please try again")
	ErrSubmitInProgress          = fmt.Errorf("a submission is already pending")
	ErrTokenGeneration           = fmt.Errorf("token generation failed")
	ErrNotAuthenticated          = fmt.Errorf("not authenticated")
	ErrEmptyMessage              = fmt.Errorf("message is empty")
	ErrMeetingNotFound           = fmt.Errorf("invalid meeting code")
	ErrMeetingEnded              = fmt.Errorf("this meeting has ended")
	ErrUnknownAction             = fmt.Errorf("unknown control action")
)

// ValidationError reports a form field rejected before anything is submitted.
// Message is the text shown next to the form.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

func (e ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func NewValidationError(field, message string) ValidationError {
	return ValidationError{Field: field, Message: message}
}

// SimulatedFailure is the alert shown when a mock submission fails. Each
// form has its own wording; all of them match ErrSimulatedTransientFailure.
type SimulatedFailure struct {
	Message string
}

func (e SimulatedFailure) Error() string {
	return e.Message
}

func (e SimulatedFailure) Unwrap() error {
	return ErrSimulatedTransientFailure
}

func NewSimulatedFailure(message string) SimulatedFailure {
	return SimulatedFailure{Message: message}
}

// Is and As re-export the standard helpers so callers importing this package
// under its own name don't need a second import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}
