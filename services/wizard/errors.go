package wizard

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned when a wizard session is missing or expired.
var ErrSessionNotFound = errors.New("wizard session not found or expired")

// WizardError carries a machine-readable code alongside the message so
// handlers can map rejections to HTTP statuses.
type WizardError struct {
	Code    string
	Message string
}

func (e *WizardError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewValidationError marks input that fails a step guard. The wizard stays at
// its current step.
func NewValidationError(msg string) error {
	return &WizardError{Code: "validationError", Message: msg}
}

func NewValidationErrorf(format string, args ...any) error {
	return NewValidationError(fmt.Sprintf(format, args...))
}

// NewTransitionError marks an action attempted from the wrong step.
func NewTransitionError(action, step string) error {
	return &WizardError{
		Code:    "transitionError",
		Message: fmt.Sprintf("cannot %s from step %q", action, step),
	}
}

// IsValidationError reports whether err is a step-guard rejection.
func IsValidationError(err error) bool {
	var we *WizardError
	return errors.As(err, &we) && we.Code == "validationError"
}

// IsTransitionError reports whether err is a wrong-step rejection.
func IsTransitionError(err error) bool {
	var we *WizardError
	return errors.As(err, &we) && we.Code == "transitionError"
}
