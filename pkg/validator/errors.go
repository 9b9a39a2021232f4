package validator

import (
	"errors"
	"fmt"
)

var (
	// ErrUsage is matched by every UsageError via errors.Is.
	ErrUsage = errors.New("validator: usage fault")

	// ErrLookupFailed is returned when a store-backed rule cannot reach its store.
	ErrLookupFailed = errors.New("validator: lookup failed")
)

// ValidatorError is the payload of a failed validation.
// It is created fresh for every failed evaluation and never mutated afterwards.
type ValidatorError struct {
	Message string
}

func (e *ValidatorError) Error() string {
	return e.Message
}

// UsageError reports a value the rule cannot structurally evaluate,
// e.g. a non-sequence handed to Every. It is a fault, not a validation failure.
type UsageError struct {
	Rule   string
	Reason string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("validator: %s: %s", e.Rule, e.Reason)
}

func (e *UsageError) Is(target error) bool {
	return target == ErrUsage
}

func usageErrorf(rule, format string, args ...any) *UsageError {
	return &UsageError{Rule: rule, Reason: fmt.Sprintf(format, args...)}
}

// AsValidationError extracts a ValidatorError from err.
func AsValidationError(err error) (*ValidatorError, bool) {
	if err == nil {
		return nil, false
	}
	var verr *ValidatorError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// IsValidationError reports whether err is an ordinary validation failure.
func IsValidationError(err error) bool {
	_, ok := AsValidationError(err)
	return ok
}

// IsUsageError reports whether err is a usage fault.
func IsUsageError(err error) bool {
	return errors.Is(err, ErrUsage)
}

// IsFault reports whether err is anything other than a validation failure:
// usage faults, lookup failures and context errors.
func IsFault(err error) bool {
	return err != nil && !IsValidationError(err)
}
