package validator

import (
	"context"
	"sync"
	"sync/atomic"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Callback receives the outcome of an evaluation.
// valid is true only when err is nil. err is a *ValidatorError for an
// ordinary failure and any other error for a fault.
type Callback func(valid bool, err error)

// Validator is the capability shared by every rule and chain.
type Validator interface {
	// Validate evaluates value and reports the outcome through done.
	// done may be called on another goroutine for store-backed rules.
	Validate(ctx context.Context, value any, done Callback)
	// ValidateSync runs Validate to completion. The returned error is
	// non-nil only for faults; a validation failure is read via Err.
	ValidateSync(value any) (bool, error)
	// Err returns the last validation failure, or nil.
	Err() error
	// Message returns the configured failure message.
	Message() string
}

var _ Validator = (*Rule)(nil)

// checkFunc is a synchronous predicate. A non-nil error is a fault.
type checkFunc func(value any) (bool, error)

// validateFunc is the asynchronous form every Rule runs.
type validateFunc func(ctx context.Context, value any, done Callback)

// Rule is a single predicate with fixed configuration and a failure message.
type Rule struct {
	name     string
	message  func() string
	override string
	validate validateFunc
	last     atomic.Pointer[ValidatorError]
}

func newRule(name string, message func() string, check checkFunc) *Rule {
	return newAsyncRule(name, message, func(_ context.Context, value any, done Callback) {
		done(check(value))
	})
}

func newAsyncRule(name string, message func() string, validate validateFunc) *Rule {
	return &Rule{name: name, message: message, validate: validate}
}

func staticMessage(msg string) func() string {
	return func() string { return msg }
}

// Base always passes.
func Base() *Rule {
	return newRule("base", staticMessage(""), func(any) (bool, error) {
		return true, nil
	})
}

// Name identifies the rule kind, e.g. "min_length".
func (r *Rule) Name() string {
	return r.name
}

func (r *Rule) Message() string {
	if r.override != "" {
		return r.override
	}
	return r.message()
}

// WithMessage returns a copy of the rule reporting msg on failure.
func (r *Rule) WithMessage(msg string) *Rule {
	return &Rule{
		name:     r.name,
		message:  r.message,
		override: msg,
		validate: r.validate,
	}
}

func (r *Rule) Err() error {
	if verr := r.last.Load(); verr != nil {
		return verr
	}
	return nil
}

func (r *Rule) Validate(ctx context.Context, value any, done Callback) {
	r.last.Store(nil)
	var once sync.Once
	r.validate(ctx, value, func(valid bool, err error) {
		once.Do(func() {
			switch {
			case err != nil:
				done(false, err)
			case !valid:
				verr := &ValidatorError{Message: r.Message()}
				r.last.Store(verr)
				done(false, verr)
			default:
				done(true, nil)
			}
		})
	})
}

func (r *Rule) ValidateSync(value any) (bool, error) {
	return validateSync(r, value)
}

func validateSync(v Validator, value any) (bool, error) {
	valid, err := Await(context.Background(), v, value)
	if IsFault(err) {
		return false, err
	}
	return valid, nil
}
