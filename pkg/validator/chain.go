package validator

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"
)

// ChainValidator evaluates an ordered list of validators against one value and
// stops at the first one that does not pass. Insertion order is evaluation order.
//
// A ChainValidator carries a last-error slot, so a single instance must not be
// shared by concurrent evaluations if Err is going to be read.
type ChainValidator struct {
	rules []Validator
	last  atomic.Pointer[ValidatorError]
}

var _ Validator = (*ChainValidator)(nil)

// Chain composes rules in order. nil entries are skipped.
func Chain(rules ...Validator) *ChainValidator {
	c := &ChainValidator{rules: make([]Validator, 0, len(rules))}
	for _, r := range rules {
		if r != nil {
			c.rules = append(c.rules, r)
		}
	}
	return c
}

// Length checks MinLength(min) then MaxLength(max).
func Length(min, max int) *ChainValidator {
	return Chain(MinLength(min), MaxLength(max))
}

// Range checks Min(min) then Max(max).
func Range[T Numeric](min, max T) *ChainValidator {
	return Chain(Min(min), Max(max))
}

// Rules returns a copy of the chain members.
func (c *ChainValidator) Rules() []Validator {
	return slices.Clone(c.rules)
}

// Validate reports success for an empty chain. Otherwise it evaluates members
// in order: the first validation failure is recorded and handed to done
// verbatim, a fault is propagated without being recorded, and members after
// the first failure are never evaluated.
func (c *ChainValidator) Validate(ctx context.Context, value any, done Callback) {
	c.last.Store(nil)
	if len(c.rules) == 0 {
		done(true, nil)
		return
	}
	c.step(ctx, 0, value, done)
}

// step evaluates member i and continues from inside its callback, so stack
// depth grows with chain length when members report synchronously. Chains are
// meant to be hand-written lists of rules, not generated ones with thousands
// of members.
func (c *ChainValidator) step(ctx context.Context, i int, value any, done Callback) {
	if err := ctx.Err(); err != nil {
		done(false, err)
		return
	}

	rule := c.rules[i]
	var once sync.Once
	rule.Validate(ctx, value, func(valid bool, err error) {
		once.Do(func() {
			if err == nil && !valid {
				// member broke the contract by failing without an error
				err = &ValidatorError{Message: rule.Message()}
			}
			if verr, ok := AsValidationError(err); ok {
				c.last.Store(verr)
				done(false, verr)
				return
			}
			if err != nil {
				done(false, err)
				return
			}
			if i+1 >= len(c.rules) {
				done(true, nil)
				return
			}
			c.step(ctx, i+1, value, done)
		})
	})
}

func (c *ChainValidator) ValidateSync(value any) (bool, error) {
	return validateSync(c, value)
}

func (c *ChainValidator) Err() error {
	if verr := c.last.Load(); verr != nil {
		return verr
	}
	return nil
}

// Message returns "". A chain has no template of its own; the failure of
// the last evaluation is available through Err.
func (c *ChainValidator) Message() string {
	return ""
}
