package validator

import (
	"context"
	"sync"

	"github.com/dmitrymomot/rulechain/pkg/async"
)

type outcome struct {
	valid bool
	err   error
}

// Await evaluates value and blocks until the validator reports or ctx ends.
// Only the first report counts. The error is the validation failure or fault.
func Await(ctx context.Context, v Validator, value any) (bool, error) {
	ch := make(chan outcome, 1)
	var once sync.Once
	v.Validate(ctx, value, func(valid bool, err error) {
		once.Do(func() { ch <- outcome{valid: valid, err: err} })
	})

	// synchronous rules have already reported
	select {
	case res := <-ch:
		return res.valid, res.err
	default:
	}

	select {
	case res := <-ch:
		return res.valid, res.err
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// Go evaluates value on its own goroutine.
func Go(ctx context.Context, v Validator, value any) *async.Future[bool] {
	return async.Async(ctx, value, func(ctx context.Context, value any) (bool, error) {
		return Await(ctx, v, value)
	})
}
