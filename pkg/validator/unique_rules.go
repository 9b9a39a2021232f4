package validator

import (
	"context"
	"errors"
	"time"
)

// Lookup reports whether a value is already present in a backing store.
type Lookup interface {
	Exists(ctx context.Context, value any) (bool, error)
}

// LookupFunc adapts a function to Lookup.
type LookupFunc func(ctx context.Context, value any) (bool, error)

func (f LookupFunc) Exists(ctx context.Context, value any) (bool, error) {
	return f(ctx, value)
}

type uniqueConfig struct {
	timeout time.Duration
}

type UniqueOption func(*uniqueConfig)

// WithLookupTimeout bounds each store call. Zero disables the bound.
func WithLookupTimeout(d time.Duration) UniqueOption {
	return func(c *uniqueConfig) {
		if d >= 0 {
			c.timeout = d
		}
	}
}

// Unique passes when lookup reports the value as absent. Absent values
// (nil, "") pass without a store call; pair with Required to demand presence.
//
// The store is queried on a separate goroutine, so done fires asynchronously.
// Lookup errors are faults wrapped with ErrLookupFailed.
func Unique(lookup Lookup, opts ...UniqueOption) *Rule {
	cfg := &uniqueConfig{timeout: 5 * time.Second}
	for _, opt := range opts {
		opt(cfg)
	}

	return newAsyncRule("unique", staticMessage("is already taken"), func(ctx context.Context, value any, done Callback) {
		if lookup == nil {
			done(false, usageErrorf("unique", "lookup is nil"))
			return
		}
		if isAbsent(value) {
			done(true, nil)
			return
		}

		go func() {
			if cfg.timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
				defer cancel()
			}

			exists, err := lookup.Exists(ctx, value)
			if err != nil {
				done(false, errors.Join(ErrLookupFailed, err))
				return
			}
			done(!exists, nil)
		}()
	})
}
