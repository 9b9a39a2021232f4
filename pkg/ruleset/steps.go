package ruleset

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"

	"github.com/dmitrymomot/rulechain/pkg/validator"
)

// step is one parsed list item of a rule definition.
type step struct {
	kind    string
	arg     any
	hasArg  bool
	message string
}

func parseStep(raw any) (step, error) {
	switch s := raw.(type) {
	case string:
		return step{kind: s}, nil
	case map[string]any:
		var st step
		for k, v := range s {
			if k == "message" {
				msg, ok := v.(string)
				if !ok {
					return st, fmt.Errorf("%w: message should be a string, got %T", ErrInvalidArgs, v)
				}
				st.message = msg
				continue
			}
			if st.kind != "" {
				return st, fmt.Errorf("%w: step names more than one rule", ErrInvalidArgs)
			}
			st.kind, st.arg, st.hasArg = k, v, true
		}
		if st.kind == "" {
			return st, fmt.Errorf("%w: step names no rule", ErrInvalidArgs)
		}
		return st, nil
	default:
		return step{}, fmt.Errorf("%w: step should be a string or a map, got %T", ErrInvalidArgs, raw)
	}
}

// build turns a step into a validator. ruleName is the name of the enclosing
// definition and serves as the default unique target.
func (b *builder) build(ruleName string, st step) (validator.Validator, error) {
	switch st.kind {
	case "base", "required", "email", "uuid", "every":
		if st.hasArg && st.arg != nil {
			return nil, fmt.Errorf("%w: %s takes no arguments", ErrInvalidArgs, st.kind)
		}
		return withMessage(zeroArg(st.kind), st.message), nil

	case "min_length", "max_length":
		n, err := intArg(st)
		if err != nil {
			return nil, err
		}
		if st.kind == "min_length" {
			return withMessage(validator.MinLength(n), st.message), nil
		}
		return withMessage(validator.MaxLength(n), st.message), nil

	case "length":
		lo, hi, err := pairArg(st, toInt)
		if err != nil {
			return nil, err
		}
		return validator.Chain(
			withMessage(validator.MinLength(lo), st.message),
			withMessage(validator.MaxLength(hi), st.message),
		), nil

	case "min", "max":
		n, err := floatArg(st)
		if err != nil {
			return nil, err
		}
		if st.kind == "min" {
			return withMessage(validator.Min(n), st.message), nil
		}
		return withMessage(validator.Max(n), st.message), nil

	case "range":
		lo, hi, err := pairArg(st, toFloat)
		if err != nil {
			return nil, err
		}
		return validator.Chain(
			withMessage(validator.Min(lo), st.message),
			withMessage(validator.Max(hi), st.message),
		), nil

	case "equal_to":
		if !st.hasArg {
			return nil, fmt.Errorf("%w: equal_to needs a value", ErrInvalidArgs)
		}
		return withMessage(validator.EqualTo(st.arg), st.message), nil

	case "regexp":
		pattern, ok := st.arg.(string)
		if !ok {
			return nil, fmt.Errorf("%w: regexp needs a pattern string", ErrInvalidArgs)
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, errors.Join(ErrInvalidArgs, fmt.Errorf("regexp: %w", err))
		}
		return withMessage(validator.Regexp(re), st.message), nil

	case "any", "none":
		set, ok := st.arg.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s needs a list of values", ErrInvalidArgs, st.kind)
		}
		if st.kind == "any" {
			return withMessage(validator.Any(set...), st.message), nil
		}
		return withMessage(validator.None(set...), st.message), nil

	case "unique":
		lookup, err := b.lookup(ruleName, st)
		if err != nil {
			return nil, err
		}
		return withMessage(validator.Unique(lookup, validator.WithLookupTimeout(b.timeout)), st.message), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, st.kind)
	}
}

func zeroArg(kind string) *validator.Rule {
	switch kind {
	case "required":
		return validator.Required()
	case "email":
		return validator.Email()
	case "uuid":
		return validator.UUID()
	case "every":
		return validator.Every()
	default:
		return validator.Base()
	}
}

func withMessage(r *validator.Rule, msg string) *validator.Rule {
	if msg == "" {
		return r
	}
	return r.WithMessage(msg)
}

// lookup resolves `unique: store` or `unique: {store: ..., target: ...}`.
func (b *builder) lookup(ruleName string, st step) (validator.Lookup, error) {
	store, target := "", ruleName
	switch arg := st.arg.(type) {
	case string:
		store = arg
	case map[string]any:
		s, ok := arg["store"].(string)
		if !ok {
			return nil, fmt.Errorf("%w: unique needs a store name", ErrInvalidArgs)
		}
		store = s
		if t, ok := arg["target"]; ok {
			ts, ok := t.(string)
			if !ok || ts == "" {
				return nil, fmt.Errorf("%w: unique target should be a non-empty string", ErrInvalidArgs)
			}
			target = ts
		}
	default:
		return nil, fmt.Errorf("%w: unique needs a store name", ErrInvalidArgs)
	}

	factory, ok := b.lookups[store]
	if !ok {
		err := fmt.Errorf("%w: %q", ErrUnknownLookup, store)
		if !b.deferred {
			return nil, err
		}
		return validator.LookupFunc(func(context.Context, any) (bool, error) {
			return false, err
		}), nil
	}
	lookup, err := factory(target)
	if err != nil {
		return nil, errors.Join(ErrInvalidArgs, fmt.Errorf("%s: %w", store, err))
	}
	return lookup, nil
}

func intArg(st step) (int, error) {
	n, err := toInt(st.arg)
	if err != nil {
		return 0, errors.Join(ErrInvalidArgs, fmt.Errorf("%s: %w", st.kind, err))
	}
	return n, nil
}

func floatArg(st step) (float64, error) {
	n, err := toFloat(st.arg)
	if err != nil {
		return 0, errors.Join(ErrInvalidArgs, fmt.Errorf("%s: %w", st.kind, err))
	}
	return n, nil
}

func pairArg[T any](st step, conv func(any) (T, error)) (T, T, error) {
	var zero T
	pair, ok := st.arg.([]any)
	if !ok || len(pair) != 2 {
		return zero, zero, fmt.Errorf("%w: %s needs [min, max]", ErrInvalidArgs, st.kind)
	}
	lo, err := conv(pair[0])
	if err != nil {
		return zero, zero, errors.Join(ErrInvalidArgs, fmt.Errorf("%s: %w", st.kind, err))
	}
	hi, err := conv(pair[1])
	if err != nil {
		return zero, zero, errors.Join(ErrInvalidArgs, fmt.Errorf("%s: %w", st.kind, err))
	}
	return lo, hi, nil
}

// toInt accepts the integer forms YAML and JSON decoders produce.
func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		if n > math.MaxInt {
			return 0, fmt.Errorf("%d is out of range", n)
		}
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case float64:
		return n, nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
}
