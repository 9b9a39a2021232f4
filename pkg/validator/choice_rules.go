package validator

import "slices"

// Any passes when the value strictly equals one of values.
func Any(values ...any) *Rule {
	set := slices.Clone(values)
	return newRule("any",
		func() string { return "should be one of: " + joinValues(set) },
		func(value any) (bool, error) {
			return contains(set, value), nil
		},
	)
}

// None is the negation of Any for the same set.
func None(values ...any) *Rule {
	set := slices.Clone(values)
	return newRule("none",
		func() string { return "should not be one of: " + joinValues(set) },
		func(value any) (bool, error) {
			return !contains(set, value), nil
		},
	)
}

func contains(set []any, value any) bool {
	return slices.ContainsFunc(set, func(v any) bool {
		return strictEqual(v, value)
	})
}
