package validator

import "fmt"

// Min passes when the value is a number greater than or equal to min.
func Min[T Numeric](min T) *Rule {
	bound := float64(min)
	return newRule("min",
		func() string { return fmt.Sprintf("should be at least %v", min) },
		func(value any) (bool, error) {
			n, ok := toNumber(value)
			if !ok {
				return false, usageErrorf("min", "value of type %T is not a number", value)
			}
			return n >= bound, nil
		},
	)
}

// Max passes when the value is a number less than or equal to max.
func Max[T Numeric](max T) *Rule {
	bound := float64(max)
	return newRule("max",
		func() string { return fmt.Sprintf("should be at most %v", max) },
		func(value any) (bool, error) {
			n, ok := toNumber(value)
			if !ok {
				return false, usageErrorf("max", "value of type %T is not a number", value)
			}
			return n <= bound, nil
		},
	)
}
