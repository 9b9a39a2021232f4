package validator

import "fmt"

// MinLength passes when the value has at least min characters (or elements).
func MinLength(min int) *Rule {
	return newRule("min_length",
		func() string { return fmt.Sprintf("should be at least %d character long", min) },
		func(value any) (bool, error) {
			n, ok := lengthOf(value)
			if !ok {
				return false, usageErrorf("min_length", "value of type %T has no length", value)
			}
			return n >= min, nil
		},
	)
}

func MaxLength(max int) *Rule {
	return newRule("max_length",
		func() string { return fmt.Sprintf("should be at most %d character long", max) },
		func(value any) (bool, error) {
			n, ok := lengthOf(value)
			if !ok {
				return false, usageErrorf("max_length", "value of type %T has no length", value)
			}
			return n <= max, nil
		},
	)
}

// Required fails for nil, typed nil references and the empty string.
func Required() *Rule {
	return newRule("required", staticMessage("is required"), func(value any) (bool, error) {
		return !isAbsent(value), nil
	})
}
