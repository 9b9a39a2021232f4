package validator

import "fmt"

// EqualTo passes when the value strictly equals target.
// Numbers compare by value, so EqualTo(5) accepts int64(5) and 5.0.
func EqualTo(target any) *Rule {
	return newRule("equal_to",
		func() string { return fmt.Sprintf("should be equal to %v", target) },
		func(value any) (bool, error) {
			return strictEqual(value, target), nil
		},
	)
}
