package validator

import (
	"fmt"
	"regexp"
)

var emailRegex = regexp.MustCompile(`^.+@[^.].*\.[a-z]{2,10}$`)

// Regexp passes when the value is a non-empty string matching re.
// nil and "" fail; other non-string values yield a UsageError.
func Regexp(re *regexp.Regexp) *Rule {
	return newRule("regexp",
		func() string { return fmt.Sprintf("should match %s", re) },
		matchCheck("regexp", re),
	)
}

// MustRegexp compiles pattern and panics if it is invalid.
func MustRegexp(pattern string) *Rule {
	return Regexp(regexp.MustCompile(pattern))
}

// Email is Regexp with a fixed address shape. The TLD must be 2-10 lowercase letters.
func Email() *Rule {
	return newRule("email", staticMessage("should be a valid email"), matchCheck("email", emailRegex))
}

func matchCheck(name string, re *regexp.Regexp) checkFunc {
	return func(value any) (bool, error) {
		if value == nil {
			return false, nil
		}
		s, ok := toString(value)
		if !ok {
			return false, usageErrorf(name, "value of type %T is not a string", value)
		}
		return s != "" && re.MatchString(s), nil
	}
}
