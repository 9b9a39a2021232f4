package validator

import "github.com/google/uuid"

// UUID passes when the value is a string google/uuid can parse.
func UUID() *Rule {
	return newRule("uuid", staticMessage("should be a valid uuid"), func(value any) (bool, error) {
		if value == nil {
			return false, nil
		}
		s, ok := toString(value)
		if !ok {
			return false, usageErrorf("uuid", "value of type %T is not a string", value)
		}
		if s == "" {
			return false, nil
		}
		_, err := uuid.Parse(s)
		return err == nil, nil
	})
}
