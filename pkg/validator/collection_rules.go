package validator

import "reflect"

// Every passes when the value is a slice or array whose elements all equal the first one.
// An empty sequence passes. Anything that is not a sequence yields a UsageError.
func Every() *Rule {
	return newRule("every", staticMessage(" values should match "), func(value any) (bool, error) {
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return false, usageErrorf("every", "value should be an array, got %T", value)
		}
		if rv.Len() == 0 {
			return true, nil
		}
		first := rv.Index(0).Interface()
		for i := 1; i < rv.Len(); i++ {
			if !strictEqual(rv.Index(i).Interface(), first) {
				return false, nil
			}
		}
		return true, nil
	})
}
