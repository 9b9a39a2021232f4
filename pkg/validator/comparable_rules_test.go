package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulechain/pkg/validator"
)

func TestEqualTo(t *testing.T) {
	t.Parallel()

	t.Run("passes for identical string", func(t *testing.T) {
		ok, err := validator.EqualTo("foo").ValidateSync("foo")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("fails for different string", func(t *testing.T) {
		rule := validator.EqualTo("foo")
		ok, err := rule.ValidateSync("bar")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, "should be equal to foo", rule.Err().Error())
	})

	t.Run("compares numbers by value", func(t *testing.T) {
		ok, err := validator.EqualTo(5).ValidateSync(5.0)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("does not coerce between strings and numbers", func(t *testing.T) {
		ok, err := validator.EqualTo(5).ValidateSync("5")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("does not treat bool as number", func(t *testing.T) {
		ok, err := validator.EqualTo(1).ValidateSync(true)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("never matches uncomparable values", func(t *testing.T) {
		ok, err := validator.EqualTo([]int{1}).ValidateSync([]int{1})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("never matches comparable containers holding uncomparable values", func(t *testing.T) {
		type wrapper struct{ X any }
		values := []any{
			[1]any{[]int{1}},
			wrapper{X: map[string]int{}},
		}
		for _, v := range values {
			ok, err := validator.EqualTo(v).ValidateSync(v)
			require.NoError(t, err)
			assert.False(t, ok, "value %#v", v)

			ok, err = validator.Any(v).ValidateSync(v)
			require.NoError(t, err)
			assert.False(t, ok, "value %#v", v)

			ok, err = validator.None(v).ValidateSync(v)
			require.NoError(t, err)
			assert.True(t, ok, "value %#v", v)
		}
	})

	t.Run("matches comparable containers by contents", func(t *testing.T) {
		ok, err := validator.EqualTo([2]any{"a", 1}).ValidateSync([2]any{"a", 1})
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("matches nil only with nil", func(t *testing.T) {
		ok, err := validator.EqualTo(nil).ValidateSync(nil)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = validator.EqualTo(nil).ValidateSync("")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
