package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulechain/pkg/validator"
)

func TestAny(t *testing.T) {
	t.Parallel()

	t.Run("passes for member", func(t *testing.T) {
		ok, err := validator.Any("foo", "bar").ValidateSync("foo")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("fails for non-member", func(t *testing.T) {
		rule := validator.Any("foo", "bar")
		ok, err := rule.ValidateSync("baz")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, "should be one of: foo,bar", rule.Err().Error())
	})

	t.Run("fails for empty set", func(t *testing.T) {
		ok, err := validator.Any().ValidateSync("foo")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("matches numbers across kinds", func(t *testing.T) {
		ok, err := validator.Any(1, 2, 3).ValidateSync(float64(2))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("copies the configured set", func(t *testing.T) {
		values := []any{"foo"}
		rule := validator.Any(values...)
		values[0] = "bar"

		ok, err := rule.ValidateSync("foo")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestNone(t *testing.T) {
	t.Parallel()

	t.Run("fails for member", func(t *testing.T) {
		rule := validator.None("admin", "root")
		ok, err := rule.ValidateSync("root")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, "should not be one of: admin,root", rule.Err().Error())
	})

	t.Run("passes for non-member", func(t *testing.T) {
		ok, err := validator.None("admin", "root").ValidateSync("guest")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("is the negation of Any", func(t *testing.T) {
		sets := [][]any{
			{},
			{"foo", "bar"},
			{1, "1", nil},
			{true, 2.5},
		}
		values := []any{"foo", "baz", 1, 1.0, "1", nil, true, false, 2.5, []int{1}}

		for _, set := range sets {
			for _, v := range values {
				anyOK, err := validator.Any(set...).ValidateSync(v)
				require.NoError(t, err)
				noneOK, err := validator.None(set...).ValidateSync(v)
				require.NoError(t, err)
				assert.Equal(t, !anyOK, noneOK, "set %v value %v", set, v)
			}
		}
	})
}
