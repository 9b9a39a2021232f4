package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulechain/pkg/validator"
)

func TestEvery(t *testing.T) {
	t.Parallel()

	t.Run("passes for empty slice", func(t *testing.T) {
		ok, err := validator.Every().ValidateSync([]any{})
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("passes for identical elements", func(t *testing.T) {
		ok, err := validator.Every().ValidateSync([]int{1, 1, 1})
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = validator.Every().ValidateSync([3]string{"a", "a", "a"})
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("fails for differing elements", func(t *testing.T) {
		rule := validator.Every()
		ok, err := rule.ValidateSync([]int{1, 2})
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, " values should match ", rule.Err().Error())
	})

	t.Run("compares mixed numeric kinds by value", func(t *testing.T) {
		ok, err := validator.Every().ValidateSync([]any{1, 1.0, int64(1)})
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("fails for elements holding uncomparable values", func(t *testing.T) {
		type wrapper struct{ X any }
		for _, v := range []any{[1]any{[]int{1}}, wrapper{X: map[string]int{}}} {
			ok, err := validator.Every().ValidateSync([]any{v, v})
			require.NoError(t, err)
			assert.False(t, ok, "value %#v", v)
		}
	})

	t.Run("returns usage fault for non-sequence", func(t *testing.T) {
		rule := validator.Every()
		for _, v := range []any{"abc", 1, nil, map[string]int{"a": 1}} {
			ok, err := rule.ValidateSync(v)
			assert.False(t, ok)
			require.Error(t, err)
			assert.True(t, validator.IsUsageError(err), "value %v", v)
			assert.False(t, validator.IsValidationError(err))
			assert.Nil(t, rule.Err())
		}
	})

	t.Run("reports usage fault through the callback", func(t *testing.T) {
		var usage *validator.UsageError
		validator.Every().Validate(t.Context(), "abc", func(valid bool, err error) {
			assert.False(t, valid)
			require.ErrorAs(t, err, &usage)
		})
		require.NotNil(t, usage)
		assert.Equal(t, "every", usage.Rule)
		assert.Contains(t, usage.Reason, "value should be an array")
	})
}
