package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulechain/pkg/validator"
)

func TestMin(t *testing.T) {
	t.Parallel()

	t.Run("passes at and above the bound", func(t *testing.T) {
		rule := validator.Min(5)
		for _, v := range []any{5, 6, int64(100), 5.0, uint8(7), float32(5.5)} {
			ok, err := rule.ValidateSync(v)
			require.NoError(t, err)
			assert.True(t, ok, "value %v", v)
		}
	})

	t.Run("fails below the bound", func(t *testing.T) {
		rule := validator.Min(5)
		ok, err := rule.ValidateSync(4.99)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, "should be at least 5", rule.Err().Error())
	})

	t.Run("formats float bounds", func(t *testing.T) {
		assert.Equal(t, "should be at least 1.5", validator.Min(1.5).Message())
	})

	t.Run("returns usage error for non-numeric values", func(t *testing.T) {
		ok, err := validator.Min(5).ValidateSync("10")
		assert.False(t, ok)
		assert.ErrorIs(t, err, validator.ErrUsage)
	})
}

func TestMax(t *testing.T) {
	t.Parallel()

	t.Run("passes at and below the bound", func(t *testing.T) {
		rule := validator.Max(8)
		for _, v := range []any{8, -1, 0.5, int16(8)} {
			ok, err := rule.ValidateSync(v)
			require.NoError(t, err)
			assert.True(t, ok, "value %v", v)
		}
	})

	t.Run("fails above the bound", func(t *testing.T) {
		rule := validator.Max(8)
		ok, err := rule.ValidateSync(9)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, "should be at most 8", rule.Err().Error())
	})

	t.Run("returns usage error for nil", func(t *testing.T) {
		_, err := validator.Max(8).ValidateSync(nil)
		assert.True(t, validator.IsUsageError(err))
	})
}
