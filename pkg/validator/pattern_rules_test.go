package validator_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulechain/pkg/validator"
)

func TestRegexp(t *testing.T) {
	t.Parallel()

	rule := validator.Regexp(regexp.MustCompile(`\w+\-\d+`))

	t.Run("passes for matching string", func(t *testing.T) {
		ok, err := rule.ValidateSync("foo-50")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("fails for non-matching string", func(t *testing.T) {
		r := validator.MustRegexp(`\w+\-\d+`)
		ok, err := r.ValidateSync("bar-")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, `should match \w+\-\d+`, r.Err().Error())
	})

	t.Run("fails for empty and nil values", func(t *testing.T) {
		always := validator.MustRegexp(`.*`)
		for _, v := range []any{"", nil} {
			ok, err := always.ValidateSync(v)
			require.NoError(t, err)
			assert.False(t, ok)
		}
	})

	t.Run("returns usage error for non-string values", func(t *testing.T) {
		ok, err := rule.ValidateSync(50)
		assert.False(t, ok)
		assert.True(t, validator.IsUsageError(err))
	})

	t.Run("panics on invalid pattern", func(t *testing.T) {
		assert.Panics(t, func() { validator.MustRegexp(`(`) })
	})
}

func TestEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  bool
	}{
		{value: "mparaiso@online.fr", want: true},
		{value: "john.doe@example.co.uk", want: true},
		{value: "mparaiso@online", want: false},
		{value: "mparaiso@.online.fr", want: false},
		{value: "@online.fr", want: false},
		{value: "mparaiso@online.FR", want: false},
		{value: "mparaiso@online.f", want: false},
		{value: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			rule := validator.Email()
			ok, err := rule.ValidateSync(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			if !tt.want {
				assert.Equal(t, "should be a valid email", rule.Err().Error())
			}
		})
	}
}
