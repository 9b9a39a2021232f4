package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/rulechain/pkg/logger"
)

func TestAttrs(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := errors.New("boom")
		assert.Equal(t, slog.Any("error", err), logger.Error(err))
		assert.Equal(t, slog.Attr{}, logger.Error(nil))
	})

	t.Run("domain attributes", func(t *testing.T) {
		assert.Equal(t, "rule", logger.Rule("username").Key)
		assert.Equal(t, "username", logger.Rule("username").Value.String())
		assert.Equal(t, "value", logger.Value(42).Key)
		assert.True(t, logger.Valid(true).Value.Bool())
		assert.Equal(t, "redis", logger.Store("redis").Value.String())
		assert.Equal(t, "api", logger.Component("api").Value.String())
	})
}
