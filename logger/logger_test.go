package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	for _, env := range []string{"production", "development", "test"} {
		log, err := New(env)
		require.NoError(t, err, env)
		assert.True(t, log.Core().Enabled(zapcore.DebugLevel), env)
	}
	assert.NotNil(t, Nop())
}
