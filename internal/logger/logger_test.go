package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestGetFallsBackToNop(t *testing.T) {
	log = nil
	t.Cleanup(func() { log = nil })

	assert.NotNil(t, Get())
	assert.NoError(t, Sync())
}

func TestInitProductionLevel(t *testing.T) {
	t.Cleanup(func() { log = nil })

	require.NoError(t, Init("production", false))
	assert.False(t, Get().Core().Enabled(zapcore.DebugLevel))
	assert.True(t, Get().Core().Enabled(zapcore.InfoLevel))

	require.NoError(t, Init("production", true))
	assert.True(t, Get().Core().Enabled(zapcore.DebugLevel))
}

func TestInitDevelopmentLogsDebug(t *testing.T) {
	t.Cleanup(func() { log = nil })

	require.NoError(t, Init("development", false))
	assert.True(t, Named("test").Core().Enabled(zapcore.DebugLevel))
}
