package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLevelByEnvironment(t *testing.T) {
	dev, err := New(Config{Environment: EnvironmentDevelopment})
	require.NoError(t, err)
	assert.True(t, dev.Core().Enabled(zapcore.DebugLevel))

	prod, err := New(Config{Environment: EnvironmentProduction})
	require.NoError(t, err)
	assert.False(t, prod.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, prod.Core().Enabled(zapcore.InfoLevel))
}

func TestNewExplicitLevel(t *testing.T) {
	l, err := New(Config{Environment: EnvironmentProduction, Level: "warn"})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
}

func TestNewInvalidConfig(t *testing.T) {
	_, err := New(Config{Environment: "moon"})
	require.Error(t, err)

	_, err = New(Config{Environment: EnvironmentLocal, Level: "loud"})
	require.Error(t, err)
}
