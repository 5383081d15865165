package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitReadsEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LISTEN_ADDR", "127.0.0.1:9000")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("SESSION_NAME", "")
	t.Setenv("CONTENT_DIR", "/srv/history")
	t.Setenv("LOG_LEVEL", "debug")

	Init()

	assert.Equal(t, "127.0.0.1:9000", ListenAddr)
	assert.Equal(t, "s3cret", SessionSecret)
	assert.Equal(t, "history-session", SessionName)
	assert.Equal(t, "/srv/history", ContentDir)
	assert.Equal(t, "debug", LogLevel)
	assert.Equal(t, []byte("s3cret"), SessionKey())
}

func TestSessionKeyGeneratedWhenUnset(t *testing.T) {
	SessionSecret = ""
	a, b := SessionKey(), SessionKey()
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}

func TestNewLogger(t *testing.T) {
	t.Cleanup(func() { LogLevel = "info" })

	LogLevel = "warn"
	logger, err := NewLogger()
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	LogLevel = "loud"
	_, err = NewLogger()
	assert.ErrorContains(t, err, "parse LOG_LEVEL")
}
