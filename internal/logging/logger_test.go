package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mikey/scamshield/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitLoggerLevel(t *testing.T) {
	v := config.NewEmptyViper()
	v.Set("logging.level", "warn")
	v.Set("logging.format", "console")

	logger, err := InitLogger(config.NewFromViper(v))
	require.NoError(t, err)

	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}

func TestInitLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scamshield.log")
	v := config.NewEmptyViper()
	v.Set("logging.file", path)

	logger, err := InitLogger(config.NewFromViper(v))
	require.NoError(t, err)

	logger.Info("analysis finished", zap.String("file", "call.webm"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "analysis finished")
	assert.Contains(t, string(data), "call.webm")
}

func TestParseLevelDefault(t *testing.T) {
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
}
