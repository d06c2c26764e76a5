package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rogerio-castellano/qr-tracker/internal/logger"
)

func TestInit_ReplacesGlobal(t *testing.T) {
	t.Cleanup(func() { zap.ReplaceGlobals(zap.NewNop()) })

	l, err := logger.Init("production", "")
	require.NoError(t, err)
	assert.Same(t, l, zap.L())
}

func TestInit_WritesRotatingFile(t *testing.T) {
	t.Cleanup(func() { zap.ReplaceGlobals(zap.NewNop()) })
	path := filepath.Join(t.TempDir(), "server.log")

	l, err := logger.Init("development", path)
	require.NoError(t, err)
	l.Info("scan stored", zap.String("qrId", "P1"))
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"qrId":"P1"`)
}
