package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hr-hierarchy/internal/pkg/config"
)

func TestInitFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	require.NoError(t, Init(&config.LogConfig{Level: "debug", Format: "json", Output: "file", FilePath: path}))
	Info("hierarchy created", zap.Int("employees", 3))
	GetWriter().Printf("[gorm] %s", "SELECT 1")
	_ = Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hierarchy created"`)
	assert.Contains(t, string(data), `"employees":3`)
	assert.Contains(t, string(data), "[gorm] SELECT 1")
}

func TestInitUnknownLevelFallsBackToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	require.NoError(t, Init(&config.LogConfig{Level: "verbose", Format: "json", Output: "file", FilePath: path}))
	Debug("hidden")
	Info("shown")
	_ = Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestInitBadFilePath(t *testing.T) {
	err := Init(&config.LogConfig{Output: "file", FilePath: filepath.Join(t.TempDir(), "missing", "app.log")})
	assert.Error(t, err)
}
