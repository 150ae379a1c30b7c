package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger_WritesJSONFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	cfg := LogConfig{Service: "agro-test", Dir: dir, FileName: "api.log", MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1}

	logger, err := InitLogger(cfg, false)
	require.NoError(t, err)

	logger.Debug("hidden below info")
	logger.Info("order placed")
	logger.Sync()

	raw, err := os.ReadFile(filepath.Join(dir, "api.log"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "order placed", entry["msg"])
	assert.Equal(t, "agro-test", entry["service"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "timestamp")
}
