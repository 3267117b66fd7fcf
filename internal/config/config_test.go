package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load("dev", filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Environment)
	assert.Contains(t, cfg.DBPath, ".musclelog")
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 300*time.Millisecond, cfg.BusDebounceWindow())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[development]
db_path = "/tmp/musclelog-dev.db"
log_level = "trace"
log_to_stdout = true
bus_debounce_millis = 50

[production]
db_path = "/var/lib/musclelog/musclelog.db"
logs_path = "/var/log/musclelog"
`), 0o600))

	cfg, err := Load("development", path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/musclelog-dev.db", cfg.DBPath)
	assert.Equal(t, "trace", cfg.LogLevel)
	assert.True(t, cfg.LogToStdout)
	assert.Equal(t, 50*time.Millisecond, cfg.BusDebounceWindow())

	cfg, err = Load("prod", path)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/musclelog/musclelog.db", cfg.DBPath)
	assert.Equal(t, "info", cfg.LogLevel, "defaults fill omitted fields")
	assert.Equal(t, 300*time.Millisecond, cfg.BusDebounceWindow())

	_, err = Load("staging", path)
	require.Error(t, err)
}
