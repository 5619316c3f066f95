package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8091, cfg.Server.Port)
	assert.Equal(t, 50054, cfg.GRPC.Port)
	assert.Equal(t, "string", cfg.QuickID.Type)
	assert.Equal(t, 0, cfg.QuickID.Length)
	assert.Equal(t, 21, cfg.NanoID.Size)
	assert.Equal(t, 24, cfg.CUID2.Length)
	assert.Equal(t, 1000, cfg.Limits.MaxBatch)
	assert.Equal(t, 100000, cfg.Limits.MaxTrials)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9000")
	t.Setenv("QUICKID_PREFIX", "trace")
	t.Setenv("QUICKID_TYPE", "number")
	t.Setenv("QUICKID_LENGTH", "12")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "trace", cfg.QuickID.Prefix)
	assert.Equal(t, "number", cfg.QuickID.Type)
	assert.Equal(t, 12, cfg.QuickID.Length)
}

func TestLoadFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "quickid.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
grpc:
  port: 7001
quickid:
  prefix: log
  length: 20
nanoid:
  size: 10
`), 0o644))

	cfg, err := LoadFile(file)
	require.NoError(t, err)
	assert.Equal(t, 7001, cfg.GRPC.Port)
	assert.Equal(t, "log", cfg.QuickID.Prefix)
	assert.Equal(t, 20, cfg.QuickID.Length)
	assert.Equal(t, 10, cfg.NanoID.Size)
	assert.Equal(t, 8091, cfg.Server.Port)
}
