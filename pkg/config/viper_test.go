package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	t.Chdir(t.TempDir())

	v, err := Load(t.TempDir(), "config")
	require.NoError(t, err)
	assert.Equal(t, "", v.ConfigFileUsed())
}

func TestLoad_ReadsYAMLAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "quickid.yaml"), []byte("grpc:\n  port: 6000\nquickid:\n  prefix: job\n"), 0o644))
	t.Setenv("QUICKID_PREFIX", "env")

	v, err := Load(dir, "quickid")
	require.NoError(t, err)
	assert.Equal(t, 6000, v.GetInt("grpc.port"))
	assert.Equal(t, "env", v.GetString("quickid.prefix"))
}

func TestLoadFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "svc.yaml")
	require.NoError(t, os.WriteFile(file, []byte("log:\n  level: debug\n"), 0o644))
	v, err := LoadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "debug", v.GetString("log.level"))
}

func TestLoad_BrokenYAML(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("grpc: [\n"), 0o644))

	_, err := Load(dir, "broken")
	assert.Error(t, err)
}
