package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "", cfg.OutputDir)
	assert.False(t, cfg.IgnoreEncryption)
	assert.Equal(t, defaultListenAddr, cfg.ListenAddr)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pdfdeck.yaml")
	data := "output_dir: /tmp/out\nignore_encryption: true\nlisten_addr: 127.0.0.1:9000\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/out", cfg.OutputDir)
	assert.True(t, cfg.IgnoreEncryption)
	assert.Equal(t, "127.0.0.1:9000", cfg.ListenAddr)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pdfdeck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: [\n"), 0600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestOverridesApply(t *testing.T) {
	base := Config{OutputDir: "/from/file", IgnoreEncryption: true}

	// No flags given: the file values stand.
	assert.Equal(t, base, Overrides{}.Apply(base))

	// An explicit false wins over a true from the file, and vice versa.
	off := false
	cfg := Overrides{IgnoreEncryption: &off}.Apply(base)
	assert.False(t, cfg.IgnoreEncryption)
	assert.Equal(t, "/from/file", cfg.OutputDir)

	on := true
	dir := "/from/flag"
	cfg = Overrides{OutputDir: &dir, IgnoreEncryption: &on}.Apply(Config{})
	assert.True(t, cfg.IgnoreEncryption)
	assert.Equal(t, "/from/flag", cfg.OutputDir)
}

func TestPathEnvOverride(t *testing.T) {
	t.Setenv(configEnvVar, "/tmp/custom.yaml")
	assert.Equal(t, "/tmp/custom.yaml", Path())

	t.Setenv(configEnvVar, "")
	assert.Contains(t, Path(), configFileName)
}
