package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, used, err := Load(LoadOptions{SearchPaths: []string{t.TempDir()}})
	require.NoError(t, err)
	assert.Empty(t, used)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "minifs.yaml")
	content := `arena:
  size: 65536
  logical_base: 0xC0000000
shell:
  banner: false
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, used, err := Load(LoadOptions{SearchPaths: []string{dir}})
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, uint64(65536), cfg.Arena.Size)
	assert.Equal(t, uint64(0xC0000000), cfg.Arena.LogicalBase)
	assert.Equal(t, uint64(0x10000), cfg.Arena.PhysicalBase)
	assert.False(t, cfg.Shell.Banner)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadExplicitFileMissing(t *testing.T) {
	_, _, err := Load(LoadOptions{ConfigFilePath: filepath.Join(t.TempDir(), "nope.toml")})
	require.Error(t, err)
}

func TestLoadExplicitTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[arena]\nsize = 8192\n"), 0o644))

	cfg, used, err := Load(LoadOptions{ConfigFilePath: path})
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, uint64(8192), cfg.Arena.Size)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("MINIFS_ARENA_SIZE", "131072")
	t.Setenv("MINIFS_SHELL_BANNER", "false")

	cfg, _, err := Load(LoadOptions{SearchPaths: []string{t.TempDir()}})
	require.NoError(t, err)
	assert.Equal(t, uint64(131072), cfg.Arena.Size)
	assert.False(t, cfg.Shell.Banner)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero arena", func(c *Config) { c.Arena.Size = 0 }},
		{"unaligned logical", func(c *Config) { c.Arena.LogicalBase = 0x10010 }},
		{"unaligned physical", func(c *Config) { c.Arena.PhysicalBase = 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}

	require.NoError(t, DefaultConfig().Validate())
}

func TestArenaBytesRoundsUp(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Arena.Size = 5000
	assert.Equal(t, uint64(8192), cfg.ArenaBytes())
}
