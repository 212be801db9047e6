package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Empty(t, cfg.Name)
	assert.True(t, cfg.Options.PrettyPrint)
	assert.False(t, cfg.Options.IncludeSourceMap)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blink.toml"), []byte(`
name = "dungeon"

[options]
pretty = true
source_map = true
optimize = false
`), 0o644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "dungeon", cfg.Name)
	assert.Equal(t, "dungeon", cfg.Options.ModuleName)
	assert.True(t, cfg.Options.PrettyPrint)
	assert.True(t, cfg.Options.IncludeSourceMap)
	assert.False(t, cfg.Options.Optimize)
}

func TestLoadConfigMalformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blink.toml"), []byte(`name = [unclosed`), 0o644))

	_, err := LoadConfig(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing project file")
}
