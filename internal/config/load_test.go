package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	content := `
[claude]
command = "claude-dev"
model = "claude-sonnet-4"
allowed_tools = "Read,Edit,Bash"

[display]
show_system = true
path_filter = "internal/**/*.go"
dedupe = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, md, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "claude-dev", cfg.Claude.Command)
	assert.Equal(t, "claude-sonnet-4", cfg.Claude.Model)
	assert.Equal(t, "Read,Edit,Bash", cfg.Claude.AllowedTools)
	assert.True(t, cfg.Display.ShowSystem)
	assert.Equal(t, "internal/**/*.go", cfg.Display.PathFilter)
	assert.True(t, cfg.Display.Dedupe)
	assert.Empty(t, md.Undecoded())
}

func TestLoadFromFile_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("[display]\ndedupe = true\n"), 0o644))

	cfg, _, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "claude", cfg.Claude.Command)
	assert.True(t, cfg.Display.Dedupe)
}

func TestLoadFromFile_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("[claude\ncommand ="), 0o644))

	_, _, err := LoadFromFile(path)
	assert.Error(t, err)
}

func TestFindConfigFile(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfgPath := filepath.Join(root, ConfigFileName)
	require.NoError(t, os.WriteFile(cfgPath, []byte(""), 0o644))

	found, err := FindConfigFile(nested)
	require.NoError(t, err)
	assert.Equal(t, cfgPath, found)
}

func TestFindConfigFile_NotFound(t *testing.T) {
	found, err := FindConfigFile(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestResolve_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("[claude]\nmodel = \"claude-opus-4\"\n"), 0o644))

	cfg, err := Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, "claude-opus-4", cfg.Claude.Model)
	assert.Equal(t, "claude", cfg.Claude.Command)
}

func TestResolve_InvalidConfigRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("[claude]\ncommand = \"\"\n"), 0o644))

	_, err := Resolve(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestWriteFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)

	original := NewDefaults()
	original.Claude.Model = "claude-sonnet-4"
	original.Display.PathFilter = "**/*.go"
	require.NoError(t, WriteFile(path, original))

	loaded, _, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}
