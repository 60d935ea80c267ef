package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DOCPANELS_CONFIG", "")
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "classic", c.UI.Theme)
	assert.Equal(t, "terminal", c.UI.Format)
	assert.Equal(t, 80, c.UI.Width)
	assert.Equal(t, "127.0.0.1:8080", c.Server.Addr)
	assert.Equal(t, "info", c.Log.Level)
}

func TestLoadFileAndEnv(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "docpanels.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  theme: neon\n  width: 100\nserver:\n  addr: \":9000\"\n"), 0o644))
	t.Setenv("DOCPANELS_UI_THEME", "mono")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "mono", c.UI.Theme)
	assert.Equal(t, 100, c.UI.Width)
	assert.Equal(t, ":9000", c.Server.Addr)
}

func TestLoadEnvPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o644))
	t.Setenv("DOCPANELS_CONFIG", path)

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", c.Log.Level)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
