package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateHome points the config file into a temp directory.
func isolateHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home) // Windows
	return filepath.Join(home, ".burrowrc")
}

func TestReadLines_InitializesNewFile(t *testing.T) {
	path := isolateHome(t)

	lines, err := ReadLines()
	require.NoError(t, err)

	// Every visible knob is materialized for discoverability.
	joined := ""
	for _, line := range lines {
		joined += line + "\n"
	}
	for _, key := range VisibleKeys {
		assert.Contains(t, joined, key+"="+Defaults[key]())
	}

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestReadLines_KeepsExistingContent(t *testing.T) {
	path := isolateHome(t)
	require.NoError(t, os.WriteFile(path, []byte("theme=ocean\r\n# mine\n"), 0600))

	lines, err := ReadLines()
	require.NoError(t, err)

	assert.Equal(t, []string{"theme=ocean", "# mine"}, lines)
}

func TestGet(t *testing.T) {
	path := isolateHome(t)
	require.NoError(t, os.WriteFile(path, []byte("theme=ocean\n"), 0600))

	value, ok := Get("theme")
	require.True(t, ok)
	assert.Equal(t, "ocean", value)

	// Falls back to the default when the file has no override.
	value, ok = Get("history_limit")
	require.True(t, ok)
	assert.Equal(t, "500", value)

	_, ok = Get("no_such_key")
	assert.False(t, ok)
}

func TestGetAll_MergesOverridesOverDefaults(t *testing.T) {
	path := isolateHome(t)
	require.NoError(t, os.WriteFile(path, []byte("theme=ocean\ncustom_key=1\n"), 0600))

	cfg, err := GetAll()
	require.NoError(t, err)

	assert.Equal(t, "ocean", cfg["theme"])
	assert.Equal(t, "false", cfg["enable_log"])
	// Unknown keys survive so newer builds never eat older files.
	assert.Equal(t, "1", cfg["custom_key"])
}

func TestProvider_SetAndUnsetRoundTrip(t *testing.T) {
	path := isolateHome(t)
	require.NoError(t, os.WriteFile(path, []byte("theme=default\n"), 0600))

	p := NewProvider()

	require.NoError(t, p.Set("theme", "mono"))
	value, ok := p.Get("theme")
	require.True(t, ok)
	assert.Equal(t, "mono", value)

	require.NoError(t, p.Unset("theme"))
	value, ok = p.Get("theme")
	require.True(t, ok)
	assert.Equal(t, "default", value, "falls back to the default after unset")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "theme=")
}

func TestWriteLines_Atomic(t *testing.T) {
	path := isolateHome(t)

	require.NoError(t, WriteLines([]string{"theme=ocean"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "theme=ocean\n", string(data))

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".burrowrc.tmp")
	}
}
