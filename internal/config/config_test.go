package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	res, err := Load(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, Default(), res.Config)
}

func TestDefaults(t *testing.T) {
	d := Default()
	assert.Equal(t, "todos.json", d.DataFile)
	assert.Equal(t, "length", d.IDScheme)
	assert.Equal(t, "classic", d.Theme)
	assert.Equal(t, "info", d.LogLevel)
	assert.NoError(t, d.Validate())
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
data_file = "lists/home.json"
id_scheme = "sequential"
theme = "mono"
`)
	res, err := Load(path)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Empty(t, res.Unknown)
	assert.Equal(t, Config{
		DataFile: "lists/home.json",
		IDScheme: "sequential",
		Theme:    "mono",
		LogLevel: "info",
	}, res.Config)
}

func TestLoadReportsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `
theme = "neon"
colour = "red"
`)
	res, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"colour"}, res.Unknown)
	assert.Equal(t, "neon", res.Config.Theme)
}

func TestLoadSyntaxError(t *testing.T) {
	path := writeConfig(t, `theme = `)
	res, err := Load(path)
	require.Error(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, Default(), res.Config)
}

func TestLoadInvalidValues(t *testing.T) {
	path := writeConfig(t, `
data_file = ""
id_scheme = "uuid"
theme = "plaid"
log_level = "loud"
`)
	res, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, Default(), res.Config)
	for _, want := range []string{"data_file", "id_scheme", "theme", "log_level"} {
		assert.Contains(t, err.Error(), want)
	}
}
