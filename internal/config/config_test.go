package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "FieldData.xlsx", c.DataFile)
	assert.Equal(t, "FieldData", c.SheetName)
	assert.Equal(t, 25, c.MaxDisplayRows)
	assert.False(t, c.Watch)
	assert.NotEmpty(t, c.MetadataDir)
	assert.NotEmpty(t, c.HistoryDir)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "data_file: samples.csv\nsheet_name: Sheet1\nmax_display_rows: 10\nwatch: true\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "samples.csv", c.DataFile)
	assert.Equal(t, "Sheet1", c.SheetName)
	assert.Equal(t, 10, c.MaxDisplayRows)
	assert.True(t, c.Watch)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	in := &Global{DataFile: "d.csv", SheetName: "S", MaxDisplayRows: 5}
	require.NoError(t, Save(in, path))

	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "d.csv", out.DataFile)
	assert.Equal(t, "S", out.SheetName)
	assert.Equal(t, 5, out.MaxDisplayRows)
}

func TestLoadEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_file: from_file.csv\n"), 0o644))
	t.Setenv("WATERCHAT_DATA_FILE", "from_env.csv")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from_env.csv", c.DataFile)
}
