package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigDir_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ConfigDirName), got)

	path, err := UserTemplatePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ConfigDirName, TemplateFileName), path)
}

func TestResolvePath(t *testing.T) {
	t.Run("explicit path wins", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())

		got, err := ResolvePath("custom.yaml")
		require.NoError(t, err)
		assert.Equal(t, "custom.yaml", got)
	})

	t.Run("no user profile means built-in", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())

		got, err := ResolvePath("")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("user profile is picked up", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", dir)
		userPath := filepath.Join(dir, ConfigDirName, TemplateFileName)
		require.NoError(t, Write(userPath, Default(), false))

		got, err := ResolvePath("")
		require.NoError(t, err)
		assert.Equal(t, userPath, got)
	})
}

func TestLoadResolved(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	userPath := filepath.Join(dir, ConfigDirName, TemplateFileName)
	require.NoError(t, os.MkdirAll(filepath.Dir(userPath), 0755))
	require.NoError(t, os.WriteFile(userPath, []byte("default_project_name: Team-Blog\n"), 0644))

	tpl, path, err := LoadResolved("")
	require.NoError(t, err)
	assert.Equal(t, userPath, path)
	assert.Equal(t, "Team-Blog", tpl.DefaultProjectName)
	assert.Equal(t, DefaultRepositoryURL, tpl.RepositoryURL)
}
