package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshal(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "repository_url: https://github.com/980567039/blog-template.git")
	assert.Contains(t, content, "provider_url: https://vercel.com/new/clone")
	assert.Contains(t, content, "  - PAYLOAD_SECRET")
	assert.Contains(t, content, "  - DATABASE_URL")
}

func TestWrite(t *testing.T) {
	t.Run("written file loads back", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "template.yaml")

		require.NoError(t, Write(path, Default(), false))

		tpl, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, Default(), tpl)
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "template.yaml")
		require.NoError(t, os.WriteFile(path, []byte("name: keep\n"), 0644))

		err := Write(path, Default(), false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "name: keep\n", string(content))
	})

	t.Run("overwrites when forced", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "template.yaml")
		require.NoError(t, os.WriteFile(path, []byte("name: old\n"), 0644))

		require.NoError(t, Write(path, Default(), true))

		tpl, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "Payload CMS Blog", tpl.Name)
	})
}
