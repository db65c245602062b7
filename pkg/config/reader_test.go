package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("empty path returns default", func(t *testing.T) {
		tpl, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), tpl)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "template.yaml")

		content := `
name: Docs Site
repository_url: https://github.com/example/docs-template
env:
  - PAYLOAD_SECRET
  - DATABASE_URL
  - S3_BUCKET
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		tpl, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "Docs Site", tpl.Name)
		assert.Equal(t, "https://github.com/example/docs-template", tpl.RepositoryURL)
		assert.Equal(t, []string{"PAYLOAD_SECRET", "DATABASE_URL", "S3_BUCKET"}, tpl.EnvVars)

		// Untouched fields come from the default template
		assert.Equal(t, DefaultProviderURL, tpl.ProviderURL)
		assert.Equal(t, DefaultProjectName, tpl.DefaultProjectName)
		assert.Equal(t, Default().DatabaseGuide, tpl.DatabaseGuide)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read template file")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("env: [unclosed"), 0644))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse template file")
	})

	t.Run("invalid template", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "invalid.yaml")
		require.NoError(t, os.WriteFile(path, []byte("provider_url: not-a-url\n"), 0644))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "provider_url")
	})
}
