package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"codebundle/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a YAML config file inside dir
func writeYAML(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validYAML = `
language: [py, cs]
output: bundle.txt
note: true
sort: type
remove_empty_lines: false
author: Jane
comment: "#"
exclude:
  - "vendor/**"
skip_binary: true
max_file_size_kb: 256
tree: true
`

func TestLoad(t *testing.T) {
	t.Run("load valid config from root", func(t *testing.T) {
		root := t.TempDir()
		writeYAML(t, root, config.FileName, validYAML)

		f, err := config.Load("", root)
		require.NoError(t, err)

		assert.Equal(t, []string{"py", "cs"}, f.Language)
		assert.Equal(t, "bundle.txt", f.Output)
		require.NotNil(t, f.Note)
		assert.True(t, *f.Note)
		assert.Equal(t, "type", f.Sort)
		require.NotNil(t, f.RemoveEmptyLines)
		assert.False(t, *f.RemoveEmptyLines)
		assert.Equal(t, "Jane", f.Author)
		assert.Equal(t, "#", f.Comment)
		assert.Equal(t, []string{"vendor/**"}, f.Exclude)
		require.NotNil(t, f.MaxFileSizeKB)
		assert.Equal(t, 256, *f.MaxFileSizeKB)
		require.NotNil(t, f.Tree)
		assert.True(t, *f.Tree)
	})

	t.Run("missing default file yields empty config", func(t *testing.T) {
		f, err := config.Load("", t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, &config.File{}, f)
	})

	t.Run("missing explicit file is an error", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"), "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error reading config file")
	})

	t.Run("invalid YAML", func(t *testing.T) {
		path := writeYAML(t, t.TempDir(), "bad.yaml", "language: [py\nnote: maybe\n")
		_, err := config.Load(path, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error parsing config file")
	})
}
