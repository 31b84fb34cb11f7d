package bundle

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	root := t.TempDir()

	t.Run("defaults", func(t *testing.T) {
		cfg, err := NewConfig(Options{Root: root, Languages: []string{"py"}, Output: "out.txt"})
		require.NoError(t, err)

		assert.Equal(t, root, cfg.Root)
		assert.Equal(t, []string{"py"}, cfg.Languages)
		assert.Equal(t, SortByName, cfg.Sort)
		assert.Equal(t, DefaultCommentMarker, cfg.CommentMarker)
		assert.True(t, filepath.IsAbs(cfg.Output))
		assert.False(t, cfg.Note)
		assert.False(t, cfg.RemoveEmptyLines)
		assert.Empty(t, cfg.Author)
	})

	t.Run("language tokens are split and trimmed", func(t *testing.T) {
		cfg, err := NewConfig(Options{Root: root, Languages: []string{"py, .cs", "", " go "}, Output: "out.txt"})
		require.NoError(t, err)
		assert.Equal(t, []string{"py", "cs", "go"}, cfg.Languages)
		assert.False(t, cfg.IncludesAll())
	})

	t.Run("all token", func(t *testing.T) {
		cfg, err := NewConfig(Options{Root: root, Languages: []string{"py,all"}, Output: "out.txt"})
		require.NoError(t, err)
		assert.True(t, cfg.IncludesAll())
	})

	t.Run("root defaults to working directory", func(t *testing.T) {
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(root))
		t.Cleanup(func() { _ = os.Chdir(wd) })

		cfg, err := NewConfig(Options{Languages: []string{"py"}, Output: "out.txt"})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(cfg.Root, "out.txt"), cfg.Output)
	})

	tests := []struct {
		name string
		opts Options
		want error
	}{
		{"missing language", Options{Root: root, Output: "out.txt"}, ErrMissingArgument},
		{"blank language", Options{Root: root, Languages: []string{" , "}, Output: "out.txt"}, ErrMissingArgument},
		{"missing output", Options{Root: root, Languages: []string{"py"}}, ErrMissingArgument},
		{"invalid sort", Options{Root: root, Languages: []string{"py"}, Output: "out.txt", Sort: "size"}, ErrInvalidOption},
		{"negative size", Options{Root: root, Languages: []string{"py"}, Output: "out.txt", MaxFileSizeKB: -1}, ErrInvalidOption},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConfig(tt.opts)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestParseSortMode(t *testing.T) {
	for in, want := range map[string]SortMode{"": SortByName, "name": SortByName, "type": SortByType, " type ": SortByType} {
		got, err := ParseSortMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseSortMode("Name")
	assert.ErrorIs(t, err, ErrInvalidOption)
}
