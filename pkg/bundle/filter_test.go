package bundle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestFilterByLanguage(t *testing.T) {
	files := entries("a.py", "b.txt", "c.PY", "Makefile", "d.tar.gz", "dir/e.cs")

	tests := []struct {
		name      string
		languages []string
		want      []string
	}{
		{"single", []string{"py"}, []string{"a.py"}},
		{"case sensitive", []string{"PY"}, []string{"c.PY"}},
		{"several", []string{"py", "cs"}, []string{"a.py", "dir/e.cs"}},
		{"last extension only", []string{"gz"}, []string{"d.tar.gz"}},
		{"all", []string{"all"}, []string{"a.py", "b.txt", "c.PY", "Makefile", "d.tar.gz", "dir/e.cs"}},
		{"all among others", []string{"py", "all"}, []string{"a.py", "b.txt", "c.PY", "Makefile", "d.tar.gz", "dir/e.cs"}},
		{"no match", []string{"rs"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByLanguage(files, tt.languages)
			assert.ElementsMatch(t, tt.want, rels(got))
		})
	}
}

func TestFilterBySize(t *testing.T) {
	files := []FileEntry{
		{Rel: "small", Size: 100},
		{Rel: "edge", Size: 1024},
		{Rel: "big", Size: 1025},
	}
	logger := zaptest.NewLogger(t)

	assert.Equal(t, []string{"small", "edge", "big"}, rels(FilterBySize(files, 0, logger)))
	assert.Equal(t, []string{"small", "edge"}, rels(FilterBySize(files, 1, logger)))
}

func TestFilterBinary(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"text.go":   "package main\n",
		"blob.dat":  "abc\x00def",
		"image.png": "not really a png",
	})

	var files []FileEntry
	for _, name := range []string{"text.go", "blob.dat", "image.png", "missing.go"} {
		files = append(files, FileEntry{Path: filepath.Join(root, name), Rel: name})
	}

	got := FilterBinary(files, zaptest.NewLogger(t))
	assert.Equal(t, []string{"text.go", "missing.go"}, rels(got))
}

func TestLooksBinary(t *testing.T) {
	assert.False(t, looksBinary(nil))
	assert.False(t, looksBinary([]byte("hello\r\n\tworld")))
	assert.False(t, looksBinary([]byte("héllo wörld")))
	assert.False(t, looksBinary([]byte{0xFF, 0xFE, 'h', 0, 'i', 0}))
	assert.True(t, looksBinary([]byte{'a', 0, 'b'}))
	assert.True(t, looksBinary([]byte{1, 2, 3, 4, 'a'}))
}

func TestIsBinaryFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	binary, err := isBinaryFile(path)
	require.NoError(t, err)
	assert.False(t, binary)
}
