// File: pkg/bundle/collect.go
package bundle

import (
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// FileEntry is a file discovered under the bundle root.
type FileEntry struct {
	Path string // Absolute path
	Rel  string // Slash-separated path relative to the root
	Size int64  // Size in bytes at discovery time
}

// Ext returns the extension including the leading dot, or "" if there is none.
func (f FileEntry) Ext() string {
	return filepath.Ext(f.Path)
}

// Name returns the base file name.
func (f FileEntry) Name() string {
	return filepath.Base(f.Path)
}

// PathMatcher reports whether a relative path should be skipped during the walk.
type PathMatcher interface {
	Match(relPath string, isDir bool) bool
}

// Collect walks root recursively and returns every regular file in walk order.
// Symlinks to regular files are included; symlinked directories are not
// descended. skip is consulted for every path and may be nil. The file at
// exclude, typically the bundle output, is never returned.
func Collect(root string, skip PathMatcher, exclude string, logger *zap.Logger) ([]FileEntry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug("Starting file collection", zap.String("root", root))

	info, err := os.Stat(root)
	if err != nil {
		logger.Error("Root directory is not accessible", zap.String("root", root), zap.Error(err))
		return nil, newError(KindIO, "read root directory", err)
	}
	if !info.IsDir() {
		return nil, newError(KindIO, "read root directory", &fs.PathError{Op: "walk", Path: root, Err: fs.ErrInvalid})
	}

	var files []FileEntry
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Error("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			return err
		}
		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if skip != nil && skip.Match(rel, true) {
				logger.Debug("Skipping ignored directory", zap.String("path", rel))
				return filepath.SkipDir
			}
			return nil
		}

		if path == exclude {
			logger.Debug("Skipping output file", zap.String("path", rel))
			return nil
		}

		fi, err := regularFileInfo(path, d)
		if err != nil {
			return err
		}
		if fi == nil {
			logger.Debug("Skipping non-regular file", zap.String("path", rel))
			return nil
		}
		if skip != nil && skip.Match(rel, false) {
			logger.Debug("Skipping ignored file", zap.String("path", rel))
			return nil
		}

		files = append(files, FileEntry{Path: path, Rel: rel, Size: fi.Size()})
		return nil
	})
	if err != nil {
		return nil, newError(KindIO, "collect files", err)
	}

	logger.Debug("Completed file collection", zap.Int("files", len(files)))
	return files, nil
}

// regularFileInfo returns file info when d is a regular file or a symlink to
// one, and nil for anything else.
func regularFileInfo(path string, d fs.DirEntry) (fs.FileInfo, error) {
	if d.Type()&fs.ModeSymlink != 0 {
		fi, err := os.Stat(path)
		if err != nil {
			// Dangling links are not files.
			return nil, nil
		}
		if !fi.Mode().IsRegular() {
			return nil, nil
		}
		return fi, nil
	}
	if !d.Type().IsRegular() {
		return nil, nil
	}
	return d.Info()
}
