// File: pkg/bundle/writer.go
package bundle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Progress receives the file count up front and one tick per bundled file.
// *progressbar.ProgressBar satisfies it.
type Progress interface {
	ChangeMax(max int)
	Add(n int) error
	Finish() error
}

type nopProgress struct{}

func (nopProgress) ChangeMax(int) {}
func (nopProgress) Add(int) error { return nil }
func (nopProgress) Finish() error { return nil }

// WriteBundle creates cfg.Output, truncating it, and writes the author line,
// the optional tree, and every file's lines in order. The output is flushed
// and closed on every return path.
func WriteBundle(cfg Config, files []FileEntry, progress Progress, logger *zap.Logger) (err error) {
	if progress == nil {
		progress = nopProgress{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug("Writing bundle", zap.String("output", cfg.Output), zap.Int("files", len(files)))

	outFile, err := os.Create(cfg.Output)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", cfg.Output), zap.Error(err))
		if errors.Is(err, fs.ErrNotExist) {
			return newError(KindInvalidPath, "create output file", err)
		}
		return newError(KindIO, "create output file", err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil {
			logger.Error("Failed to close output file", zap.String("file", cfg.Output), zap.Error(closeErr))
			err = multierr.Append(err, newError(KindIO, "close output file", closeErr))
		}
	}()

	w := bufio.NewWriter(outFile)
	defer func() {
		if flushErr := w.Flush(); flushErr != nil {
			logger.Error("Failed to flush output file", zap.String("file", cfg.Output), zap.Error(flushErr))
			err = multierr.Append(err, newError(KindIO, "flush output file", flushErr))
		}
	}()

	if author := strings.TrimSpace(cfg.Author); author != "" {
		if err := writeComment(w, cfg.CommentMarker, "Author: "+cfg.Author); err != nil {
			return newError(KindIO, "write author", err)
		}
	}

	if cfg.Tree {
		rel := make([]string, len(files))
		for i, f := range files {
			rel[i] = f.Rel
		}
		for _, line := range RenderTree(rel) {
			if err := writeComment(w, cfg.CommentMarker, line); err != nil {
				return newError(KindIO, "write tree", err)
			}
		}
	}

	progress.ChangeMax(len(files))
	for _, f := range files {
		if cfg.Note {
			if err := writeComment(w, cfg.CommentMarker, "Source: "+f.Rel); err != nil {
				return newError(KindIO, "write source note", err)
			}
		}
		if err := copyLines(w, f.Path, cfg.RemoveEmptyLines); err != nil {
			logger.Error("Failed to bundle file", zap.String("path", f.Rel), zap.Error(err))
			return newError(KindIO, "read "+f.Rel, err)
		}
		logger.Debug("Bundled file", zap.String("path", f.Rel))
		_ = progress.Add(1)
	}
	_ = progress.Finish()

	return nil
}

func writeComment(w io.Writer, marker, text string) error {
	_, err := fmt.Fprintf(w, "%s %s\n", marker, text)
	return err
}

// copyLines writes the lines of the file at path to w, one per line, dropping
// blank lines when removeEmpty is set.
func copyLines(w *bufio.Writer, path string, removeEmpty bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return transformLines(w, f, removeEmpty)
}

// transformLines decodes r as text, honoring UTF-8 and UTF-16 byte order
// marks, splits it on '\n' and writes each line terminated by '\n'. A trailing
// '\r' is dropped from each line.
func transformLines(w *bufio.Writer, r io.Reader, removeEmpty bool) error {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	br := bufio.NewReader(decoded)

	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return readErr
		}
		atEOF := readErr != nil
		if atEOF && line == "" {
			return nil
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")

		if !removeEmpty || strings.TrimSpace(line) != "" {
			if _, err := w.WriteString(line); err != nil {
				return err
			}
			if err := w.WriteByte('\n'); err != nil {
				return err
			}
		}

		if atEOF {
			return nil
		}
	}
}
