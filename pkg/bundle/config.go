// File: pkg/bundle/config.go
package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AllLanguages is the language token that disables extension filtering.
const AllLanguages = "all"

// DefaultCommentMarker prefixes author, source and tree lines.
const DefaultCommentMarker = "//"

// SortMode selects the order in which files are bundled.
type SortMode string

const (
	SortByName SortMode = "name" // Base file name
	SortByType SortMode = "type" // Extension, including the leading dot
)

// ParseSortMode validates a --sort value. The empty string selects SortByName.
func ParseSortMode(s string) (SortMode, error) {
	switch SortMode(strings.TrimSpace(s)) {
	case "", SortByName:
		return SortByName, nil
	case SortByType:
		return SortByType, nil
	}
	return "", newError(KindInvalidOption, fmt.Sprintf("invalid sort mode %q (want %q or %q)", s, SortByName, SortByType), nil)
}

// Options holds the raw, unvalidated option values gathered from flags and the
// config file.
type Options struct {
	Root             string   // Directory to walk; empty means the working directory
	Languages        []string // Extensions without the dot, or "all"
	Output           string   // Destination bundle file
	Note             bool     // Prepend a source comment before each file
	Sort             string   // "name" or "type"
	RemoveEmptyLines bool     // Drop blank and whitespace-only lines
	Author           string   // Optional author comment
	CommentMarker    string   // Line comment marker, "//" when empty
	Excludes         []string // Glob patterns matched against relative paths
	IgnoreFile       string   // Additional gitignore-style file
	SkipBinary       bool     // Drop files that look binary
	MaxFileSizeKB    int      // Drop files larger than this; 0 disables the check
	Tree             bool     // Write a tree of bundled files after the author line
}

// Config is the validated configuration the pipeline runs with.
type Config struct {
	Root             string
	Languages        []string
	Output           string
	Note             bool
	Sort             SortMode
	RemoveEmptyLines bool
	Author           string
	CommentMarker    string
	Excludes         []string
	IgnoreFile       string
	SkipBinary       bool
	MaxFileSizeKB    int
	Tree             bool
}

// NewConfig validates opts and resolves the root and output paths to absolute
// form. A relative output path is taken relative to the working directory.
func NewConfig(opts Options) (Config, error) {
	languages := normalizeLanguages(opts.Languages)
	if len(languages) == 0 {
		return Config{}, newError(KindMissingArgument, `required option "--language" not set`, nil)
	}
	if strings.TrimSpace(opts.Output) == "" {
		return Config{}, newError(KindMissingArgument, `required option "--output" not set`, nil)
	}

	sortMode, err := ParseSortMode(opts.Sort)
	if err != nil {
		return Config{}, err
	}
	if opts.MaxFileSizeKB < 0 {
		return Config{}, newError(KindInvalidOption, fmt.Sprintf("invalid max file size %d", opts.MaxFileSizeKB), nil)
	}

	root := opts.Root
	if root == "" {
		root, err = os.Getwd()
		if err != nil {
			return Config{}, newError(KindIO, "get working directory", err)
		}
	}
	root, err = filepath.Abs(root)
	if err != nil {
		return Config{}, newError(KindIO, "resolve root directory", err)
	}

	output, err := filepath.Abs(opts.Output)
	if err != nil {
		return Config{}, newError(KindIO, "resolve output path", err)
	}

	marker := strings.TrimSpace(opts.CommentMarker)
	if marker == "" {
		marker = DefaultCommentMarker
	}

	return Config{
		Root:             root,
		Languages:        languages,
		Output:           output,
		Note:             opts.Note,
		Sort:             sortMode,
		RemoveEmptyLines: opts.RemoveEmptyLines,
		Author:           opts.Author,
		CommentMarker:    marker,
		Excludes:         append([]string(nil), opts.Excludes...),
		IgnoreFile:       opts.IgnoreFile,
		SkipBinary:       opts.SkipBinary,
		MaxFileSizeKB:    opts.MaxFileSizeKB,
		Tree:             opts.Tree,
	}, nil
}

// IncludesAll reports whether the "all" token was requested.
func (c Config) IncludesAll() bool {
	for _, l := range c.Languages {
		if l == AllLanguages {
			return true
		}
	}
	return false
}

// normalizeLanguages splits comma-joined tokens, trims whitespace and a leading
// dot, and drops empty tokens.
func normalizeLanguages(raw []string) []string {
	var out []string
	for _, item := range raw {
		for _, tok := range strings.Split(item, ",") {
			tok = strings.TrimPrefix(strings.TrimSpace(tok), ".")
			if tok != "" {
				out = append(out, tok)
			}
		}
	}
	return out
}
