// Package ignore decides which paths under a bundle root are left out, using
// gitignore-style pattern files and glob excludes.
package ignore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gobwas/glob"
	"go.uber.org/zap"
)

// FileName is the per-root ignore file picked up automatically.
const FileName = ".bundleignore"

// GlobalEnv names the environment variable holding an optional global ignore file.
const GlobalEnv = "BUNDLEIGNORE_GLOBAL"

// ErrBadPattern is wrapped by errors from AddGlobs for malformed globs.
var ErrBadPattern = errors.New("invalid exclude pattern")

// Pattern encapsulates a compiled ignore line and its origin.
type Pattern struct {
	Regexp  *regexp.Regexp // Compiled form of the line.
	Negate  bool           // The line started with '!'.
	DirOnly bool           // The line ended with '/'.
	Line    string         // Original pattern line.
	LineNo  int            // Line number in the source (1-based).
	Source  string         // File the line came from, or "" for inline patterns.
}

// Matcher holds ignore patterns and exclude globs.
type Matcher struct {
	patterns []*Pattern
	globs    []glob.Glob
	logger   *zap.Logger
}

// New returns an empty Matcher. A nil logger is replaced with a no-op logger.
func New(logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{logger: logger}
}

// Load builds a Matcher from the root's .bundleignore, an optional extra ignore
// file (falling back to $BUNDLEIGNORE_GLOBAL) and exclude globs.
func Load(root, extraFile string, excludes []string, logger *zap.Logger) (*Matcher, error) {
	m := New(logger)

	if extraFile == "" {
		extraFile = os.Getenv(GlobalEnv)
	}
	if extraFile != "" {
		if err := m.CompileFile(extraFile); err != nil {
			return nil, err
		}
	}

	local := filepath.Join(root, FileName)
	if err := m.CompileFile(local); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	if err := m.AddGlobs(excludes...); err != nil {
		return nil, err
	}

	m.logger.Debug("Loaded ignore rules",
		zap.Int("patterns", len(m.patterns)),
		zap.Int("globs", len(m.globs)))
	return m, nil
}

// CompileFile reads an ignore file and adds its patterns.
func (m *Matcher) CompileFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			m.logger.Debug("Ignore file not found", zap.String("path", path))
		} else {
			m.logger.Error("Failed to read ignore file", zap.String("path", path), zap.Error(err))
		}
		return err
	}

	lines := strings.Split(string(content), "\n")
	m.compile(path, lines)
	m.logger.Debug("Compiled ignore file", zap.String("path", path), zap.Int("lineCount", len(lines)))
	return nil
}

// CompileLines adds inline ignore patterns.
func (m *Matcher) CompileLines(lines ...string) {
	m.compile("", lines)
}

func (m *Matcher) compile(source string, lines []string) {
	for i, line := range lines {
		p := parsePatternLine(line)
		if p == nil {
			continue
		}
		p.LineNo = i + 1
		p.Source = source
		m.patterns = append(m.patterns, p)
	}
}

// AddGlobs compiles exclude globs. '/' is the separator, so '*' stays within a
// path segment and '**' crosses segments.
func (m *Matcher) AddGlobs(patterns ...string) error {
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		g, err := glob.Compile(p, '/')
		if err != nil {
			return fmt.Errorf("%w %q: %v", ErrBadPattern, p, err)
		}
		m.globs = append(m.globs, g)
	}
	return nil
}

// Match reports whether the slash-separated path relative to the root is
// ignored. isDir marks directory paths so that "dir/" patterns apply.
func (m *Matcher) Match(relPath string, isDir bool) bool {
	relPath = filepath.ToSlash(relPath)
	if relPath == "." || relPath == "" {
		return false
	}

	// A path inside an ignored directory is ignored as well.
	parts := strings.Split(relPath, "/")
	for i := 1; i < len(parts); i++ {
		if m.matchPatterns(strings.Join(parts[:i], "/"), true) {
			return true
		}
	}
	if m.matchPatterns(relPath, isDir) {
		return true
	}

	if isDir {
		return false
	}
	for _, g := range m.globs {
		if g.Match(relPath) {
			return true
		}
	}
	return false
}

// matchPatterns applies the ignore patterns in order; the last matching
// pattern decides.
func (m *Matcher) matchPatterns(relPath string, isDir bool) bool {
	ignored := false
	for _, p := range m.patterns {
		if p.DirOnly && !isDir {
			continue
		}
		if p.Regexp.MatchString(relPath) {
			ignored = !p.Negate
		}
	}
	return ignored
}

// Len returns the number of compiled patterns and globs.
func (m *Matcher) Len() int {
	return len(m.patterns) + len(m.globs)
}

// parsePatternLine turns one ignore-file line into a Pattern, or nil for blank
// lines and comments.
func parsePatternLine(line string) *Pattern {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil
	}

	p := &Pattern{Line: line}
	if strings.HasPrefix(trimmed, "!") {
		p.Negate = true
		trimmed = trimmed[1:]
	}
	if strings.HasPrefix(trimmed, `\#`) || strings.HasPrefix(trimmed, `\!`) {
		trimmed = trimmed[1:]
	}
	if strings.HasSuffix(trimmed, "/") {
		p.DirOnly = true
		trimmed = strings.TrimSuffix(trimmed, "/")
	}

	anchored := strings.HasPrefix(trimmed, "/") || strings.Contains(trimmed, "/")
	trimmed = strings.TrimPrefix(trimmed, "/")
	if trimmed == "" {
		return nil
	}

	expr := wildcardToRegex(trimmed)
	if anchored {
		expr = "^" + expr + "$"
	} else {
		expr = "^(.*/)?" + expr + "$"
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil
	}
	p.Regexp = re
	return p
}

// wildcardToRegex converts '*', '?' and '**' to regex, escaping everything else.
func wildcardToRegex(pattern string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch c {
		case '*':
			if i+1 < len(pattern) && pattern[i+1] == '*' {
				i++
				if i+1 < len(pattern) && pattern[i+1] == '/' {
					i++
					b.WriteString("(.*/)?")
				} else {
					b.WriteString(".*")
				}
				continue
			}
			b.WriteString("[^/]*")
		case '?':
			b.WriteString("[^/]")
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	return b.String()
}
