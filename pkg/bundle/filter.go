// File: pkg/bundle/filter.go
package bundle

import (
	"strings"

	"go.uber.org/zap"
)

// FilterByLanguage keeps files whose extension, without the dot, is one of
// languages. The "all" token keeps everything. Files without an extension are
// kept only for "all".
func FilterByLanguage(files []FileEntry, languages []string) []FileEntry {
	wanted := make(map[string]bool, len(languages))
	for _, l := range languages {
		if l == AllLanguages {
			return append([]FileEntry(nil), files...)
		}
		wanted[l] = true
	}

	var kept []FileEntry
	for _, f := range files {
		ext := strings.TrimPrefix(f.Ext(), ".")
		if ext != "" && wanted[ext] {
			kept = append(kept, f)
		}
	}
	return kept
}

// FilterBySize drops files larger than maxKB kilobytes. maxKB <= 0 keeps all.
func FilterBySize(files []FileEntry, maxKB int, logger *zap.Logger) []FileEntry {
	if maxKB <= 0 {
		return files
	}
	limit := int64(maxKB) * 1024

	var kept []FileEntry
	for _, f := range files {
		if f.Size > limit {
			logger.Debug("Skipping file due to size limit",
				zap.String("path", f.Rel),
				zap.Int64("sizeBytes", f.Size),
				zap.Int("maxSizeKB", maxKB))
			continue
		}
		kept = append(kept, f)
	}
	return kept
}

// FilterBinary drops files that look binary. Files that cannot be probed are
// kept so the writer reports the read failure.
func FilterBinary(files []FileEntry, logger *zap.Logger) []FileEntry {
	var kept []FileEntry
	for _, f := range files {
		binary, err := isBinaryFile(f.Path)
		if err != nil {
			logger.Warn("Failed to check if file is binary", zap.String("path", f.Rel), zap.Error(err))
			kept = append(kept, f)
			continue
		}
		if binary {
			logger.Debug("Skipping binary file", zap.String("path", f.Rel))
			continue
		}
		kept = append(kept, f)
	}
	return kept
}
