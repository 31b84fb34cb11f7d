// File: pkg/bundle/bundle.go

// Package bundle concatenates source files from a directory tree into a single
// output file. The pipeline runs sequentially: collect, filter, sort, write.
package bundle

import (
	"errors"
	"time"

	"codebundle/pkg/ignore"

	"go.uber.org/zap"
)

// Result describes a completed bundle.
type Result struct {
	Files  int    // Number of files written
	Output string // Absolute path of the bundle
}

// Run executes the whole pipeline for cfg. progress may be nil.
func Run(cfg Config, progress Progress, logger *zap.Logger) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	startTime := time.Now()
	logger.Info("Starting bundle",
		zap.String("root", cfg.Root),
		zap.String("output", cfg.Output),
		zap.Strings("languages", cfg.Languages),
		zap.Bool("allLanguages", cfg.IncludesAll()),
		zap.String("sort", string(cfg.Sort)))

	matcher, err := ignore.Load(cfg.Root, cfg.IgnoreFile, cfg.Excludes, logger)
	if err != nil {
		logger.Error("Failed to load ignore rules", zap.Error(err))
		if errors.Is(err, ignore.ErrBadPattern) {
			return Result{}, newError(KindInvalidOption, "load ignore rules", err)
		}
		return Result{}, newError(KindIO, "load ignore rules", err)
	}

	files, err := Collect(cfg.Root, matcher, cfg.Output, logger)
	if err != nil {
		return Result{}, err
	}

	files = FilterByLanguage(files, cfg.Languages)
	files = FilterBySize(files, cfg.MaxFileSizeKB, logger)
	if cfg.SkipBinary {
		files = FilterBinary(files, logger)
	}
	files = Sort(files, cfg.Sort)
	logger.Debug("Selected files", zap.Int("count", len(files)))

	if len(files) == 0 {
		logger.Warn("No files matched the requested languages", zap.Strings("languages", cfg.Languages))
	}

	if err := WriteBundle(cfg, files, progress, logger); err != nil {
		return Result{}, err
	}

	logger.Info("Bundle completed",
		zap.String("output", cfg.Output),
		zap.Int("totalFiles", len(files)),
		zap.Duration("elapsed", time.Since(startTime)))
	return Result{Files: len(files), Output: cfg.Output}, nil
}
