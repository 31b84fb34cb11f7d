// File: cmd/bundle.go
package cmd

import (
	"fmt"
	"os"

	"codebundle/pkg/bundle"
	"codebundle/pkg/config"
	"codebundle/pkg/logging"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// bundleFlags holds the raw flag values of the bundle command.
type bundleFlags struct {
	configPath string
	noProgress bool
	opts       bundle.Options
}

func newBundleCmd() *cobra.Command {
	f := &bundleFlags{}

	cmd := &cobra.Command{
		Use:   "bundle",
		Short: "Bundle Code Files into a Single File",
		Long: `Bundle walks a directory tree, keeps the files whose extension matches --language,
orders them and writes their lines into a single output file.`,
		Example: `  codebundle bundle --language py,cs --output bundle.txt --note --remove-empty-lines
  codebundle bundle --language all --output out.txt --author "Jane" --sort type`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBundle(cmd, f)
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVar(&f.opts.Languages, "language", nil, "List of programming languages (comma-separated) or 'all'. This option is required.")
	flags.StringVar(&f.opts.Output, "output", "", "File path and name for the bundled file. This option is required.")
	flags.BoolVar(&f.opts.Note, "note", false, "Include the source file's relative path as a comment in the bundle")
	flags.StringVar(&f.opts.Sort, "sort", string(bundle.SortByName), "Sort files by 'name' or 'type'")
	flags.BoolVar(&f.opts.RemoveEmptyLines, "remove-empty-lines", false, "Remove empty lines from the source code files")
	flags.StringVar(&f.opts.Author, "author", "", "Specify the author's name to include as a comment in the bundle file")

	flags.StringVar(&f.opts.Root, "dir", "", "Directory to bundle (default: current directory)")
	flags.StringVar(&f.configPath, "config", "", "YAML defaults file (default: <dir>/"+config.FileName+")")
	flags.StringVar(&f.opts.CommentMarker, "comment", bundle.DefaultCommentMarker, "Line comment marker for author, source and tree lines")
	flags.StringSliceVar(&f.opts.Excludes, "exclude", nil, "Glob patterns of relative paths to leave out (e.g. 'vendor/**')")
	flags.StringVar(&f.opts.IgnoreFile, "ignore-file", "", "Additional gitignore-style file (default: $BUNDLEIGNORE_GLOBAL)")
	flags.BoolVar(&f.opts.SkipBinary, "skip-binary", false, "Leave out files that look binary")
	flags.IntVar(&f.opts.MaxFileSizeKB, "max-file-size-kb", 0, "Leave out files larger than this many KB (0 disables the limit)")
	flags.BoolVar(&f.opts.Tree, "tree", false, "Write a tree of the bundled files after the author line")
	flags.BoolVar(&f.noProgress, "no-progress", false, "Do not show a progress bar")

	return cmd
}

func runBundle(cmd *cobra.Command, f *bundleFlags) error {
	logger := logging.Logger

	opts, err := mergeConfigFile(cmd.Flags(), f)
	if err != nil {
		logger.Error("Failed to load config file", zap.Error(err))
		return err
	}

	cfg, err := bundle.NewConfig(opts)
	if err != nil {
		return err
	}

	result, err := bundle.Run(cfg, newProgress(f.noProgress), logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Bundled %d files into %s\n", result.Files, result.Output)
	return nil
}

// mergeConfigFile fills options not given on the command line from the YAML
// defaults file.
func mergeConfigFile(flags *pflag.FlagSet, f *bundleFlags) (bundle.Options, error) {
	opts := f.opts

	root := opts.Root
	if root == "" {
		root = "."
	}
	file, err := config.Load(f.configPath, root)
	if err != nil {
		return bundle.Options{}, err
	}

	unset := func(name string) bool { return !flags.Changed(name) }

	if unset("language") && len(file.Language) > 0 {
		opts.Languages = file.Language
	}
	if unset("output") && file.Output != "" {
		opts.Output = file.Output
	}
	if unset("note") && file.Note != nil {
		opts.Note = *file.Note
	}
	if unset("sort") && file.Sort != "" {
		opts.Sort = file.Sort
	}
	if unset("remove-empty-lines") && file.RemoveEmptyLines != nil {
		opts.RemoveEmptyLines = *file.RemoveEmptyLines
	}
	if unset("author") && file.Author != "" {
		opts.Author = file.Author
	}
	if unset("comment") && file.Comment != "" {
		opts.CommentMarker = file.Comment
	}
	if unset("exclude") && len(file.Exclude) > 0 {
		opts.Excludes = file.Exclude
	}
	if unset("ignore-file") && file.IgnoreFile != "" {
		opts.IgnoreFile = file.IgnoreFile
	}
	if unset("skip-binary") && file.SkipBinary != nil {
		opts.SkipBinary = *file.SkipBinary
	}
	if unset("max-file-size-kb") && file.MaxFileSizeKB != nil {
		opts.MaxFileSizeKB = *file.MaxFileSizeKB
	}
	if unset("tree") && file.Tree != nil {
		opts.Tree = *file.Tree
	}
	return opts, nil
}

// newProgress returns a progress bar on stderr when it is a terminal, or nil.
func newProgress(disabled bool) bundle.Progress {
	if disabled || !term.IsTerminal(int(os.Stderr.Fd())) {
		return nil
	}
	return progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("Bundling"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}
