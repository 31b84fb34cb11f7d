package cmd

import (
	"fmt"
	"io"

	"codebundle/pkg/bundle"
	"codebundle/pkg/logging"
	"codebundle/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const appName = "codebundle"

// NewRootCmd builds the base command. When logger is nil the logger is built
// from --verbose before any subcommand runs.
func NewRootCmd(logger *zap.Logger) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           appName,
		Short:         "Root Command For File Bundler CLI",
		Long:          `codebundle concatenates source files from a directory tree into a single file, filtered by extension.`,
		Version:       version.Get().Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logger != nil {
				logging.Logger = logger
				return nil
			}
			if err := logging.Setup(verbose, appName, version.Get().Version); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newBundleCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// Run executes the command line in args, printing any failure to stdout in the
// form "Error: <message>". The returned error lets the caller pick an exit code.
func Run(args []string, stdout io.Writer, logger *zap.Logger) error {
	root := NewRootCmd(logger)
	root.SetArgs(args)
	root.SetOut(stdout)

	err := root.Execute()
	if err != nil {
		fmt.Fprintln(stdout, bundle.UserMessage(err))
	}
	return err
}
