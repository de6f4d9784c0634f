// Package cli implements the mcs command-line interface.
//
// Commands:
//   - search: maximum common subgraph of two YAML graph files
//   - compat: compatibility-graph statistics for two graph files
//   - defaults: print the default thresholds file
//
// All commands accept --verbose (-v) for debug logging. The logger is
// carried in the command context.
package cli

import (
	"context"
	"fmt"
	"io"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the build information shown by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the CLI with args, writing results to out and logs to
// errOut.
func Execute(ctx context.Context, args []string, out, errOut io.Writer) error {
	root := newRootCmd(errOut)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)

	return root.ExecuteContext(ctx)
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "mcs",
		Short:        "Maximum common subgraph search for labeled molecular graphs",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(logOut, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("mcs %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSearchCmd())
	root.AddCommand(newCompatCmd())
	root.AddCommand(newDefaultsCmd())

	return root
}
