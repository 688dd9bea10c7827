package cli

import (
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/fbratu/linkdu/internal/linkdu"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// newCommand builds the root command. Malformed arguments print the usage
// text; runtime failures such as an unreadable starting path do not.
func (c CLI) newCommand() *cobra.Command {
	var options linkdu.Options

	allowedOutputs := []string{"table", "json"}

	cmd := &cobra.Command{
		Use:   "linkdu [flags] [path]",
		Short: "Directory statistics with hard-link awareness",
		Long: heredoc.Doc(`
			linkdu computes storage statistics for a directory tree.

			For every directory it reports the number of file links found directly
			inside it, the bytes they use, and the immediate sub-directories. The
			grand totals deduplicate hard links: a file reachable through several
			names inside the tree is counted once, and files that still have links
			outside the tree are tallied separately with the space they use.

			Positional Arguments:
			  path                   Directory to analyze. Defaults to current directory if not specified.
		`),
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				cmd.Print(cmd.UsageString())

				return err
			}

			return nil
		},
		Version:       c.version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(allowedOutputs, options.Output) {
				return fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)
			}

			if len(args) == 0 {
				options.Path = "."
			} else {
				options.Path = args[0]
			}

			return logic(options, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVarP(&options.Recursive, "recursive", "r", false, "Descend into sub-directories")
	cmd.Flags().StringVarP(&options.Output, "output", "o", "table", "Output format: json or table")
	cmd.Flags().BoolVar(&options.Debug, "debug", false, "Enable debug output")

	cmd.Flags().SortFlags = false

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		cmd.Print(cmd.UsageString())

		return err
	})

	return cmd
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute() error {
	return c.newCommand().Execute()
}
