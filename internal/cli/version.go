package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version information. These can be overridden at build time via -ldflags.
var (
	Version   = "0.1.0-dev"
	GitCommit = ""
	BuildDate = ""
)

func newVersionCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "draftctl %s\n", opts.pal.hero.Sprint(Version))
			if GitCommit != "" {
				fmt.Fprintf(out, "commit: %s\n", GitCommit)
			}
			if BuildDate != "" {
				fmt.Fprintf(out, "built:  %s\n", BuildDate)
			}
			fmt.Fprintf(out, "go:     %s\n", runtime.Version())
			return nil
		},
	}
}
