package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

// NewRootCmd creates the top-level `pushapk` command.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pushapk",
		Short: "Push Android packages to the per-channel Google Play accounts",
		Long: `pushapk validates a signed publishing task against the trusted per-channel
Google Play account table and turns it into one push configuration: the
channel resolved from the task's scopes, that channel's credentials and
package name, the distribution track, and the commit/dry-run decision.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newPushCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newChannelsCmd())

	return root
}

// Execute runs the root command.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", color.RedString("Error:"), err)
		os.Exit(1)
	}
}
