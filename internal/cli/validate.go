package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// newValidateCmd creates the `validate` command.
// Usage: pushapk validate --task task.json --apk x86=/path/to/x86.apk
func newValidateCmd() *cobra.Command {
	opts := &pushOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Resolve a publishing task without contacting anything",
		Long: `Runs the same resolution and validation as push and prints the resulting
configuration, but never hands it to a publishing client. Useful to check a
task and the trusted configuration before the real push, e.g. in CI.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts, cmd.OutOrStdout())
		},
	}
	opts.register(cmd)

	return cmd
}

// runValidate is the testable core of the validate command.
func runValidate(opts *pushOptions, out io.Writer) error {
	cfg, stringsPath, err := buildConfig(opts)
	if err != nil {
		return err
	}

	params := cfg.Params()
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Fprintf(out, "🔍 Resolved push configuration:\n\n")
	for _, key := range keys {
		fmt.Fprintf(out, "  %s = %v\n", key, params[key])
	}
	if stringsPath != "" {
		fmt.Fprintf(out, "  (Play strings from %s)\n", stringsPath)
	}

	fmt.Fprintf(out, "\n%s Task is valid.\n", color.GreenString("✅"))
	return nil
}
