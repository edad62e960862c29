package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/mozilla-releng/pushapk/internal/channel"
	"github.com/mozilla-releng/pushapk/internal/store"
)

// newChannelsCmd creates the `channels` command.
// Usage: pushapk channels [--config pushapk.toml]
func newChannelsCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "channels",
		Short: "List the channels in the trusted configuration",
		Long: `Lists every channel configured in the trusted channel table, the package
name it publishes (if any), and whether a push on it would contact Google
Play for real.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.Load(configPath)
			if err != nil {
				return fmt.Errorf("loading trusted configuration: %w", err)
			}
			return runChannels(st, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&configPath, "config", store.DefaultConfigFile, "Path to the trusted channel configuration")

	return cmd
}

// runChannels is the testable core of the channels command.
func runChannels(st *store.Store, out io.Writer) error {
	names := st.ChannelNames()
	if len(names) == 0 {
		fmt.Fprintln(out, "No channels configured.")
		return nil
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.AppendHeader(table.Row{"Channel", "Service Account", "Package Name", "Contacts Google Play"})

	for _, name := range names {
		creds := st.Channels[name]

		packageName, ok := channel.Channel(name).PackageName()
		if !ok {
			packageName = "(none)"
		}

		contact := "yes"
		if !strings.HasSuffix(creds.Certificate, ".p12") {
			contact = "no (test credentials)"
		}

		tw.AppendRow(table.Row{name, creds.ServiceAccount, packageName, contact})
	}

	tw.Render()
	return nil
}
