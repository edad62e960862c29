package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mozilla-releng/pushapk/internal/l10n"
	"github.com/mozilla-releng/pushapk/internal/publisher"
	"github.com/mozilla-releng/pushapk/internal/push"
	"github.com/mozilla-releng/pushapk/internal/scope"
	"github.com/mozilla-releng/pushapk/internal/store"
	"github.com/mozilla-releng/pushapk/internal/task"
)

// pushOptions are the file inputs shared by `push` and `validate`.
type pushOptions struct {
	taskPath     string
	configPath   string
	upstreamPath string
	apkFlags     []string
}

func (o *pushOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.taskPath, "task", "", "Path to the task descriptor JSON file")
	cmd.Flags().StringVar(&o.configPath, "config", store.DefaultConfigFile, "Path to the trusted channel configuration")
	cmd.Flags().StringVar(&o.upstreamPath, "upstream-artifacts", "", "Path to the upstream artifacts JSON file (for Play strings)")
	cmd.Flags().StringArrayVar(&o.apkFlags, "apk", nil, "APK to push, as <arch>=<path> (repeatable)")
	cobra.CheckErr(cmd.MarkFlagRequired("task"))
	cobra.CheckErr(cmd.MarkFlagRequired("apk"))
}

// newPushCmd creates the `push` command.
// Usage: pushapk push --task task.json --apk x86=/path/to/x86.apk
func newPushCmd() *cobra.Command {
	opts := &pushOptions{}

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Resolve a publishing task and hand it to the Play client",
		Long: `Resolves the task's channel, validates it against the trusted configuration,
and performs the resulting Google Play transaction. Whether the transaction
is committed or only validated is decided by the task payload; the default
is a dry run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := publisher.NewTranscript(nil)
			return runPush(opts, client, cmd.OutOrStdout())
		},
	}
	opts.register(cmd)

	return cmd
}

// runPush is the testable core of the push command.
func runPush(opts *pushOptions, client publisher.Client, out io.Writer) error {
	cfg, stringsPath, err := buildConfig(opts)
	if err != nil {
		return err
	}

	mode := "validate only (dry run)"
	if cfg.Commit {
		mode = "commit"
	}
	fmt.Fprintf(out, "📦 Pushing %s to track %q (%s)\n", cfg.PackageName, cfg.Track, mode)

	if err := client.Push(context.Background(), cfg, stringsPath); err != nil {
		return fmt.Errorf("pushing to Google Play: %w", err)
	}

	fmt.Fprintf(out, "%s Push finished.\n", color.GreenString("✅"))
	return nil
}

// buildConfig loads every input file and assembles the push configuration.
func buildConfig(opts *pushOptions) (*push.Config, string, error) {
	st, err := store.Load(opts.configPath)
	if err != nil {
		return nil, "", fmt.Errorf("loading trusted configuration: %w", err)
	}

	t, err := task.Load(opts.taskPath)
	if err != nil {
		return nil, "", fmt.Errorf("loading task: %w", err)
	}

	apks, err := parseAPKFlags(opts.apkFlags)
	if err != nil {
		return nil, "", err
	}

	ch, err := scope.ResolveChannel(t.Scopes)
	if err != nil {
		return nil, "", err
	}

	cfg, err := push.Build(st, ch, t.Payload, apks)
	if err != nil {
		return nil, "", err
	}

	var stringsPath string
	if opts.upstreamPath != "" && cfg.UpdateGPStrings {
		upstream, err := l10n.LoadUpstream(opts.upstreamPath)
		if err != nil {
			return nil, "", err
		}
		path, ok, err := l10n.StringsPath(upstream)
		if err != nil {
			return nil, "", err
		}
		if ok {
			stringsPath = path
		}
	}

	return cfg, stringsPath, nil
}
