package publisher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/mozilla-releng/pushapk/internal/push"
)

// Transcript narrates the transaction a real Play client would perform.
// It verifies the certificate is readable when the channel is allowed to
// contact Google Play, but never opens a connection itself.
type Transcript struct {
	Logger *slog.Logger
}

var _ Client = (*Transcript)(nil)

// NewTranscript creates a Transcript logging through the given logger, or
// the default logger when nil.
func NewTranscript(logger *slog.Logger) *Transcript {
	if logger == nil {
		logger = slog.Default()
	}
	return &Transcript{Logger: logger}
}

// Push logs the transaction described by cfg.
func (t *Transcript) Push(ctx context.Context, cfg *push.Config, stringsPath string) error {
	log := t.Logger.With(
		"package_name", cfg.PackageName,
		"track", cfg.Track,
		"service_account", cfg.ServiceAccount,
	)

	if cfg.DoNotContactGooglePlay {
		log.InfoContext(ctx, "channel has no real Google Play credentials, skipping store contact")
		return nil
	}

	// The real client hands this file to the Play API, so a missing
	// certificate must fail here, before any edit is opened.
	f, err := os.Open(cfg.CertificatePath)
	if err != nil {
		return fmt.Errorf("opening certificate: %w", err)
	}
	f.Close()

	for _, arch := range sortedArchs(cfg.Apks) {
		log.InfoContext(ctx, "would upload APK", "arch", arch, "path", cfg.Apks[arch])
	}
	if cfg.RolloutPercentage != nil {
		log.InfoContext(ctx, "staged rollout", "rollout_percentage", *cfg.RolloutPercentage)
	}
	if stringsPath != "" {
		log.InfoContext(ctx, "would update listings from strings file", "path", stringsPath)
	}

	if cfg.Commit {
		log.InfoContext(ctx, "would commit the transaction")
	} else {
		log.InfoContext(ctx, "dry run, transaction would be validated but not committed")
	}
	return nil
}

func sortedArchs(apks map[string]string) []string {
	archs := make([]string, 0, len(apks))
	for arch := range apks {
		archs = append(archs, arch)
	}
	sort.Strings(archs)
	return archs
}
