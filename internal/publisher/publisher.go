// Package publisher defines the boundary to the Google Play publishing
// client. Everything network-facing (edit creation, APK upload, track
// assignment, commit) lives behind the Client interface; this tool only
// hands over a validated configuration.
package publisher

import (
	"context"

	"github.com/mozilla-releng/pushapk/internal/push"
)

// Client performs the Google Play transaction described by a push
// configuration. Implementations own all network, retry, and upload
// concerns. stringsPath is the optional Google Play strings file; empty
// means listings are not updated.
type Client interface {
	Push(ctx context.Context, cfg *push.Config, stringsPath string) error
}
