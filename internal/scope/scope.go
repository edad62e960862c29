// Package scope resolves the release channel a task is authorized to push
// to. Scopes are assumed already cryptographically verified by the task
// queue; this package only decides which channel they name.
package scope

import (
	"errors"
	"strings"

	"github.com/mozilla-releng/pushapk/internal/channel"
	"github.com/mozilla-releng/pushapk/internal/errs"
	"github.com/mozilla-releng/pushapk/internal/single"
)

// DefaultPrefix is the scope prefix granting push access to one channel.
// A task scoped "project:releng:googleplay:release" may push to the
// release channel and nothing else.
const DefaultPrefix = "project:releng:googleplay:"

// Resolve extracts the single channel named by the task's scopes.
// It fails when zero scopes match the prefix (the task is not authorized to
// push anywhere) or when more than one matches (ambiguous authorization).
// Whether the channel actually exists is checked later, against the trusted
// credentials table, so "unknown channel" and "ambiguous scope" stay
// distinct failure kinds.
func Resolve(scopes []string, prefix string) (channel.Channel, error) {
	match, err := single.Find(scopes, func(s string) bool {
		return strings.HasPrefix(s, prefix)
	})
	switch {
	case errors.Is(err, single.ErrNone):
		return "", errs.ScopeInvalid("no scope matching %q found in %v", prefix+"*", scopes)
	case errors.Is(err, single.ErrTooMany):
		return "", errs.ScopeInvalid("more than one scope matching %q found in %v, a task may target only one channel", prefix+"*", scopes)
	case err != nil:
		return "", err
	}
	return channel.Channel(strings.TrimPrefix(match, prefix)), nil
}

// ResolveChannel resolves the channel using the standard scope prefix.
func ResolveChannel(scopes []string) (channel.Channel, error) {
	return Resolve(scopes, DefaultPrefix)
}
