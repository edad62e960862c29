// Package store loads the trusted per-channel Google Play account table.
// The table is operator-controlled configuration, never task input: only
// channels listed here can ever produce a usable push configuration.
package store

import (
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/mozilla-releng/pushapk/internal/channel"
	"github.com/mozilla-releng/pushapk/internal/errs"
)

const DefaultConfigFile = "pushapk.toml"

// Credentials is one channel's Google Play service account and the path to
// its certificate file. Read-only to everything downstream of Load.
type Credentials struct {
	ServiceAccount string `toml:"service_account"`
	Certificate    string `toml:"certificate"`
}

// Store is the parsed pushapk.toml file.
type Store struct {
	// Channels maps channel name to its Google Play account.
	Channels map[string]Credentials `toml:"channels"`
	// HasNightlyTrack additionally allows the "nightly" track, which only
	// some products have.
	HasNightlyTrack bool `toml:"has_nightly_track"`
}

// Load reads and parses a pushapk.toml file from the given path.
// Unlike optional manifests, a missing config file is an error: without the
// trusted table no task can be validated.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var s Store
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return &s, nil
}

// Credentials returns the Google Play account for the given channel.
// An empty table or an unlisted channel is a fatal configuration error;
// there is no default account.
func (s *Store) Credentials(c channel.Channel) (Credentials, error) {
	if len(s.Channels) == 0 {
		return Credentials{}, errs.ChannelNotConfigured(string(c))
	}
	creds, ok := s.Channels[string(c)]
	if !ok {
		return Credentials{}, errs.ChannelNotConfigured(string(c))
	}
	return creds, nil
}

// ChannelNames returns the configured channel names, sorted.
func (s *Store) ChannelNames() []string {
	names := make([]string, 0, len(s.Channels))
	for name := range s.Channels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
