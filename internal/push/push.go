// Package push builds the validated configuration handed to the Google Play
// publishing client. Building is a pure function of the trusted credentials
// table, the resolved channel, the task payload, and the downloaded APKs;
// nothing here touches the network.
package push

import (
	"slices"
	"strings"

	"github.com/mozilla-releng/pushapk/internal/channel"
	"github.com/mozilla-releng/pushapk/internal/errs"
	"github.com/mozilla-releng/pushapk/internal/store"
	"github.com/mozilla-releng/pushapk/internal/task"
)

// DefaultTrack is used when the payload does not name a track.
const DefaultTrack = "production"

// certExtension is the extension of real Google Play certificates. A
// configured certificate path without it marks a staging channel whose
// dummy credentials must never reach Google Play.
const certExtension = ".p12"

// defaultTracks are the Play tracks every product can push to.
var defaultTracks = []string{"production", "beta", "alpha", "rollout", "internal"}

// ValidTracks returns the allowed track names, including "nightly" when the
// product has one.
func ValidTracks(hasNightlyTrack bool) []string {
	tracks := slices.Clone(defaultTracks)
	if hasNightlyTrack {
		tracks = append(tracks, "nightly")
	}
	return tracks
}

// Config is the validated push configuration. It is created once by Build
// and consumed once by the publishing client; nothing mutates it in
// between.
type Config struct {
	ServiceAccount  string
	CertificatePath string
	PackageName     string
	Commit          bool
	Track           string
	// RolloutPercentage is nil unless the payload supplied it.
	RolloutPercentage *int
	// DoNotContactGooglePlay flags a staging channel with dummy
	// credentials. The publishing client must not open a connection to
	// Google Play when it is set.
	DoNotContactGooglePlay bool
	UpdateGPStrings        bool
	// Apks maps architecture label to the downloaded APK path.
	Apks map[string]string
}

// Build assembles a Config for the given channel. The channel must come
// from scope resolution; Build then enforces, in order: the channel is in
// the trusted table, the commit/dry_run flags are unambiguous, the track is
// allowed, and the channel has a known package name. Any failure aborts
// before a Config exists, so no side effect can ever run on an unvalidated
// task.
func Build(st *store.Store, ch channel.Channel, payload task.Payload, apks map[string]string) (*Config, error) {
	creds, err := st.Credentials(ch)
	if err != nil {
		return nil, err
	}

	commit, err := ShouldCommit(payload)
	if err != nil {
		return nil, err
	}

	track := payload.GooglePlayTrack
	if track == "" {
		track = DefaultTrack
	}
	valid := ValidTracks(st.HasNightlyTrack)
	if !slices.Contains(valid, track) {
		return nil, errs.TrackInvalid(track, valid)
	}

	packageName, ok := ch.PackageName()
	if !ok {
		return nil, errs.ChannelUnsupported(string(ch))
	}

	updateStrings := true
	if payload.UpdateGPStringsFromL10nStore != nil {
		updateStrings = *payload.UpdateGPStringsFromL10nStore
	}

	cfg := &Config{
		ServiceAccount:         creds.ServiceAccount,
		CertificatePath:        creds.Certificate,
		PackageName:            packageName,
		Commit:                 commit,
		Track:                  track,
		DoNotContactGooglePlay: !strings.HasSuffix(creds.Certificate, certExtension),
		UpdateGPStrings:        updateStrings,
		Apks:                   make(map[string]string, len(apks)),
	}
	if payload.RolloutPercentage != nil {
		percentage := *payload.RolloutPercentage
		cfg.RolloutPercentage = &percentage
	}
	for arch, path := range apks {
		cfg.Apks[arch] = path
	}

	return cfg, nil
}

// Params renders the wire parameters handed to the publishing client.
// Optional keys follow presence semantics: rollout_percentage appears only
// when the payload supplied it, and do_not_contact_google_play appears only
// when set — its presence, not its value, is the signal downstream.
func (c *Config) Params() map[string]any {
	params := map[string]any{
		"service_account":                   c.ServiceAccount,
		"credentials":                       c.CertificatePath,
		"package_name":                      c.PackageName,
		"commit":                            c.Commit,
		"track":                             c.Track,
		"update_gp_strings_from_l10n_store": c.UpdateGPStrings,
	}
	if c.RolloutPercentage != nil {
		params["rollout_percentage"] = *c.RolloutPercentage
	}
	if c.DoNotContactGooglePlay {
		params["do_not_contact_google_play"] = true
	}
	for arch, path := range c.Apks {
		params["apk_"+arch] = path
	}
	return params
}
