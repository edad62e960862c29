// Package channel defines release channels and their Google Play package
// identities.
package channel

import "sort"

// Channel is a named release track of the application (e.g. aurora, beta,
// release). The set of valid channels is whatever the trusted credentials
// table configures; only the channels below have a package name mapping.
type Channel string

const (
	Aurora  Channel = "aurora"
	Beta    Channel = "beta"
	Release Channel = "release"
)

// packageNames is the closed channel → Android package identifier table.
// Channels outside it (e.g. "dep", used for staging runs against dummy
// credentials) have no publishable package; callers must treat a missing
// entry as fatal.
var packageNames = map[Channel]string{
	Aurora:  "org.mozilla.fennec_aurora",
	Beta:    "org.mozilla.firefox_beta",
	Release: "org.mozilla.firefox",
}

// PackageName returns the Android package identifier published on this
// channel. The second return is false when the channel has no known package.
func (c Channel) PackageName() (string, bool) {
	name, ok := packageNames[c]
	return name, ok
}

// Known returns the channels with a package name mapping, sorted.
func Known() []Channel {
	channels := make([]Channel, 0, len(packageNames))
	for c := range packageNames {
		channels = append(channels, c)
	}
	sort.Slice(channels, func(i, j int) bool { return channels[i] < channels[j] })
	return channels
}
