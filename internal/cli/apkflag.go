package cli

import (
	"fmt"
	"strings"
)

// parseAPKFlags turns repeated --apk arch=path flags into an architecture →
// path map. Duplicate architectures are rejected: one task pushes exactly
// one APK per architecture.
func parseAPKFlags(flags []string) (map[string]string, error) {
	apks := make(map[string]string, len(flags))
	for _, flag := range flags {
		arch, path, found := strings.Cut(flag, "=")
		if !found || arch == "" || path == "" {
			return nil, fmt.Errorf("invalid --apk value %q: must be <arch>=<path> (e.g. x86=/path/to/app.apk)", flag)
		}
		if _, dup := apks[arch]; dup {
			return nil, fmt.Errorf("architecture %q supplied more than once", arch)
		}
		apks[arch] = path
	}
	return apks, nil
}
