// Package l10n locates the Google Play strings artifact among the upstream
// tasks' artifacts. The strings file feeds Play listings and the "what's
// new" section; it is the only upstream artifact allowed to be missing.
package l10n

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mozilla-releng/pushapk/internal/errs"
	"github.com/mozilla-releng/pushapk/internal/single"
)

// StringsFileName is the artifact path the l10n store publishes.
const StringsFileName = "public/google_play_strings.json"

// UpstreamArtifacts lists, per upstream task ID, the artifact paths that
// were fetched and the ones that failed to fetch.
type UpstreamArtifacts struct {
	Artifacts map[string][]string `json:"artifacts"`
	Failed    map[string][]string `json:"failed_artifacts"`
}

// LoadUpstream reads and parses an upstream artifacts file.
func LoadUpstream(path string) (*UpstreamArtifacts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading upstream artifacts: %w", err)
	}

	var u UpstreamArtifacts
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("parsing upstream artifacts %s: %w", path, err)
	}

	return &u, nil
}

// StringsPath finds the unique Google Play strings file among the upstream
// artifacts. When the only failed upstream task is missing nothing but the
// strings file, that is tolerated: listings simply won't be updated, and
// StringsPath returns ok=false with no error. Any other failure pattern,
// and zero or multiple matching paths, are fatal.
func StringsPath(u *UpstreamArtifacts) (path string, ok bool, err error) {
	if len(u.Failed) > 0 {
		if err := checkStringsIsTheOnlyFailure(u.Failed); err != nil {
			return "", false, err
		}
		slog.Warn("Google Play strings not found, listings and what's new section won't be updated")
		return "", false, nil
	}

	path, err = findUniqueStringsFile(u.Artifacts)
	if err != nil {
		return "", false, err
	}
	slog.Info("using strings file to update Google Play listings", "path", path)
	return path, true, nil
}

func checkStringsIsTheOnlyFailure(failed map[string][]string) error {
	if len(failed) > 1 {
		return errs.StringsArtifact("only 1 upstream task is allowed to fail, found %d: %v", len(failed), taskIDs(failed))
	}

	for taskID, artifacts := range failed {
		found := false
		for _, artifact := range artifacts {
			if artifact == StringsFileName {
				found = true
				break
			}
		}
		if !found {
			return errs.StringsArtifact(
				"could not find %q in failed task %q, it is the only artifact allowed to be absent, found: %v",
				StringsFileName, taskID, artifacts,
			)
		}
	}
	return nil
}

func findUniqueStringsFile(artifacts map[string][]string) (string, error) {
	var allPaths []string
	for _, paths := range artifacts {
		allPaths = append(allPaths, paths...)
	}

	path, err := single.Find(allPaths, func(p string) bool {
		return strings.HasSuffix(p, StringsFileName)
	})
	switch {
	case errors.Is(err, single.ErrNone):
		return "", errs.StringsArtifact("could not find %q in upstream artifacts %v", StringsFileName, artifacts)
	case errors.Is(err, single.ErrTooMany):
		return "", errs.StringsArtifact("%q is defined more than once in upstream artifacts %v", StringsFileName, artifacts)
	case err != nil:
		return "", err
	}
	return path, nil
}

func taskIDs(m map[string][]string) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	return ids
}
