package push

import (
	"github.com/mozilla-releng/pushapk/internal/errs"
	"github.com/mozilla-releng/pushapk/internal/task"
)

// ShouldCommit decides whether the Play transaction is committed or merely
// validated, from the payload's "commit" flag and its deprecated, inverted
// predecessor "dry_run".
//
// Committed APKs can't be unpublished, so an empty payload means no commit.
// A payload carrying both flags is rejected even when their values agree:
// silently picking a winner would let a caller believe they set one behavior
// while the other applied.
func ShouldCommit(p task.Payload) (bool, error) {
	switch {
	case p.DryRun != nil && p.Commit != nil:
		return false, errs.CommitConflict()
	case p.DryRun != nil:
		return !*p.DryRun, nil
	case p.Commit != nil:
		return *p.Commit, nil
	}
	return false, nil
}
