// Package errs defines the typed validation errors raised while turning a
// signed publishing task into a push configuration. Every failure mode has a
// structured code so callers (and task failure reports) can tell bad
// authorization, bad config, and ambiguous requests apart.
package errs

import (
	"errors"
	"fmt"
)

// Validation error codes.
const (
	CodeScopeInvalid         = "pushapk.scope_invalid"          // Zero or multiple channel scopes on the task
	CodeChannelNotConfigured = "pushapk.channel_not_configured" // Channel missing from the trusted credentials table
	CodeChannelUnsupported   = "pushapk.channel_unsupported"    // Channel has credentials but no package name mapping
	CodeCommitConflict       = "pushapk.commit_conflict"        // Both commit and deprecated dry_run supplied
	CodeTrackInvalid         = "pushapk.track_invalid"          // Track not in the allowed set
	CodeStringsArtifact      = "pushapk.strings_artifact"       // Google Play strings artifact could not be resolved
)

// ValidationError is a task or configuration validation failure with a
// structured code. There is no recovery inside this tool: every
// ValidationError aborts the task and surfaces its code in the failure
// report.
type ValidationError struct {
	Code    string // One of the Code* constants
	Message string // Human-readable error description
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code, format string, args ...any) *ValidationError {
	return &ValidationError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ScopeInvalid creates an error for zero or ambiguous channel scopes.
func ScopeInvalid(format string, args ...any) *ValidationError {
	return newError(CodeScopeInvalid, format, args...)
}

// ChannelNotConfigured creates an error for a channel absent from the
// trusted credentials table.
func ChannelNotConfigured(channel string) *ValidationError {
	return newError(CodeChannelNotConfigured, "no Google Play account configured for channel %q", channel)
}

// ChannelUnsupported creates an error for a channel with no known package
// name.
func ChannelUnsupported(channel string) *ValidationError {
	return newError(CodeChannelUnsupported, "no package name known for channel %q", channel)
}

// CommitConflict creates an error for a payload carrying both the commit
// flag and the deprecated dry_run flag.
func CommitConflict() *ValidationError {
	return newError(CodeCommitConflict, `both "commit" and deprecated "dry_run" supplied; use "commit" only`)
}

// TrackInvalid creates an error for a track outside the allowed set.
func TrackInvalid(track string, allowed []string) *ValidationError {
	return newError(CodeTrackInvalid, "track %q not valid, allowed values: %v", track, allowed)
}

// StringsArtifact creates an error for an unresolvable Google Play strings
// artifact.
func StringsArtifact(format string, args ...any) *ValidationError {
	return newError(CodeStringsArtifact, format, args...)
}

// Code extracts the validation error code from an error.
// Returns empty string if the error is not a ValidationError.
func Code(err error) string {
	if err == nil {
		return ""
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Code
	}
	return ""
}

// IsValidation returns true if the error is or wraps a ValidationError.
func IsValidation(err error) bool {
	if err == nil {
		return false
	}
	var verr *ValidationError
	return errors.As(err, &verr)
}
