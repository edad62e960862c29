// Package task models the signed publishing task handed to this tool:
// the scopes it was granted and the publishing parameters in its payload.
package task

import (
	"encoding/json"
	"fmt"
	"os"
)

// Task is the descriptor supplied by the task queue. Scopes are assumed
// already verified upstream.
type Task struct {
	Scopes  []string `json:"scopes"`
	Payload Payload  `json:"payload"`
}

// Payload carries the task-supplied publishing parameters. Optional fields
// are pointers so that "absent" and "explicitly false/zero" stay
// distinguishable — the commit decision depends on that distinction.
type Payload struct {
	// GooglePlayTrack is the Play distribution track. Empty means the
	// builder defaults it to "production".
	GooglePlayTrack string `json:"google_play_track"`
	// RolloutPercentage is the fraction of users targeted on a staged
	// rollout. Carried through only when supplied.
	RolloutPercentage *int `json:"rollout_percentage"`
	// Commit finalizes the Play transaction instead of validating it.
	Commit *bool `json:"commit"`
	// DryRun is the deprecated, inverted predecessor of Commit. Supplying
	// both is rejected.
	DryRun *bool `json:"dry_run"`
	// UpdateGPStringsFromL10nStore updates Play listings from the l10n
	// strings artifact. Defaults to true.
	UpdateGPStringsFromL10nStore *bool `json:"update_gp_strings_from_l10n_store"`
}

// Load reads and parses a task descriptor file.
func Load(path string) (*Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading task: %w", err)
	}

	var t Task
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing task %s: %w", path, err)
	}

	return &t, nil
}
