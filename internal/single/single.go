// Package single selects the only element of a slice matching a predicate.
package single

import "errors"

// ErrNone reports that no element matched.
var ErrNone = errors.New("no matching element")

// ErrTooMany reports that more than one element matched.
var ErrTooMany = errors.New("more than one matching element")

// Find returns the sole element of items for which pred is true.
// It fails with ErrNone or ErrTooMany otherwise; callers wrap these into
// their own error kinds.
func Find[T any](items []T, pred func(T) bool) (T, error) {
	var (
		match T
		found bool
	)
	for _, item := range items {
		if !pred(item) {
			continue
		}
		if found {
			var zero T
			return zero, ErrTooMany
		}
		match = item
		found = true
	}
	if !found {
		var zero T
		return zero, ErrNone
	}
	return match, nil
}
