// Package nback answers whether a guessed look-back distance points at
// a repeat of the most recent stimulus.
package nback

import "github.com/nback-drill/cli/internal/domain/history"

// IsGuessCorrect reports whether the value seen back steps before the
// newest value equals the newest value. A guess that reaches outside
// the recorded history is simply incorrect, not an error, and a guess
// of zero can never be correct since a value does not repeat itself.
func IsGuessCorrect(past *history.Ring[int], back int) bool {
	if back < 1 || back >= past.Count() {
		return false
	}

	it := past.Reverse()
	newest := it.Value()
	for step := 0; step < back && it.Valid(); step++ {
		it.Next()
	}
	return it.Valid() && it.Value() == newest
}

// HasAnyMatch reports whether any earlier position in the history
// repeats the newest value. The session loop uses it to decide whether
// an unanswered stimulus counts as a missed opportunity.
func HasAnyMatch(past *history.Ring[int]) bool {
	it := past.Reverse()
	if !it.Valid() {
		return false
	}
	newest := it.Value()
	for it.Next(); it.Valid(); it.Next() {
		if it.Value() == newest {
			return true
		}
	}
	return false
}
