// Package diff bounds raw git diffs before they are sent to the completion
// service and extracts the headline numbers for the console report.
package diff

import (
	"fmt"
	"unicode/utf8"
)

// Budget caps the diff text forwarded to the model. MaxChars is a byte count;
// zero means unlimited.
type Budget struct {
	MaxChars int
}

// MinBudget is the smallest useful non-zero budget: anything lower cannot
// carry the truncation marker. Flag validation holds --max-input-chars to
// this floor so a truncated prompt always says it was truncated.
const MinBudget = 64

// Summarize returns the diff unchanged when it fits the budget. Otherwise it
// keeps the earliest hunks, cutting back to a UTF-8 boundary so no rune is
// split, and appends a marker so both the model and the user can tell the
// diff was cut. The result never exceeds MaxChars, marker included.
func Summarize(diff string, b Budget) string {
	if b.MaxChars <= 0 || len(diff) <= b.MaxChars {
		return diff
	}

	marker := truncationMarker(b.MaxChars)
	if len(marker) >= b.MaxChars {
		// Budget too small to carry the marker.
		return cutAtRune(diff, b.MaxChars)
	}
	return cutAtRune(diff, b.MaxChars-len(marker)) + marker
}

// cutAtRune returns a prefix of at most n bytes that ends on a rune boundary.
func cutAtRune(s string, n int) string {
	if n >= len(s) {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// Truncated reports whether Summarize would shorten the diff.
func Truncated(diff string, b Budget) bool {
	return b.MaxChars > 0 && len(diff) > b.MaxChars
}

func truncationMarker(maxChars int) string {
	return fmt.Sprintf("\n\n[diff truncated at %d characters]", maxChars)
}
