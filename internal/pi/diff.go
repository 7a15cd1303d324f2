package pi

import "strings"

// ANSI escape sequences used by the built-in markers.
const (
	ansiRed       = "\x1b[0;31m"
	ansiUnderline = "\x1b[4m"
	ansiReset     = "\x1b[0m"
)

// Marker renders a single mismatched character for display. Implementations
// must keep the character itself visible; only the surrounding markup
// varies. Markers make the output encoding substitutable for non-ANSI
// terminals without touching the diff walk.
type Marker func(c byte) string

// MarkRed wraps the character in the red ANSI color sequence.
func MarkRed(c byte) string {
	return ansiRed + string(c) + ansiReset
}

// MarkUnderline wraps the character in the ANSI underline sequence.
// Used in colorblind mode.
func MarkUnderline(c byte) string {
	return ansiUnderline + string(c) + ansiReset
}

// MarkerFor selects the mismatch marker for the given display mode.
func MarkerFor(colorblind bool) Marker {
	if colorblind {
		return MarkUnderline
	}
	return MarkRed
}

// Diff walks candidate and reference in lockstep and renders the candidate
// with every mismatched position marked. It returns the rendered text and
// the total mismatch count.
//
// The walk applies the reference grouping rule keyed off the "3." prefix:
// a space is emitted whenever i > 1 and (i-2)%5 == 0. Candidate positions
// beyond the end of the reference are mismatches by construction; the
// reference is never indexed out of range.
//
// Rendering to a terminal is the caller's job; Diff only builds the string.
func Diff(candidate, reference string, mark Marker) (string, int) {
	var b strings.Builder
	b.Grow(len(candidate) + len(candidate)/5)

	errorCount := 0
	for i := 0; i < len(candidate); i++ {
		if i > 1 && (i-2)%5 == 0 {
			b.WriteByte(' ')
		}
		if i < len(reference) && candidate[i] == reference[i] {
			b.WriteByte(candidate[i])
		} else {
			errorCount++
			b.WriteString(mark(candidate[i]))
		}
	}
	return b.String(), errorCount
}
