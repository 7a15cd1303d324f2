package pi

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for the two failure kinds of the engine. Both are
// terminal for the invocation: the CLI layer prints them and exits 1.
var (
	// ErrInvalidLength marks a -p argument that is not a pure integer,
	// not positive, or larger than MaxLength.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidInput marks a candidate string that is empty or not a
	// digit string with at most one decimal point.
	ErrInvalidInput = errors.New("invalid input")
)

// IsValid reports whether input is a syntactically acceptable candidate:
// non-empty, every character an ASCII digit except at most one '.'.
//
// The dot may appear anywhere; this deliberately preserves the permissive
// reference behavior (e.g. "314." and ".14" are accepted). Pure predicate,
// no side effects.
func IsValid(input string) bool {
	if input == "" {
		return false
	}
	dots := 0
	for i := 0; i < len(input); i++ {
		switch c := input[i]; {
		case c == '.':
			dots++
		case c < '0' || c > '9':
			return false
		}
	}
	return dots <= 1
}

// ResolveExplicit parses the -p argument into a comparison length.
// The argument must be a pure base-10 integer literal in [1, MaxLength].
func ResolveExplicit(raw string) (int, error) {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidLength, raw)
	}
	if value <= 0 || value > MaxLength {
		return 0, fmt.Errorf("%w: %d out of range [1, %d]", ErrInvalidLength, value, MaxLength)
	}
	return value, nil
}

// ResolveFromInput derives the comparison length from a validated candidate
// string: its character count minus the expected "3." prefix, clamped to
// [1, MaxLength]. The upper clamp bounds allocation for pathologically long
// inputs; the reference behavior left this unbounded.
func ResolveFromInput(yourPi string) int {
	length := len(yourPi) - 2
	if length < 1 {
		length = 1
	}
	if length > MaxLength {
		length = MaxLength
	}
	return length
}

// easterEggs are the literal tokens that bypass validation and comparison
// entirely, routing to a fixed informational message.
var easterEggs = map[string]bool{
	"Archimedes": true,
	"pi":         true,
	"PI":         true,
}

// IsEasterEgg reports whether token short-circuits the game.
func IsEasterEgg(token string) bool {
	return easterEggs[token]
}
