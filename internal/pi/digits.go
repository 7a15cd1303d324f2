package pi

import "fmt"

const (
	// MaxLength is the maximum number of decimals supported for display
	// and comparison. It matches the size of the embedded digit table.
	MaxLength = 5001

	// DefaultLength is the number of decimals used when no explicit
	// length is requested.
	DefaultLength = 15
)

// Digits returns "3." followed by the first length verified decimal digits
// of π. The result always has exactly length+2 characters.
//
// length must be in [1, MaxLength]; anything else is an ErrInvalidLength.
// The embedded table is MaxLength digits long, so a valid length can never
// run past it.
func Digits(length int) (string, error) {
	if length < 1 || length > MaxLength {
		return "", fmt.Errorf("%w: length %d out of range [1, %d]", ErrInvalidLength, length, MaxLength)
	}
	return "3." + piDigits[:length], nil
}
