package pi

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIsValid covers the validation rules: non-empty, digits only, at most
// one decimal point anywhere.
func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"classic", "3.14159", true},
		{"integer only", "3", true},
		{"short float", "3.1", true},
		{"pure digits long", "31415926535", true},
		{"dot first", ".14159", true},  // permissive by design
		{"dot last", "314.", true},     // permissive by design
		{"dot only", ".", true},        // zero digits, one dot
		{"empty", "", false},
		{"letters", "abc", false},
		{"mixed", "3.14a59", false},
		{"two dots", "3.14.15", false},
		{"negative", "-3.14", false},
		{"whitespace", "3.14 159", false},
		{"comma", "3,14159", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValid(tt.input))
		})
	}
}

// TestResolveExplicit verifies the -p length path: pure positive integers
// up to MaxLength pass, everything else fails with ErrInvalidLength.
func TestResolveExplicit(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		hasError bool
	}{
		{"1", 1, false},
		{"15", 15, false},
		{"100", 100, false},
		{strconv.Itoa(MaxLength), MaxLength, false},
		{"0", 0, true},
		{"-5", 0, true},
		{"abc", 0, true},
		{"15x", 0, true}, // trailing garbage is not a pure integer
		{"3.14", 0, true},
		{"99999", 0, true}, // over MaxLength
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ResolveExplicit(tt.input)
			if tt.hasError {
				assert.ErrorIs(t, err, ErrInvalidLength)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

// TestResolveFromInput verifies implicit length derivation: candidate
// length minus the "3." prefix, clamped to [1, MaxLength].
func TestResolveFromInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"five decimals", "3.14159", 5},
		{"one decimal", "3.1", 1},
		{"bare three clamps to one", "3", 1},
		{"empty clamps to one", "", 1},
		{"fifteen decimals", "3.141592653589793", 15},
		{"oversized clamps to max", "3." + strings.Repeat("1", MaxLength+500), MaxLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveFromInput(tt.input))
		})
	}
}

// TestIsEasterEgg checks the exact tokens that bypass validation.
func TestIsEasterEgg(t *testing.T) {
	assert.True(t, IsEasterEgg("Archimedes"))
	assert.True(t, IsEasterEgg("pi"))
	assert.True(t, IsEasterEgg("PI"))
	assert.False(t, IsEasterEgg("Pi"))
	assert.False(t, IsEasterEgg("archimedes"))
	assert.False(t, IsEasterEgg("3.14159"))
	assert.False(t, IsEasterEgg(""))
}
