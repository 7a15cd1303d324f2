package pi

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFormat verifies the 5-digit grouping: the "3." prefix stays intact
// and a single space precedes every 5th fractional digit.
func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"five decimals no space", "3.14159", "3.14159"},
		{"six decimals one space", "3.141592", "3.14159 2"},
		{"ten decimals", "3.1415926535", "3.14159 26535"},
		{"eleven decimals", "3.14159265358", "3.14159 26535 8"},
		{"fifteen decimals", "3.141592653589793", "3.14159 26535 89793"},
		{"one decimal", "3.1", "3.1"},
		{"prefix only", "3.", "3."},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.input))
		})
	}
}

// TestFormat_Deterministic checks that formatting a fixed input is stable
// and that output length grows monotonically with the digit count.
func TestFormat_Deterministic(t *testing.T) {
	prev := 0
	for _, n := range []int{1, 2, 5, 6, 10, 11, 50, 500, MaxLength} {
		t.Run(fmt.Sprintf("n_%d", n), func(t *testing.T) {
			ref, err := Digits(n)
			require.NoError(t, err)

			first := Format(ref)
			second := Format(ref)
			assert.Equal(t, first, second)

			assert.Greater(t, len(first), prev)
			prev = len(first)
		})
	}
}
