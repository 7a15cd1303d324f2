package pi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docdyhr/pigame/internal/model"
)

// TestClassify_Terse verifies Match/NoMatch selection on exact equality.
func TestClassify_Terse(t *testing.T) {
	ref5, err := Digits(5)
	require.NoError(t, err)
	ref15, err := Digits(15)
	require.NoError(t, err)

	tests := []struct {
		name      string
		candidate string
		reference string
		length    int
		expected  model.Verdict
	}{
		{"exact match", "3.14159", ref5, 5, model.VerdictMatch},
		{"wrong digit", "3.14158", ref5, 5, model.VerdictNoMatch},
		{"correct prefix is not a match", "3.14159", ref15, 15, model.VerdictNoMatch},
		{"longer than reference", "3.141590000", ref5, 5, model.VerdictNoMatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.candidate, tt.reference, tt.length, false))
		})
	}
}

// TestClassify_Verbose verifies the Perfect/WellDone split at 15 decimals
// and CanDoBetter on any inequality.
func TestClassify_Verbose(t *testing.T) {
	ref10, err := Digits(10)
	require.NoError(t, err)
	ref15, err := Digits(15)
	require.NoError(t, err)
	ref20, err := Digits(20)
	require.NoError(t, err)

	tests := []struct {
		name      string
		candidate string
		reference string
		length    int
		expected  model.Verdict
	}{
		{"twenty decimals is perfect", ref20, ref20, 20, model.VerdictPerfect},
		{"fifteen decimals is perfect", ref15, ref15, 15, model.VerdictPerfect},
		{"ten decimals is well done", ref10, ref10, 10, model.VerdictWellDone},
		{"mismatch can do better", "3.1415926534", ref10, 10, model.VerdictCanDoBetter},
		{"short candidate can do better", "3.14159", ref15, 15, model.VerdictCanDoBetter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.candidate, tt.reference, tt.length, true))
		})
	}
}
