package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestVerdict_String verifies that verdicts stringify to the exact player
// facing wording.
func TestVerdict_String(t *testing.T) {
	tests := []struct {
		verdict  Verdict
		expected string
	}{
		{VerdictMatch, "Match"},
		{VerdictNoMatch, "No match"},
		{VerdictPerfect, "Perfect!"},
		{VerdictWellDone, "Well done."},
		{VerdictCanDoBetter, "You can do better!"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.verdict.String())
		})
	}
}

// TestVerdict_IsValid checks that only defined verdicts pass validation.
func TestVerdict_IsValid(t *testing.T) {
	assert.True(t, VerdictMatch.IsValid())
	assert.True(t, VerdictCanDoBetter.IsValid())
	assert.False(t, Verdict("Close enough").IsValid())
	assert.False(t, Verdict("").IsValid())
}

// TestVerdict_Won verifies the win/lose split across both output modes.
func TestVerdict_Won(t *testing.T) {
	assert.True(t, VerdictMatch.Won())
	assert.True(t, VerdictPerfect.Won())
	assert.True(t, VerdictWellDone.Won())
	assert.False(t, VerdictNoMatch.Won())
	assert.False(t, VerdictCanDoBetter.Won())
}

// TestCLIError covers message formatting, wrapping, and unwrapping.
func TestCLIError(t *testing.T) {
	plain := NewCLIError(ExitUsageError, "Invalid input - NOT a float")
	assert.Equal(t, "Invalid input - NOT a float", plain.Error())
	assert.Equal(t, ExitUsageError, plain.Code)
	assert.Nil(t, plain.Unwrap())

	underlying := errors.New("boom")
	wrapped := WrapCLIError(ExitUsageError, "reading config", underlying)
	assert.Equal(t, "reading config: boom", wrapped.Error())
	assert.ErrorIs(t, wrapped, underlying)
}
