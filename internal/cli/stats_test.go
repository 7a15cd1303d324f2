package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docdyhr/pigame/internal/stats"
)

// TestRenderStats_Empty renders a fresh record with placeholder dashes.
func TestRenderStats_Empty(t *testing.T) {
	out := renderStats(stats.Stats{}, 5)

	assert.Contains(t, out, "personal best")
	assert.Contains(t, out, "-")
	assert.NotContains(t, out, "Recent sessions")
}

// TestRenderStats_WithHistory lists the recent sessions under the box.
func TestRenderStats_WithHistory(t *testing.T) {
	var st stats.Stats
	st.Record(stats.Session{Date: "2026-08-21 10:00:00", MaxLevel: 8, CorrectDigits: 8, DurationSeconds: 60})
	st.Record(stats.Session{Date: "2026-08-22 10:00:00", MaxLevel: 12, CorrectDigits: 12, DurationSeconds: 90})

	out := renderStats(st, 5)

	assert.Contains(t, out, "Recent sessions")
	assert.Contains(t, out, "2026-08-21 10:00:00")
	assert.Contains(t, out, "2026-08-22 10:00:00")
}

// TestRecentHistory clamps to the requested window, newest last.
func TestRecentHistory(t *testing.T) {
	var st stats.Stats
	for _, d := range []string{"a", "b", "c", "d"} {
		st.History = append(st.History, stats.Session{Date: d})
	}

	assert.Len(t, recentHistory(st, 2), 2)
	assert.Equal(t, "c", recentHistory(st, 2)[0].Date)
	assert.Equal(t, "d", recentHistory(st, 2)[1].Date)
	assert.Len(t, recentHistory(st, 10), 4)
	assert.Nil(t, recentHistory(st, 0))
	assert.Nil(t, recentHistory(stats.Stats{}, 5))
}

// TestFormatNullables covers the placeholder rendering for unset records.
func TestFormatNullables(t *testing.T) {
	assert.Equal(t, "-", formatSeconds(nil))
	assert.Equal(t, "-", formatSpeed(nil))
	assert.Equal(t, "-", formatDate(nil))

	seconds := 42.0
	speed := 12.34
	date := "2026-08-23 12:00:00"
	assert.Equal(t, "42s", formatSeconds(&seconds))
	assert.Equal(t, "12.3 digits/min", formatSpeed(&speed))
	assert.Equal(t, date, formatDate(&date))
}
