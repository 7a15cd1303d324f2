// Package stats persists practice-mode statistics.
//
// Statistics live in a single JSON file, stats.json, inside the pigame
// config directory. Writes always emit plain indented JSON, but reads go
// through github.com/tidwall/jsonc first so a hand-edited file with
// comments or trailing commas still loads.
package stats

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"

	"github.com/docdyhr/pigame/internal/config"
)

// statsFileName is the file looked up inside the pigame config directory.
const statsFileName = "stats.json"

// Session is one recorded practice run.
type Session struct {
	// Date is the session end time, formatted "2006-01-02 15:04:05".
	Date string `json:"date"`

	// MaxLevel is the deepest digit position reached in this session.
	MaxLevel int `json:"max_level"`

	// CorrectDigits is the number of correctly typed digits.
	CorrectDigits int `json:"correct_digits"`

	// DurationSeconds is the wall-clock session length.
	DurationSeconds int `json:"duration_seconds"`
}

// Speed returns the session speed in digits per minute, or 0 when the
// session was too short to measure.
func (s Session) Speed() float64 {
	if s.DurationSeconds <= 0 {
		return 0
	}
	return float64(s.CorrectDigits) / float64(s.DurationSeconds) * 60
}

// Stats is the aggregate practice record. Nullable fields are pointers so
// a fresh file serializes them as null, matching the historical schema.
type Stats struct {
	// MaxDigits is the all-time deepest digit position reached.
	MaxDigits int `json:"max_digits"`

	// TotalDigitsCorrect sums correct digits across all sessions.
	TotalDigitsCorrect int `json:"total_digits_correct"`

	// TotalPracticeSessions counts recorded sessions.
	TotalPracticeSessions int `json:"total_practice_sessions"`

	// LastSessionDate is the Date of the most recent session.
	LastSessionDate *string `json:"last_session_date"`

	// FastestTime is the shortest session duration, in seconds, among
	// sessions that scored at least one correct digit.
	FastestTime *float64 `json:"fastest_time"`

	// BestSpeed is the highest session speed seen, in digits per minute.
	BestSpeed *float64 `json:"best_speed"`

	// History holds every recorded session, oldest first.
	History []Session `json:"history"`
}

// Record folds a finished session into the aggregates and appends it to
// the history. Sessions with zero correct digits still count toward the
// session total but never improve FastestTime or BestSpeed.
func (st *Stats) Record(s Session) {
	st.TotalPracticeSessions++
	st.TotalDigitsCorrect += s.CorrectDigits
	if s.MaxLevel > st.MaxDigits {
		st.MaxDigits = s.MaxLevel
	}

	date := s.Date
	st.LastSessionDate = &date

	if s.CorrectDigits > 0 {
		duration := float64(s.DurationSeconds)
		if st.FastestTime == nil || duration < *st.FastestTime {
			st.FastestTime = &duration
		}
		if speed := s.Speed(); speed > 0 && (st.BestSpeed == nil || speed > *st.BestSpeed) {
			best := speed
			st.BestSpeed = &best
		}
	}

	st.History = append(st.History, s)
}

// Store reads and writes the stats file at a fixed path.
type Store struct {
	path string
}

// NewStore creates a Store rooted at the standard pigame config directory.
func NewStore() (*Store, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}
	return NewStoreAt(filepath.Join(dir, statsFileName)), nil
}

// NewStoreAt creates a Store for an explicit file path. Used by tests.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Path returns the stats file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the stats file. A missing file yields zeroed stats with no
// error; the file is only created on the first Save.
func (s *Store) Load() (Stats, error) {
	var st Stats

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return st, nil
		}
		return st, fmt.Errorf("reading stats %s: %w", s.path, err)
	}

	// jsonc.ToJSON strips comments and trailing commas so a hand-edited
	// file still parses with encoding/json.
	if err := json.Unmarshal(jsonc.ToJSON(data), &st); err != nil {
		return Stats{}, fmt.Errorf("parsing stats %s: %w", s.path, err)
	}
	return st, nil
}

// Save writes the stats file, creating the config directory if needed.
func (s *Store) Save(st Stats) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating stats directory: %w", err)
	}

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding stats: %w", err)
	}

	if err := os.WriteFile(s.path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing stats %s: %w", s.path, err)
	}
	return nil
}
