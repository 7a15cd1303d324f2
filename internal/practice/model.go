// Package practice implements the interactive digit-recall trainer.
//
// The bubbletea model prompts for π digits one keystroke at a time. A
// correct digit extends the current run; a wrong one costs a life and
// reveals the expected digit. The session ends when the lives run out,
// the digit table is exhausted, or the player quits. The finished model
// exposes a stats.Session for persistence; saving is the CLI's job.
package practice

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/docdyhr/pigame/internal/pi"
	"github.com/docdyhr/pigame/internal/stats"
)

// sessionDateFormat matches the historical stats.json schema.
const sessionDateFormat = "2006-01-02 15:04:05"

// styles groups the lipgloss styles used by the view.
type styles struct {
	Title  lipgloss.Style
	Run    lipgloss.Style
	Miss   lipgloss.Style
	Lives  lipgloss.Style
	Help   lipgloss.Style
	Record lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Title:  lipgloss.NewStyle().Bold(true),
		Run:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Miss:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Lives:  lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		Help:   lipgloss.NewStyle().Faint(true),
		Record: lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	}
}

// Model is the bubbletea model for one practice session.
type Model struct {
	// target holds the fractional reference digits, without the "3."
	// prefix. Position i is the digit the player must type at level i+1.
	target string

	// typed is the number of consecutive correct digits so far.
	typed int

	// lives and livesLeft bound the mistakes allowed this session.
	lives     int
	livesLeft int

	// lastMiss describes the most recent wrong keystroke, empty when the
	// previous key was correct.
	lastMiss string

	// record is the personal best (stats MaxDigits) at session start.
	record int

	// startedAt anchors the session duration.
	startedAt time.Time

	// done marks the session finished; no further keys are scored.
	done bool

	// finished explains why the session ended, shown in the final view.
	finished string

	progress progress.Model
	styles   styles
	width    int
}

// New builds a session model. lives must be >= 1; record is the player's
// persisted best run (0 when unknown).
func New(lives, record int) Model {
	ref, err := pi.Digits(pi.MaxLength)
	if err != nil {
		// Unreachable: MaxLength is always a valid table length.
		panic(err)
	}

	if lives < 1 {
		lives = 1
	}

	return Model{
		target:    ref[2:],
		lives:     lives,
		livesLeft: lives,
		record:    record,
		startedAt: time.Now(),
		progress:  progress.New(progress.WithDefaultGradient()),
		styles:    defaultStyles(),
		width:     60,
	}
}

// Init satisfies tea.Model. The session is purely key-driven.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update satisfies tea.Model. Digit keys score; q, esc, and ctrl+c end
// the session.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = msg.Width - 8
		if m.progress.Width > 60 {
			m.progress.Width = 60
		}
		return m, nil

	case tea.KeyMsg:
		switch key := msg.String(); {
		case key == "q" || key == "esc" || key == "ctrl+c":
			if !m.done {
				m.done = true
				m.finished = "Session ended."
			}
			return m, tea.Quit

		case m.done:
			// Any key after the session ended leaves the program.
			return m, tea.Quit

		case len(key) == 1 && key[0] >= '0' && key[0] <= '9':
			return m.score(key[0])
		}
	}
	return m, nil
}

// score applies one digit keystroke to the run.
func (m Model) score(c byte) (tea.Model, tea.Cmd) {
	expected := m.target[m.typed]

	if c == expected {
		m.typed++
		m.lastMiss = ""
		if m.typed == len(m.target) {
			m.done = true
			m.finished = "You exhausted the digit table. Astonishing."
			return m, tea.Quit
		}
		return m, nil
	}

	m.livesLeft--
	m.lastMiss = fmt.Sprintf("you typed %c, digit %d is %c", c, m.typed+1, expected)
	if m.livesLeft == 0 {
		m.done = true
		m.finished = "Out of lives."
		return m, tea.Quit
	}
	return m, nil
}

// View satisfies tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("pigame practice"))
	b.WriteString("\n\n")

	// The run so far, grouped like the evaluation output.
	run := pi.Format("3." + m.target[:m.typed])
	b.WriteString(m.styles.Run.Render(run))
	if !m.done {
		b.WriteString("_")
	}
	b.WriteString("\n")

	if m.lastMiss != "" {
		b.WriteString(m.styles.Miss.Render("✗ " + m.lastMiss))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Lives.Render(fmt.Sprintf("lives %s", strings.Repeat("♥", m.livesLeft)+strings.Repeat("·", m.lives-m.livesLeft))))
	b.WriteString("\n")

	if m.record > 0 {
		b.WriteString(m.styles.Record.Render(fmt.Sprintf("best %d", m.record)))
		b.WriteString("\n")
		b.WriteString(m.progress.ViewAs(m.recordProgress()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.styles.Title.Render(m.finished))
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render(fmt.Sprintf("%d digits correct", m.typed)))
		b.WriteString("\n")
	} else {
		b.WriteString(m.styles.Help.Render("type the next digit of π · q quits"))
		b.WriteString("\n")
	}

	return b.String()
}

// recordProgress is the current run measured against the personal best,
// capped at 1.
func (m Model) recordProgress() float64 {
	if m.record <= 0 {
		return 0
	}
	p := float64(m.typed) / float64(m.record)
	if p > 1 {
		p = 1
	}
	return p
}

// Typed returns the number of correct digits so far.
func (m Model) Typed() int {
	return m.typed
}

// LivesLeft returns the remaining mistake budget.
func (m Model) LivesLeft() int {
	return m.livesLeft
}

// Done reports whether the session has ended.
func (m Model) Done() bool {
	return m.done
}

// Session converts the finished run into a stats record.
func (m Model) Session() stats.Session {
	return stats.Session{
		Date:            time.Now().Format(sessionDateFormat),
		MaxLevel:        m.typed,
		CorrectDigits:   m.typed,
		DurationSeconds: int(time.Since(m.startedAt).Seconds()),
	}
}
