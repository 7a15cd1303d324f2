// Package cli — stats.go implements the "pigame stats" command.
//
// The command renders the persisted practice statistics either as a
// lipgloss-styled summary for humans or as raw JSON for scripts.
package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/docdyhr/pigame/internal/model"
	"github.com/docdyhr/pigame/internal/stats"
)

// statsFlags holds the flag values for the stats command.
type statsFlags struct {
	// jsonOutput emits the raw stats structure instead of the summary.
	jsonOutput bool

	// history is the number of recent sessions to show.
	history int
}

// NewStatsCommand creates the "stats" cobra command.
func NewStatsCommand() *cobra.Command {
	flags := &statsFlags{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show practice statistics",
		Long: `Show the persisted practice statistics: personal best, totals, speed
records, and the most recent sessions.`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(flags)
		},
	}

	cmd.Flags().BoolVar(&flags.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().IntVar(&flags.history, "history", 5, "Recent sessions to list")

	return cmd
}

// runStats is the main logic function for the stats command.
func runStats(flags *statsFlags) error {
	store, err := stats.NewStore()
	if err != nil {
		return model.WrapCLIError(model.ExitUsageError, "locating stats file", err)
	}

	st, err := store.Load()
	if err != nil {
		return model.WrapCLIError(model.ExitUsageError, "reading stats file", err)
	}

	if flags.jsonOutput {
		data, err := json.MarshalIndent(st, "", "  ")
		if err != nil {
			return model.WrapCLIError(model.ExitUsageError, "encoding stats", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println(renderStats(st, flags.history))
	return nil
}

// renderStats builds the human-readable summary.
func renderStats(st stats.Stats, historyCount int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2)
	label := lipgloss.NewStyle().Faint(true)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n", label.Render("personal best"), st.MaxDigits)
	fmt.Fprintf(&b, "%s %d\n", label.Render("sessions     "), st.TotalPracticeSessions)
	fmt.Fprintf(&b, "%s %d\n", label.Render("digits total "), st.TotalDigitsCorrect)
	fmt.Fprintf(&b, "%s %s\n", label.Render("fastest run  "), formatSeconds(st.FastestTime))
	fmt.Fprintf(&b, "%s %s\n", label.Render("best speed   "), formatSpeed(st.BestSpeed))
	fmt.Fprintf(&b, "%s %s", label.Render("last session "), formatDate(st.LastSessionDate))

	out := box.Render(strings.TrimRight(b.String(), "\n"))

	recent := recentHistory(st, historyCount)
	if len(recent) > 0 {
		out += "\n\nRecent sessions:\n"
		for _, s := range recent {
			out += fmt.Sprintf("  %s  %3d digits  %4ds\n", s.Date, s.CorrectDigits, s.DurationSeconds)
		}
		out = strings.TrimRight(out, "\n")
	}
	return out
}

// recentHistory returns up to n most recent sessions, newest last.
func recentHistory(st stats.Stats, n int) []stats.Session {
	if n <= 0 || len(st.History) == 0 {
		return nil
	}
	if len(st.History) > n {
		return st.History[len(st.History)-n:]
	}
	return st.History
}

// formatSeconds renders a nullable duration record.
func formatSeconds(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.0fs", *v)
}

// formatSpeed renders a nullable digits-per-minute record.
func formatSpeed(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f digits/min", *v)
}

// formatDate renders a nullable session date.
func formatDate(v *string) string {
	if v == nil {
		return "-"
	}
	return *v
}
