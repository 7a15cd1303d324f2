// Package cli — practice.go implements the "pigame practice" command.
//
// Practice mode runs the interactive digit trainer (internal/practice)
// and folds the finished session into the persisted statistics.
package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/docdyhr/pigame/internal/config"
	"github.com/docdyhr/pigame/internal/model"
	"github.com/docdyhr/pigame/internal/practice"
	"github.com/docdyhr/pigame/internal/stats"
)

// practiceFlags holds the flag values for the practice command.
type practiceFlags struct {
	// lives overrides the configured mistake budget when > 0.
	lives int
}

// NewPracticeCommand creates the "practice" cobra command.
func NewPracticeCommand() *cobra.Command {
	flags := &practiceFlags{}

	cmd := &cobra.Command{
		Use:   "practice",
		Short: "Train π digits one keystroke at a time",
		Long: `Interactive practice mode: type the decimals of π one keystroke at a
time. A wrong digit costs a life and reveals the expected digit. The
session ends when the lives run out or you quit with q.

Results are recorded in the pigame statistics file (see "pigame stats").`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runPractice(flags)
		},
	}

	cmd.Flags().IntVar(&flags.lives, "lives", 0,
		"Mistakes allowed per session (default from config, 3)")

	return cmd
}

// runPractice is the main logic function for the practice command.
func runPractice(flags *practiceFlags) error {
	cfg, err := config.Load()
	if err != nil {
		return model.WrapCLIError(model.ExitUsageError, "Invalid config", err)
	}

	lives := cfg.Practice.Lives
	if flags.lives > 0 {
		lives = flags.lives
	}

	store, err := stats.NewStore()
	if err != nil {
		return model.WrapCLIError(model.ExitUsageError, "locating stats file", err)
	}

	record, err := store.Load()
	if err != nil {
		return model.WrapCLIError(model.ExitUsageError, "reading stats file", err)
	}

	VerboseLog("starting practice session with %d lives, personal best %d", lives, record.MaxDigits)

	program := tea.NewProgram(practice.New(lives, record.MaxDigits))
	final, err := program.Run()
	if err != nil {
		return model.WrapCLIError(model.ExitUsageError, "practice session failed", err)
	}

	finalModel, ok := final.(practice.Model)
	if !ok {
		return model.NewCLIError(model.ExitUsageError, "practice session returned an unexpected model")
	}

	session := finalModel.Session()
	record.Record(session)
	if err := store.Save(record); err != nil {
		return model.WrapCLIError(model.ExitUsageError, "saving stats file", err)
	}

	fmt.Printf("Session recorded: %d digits correct in %ds.\n",
		session.CorrectDigits, session.DurationSeconds)
	if session.MaxLevel >= record.MaxDigits && session.MaxLevel > 0 {
		fmt.Println("New personal best!")
	}
	return nil
}
