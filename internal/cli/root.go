// Package cli implements the cobra-based commands for pigame.
//
// The root command is the game itself: it takes the player's version of π
// as a positional argument, compares it against the verified reference,
// and prints the highlighted diff and a verdict. The practice and stats
// subcommands live in their own files (practice.go, stats.go), the -p
// reference-printing path in print.go.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/docdyhr/pigame/internal/config"
	"github.com/docdyhr/pigame/internal/model"
	"github.com/docdyhr/pigame/internal/pi"
)

// Global flag variables bound on the root command.
var (
	// verbose enables labelled output, the error count, and the richer
	// verdict wording.
	verbose bool

	// colorblind switches mismatch marking from red to underline.
	colorblind bool

	// decimals is the raw -p argument. Kept as a string so the length
	// validator owns all parsing; cobra never rejects it first.
	decimals string

	// showVersion prints the version string and exits.
	showVersion bool
)

// Version, Commit, and Date are set at build time via ldflags and injected
// from the main package. The defaults double as the hardcoded fallback
// when a build carries no version information.
var (
	// Version is the semantic version of the binary.
	Version = "1.6.0"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// archimedesNote is the easter-egg response for the tokens "Archimedes",
// "pi", and "PI". These bypass validation and comparison entirely.
const archimedesNote = `π is also called Archimedes constant and is commonly defined as
the ratio of a circles circumference C to its diameter d:
π = C / d`

// NewRootCommand creates and configures the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pigame [-v] [-p LENGTH] [-V] [-c] YOUR_PI",
		Short: "Evaluate your version of π (3.141.. )",
		Long: `pigame is a memory-training game: recite π, let the machine judge you.

Pass your version of π as the argument. Every digit that does not match
the verified reference is highlighted, mismatches are counted, and a
verdict is printed. With no argument, -p LENGTH prints the reference
itself to LENGTH decimals.`,

		// At most the single YOUR_PI positional argument.
		Args: cobra.MaximumNArgs(1),

		// SilenceUsage / SilenceErrors: errors are formatted by Execute
		// with the historical "pigame error:" prefix instead of cobra's
		// default output.
		SilenceUsage:  true,
		SilenceErrors: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Increase verbosity.")
	rootCmd.Flags().BoolVarP(&colorblind, "colorblind", "c", false, "Color-blind mode (use underline instead of color).")
	rootCmd.Flags().StringVarP(&decimals, "decimals", "p", "", "Show π with LENGTH number of decimals.")
	rootCmd.Flags().BoolVarP(&showVersion, "version", "V", false, "Version.")

	rootCmd.AddCommand(NewPracticeCommand())
	rootCmd.AddCommand(NewStatsCommand())

	return rootCmd
}

// runRoot dispatches the root invocation: version, reference printing,
// easter eggs, or the evaluation flow.
func runRoot(cmd *cobra.Command, args []string) error {
	if showVersion {
		if verbose {
			fmt.Printf("pigame version: %s (commit: %s, built: %s)\n", Version, Commit, Date)
		} else {
			fmt.Printf("pigame version: %s\n", Version)
		}
		return nil
	}

	// Config supplies display defaults; explicit flags win.
	cfg, err := config.Load()
	if err != nil {
		return model.WrapCLIError(model.ExitUsageError, "Invalid config", err)
	}
	applyConfigDefaults(cmd, cfg)

	// The -p path prints the reference and terminates without YOUR_PI.
	if cmd.Flags().Changed("decimals") {
		return runPrint(decimals, verbose)
	}

	if len(args) == 0 {
		// Malformed usage goes to stderr; -h help goes to stdout.
		_ = cmd.Usage()
		return model.NewCLIError(model.ExitUsageError, "missing YOUR_PI")
	}
	yourPi := args[0]

	if pi.IsEasterEgg(yourPi) {
		fmt.Println(archimedesNote)
		return nil
	}

	if !pi.IsValid(yourPi) {
		return model.NewCLIError(model.ExitUsageError, "Invalid input - NOT a float")
	}

	result, err := evaluate(yourPi, colorblind, verbose)
	if err != nil {
		return err
	}

	VerboseLog("comparing %d decimals, %d mismatches", result.Length, result.Errors)

	fmt.Print(result.render(verbose))
	return nil
}

// applyConfigDefaults folds config-file defaults into the flag variables.
// A flag explicitly set on the command line always wins; config can only
// turn a mode on, never force one off that the player asked for.
func applyConfigDefaults(cmd *cobra.Command, cfg config.Config) {
	if !cmd.Flags().Changed("verbose") && cfg.Verbose {
		verbose = true
	}
	if !cmd.Flags().Changed("colorblind") && cfg.Colorblind {
		colorblind = true
	}
}

// Execute runs the root command and translates errors into exit codes.
// This is the entry point called from main.go.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		if cliErr, ok := err.(*model.CLIError); ok {
			printError(cliErr)
			os.Exit(int(cliErr.Code))
		}

		// Anything else (unknown flag, bad arg count) is a usage error.
		fmt.Fprintf(os.Stderr, "pigame error: %v\n", err)
		os.Exit(int(model.ExitUsageError))
	}
}

// printError writes a CLIError to stderr with the historical prefix.
func printError(err *model.CLIError) {
	if err.Err != nil && verbose {
		fmt.Fprintf(os.Stderr, "pigame error: %s: %v\n", err.Message, err.Err)
		return
	}
	fmt.Fprintf(os.Stderr, "pigame error: %s\n", err.Message)
}

// VerboseLog prints a trace message to stderr only when verbose mode is
// enabled. Tracing goes to stderr so stdout stays byte-compatible with the
// reference output.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}
