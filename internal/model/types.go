// Package model defines the domain types for the pigame CLI.
//
// All entities are simple per-invocation value types: a verdict enum for
// comparison outcomes, CLI exit codes, and a CLIError type that carries an
// exit code from the core layers up to the command dispatcher. Nothing in
// this package persists or mutates after creation.
package model

import "fmt"

// Verdict is the outcome of comparing a candidate digit string against the
// reference. Terse mode uses Match/NoMatch; verbose mode uses the richer
// Perfect/WellDone/CanDoBetter wording.
type Verdict string

const (
	// VerdictMatch indicates exact equality in terse mode.
	VerdictMatch Verdict = "Match"

	// VerdictNoMatch indicates any inequality in terse mode.
	VerdictNoMatch Verdict = "No match"

	// VerdictPerfect indicates exact equality over at least 15 decimals
	// in verbose mode.
	VerdictPerfect Verdict = "Perfect!"

	// VerdictWellDone indicates exact equality over fewer than 15 decimals
	// in verbose mode.
	VerdictWellDone Verdict = "Well done."

	// VerdictCanDoBetter indicates any inequality in verbose mode.
	VerdictCanDoBetter Verdict = "You can do better!"
)

// String returns the verdict exactly as it is printed to the player.
// This method satisfies the fmt.Stringer interface.
func (v Verdict) String() string {
	return string(v)
}

// IsValid checks whether the Verdict value is one of the predefined
// verdicts.
func (v Verdict) IsValid() bool {
	switch v {
	case VerdictMatch, VerdictNoMatch, VerdictPerfect, VerdictWellDone, VerdictCanDoBetter:
		return true
	default:
		return false
	}
}

// Won reports whether the verdict represents an exact match, regardless of
// output mode.
func (v Verdict) Won() bool {
	switch v {
	case VerdictMatch, VerdictPerfect, VerdictWellDone:
		return true
	default:
		return false
	}
}

// ExitCode defines the CLI exit codes. The surface is deliberately small:
// the tool is single-shot, so every failure is terminal and maps to 1.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully. Also used
	// for -h, -V, and the easter-egg informational output.
	ExitSuccess ExitCode = 0

	// ExitUsageError indicates invalid input, an invalid length, or a
	// malformed command line.
	ExitUsageError ExitCode = 1
)

// CLIError is an error type that carries an exit code. The CLI layer
// translates domain errors into process exit codes through it.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
