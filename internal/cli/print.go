// Package cli — print.go implements the -p LENGTH path: validate the
// requested length, print the formatted reference, and terminate without
// requiring YOUR_PI.
package cli

import (
	"fmt"

	"github.com/docdyhr/pigame/internal/model"
	"github.com/docdyhr/pigame/internal/pi"
)

// formatReference resolves a raw -p argument and returns the grouped
// reference string for it.
func formatReference(raw string) (string, int, error) {
	length, err := pi.ResolveExplicit(raw)
	if err != nil {
		return "", 0, model.WrapCLIError(model.ExitUsageError,
			"Invalid input - NOT a valid integer or too large", err)
	}

	reference, err := pi.Digits(length)
	if err != nil {
		// Unreachable: ResolveExplicit already bounds the length.
		return "", 0, model.WrapCLIError(model.ExitUsageError, "Invalid input", err)
	}

	return pi.Format(reference), length, nil
}

// runPrint handles the -p flag path on the root command.
func runPrint(raw string, verbose bool) error {
	formatted, length, err := formatReference(raw)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Printf("π with %d decimals:\t%s\n", length, formatted)
	} else {
		fmt.Println(formatted)
	}
	return nil
}
