// Package cli — evaluate.go implements the evaluation flow behind the
// root command: resolve the comparison length from the candidate, fetch
// the reference, diff, and classify. The flow builds its entire output as
// a string so it can be tested without capturing stdout.
package cli

import (
	"fmt"
	"strings"

	"github.com/docdyhr/pigame/internal/model"
	"github.com/docdyhr/pigame/internal/pi"
)

// evaluation holds everything the evaluation flow prints.
type evaluation struct {
	// Length is the number of decimals compared.
	Length int

	// Formatted is the reference rendered with 5-digit grouping.
	Formatted string

	// Rendered is the candidate with mismatches marked, same grouping.
	Rendered string

	// Errors is the total mismatch count.
	Errors int

	// Verdict is the final classification.
	Verdict model.Verdict
}

// evaluate compares a validated candidate against the reference at the
// length implied by the candidate itself. verbose selects the verdict set.
func evaluate(yourPi string, colorblind, verbose bool) (evaluation, error) {
	length := pi.ResolveFromInput(yourPi)

	reference, err := pi.Digits(length)
	if err != nil {
		// Unreachable: ResolveFromInput clamps into the valid range.
		return evaluation{}, model.WrapCLIError(model.ExitUsageError, "Invalid input", err)
	}

	rendered, errorCount := pi.Diff(yourPi, reference, pi.MarkerFor(colorblind))
	verdict := pi.Classify(yourPi, reference, length, verbose)

	return evaluation{
		Length:    length,
		Formatted: pi.Format(reference),
		Rendered:  rendered,
		Errors:    errorCount,
		Verdict:   verdict,
	}, nil
}

// render assembles the output block for the selected mode.
//
// Verbose:
//
//	π with N decimals:	3.14159 26535
//	Your version of π:	3. 14159 26535
//	Number of errors: 0
//	Perfect!
//
// Terse: the formatted reference, the diffed candidate, the verdict.
func (e evaluation) render(verbose bool) string {
	var b strings.Builder

	if verbose {
		fmt.Fprintf(&b, "π with %d decimals:\t%s\n", e.Length, e.Formatted)
		fmt.Fprintf(&b, "Your version of π:\t%s\n", e.Rendered)
		fmt.Fprintf(&b, "Number of errors: %d\n", e.Errors)
	} else {
		fmt.Fprintf(&b, "%s\n", e.Formatted)
		fmt.Fprintf(&b, "%s\n", e.Rendered)
	}

	fmt.Fprintf(&b, "%s\n", e.Verdict)
	return b.String()
}
