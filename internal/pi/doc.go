// Package pi implements the digit-matching and presentation engine for
// pigame.
//
// The engine works on plain ASCII strings of the form "3." followed by
// decimal digits. Its pieces are:
//
//   - Digits: the reference provider, slicing an embedded table of 5001
//     verified decimal digits (table.go).
//   - IsValid / ResolveExplicit / ResolveFromInput: input validation and
//     comparison-length resolution for the two entry paths (-p flag vs.
//     positional candidate).
//   - Format: readable rendering with a space after every 5th fractional
//     digit.
//   - Diff: a single left-to-right pass that formats the candidate and
//     marks every mismatched position, returning the rendered string and
//     the mismatch count.
//   - Classify: the final verdict from exact full-string equality.
//
// Everything here is pure: rendering to a terminal is the CLI layer's
// job, so Diff returns marked-up text as data instead of printing.
package pi
