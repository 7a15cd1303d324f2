package pi

import "github.com/docdyhr/pigame/internal/model"

// Classify turns the full-string comparison into a verdict. Equality is
// exact: a candidate that is a correct prefix of a longer reference does
// not match. The length parameter only distinguishes Perfect from WellDone
// in verbose mode.
func Classify(candidate, reference string, length int, verbose bool) model.Verdict {
	equal := candidate == reference

	if verbose {
		switch {
		case equal && length >= 15:
			return model.VerdictPerfect
		case equal:
			return model.VerdictWellDone
		default:
			return model.VerdictCanDoBetter
		}
	}

	if equal {
		return model.VerdictMatch
	}
	return model.VerdictNoMatch
}
