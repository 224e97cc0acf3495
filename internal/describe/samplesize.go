package describe

import (
	"math"

	"statclass/internal/errors"
)

// SampleSize returns the number of observations to collect for an
// experiment, using the finite-population correction:
//
//	n0 = confidence^2 * p * (1-p) / marginErr^2
//	n  = n0 / (1 + n0/population)
//
// confidence is the z-score of the desired confidence level, p the expected
// proportion split (0.5 and 0.8 are the usual classroom choices), marginErr
// the tolerated sampling error and population the population size. The
// result is rounded half-to-even. Inputs are otherwise taken as given; a
// zero marginErr or population fails with DIVISION_BY_ZERO.
func SampleSize(confidence, p, marginErr, population float64) (int, error) {
	if marginErr == 0 {
		return 0, errors.DivisionByZero("margin of error")
	}
	if population == 0 {
		return 0, errors.DivisionByZero("population size")
	}

	n0 := confidence * confidence * p * (1 - p) / (marginErr * marginErr)
	n := n0 / (1 + n0/population)
	return int(math.RoundToEven(n)), nil
}
