// Package sample defines the ordered numeric sample every statistic is
// computed from, plus the thin parser that builds one from raw text input.
package sample

import (
	"strconv"
	"strings"

	"statclass/internal/errors"
)

// Sample is an ordered sequence of observations. Duplicates and insertion
// order are preserved: order never changes a statistic, but mode tie-breaking
// and plotting read the values as given.
type Sample []float64

// Parse builds a Sample from a comma-separated list of decimal numbers.
// Whitespace anywhere in the input is discarded before splitting, so
// "1, 2,3 " and "1,2,3" parse identically. A token that is not a valid
// number fails with PARSE_ERROR; an input with no values fails with
// EMPTY_SAMPLE.
func Parse(raw string) (Sample, error) {
	cleaned := strings.Join(strings.Fields(raw), "")
	if cleaned == "" {
		return nil, errors.EmptySample()
	}

	tokens := strings.Split(cleaned, ",")
	values := make(Sample, 0, len(tokens))
	for _, token := range tokens {
		if token == "" {
			return nil, errors.ParseError(token)
		}
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, errors.ParseError(token)
		}
		values = append(values, v)
	}
	return values, nil
}

// Validate fails with EMPTY_SAMPLE when the sample has no observations.
func (s Sample) Validate() error {
	if len(s) == 0 {
		return errors.EmptySample()
	}
	return nil
}

// Values returns the observations as a plain slice for aggregation libraries.
func (s Sample) Values() []float64 {
	return []float64(s)
}
