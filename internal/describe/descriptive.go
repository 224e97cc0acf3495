// Package describe implements the descriptive-statistics core: central
// tendency, dispersion and shape measures over a single sample, plus the
// qualitative summary record built from them.
//
// Every function is a pure function of its sample argument. Aggregation
// primitives come from montanaflynn/stats; the moment-based shape measures
// are computed directly so the population (denominator N, no bias
// correction) semantics stay explicit.
package describe

import (
	"math"

	"github.com/montanaflynn/stats"

	"statclass/domain/sample"
	"statclass/domain/summary"
	"statclass/internal/errors"
)

// Mean returns the arithmetic mean of the sample
func Mean(s sample.Sample) (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	m, err := stats.Mean(s.Values())
	if err != nil {
		return 0, errors.Wrap(err, "mean computation failed")
	}
	return m, nil
}

// Median returns the middle order statistic, averaging the two central
// values for an even-length sample
func Median(s sample.Sample) (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	m, err := stats.Median(s.Values())
	if err != nil {
		return 0, errors.Wrap(err, "median computation failed")
	}
	return m, nil
}

// Mode returns the most frequent value. When several values share the
// maximum frequency the winner is the first one to reach that frequency
// scanning the sample in insertion order. ok is false when no value occurs
// more than once; there is no numeric default for a mode-less sample.
func Mode(s sample.Sample) (mode float64, ok bool, err error) {
	if err := s.Validate(); err != nil {
		return 0, false, err
	}

	counts := make(map[float64]int, len(s))
	best := 0
	for _, v := range s {
		counts[v]++
		if counts[v] > best {
			best = counts[v]
			mode = v
		}
	}
	if best < 2 {
		return 0, false, nil
	}
	return mode, true, nil
}

// StdDev returns the population standard deviation (denominator N), rounded
// to 4 decimal digits
func StdDev(s sample.Sample) (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	sd, err := stats.StandardDeviationPopulation(s.Values())
	if err != nil {
		return 0, errors.Wrap(err, "standard deviation computation failed")
	}
	rounded, err := stats.Round(sd, 4)
	if err != nil {
		return 0, errors.Wrap(err, "standard deviation rounding failed")
	}
	return rounded, nil
}

// PearsonSkewness returns 3*(mean - median) / stddev, the quick asymmetry
// estimator. The denominator is the rounded population standard deviation,
// chained exactly as the summary output reports it. A constant sample has
// zero deviation and fails with DEGENERATE_SAMPLE rather than producing
// Inf or NaN.
func PearsonSkewness(s sample.Sample) (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	sd, err := StdDev(s)
	if err != nil {
		return 0, err
	}
	if sd == 0 {
		return 0, errors.DegenerateSample("skewness is undefined for a zero-deviation sample")
	}
	mean, err := Mean(s)
	if err != nil {
		return 0, err
	}
	median, err := Median(s)
	if err != nil {
		return 0, err
	}
	return 3 * (mean - median) / sd, nil
}

// Kurtosis returns the non-excess kurtosis: the fourth standardized moment
// m4/m2^2 with population moments and no bias correction, rounded to
// 3 decimal digits. The normal-distribution reference under this convention
// is 3 (nothing is subtracted). Zero variance fails with DEGENERATE_SAMPLE.
func Kurtosis(s sample.Sample) (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	mean, err := stats.Mean(s.Values())
	if err != nil {
		return 0, errors.Wrap(err, "kurtosis computation failed")
	}

	n := float64(len(s))
	var m2, m4 float64
	for _, v := range s {
		d := v - mean
		d2 := d * d
		m2 += d2
		m4 += d2 * d2
	}
	m2 /= n
	m4 /= n
	if m2 == 0 {
		return 0, errors.DegenerateSample("kurtosis is undefined for a zero-variance sample")
	}

	rounded, err := stats.Round(m4/(m2*m2), 3)
	if err != nil {
		return 0, errors.Wrap(err, "kurtosis rounding failed")
	}
	return rounded, nil
}

// Summarize computes the full summary record for a sample. When classify is
// true the skewness and kurtosis values carry qualitative labels derived
// from their 3-decimal rounded values; when false they stay plain numbers.
// An empty sample fails with EMPTY_SAMPLE before anything is computed, and
// a constant sample fails with DEGENERATE_SAMPLE through the skewness term.
func Summarize(s sample.Sample, classify bool) (summary.Record, error) {
	var rec summary.Record
	if err := s.Validate(); err != nil {
		return rec, err
	}

	mean, err := Mean(s)
	if err != nil {
		return rec, err
	}
	median, err := Median(s)
	if err != nil {
		return rec, err
	}
	sd, err := StdDev(s)
	if err != nil {
		return rec, err
	}
	skewRaw, err := PearsonSkewness(s)
	if err != nil {
		return rec, err
	}
	skew, err := stats.Round(skewRaw, 3)
	if err != nil {
		return rec, errors.Wrap(err, "skewness rounding failed")
	}
	// stats.Round yields -0 for tiny negatives; normalize so the value
	// displays as plain zero.
	if skew == 0 {
		skew = math.Abs(skew)
	}
	kurt, err := Kurtosis(s)
	if err != nil {
		return rec, err
	}

	rec.Mean = mean
	rec.Median = median
	rec.StdDev = sd
	if mode, ok, err := Mode(s); err != nil {
		return rec, err
	} else if ok {
		rec.Mode = &mode
	}

	if classify {
		rec.Skewness = summary.Classified(skew, summary.ClassifySkewness(skew))
		rec.Kurtosis = summary.Classified(kurt, summary.ClassifyKurtosis(kurt))
	} else {
		rec.Skewness = summary.Numeric(skew)
		rec.Kurtosis = summary.Numeric(kurt)
	}
	return rec, nil
}
