// Package summary defines the descriptive-statistics result record and the
// qualitative shape classification applied to skewness and kurtosis.
package summary

import (
	"encoding/json"
	"strconv"
)

// Stat is a statistic that is either a plain number or a number annotated
// with a qualitative label. Keeping the two cases in one tagged value avoids
// the "number or string depending on a flag" shape of loosely typed result
// maps.
type Stat struct {
	Value   float64
	Label   string
	Labeled bool
}

// Numeric returns an unannotated statistic
func Numeric(value float64) Stat {
	return Stat{Value: value}
}

// Classified returns a statistic annotated with a qualitative label
func Classified(value float64, label string) Stat {
	return Stat{Value: value, Label: label, Labeled: true}
}

// String renders "<value> - <label>" when labeled, the plain value otherwise
func (s Stat) String() string {
	v := strconv.FormatFloat(s.Value, 'g', -1, 64)
	if !s.Labeled {
		return v
	}
	return v + " - " + s.Label
}

// MarshalJSON emits the plain number when unlabeled and the annotated
// "<value> - <label>" string when labeled, mirroring the display format.
func (s Stat) MarshalJSON() ([]byte, error) {
	if !s.Labeled {
		return json.Marshal(s.Value)
	}
	return json.Marshal(s.String())
}

// Record is the summary of one sample. Mode is nil when no value repeats.
type Record struct {
	Mean     float64  `json:"mean"`
	Median   float64  `json:"median"`
	Mode     *float64 `json:"mode"`
	StdDev   float64  `json:"std_dev"`
	Skewness Stat     `json:"pearson_skewness"`
	Kurtosis Stat     `json:"kurtosis"`
}
