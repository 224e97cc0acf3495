package describe

import (
	"github.com/montanaflynn/stats"

	"statclass/domain/sample"
	"statclass/internal/errors"
)

// Spread captures the range and quartile structure of a sample. It backs the
// detail block next to the summary in the web UI and the outlier note under
// the box plot.
type Spread struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Q1       float64 `json:"q1"`
	Q3       float64 `json:"q3"`
	IQR      float64 `json:"iqr"`
	Outliers int     `json:"outliers"`
}

// Describe computes the spread of a sample. Outliers are counted with the
// usual 1.5*IQR fences.
func Describe(s sample.Sample) (Spread, error) {
	var sp Spread
	if err := s.Validate(); err != nil {
		return sp, err
	}

	var err error
	if sp.Min, err = stats.Min(s.Values()); err != nil {
		return sp, errors.Wrap(err, "min computation failed")
	}
	if sp.Max, err = stats.Max(s.Values()); err != nil {
		return sp, errors.Wrap(err, "max computation failed")
	}
	if sp.Q1, err = stats.Percentile(s.Values(), 25); err != nil {
		return sp, errors.Wrap(err, "first quartile computation failed")
	}
	if sp.Q3, err = stats.Percentile(s.Values(), 75); err != nil {
		return sp, errors.Wrap(err, "third quartile computation failed")
	}
	sp.IQR = sp.Q3 - sp.Q1

	lower := sp.Q1 - 1.5*sp.IQR
	upper := sp.Q3 + 1.5*sp.IQR
	for _, v := range s {
		if v < lower || v > upper {
			sp.Outliers++
		}
	}
	return sp, nil
}
