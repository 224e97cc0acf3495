package distplot

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"statclass/domain/sample"
	"statclass/internal/errors"
)

// DensityPoint is one point of an estimated probability density curve
type DensityPoint struct {
	X       float64
	Density float64
}

// KDE estimates the probability density of the sample with a Gaussian
// kernel on an evenly spaced grid of the given resolution. Bandwidth
// follows Scott's rule, sigma * n^(-1/5); a zero-deviation sample falls
// back to unit bandwidth so the curve degrades to a single bump instead of
// a division by zero.
func KDE(s sample.Sample, points int) ([]DensityPoint, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if points < 2 {
		return nil, errors.InvalidInput("density grid needs at least 2 points")
	}

	sd, err := stats.StandardDeviationPopulation(s.Values())
	if err != nil {
		return nil, errors.Wrap(err, "bandwidth estimation failed")
	}
	n := float64(len(s))
	bandwidth := sd * math.Pow(n, -0.2)
	if bandwidth == 0 {
		bandwidth = 1
	}

	min, err := stats.Min(s.Values())
	if err != nil {
		return nil, errors.Wrap(err, "density grid bounds failed")
	}
	max, err := stats.Max(s.Values())
	if err != nil {
		return nil, errors.Wrap(err, "density grid bounds failed")
	}

	// Extend the grid three bandwidths past the data so the tails reach zero.
	lo := min - 3*bandwidth
	hi := max + 3*bandwidth
	step := (hi - lo) / float64(points-1)

	curve := make([]DensityPoint, points)
	for i := range curve {
		x := lo + float64(i)*step
		var density float64
		for _, v := range s {
			kernel := distuv.Normal{Mu: v, Sigma: bandwidth}
			density += kernel.Prob(x)
		}
		curve[i] = DensityPoint{X: x, Density: density / n}
	}
	return curve, nil
}
