package summary

// Shape classification labels. English per the output contract; the kurtosis
// wording keeps the inherited orientation (above the threshold reads
// Platykurtic) rather than the textbook one.
const (
	LabelSymmetric = "Symmetric"
	LabelRightSkew = "Right/positive skew"
	LabelLeftSkew  = "Left/negative skew"

	IntensityModerate = "MODERATE"
	IntensityStrong   = "STRONG"

	LabelMesokurtic  = "Mesokurtic"
	LabelPlatykurtic = "Platykurtic"
	LabelLeptokurtic = "Leptokurtic"
)

// KurtosisThreshold is the reference point the non-excess kurtosis is
// classified against. Inherited verbatim from the reference behavior even
// though it sits below the theoretical minimum of the fourth standardized
// moment; see docs/methodology.md.
const KurtosisThreshold = 0.263

// ClassifySkewness labels a Pearson skewness coefficient that has already
// been rounded to 3 decimals. The intensity rule is deliberately
// non-monotonic: MODERATE only inside 0.15 < |v| < 1, STRONG everywhere
// else, so a near-zero skew of 0.1 is labeled STRONG.
func ClassifySkewness(rounded float64) string {
	if rounded == 0 {
		return LabelSymmetric
	}
	direction := LabelRightSkew
	if rounded < 0 {
		direction = LabelLeftSkew
	}
	return direction + " - " + skewIntensity(rounded)
}

func skewIntensity(v float64) string {
	abs := v
	if abs < 0 {
		abs = -abs
	}
	if 0.15 < abs && abs < 1 {
		return IntensityModerate
	}
	return IntensityStrong
}

// ClassifyKurtosis labels a non-excess kurtosis that has already been
// rounded to 3 decimals.
func ClassifyKurtosis(rounded float64) string {
	switch {
	case rounded == KurtosisThreshold:
		return LabelMesokurtic
	case rounded > KurtosisThreshold:
		return LabelPlatykurtic
	default:
		return LabelLeptokurtic
	}
}
