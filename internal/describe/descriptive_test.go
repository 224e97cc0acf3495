package describe

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"statclass/domain/sample"
	"statclass/internal/errors"
)

func TestSummarize_KnownSample(t *testing.T) {
	smpl := sample.Sample{1, 2, 2, 3, 4}

	rec, err := Summarize(smpl, true)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if rec.Mean != 2.4 {
		t.Errorf("mean: got %v, want 2.4", rec.Mean)
	}
	if rec.Median != 2 {
		t.Errorf("median: got %v, want 2", rec.Median)
	}
	if rec.Mode == nil || *rec.Mode != 2 {
		t.Errorf("mode: got %v, want 2", rec.Mode)
	}
	// Population std dev of the sample is sqrt(1.04), rounded to 4 digits.
	if rec.StdDev != 1.0198 {
		t.Errorf("std dev: got %v, want 1.0198", rec.StdDev)
	}
	if rec.Skewness.Value != 1.177 {
		t.Errorf("skewness: got %v, want 1.177", rec.Skewness.Value)
	}
	if got := rec.Skewness.String(); got != "1.177 - Right/positive skew - STRONG" {
		t.Errorf("skewness label: got %q", got)
	}
	if rec.Kurtosis.Value != 1.956 {
		t.Errorf("kurtosis: got %v, want 1.956", rec.Kurtosis.Value)
	}
	if got := rec.Kurtosis.String(); got != "1.956 - Platykurtic" {
		t.Errorf("kurtosis label: got %q", got)
	}
}

func TestSummarize_SymmetricSample(t *testing.T) {
	rec, err := Summarize(sample.Sample{1, 2, 3, 4, 5}, true)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if rec.Skewness.Value != 0 {
		t.Errorf("skewness: got %v, want 0", rec.Skewness.Value)
	}
	if rec.Skewness.Label != "Symmetric" {
		t.Errorf("skewness label: got %q, want Symmetric", rec.Skewness.Label)
	}
	if rec.Mode != nil {
		t.Errorf("mode: got %v, want absent", *rec.Mode)
	}
	if rec.StdDev != 1.4142 {
		t.Errorf("std dev: got %v, want 1.4142", rec.StdDev)
	}
	if rec.Kurtosis.Value != 1.7 {
		t.Errorf("kurtosis: got %v, want 1.7", rec.Kurtosis.Value)
	}
}

func TestSummarize_EmptySample(t *testing.T) {
	for _, classify := range []bool{true, false} {
		_, err := Summarize(sample.Sample{}, classify)
		if !errors.HasCode(err, errors.CodeEmptySample) {
			t.Errorf("classify=%t: got %v, want EMPTY_SAMPLE", classify, err)
		}
	}
}

func TestSummarize_ConstantSample(t *testing.T) {
	smpl := sample.Sample{7, 7, 7, 7}

	if mean, _ := Mean(smpl); mean != 7 {
		t.Errorf("mean: got %v, want 7", mean)
	}
	if median, _ := Median(smpl); median != 7 {
		t.Errorf("median: got %v, want 7", median)
	}
	if mode, ok, _ := Mode(smpl); !ok || mode != 7 {
		t.Errorf("mode: got %v (ok=%t), want 7", mode, ok)
	}
	if sd, _ := StdDev(smpl); sd != 0 {
		t.Errorf("std dev: got %v, want 0", sd)
	}

	if _, err := PearsonSkewness(smpl); !errors.HasCode(err, errors.CodeDegenerateSample) {
		t.Errorf("skewness: got %v, want DEGENERATE_SAMPLE", err)
	}
	if _, err := Kurtosis(smpl); !errors.HasCode(err, errors.CodeDegenerateSample) {
		t.Errorf("kurtosis: got %v, want DEGENERATE_SAMPLE", err)
	}
	if _, err := Summarize(smpl, true); !errors.HasCode(err, errors.CodeDegenerateSample) {
		t.Errorf("summarize: got %v, want DEGENERATE_SAMPLE", err)
	}
}

func TestSummarize_Idempotent(t *testing.T) {
	smpl := sample.Sample{2.5, 3.5, 2.5, 9, 0.5}

	first, err := Summarize(smpl, true)
	if err != nil {
		t.Fatalf("first Summarize failed: %v", err)
	}
	second, err := Summarize(smpl, true)
	if err != nil {
		t.Fatalf("second Summarize failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("summaries differ: %+v vs %+v", first, second)
	}
}

func TestSummarize_UnclassifiedJSON(t *testing.T) {
	rec, err := Summarize(sample.Sample{1, 2, 3}, false)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	payload := string(data)

	if !strings.Contains(payload, `"mode":null`) {
		t.Errorf("mode should marshal as null: %s", payload)
	}
	if !strings.Contains(payload, `"pearson_skewness":0`) {
		t.Errorf("unclassified skewness should marshal as a number: %s", payload)
	}
	if strings.Contains(payload, "Platykurtic") {
		t.Errorf("classify=false must not label kurtosis: %s", payload)
	}
}

func TestMode_TieBreak(t *testing.T) {
	tests := []struct {
		name   string
		sample sample.Sample
		want   float64
		wantOK bool
	}{
		{"single winner", sample.Sample{1, 2, 2, 3, 4}, 2, true},
		{"first to reach max frequency wins", sample.Sample{3, 1, 3, 1, 2}, 3, true},
		{"all-tied pairs keep the earliest", sample.Sample{1, 1, 2, 2}, 1, true},
		{"all distinct has no mode", sample.Sample{1, 2, 3}, 0, false},
		{"negative values", sample.Sample{-1, -1, 0}, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := Mode(tt.sample)
			if err != nil {
				t.Fatalf("Mode failed: %v", err)
			}
			if ok != tt.wantOK {
				t.Fatalf("ok: got %t, want %t", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("mode: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMedian_EvenLength(t *testing.T) {
	median, err := Median(sample.Sample{4, 1, 3, 2})
	if err != nil {
		t.Fatalf("Median failed: %v", err)
	}
	if median != 2.5 {
		t.Errorf("median: got %v, want 2.5", median)
	}
}

func TestKurtosis_NonExcessConvention(t *testing.T) {
	// Discrete uniform over 1..n has non-excess kurtosis
	// 3(3n^2-7)/(5(n^2-1)); for n=100 that is 1.79976, rounding to 1.8.
	// Under an excess convention this would land near -1.2 instead, so the
	// value pins the convention.
	smpl := make(sample.Sample, 0, 100)
	for i := 1; i <= 100; i++ {
		smpl = append(smpl, float64(i))
	}

	k, err := Kurtosis(smpl)
	if err != nil {
		t.Fatalf("Kurtosis failed: %v", err)
	}
	if k != 1.8 {
		t.Errorf("kurtosis of uniform sample: got %v, want 1.8", k)
	}
}

func TestDescribe_Spread(t *testing.T) {
	smpl := sample.Sample{1, 2, 3, 4, 100}

	spread, err := Describe(smpl)
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	if spread.Min != 1 || spread.Max != 100 {
		t.Errorf("range: got [%v, %v], want [1, 100]", spread.Min, spread.Max)
	}
	if spread.Outliers != 1 {
		t.Errorf("outliers: got %d, want 1", spread.Outliers)
	}

	if _, err := Describe(sample.Sample{}); !errors.HasCode(err, errors.CodeEmptySample) {
		t.Errorf("empty sample: got %v, want EMPTY_SAMPLE", err)
	}
}
