// Command cli summarizes a comma-separated sample from the command line and
// optionally writes the distribution plot to a PNG file. It also answers
// the sample-size planning formula.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"statclass/domain/sample"
	"statclass/internal/describe"
	"statclass/internal/distplot"
)

func main() {
	values := flag.String("values", "", "comma-separated sample, e.g. \"1,2,2,3,4\"")
	classify := flag.Bool("classify", true, "annotate skewness and kurtosis with qualitative labels")
	plotPath := flag.String("plot", "", "write the distribution plot PNG to this path")

	planMode := flag.Bool("samplesize", false, "compute a planning sample size instead of a summary")
	confidence := flag.Float64("confidence", 1.96, "confidence z-score for -samplesize")
	proportion := flag.Float64("p", 0.5, "expected proportion for -samplesize")
	marginErr := flag.Float64("error", 0.05, "tolerated sampling error for -samplesize")
	population := flag.Float64("population", 0, "population size for -samplesize")
	flag.Parse()

	if *planMode {
		n, err := describe.SampleSize(*confidence, *proportion, *marginErr, *population)
		if err != nil {
			fail(err)
		}
		fmt.Printf("Required sample size: %d\n", n)
		return
	}

	raw := *values
	if raw == "" && flag.NArg() > 0 {
		raw = flag.Arg(0)
	}
	smpl, err := sample.Parse(raw)
	if err != nil {
		fail(err)
	}

	rec, err := describe.Summarize(smpl, *classify)
	if err != nil {
		fail(err)
	}

	mode := "none"
	if rec.Mode != nil {
		mode = strconv.FormatFloat(*rec.Mode, 'g', -1, 64)
	}
	fmt.Printf("Mean: %s\n", strconv.FormatFloat(rec.Mean, 'g', -1, 64))
	fmt.Printf("Median: %s\n", strconv.FormatFloat(rec.Median, 'g', -1, 64))
	fmt.Printf("Mode: %s\n", mode)
	fmt.Printf("Standard deviation: %s\n", strconv.FormatFloat(rec.StdDev, 'g', -1, 64))
	fmt.Printf("Pearson: %s\n", rec.Skewness)
	fmt.Printf("Kurtosis: %s\n", rec.Kurtosis)

	if *plotPath != "" {
		if err := distplot.RenderToFile(smpl, distplot.DefaultOptions(), *plotPath); err != nil {
			fail(err)
		}
		fmt.Printf("Data distribution written to %s\n", *plotPath)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
