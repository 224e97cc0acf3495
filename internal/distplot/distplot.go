// Package distplot renders the three distribution panels for a sample:
// Gaussian kernel density, histogram and box plot. The panels are composed
// into a single PNG; the collective "Data distribution" heading is drawn by
// the caller, which owns the render target (inline web image or a file on
// disk).
package distplot

import (
	"bytes"
	"image/color"
	"math"
	"os"

	"golang.org/x/sync/errgroup"
	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"statclass/domain/sample"
	"statclass/internal/errors"
)

// Options controls panel geometry and resolution
type Options struct {
	PanelWidth  float64 // points
	PanelHeight float64 // points
	Bins        int     // histogram bins, 0 = Sturges' rule
	KDEPoints   int     // density grid resolution
}

// DefaultOptions returns the geometry used when the caller has no config
func DefaultOptions() Options {
	return Options{
		PanelWidth:  320,
		PanelHeight: 260,
		Bins:        0,
		KDEPoints:   200,
	}
}

var panelColor = color.RGBA{R: 70, G: 120, B: 180, A: 255}

// Render draws the three panels side by side and returns the encoded PNG.
// The panels are built concurrently; an empty sample fails with
// EMPTY_SAMPLE before any drawing starts.
func Render(s sample.Sample, opts Options) ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	var kdePanel, histPanel, boxPanel *gplot.Plot
	g := new(errgroup.Group)
	g.Go(func() error {
		p, err := buildKDEPanel(s, opts.KDEPoints)
		kdePanel = p
		return err
	})
	g.Go(func() error {
		p, err := buildHistPanel(s, opts.Bins)
		histPanel = p
		return err
	})
	g.Go(func() error {
		p, err := buildBoxPanel(s)
		boxPanel = p
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	width := vg.Points(opts.PanelWidth)
	height := vg.Points(opts.PanelHeight)
	img := vgimg.New(3*width, height)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      1,
		Cols:      3,
		PadX:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	panels := [][]*gplot.Plot{{kdePanel, histPanel, boxPanel}}
	canvases := gplot.Align(panels, tiles, dc)
	for col, panel := range panels[0] {
		panel.Draw(canvases[0][col])
	}

	var buf bytes.Buffer
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, "png encoding failed")
	}
	return buf.Bytes(), nil
}

// RenderToFile writes the combined panel PNG to the given path (the CLI
// render target)
func RenderToFile(s sample.Sample, opts Options, path string) error {
	data, err := Render(s, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing plot to %s failed", path)
	}
	return nil
}

func buildKDEPanel(s sample.Sample, points int) (*gplot.Plot, error) {
	curve, err := KDE(s, points)
	if err != nil {
		return nil, err
	}

	xys := make(plotter.XYs, len(curve))
	for i, pt := range curve {
		xys[i].X = pt.X
		xys[i].Y = pt.Density
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, errors.Wrap(err, "density curve construction failed")
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = panelColor

	p := gplot.New()
	p.Title.Text = "Kernel density"
	p.Y.Label.Text = "Probability"
	p.Add(plotter.NewGrid(), line)
	return p, nil
}

func buildHistPanel(s sample.Sample, bins int) (*gplot.Plot, error) {
	if bins <= 0 {
		bins = sturgesBins(len(s))
	}
	hist, err := plotter.NewHist(plotter.Values(s.Values()), bins)
	if err != nil {
		return nil, errors.Wrap(err, "histogram construction failed")
	}
	hist.FillColor = panelColor

	p := gplot.New()
	p.Title.Text = "Histogram"
	p.Y.Label.Text = "Occurrences"
	p.Add(plotter.NewGrid(), hist)
	return p, nil
}

func buildBoxPanel(s sample.Sample) (*gplot.Plot, error) {
	box, err := plotter.NewBoxPlot(vg.Points(40), 0, plotter.Values(s.Values()))
	if err != nil {
		return nil, errors.Wrap(err, "box plot construction failed")
	}

	p := gplot.New()
	p.Title.Text = "Box plot"
	p.Y.Label.Text = "Values"
	p.Add(box)
	p.HideX()
	return p, nil
}

// sturgesBins picks a histogram bin count from the sample size
func sturgesBins(n int) int {
	if n <= 1 {
		return 1
	}
	return int(math.Ceil(math.Log2(float64(n)))) + 1
}
