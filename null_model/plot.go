package null_model

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// WriteHistogram plots the per-trial longest-ORF lengths with the threshold marked.
// The image format follows the extension of path (png, svg, pdf, ...).
func WriteHistogram(lengths []int, threshold int, path string) error {
	if len(lengths) == 0 {
		return fmt.Errorf("no trial lengths to plot")
	}

	p := plot.New()
	p.Title.Text = "Longest ORF per Shuffled Sequence"
	p.X.Label.Text = "Longest ORF (nt)"
	p.Y.Label.Text = "Trials"

	values := make(plotter.Values, len(lengths))
	for i, l := range lengths {
		values[i] = float64(l)
	}

	hist, err := plotter.NewHist(values, 0)
	if err != nil {
		return err
	}
	hist.FillColor = color.RGBA{R: 50, G: 100, B: 200, A: 255}
	p.Add(hist)

	peak := 1.0
	for _, bin := range hist.Bins {
		if bin.Weight > peak {
			peak = bin.Weight
		}
	}

	cutoff, err := plotter.NewLine(plotter.XYs{
		{X: float64(threshold), Y: 0},
		{X: float64(threshold), Y: peak},
	})
	if err != nil {
		return err
	}
	cutoff.LineStyle.Color = color.RGBA{R: 200, G: 50, B: 50, A: 255}
	cutoff.LineStyle.Width = vg.Points(2)
	cutoff.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	p.Add(cutoff)
	p.Legend.Add(fmt.Sprintf("threshold = %d nt", threshold), cutoff)
	p.Legend.Top = true

	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}
