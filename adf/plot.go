package adf

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Plot writes the histogram to filename as an image; the format is taken from
//the extension (.png, .pdf, .svg and friends, whatever gonum/plot supports).
//Each bar sits on the center of its bin.
func (D *Data) Plot(title, filename string) error {
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = "theta / rad"
	p.Y.Label.Text = "frequency"
	p.Add(plotter.NewGrid())
	pts := make(plotter.XYs, len(D.histo))
	for i := range D.histo {
		pts[i].X = (D.dividers[i] + D.dividers[i+1]) / 2
		pts[i].Y = D.histo[i]
	}
	h, err := plotter.NewHistogram(pts, len(D.histo))
	if err != nil {
		return &Error{fmt.Sprintf("adf.Plot: %v", err), nil}
	}
	p.Add(h)
	if err := p.Save(15*vg.Centimeter, 10*vg.Centimeter, filename); err != nil {
		return &Error{fmt.Sprintf("adf.Plot: %v", err), nil}
	}
	return nil
}
