package main

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/thinfilm/tmm"
)

// plotSpectra draws one reflectance curve per angle.
func plotSpectra(path string, res *tmm.Result) error {
	p := plot.New()
	p.Title.Text = "Reflectance"
	p.X.Label.Text = "wavelength"
	p.Y.Label.Text = "R"
	p.Add(plotter.NewGrid())

	for j, ang := range res.Angles {
		pts := make(plotter.XYs, len(res.Wavelengths))
		for i, lam := range res.Wavelengths {
			pts[i].X = lam
			pts[i].Y = res.R[i][j]
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(j)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("%g°", ang), line)
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// fieldGrid adapts the intensity profile of the first angle to the heat
// map interface: depth along X, wavelength along Y.
type fieldGrid struct {
	res *tmm.Result
}

func (g fieldGrid) Dims() (int, int) { return len(g.res.Depth), len(g.res.Wavelengths) }
func (g fieldGrid) X(c int) float64  { return g.res.Depth[c] }
func (g fieldGrid) Y(r int) float64  { return g.res.Wavelengths[r] }
func (g fieldGrid) Z(c, r int) float64 {
	return g.res.Field[r][0][c]
}

// plotFieldMap draws |E|² inside the stack as a depth × wavelength heat
// map for the first angle.
func plotFieldMap(path string, res *tmm.Result) error {
	if len(res.Field) == 0 || len(res.Depth) == 0 {
		return fmt.Errorf("field map: result carries no field data")
	}

	h := plotter.NewHeatMap(fieldGrid{res: res}, moreland.SmoothBlueRed().Palette(255))

	p := plot.New()
	p.Title.Text = "Field intensity"
	p.X.Label.Text = "depth"
	p.Y.Label.Text = "wavelength"
	p.Add(h)
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
