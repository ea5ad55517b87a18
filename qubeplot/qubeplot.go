/*
 * qubeplot.go, part of goqube.
 *
 * Copyright 2025 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * goQube is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

//Package qubeplot produces diagnostic plots, in png format, for derived
//parameters: Lennard-Jones potential curves, the direction sweep of the
//linear-angle fallback and histograms of force constants.
package qubeplot

import (
	"fmt"
	"image/color"
	"math"

	qube "github.com/rmera/goqube"
	"github.com/rmera/goqube/nonbonded"
	"github.com/rmera/goqube/seminario"
	v3 "github.com/rmera/goqube/v3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const ljPoints = 200

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

func save(p *plot.Plot, plotname string) error {
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(5*vg.Inch, 5*vg.Inch, filename)
}

/*LJCurve produces a plot of the Lennard-Jones potential
  V(r) = 4*eps*((sig/r)^12 - (sig/r)^6) for each of the atoms listed, with
  r in nm and V in kJ/mol, over 0.95 to 2.5 sigma. The extension is
  appended to plotname. Returns an error or nil*/
func LJCurve(params []*nonbonded.LJParameter, atoms []int, title, plotname string) error {
	if params == nil {
		panic("Given nil data")
	}
	p := basicPlot(title, "r (nm)", "V (kJ/mol)")
	for key, a := range atoms {
		if a < 0 || a >= len(params) {
			return fmt.Errorf("LJCurve: atom %d out of range", a)
		}
		sig, eps := params[a].Sigma, params[a].Epsilon
		if sig <= 0 || eps <= 0 {
			return fmt.Errorf("LJCurve: atom %d has no well (sigma %v, epsilon %v)", a, sig, eps)
		}
		pts := make(plotter.XYs, ljPoints)
		step := (2.5*sig - 0.95*sig) / float64(ljPoints-1)
		for i := range pts {
			r := 0.95*sig + float64(i)*step
			sr6 := math.Pow(sig/r, 6)
			pts[i].X = r
			pts[i].Y = 4 * eps * (sr6*sr6 - sr6)
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.LineStyle.Color = curveColor(key, len(atoms))
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("atom %d", a), line)
	}
	p.Legend.Top = true
	return save(p, plotname)
}

/*AngleScan produces a plot of the force constant of the near-linear
  angle a-b-c, with b central, against the sweep direction of the
  fallback approximation. A flat curve means the mean the derivation uses
  represents every direction well. The extension is appended to plotname.
  Returns an error or nil*/
func AngleScan(coords *v3.Matrix, H *qube.Hessian, a, b, c int, title, plotname string) error {
	if coords == nil || H == nil {
		panic("Given nil data")
	}
	thetas, ks, err := seminario.AngleSweep(coords, H, a, b, c)
	if err != nil {
		return err
	}
	if len(ks) == 0 {
		return fmt.Errorf("AngleScan: no valid directions in the %d-%d-%d sweep", a, b, c)
	}
	pts := make(plotter.XYs, len(ks))
	for i := range ks {
		pts[i].X = thetas[i] * qube.Rad2Deg
		pts[i].Y = ks[i]
	}
	p := basicPlot(title, "Sweep direction (deg)", "k (kcal/(mol rad^2))")
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Color = curveColor(0, 2)
	p.Add(line)
	return save(p, plotname)
}

/*FCHistogram produces a histogram of the given force constants, over
  bins bins (16 if bins is not positive). The xlabel should name the
  units, which depend on whether bond or angle constants are given. The
  extension is appended to plotname. Returns an error or nil*/
func FCHistogram(constants []float64, bins int, title, xlabel, plotname string) error {
	if constants == nil {
		panic("Given nil data")
	}
	if len(constants) == 0 {
		return fmt.Errorf("FCHistogram: no constants to bin")
	}
	if bins <= 0 {
		bins = 16
	}
	vals := make(plotter.Values, len(constants))
	copy(vals, constants)
	h, err := plotter.NewHist(vals, bins)
	if err != nil {
		return err
	}
	h.FillColor = curveColor(1, 2)
	p := basicPlot(title, xlabel, "Count")
	p.Add(h)
	return save(p, plotname)
}

//curveColor spreads the curves over the hue circle, jumping over the
//yellow band, where lines wash out on white.
func curveColor(key, steps int) color.RGBA {
	h := 260.0 * float64(key) / float64(steps)
	if h > 40 {
		h += 40
	}
	return hsv2RGB(h, 1, 0.85)
}

//takes hue (0-360), s and v (0-1), returns an opaque color
func hsv2RGB(h, s, v float64) color.RGBA {
	c := v * s
	hp := math.Mod(h, 360) / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	var r, g, b float64
	switch int(hp) {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default: //case 5
		r, g, b = c, 0, x
	}
	m := v - c
	return color.RGBA{R: uint8(255 * (r + m)), G: uint8(255 * (g + m)), B: uint8(255 * (b + m)), A: 255}
}
