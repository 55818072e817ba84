/*
 * coordplot.go, part of goStru.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 * goStru is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

//Package coordplot draws the coordination distances of a report.
package coordplot

import (
	"fmt"
	"image/color"

	"github.com/rmera/gostru/report"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Donors plots one bar per donor atom of every center in rep, with its distance
//to the metal, and a dashed line with the sum of radii the distance was
//compared to. The format is taken from the extension of filename (png, svg, pdf...).
func Donors(rep *report.Report, filename string) error {
	bars := make(plotter.Values, 0, 6)
	sums := make(plotter.XYs, 0, 6)
	labels := make([]string, 0, 6)
	for _, c := range rep.Centers {
		for _, d := range c.Donors {
			bars = append(bars, d.Distance)
			sums = append(sums, plotter.XY{X: float64(len(sums)), Y: d.RadiusSum})
			labels = append(labels, fmt.Sprintf("%s%d:%s%d/%s", c.ResName, c.ResID, d.ResName, d.ResID, d.Atom))
		}
	}
	if len(bars) == 0 {
		return fmt.Errorf("coordplot: no donors to plot")
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Metal-donor distances (%s radii)", rep.Mode)
	p.Title.Padding = 3 * vg.Millimeter
	p.Y.Label.Text = "Distance (A)"
	p.Y.Min = 0
	p.Add(plotter.NewGrid())

	b, err := plotter.NewBarChart(bars, vg.Points(20))
	if err != nil {
		return err
	}
	b.Color = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	b.LineStyle.Width = vg.Length(0)
	p.Add(b)
	p.Legend.Add("distance", b)

	l, err := plotter.NewLine(sums)
	if err != nil {
		return err
	}
	l.LineStyle.Color = color.RGBA{R: 200, A: 255}
	l.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(l)
	p.Legend.Add("sum of radii", l)

	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = 0.8
	p.X.Tick.Label.XAlign = -1
	w := vg.Length(len(bars))*vg.Centimeter + 6*vg.Centimeter
	return p.Save(w, 4*vg.Inch, filename)
}
