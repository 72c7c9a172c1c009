/*
 * radplot.go, part of atomdb.
 *
 * Copyright 2023 The AtomDB Developers
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
 */

//Package radplot draws radial profiles of stored species (density,
//density gradient, density Laplacian, kinetic energy density) to PNG
//files, evaluating the interpolating splines on a dense grid.
package radplot

import (
	"fmt"

	"github.com/theochem/atomdb"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Labels for the plottable quantities.
var labels = map[string]string{
	"dens":    "density (a.u.)",
	"d_dens":  "density gradient (a.u.)",
	"dd_dens": "density Laplacian (a.u.)",
	"ked":     "kinetic energy density (a.u.)",
}

//basicProfilePlot builds a plot with the house axes and grid.
func basicProfilePlot(title, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "r (bohr)"
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

//Profile draws the requested radial profile of a species and saves it as a
//PNG file. quantity is one of "dens", "d_dens", "dd_dens" or "ked"; spin is
//passed through to the spline accessors ("t", "a", "b" or "m"); npoints is
//the number of evaluation points (200 if nonpositive).
func Profile(s *atomdb.Species, quantity, spin, filename string, npoints int) error {
	if s == nil {
		return Error{"Given nil species", []string{"Profile"}}
	}
	var spl *atomdb.DensitySpline
	var err error
	switch quantity {
	case "dens":
		spl, err = s.DensFunc(spin, nil)
	case "d_dens":
		spl, err = s.DDensFunc(spin, nil)
	case "dd_dens":
		spl, err = s.DDDensFunc(spin, nil)
	case "ked":
		spl, err = s.KEDFunc(spin, nil)
	default:
		return Error{fmt.Sprintf("Unknown quantity '%s'", quantity), []string{"Profile"}}
	}
	if err != nil {
		return errDecorate(err, "Profile")
	}
	rs := s.Data().Rs
	if npoints <= 0 {
		npoints = 200
	}
	xs := make([]float64, npoints)
	floats.Span(xs, rs[0], rs[len(rs)-1])
	ys, err := spl.Eval(xs, 0)
	if err != nil {
		return errDecorate(err, "Profile")
	}
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	p := basicProfilePlot(
		fmt.Sprintf("%s charge %+d (%s)", s.Elem(), s.Charge(), s.Dataset()),
		labels[quantity],
	)
	line, err := plotter.NewLine(pts)
	if err != nil {
		return Error{err.Error(), []string{"Profile"}}
	}
	p.Add(line)
	if err := p.Save(5*vg.Inch, 5*vg.Inch, filename); err != nil {
		return Error{err.Error(), []string{"Profile"}}
	}
	return nil
}

//Errors

//errDecorate asserts that err implements atomdb.Error and decorates it with
//the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(atomdb.Error)
	err2.Decorate(caller)
	return err2
}

//Error is the error type of the radplot package. It fullfills atomdb.Error.
type Error struct {
	msg  string
	deco []string
}

func (err Error) Error() string { return err.msg }

//Decorate adds new information to the error.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}
