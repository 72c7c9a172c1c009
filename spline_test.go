/*
 * spline_test.go, part of atomdb.
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

package atomdb

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

//a radial grid with an exponentially decaying profile, the typical shape of
//an atomic density.
func testProfile(n int) (rs, dens []float64) {
	rs = make([]float64, n)
	dens = make([]float64, n)
	floats.Span(rs, 0.01, 5.0)
	for i, r := range rs {
		dens[i] = 4 * math.Exp(-1.7*r)
	}
	return rs, dens
}

func TestSplineNodeExactness(Te *testing.T) {
	rs, dens := testProfile(40)
	lin, err := NewDensitySpline(rs, dens)
	if err != nil {
		Te.Fatal(err)
	}
	lg, err := NewLogDensitySpline(rs, dens)
	if err != nil {
		Te.Fatal(err)
	}
	for name, spl := range map[string]*DensitySpline{"linear": lin, "log": lg} {
		vals, err := spl.Eval(rs, 0)
		if err != nil {
			Te.Fatal(err)
		}
		for i := range rs {
			if math.Abs(vals[i]-dens[i]) > 1e-9*math.Abs(dens[i]) {
				Te.Errorf("%s spline at node %d: got %g, want %g", name, i, vals[i], dens[i])
			}
		}
	}
}

//The three-point example: the not-a-knot spline through three points is the
//parabola through them.
func TestSplineThreePointGrid(Te *testing.T) {
	rs := []float64{0.01, 0.5075, 1.0}
	dens := []float64{10.0, 1.0, 0.1}
	spl, err := NewDensitySpline(rs, dens)
	if err != nil {
		Te.Fatal(err)
	}
	v, err := spl.Eval([]float64{0.01}, 0)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(v[0]-10.0) > 1e-9 {
		Te.Errorf("value at first node: got %g, want 10", v[0])
	}
	//first derivative at an interior point against a central difference
	x := 0.5
	h := 1e-5
	d1, err := spl.Eval([]float64{x}, 1)
	if err != nil {
		Te.Fatal(err)
	}
	around, err := spl.Eval([]float64{x - h, x + h}, 0)
	if err != nil {
		Te.Fatal(err)
	}
	est := (around[1] - around[0]) / (2 * h)
	if math.Abs(d1[0]-est) > 1e-2*math.Abs(est) {
		Te.Errorf("deriv 1 at %g: got %g, central difference %g", x, d1[0], est)
	}
	if math.IsNaN(d1[0]) || math.IsInf(d1[0], 0) {
		Te.Errorf("deriv 1 not finite: %g", d1[0])
	}
}

func TestSplineTwoPointGrid(Te *testing.T) {
	spl, err := NewDensitySpline([]float64{0, 1}, []float64{1, 3})
	if err != nil {
		Te.Fatal(err)
	}
	v, err := spl.Eval([]float64{0.25, 2.0}, 0)
	if err != nil {
		Te.Fatal(err)
	}
	//two points make a straight line, also under extrapolation
	if math.Abs(v[0]-1.5) > 1e-12 || math.Abs(v[1]-5.0) > 1e-12 {
		Te.Errorf("line through 2 points: got %v, want [1.5 5]", v)
	}
	d2, err := spl.Eval([]float64{0.5}, 2)
	if err != nil {
		Te.Fatal(err)
	}
	if d2[0] != 0 {
		Te.Errorf("second derivative of a line: got %g", d2[0])
	}
}

func TestLogSplineDerivatives(Te *testing.T) {
	rs, dens := testProfile(60)
	spl, err := NewLogDensitySpline(rs, dens)
	if err != nil {
		Te.Fatal(err)
	}
	xs := []float64{0.3, 1.1, 2.7, 4.2}
	h := 1e-4
	d1, err := spl.Eval(xs, 1)
	if err != nil {
		Te.Fatal(err)
	}
	d2, err := spl.Eval(xs, 2)
	if err != nil {
		Te.Fatal(err)
	}
	for k, x := range xs {
		around, err := spl.Eval([]float64{x - h, x, x + h}, 0)
		if err != nil {
			Te.Fatal(err)
		}
		est1 := (around[2] - around[0]) / (2 * h)
		est2 := (around[2] - 2*around[1] + around[0]) / (h * h)
		if math.Abs(d1[k]-est1) > 1e-4*math.Abs(est1) {
			Te.Errorf("deriv 1 at %g: got %g, central difference %g", x, d1[k], est1)
		}
		if math.Abs(d2[k]-est2) > 1e-3*math.Abs(est2) {
			Te.Errorf("deriv 2 at %g: got %g, central difference %g", x, d2[k], est2)
		}
	}
}

func TestSplineIdempotent(Te *testing.T) {
	rs, dens := testProfile(25)
	spl, err := NewLogDensitySpline(rs, dens)
	if err != nil {
		Te.Fatal(err)
	}
	xs := []float64{0.005, 0.7, 3.3, 6.0} //includes extrapolation on both ends
	first, err := spl.Eval(xs, 0)
	if err != nil {
		Te.Fatal(err)
	}
	second, err := spl.Eval(xs, 0)
	if err != nil {
		Te.Fatal(err)
	}
	for i := range first {
		if first[i] != second[i] {
			Te.Errorf("point %d: %g then %g", i, first[i], second[i])
		}
	}
}

func TestSplineInvalidDeriv(Te *testing.T) {
	rs, dens := testProfile(10)
	spl, err := NewDensitySpline(rs, dens)
	if err != nil {
		Te.Fatal(err)
	}
	for _, deriv := range []int{-1, 3, 12} {
		if _, err := spl.Eval(rs, deriv); err == nil {
			Te.Errorf("deriv %d accepted", deriv)
		}
	}
}

func TestSplineBadInput(Te *testing.T) {
	if _, err := NewDensitySpline([]float64{1, 2}, []float64{1, 2, 3}); err == nil {
		Te.Error("length mismatch accepted")
	}
	if _, err := NewDensitySpline([]float64{1, 1, 2}, []float64{1, 2, 3}); err == nil {
		Te.Error("non-increasing grid accepted")
	}
	if _, err := NewDensitySpline([]float64{1}, []float64{1}); err == nil {
		Te.Error("single-point grid accepted")
	}
	if _, err := NewLogDensitySpline([]float64{1, 2, 3}, []float64{1, 0, 3}); err == nil {
		Te.Error("log fit of nonpositive samples accepted")
	}
	if _, err := NewDensitySpline(nil, nil); err == nil {
		Te.Error("nil data accepted")
	}
}
