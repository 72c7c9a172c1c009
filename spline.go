/*
 * spline.go, part of atomdb.
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
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

//DensitySpline is a piecewise-cubic interpolation of a radial profile over a
//1-D grid, with not-a-knot boundary conditions and extrapolation enabled
//outside the sampled range. It can evaluate the interpolated quantity and
//its first and second derivatives at arbitrary points. All coefficients are
//fixed at construction, so evaluation has no side effects.
//
//In log-domain mode the spline is fitted to log(y) and the quantity and its
//derivatives are reconstructed analytically on evaluation. Log fitting is
//meant for strictly positive quantities such as the electron density, where
//it better preserves smoothness and positivity.
type DensitySpline struct {
	x   []float64
	y   []float64 //the fitted samples; log-transformed in log-domain mode
	m   []float64 //second derivatives of the fitted cubic at the knots
	log bool
}

//NewDensitySpline fits a cubic spline to the samples y over the strictly
//increasing grid x.
func NewDensitySpline(x, y []float64) (*DensitySpline, error) {
	S, err := newSpline(x, y, false)
	if err != nil {
		return nil, errDecorate(err, "NewDensitySpline")
	}
	return S, nil
}

//NewLogDensitySpline fits a cubic spline to log(y) over the strictly
//increasing grid x. All samples must be strictly positive.
func NewLogDensitySpline(x, y []float64) (*DensitySpline, error) {
	S, err := newSpline(x, y, true)
	if err != nil {
		return nil, errDecorate(err, "NewLogDensitySpline")
	}
	return S, nil
}

func newSpline(x, y []float64, logdom bool) (*DensitySpline, error) {
	if x == nil || y == nil {
		return nil, CError{ErrNilData, []string{"newSpline"}}
	}
	n := len(x)
	if n < 2 {
		return nil, CError{fmt.Sprintf("Need at least 2 grid points, got %d", n), []string{"newSpline"}}
	}
	if len(y) != n {
		return nil, CError{fmt.Sprintf("Grid and samples differ in length: %d vs %d", n, len(y)), []string{"newSpline"}}
	}
	for i := 1; i < n; i++ {
		if x[i] <= x[i-1] {
			return nil, CError{fmt.Sprintf("Grid must be strictly increasing; points %d, %d", i-1, i), []string{"newSpline"}}
		}
	}
	S := &DensitySpline{log: logdom}
	S.x = append([]float64{}, x...)
	S.y = append([]float64{}, y...)
	if logdom {
		for i, v := range S.y {
			if v <= 0 {
				return nil, CError{fmt.Sprintf("Log-domain fit needs strictly positive samples, got %g at point %d", v, i), []string{"newSpline"}}
			}
			S.y[i] = math.Log(v)
		}
	}
	S.m = moments(S.x, S.y)
	return S, nil
}

//moments solves for the second derivatives of the interpolating cubic at the
//knots. The two conditions closing the system are the not-a-knot ones: the
//third derivative is continuous across the second and the penultimate knot.
//Grids of two or three points degenerate to the line, or the parabola,
//through the samples, as in the usual not-a-knot convention.
func moments(x, y []float64) []float64 {
	n := len(x)
	m := make([]float64, n)
	if n == 2 {
		return m
	}
	if n == 3 {
		//the parabola through three points has a constant second derivative
		c := 2 * ((y[2]-y[1])/(x[2]-x[1]) - (y[1]-y[0])/(x[1]-x[0])) / (x[2] - x[0])
		for i := range m {
			m[i] = c
		}
		return m
	}
	h := make([]float64, n-1)
	for i := range h {
		h[i] = x[i+1] - x[i]
	}
	A := mat.NewDense(n, n, nil)
	b := mat.NewVecDense(n, nil)
	A.Set(0, 0, h[1])
	A.Set(0, 1, -(h[0] + h[1]))
	A.Set(0, 2, h[0])
	for i := 1; i < n-1; i++ {
		A.Set(i, i-1, h[i-1]/6)
		A.Set(i, i, (h[i-1]+h[i])/3)
		A.Set(i, i+1, h[i]/6)
		b.SetVec(i, (y[i+1]-y[i])/h[i]-(y[i]-y[i-1])/h[i-1])
	}
	A.Set(n-1, n-3, h[n-2])
	A.Set(n-1, n-2, -(h[n-3] + h[n-2]))
	A.Set(n-1, n-1, h[n-3])
	var sol mat.VecDense
	if err := sol.SolveVec(A, b); err != nil {
		//cannot happen for a strictly increasing grid of 4 or more points
		panic("atomdb: singular spline system: " + err.Error())
	}
	copy(m, sol.RawVector().Data)
	return m
}

//segment returns the index of the polynomial piece t falls on. Points
//outside the grid extrapolate on the first or last piece.
func (S *DensitySpline) segment(t float64) int {
	i := sort.SearchFloat64s(S.x, t) - 1
	if i < 0 {
		i = 0
	}
	if i > len(S.x)-2 {
		i = len(S.x) - 2
	}
	return i
}

//piece evaluates the fitted cubic (of the possibly log-transformed samples)
//or one of its derivatives at t.
func (S *DensitySpline) piece(t float64, deriv int) float64 {
	i := S.segment(t)
	h := S.x[i+1] - S.x[i]
	a := S.x[i+1] - t
	b := t - S.x[i]
	switch deriv {
	case 0:
		return S.m[i]*a*a*a/(6*h) + S.m[i+1]*b*b*b/(6*h) +
			(S.y[i]/h-S.m[i]*h/6)*a + (S.y[i+1]/h-S.m[i+1]*h/6)*b
	case 1:
		return -S.m[i]*a*a/(2*h) + S.m[i+1]*b*b/(2*h) -
			(S.y[i]/h - S.m[i]*h/6) + (S.y[i+1]/h - S.m[i+1]*h/6)
	default:
		return S.m[i]*a/h + S.m[i+1]*b/h
	}
}

//Eval evaluates the interpolated quantity, or its first or second
//derivative, at each of the given points. deriv must be 0, 1 or 2. In
//log-domain mode the derivatives are reconstructed via the chain rule:
//
//	y'  = (log y)' y
//	y'' = (log y)'' y + ((log y)')^2 y
func (S *DensitySpline) Eval(xs []float64, deriv int) ([]float64, error) {
	if deriv < 0 || deriv > 2 {
		return nil, CError{ErrInvalidDeriv, []string{"DensitySpline.Eval"}}
	}
	out := make([]float64, len(xs))
	for k, t := range xs {
		if !S.log {
			out[k] = S.piece(t, deriv)
			continue
		}
		v := math.Exp(S.piece(t, 0))
		switch deriv {
		case 0:
			out[k] = v
		case 1:
			out[k] = S.piece(t, 1) * v
		case 2:
			d1 := S.piece(t, 1)
			out[k] = S.piece(t, 2)*v + d1*d1*v
		}
	}
	return out, nil
}
