/*
 * species_test.go, part of atomdb.
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

//expRow tabulates c*exp(-k*r) on the grid.
func expRow(rs []float64, c, k float64) []float64 {
	row := make([]float64, len(rs))
	for i, r := range rs {
		row[i] = c * math.Exp(-k*r)
	}
	return row
}

//makeTestSpecies builds a lithium-like record with two alpha and two beta
//orbitals and consistent totals.
func makeTestSpecies(Te *testing.T) *Species {
	d, err := NewSpeciesData("Li", "test-basis", 3, 3, 1, 0)
	if err != nil {
		Te.Fatal(err)
	}
	rs := make([]float64, 20)
	floats.Span(rs, 0.01, 4.0)
	d.Rs = rs
	d.MODensA = [][]float64{expRow(rs, 2.0, 1.5), expRow(rs, 0.6, 0.7)}
	d.MODensB = [][]float64{expRow(rs, 1.9, 1.5), expRow(rs, 0.1, 0.9)}
	tot := make([]float64, len(rs))
	for _, row := range append(append([][]float64{}, d.MODensA...), d.MODensB...) {
		floats.Add(tot, row)
	}
	d.DensTot = tot
	d.MOKEDA = [][]float64{expRow(rs, 1.1, 2.0)}
	d.MOKEDB = [][]float64{expRow(rs, 0.9, 2.1)}
	d.Energy = F(-7.478)
	s, err := NewSpecies("TestSet", d, 1)
	if err != nil {
		Te.Fatal(err)
	}
	return s
}

func TestDerivedQuantities(Te *testing.T) {
	s := makeTestSpecies(Te)
	if s.Dataset() != "testset" {
		Te.Errorf("dataset not lowercased: %s", s.Dataset())
	}
	if s.Charge() != 0 {
		Te.Errorf("charge: got %d, want 0", s.Charge())
	}
	if s.Mult() != 2 {
		Te.Errorf("mult: got %d, want 2", s.Mult())
	}
	if s.Nspin() != 1 {
		Te.Errorf("nspin: got %d, want 1", s.Nspin())
	}
	if err := s.SetSpinpol(-1); err != nil {
		Te.Fatal(err)
	}
	if s.Nspin() != -1 {
		Te.Errorf("nspin after spinpol flip: got %d, want -1", s.Nspin())
	}
	if s.Mult() != 2 {
		Te.Errorf("mult must not depend on spinpol: got %d", s.Mult())
	}
	if v, ok := s.Energy().Value(); !ok || v != -7.478 {
		Te.Errorf("energy: got %v %v", v, ok)
	}
	if s.IP().IsSet() {
		Te.Error("ip should be unset")
	}
}

func TestSpinChannels(Te *testing.T) {
	s := makeTestSpecies(Te)
	rs := s.Data().Rs
	evals := func(spin string) []float64 {
		spl, err := s.DensFunc(spin, nil)
		if err != nil {
			Te.Fatal(err)
		}
		v, err := spl.Eval(rs, 0)
		if err != nil {
			Te.Fatal(err)
		}
		return v
	}
	a := evals("a")
	b := evals("b")
	m := evals("m")
	tot := evals("t")
	for i := range rs {
		if math.Abs(m[i]-(a[i]-b[i])) > 1e-9 {
			Te.Errorf("m != a-b at point %d: %g vs %g", i, m[i], a[i]-b[i])
		}
		if math.Abs(tot[i]-(a[i]+b[i])) > 1e-9 {
			Te.Errorf("t != a+b at point %d: %g vs %g", i, tot[i], a[i]+b[i])
		}
	}
}

func TestSpinpolChannelSwap(Te *testing.T) {
	s := makeTestSpecies(Te)
	rs := s.Data().Rs
	splA, err := s.DensFunc("a", nil)
	if err != nil {
		Te.Fatal(err)
	}
	upBefore, err := splA.Eval(rs, 0)
	if err != nil {
		Te.Fatal(err)
	}
	if err := s.SetSpinpol(-1); err != nil {
		Te.Fatal(err)
	}
	splB, err := s.DensFunc("b", nil)
	if err != nil {
		Te.Fatal(err)
	}
	downAfter, err := splB.Eval(rs, 0)
	if err != nil {
		Te.Fatal(err)
	}
	//flipping spinpol relabels the stored channels, so the old "a" data is
	//now served as "b"
	for i := range rs {
		if upBefore[i] != downAfter[i] {
			Te.Errorf("channel swap broken at point %d: %g vs %g", i, upBefore[i], downAfter[i])
		}
	}
}

func TestOrbitalIndex(Te *testing.T) {
	s := makeTestSpecies(Te)
	rs := s.Data().Rs
	spl, err := s.DensFunc("a", []int{0})
	if err != nil {
		Te.Fatal(err)
	}
	got, err := spl.Eval(rs, 0)
	if err != nil {
		Te.Fatal(err)
	}
	want := s.Data().MODensA[0]
	for i := range rs {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			Te.Errorf("orbital 0 only: point %d got %g, want %g", i, got[i], want[i])
		}
	}
	if _, err := s.DensFunc("a", []int{5}); err == nil {
		Te.Error("out-of-range orbital index accepted")
	}
}

func TestInvalidSpin(Te *testing.T) {
	s := makeTestSpecies(Te)
	if _, err := s.DensFunc("x", nil); err == nil {
		Te.Error("spin 'x' accepted")
	}
	if _, err := s.KEDFunc("ab", nil); err == nil {
		Te.Error("spin 'ab' accepted")
	}
}

func TestNotComputed(Te *testing.T) {
	s := makeTestSpecies(Te)
	//the gradient arrays were never filled in
	if _, err := s.DDensFunc("t", nil); err == nil {
		Te.Error("spline over an uncomputed quantity accepted")
	}
	if _, err := s.DDDensFunc("a", nil); err == nil {
		Te.Error("spline over an uncomputed channel accepted")
	}
}

func TestNewSpeciesValidation(Te *testing.T) {
	d, err := NewSpeciesData("H", "b", 1, 1, 0, 0)
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := NewSpecies("x", nil, 1); err == nil {
		Te.Error("nil record accepted")
	}
	if _, err := NewSpecies("x", d, 0); err == nil {
		Te.Error("spinpol 0 accepted")
	}
	if _, err := NewSpecies("x", d, 2); err == nil {
		Te.Error("spinpol 2 accepted")
	}
	s, err := NewSpecies("x", d, -1)
	if err != nil {
		Te.Fatal(err)
	}
	if err := s.SetSpinpol(3); err == nil {
		Te.Error("SetSpinpol(3) accepted")
	}
}

func TestScalarStates(Te *testing.T) {
	var unset Scalar
	if unset.IsSet() {
		Te.Error("zero Scalar claims to be set")
	}
	if v, ok := unset.Value(); ok || v != 0 {
		Te.Errorf("zero Scalar: %v %v", v, ok)
	}
	z := F(0)
	if !z.IsSet() {
		Te.Error("a computed zero must be distinct from unset")
	}
}
