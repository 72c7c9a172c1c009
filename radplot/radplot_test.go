/*
 * radplot_test.go, part of atomdb.
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

package radplot

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/theochem/atomdb"
)

func testSpecies(t *testing.T) *atomdb.Species {
	t.Helper()
	d, err := atomdb.NewSpeciesData("He", "test", 2, 2, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	n := 30
	rs := make([]float64, n)
	dens := make([]float64, n)
	for i := range rs {
		rs[i] = 0.01 + float64(i)*0.1
		dens[i] = 3 * math.Exp(-2*rs[i])
	}
	d.Rs = rs
	d.DensTot = dens
	s, err := atomdb.NewSpecies("test", d, 1)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestProfileWritesPNG(t *testing.T) {
	s := testSpecies(t)
	fn := filepath.Join(t.TempDir(), "He_dens.png")
	if err := Profile(s, "dens", "t", fn, 100); err != nil {
		t.Fatal(err)
	}
	fi, err := os.Stat(fn)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() == 0 {
		t.Error("empty plot file")
	}
}

func TestProfileBadArgs(t *testing.T) {
	s := testSpecies(t)
	fn := filepath.Join(t.TempDir(), "out.png")
	if err := Profile(s, "charge", "t", fn, 0); err == nil {
		t.Error("unknown quantity accepted")
	}
	if err := Profile(s, "dens", "x", fn, 0); err == nil {
		t.Error("invalid spin accepted")
	}
	if err := Profile(nil, "dens", "t", fn, 0); err == nil {
		t.Error("nil species accepted")
	}
	if err := Profile(s, "ked", "t", fn, 0); err == nil {
		t.Error("uncomputed quantity accepted")
	}
}
