/*
 * compile_test.go, part of atomdb.
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
	"os"
	"testing"
)

func init() {
	RegisterDataset("mockset", func(elem string, charge, mult, nexc int, dataset, datapath string) (*Species, error) {
		sym, err := ElementSymbol(elem)
		if err != nil {
			return nil, err
		}
		atnum, err := ElementNumber(sym)
		if err != nil {
			return nil, err
		}
		d, err := NewSpeciesData(sym, "mock-basis", atnum, atnum-charge, mult-1, nexc)
		if err != nil {
			return nil, err
		}
		d.Rs = []float64{0.01, 0.5, 1.0}
		d.DensTot = []float64{10.0, 1.0, 0.1}
		d.Energy = F(-2.9)
		return NewSpecies(dataset, d, 1)
	})
}

func TestCompileStores(Te *testing.T) {
	dir := Te.TempDir()
	s, err := Compile("he", 0, 1, 0, "MockSet", dir)
	if err != nil {
		Te.Fatal(err)
	}
	if s.Elem() != "He" || s.Charge() != 0 || s.Mult() != 1 {
		Te.Errorf("compiled wrong species: %s %d %d", s.Elem(), s.Charge(), s.Mult())
	}
	//the raw directory is created for the compute routine even if unused
	if _, err := os.Stat(dir + "/mockset/raw"); err != nil {
		Te.Error("raw directory missing:", err)
	}
	back, err := Load("He", 0, 1, 0, "mockset", dir)
	if err != nil {
		Te.Fatal(err)
	}
	if v, ok := back.Energy().Value(); !ok || v != -2.9 {
		Te.Errorf("stored energy: got %v %v", v, ok)
	}
}

func TestCompileUnknownDataset(Te *testing.T) {
	_, err := Compile("H", 0, 2, 0, "no-such-set", Te.TempDir())
	if err == nil {
		Te.Fatal("unregistered dataset accepted")
	}
	if _, ok := err.(UnsupportedError); !ok {
		Te.Errorf("want UnsupportedError, got %T: %v", err, err)
	}
}
