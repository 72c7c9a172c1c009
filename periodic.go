/*
 * periodic.go, part of atomdb.
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
	"strings"
)

//symbols contains the element symbols indexed by atomic number.
//symbols[0] is unused.
var symbols = []string{"",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba", "La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy",
	"Ho", "Er", "Tm", "Yb", "Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt",
	"Au", "Hg", "Tl", "Pb", "Bi", "Po", "At", "Rn",
}

//atnums maps canonical element symbols to atomic numbers.
var atnums = make(map[string]int, len(symbols))

func init() {
	for z := 1; z < len(symbols); z++ {
		atnums[symbols[z]] = z
	}
}

//A map for assigning mass to elements. Standard atomic weights; for the
//elements with no stable isotope (Tc, Pm, Po, At, Rn) the mass number of the
//longest-lived isotope is used.
var symbolMass = map[string]float64{
	"H": 1.0, "He": 4.0026,
	"Li": 6.94, "Be": 9.012, "B": 10.81, "C": 12.01, "N": 14.01, "O": 16.00,
	"F": 18.998, "Ne": 20.18,
	"Na": 22.99, "Mg": 24.30, "Al": 26.98, "Si": 28.08, "P": 30.97,
	"S": 32.06, "Cl": 35.45, "Ar": 39.95,
	"K": 39.1, "Ca": 40.08, "Sc": 44.96, "Ti": 47.87, "V": 50.94,
	"Cr": 51.996, "Mn": 54.94, "Fe": 55.84, "Co": 58.93, "Ni": 58.69,
	"Cu": 63.55, "Zn": 65.38, "Ga": 69.72, "Ge": 72.63, "As": 74.92,
	"Se": 78.96, "Br": 79.904, "Kr": 83.80,
	"Rb": 85.47, "Sr": 87.62, "Y": 88.91, "Zr": 91.22, "Nb": 92.91,
	"Mo": 95.95, "Tc": 98.0, "Ru": 101.07, "Rh": 102.91, "Pd": 106.42,
	"Ag": 107.87, "Cd": 112.41, "In": 114.82, "Sn": 118.71, "Sb": 121.76,
	"Te": 127.60, "I": 126.90, "Xe": 131.29,
	"Cs": 132.91, "Ba": 137.33, "La": 138.91, "Ce": 140.12, "Pr": 140.91,
	"Nd": 144.24, "Pm": 145.0, "Sm": 150.36, "Eu": 151.96, "Gd": 157.25,
	"Tb": 158.93, "Dy": 162.50, "Ho": 164.93, "Er": 167.26, "Tm": 168.93,
	"Yb": 173.05, "Lu": 174.97, "Hf": 178.49, "Ta": 180.95, "W": 183.84,
	"Re": 186.21, "Os": 190.23, "Ir": 192.22, "Pt": 195.08, "Au": 196.97,
	"Hg": 200.59, "Tl": 204.38, "Pb": 207.2, "Bi": 208.98, "Po": 209.0,
	"At": 210.0, "Rn": 222.0,
}

//A map for assigning covalent radii to elements
//Values from Cordero et al., 2008 (DOI:10.1039/B801115J)
//C is the sp3 radius; Mn, Fe and Co the high-spin radii
var symbolCovrad = map[string]float64{
	"H": 0.31, "He": 0.28,
	"Li": 1.28, "Be": 0.96, "B": 0.84, "C": 0.76, "N": 0.71, "O": 0.66,
	"F": 0.57, "Ne": 0.58,
	"Na": 1.66, "Mg": 1.41, "Al": 1.21, "Si": 1.11, "P": 1.07,
	"S": 1.05, "Cl": 1.02, "Ar": 1.06,
	"K": 2.03, "Ca": 1.76, "Sc": 1.70, "Ti": 1.60, "V": 1.53,
	"Cr": 1.39, "Mn": 1.61, "Fe": 1.52, "Co": 1.5, "Ni": 1.24,
	"Cu": 1.32, "Zn": 1.22, "Ga": 1.22, "Ge": 1.20, "As": 1.19,
	"Se": 1.2, "Br": 1.2, "Kr": 1.16,
	"Rb": 2.20, "Sr": 1.95, "Y": 1.90, "Zr": 1.75, "Nb": 1.64,
	"Mo": 1.54, "Tc": 1.47, "Ru": 1.46, "Rh": 1.42, "Pd": 1.39,
	"Ag": 1.45, "Cd": 1.44, "In": 1.42, "Sn": 1.39, "Sb": 1.39,
	"Te": 1.38, "I": 1.39, "Xe": 1.40,
	"Cs": 2.44, "Ba": 2.15, "La": 2.07, "Ce": 2.04, "Pr": 2.03,
	"Nd": 2.01, "Pm": 1.99, "Sm": 1.98, "Eu": 1.98, "Gd": 1.96,
	"Tb": 1.94, "Dy": 1.92, "Ho": 1.92, "Er": 1.89, "Tm": 1.90,
	"Yb": 1.87, "Lu": 1.87, "Hf": 1.75, "Ta": 1.70, "W": 1.62,
	"Re": 1.51, "Os": 1.44, "Ir": 1.41, "Pt": 1.36, "Au": 1.36,
	"Hg": 1.32, "Tl": 1.45, "Pb": 1.46, "Bi": 1.48, "Po": 1.40,
	"At": 1.50, "Rn": 1.50,
}

//A map for assigning van der Waals radii to elements
//Values from 10.1021/j100785a001 and 10.1021/jp8111556
//metal radii from 10.1023/A:1011625728803
//elements missing there from 10.1039/C3DT50599E
var symbolVdwrad = map[string]float64{
	"H": 1.10, "He": 1.40,
	"Li": 1.81, "Be": 1.53, "B": 1.92, "C": 1.70, "N": 1.55, "O": 1.52,
	"F": 1.47, "Ne": 1.54,
	"Na": 2.27, "Mg": 1.73, "Al": 1.84, "Si": 2.10, "P": 1.80,
	"S": 1.80, "Cl": 1.75, "Ar": 1.88,
	"K": 2.75, "Ca": 2.31, "Sc": 2.15, "Ti": 2.11, "V": 2.07,
	"Cr": 1.97, "Mn": 1.96, "Fe": 1.96, "Co": 1.95, "Ni": 1.63,
	"Cu": 2.00, "Zn": 2.02, "Ga": 1.87, "Ge": 2.11, "As": 1.85,
	"Se": 1.90, "Br": 1.83, "Kr": 2.02,
	"Rb": 3.03, "Sr": 2.49, "Y": 2.32, "Zr": 2.23, "Nb": 2.18,
	"Mo": 2.17, "Tc": 2.16, "Ru": 2.13, "Rh": 2.10, "Pd": 1.63,
	"Ag": 1.72, "Cd": 1.58, "In": 1.93, "Sn": 2.17, "Sb": 2.06,
	"Te": 2.06, "I": 1.98, "Xe": 2.16,
	"Cs": 3.43, "Ba": 2.68, "La": 2.43, "Ce": 2.42, "Pr": 2.40,
	"Nd": 2.39, "Pm": 2.38, "Sm": 2.36, "Eu": 2.35, "Gd": 2.34,
	"Tb": 2.33, "Dy": 2.31, "Ho": 2.30, "Er": 2.29, "Tm": 2.27,
	"Yb": 2.26, "Lu": 2.24, "Hf": 2.23, "Ta": 2.22, "W": 2.18,
	"Re": 2.16, "Os": 2.16, "Ir": 2.13, "Pt": 1.75, "Au": 1.66,
	"Hg": 1.55, "Tl": 1.96, "Pb": 2.02, "Bi": 2.07, "Po": 1.97,
	"At": 2.02, "Rn": 2.20,
}

//ElementSymbol returns the canonical symbol for an element given in any
//capitalization (so "he", "HE" and "He" all yield "He"). It returns an
//error for anything that is not an element of the table.
func ElementSymbol(elem string) (string, error) {
	if len(elem) == 0 || len(elem) > 2 {
		return "", CError{fmt.Sprintf("Invalid element symbol '%s'", elem), []string{"ElementSymbol"}}
	}
	s := strings.ToUpper(elem[:1]) + strings.ToLower(elem[1:])
	if _, ok := atnums[s]; !ok {
		return "", CError{fmt.Sprintf("Unknown element '%s'", elem), []string{"ElementSymbol"}}
	}
	return s, nil
}

//ElementNumber returns the atomic number for an element symbol, in any
//capitalization.
func ElementNumber(elem string) (int, error) {
	s, err := ElementSymbol(elem)
	if err != nil {
		return 0, errDecorate(err, "ElementNumber")
	}
	return atnums[s], nil
}

//SymbolOf returns the canonical symbol for an atomic number.
func SymbolOf(atnum int) (string, error) {
	if atnum < 1 || atnum >= len(symbols) {
		return "", CError{fmt.Sprintf("Atomic number %d out of range", atnum), []string{"SymbolOf"}}
	}
	return symbols[atnum], nil
}

//ElementData returns the tabulated covalent radius, van der Waals radius and
//mass for an element. The tables cover H through Rn; a value absent from its
//table comes back unset rather than as an error.
func ElementData(elem string) (covrad, vdwrad, mass Scalar, err error) {
	s, err := ElementSymbol(elem)
	if err != nil {
		return Scalar{}, Scalar{}, Scalar{}, errDecorate(err, "ElementData")
	}
	if v, ok := symbolCovrad[s]; ok {
		covrad = F(v)
	}
	if v, ok := symbolVdwrad[s]; ok {
		vdwrad = F(v)
	}
	if v, ok := symbolMass[s]; ok {
		mass = F(v)
	}
	return covrad, vdwrad, mass, nil
}
