/*
 * species.go, part of atomdb.
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

	"gonum.org/v1/gonum/floats"
)

//SpeciesData holds the database entry fields for an atomic or ionic species.
//The identity fields (Elem through Nexc) are immutable once the record is
//built. Array fields are empty, not nil, when the producing dataset has not
//computed the quantity; that is distinct from the whole record being absent
//from the database. The mo_ arrays hold one row per spin orbital over the
//shared radial grid Rs; the _tot arrays hold the alpha+beta total, which is
//a producer contract and is never recomputed at load time.
type SpeciesData struct {
	//Species info
	Elem  string `msgpack:"elem" json:"elem"`
	Atnum int    `msgpack:"atnum" json:"atnum"`
	Basis string `msgpack:"basis" json:"basis"`
	Nelec int    `msgpack:"nelec" json:"nelec"`
	Nspin int    `msgpack:"nspin" json:"nspin"`
	Nexc  int    `msgpack:"nexc" json:"nexc"`

	//Tabulated element reference data. Producers blank the radii for
	//charged species, where the neutral-atom values do not apply.
	CovRadius Scalar `msgpack:"cov_radius" json:"cov_radius"`
	VdwRadius Scalar `msgpack:"vdw_radius" json:"vdw_radius"`
	Mass      Scalar `msgpack:"mass" json:"mass"`

	//Scalar energy and CDFT-related properties
	Energy Scalar `msgpack:"energy" json:"energy"`
	IP     Scalar `msgpack:"ip" json:"ip"`
	Mu     Scalar `msgpack:"mu" json:"mu"`
	Eta    Scalar `msgpack:"eta" json:"eta"`

	//Radial grid
	Rs []float64 `msgpack:"rs" json:"rs"`

	//Orbital energies
	MOEnergyA []float64 `msgpack:"mo_energy_a" json:"mo_energy_a"`
	MOEnergyB []float64 `msgpack:"mo_energy_b" json:"mo_energy_b"`

	//Orbital occupations
	MOOccsA []float64 `msgpack:"mo_occs_a" json:"mo_occs_a"`
	MOOccsB []float64 `msgpack:"mo_occs_b" json:"mo_occs_b"`

	//Orbital densities
	MODensA [][]float64 `msgpack:"mo_dens_a" json:"mo_dens_a"`
	MODensB [][]float64 `msgpack:"mo_dens_b" json:"mo_dens_b"`
	DensTot []float64   `msgpack:"dens_tot" json:"dens_tot"`

	//Orbital density gradients
	MODDensA [][]float64 `msgpack:"mo_d_dens_a" json:"mo_d_dens_a"`
	MODDensB [][]float64 `msgpack:"mo_d_dens_b" json:"mo_d_dens_b"`
	DDensTot []float64   `msgpack:"d_dens_tot" json:"d_dens_tot"`

	//Orbital density Laplacians
	MODDDensA [][]float64 `msgpack:"mo_dd_dens_a" json:"mo_dd_dens_a"`
	MODDDensB [][]float64 `msgpack:"mo_dd_dens_b" json:"mo_dd_dens_b"`
	DDDensTot []float64   `msgpack:"dd_dens_tot" json:"dd_dens_tot"`

	//Orbital kinetic energy densities
	MOKEDA [][]float64 `msgpack:"mo_ked_a" json:"mo_ked_a"`
	MOKEDB [][]float64 `msgpack:"mo_ked_b" json:"mo_ked_b"`
	KEDTot []float64   `msgpack:"ked_tot" json:"ked_tot"`
}

//NewSpeciesData makes a record with the given identity fields, a canonical
//element symbol, and empty placeholders for everything else, so a partially
//computed record is always structurally valid.
func NewSpeciesData(elem, basis string, atnum, nelec, nspin, nexc int) (*SpeciesData, error) {
	s, err := ElementSymbol(elem)
	if err != nil {
		return nil, errDecorate(err, "NewSpeciesData")
	}
	d := &SpeciesData{Elem: s, Atnum: atnum, Basis: basis, Nelec: nelec, Nspin: nspin, Nexc: nexc}
	d.Rs = []float64{}
	d.MOEnergyA, d.MOEnergyB = []float64{}, []float64{}
	d.MOOccsA, d.MOOccsB = []float64{}, []float64{}
	d.MODensA, d.MODensB, d.DensTot = [][]float64{}, [][]float64{}, []float64{}
	d.MODDensA, d.MODDensB, d.DDensTot = [][]float64{}, [][]float64{}, []float64{}
	d.MODDDensA, d.MODDDensB, d.DDDensTot = [][]float64{}, [][]float64{}, []float64{}
	d.MOKEDA, d.MOKEDB, d.KEDTot = [][]float64{}, [][]float64{}, []float64{}
	return d, nil
}

//Species wraps one SpeciesData record with the name of its source dataset
//and the spin polarization direction, and derives charge, multiplicity and
//spin number from the identity fields. A Species is read-only after
//construction; it is created once by a dataset compute routine and then
//only loaded, queried and interpolated.
type Species struct {
	data    *SpeciesData
	dataset string
	spinpol int
}

//NewSpecies wraps a record. The dataset name is lowercased; spinpol must be
//+1 or -1 and records which stored spin channel is physically alpha: with
//spinpol +1 channel "a" is spin-up, with -1 the labels swap. That lets
//asymmetric datasets keep their native channel order without re-deriving
//any data.
func NewSpecies(dataset string, data *SpeciesData, spinpol int) (*Species, error) {
	if data == nil {
		return nil, CError{ErrNilData, []string{"NewSpecies"}}
	}
	if spinpol != 1 && spinpol != -1 {
		return nil, CError{ErrInvalidSpinPol, []string{"NewSpecies"}}
	}
	return &Species{data: data, dataset: strings.ToLower(dataset), spinpol: spinpol}, nil
}

//Data returns the wrapped record. The record is shared, not copied; callers
//must not mutate it.
func (S *Species) Data() *SpeciesData { return S.data }

//Dataset returns the lowercased identifier of the source dataset.
func (S *Species) Dataset() string { return S.dataset }

//Spinpol returns the spin polarization direction (+1 or -1).
func (S *Species) Spinpol() int { return S.spinpol }

//SetSpinpol changes the spin polarization direction, the only mutable part
//of a Species.
func (S *Species) SetSpinpol(spinpol int) error {
	if spinpol != 1 && spinpol != -1 {
		return CError{ErrInvalidSpinPol, []string{"SetSpinpol"}}
	}
	S.spinpol = spinpol
	return nil
}

//Elem returns the canonical element symbol.
func (S *Species) Elem() string { return S.data.Elem }

//Atnum returns the atomic number.
func (S *Species) Atnum() int { return S.data.Atnum }

//Basis returns the basis set name.
func (S *Species) Basis() string { return S.data.Basis }

//Nelec returns the electron count.
func (S *Species) Nelec() int { return S.data.Nelec }

//Nexc returns the excitation index.
func (S *Species) Nexc() int { return S.data.Nexc }

//Charge returns the net charge, atnum - nelec.
func (S *Species) Charge() int { return S.data.Atnum - S.data.Nelec }

//Nspin returns the spin number N_alpha - N_beta, with the sign resolved
//through the spin polarization direction.
func (S *Species) Nspin() int { return S.data.Nspin * S.spinpol }

//Mult returns the multiplicity, |nspin| + 1.
func (S *Species) Mult() int {
	n := S.data.Nspin
	if n < 0 {
		n = -n
	}
	return n + 1
}

//Energy returns the total energy.
func (S *Species) Energy() Scalar { return S.data.Energy }

//IP returns the ionization potential.
func (S *Species) IP() Scalar { return S.data.IP }

//Mu returns the chemical potential.
func (S *Species) Mu() Scalar { return S.data.Mu }

//Eta returns the chemical hardness.
func (S *Species) Eta() Scalar { return S.data.Eta }

//Mass returns the tabulated element mass.
func (S *Species) Mass() Scalar { return S.data.Mass }

//CovRadius returns the covalent radius.
func (S *Species) CovRadius() Scalar { return S.data.CovRadius }

//VdwRadius returns the van der Waals radius.
func (S *Species) VdwRadius() Scalar { return S.data.VdwRadius }

//DensFunc returns a cubic spline of the electron density. spin selects the
//channel: "t" for alpha+beta, "a" for alpha, "b" for beta, or "m" for the
//magnetization alpha-beta. index optionally selects specific spin orbitals
//(0-based rows of the stored per-orbital arrays) to sum before the fit; by
//default all orbitals of the requested spin are included.
func (S *Species) DensFunc(spin string, index []int) (*DensitySpline, error) {
	sp, err := S.profile(S.data.MODensA, S.data.MODensB, S.data.DensTot, spin, index)
	if err != nil {
		return nil, errDecorate(err, "DensFunc")
	}
	return sp, nil
}

//DDensFunc returns a cubic spline of the radial density gradient. The spin
//and index arguments work as in DensFunc.
func (S *Species) DDensFunc(spin string, index []int) (*DensitySpline, error) {
	sp, err := S.profile(S.data.MODDensA, S.data.MODDensB, S.data.DDensTot, spin, index)
	if err != nil {
		return nil, errDecorate(err, "DDensFunc")
	}
	return sp, nil
}

//DDDensFunc returns a cubic spline of the density Laplacian. The spin and
//index arguments work as in DensFunc.
func (S *Species) DDDensFunc(spin string, index []int) (*DensitySpline, error) {
	sp, err := S.profile(S.data.MODDDensA, S.data.MODDDensB, S.data.DDDensTot, spin, index)
	if err != nil {
		return nil, errDecorate(err, "DDDensFunc")
	}
	return sp, nil
}

//KEDFunc returns a cubic spline of the kinetic energy density. The spin and
//index arguments work as in DensFunc.
func (S *Species) KEDFunc(spin string, index []int) (*DensitySpline, error) {
	sp, err := S.profile(S.data.MOKEDA, S.data.MOKEDB, S.data.KEDTot, spin, index)
	if err != nil {
		return nil, errDecorate(err, "KEDFunc")
	}
	return sp, nil
}

//profile assembles the requested 1-D profile over the radial grid and fits
//the spline. The stored "a"/"b" channels are relabeled through spinpol
//before spin selection.
func (S *Species) profile(moA, moB [][]float64, tot []float64, spin string, index []int) (*DensitySpline, error) {
	switch spin {
	case "t", "a", "b", "m":
	default:
		return nil, CError{ErrInvalidSpin, []string{"profile"}}
	}
	n := len(S.data.Rs)
	if n == 0 {
		return nil, CError{ErrNotComputed, []string{"profile"}}
	}
	if S.spinpol == -1 {
		moA, moB = moB, moA
	}
	var arr []float64
	var err error
	switch {
	case spin == "t" && index == nil:
		if len(tot) == 0 {
			return nil, CError{ErrNotComputed, []string{"profile"}}
		}
		if len(tot) != n {
			return nil, CError{fmt.Sprintf("Total array length %d does not match the radial grid (%d)", len(tot), n), []string{"profile"}}
		}
		arr = append([]float64{}, tot...)
	case spin == "t":
		var sb []float64
		arr, err = sumRows(moA, index, n)
		if err == nil {
			sb, err = sumRows(moB, index, n)
		}
		if err == nil {
			floats.Add(arr, sb)
		}
	case spin == "a":
		arr, err = sumRows(moA, index, n)
	case spin == "b":
		arr, err = sumRows(moB, index, n)
	case spin == "m":
		var sb []float64
		arr, err = sumRows(moA, index, n)
		if err == nil {
			sb, err = sumRows(moB, index, n)
		}
		if err == nil {
			floats.Sub(arr, sb)
		}
	}
	if err != nil {
		return nil, errDecorate(err, "profile")
	}
	return NewDensitySpline(S.data.Rs, arr)
}

//sumRows sums the selected per-orbital rows (all of them when index is nil)
//into one profile of length n.
func sumRows(rows [][]float64, index []int, n int) ([]float64, error) {
	if len(rows) == 0 {
		return nil, CError{ErrNotComputed, []string{"sumRows"}}
	}
	out := make([]float64, n)
	if index == nil {
		for i, r := range rows {
			if len(r) != n {
				return nil, CError{fmt.Sprintf("Orbital row %d has length %d, want %d", i, len(r), n), []string{"sumRows"}}
			}
			floats.Add(out, r)
		}
		return out, nil
	}
	for _, i := range index {
		if i < 0 || i >= len(rows) {
			return nil, CError{fmt.Sprintf("Orbital index %d out of range (%d orbitals)", i, len(rows)), []string{"sumRows"}}
		}
		if len(rows[i]) != n {
			return nil, CError{fmt.Sprintf("Orbital row %d has length %d, want %d", i, len(rows[i]), n), []string{"sumRows"}}
		}
		floats.Add(out, rows[i])
	}
	return out, nil
}
