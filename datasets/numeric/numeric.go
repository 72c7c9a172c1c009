/*
 * numeric.go, part of atomdb.
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

package numeric

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/theochem/atomdb"
)

//Name is the dataset identifier this package registers under.
const Name = "numeric"

func init() {
	atomdb.RegisterDataset(Name, Run)
}

//Run compiles one species from the pretabulated profiles in the raw area
//and returns the populated record. It is the CompileFunc of this dataset.
func Run(elem string, charge, mult, nexc int, dataset, datapath string) (*atomdb.Species, error) {
	if nexc != 0 {
		return nil, atomdb.NewUnsupportedError("Nonzero excitation index is not supported by the numeric dataset", "numeric.Run")
	}
	sym, err := atomdb.ElementSymbol(elem)
	if err != nil {
		return nil, errDecorate(err, "numeric.Run")
	}
	atnum, err := atomdb.ElementNumber(sym)
	if err != nil {
		return nil, errDecorate(err, "numeric.Run")
	}
	raw := func(suffix string) (string, error) {
		return atomdb.RawDataFile(suffix, sym, charge, mult, nexc, dataset, datapath)
	}

	//The basis set is part of the record identity and comes from the raw
	//area; a fully numeric tabulation has no basis and leaves it empty.
	fn, err := raw(".basis.dat")
	if err != nil {
		return nil, errDecorate(err, "numeric.Run")
	}
	basis, err := readName(fn)
	if err != nil {
		return nil, errDecorate(err, "numeric.Run")
	}

	nelec := atnum - charge
	nspin := mult - 1
	data, err := atomdb.NewSpeciesData(sym, basis, atnum, nelec, nspin, nexc)
	if err != nil {
		return nil, errDecorate(err, "numeric.Run")
	}

	//Tabulated element reference data. The neutral-atom radii do not
	//apply to charged species.
	covrad, vdwrad, mass, err := atomdb.ElementData(sym)
	if err != nil {
		return nil, errDecorate(err, "numeric.Run")
	}
	data.Mass = mass
	if charge == 0 {
		data.CovRadius = covrad
		data.VdwRadius = vdwrad
	}

	fn, err = raw(".grid.dat")
	if err != nil {
		return nil, errDecorate(err, "numeric.Run")
	}
	grid, err := readVector(fn)
	if err != nil {
		return nil, errDecorate(err, "numeric.Run")
	}
	if grid == nil {
		return nil, Error{fmt.Sprintf("Missing radial grid file %s", fn), []string{"numeric.Run"}}
	}
	data.Rs = grid

	//Optional vector quantities.
	vectors := []struct {
		suffix string
		dst    *[]float64
	}{
		{".mo_energy_a.dat", &data.MOEnergyA},
		{".mo_energy_b.dat", &data.MOEnergyB},
		{".mo_occs_a.dat", &data.MOOccsA},
		{".mo_occs_b.dat", &data.MOOccsB},
		{".dens_tot.dat", &data.DensTot},
		{".d_dens_tot.dat", &data.DDensTot},
		{".dd_dens_tot.dat", &data.DDDensTot},
		{".ked_tot.dat", &data.KEDTot},
	}
	for _, v := range vectors {
		fn, err := raw(v.suffix)
		if err != nil {
			return nil, errDecorate(err, "numeric.Run")
		}
		vec, err := readVector(fn)
		if err != nil {
			return nil, errDecorate(err, "numeric.Run")
		}
		if vec != nil {
			*v.dst = vec
		}
	}

	//Optional per-orbital quantities, one orbital per row over the grid.
	matrices := []struct {
		suffix string
		dst    *[][]float64
	}{
		{".mo_dens_a.dat", &data.MODensA},
		{".mo_dens_b.dat", &data.MODensB},
		{".mo_d_dens_a.dat", &data.MODDensA},
		{".mo_d_dens_b.dat", &data.MODDensB},
		{".mo_dd_dens_a.dat", &data.MODDDensA},
		{".mo_dd_dens_b.dat", &data.MODDDensB},
		{".mo_ked_a.dat", &data.MOKEDA},
		{".mo_ked_b.dat", &data.MOKEDB},
	}
	for _, m := range matrices {
		fn, err := raw(m.suffix)
		if err != nil {
			return nil, errDecorate(err, "numeric.Run")
		}
		rows, err := readTable(fn)
		if err != nil {
			return nil, errDecorate(err, "numeric.Run")
		}
		if rows != nil {
			for i, r := range rows {
				if len(r) != len(grid) {
					return nil, Error{fmt.Sprintf("%s: row %d has %d values, want %d", fn, i, len(r), len(grid)), []string{"numeric.Run"}}
				}
			}
			*m.dst = rows
		}
	}

	//Scalar properties.
	fn, err = raw(".scf.dat")
	if err != nil {
		return nil, errDecorate(err, "numeric.Run")
	}
	scalars, err := readScalars(fn)
	if err != nil {
		return nil, errDecorate(err, "numeric.Run")
	}
	if v, ok := scalars["energy"]; ok {
		data.Energy = atomdb.F(v)
	}
	if v, ok := scalars["ip"]; ok {
		data.IP = atomdb.F(v)
	}
	if v, ok := scalars["mu"]; ok {
		data.Mu = atomdb.F(v)
	}
	if v, ok := scalars["eta"]; ok {
		data.Eta = atomdb.F(v)
	}

	return atomdb.NewSpecies(dataset, data, 1)
}

//readTable reads a whitespace-separated table of floats, one row per line,
//skipping blank lines and # comments. A missing file is not an error; it
//returns nil rows, meaning "not computed".
func readTable(fn string) ([][]float64, error) {
	f, err := os.Open(fn)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, Error{err.Error(), []string{"readTable"}}
	}
	defer f.Close()
	var rows [][]float64
	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		row := make([]float64, len(fields))
		for i, w := range fields {
			v, err := strconv.ParseFloat(w, 64)
			if err != nil {
				return nil, Error{fmt.Sprintf("%s:%d: bad number '%s'", fn, lineno, w), []string{"readTable"}}
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, Error{err.Error(), []string{"readTable"}}
	}
	return rows, nil
}

//readVector reads a table that holds a single profile, either as one row or
//as one value per line. A missing file returns nil.
func readVector(fn string) ([]float64, error) {
	rows, err := readTable(fn)
	if err != nil || rows == nil {
		return nil, err
	}
	if len(rows) == 1 {
		return rows[0], nil
	}
	vec := make([]float64, len(rows))
	for i, r := range rows {
		if len(r) != 1 {
			return nil, Error{fmt.Sprintf("%s: expected a vector, got %d columns in row %d", fn, len(r), i), []string{"readVector"}}
		}
		vec[i] = r[0]
	}
	return vec, nil
}

//readName reads a single name from the file: the first line that is not
//blank or a # comment, trimmed. A missing file returns "".
func readName(fn string) (string, error) {
	f, err := os.Open(fn)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", Error{err.Error(), []string{"readName"}}
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line, nil
	}
	if err := scanner.Err(); err != nil {
		return "", Error{err.Error(), []string{"readName"}}
	}
	return "", nil
}

//readScalars reads "name value" lines. A missing file returns an empty map.
func readScalars(fn string) (map[string]float64, error) {
	f, err := os.Open(fn)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]float64{}, nil
		}
		return nil, Error{err.Error(), []string{"readScalars"}}
	}
	defer f.Close()
	out := make(map[string]float64)
	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, Error{fmt.Sprintf("%s:%d: expected 'name value'", fn, lineno), []string{"readScalars"}}
		}
		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, Error{fmt.Sprintf("%s:%d: bad number '%s'", fn, lineno, fields[1]), []string{"readScalars"}}
		}
		out[strings.ToLower(fields[0])] = v
	}
	if err := scanner.Err(); err != nil {
		return nil, Error{err.Error(), []string{"readScalars"}}
	}
	return out, nil
}

//Errors

//errDecorate asserts that err implements atomdb.Error and decorates it with
//the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(atomdb.Error)
	err2.Decorate(caller)
	return err2
}

//Error is the error type of the numeric dataset. It fullfills atomdb.Error.
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
