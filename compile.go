/*
 * compile.go, part of atomdb.
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
	"os"
	"path/filepath"
	"strings"
)

//CompileFunc is the contract of a dataset's compute routine. Given the
//species key, the dataset name and the data root, it returns a fully or
//partially populated Species; it is free to read whatever raw inputs it
//needs from the RawDataFile path convention. The routines themselves are
//external collaborators; this package only dispatches to them.
type CompileFunc func(elem string, charge, mult, nexc int, dataset, datapath string) (*Species, error)

var compilers = make(map[string]CompileFunc)

//RegisterDataset makes a dataset's compute routine available to Compile,
//under the lowercased dataset name. It is meant to be called from the
//dataset package's init function, and panics on a nil routine or a
//duplicate name, as either means the program is wrong.
func RegisterDataset(name string, fn CompileFunc) {
	name = strings.ToLower(name)
	if fn == nil {
		panic("atomdb: RegisterDataset called with a nil routine for " + name)
	}
	if _, dup := compilers[name]; dup {
		panic("atomdb: RegisterDataset called twice for " + name)
	}
	compilers[name] = fn
}

//Compile runs the registered compute routine of the given dataset for one
//species and stores the resulting record in the database, overwriting any
//previous record at the same key. It returns the stored species.
func Compile(elem string, charge, mult, nexc int, dataset, datapath string) (*Species, error) {
	ds := strings.ToLower(dataset)
	fn, ok := compilers[ds]
	if !ok {
		return nil, UnsupportedError{fmt.Sprintf("No compute routine registered for dataset '%s'", dataset), []string{"Compile"}}
	}
	for _, sub := range []string{"db", "raw"} {
		if err := os.MkdirAll(filepath.Join(datapath, ds, sub), 0755); err != nil {
			return nil, CError{err.Error(), []string{"Compile"}}
		}
	}
	s, err := fn(elem, charge, mult, nexc, ds, datapath)
	if err != nil {
		return nil, errDecorate(err, "Compile")
	}
	if err := Dump(datapath, s); err != nil {
		return nil, errDecorate(err, "Compile")
	}
	return s, nil
}
