/*
 * store.go, part of atomdb.
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
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

//dbExt is the extension of the on-disk record container, a zstd-compressed
//MessagePack encoding of the record's field mapping.
const dbExt = ".msgz"

//DataFile returns the database file path for an exact species key. The
//file name is deterministic: canonical element symbol, then charge,
//multiplicity and excitation index zero-padded to three digits, under the
//per-dataset db subdirectory.
func DataFile(elem string, charge, mult, nexc int, dataset, datapath string) (string, error) {
	fn, err := queryFile(ExactQuery(elem, charge, mult, nexc), dataset, datapath)
	if err != nil {
		return "", errDecorate(err, "DataFile")
	}
	return fn, nil
}

//RawDataFile returns the path of a raw intermediate artifact of the compute
//routines, with the same deterministic key as the database file plus a
//caller-chosen suffix, under the per-dataset raw subdirectory.
func RawDataFile(suffix, elem string, charge, mult, nexc int, dataset, datapath string) (string, error) {
	s, err := ElementSymbol(elem)
	if err != nil {
		return "", errDecorate(err, "RawDataFile")
	}
	name := fmt.Sprintf("%s_%03d_%03d_%03d%s", s, charge, mult, nexc, suffix)
	return filepath.Join(datapath, strings.ToLower(dataset), "raw", name), nil
}

//queryFile builds the database path for a query; wildcarded fields become
//glob metacharacters.
func queryFile(q Query, dataset, datapath string) (string, error) {
	e, err := q.Elem.format()
	if err != nil {
		return "", errDecorate(err, "queryFile")
	}
	name := fmt.Sprintf("%s_%s_%s_%s%s", e, q.Charge.format(), q.Mult.format(), q.Nexc.format(), dbExt)
	return filepath.Join(datapath, strings.ToLower(dataset), "db", name), nil
}

//Dump stores each species in the database, creating the parent directories
//as needed. A record that already exists at the same key is overwritten;
//there is no versioning. The container is produced in memory and written in
//one call, so a concurrent reader sees either the old or the new file,
//though a crash mid-write can still truncate it.
func Dump(datapath string, species ...*Species) error {
	for _, s := range species {
		if s == nil {
			return CError{ErrNilData, []string{"Dump"}}
		}
		fn, err := DataFile(s.Elem(), s.Charge(), s.Mult(), s.Nexc(), s.dataset, datapath)
		if err != nil {
			return errDecorate(err, "Dump")
		}
		if err := os.MkdirAll(filepath.Dir(fn), 0755); err != nil {
			return CError{err.Error(), []string{"Dump"}}
		}
		b, err := encodeRecord(s.data)
		if err != nil {
			return errDecorate(err, "Dump")
		}
		if err := os.WriteFile(fn, b, 0644); err != nil {
			return CError{err.Error(), []string{"Dump"}}
		}
	}
	return nil
}

//Load reads exactly one record from the database. It returns a
//NotFoundError if no file exists for the key.
func Load(elem string, charge, mult, nexc int, dataset, datapath string) (*Species, error) {
	fn, err := DataFile(elem, charge, mult, nexc, dataset, datapath)
	if err != nil {
		return nil, errDecorate(err, "Load")
	}
	b, err := os.ReadFile(fn)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NotFoundError{filename: fn, deco: []string{"Load"}}
		}
		return nil, CError{err.Error(), []string{"Load"}}
	}
	d, err := decodeRecord(b)
	if err != nil {
		return nil, errDecorate(err, "Load")
	}
	return NewSpecies(dataset, d, 1)
}

//LoadAll reads every record matching the query, in filesystem enumeration
//order (which callers must treat as unspecified). A query that matches
//nothing returns an empty slice, not an error.
func LoadAll(q Query, dataset, datapath string) ([]*Species, error) {
	pattern, err := queryFile(q, dataset, datapath)
	if err != nil {
		return nil, errDecorate(err, "LoadAll")
	}
	var matches []string
	if q.Wild() {
		matches, err = filepath.Glob(pattern)
		if err != nil {
			return nil, CError{err.Error(), []string{"LoadAll"}}
		}
	} else {
		//an exact query names one file, no globbing needed
		if _, err := os.Stat(pattern); err == nil {
			matches = []string{pattern}
		} else if !os.IsNotExist(err) {
			return nil, CError{err.Error(), []string{"LoadAll"}}
		}
	}
	ret := make([]*Species, 0, len(matches))
	for _, fn := range matches {
		b, err := os.ReadFile(fn)
		if err != nil {
			return nil, CError{err.Error(), []string{"LoadAll"}}
		}
		d, err := decodeRecord(b)
		if err != nil {
			return nil, errDecorate(err, "LoadAll")
		}
		s, err := NewSpecies(dataset, d, 1)
		if err != nil {
			return nil, errDecorate(err, "LoadAll")
		}
		ret = append(ret, s)
	}
	return ret, nil
}

//encodeRecord serializes a record into the on-disk container. The numeric
//arrays stay native MessagePack arrays of floats, not string-encoded.
func encodeRecord(d *SpeciesData) ([]byte, error) {
	packed, err := msgpack.Marshal(d)
	if err != nil {
		return nil, CError{err.Error(), []string{"encodeRecord"}}
	}
	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	if err != nil {
		return nil, CError{err.Error(), []string{"encodeRecord"}}
	}
	if _, err := zw.Write(packed); err != nil {
		zw.Close()
		return nil, CError{err.Error(), []string{"encodeRecord"}}
	}
	if err := zw.Close(); err != nil {
		return nil, CError{err.Error(), []string{"encodeRecord"}}
	}
	return buf.Bytes(), nil
}

//decodeRecord reads a record back from its container with a whole-file
//read through the decompressor.
func decodeRecord(b []byte) (*SpeciesData, error) {
	zr, err := zstd.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, CError{err.Error(), []string{"decodeRecord"}}
	}
	defer zr.Close()
	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, CError{err.Error(), []string{"decodeRecord"}}
	}
	d := new(SpeciesData)
	if err := msgpack.Unmarshal(raw, d); err != nil {
		return nil, CError{err.Error(), []string{"decodeRecord"}}
	}
	return d, nil
}
