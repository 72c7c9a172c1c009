/*
 * export_test.go, part of atomdb.
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
	"encoding/json"
	"testing"
)

func TestToJSON(Te *testing.T) {
	s := makeTestSpecies(Te)
	b, err := s.ToJSON()
	if err != nil {
		Te.Fatal(err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		Te.Fatal(err)
	}
	if m["elem"] != "Li" {
		Te.Errorf("elem: got %v", m["elem"])
	}
	rs, ok := m["rs"].([]interface{})
	if !ok || len(rs) != len(s.Data().Rs) {
		Te.Errorf("rs did not export as a numeric sequence: %v", m["rs"])
	}
	dens, ok := m["mo_dens_a"].([]interface{})
	if !ok || len(dens) != 2 {
		Te.Errorf("mo_dens_a did not export as nested sequences: %v", m["mo_dens_a"])
	}
	if m["ip"] != nil {
		Te.Errorf("unset scalar should export as null, got %v", m["ip"])
	}
	if m["energy"] == nil {
		Te.Error("set scalar exported as null")
	}
}

func TestToMap(Te *testing.T) {
	s := makeTestSpecies(Te)
	m, err := s.ToMap()
	if err != nil {
		Te.Fatal(err)
	}
	if m["elem"] != "Li" {
		Te.Errorf("elem: got %v", m["elem"])
	}
	if _, ok := m["dens_tot"]; !ok {
		Te.Error("dens_tot missing from the field mapping")
	}
	if m["eta"] != nil {
		Te.Errorf("unset scalar should map to nil, got %v", m["eta"])
	}
}
