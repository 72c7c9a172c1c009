/*
 * key.go, part of atomdb.
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

import "fmt"

//ElemSel selects the element field of a database key: one exact element, or
//the wildcard matching every element.
type ElemSel struct {
	symbol string
	any    bool
}

//Symbol selects one element, in any capitalization.
func Symbol(elem string) ElemSel { return ElemSel{symbol: elem} }

//AnyElem is the element wildcard.
func AnyElem() ElemSel { return ElemSel{any: true} }

//format renders the selection as a file-name component, canonicalizing the
//element symbol.
func (e ElemSel) format() (string, error) {
	if e.any {
		return "*", nil
	}
	s, err := ElementSymbol(e.symbol)
	if err != nil {
		return "", errDecorate(err, "ElemSel.format")
	}
	return s, nil
}

//IntSel selects an integer field of a database key (charge, multiplicity or
//excitation index): one exact value, or the wildcard.
type IntSel struct {
	n   int
	any bool
}

//N selects one exact value.
func N(i int) IntSel { return IntSel{n: i} }

//AnyN is the integer wildcard.
func AnyN() IntSel { return IntSel{any: true} }

//format renders the selection as a fixed-width file-name component.
func (s IntSel) format() string {
	if s.any {
		return "*"
	}
	return fmt.Sprintf("%03d", s.n)
}

//Query is a per-field exact-or-wildcard selection over the database key
//(element, charge, multiplicity, excitation index). The dataset is never
//wildcarded; it names the subdirectory queried.
type Query struct {
	Elem   ElemSel
	Charge IntSel
	Mult   IntSel
	Nexc   IntSel
}

//ExactQuery builds a query with every field exact.
func ExactQuery(elem string, charge, mult, nexc int) Query {
	return Query{Elem: Symbol(elem), Charge: N(charge), Mult: N(mult), Nexc: N(nexc)}
}

//Wild reports whether any field of the query is wildcarded.
func (q Query) Wild() bool {
	return q.Elem.any || q.Charge.any || q.Mult.any || q.Nexc.any
}
