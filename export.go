/*
 * export.go, part of atomdb.
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

	"github.com/vmihailenco/msgpack/v5"
)

//ToJSON returns the JSON representation of the wrapped record, for
//interchange and debugging. Array fields become nested sequences of
//numbers; unset scalars become null. The keys are the same snake_case
//names used in the on-disk container, in the record's field order.
func (S *Species) ToJSON() ([]byte, error) {
	b, err := json.Marshal(S.data)
	if err != nil {
		return nil, CError{err.Error(), []string{"ToJSON"}}
	}
	return b, nil
}

//ToMap returns the wrapped record as a field-name to value mapping, the
//same mapping the on-disk container encodes.
func (S *Species) ToMap() (map[string]interface{}, error) {
	packed, err := msgpack.Marshal(S.data)
	if err != nil {
		return nil, CError{err.Error(), []string{"ToMap"}}
	}
	var m map[string]interface{}
	if err := msgpack.Unmarshal(packed, &m); err != nil {
		return nil, CError{err.Error(), []string{"ToMap"}}
	}
	return m, nil
}
