/*
 * optional.go, part of atomdb.
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
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

//Scalar is an optional scalar property of a species. Its zero value is
//"not yet computed", which is distinct from a computed value of zero; the
//distinction survives serialization (unset values are stored as nil).
type Scalar struct {
	val float64
	ok  bool
}

//F returns a set Scalar holding v.
func F(v float64) Scalar {
	return Scalar{val: v, ok: true}
}

//Value returns the stored value and whether it has been computed at all.
func (s Scalar) Value() (float64, bool) {
	return s.val, s.ok
}

//IsSet reports whether the value has been computed.
func (s Scalar) IsSet() bool { return s.ok }

//EncodeMsgpack implements msgpack.CustomEncoder. Unset values encode as nil.
func (s Scalar) EncodeMsgpack(enc *msgpack.Encoder) error {
	if !s.ok {
		return enc.EncodeNil()
	}
	return enc.EncodeFloat64(s.val)
}

//DecodeMsgpack implements msgpack.CustomDecoder.
func (s *Scalar) DecodeMsgpack(dec *msgpack.Decoder) error {
	c, err := dec.PeekCode()
	if err != nil {
		return err
	}
	if c == msgpcode.Nil {
		s.val, s.ok = 0, false
		return dec.DecodeNil()
	}
	v, err := dec.DecodeFloat64()
	if err != nil {
		return err
	}
	s.val, s.ok = v, true
	return nil
}

//MarshalJSON implements json.Marshaler. Unset values encode as null.
func (s Scalar) MarshalJSON() ([]byte, error) {
	if !s.ok {
		return []byte("null"), nil
	}
	return json.Marshal(s.val)
}

//UnmarshalJSON implements json.Unmarshaler.
func (s *Scalar) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		s.val, s.ok = 0, false
		return nil
	}
	if err := json.Unmarshal(b, &s.val); err != nil {
		return err
	}
	s.ok = true
	return nil
}
