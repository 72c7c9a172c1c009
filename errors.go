/*
 * errors.go, part of atomdb.
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

//Error is the interface for errors that all packages in this library implement. The Decorate
//method allows to add and retrieve info from the error, without changing its type or wrapping
//it around something else. The decorate slice should contain a list of the functions in the
//calling stack, plus, for each function, any relevant information, or nothing.
type Error interface {
	Error() string
	Decorate(string) []string
}

//Messages for the most common errors.
const (
	ErrInvalidSpin    = "Invalid spin; must be one of 't', 'a', 'b' or 'm'"
	ErrInvalidDeriv   = "Invalid derivative order; must be 0, 1 or 2"
	ErrInvalidSpinPol = "Invalid spin polarization; must be +1 or -1"
	ErrNotComputed    = "Requested quantity has not been computed for this species"
	ErrNilData        = "Given nil data"
)

//CError is the general concrete error of the library. It is used for invalid
//arguments and any other failure that has no more specific type below.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

//Decorate adds new information to the error. If passed an empty string it
//just returns the current decoration slice without adding to it.
func (err CError) Decorate(deco string) []string {
	//This method doesn't use a pointer receiver but still alters the received,
	//as err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//NotFoundError is returned when an exact database query matches no file.
type NotFoundError struct {
	filename string
	deco     []string
}

func (err NotFoundError) Error() string {
	return fmt.Sprintf("atomdb: no database entry %s", err.filename)
}

//Decorate adds new information to the error.
func (err NotFoundError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the database file the failing query resolved to.
func (err NotFoundError) FileName() string { return err.filename }

//UnsupportedError is returned when a dataset cannot serve a request, e.g. a
//nonzero excitation index a compute routine does not implement, or a dataset
//name with no routine registered at all.
type UnsupportedError struct {
	msg  string
	deco []string
}

//NewUnsupportedError builds an UnsupportedError. Dataset packages use it to
//signal requests their compute routines do not implement.
func NewUnsupportedError(msg string, caller string) UnsupportedError {
	return UnsupportedError{msg: msg, deco: []string{caller}}
}

func (err UnsupportedError) Error() string { return err.msg }

//Decorate adds new information to the error.
func (err UnsupportedError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//errDecorate asserts that err implements Error and decorates it with the
//caller's name before returning it. It panics on a non-atomdb error, as
//mixing error systems here means the program is wrong.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}
