/*
 * errors.go, part of goqube.
 *
 *
 * Copyright 2025 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 *
 * goQube is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package qube

//CError is the concrete error type of the library. It implements the
//qube.Error interface.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

//Decorate will add the dec string to the decoration slice of strings of the
//error, and return the resulting slice. If dec is empty, it just returns the
//current decoration.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//errDecorate asserts that the error implements the qube.Error interface and
//decorates it with the caller's name before returning it. It panics if given
//an error of any other kind.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

//PanicMsg is a message used for panics, even though it does satisfy the
//error interface. For errors use CError.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilData             = PanicMsg("goQube: Nil data given")
	ErrNilAtom             = PanicMsg("goQube: Nil atom given")
	ErrAtomOutOfRange      = PanicMsg("goQube: Requested atom out of range")
	ErrNotBondedToBond     = PanicMsg("goQube: Trying to cross a bond from an atom not present in the bond")
	ErrCoordsAtomsMismatch = PanicMsg("goQube: Coordinates and atom data have different lengths")
)
