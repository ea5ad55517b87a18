/*
 * chem.go, part of goqube.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package qube

import (
	"fmt"
	"strings"

	v3 "github.com/rmera/goqube/v3"
)

/**Note: Some functions here panic instead of returning errors. This is because they are "fundamental"
 * functions. I considered that if something goes wrong here, the program is way-most likely wrong and should
 * crash. Most panics are related to using the function on a nil object or trying to access out-of bounds
 * fields**/

//Atom contains the per-atom data used in parameter derivation, except for
//the coordinates, which are in a separate matrix.
type Atom struct {
	Name   string  //the display name, e.g. "CA", used for labeling only
	Symbol string  //the element symbol, e.g. "Cl"
	Index  int     //0-based position of the atom in the molecule
	Mass   float64
	Charge float64 //AIM partial charge, in e
	Volume float64 //AIM volume, in Bohr^3
	Bonds  []*Bond //bonds in which the atom participates
}

//NewAtom returns an Atom with the given name, element symbol and index.
//The symbol capitalization is normalized, so "cl", "CL" and "Cl" are all
//accepted for chlorine.
func NewAtom(name, symbol string, index int) *Atom {
	if len(symbol) > 1 {
		symbol = strings.ToUpper(symbol[:1]) + strings.ToLower(symbol[1:])
	} else {
		symbol = strings.ToUpper(symbol)
	}
	return &Atom{Name: name, Symbol: symbol, Index: index}
}

//Copy returns a copy of the Atom object. The bonds of the original
//atom are not copied, as they reference other atoms.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic(ErrNilAtom)
	}
	Newat := new(Atom)
	Newat.Name = A.Name
	Newat.Symbol = A.Symbol
	Newat.Index = A.Index
	Newat.Mass = A.Mass
	Newat.Charge = A.Charge
	Newat.Volume = A.Volume
	return Newat
}

/*****Molecule type***/

//Molecule contains the atoms, coordinates (in A) and electronic data of
//a molecule. Coordinates are not expected to change during the derivation.
type Molecule struct {
	Atoms  []*Atom
	Coords *v3.Matrix
	charge int
	multi  int
}

//NewMolecule builds a molecule from atoms and coordinates, with total
//charge charge and multiplicity multi. It returns an error if the data
//is nil or the lengths are inconsistent.
func NewMolecule(ats []*Atom, coords *v3.Matrix, charge, multi int) (*Molecule, error) {
	if ats == nil || coords == nil {
		return nil, CError{string(ErrNilData), []string{"NewMolecule"}}
	}
	if len(ats) != coords.NVecs() {
		return nil, CError{string(ErrCoordsAtomsMismatch), []string{"NewMolecule"}}
	}
	mol := new(Molecule)
	mol.Atoms = ats
	mol.Coords = coords
	mol.charge = charge
	mol.multi = multi
	mol.FillIndexes()
	return mol, nil
}

/*Molecule methods*/

//Charge gets the total charge of the molecule.
func (M *Molecule) Charge() int {
	return M.charge
}

//Multi gets the multiplicity of the molecule.
func (M *Molecule) Multi() int {
	return M.multi
}

//SetCharge sets the total charge of the molecule to i.
func (M *Molecule) SetCharge(i int) {
	M.charge = i
}

//SetMulti sets the multiplicity of the molecule to i.
func (M *Molecule) SetMulti(i int) {
	M.multi = i
}

//Atom returns the Atom corresponding to the index i
//of the Atom slice in the molecule. Panics if
//out of range.
func (M *Molecule) Atom(i int) *Atom {
	if i >= M.Len() {
		panic(ErrAtomOutOfRange)
	}
	return M.Atoms[i]
}

//SetAtom sets the (i+1)th Atom of the molecule to at.
//Panics if out of range.
func (M *Molecule) SetAtom(i int, at *Atom) {
	if i >= M.Len() {
		panic(ErrAtomOutOfRange)
	}
	M.Atoms[i] = at
}

//Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.Atoms)
}

//FillIndexes sets the Index field of every atom to its
//current position in the molecule.
func (M *Molecule) FillIndexes() {
	for key := range M.Atoms {
		M.Atoms[key].Index = key
	}
}

//FillMasses assigns standard masses to all atoms whose mass is not yet
//set. It returns an error on atoms with an unknown element symbol.
func (M *Molecule) FillMasses() error {
	for i, at := range M.Atoms {
		if at.Mass != 0 {
			continue
		}
		mass, ok := symbolMass[at.Symbol]
		if !ok {
			return CError{fmt.Sprintf("goQube: Unknown element symbol %s for atom %d", at.Symbol, i), []string{"Molecule.FillMasses"}}
		}
		at.Mass = mass
	}
	return nil
}

//Masses returns a slice with the masses of all atoms, and an error
//if they have not been assigned.
func (M *Molecule) Masses() ([]float64, error) {
	mass := make([]float64, M.Len())
	for i := 0; i < M.Len(); i++ {
		thisatom := M.Atom(i)
		if thisatom.Mass == 0 {
			return nil, CError{fmt.Sprintf("goQube: Not all the masses have been obtained: %d %v", i, thisatom), []string{"Molecule.Masses"}}
		}
		mass[i] = thisatom.Mass
	}
	return mass, nil
}

//Copy returns a copy of the molecule, including coordinates and bonds.
func (M *Molecule) Copy() *Molecule {
	mol := new(Molecule)
	mol.Atoms = make([]*Atom, M.Len())
	for key, val := range M.Atoms {
		mol.Atoms[key] = val.Copy()
	}
	mol.Coords = v3.Zeros(M.Len())
	mol.Coords.Copy(M.Coords)
	mol.charge = M.charge
	mol.multi = M.multi
	for _, b := range BondsOf(M) {
		nb := &Bond{Index: b.Index, At1: mol.Atoms[b.At1.Index], At2: mol.Atoms[b.At2.Index], Dist: b.Dist, Order: b.Order}
		nb.At1.Bonds = append(nb.At1.Bonds, nb)
		nb.At2.Bonds = append(nb.At2.Bonds, nb)
	}
	return mol
}
