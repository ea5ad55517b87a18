/*
 * seminario.go, part of goqube.
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

package seminario

import (
	"fmt"

	qube "github.com/rmera/goqube"
	v3 "github.com/rmera/goqube/v3"
)

//BondTerm is the derived harmonic parameter set for one bond.
type BondTerm struct {
	At1, At2 int     //atom indexes, starting from 0
	K        float64 //kcal/(mol A^2)
	Eq       float64 //equilibrium length, A
}

//AngleTerm is the derived harmonic parameter set for one angle, with
//Center as the vertex.
type AngleTerm struct {
	At1, Center, At2 int
	K                float64 //kcal/(mol rad^2)
	Eq               float64 //equilibrium angle, degrees
}

//Parameters holds every bond and angle term derived from one molecule,
//in the order of the bond and angle lists they were derived from.
type Parameters struct {
	Bonds  []*BondTerm
	Angles []*AngleTerm
}

//Bond returns the term for the bond between atoms i and j, in either
//order, or nil if there is none.
func (P *Parameters) Bond(i, j int) *BondTerm {
	for _, b := range P.Bonds {
		if (b.At1 == i && b.At2 == j) || (b.At1 == j && b.At2 == i) {
			return b
		}
	}
	return nil
}

//Angle returns the term for the angle with vertex b and ends a and c, in
//either order, or nil if there is none.
func (P *Parameters) Angle(a, b, c int) *AngleTerm {
	for _, ang := range P.Angles {
		if ang.Center != b {
			continue
		}
		if (ang.At1 == a && ang.At2 == c) || (ang.At1 == c && ang.At2 == a) {
			return ang
		}
	}
	return nil
}

//Derive computes harmonic bond and angle parameters for mol, whose
//coordinates are in coords (in A), from the Hessian, with the Modified
//Seminario Method. The bonds are taken from the atoms of mol, which must
//have been assigned before (say, with qube.SetBonds), and the angles are
//derived from them. A nil settings uses qube.DefaultSettings.
func Derive(mol qube.Atomer, coords *v3.Matrix, H *qube.Hessian, settings *qube.Settings) (*Parameters, error) {
	bonds := qube.BondsOf(mol)
	if len(bonds) == 0 {
		return nil, Error{"goQube/seminario: The molecule has no bonds assigned", []string{"Derive"}}
	}
	if mol.Len() != H.NAtoms() {
		return nil, Error{fmt.Sprintf("goQube/seminario: Hessian is for %d atoms but the molecule has %d", H.NAtoms(), mol.Len()), []string{"Derive"}}
	}
	par, err := DeriveTerms(bonds, qube.Angles(mol), coords, H, settings)
	if err != nil {
		err = errDecorate(err, "Derive")
	}
	return par, err
}

//DeriveTerms computes harmonic parameters for the given bond and angle
//lists, for callers whose topology does not come from the molecule
//itself. Every force constant is computed for both orderings of its
//atoms and averaged, and scaled by the square of the vibrational scaling
//factor of the settings. See Derive.
func DeriveTerms(bonds []*qube.Bond, angles []*qube.Angle, coords *v3.Matrix, H *qube.Hessian, settings *qube.Settings) (*Parameters, error) {
	if settings == nil {
		settings = qube.DefaultSettings()
	}
	cache, err := NewCache(coords, H)
	if err != nil {
		return nil, errDecorate(err, "DeriveTerms")
	}
	n := cache.NAtoms()
	vib2 := settings.VibScaling * settings.VibScaling
	par := new(Parameters)
	for i, bond := range bonds {
		a, b := bond.At1.Index, bond.At2.Index
		if a < 0 || b < 0 || a >= n || b >= n {
			return nil, Error{fmt.Sprintf("goQube/seminario: Bond %d (%d-%d) out of range for %d atoms", i, a, b, n), []string{"DeriveTerms"}}
		}
		kab, err := bondFC(cache, coords, a, b)
		if err != nil {
			return nil, errDecorate(err, "DeriveTerms")
		}
		kba, err := bondFC(cache, coords, b, a)
		if err != nil {
			return nil, errDecorate(err, "DeriveTerms")
		}
		k := real((kab+kba)/2) * vib2
		par.Bonds = append(par.Bonds, &BondTerm{At1: a, At2: b, K: k, Eq: cache.Dist(a, b)})
	}
	scalings, err := scalingFactors(angles, coords)
	if err != nil {
		return nil, errDecorate(err, "DeriveTerms")
	}
	for i, ang := range angles {
		a, b, c := ang.At1.Index, ang.Center.Index, ang.At2.Index
		if a < 0 || b < 0 || c < 0 || a >= n || b >= n || c >= n {
			return nil, Error{fmt.Sprintf("goQube/seminario: Angle %d (%d-%d-%d) out of range for %d atoms", i, a, b, c, n), []string{"DeriveTerms"}}
		}
		kabc, tabc, err := angleFC(cache, coords, a, b, c, scalings[i])
		if err != nil {
			return nil, errDecorate(err, "DeriveTerms")
		}
		kcba, tcba, err := angleFC(cache, coords, c, b, a, [2]float64{scalings[i][1], scalings[i][0]})
		if err != nil {
			return nil, errDecorate(err, "DeriveTerms")
		}
		par.Angles = append(par.Angles, &AngleTerm{At1: a, Center: b, At2: c, K: vib2 * (kabc + kcba) / 2, Eq: (tabc + tcba) / 2})
	}
	return par, nil
}

//Error is the concrete error type of the package. It implements the
//qube.Error interface.
type Error struct {
	message string
	deco    []string
}

func (err Error) Error() string { return err.message }

//Decorate will add the dec string to the decoration slice of strings of
//the error, and return the resulting slice. If dec is empty, it just
//returns the current decoration.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//errDecorate asserts that the error implements the qube.Error interface
//and decorates it with the caller's name before returning it. It panics
//if given an error of any other kind.
func errDecorate(err error, caller string) error {
	err2 := err.(qube.Error)
	err2.Decorate(caller)
	return err2
}

//PanicMsg is a message used for panics. For errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const ErrPairOutOfRange = PanicMsg("goQube/seminario: Requested atom pair out of range for the cache")
