/*
 * nonbonded.go, part of goqube.
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

package nonbonded

import (
	"fmt"
	"math"

	qube "github.com/rmera/goqube"
)

//epsilon comes out of b_i^2/(4 a_i) in Ha*Bohr^6/A^6. To kJ/mol:
//Bohr^6/A^6 is 0.529177^6, Ha to kcal/mol is 627.509, kcal to kJ is
//4.184.
const epsilonConv = 57.65240039

//AIMTerms holds the dispersion terms of one atom, derived from its AIM
//volume: the volume-rescaled radius (A) and the b_i (Ha Bohr^6) and a_i
//dispersion coefficients of the Lennard-Jones form. A zero-volume atom
//has all terms zero.
type AIMTerms struct {
	Atom int
	RAIM float64
	B    float64
	A    float64
}

//LJParameter is the final nonbonded parameter set of one atom.
type LJParameter struct {
	Atom    int
	Charge  float64 //e
	Sigma   float64 //nm
	Epsilon float64 //kJ/mol
}

//DispersionTerms computes the dispersion terms of every atom of mol from
//its AIM volume: the free-atom radius and dispersion coefficient of the
//element are rescaled by vol/vfree. An element without tabulated
//free-atom values is an error. Zero-volume atoms (say, the parents of
//virtual sites in some partitionings) get zero terms, which is not an
//error: they just contribute no dispersion.
func DispersionTerms(mol qube.Atomer) ([]*AIMTerms, error) {
	terms := make([]*AIMTerms, mol.Len())
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		vfree, bfree, rfree, err := qube.AIMFree(at.Symbol)
		if err != nil {
			return nil, errDecorate(err, fmt.Sprintf("DispersionTerms: atom %d", i))
		}
		t := &AIMTerms{Atom: i}
		if at.Volume != 0 {
			ratio := at.Volume / vfree
			t.RAIM = rfree * math.Cbrt(ratio)
			t.B = bfree * ratio * ratio
			t.A = 32 * t.B * math.Pow(t.RAIM, 6)
		}
		terms[i] = t
	}
	return terms, nil
}

//LJ computes the sigma and epsilon of every atom from its dispersion
//terms, with the charges taken from the atoms of mol. Atoms with zero
//terms get sigma and epsilon of exactly 0.
func LJ(mol qube.Atomer, terms []*AIMTerms) []*LJParameter {
	params := make([]*LJParameter, len(terms))
	for i, t := range terms {
		p := &LJParameter{Atom: t.Atom, Charge: mol.Atom(t.Atom).Charge}
		if t.A != 0 {
			p.Sigma = math.Pow(t.A/t.B, 1.0/6) * qube.A2Nm
			p.Epsilon = t.B * t.B / (4 * t.A) * epsilonConv
		}
		params[i] = p
	}
	return params
}

//Derive runs the whole nonbonded derivation for mol: dispersion terms
//from the AIM volumes, sigma/epsilon from the terms, the net-charge
//check, and, as the settings ask, the polar-hydrogen correction and the
//averaging over the given groups of chemically equivalent atoms (groups
//may be nil). A nil settings uses qube.DefaultSettings.
func Derive(mol qube.AtomMultiCharger, groups [][]int, settings *qube.Settings) ([]*LJParameter, *ChargeReport, error) {
	if settings == nil {
		settings = qube.DefaultSettings()
	}
	terms, err := DispersionTerms(mol)
	if err != nil {
		return nil, nil, errDecorate(err, "Derive")
	}
	params := LJ(mol, terms)
	params, report, err := CheckCharge(params, mol.Charge(), settings)
	if err != nil {
		return nil, report, errDecorate(err, "Derive")
	}
	if settings.PolarHCorrection {
		params = UpdateEpsilons(params, CorrectPolarHydrogens(mol, terms))
	}
	if settings.SymmetryAveraging && len(groups) > 0 {
		params, err = SymmetryAverage(params, groups)
		if err != nil {
			return nil, report, errDecorate(err, "Derive")
		}
	}
	return params, report, nil
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
