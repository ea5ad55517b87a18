/*
 * polar.go, part of goqube.
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
	"math"

	qube "github.com/rmera/goqube"
)

//CorrectPolarHydrogens returns a new dispersion-term list where the
//dispersion of every hydrogen bonded to N, O or S has been moved onto
//the heavy atom: the square roots of the b_i add, so the corrected heavy
//atom carries (sqrt(b_heavy)+sqrt(b_H))^2 and the hydrogen exactly 0,
//with the a_i recomputed from the new b_i. Atoms in no polar bond keep
//their terms untouched.
func CorrectPolarHydrogens(mol qube.Atomer, terms []*AIMTerms) []*AIMTerms {
	sqb := make([]float64, len(terms))
	for i, t := range terms {
		sqb[i] = math.Sqrt(t.B)
	}
	touched := make([]bool, len(terms))
	for _, b := range qube.BondsOf(mol) {
		h, heavy := polarPair(b)
		if h < 0 {
			continue
		}
		sqb[heavy] += sqb[h]
		sqb[h] = 0
		touched[h], touched[heavy] = true, true
	}
	out := make([]*AIMTerms, len(terms))
	for i, t := range terms {
		if !touched[i] {
			out[i] = t
			continue
		}
		nt := &AIMTerms{Atom: t.Atom, RAIM: t.RAIM}
		nt.B = sqb[i] * sqb[i]
		nt.A = 32 * nt.B * math.Pow(t.RAIM, 6)
		out[i] = nt
	}
	return out
}

//UpdateEpsilons returns a new parameter list with the epsilons
//recomputed from the given dispersion terms. Sigmas and charges are
//kept: the polar-hydrogen redistribution only changes the well depths.
func UpdateEpsilons(params []*LJParameter, terms []*AIMTerms) []*LJParameter {
	out := make([]*LJParameter, len(params))
	for i, p := range params {
		np := *p
		if terms[i].A == 0 {
			np.Epsilon = 0
		} else {
			np.Epsilon = terms[i].B * terms[i].B / (4 * terms[i].A) * epsilonConv
		}
		out[i] = &np
	}
	return out
}

//polarPair returns the indexes of the hydrogen and of the heavy atom if
//the bond joins a hydrogen with N, O or S, and -1, -1 otherwise.
func polarPair(b *qube.Bond) (int, int) {
	if b.At1.Symbol == "H" && polarHeavy(b.At2.Symbol) {
		return b.At1.Index, b.At2.Index
	}
	if b.At2.Symbol == "H" && polarHeavy(b.At1.Symbol) {
		return b.At2.Index, b.At1.Index
	}
	return -1, -1
}

func polarHeavy(symbol string) bool {
	return symbol == "N" || symbol == "O" || symbol == "S"
}
