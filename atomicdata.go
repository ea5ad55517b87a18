/*
 * atomicdata.go, part of goqube.
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

import "fmt"

//A map for assigning mass to elements.
//Note that just common "bio-elements" are present
var symbolMass = map[string]float64{
	"H":  1.0,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"P":  30.97,
	"S":  32.06,
	"K":  39.1,
	"Ca": 40.08,
	"Mg": 24.30,
	"Cl": 35.45,
	"Na": 22.99,
	"Zn": 65.38,
	"F":  18.998,
	"Br": 79.904,
	"I":  126.90,
}

//A map for assigning covalent radii to elements
//Values from Cordero et al., 2008 (DOI:10.1039/B801115J)
//Note that just common "bio-elements" are present
var symbolCovrad = map[string]float64{
	"H":  0.4, // 0.31 I altered this one. Since H always has only one bond, it doesn't matter if I set a longer radius, the extra bonds will get eliminated later.
	"C":  0.76, //the sp3 radius
	"O":  0.66,
	"N":  0.71,
	"P":  1.07,
	"S":  1.05,
	"K":  2.03,
	"Ca": 1.76,
	"Mg": 1.41,
	"Cl": 1.02,
	"Na": 1.66,
	"Zn": 1.22,
	"F":  0.57,
	"Br": 1.2,
	"I":  1.39,
}

//A map for checking that atoms don't
//have too many bonds. A value of 0 means
//undefined, i.e. that this atom shouldn't
//be checked for max bonds.
var symbolMaxBonds = map[string]int{
	"H":  1, //this is the only one truly important.
	"C":  4,
	"O":  2,
	"N":  0, //undefined
	"P":  0,
	"S":  0,
	"F":  1,
	"Br": 1,
	"I":  1,
}

//Free-atom reference data for the AIM Lennard-Jones derivation,
//from Cole et al., 2016 (DOI:10.1021/acs.jctc.6b00027).
//Beware weird units (wrong in the paper too).

//The free-atom volume, in Bohr^3.
var symbolVfree = map[string]float64{
	"H":  7.6,
	"C":  34.4,
	"N":  25.9,
	"O":  22.1,
	"F":  18.2,
	"S":  75.2,
	"Cl": 65.1,
	"Br": 95.7,
}

//The free-atom dispersion coefficient, in Ha*Bohr^6.
var symbolBfree = map[string]float64{
	"H":  6.5,
	"C":  46.6,
	"N":  24.2,
	"O":  15.6,
	"F":  9.5,
	"S":  134.0,
	"Cl": 94.6,
	"Br": 162.0,
}

//The free-atom radius, in A.
var symbolRfree = map[string]float64{
	"H":  1.64,
	"C":  2.08,
	"N":  1.72,
	"O":  1.60,
	"F":  1.58,
	"S":  2.00,
	"Cl": 1.88,
	"Br": 1.96,
}

//AIMFree returns the free-atom reference volume (Bohr^3), dispersion
//coefficient (Ha*Bohr^6) and radius (A) for the given element, used by
//the AIM Lennard-Jones derivation. Elements without reference data are
//a hard error, never a silent default.
func AIMFree(symbol string) (vfree, bfree, rfree float64, err error) {
	var ok bool
	if vfree, ok = symbolVfree[symbol]; !ok {
		return 0, 0, 0, CError{fmt.Sprintf("goQube: No AIM reference data for element: %s", symbol), []string{"AIMFree"}}
	}
	bfree = symbolBfree[symbol]
	rfree = symbolRfree[symbol]
	return vfree, bfree, rfree, nil
}
