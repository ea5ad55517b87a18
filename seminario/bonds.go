/*
 * bonds.go, part of goqube.
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
	v3 "github.com/rmera/goqube/v3"
)

//bondFC returns the force constant for the bond from atom a to atom b, in
//kcal/(mol A^2): the bond unit vector is projected onto each eigenvector
//of the a,b Hessian sub-block and the projections summed, weighted by the
//eigenvalues (eq. 10 of Seminario, 1996). The result still carries the
//rounding of the eigendecomposition, so the caller averages it with the
//b,a value.
func bondFC(cache *Cache, coords *v3.Matrix, a, b int) (complex128, error) {
	uab, err := bondVector(coords, a, b)
	if err != nil {
		return 0, errDecorate(err, "bondFC")
	}
	return -0.5 * projSum(uab, cache.Vals(a, b), cache.Vecs(a, b)), nil
}
