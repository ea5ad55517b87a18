/*
 * hessian.go, part of goqube.
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

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

//SymTol is the default tolerance when checking that a Hessian
//is symmetric.
const SymTol = 1e-5

//Hessian contains the 3Nx3N matrix of second derivatives of the energy
//with respect to the cartesian coordinates of an N-atom molecule, in
//kcal/(mol*A^2). It is read-only after construction.
//
//It is deliberately not backed by a symmetric matrix type: an asymmetric
//input must surface as an error, never get silently symmetrized.
type Hessian struct {
	m      *mat.Dense
	natoms int
}

//NewHessian builds a Hessian for natoms atoms from the row-major data
//slice, which must have (3*natoms)^2 elements, in kcal/(mol*A^2).
//It checks that the matrix is symmetric within tol (SymTol is used if
//tol is not positive) and returns an error naming the first offending
//pair of elements otherwise. A Hessian that fails this check indicates
//a data-integrity problem upstream.
func NewHessian(data []float64, natoms int, tol float64) (*Hessian, error) {
	if tol <= 0 {
		tol = SymTol
	}
	n := 3 * natoms
	if len(data) != n*n {
		return nil, CError{fmt.Sprintf("goQube: Hessian data length %d, wanted %d for %d atoms", len(data), n*n, natoms), []string{"NewHessian"}}
	}
	m := mat.NewDense(n, n, data)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if diff := math.Abs(m.At(i, j) - m.At(j, i)); diff > tol {
				return nil, CError{fmt.Sprintf("goQube: Asymmetric Hessian: H[%d][%d]=%g but H[%d][%d]=%g (difference %g, tolerance %g)", i, j, m.At(i, j), j, i, m.At(j, i), diff, tol), []string{"NewHessian"}}
			}
		}
	}
	return &Hessian{m: m, natoms: natoms}, nil
}

//NAtoms returns the number of atoms whose second derivatives the
//Hessian contains.
func (H *Hessian) NAtoms() int {
	return H.natoms
}

//At returns the element at row i, column j of the full 3Nx3N matrix.
func (H *Hessian) At(i, j int) float64 {
	return H.m.At(i, j)
}

//Block returns the 3x3 sub-matrix coupling the coordinates of atom i
//with those of atom j, i.e. H[3i:3i+3, 3j:3j+3]. The returned matrix
//is a view: the caller must not modify it.
func (H *Hessian) Block(i, j int) *mat.Dense {
	if i >= H.natoms || j >= H.natoms || i < 0 || j < 0 {
		panic(ErrAtomOutOfRange)
	}
	return H.m.Slice(3*i, 3*i+3, 3*j, 3*j+3).(*mat.Dense)
}
