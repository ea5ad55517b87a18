/*
 * maths.go, part of goqube.
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
	"math/cmplx"

	v3 "github.com/rmera/goqube/v3"
)

//everything below this is considered zero.
const appzero float64 = 0.000000000001

//bondVector returns the unit vector pointing from atom a to atom b.
//Coinciding atoms make the direction undefined, which is always a
//data-integrity problem upstream, so it is an error here.
func bondVector(coords *v3.Matrix, a, b int) (*v3.Matrix, error) {
	v := v3.Zeros(1)
	v.Sub(coords.VecView(b), coords.VecView(a))
	norm := v.Norm(2)
	if norm <= appzero {
		return nil, Error{fmt.Sprintf("goQube/seminario: Atoms %d and %d coincide, the bond direction is undefined", a, b), []string{"bondVector"}}
	}
	v.Scale(1/norm, v)
	return v, nil
}

//planeNormal returns the normalized cross product of the first vecs of u
//and v, and whether it is defined. For unit u and v it is the normal of
//their common plane. The second return is false when u and v are
//(numerically) parallel, which for the vectors along the two bonds of an
//angle signals a linear geometry.
func planeNormal(u, v *v3.Matrix) (*v3.Matrix, bool) {
	n := v3.Zeros(1)
	n.Cross(u, v)
	norm := n.Norm(2)
	if norm <= appzero {
		return nil, false
	}
	n.Scale(1/norm, n)
	return n, true
}

//perpInPlane returns the unit vector perpendicular to uref and contained
//in the plane with normal un. un must not be parallel to uref; when un is
//a plane normal obtained from uref and another vector, that holds by
//construction.
func perpInPlane(un, uref *v3.Matrix) *v3.Matrix {
	p := v3.Zeros(1)
	p.Cross(un, uref)
	p.Unit(p)
	return p
}

//cdot returns the dot product of the real vector u (first vec only) with
//the conjugate of the complex vector v.
func cdot(u *v3.Matrix, v [3]complex128) complex128 {
	var d complex128
	for k := 0; k < 3; k++ {
		d += complex(u.At(0, k), 0) * cmplx.Conj(v[k])
	}
	return d
}

//projSum returns the eigenvalue-weighted sum of the projections of the
//unit vector u onto the eigenvectors of one Hessian sub-block:
//sum_i vals_i * |u . vecs_i|. The modulus makes the result invariant to
//the sign, and to the phase, of each eigenvector.
func projSum(u *v3.Matrix, vals [3]complex128, vecs [3][3]complex128) complex128 {
	var s complex128
	for i := 0; i < 3; i++ {
		s += vals[i] * complex(cmplx.Abs(cdot(u, vecs[i])), 0)
	}
	return s
}

//uPA returns the vector contained in the plane of atoms a,b,c and
//perpendicular to the a->b direction, used to compare angles sharing the
//central atom b. It returns nil, and no error, when the three atoms are
//colinear and the plane is undefined.
func uPA(coords *v3.Matrix, a, b, c int) (*v3.Matrix, error) {
	uab, err := bondVector(coords, a, b)
	if err != nil {
		return nil, errDecorate(err, "uPA")
	}
	ucb, err := bondVector(coords, c, b)
	if err != nil {
		return nil, errDecorate(err, "uPA")
	}
	un, ok := planeNormal(ucb, uab)
	if !ok {
		return nil, nil
	}
	return perpInPlane(un, uab), nil
}
