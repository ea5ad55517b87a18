/*
 * cache.go, part of goqube.
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
	"gonum.org/v1/gonum/mat"
)

type pairEigen struct {
	vals [3]complex128
	vecs [3][3]complex128 //vecs[i] is the eigenvector for vals[i]
}

//Cache holds, for every ordered pair of atoms, the eigendecomposition of
//the corresponding 3x3 sub-block of the Hessian, plus the matrix of
//interatomic distances. Building it is the O(N^2) part of the method, so
//it is done exactly once per molecule; afterwards the cache is read-only
//and may be shared freely.
type Cache struct {
	n     int
	dists *mat.Dense
	pairs []pairEigen
}

//NewCache builds the eigendecomposition cache for the given coordinates
//(in A) and Hessian. It returns an error if the dimensions disagree or if
//the eigendecomposition of any sub-block fails to converge, naming the
//offending pair.
func NewCache(coords *v3.Matrix, H *qube.Hessian) (*Cache, error) {
	n := H.NAtoms()
	if coords.NVecs() != n {
		return nil, Error{fmt.Sprintf("goQube/seminario: Hessian is for %d atoms but %d coordinates were given", n, coords.NVecs()), []string{"NewCache"}}
	}
	C := &Cache{n: n, dists: mat.NewDense(n, n, nil), pairs: make([]pairEigen, n*n)}
	t := v3.Zeros(1)
	vecs := mat.NewCDense(3, 3, nil)
	var eig mat.Eigen
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			t.Sub(coords.VecView(i), coords.VecView(j))
			C.dists.Set(i, j, t.Norm(2))
			if ok := eig.Factorize(H.Block(i, j), mat.EigenRight); !ok {
				return nil, Error{fmt.Sprintf("goQube/seminario: Eigendecomposition failed for the Hessian block of atoms %d,%d", i, j), []string{"NewCache"}}
			}
			p := &C.pairs[i*n+j]
			vals := eig.Values(nil)
			eig.VectorsTo(vecs)
			for k := 0; k < 3; k++ {
				p.vals[k] = vals[k]
				for r := 0; r < 3; r++ {
					p.vecs[k][r] = vecs.At(r, k)
				}
			}
		}
	}
	return C, nil
}

//NAtoms returns the number of atoms the cache was built for.
func (C *Cache) NAtoms() int {
	return C.n
}

//Dist returns the distance, in A, between atoms i and j.
func (C *Cache) Dist(i, j int) float64 {
	return C.dists.At(i, j)
}

//Vals returns the three eigenvalues of the Hessian sub-block coupling
//atoms i and j.
func (C *Cache) Vals(i, j int) [3]complex128 {
	C.check(i, j)
	return C.pairs[i*C.n+j].vals
}

//Vecs returns the three eigenvectors of the Hessian sub-block coupling
//atoms i and j, in the order of the eigenvalues given by Vals.
func (C *Cache) Vecs(i, j int) [3][3]complex128 {
	C.check(i, j)
	return C.pairs[i*C.n+j].vecs
}

func (C *Cache) check(i, j int) {
	if i < 0 || j < 0 || i >= C.n || j >= C.n {
		panic(ErrPairOutOfRange)
	}
}
