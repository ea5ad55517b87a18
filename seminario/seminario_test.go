/*
 * seminario_test.go, part of goqube.
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
	"math"
	"testing"

	qube "github.com/rmera/goqube"
	v3 "github.com/rmera/goqube/v3"
)

//fills the 3x3 block i,j of the natoms-atom Hessian data with b,
//row-major.
func setBlock(data []float64, natoms, i, j int, b [9]float64) {
	n := 3 * natoms
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			data[(3*i+r)*n+(3*j+c)] = b[3*r+c]
		}
	}
}

func diagBlock(a, b, c float64) [9]float64 {
	return [9]float64{a, 0, 0, 0, b, 0, 0, 0, c}
}

//a right-angle water: O at the origin, both H at distance 1 along the x
//and y axes, so every projection in the test Hessians is along a
//coordinate axis.
func waterMol(Te *testing.T) (*qube.Molecule, *v3.Matrix) {
	ats := []*qube.Atom{qube.NewAtom("O", "O", 0), qube.NewAtom("H1", "H", 1), qube.NewAtom("H2", "H", 2)}
	coords, err := v3.NewMatrix([]float64{0, 0, 0, 1, 0, 0, 0, 1, 0})
	if err != nil {
		Te.Fatal(err)
	}
	mol, err := qube.NewMolecule(ats, coords, 0, 1)
	if err != nil {
		Te.Fatal(err)
	}
	if err := qube.SetBonds(mol, coords, [][2]int{{0, 1}, {0, 2}}, false); err != nil {
		Te.Fatal(err)
	}
	return mol, coords
}

//with diagonal Hessian blocks the eigenvectors are the coordinate axes,
//so every force constant reduces to a closed form computable by hand.
func waterHessian(Te *testing.T) *qube.Hessian {
	data := make([]float64, 81)
	setBlock(data, 3, 0, 0, diagBlock(1200, 1300, 800))
	setBlock(data, 3, 1, 1, diagBlock(500, 600, 450))
	setBlock(data, 3, 2, 2, diagBlock(700, 650, 350))
	setBlock(data, 3, 0, 1, diagBlock(-500, -600, -450))
	setBlock(data, 3, 1, 0, diagBlock(-500, -600, -450))
	setBlock(data, 3, 0, 2, diagBlock(-600, -700, -350))
	setBlock(data, 3, 2, 0, diagBlock(-600, -700, -350))
	setBlock(data, 3, 1, 2, diagBlock(-10, -20, -30))
	setBlock(data, 3, 2, 1, diagBlock(-10, -20, -30))
	H, err := qube.NewHessian(data, 3, 0)
	if err != nil {
		Te.Fatal(err)
	}
	return H
}

func TestWaterClosedForm(Te *testing.T) {
	mol, coords := waterMol(Te)
	par, err := Derive(mol, coords, waterHessian(Te), &qube.Settings{VibScaling: 1})
	if err != nil {
		Te.Fatal(err)
	}
	if len(par.Bonds) != 2 || len(par.Angles) != 1 {
		Te.Fatalf("got %d bonds and %d angles, wanted 2 and 1", len(par.Bonds), len(par.Angles))
	}
	//O-H1 along x picks the first eigenvalue of the 0,1 block:
	//k = -0.5*(-500) = 250. O-H2 along y picks -700: k = 350.
	b1 := par.Bond(0, 1)
	if b1 == nil || math.Abs(b1.K-250) > 1e-6 {
		Te.Errorf("got k=%v for the O-H1 bond, wanted 250", b1.K)
	}
	if math.Abs(b1.Eq-1) > 1e-12 {
		Te.Errorf("got eq. length %v for the O-H1 bond, wanted 1", b1.Eq)
	}
	if b2 := par.Bond(2, 0); b2 == nil || math.Abs(b2.K-350) > 1e-6 {
		Te.Error("wrong or missing O-H2 term")
	}
	if par.Bond(1, 2) != nil {
		Te.Error("got a term for the unbonded H1-H2 pair")
	}
	//both projections pick -600, so the springs in series give
	//k = |0.5/(1/-600 + 1/-600)| = 150, at 90 degrees.
	a := par.Angle(1, 0, 2)
	if a == nil {
		Te.Fatal("missing H1-O-H2 angle term")
	}
	if math.Abs(a.K-150) > 1e-6 {
		Te.Errorf("got k=%v for the H1-O-H2 angle, wanted 150", a.K)
	}
	if math.Abs(a.Eq-90) > 1e-9 {
		Te.Errorf("got eq. angle %v, wanted 90 degrees", a.Eq)
	}
	//vib_scaling applies squared, uniformly
	par2, err := Derive(mol, coords, waterHessian(Te), &qube.Settings{VibScaling: 0.5})
	if err != nil {
		Te.Fatal(err)
	}
	if got := par2.Bond(0, 1).K; math.Abs(got-62.5) > 1e-6 {
		Te.Errorf("got k=%v with vib_scaling 0.5, wanted 62.5", got)
	}
	if got := par2.Angle(1, 0, 2).K; math.Abs(got-37.5) > 1e-6 {
		Te.Errorf("got angle k=%v with vib_scaling 0.5, wanted 37.5", got)
	}
}

func TestNoSharingScalingIsOne(Te *testing.T) {
	mol, coords := waterMol(Te)
	scal, err := scalingFactors(qube.Angles(mol), coords)
	if err != nil {
		Te.Fatal(err)
	}
	if len(scal) != 1 {
		Te.Fatalf("got %d scaling pairs, wanted 1", len(scal))
	}
	if scal[0][0] != 1 || scal[0][1] != 1 {
		Te.Errorf("got scalings %v for an unshared bond pair, wanted exactly [1 1]", scal[0])
	}
}

func TestSharedBondScaling(Te *testing.T) {
	//three bonds from a common center, all in the z=0 plane, so the
	//in-plane perpendiculars of angles sharing a bond are (anti)parallel
	//and every scaling factor is exactly 1 + 1 = 2.
	s := math.Sqrt2 / 2
	ats := []*qube.Atom{qube.NewAtom("C", "C", 0), qube.NewAtom("H1", "H", 1), qube.NewAtom("H2", "H", 2), qube.NewAtom("H3", "H", 3)}
	coords, err := v3.NewMatrix([]float64{0, 0, 0, 1, 0, 0, 0, 1, 0, s, s, 0})
	if err != nil {
		Te.Fatal(err)
	}
	mol, err := qube.NewMolecule(ats, coords, 0, 1)
	if err != nil {
		Te.Fatal(err)
	}
	if err := qube.SetBonds(mol, coords, [][2]int{{0, 1}, {0, 2}, {0, 3}}, false); err != nil {
		Te.Fatal(err)
	}
	angles := qube.Angles(mol)
	if len(angles) != 3 {
		Te.Fatalf("got %d angles, wanted 3", len(angles))
	}
	scal, err := scalingFactors(angles, coords)
	if err != nil {
		Te.Fatal(err)
	}
	for i, pair := range scal {
		for slot, got := range pair {
			if math.Abs(got-2) > 1e-9 {
				Te.Errorf("angle %d, bond %d: got scaling %v, wanted 2", i, slot, got)
			}
		}
	}
}

func TestLinearFallback(Te *testing.T) {
	//an HCN-like rod: the H-C-N angle has colinear bonds and must go
	//through the sampled fallback, giving a finite constant and 180
	//degrees.
	ats := []*qube.Atom{qube.NewAtom("H", "H", 0), qube.NewAtom("C", "C", 1), qube.NewAtom("N", "N", 2)}
	coords, err := v3.NewMatrix([]float64{-1.07, 0, 0, 0, 0, 0, 1.16, 0, 0})
	if err != nil {
		Te.Fatal(err)
	}
	mol, err := qube.NewMolecule(ats, coords, 0, 1)
	if err != nil {
		Te.Fatal(err)
	}
	if err := qube.SetBonds(mol, coords, [][2]int{{1, 0}, {1, 2}}, false); err != nil {
		Te.Fatal(err)
	}
	data := make([]float64, 81)
	for i := 0; i < 3; i++ {
		setBlock(data, 3, i, i, diagBlock(800, 800, 800))
		for j := i + 1; j < 3; j++ {
			setBlock(data, 3, i, j, diagBlock(-400, -400, -400))
			setBlock(data, 3, j, i, diagBlock(-400, -400, -400))
		}
	}
	H, err := qube.NewHessian(data, 3, 0)
	if err != nil {
		Te.Fatal(err)
	}
	par, err := Derive(mol, coords, H, &qube.Settings{VibScaling: 1})
	if err != nil {
		Te.Fatal(err)
	}
	a := par.Angle(0, 1, 2)
	if a == nil {
		Te.Fatal("missing H-C-N angle term")
	}
	if math.IsNaN(a.K) || math.IsInf(a.K, 0) || a.K <= 0 {
		Te.Errorf("got k=%v from the linear fallback, wanted a finite positive value", a.K)
	}
	if math.Abs(a.Eq-180) > 1e-9 {
		Te.Errorf("got eq. angle %v for a linear angle, wanted 180 degrees", a.Eq)
	}
	thetas, ks, err := AngleSweep(coords, H, 0, 1, 2)
	if err != nil {
		Te.Fatal(err)
	}
	if len(ks) == 0 || len(thetas) != len(ks) {
		Te.Fatalf("got %d sweep samples with %d angles", len(ks), len(thetas))
	}
	mean := 0.0
	for _, k := range ks {
		if math.IsNaN(k) || k <= 0 {
			Te.Fatalf("got an invalid sweep sample %v", k)
		}
		mean += k
	}
	mean /= float64(len(ks))
	if math.Abs(mean-a.K) > 1e-9 {
		Te.Errorf("the sweep mean %v does not match the derived constant %v", mean, a.K)
	}
	if _, _, err := AngleSweep(coords, H, 0, 1, 5); err == nil {
		Te.Error("wanted an error for an out-of-range sweep atom, got nil")
	}
}

func TestEigenvectorSignInvariance(Te *testing.T) {
	u, err := v3.NewMatrix([]float64{0.3, -0.5, 0.81})
	if err != nil {
		Te.Fatal(err)
	}
	u.Unit(u)
	vals := [3]complex128{-500, complex(-600, 2), -450}
	vecs := [3][3]complex128{
		{0.8, complex(0.1, 0.2), -0.3},
		{complex(0, 0.7), 0.5, 0.2},
		{-0.1, 0.4, complex(0.9, -0.1)},
	}
	want := projSum(u, vals, vecs)
	for i := range vecs {
		for k := range vecs[i] {
			vecs[i][k] = -vecs[i][k]
		}
	}
	got := projSum(u, vals, vecs)
	if got != want {
		Te.Errorf("flipping every eigenvector sign changed the projection sum: %v vs %v", got, want)
	}
}

func TestBondOrderingAverage(Te *testing.T) {
	//an asymmetric coupling block (allowed inside a symmetric Hessian,
	//which only forces block(1,0) to be its transpose) decomposes
	//differently in each direction; the emitted constant must be the
	//mean of both.
	ats := []*qube.Atom{qube.NewAtom("C", "C", 0), qube.NewAtom("O", "O", 1)}
	coords, err := v3.NewMatrix([]float64{0, 0, 0, 1.2, 0, 0})
	if err != nil {
		Te.Fatal(err)
	}
	mol, err := qube.NewMolecule(ats, coords, 0, 1)
	if err != nil {
		Te.Fatal(err)
	}
	if err := qube.SetBonds(mol, coords, [][2]int{{0, 1}}, false); err != nil {
		Te.Fatal(err)
	}
	data := make([]float64, 36)
	setBlock(data, 2, 0, 0, diagBlock(1000, 1000, 900))
	setBlock(data, 2, 1, 1, diagBlock(1000, 1000, 900))
	ab := [9]float64{-500, -50, 0, -30, -600, 0, 0, 0, -450}
	ba := [9]float64{-500, -30, 0, -50, -600, 0, 0, 0, -450} //transpose
	setBlock(data, 2, 0, 1, ab)
	setBlock(data, 2, 1, 0, ba)
	H, err := qube.NewHessian(data, 2, 0)
	if err != nil {
		Te.Fatal(err)
	}
	par, err := Derive(mol, coords, H, &qube.Settings{VibScaling: 1})
	if err != nil {
		Te.Fatal(err)
	}
	cache, err := NewCache(coords, H)
	if err != nil {
		Te.Fatal(err)
	}
	kab, err := bondFC(cache, coords, 0, 1)
	if err != nil {
		Te.Fatal(err)
	}
	kba, err := bondFC(cache, coords, 1, 0)
	if err != nil {
		Te.Fatal(err)
	}
	want := real((kab + kba) / 2)
	if got := par.Bond(0, 1).K; math.Abs(got-want) > 1e-12 {
		Te.Errorf("got k=%v, wanted the ordering mean %v", got, want)
	}
}

func TestCacheIdempotence(Te *testing.T) {
	_, coords := waterMol(Te)
	H := waterHessian(Te)
	c1, err := NewCache(coords, H)
	if err != nil {
		Te.Fatal(err)
	}
	c2, err := NewCache(coords, H)
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if c1.Vals(i, j) != c2.Vals(i, j) || c1.Vecs(i, j) != c2.Vecs(i, j) {
				Te.Errorf("pair %d,%d decomposed differently on a rebuild", i, j)
			}
			if c1.Dist(i, j) != c2.Dist(i, j) {
				Te.Errorf("pair %d,%d distance differs on a rebuild", i, j)
			}
		}
	}
}

func TestDerivePreconditions(Te *testing.T) {
	mol, coords := waterMol(Te)
	H := waterHessian(Te)
	nobonds, _ := waterMol(Te)
	for i := 0; i < nobonds.Len(); i++ {
		nobonds.Atom(i).Bonds = nil
	}
	if _, err := Derive(nobonds, coords, H, nil); err == nil {
		Te.Error("wanted an error for a molecule without bonds, got nil")
	}
	small := make([]float64, 36)
	setBlock(small, 2, 0, 0, diagBlock(1, 1, 1))
	setBlock(small, 2, 1, 1, diagBlock(1, 1, 1))
	H2, err := qube.NewHessian(small, 2, 0)
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := Derive(mol, coords, H2, nil); err == nil {
		Te.Error("wanted an error for a 2-atom Hessian with a 3-atom molecule, got nil")
	}
}
