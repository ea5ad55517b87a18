/*
 * qubeplot_test.go, part of goqube.
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
 */

package qubeplot

import (
	"os"
	"testing"

	qube "github.com/rmera/goqube"
	"github.com/rmera/goqube/nonbonded"
	v3 "github.com/rmera/goqube/v3"
)

//TestLJCurve draws the potentials for a water-like parameter set.
func TestLJCurve(Te *testing.T) {
	params := []*nonbonded.LJParameter{
		{Atom: 0, Charge: -0.8, Sigma: 0.30, Epsilon: 0.65},
		{Atom: 1, Charge: 0.4, Sigma: 0.25, Epsilon: 0.07},
	}
	if err := LJCurve(params, []int{0, 1}, "Test LJ curves", "../test/LJ"); err != nil {
		Te.Error(err)
	}
	if _, err := os.Stat("../test/LJ.png"); err != nil {
		Te.Error(err)
	}
	if err := LJCurve(params, []int{5}, "bad", "../test/LJbad"); err == nil {
		Te.Error("wanted an error for an out-of-range atom, got nil")
	}
	nowell := []*nonbonded.LJParameter{{Atom: 0}}
	if err := LJCurve(nowell, []int{0}, "bad", "../test/LJbad"); err == nil {
		Te.Error("wanted an error for an atom without a well, got nil")
	}
}

//TestAngleScan draws the fallback sweep for an HCN-like rod.
func TestAngleScan(Te *testing.T) {
	coords, err := v3.NewMatrix([]float64{-1.07, 0, 0, 0, 0, 0, 1.16, 0, 0})
	if err != nil {
		Te.Fatal(err)
	}
	data := make([]float64, 81)
	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			if i == j {
				data[i*9+j] = 800
			} else if i%3 == j%3 {
				data[i*9+j] = -400
			}
		}
	}
	H, err := qube.NewHessian(data, 3, 0)
	if err != nil {
		Te.Fatal(err)
	}
	if err := AngleScan(coords, H, 0, 1, 2, "Test linear-angle sweep", "../test/AngleSweep"); err != nil {
		Te.Error(err)
	}
	if _, err := os.Stat("../test/AngleSweep.png"); err != nil {
		Te.Error(err)
	}
}

//TestFCHistogram bins a handful of bond constants.
func TestFCHistogram(Te *testing.T) {
	ks := []float64{250, 350, 260, 500, 430, 310, 295}
	if err := FCHistogram(ks, 8, "Test bond constants", "k (kcal/(mol A^2))", "../test/FCHist"); err != nil {
		Te.Error(err)
	}
	if _, err := os.Stat("../test/FCHist.png"); err != nil {
		Te.Error(err)
	}
	if err := FCHistogram([]float64{}, 0, "empty", "k", "../test/FCnone"); err == nil {
		Te.Error("wanted an error for an empty constant list, got nil")
	}
}
