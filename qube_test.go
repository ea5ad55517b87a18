/*
 * qube_test.go, part of goqube.
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
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestXYZIO(Te *testing.T) {
	mol, err := XYZFileRead("test/water.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 3 {
		Te.Fatalf("got %d atoms, wanted 3", mol.Len())
	}
	if mol.Atom(0).Symbol != "O" || mol.Atom(1).Symbol != "H" {
		Te.Errorf("got symbols %s %s, wanted O H", mol.Atom(0).Symbol, mol.Atom(1).Symbol)
	}
	if mol.Atom(0).Mass < 15 {
		Te.Errorf("mass of O not filled in: %v", mol.Atom(0).Mass)
	}
	if d := mol.Coords.At(1, 0); math.Abs(d-0.9572) > 1e-6 {
		Te.Errorf("got x(H1)=%v, wanted 0.9572", d)
	}
	buf := new(bytes.Buffer)
	if err := XYZWrite(buf, mol, mol.Coords); err != nil {
		Te.Fatal(err)
	}
	mol2, err := XYZRead(buf)
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < mol.Len(); i++ {
		for j := 0; j < 3; j++ {
			//the format writes 3 decimals
			if math.Abs(mol.Coords.At(i, j)-mol2.Coords.At(i, j)) > 1e-3 {
				Te.Errorf("atom %d coord %d changed on write/read: %v vs %v", i, j, mol.Coords.At(i, j), mol2.Coords.At(i, j))
			}
		}
	}
}

func TestMolecule(Te *testing.T) {
	at := NewAtom("ca", "c", 0)
	if at.Symbol != "C" {
		Te.Errorf("got symbol %q, wanted it normalized to \"C\"", at.Symbol)
	}
	mol, err := XYZFileRead("test/water.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := NewMolecule(mol.Atoms[:2], mol.Coords, 0, 1); err == nil {
		Te.Error("wanted an error for 2 atoms with 3 coordinate rows, got nil")
	}
	mol.SetCharge(-1)
	mol.SetMulti(2)
	mol2 := mol.Copy()
	mol2.Atom(0).Charge = 0.5
	mol2.Coords.Set(0, 0, 42)
	if mol.Atom(0).Charge == 0.5 || mol.Coords.At(0, 0) == 42 {
		Te.Error("Copy shares data with the original")
	}
	if mol2.Charge() != -1 || mol2.Multi() != 2 {
		Te.Errorf("Copy lost charge/multiplicity: %d %d", mol2.Charge(), mol2.Multi())
	}
	ms, err := mol.Masses()
	if err != nil {
		Te.Fatal(err)
	}
	if len(ms) != 3 || ms[1] > ms[0] {
		Te.Errorf("strange masses for water: %v", ms)
	}
}

func TestBondsAndAngles(Te *testing.T) {
	mol, err := XYZFileRead("test/water.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	//1-based, as an external topology would give them
	err = SetBonds(mol, mol.Coords, [][2]int{{1, 2}, {1, 3}}, true)
	if err != nil {
		Te.Fatal(err)
	}
	bonds := BondsOf(mol)
	if len(bonds) != 2 {
		Te.Fatalf("got %d bonds, wanted 2", len(bonds))
	}
	if math.Abs(bonds[0].Dist-0.9572) > 1e-4 {
		Te.Errorf("got O-H distance %v, wanted 0.9572", bonds[0].Dist)
	}
	if cross := bonds[0].Cross(mol.Atom(0)); cross.Index != 1 {
		Te.Errorf("Cross from O gave atom %d, wanted 1", cross.Index)
	}
	angles := Angles(mol)
	if len(angles) != 1 {
		Te.Fatalf("got %d angles, wanted 1", len(angles))
	}
	a := angles[0]
	if a.Center.Index != 0 || a.At1.Index != 1 || a.At2.Index != 2 {
		Te.Errorf("got angle %d-%d-%d, wanted 1-0-2", a.At1.Index, a.Center.Index, a.At2.Index)
	}
	if err := SetBonds(mol, mol.Coords, [][2]int{{1, 4}}, true); err == nil {
		Te.Error("wanted an out-of-range error, got nil")
	}
	if err := SetBonds(mol, mol.Coords, [][2]int{{2, 2}}, true); err == nil {
		Te.Error("wanted a self-bond error, got nil")
	}
	if _, err := SetAngles(mol, [][3]int{{2, 1, 3}}, true); err != nil {
		Te.Error(err)
	}
	if _, err := SetAngles(mol, [][3]int{{2, 2, 3}}, true); err == nil {
		Te.Error("wanted a repeated-atom error, got nil")
	}
}

func TestAssignBonds(Te *testing.T) {
	mol, err := XYZFileRead("test/water.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	if err := AssignBonds(mol.Coords, mol); err != nil {
		Te.Fatal(err)
	}
	bonds := BondsOf(mol)
	if len(bonds) != 2 {
		Te.Fatalf("got %d bonds from the distance criterium, wanted 2", len(bonds))
	}
	for _, b := range bonds {
		if b.At1.Symbol == "H" && b.At2.Symbol == "H" {
			Te.Error("the distance criterium bonded the 2 hydrogens")
		}
	}
}

func TestHessian(Te *testing.T) {
	//2 atoms, 6x6. Symmetric by construction.
	n := 6
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := float64(i + j + 1)
			data[i*n+j] = v
			data[j*n+i] = v
		}
	}
	H, err := NewHessian(data, 2, 0)
	if err != nil {
		Te.Fatal(err)
	}
	if H.NAtoms() != 2 {
		Te.Errorf("got %d atoms, wanted 2", H.NAtoms())
	}
	b := H.Block(0, 1)
	if b.At(0, 0) != H.At(0, 3) || b.At(2, 2) != H.At(2, 5) {
		Te.Error("Block(0,1) is not the H[0:3,3:6] sub-matrix")
	}
	data[1] += 1e-3 //break the symmetry
	if _, err := NewHessian(data, 2, 0); err == nil {
		Te.Error("wanted an asymmetry error, got nil")
	}
	if _, err := NewHessian(data[:10], 2, 0); err == nil {
		Te.Error("wanted a length error, got nil")
	}
}

func TestSettings(Te *testing.T) {
	s := DefaultSettings()
	if s.VibScaling != 0.957 || s.Provider != "chargemol" || s.DDECVersion != 6 {
		Te.Errorf("unexpected defaults: %+v", s)
	}
	if !s.SymmetryAveraging || !s.PolarHCorrection {
		Te.Error("symmetry averaging and the polar-H correction should default to on")
	}
	s, err := LoadSettings("test/qube.toml")
	if err != nil {
		Te.Fatal(err)
	}
	if s.VibScaling != 0.961 {
		Te.Errorf("got VibScaling %v, wanted 0.961", s.VibScaling)
	}
	if s.Provider != "onetep" {
		Te.Errorf("got provider %q, wanted it normalized to \"onetep\"", s.Provider)
	}
	if s.SymmetryAveraging {
		Te.Error("an explicit SymmetryAveraging=false was overridden by the default")
	}
	if !s.PolarHCorrection {
		Te.Error("PolarHCorrection should keep its default when not given")
	}
	bad := RawSettings{Provider: "mulliken"}
	if _, err := bad.ToSettings(); err == nil {
		Te.Error("wanted an error for an unknown provider, got nil")
	}
	bad = RawSettings{DDECVersion: 4}
	if _, err := bad.ToSettings(); err == nil {
		Te.Error("wanted an error for DDEC4, got nil")
	}
}

func TestPDB(Te *testing.T) {
	mol, err := PDBFileRead("test/lig.pdb")
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 6 {
		Te.Fatalf("got %d atoms, wanted 6", mol.Len())
	}
	if mol.Atom(0).Symbol != "C" || mol.Atom(1).Symbol != "O" || mol.Atom(5).Symbol != "H" {
		Te.Errorf("got symbols %s %s %s, wanted C O H", mol.Atom(0).Symbol, mol.Atom(1).Symbol, mol.Atom(5).Symbol)
	}
	if mol.Atom(2).Name != "H1" {
		Te.Errorf("got name %q for the third atom, wanted H1", mol.Atom(2).Name)
	}
	if d := mol.Coords.At(1, 1); math.Abs(d-0.614) > 1e-6 {
		Te.Errorf("got y(O1)=%v, wanted 0.614", d)
	}
	bonds := BondsOf(mol)
	if len(bonds) != 5 {
		Te.Fatalf("got %d bonds from the CONECT records, wanted 5", len(bonds))
	}
	co := mol.Atom(1).Bonds
	if len(co) != 2 {
		Te.Fatalf("the O should have 2 bonds, got %d", len(co))
	}
	var dco float64
	for _, b := range co {
		if b.Cross(mol.Atom(1)).Symbol == "C" {
			dco = b.Dist
		}
	}
	if math.Abs(dco-1.414) > 0.01 {
		Te.Errorf("got a C-O distance of %v, wanted about 1.414", dco)
	}
	//4 bonds on the C give 6 angles, the 2 on the O give 1 more
	if angles := Angles(mol); len(angles) != 7 {
		Te.Errorf("got %d angles, wanted 7", len(angles))
	}

	//no element columns, so the symbol must come from the name
	short := "HETATM    1  CL1 LIG A   1       0.000   0.000   0.000  1.00  0.00\nEND\n"
	mol2, err := PDBRead(strings.NewReader(short))
	if err != nil {
		Te.Fatal(err)
	}
	if mol2.Atom(0).Symbol != "Cl" {
		Te.Errorf("got symbol %q from the name CL1, wanted Cl", mol2.Atom(0).Symbol)
	}

	bad := "HETATM    1  C1  LIG A   1       0.047  -0.010   0.028  1.00  0.00           C\nCONECT    1    9\nEND\n"
	if _, err := PDBRead(strings.NewReader(bad)); err == nil {
		Te.Error("wanted an error for a CONECT with an absent serial, got nil")
	}
	if _, err := PDBRead(strings.NewReader("COMPND NOTHING\nEND\n")); err == nil {
		Te.Error("wanted an error for a PDB with no atoms, got nil")
	}
}

func TestAIMFree(Te *testing.T) {
	v, b, r, err := AIMFree("O")
	if err != nil {
		Te.Fatal(err)
	}
	if v != 22.1 || b != 15.6 || r != 1.60 {
		Te.Errorf("got free-atom values %v %v %v for O, wanted 22.1 15.6 1.60", v, b, r)
	}
	if _, _, _, err := AIMFree("Xx"); err == nil {
		Te.Error("wanted an error for an unknown element, got nil")
	}
}
