/*
 * qubegraph_test.go, part of goqube.
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

package qubegraph

import (
	"math"
	"testing"

	qube "github.com/rmera/goqube"
	v3 "github.com/rmera/goqube/v3"
)

func buildMol(Te *testing.T, symbols []string, coords []float64, pairs [][2]int) *qube.Molecule {
	ats := make([]*qube.Atom, len(symbols))
	for i, s := range symbols {
		ats[i] = qube.NewAtom(s, s, i)
	}
	c, err := v3.NewMatrix(coords)
	if err != nil {
		Te.Fatal(err)
	}
	mol, err := qube.NewMolecule(ats, c, 0, 1)
	if err != nil {
		Te.Fatal(err)
	}
	if err := qube.SetBonds(mol, c, pairs, false); err != nil {
		Te.Fatal(err)
	}
	return mol
}

func TestGraphInterfaces(Te *testing.T) {
	mol := buildMol(Te, []string{"O", "H", "H"},
		[]float64{0, 0, 0, 0.9572, 0, 0, -0.24, 0.927, 0},
		[][2]int{{0, 1}, {0, 2}})
	T := FromMolecule(mol)
	if T.NAtoms() != 3 {
		Te.Fatalf("got %d atoms in the graph, wanted 3", T.NAtoms())
	}
	if T.Node(1).ID() != 1 || T.Node(5) != nil {
		Te.Error("Node lookup by ID is off")
	}
	count := 0
	for nodes := T.Nodes(); nodes.Next(); {
		count++
	}
	if count != 3 {
		Te.Errorf("iterated over %d nodes, wanted 3", count)
	}
	neigh := 0
	for from := T.From(0); from.Next(); {
		if s := T.atoms[from.Node().ID()].Symbol; s != "H" {
			Te.Errorf("got an %s neighbor for the O, wanted only H", s)
		}
		neigh++
	}
	if neigh != 2 {
		Te.Errorf("got %d neighbors for the O, wanted 2", neigh)
	}
	if !T.HasEdgeBetween(0, 1) || T.HasEdgeBetween(1, 2) {
		Te.Error("HasEdgeBetween disagrees with the bond list")
	}
	if T.Edge(1, 2) != nil || T.WeightedEdge(1, 2) != nil {
		Te.Error("edge lookups between unbonded atoms should give a nil interface")
	}
	if w, ok := T.Weight(0, 1); !ok || math.Abs(w-0.9572) > 1e-12 {
		Te.Errorf("got weight %v (%v) for the first bond, wanted 0.9572", w, ok)
	}
	if w, ok := T.Weight(2, 2); !ok || w != 0 {
		Te.Errorf("got self weight %v (%v), wanted 0", w, ok)
	}
	if _, ok := T.Weight(1, 2); ok {
		Te.Error("got a weight for unbonded atoms")
	}
	rev := T.WeightedEdgeBetween(0, 1).ReversedEdge()
	if rev.From().ID() != 1 || rev.To().ID() != 0 {
		Te.Error("ReversedEdge did not swap the ends")
	}
}

func TestEquivalentAtoms(Te *testing.T) {
	//methanol: the methyl hydrogens are one class, the hydroxyl one its own
	mol := buildMol(Te, []string{"C", "O", "H", "H", "H", "H"},
		[]float64{
			0.047, -0.010, 0.028,
			1.313, 0.614, -0.053,
			-0.607, 0.582, 0.676,
			0.147, -1.013, 0.460,
			-0.374, -0.090, -0.982,
			1.856, 0.125, -0.686,
		},
		[][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}, {1, 5}})
	groups := EquivalentAtoms(FromMolecule(mol))
	if len(groups) != 1 {
		Te.Fatalf("got %d equivalence classes for methanol, wanted 1: %v", len(groups), groups)
	}
	if len(groups[0]) != 3 || groups[0][0] != 2 || groups[0][1] != 3 || groups[0][2] != 4 {
		Te.Errorf("got the class %v, wanted the methyl hydrogens [2 3 4]", groups[0])
	}

	//ethane: both carbons equivalent, all 6 hydrogens equivalent
	mol = buildMol(Te, []string{"C", "C", "H", "H", "H", "H", "H", "H"},
		[]float64{
			0, 0, 0,
			1.54, 0, 0,
			-0.4, 1.0, 0,
			-0.4, -0.5, 0.9,
			-0.4, -0.5, -0.9,
			1.94, 1.0, 0,
			1.94, -0.5, 0.9,
			1.94, -0.5, -0.9,
		},
		[][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}, {1, 5}, {1, 6}, {1, 7}})
	groups = EquivalentAtoms(FromMolecule(mol))
	if len(groups) != 2 {
		Te.Fatalf("got %d equivalence classes for ethane, wanted 2: %v", len(groups), groups)
	}
	if len(groups[0]) != 2 || len(groups[1]) != 6 {
		Te.Errorf("got classes of %d and %d members, wanted 2 and 6", len(groups[0]), len(groups[1]))
	}

	//the two ends of HOCl share nothing
	mol = buildMol(Te, []string{"O", "H", "Cl"},
		[]float64{0, 0, 0, 0.97, 0, 0, -0.6, 1.55, 0},
		[][2]int{{0, 1}, {0, 2}})
	if groups = EquivalentAtoms(FromMolecule(mol)); groups != nil {
		Te.Errorf("got classes %v for HOCl, wanted none", groups)
	}
}

func TestBondPath(Te *testing.T) {
	//a unit-spaced H-C-O-H chain plus a lone He
	mol := buildMol(Te, []string{"H", "C", "O", "H", "He"},
		[]float64{0, 0, 0, 1, 0, 0, 2, 0, 0, 3, 0, 0, 9, 9, 9},
		[][2]int{{0, 1}, {1, 2}, {2, 3}})
	T := FromMolecule(mol)
	atoms, dist := BondPath(T, 0, 3)
	if len(atoms) != 4 {
		Te.Fatalf("got the path %v, wanted all 4 chain atoms", atoms)
	}
	for i, v := range atoms {
		if v != i {
			Te.Errorf("got %d at position %d of the path", v, i)
		}
	}
	if math.Abs(dist-3.0) > 1e-12 {
		Te.Errorf("got a path length of %v, wanted 3.0", dist)
	}
	if atoms, _ = BondPath(T, 0, 4); atoms != nil {
		Te.Errorf("got the path %v to a disconnected atom, wanted none", atoms)
	}
	if atoms, _ = BondPath(T, 0, 7); atoms != nil {
		Te.Error("got a path to an out-of-range atom")
	}
}
