/*
 * graph.go, part of goqube.
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

//Package qubegraph exposes the bond graph of a molecule through the
//gonum graph interfaces, so that the gonum graph machinery, and
//anything written against it, can walk a molecule. Node IDs are the
//atom indexes.
package qubegraph

import (
	"math"

	qube "github.com/rmera/goqube"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
)

//Atom is a goqube atom as a graph node. Edges are the bonds the atom
//participates in, wrapped for the graph.
type Atom struct {
	*qube.Atom
	Edges []*Bond
}

func (A *Atom) ID() int64 {
	return int64(A.Index)
}

//Bond is a goqube bond as a weighted, undirected graph edge. The
//weight is the bonded distance in A.
type Bond struct {
	*qube.Bond
	from, to *Atom
}

func (B *Bond) From() graph.Node {
	return B.from
}

func (B *Bond) To() graph.Node {
	return B.to
}

func (B *Bond) ReversedEdge() graph.Edge {
	return &Bond{Bond: B.Bond, from: B.to, to: B.from}
}

func (B *Bond) Weight() float64 {
	return B.Dist
}

//Atoms iterates over a fixed set of atoms. It implements graph.Nodes.
type Atoms struct {
	atoms []*Atom
	curr  int
}

func (A *Atoms) Len() int {
	if A.curr >= len(A.atoms) { //gonum reads a negative Len as unbounded
		return 0
	}
	return len(A.atoms) - A.curr - 1
}

func (A *Atoms) Next() bool {
	A.curr++
	return A.curr < len(A.atoms)
}

func (A *Atoms) Node() graph.Node {
	if A.curr < 0 || A.curr >= len(A.atoms) {
		return nil
	}
	return A.atoms[A.curr]
}

func (A *Atoms) Reset() {
	A.curr = -1
}

//Topology is the bond graph of one molecule. It implements the gonum
//graph.Undirected and graph.Weighted interfaces.
type Topology struct {
	atoms []*Atom
	bonds []*Bond
}

func (T *Topology) Node(id int64) graph.Node {
	if id < 0 || id >= int64(len(T.atoms)) {
		return nil
	}
	return T.atoms[id]
}

func (T *Topology) Nodes() graph.Nodes {
	if len(T.atoms) == 0 {
		return graph.Empty
	}
	return &Atoms{atoms: T.atoms, curr: -1}
}

func (T *Topology) From(id int64) graph.Nodes {
	if id < 0 || id >= int64(len(T.atoms)) {
		return graph.Empty
	}
	neigh := make([]*Atom, 0, len(T.atoms[id].Edges))
	for _, b := range T.atoms[id].Edges {
		if b.from.ID() == id {
			neigh = append(neigh, b.to)
		} else {
			neigh = append(neigh, b.from)
		}
	}
	if len(neigh) == 0 {
		return graph.Empty
	}
	return &Atoms{atoms: neigh, curr: -1}
}

func (T *Topology) HasEdgeBetween(xid, yid int64) bool {
	return T.WeightedEdgeBetween(xid, yid) != nil
}

func (T *Topology) Edge(uid, vid int64) graph.Edge {
	return T.EdgeBetween(uid, vid)
}

func (T *Topology) EdgeBetween(xid, yid int64) graph.Edge {
	b := T.WeightedEdgeBetween(xid, yid)
	if b == nil { //an interface holding a nil *Bond is not a nil interface
		return nil
	}
	return b
}

func (T *Topology) WeightedEdge(uid, vid int64) graph.WeightedEdge {
	b := T.WeightedEdgeBetween(uid, vid)
	if b == nil {
		return nil
	}
	return b
}

//WeightedEdgeBetween returns the bond between the atoms with the given
//IDs, or nil if they are not bonded.
func (T *Topology) WeightedEdgeBetween(xid, yid int64) *Bond {
	if xid < 0 || xid >= int64(len(T.atoms)) {
		return nil
	}
	for _, b := range T.atoms[xid].Edges {
		if (b.from.ID() == xid && b.to.ID() == yid) || (b.from.ID() == yid && b.to.ID() == xid) {
			return b
		}
	}
	return nil
}

func (T *Topology) Weight(xid, yid int64) (w float64, ok bool) {
	if xid == yid {
		return 0, true
	}
	b := T.WeightedEdgeBetween(xid, yid)
	if b == nil {
		return 0, false
	}
	return b.Weight(), true
}

//NAtoms returns the number of atoms in the graph.
func (T *Topology) NAtoms() int {
	return len(T.atoms)
}

//FromMolecule builds the bond graph of mol. The atom indexes are
//refilled first, so node IDs always match the position of each atom in
//the molecule.
func FromMolecule(mol qube.AtomIndexesFiller) *Topology {
	mol.FillIndexes()
	ats := make([]*Atom, mol.Len())
	for i := 0; i < mol.Len(); i++ {
		ats[i] = &Atom{Atom: mol.Atom(i)}
	}
	bonds := make([]*Bond, 0, len(ats))
	for _, b := range qube.BondsOf(mol) {
		nb := &Bond{Bond: b, from: ats[b.At1.Index], to: ats[b.At2.Index]}
		bonds = append(bonds, nb)
		ats[b.At1.Index].Edges = append(ats[b.At1.Index].Edges, nb)
		ats[b.At2.Index].Edges = append(ats[b.At2.Index].Edges, nb)
	}
	return &Topology{atoms: ats, bonds: bonds}
}

//BondPath returns the indexes of the atoms along the shortest bond
//path between atoms i and j, both ends included, and the summed length
//in A of the traversed bonds. A nil slice means there is no path.
func BondPath(T *Topology, i, j int) ([]int, float64) {
	u := T.Node(int64(i))
	if u == nil || T.Node(int64(j)) == nil {
		return nil, 0
	}
	shortest := path.DijkstraFrom(u, T)
	nodes, dist := shortest.To(int64(j))
	if len(nodes) == 0 || math.IsInf(dist, 1) {
		return nil, 0
	}
	ret := make([]int, len(nodes))
	for k, v := range nodes {
		ret[k] = int(v.ID())
	}
	return ret, dist
}
