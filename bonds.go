/*
 * bonds.go, part of goqube.
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
	"sort"

	v3 "github.com/rmera/goqube/v3"
)

//constants from DOI:10.1186/1758-2946-3-33
const (
	tooclose = 0.63
	bondtol  = 0.45
)

//Bond is a chemical bond between 2 atoms.
type Bond struct {
	Index int
	At1   *Atom
	At2   *Atom
	Dist  float64 //in A
	Order float64 //Order 0 means undetermined
}

//Cross returns the atom at the other end of the bond from origin.
func (B *Bond) Cross(origin *Atom) *Atom {
	if origin.Index == B.At1.Index {
		return B.At2
	}
	if origin.Index == B.At2.Index {
		return B.At1
	}
	panic(ErrNotBondedToBond) //I think this got to be a programming error, so a panic is warranted.

}

//return a new *Bond slice with the element id removed
func takefromslice(bonds []*Bond, id int) []*Bond {
	newb := make([]*Bond, 0, len(bonds)-1)
	for _, v := range bonds {
		if v.Index != id {
			newb = append(newb, v)
		}
	}
	return newb
}

//RemoveBond removes the bond b from the atoms it bonds, in the
//molecule mol.
func RemoveBond(b *Bond, mol Atomer) error {
	lenb1 := len(b.At1.Bonds)
	lenb2 := len(b.At2.Bonds)
	b.At1.Bonds = takefromslice(b.At1.Bonds, b.Index)
	b.At2.Bonds = takefromslice(b.At2.Bonds, b.Index)
	err := new(CError)
	errs := 0
	err.msg = fmt.Sprintf("Failed to remove bond Index:%d", b.Index)
	if len(b.At1.Bonds) == lenb1 {
		err.msg = err.msg + fmt.Sprintf("from atom. Index:%d", b.At1.Index)
		err.Decorate("RemoveBond")
		errs++
	}
	if len(b.At2.Bonds) == lenb2 {
		if errs > 0 {
			err.msg = err.msg + " and"
		}
		err.msg = err.msg + fmt.Sprintf("from atom. Index:%d", b.At2.Index)
		err.Decorate("RemoveBond")
		errs++
	}
	if errs > 0 {
		return err
	}
	return nil
}

//BondsOf returns all the unique bonds in mol, sorted by bond index.
func BondsOf(mol Atomer) []*Bond {
	var bonds []*Bond
	seen := make(map[int]bool)
	for i := 0; i < mol.Len(); i++ {
		for _, b := range mol.Atom(i).Bonds {
			if !seen[b.Index] {
				seen[b.Index] = true
				bonds = append(bonds, b)
			}
		}
	}
	sort.Slice(bonds, func(i, j int) bool { return bonds[i].Index < bonds[j].Index })
	return bonds
}

//SetBonds assigns to the atoms of a molecule the bonds given in the list
//of atom-index pairs, computing the equilibrium distances from coord.
//If oneBased, the indexes in pairs are interpreted as starting from 1
//(the usual convention of external topology programs) and are normalized
//here. This is the single place where that normalization happens.
//Any previous bonds are discarded.
func SetBonds(mol Atomer, coord *v3.Matrix, pairs [][2]int, oneBased bool) error {
	tot := mol.Len()
	for i := 0; i < tot; i++ {
		mol.Atom(i).Bonds = nil
	}
	shift := 0
	if oneBased {
		shift = 1
	}
	t3 := v3.Zeros(1)
	for n, p := range pairs {
		i, j := p[0]-shift, p[1]-shift
		if i < 0 || j < 0 || i >= tot || j >= tot {
			return CError{fmt.Sprintf("goQube: Bond %d (%d-%d) out of range for a %d-atom molecule", n, p[0], p[1], tot), []string{"SetBonds"}}
		}
		if i == j {
			return CError{fmt.Sprintf("goQube: Bond %d joins atom %d with itself", n, p[0]), []string{"SetBonds"}}
		}
		at1 := mol.Atom(i)
		at2 := mol.Atom(j)
		t3.Sub(coord.VecView(j), coord.VecView(i))
		b := &Bond{Index: n, Dist: t3.Norm(2), At1: at1, At2: at2}
		at1.Bonds = append(at1.Bonds, b)
		at2.Bonds = append(at2.Bonds, b)
	}
	return nil
}

//AssignBonds assigns bonds to a molecule based on a simple distance
//criterium, similar to that described in DOI:10.1186/1758-2946-3-33.
//It is a convenience for when no external topology is available; an
//externally-supplied bond list (SetBonds) is always preferred.
func AssignBonds(coord *v3.Matrix, mol AtomIndexesFiller) error {
	// might get slow for
	//large systems. It's really not thought
	//for proteins or macromolecules.
	var t1, t2 *v3.Matrix
	var at1, at2 *Atom
	mol.FillIndexes()
	t3 := v3.Zeros(1)
	bonds := make([]*Bond, 0, 10)
	tot := mol.Len()
	var nextIndex int
	for i := 0; i < tot; i++ {
		t1 = coord.VecView(i)
		at1 = mol.Atom(i)
		cov1 := symbolCovrad[at1.Symbol]
		if cov1 == 0 {
			err := new(CError)
			err.msg = fmt.Sprintf("Couldn't find the covalent radii  for %s %d", at1.Symbol, i)
			err.Decorate("AssignBonds")
			return err
		}
		for j := i + 1; j < tot; j++ {
			t2 = coord.VecView(j)
			at2 = mol.Atom(j)
			cov2 := symbolCovrad[at2.Symbol]
			if cov2 == 0 {
				err := new(CError)
				err.msg = fmt.Sprintf("Couldn't find the covalent radii  for %s %d", at2.Symbol, j)
				err.Decorate("AssignBonds")
				return err
			}

			t3.Sub(t2, t1)
			d := t3.Norm(2)
			if d < cov1+cov2+bondtol && d > tooclose {
				b := &Bond{Index: nextIndex, Dist: d, At1: at1, At2: at2}
				at1.Bonds = append(at1.Bonds, b)
				at2.Bonds = append(at2.Bonds, b)
				bonds = append(bonds, b) //just to easily keep track of them.
				nextIndex++
			}

		}
	}

	//Now we check that no atom has too many bonds.
	for i := 0; i < tot; i++ {
		at := mol.Atom(i)
		max := symbolMaxBonds[at.Symbol]
		if max == 0 { //means there is not a specified number of bonds for this atom.
			continue
		}
		sort.Slice(at.Bonds, func(i, j int) bool { return at.Bonds[i].Dist < at.Bonds[j].Dist })
		//I am hoping this will remove bonds until len(at.Bonds) is not
		//greater than max.
		for i := len(at.Bonds); i > max; i = len(at.Bonds) {
			err := RemoveBond(at.Bonds[len(at.Bonds)-1], mol) //we remove the longest bond
			if err != nil {
				return errDecorate(err, "AssignBonds")
			}
		}

	}

	return nil
}

//Angle is an angle between 3 atoms, with Center as the vertex.
type Angle struct {
	At1    *Atom
	Center *Atom
	At2    *Atom
}

//Angles returns every unique angle in mol, derived from its bonds. For
//each pair of bonds sharing an atom, that atom becomes the vertex of an
//angle. Each angle appears exactly once, with At1 having a smaller index
//than At2, sorted by (Center, At1, At2) indexes.
func Angles(mol Atomer) []*Angle {
	var angles []*Angle
	for i := 0; i < mol.Len(); i++ {
		center := mol.Atom(i)
		if len(center.Bonds) < 2 {
			continue
		}
		partners := make([]*Atom, 0, len(center.Bonds))
		for _, b := range center.Bonds {
			partners = append(partners, b.Cross(center))
		}
		sort.Slice(partners, func(a, b int) bool { return partners[a].Index < partners[b].Index })
		for j := 0; j < len(partners); j++ {
			for k := j + 1; k < len(partners); k++ {
				angles = append(angles, &Angle{At1: partners[j], Center: center, At2: partners[k]})
			}
		}
	}
	return angles
}

//SetAngles builds Angle values from a list of atom-index triples, the
//second index of each being the vertex. As in SetBonds, oneBased signals
//that the external indexes start from 1 and must be normalized here.
func SetAngles(mol Atomer, triples [][3]int, oneBased bool) ([]*Angle, error) {
	tot := mol.Len()
	shift := 0
	if oneBased {
		shift = 1
	}
	angles := make([]*Angle, 0, len(triples))
	for n, t := range triples {
		a, b, c := t[0]-shift, t[1]-shift, t[2]-shift
		if a < 0 || b < 0 || c < 0 || a >= tot || b >= tot || c >= tot {
			return nil, CError{fmt.Sprintf("goQube: Angle %d (%d-%d-%d) out of range for a %d-atom molecule", n, t[0], t[1], t[2], tot), []string{"SetAngles"}}
		}
		if a == b || b == c || a == c {
			return nil, CError{fmt.Sprintf("goQube: Angle %d (%d-%d-%d) repeats an atom", n, t[0], t[1], t[2]), []string{"SetAngles"}}
		}
		angles = append(angles, &Angle{At1: mol.Atom(a), Center: mol.Atom(b), At2: mol.Atom(c)})
	}
	return angles, nil
}
