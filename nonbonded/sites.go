/*
 * sites.go, part of goqube.
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

package nonbonded

import (
	"fmt"

	qube "github.com/rmera/goqube"
	v3 "github.com/rmera/goqube/v3"
)

//everything below this is considered zero.
const appzero float64 = 0.000000000001

//RawSite is a virtual off-center charge as the charge partitioning
//reports it: an absolute position and a charge, attached to a parent
//atom.
type RawSite struct {
	Parent   int
	Position [3]float64 //A
	Charge   float64    //e
}

//Site is a virtual site expressed in the local frame of its parent atom:
//origin at the parent, x along the bond to the first reference atom, z
//normal to the plane of parent and references, y completing the
//right-handed set.
type Site struct {
	Parent     int
	Ref1, Ref2 int        //the atoms defining the frame with the parent
	Local      [3]float64 //position in the local frame, nm
	Charge     float64    //e
}

//PlaceSites expresses every raw virtual site in the local frame of its
//parent atom and moves its charge out of the parent's, so the total
//molecular charge is conserved, returning the sites and the updated
//parameter list. The frame reference atoms are taken from the bonds of
//mol. With no sites, the input parameters are returned as they are.
func PlaceSites(mol qube.Atomer, coords *v3.Matrix, raw []*RawSite, params []*LJParameter) ([]*Site, []*LJParameter, error) {
	if len(raw) == 0 {
		return nil, params, nil
	}
	out := make([]*LJParameter, len(params))
	for i, p := range params {
		np := *p
		out[i] = &np
	}
	sites := make([]*Site, 0, len(raw))
	for n, rs := range raw {
		if rs.Parent < 0 || rs.Parent >= mol.Len() {
			return nil, nil, Error{fmt.Sprintf("goQube/nonbonded: Site %d names parent atom %d, out of range for %d atoms", n, rs.Parent, mol.Len()), []string{"PlaceSites"}}
		}
		r1, r2, err := frameRefs(mol, rs.Parent)
		if err != nil {
			return nil, nil, errDecorate(err, fmt.Sprintf("PlaceSites: site %d", n))
		}
		local, err := localCoords(coords, rs, r1, r2)
		if err != nil {
			return nil, nil, errDecorate(err, fmt.Sprintf("PlaceSites: site %d", n))
		}
		sites = append(sites, &Site{Parent: rs.Parent, Ref1: r1, Ref2: r2, Local: local, Charge: rs.Charge})
		out[rs.Parent].Charge -= rs.Charge
	}
	return sites, out, nil
}

//frameRefs picks the two reference atoms for the local frame of parent:
//its first two bonded neighbors or, for a terminal parent, its only
//neighbor and the last of that neighbor's other neighbors.
func frameRefs(mol qube.Atomer, parent int) (int, int, error) {
	at := mol.Atom(parent)
	if len(at.Bonds) == 0 {
		return 0, 0, Error{fmt.Sprintf("goQube/nonbonded: Atom %d has no bonded neighbors to define a site frame with", parent), []string{"frameRefs"}}
	}
	r1 := at.Bonds[0].Cross(at).Index
	if len(at.Bonds) > 1 {
		return r1, at.Bonds[1].Cross(at).Index, nil
	}
	nb := mol.Atom(r1)
	r2 := -1
	for _, b := range nb.Bonds {
		if other := b.Cross(nb).Index; other != parent {
			r2 = other
		}
	}
	if r2 < 0 {
		return 0, 0, Error{fmt.Sprintf("goQube/nonbonded: Atoms %d and %d have no further neighbor to define a site frame with", parent, r1), []string{"frameRefs"}}
	}
	return r1, r2, nil
}

//localCoords expresses the absolute position of the site in the frame of
//its parent, in nm.
func localCoords(coords *v3.Matrix, rs *RawSite, r1, r2 int) ([3]float64, error) {
	var local [3]float64
	parent := coords.VecView(rs.Parent)
	ab := v3.Zeros(1)
	ab.Sub(coords.VecView(r1), parent)
	ac := v3.Zeros(1)
	ac.Sub(coords.VecView(r2), parent)
	z := v3.Zeros(1)
	z.Cross(ab, ac)
	norm := z.Norm(2)
	if norm <= appzero {
		return local, Error{fmt.Sprintf("goQube/nonbonded: Frame atoms %d, %d and %d are colinear, their plane is undefined", rs.Parent, r1, r2), []string{"localCoords"}}
	}
	z.Scale(1/norm, z)
	abnorm := ab.Norm(2)
	if abnorm <= appzero {
		return local, Error{fmt.Sprintf("goQube/nonbonded: Frame atoms %d and %d coincide", rs.Parent, r1), []string{"localCoords"}}
	}
	x := v3.Zeros(1)
	x.Scale(1/abnorm, ab)
	y := v3.Zeros(1)
	y.Cross(z, x)
	site, err := v3.NewMatrix(rs.Position[:])
	if err != nil {
		return local, errDecorate(err, "localCoords")
	}
	d := v3.Zeros(1)
	d.Sub(site, parent)
	local[0] = d.Dot(x) * qube.A2Nm
	local[1] = d.Dot(y) * qube.A2Nm
	local[2] = d.Dot(z) * qube.A2Nm
	return local, nil
}
