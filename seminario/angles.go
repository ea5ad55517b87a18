/*
 * angles.go, part of goqube.
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
	"math"
	"math/cmplx"
	"sort"

	qube "github.com/rmera/goqube"
	v3 "github.com/rmera/goqube/v3"
)

//number of synthetic normal directions swept for near-linear angles.
const linearSamples = 200

//angleFC returns the force constant, in kcal/(mol rad^2), and the
//equilibrium angle, in degrees, for the angle a-b-c with b central
//(eq. 14 of Seminario, 1996, with the scaling of Allen et al., 2018).
//The two scaling factors correspond to the a-b and c-b bonds, in that
//order. Near-linear angles fall back to a sampling of normal directions,
//with both scalings taken as 1. As with bonds, the caller averages the
//results for a-b-c and c-b-a, with the scalings reversed accordingly.
func angleFC(cache *Cache, coords *v3.Matrix, a, b, c int, scalings [2]float64) (float64, float64, error) {
	uab, err := bondVector(coords, a, b)
	if err != nil {
		return 0, 0, errDecorate(err, "angleFC")
	}
	ucb, err := bondVector(coords, c, b)
	if err != nil {
		return 0, 0, errDecorate(err, "angleFC")
	}
	theta := v3.Angle(uab, ucb) * qube.Rad2Deg
	lab := cache.Dist(a, b)
	lbc := cache.Dist(b, c)
	un, ok := planeNormal(ucb, uab)
	if !ok {
		//colinear bonds, e.g. a nitrile nitrogen
		return angleFCLinear(cache, a, b, c, uab, ucb), theta, nil
	}
	upa := perpInPlane(un, uab)
	upc := perpInPlane(ucb, un)
	s1 := projSum(upa, cache.Vals(a, b), cache.Vecs(a, b)) / complex(scalings[0], 0)
	s2 := projSum(upc, cache.Vals(c, b), cache.Vecs(c, b)) / complex(scalings[1], 0)
	//the two bonds act as springs in series
	k := 1 / (1/(complex(lab*lab, 0)*s1) + 1/(complex(lbc*lbc, 0)*s2))
	return cmplx.Abs(k * 0.5), theta, nil //OPLS form
}

//linearSweep computes the force constant of the angle a-b-c for every
//synthetic normal direction of the near-linear fallback, returning the
//sweep angle of each valid sample, in radians over [0, 2pi), and its
//force constant. Samples for which a projection degenerates are left
//out.
func linearSweep(cache *Cache, a, b, c int, uab, ucb *v3.Matrix) (thetas, ks []float64) {
	lab2 := complex(cache.Dist(a, b)*cache.Dist(a, b), 0)
	lbc2 := complex(cache.Dist(b, c)*cache.Dist(b, c), 0)
	valsab, vecsab := cache.Vals(a, b), cache.Vecs(a, b)
	valscb, vecscb := cache.Vals(c, b), cache.Vecs(c, b)
	un := v3.Zeros(1)
	for s := 0; s < linearSamples; s++ {
		theta := 2 * math.Pi * float64(s) / linearSamples
		sin, cos := math.Sincos(theta)
		un.Set(0, 0, sin*cos)
		un.Set(0, 1, sin*sin)
		un.Set(0, 2, cos)
		upa, ok := planeNormal(un, uab)
		if !ok {
			continue
		}
		upc, ok := planeNormal(ucb, un)
		if !ok {
			continue
		}
		s1 := projSum(upa, valsab, vecsab)
		s2 := projSum(upc, valscb, vecscb)
		k := 1 / (1/(lab2*s1) + 1/(lbc2*s2))
		thetas = append(thetas, theta)
		ks = append(ks, cmplx.Abs(k*0.5))
	}
	return thetas, ks
}

//angleFCLinear approximates the force constant of an angle whose bonds
//are colinear, where the angle plane, and with it the projection
//directions, is undefined: the in-plane projections are computed for
//synthetic normal directions swept around the sphere and the resulting
//force constants averaged.
func angleFCLinear(cache *Cache, a, b, c int, uab, ucb *v3.Matrix) float64 {
	_, ks := linearSweep(cache, a, b, c, uab, ucb)
	if len(ks) == 0 {
		return 0
	}
	ksum := 0.0
	for _, k := range ks {
		ksum += k
	}
	return ksum / float64(len(ks))
}

//AngleSweep returns the per-direction force constants, in
//kcal/(mol rad^2), that the near-linear fallback would average for the
//angle a-b-c with b central, with each sample keyed by its sweep angle
//in radians. It is a diagnostic for inspecting how anisotropic the
//Hessian is around a linear angle; the derivation itself only ever uses
//the mean. No vibrational scaling is applied.
func AngleSweep(coords *v3.Matrix, H *qube.Hessian, a, b, c int) (thetas, ks []float64, err error) {
	cache, err := NewCache(coords, H)
	if err != nil {
		return nil, nil, errDecorate(err, "AngleSweep")
	}
	n := cache.NAtoms()
	if a < 0 || b < 0 || c < 0 || a >= n || b >= n || c >= n {
		return nil, nil, Error{fmt.Sprintf("goQube/seminario: Angle %d-%d-%d out of range for %d atoms", a, b, c, n), []string{"AngleSweep"}}
	}
	uab, err := bondVector(coords, a, b)
	if err != nil {
		return nil, nil, errDecorate(err, "AngleSweep")
	}
	ucb, err := bondVector(coords, c, b)
	if err != nil {
		return nil, nil, errDecorate(err, "AngleSweep")
	}
	thetas, ks = linearSweep(cache, a, b, c, uab, ucb)
	return thetas, ks, nil
}

//one direction of one angle around its central atom: lead is the
//flanking atom whose bond the scaling refers to, third the other
//flanking atom, idx the position in the angle list.
type angleEntry struct {
	lead, third, idx int
}

//scalingFactors computes, for every angle in the list, the pair of
//modified-Seminario scaling factors, one per flanking bond: element 0
//for the bond At1-Center, element 1 for the bond At2-Center. The factor
//for a bond is 1 plus the mean squared overlap between the angle's
//in-plane perpendicular and those of the other angles sharing both the
//central atom and that bond; a bond shared with no other angle scales by
//exactly 1. Angles whose atoms are colinear have no defined in-plane
//perpendicular: they keep scalings of 1 and contribute nothing to their
//neighbors.
func scalingFactors(angles []*qube.Angle, coords *v3.Matrix) ([][2]float64, error) {
	byCenter := make(map[int][]angleEntry)
	for idx, ang := range angles {
		b := ang.Center.Index
		byCenter[b] = append(byCenter[b], angleEntry{ang.At1.Index, ang.At2.Index, idx})
		byCenter[b] = append(byCenter[b], angleEntry{ang.At2.Index, ang.At1.Index, idx})
	}
	scalings := make([][2]float64, len(angles))
	for i := range scalings {
		scalings[i] = [2]float64{1, 1}
	}
	for b, entries := range byCenter {
		//both directions of every angle are present, so the
		//neighbor search below works no matter which end the
		//shared bond is on.
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].lead < entries[j].lead })
		upas := make([]*v3.Matrix, len(entries))
		for j, e := range entries {
			upa, err := uPA(coords, e.lead, b, e.third)
			if err != nil {
				return nil, errDecorate(err, "scalingFactors")
			}
			upas[j] = upa //nil for colinear angles
		}
		for j, e := range entries {
			if upas[j] == nil {
				continue
			}
			extra := 0.0
			neighbors := 0
			for k := j + 1; k < len(entries) && entries[k].lead == e.lead; k++ {
				if upas[k] == nil {
					continue
				}
				d := upas[j].Dot(upas[k])
				extra += d * d
				neighbors++
			}
			for k := j - 1; k >= 0 && entries[k].lead == e.lead; k-- {
				if upas[k] == nil {
					continue
				}
				d := upas[j].Dot(upas[k])
				extra += d * d
				neighbors++
			}
			s := 1.0
			if neighbors > 0 {
				s += extra / float64(neighbors)
			}
			if e.lead == angles[e.idx].At1.Index {
				scalings[e.idx][0] = s
			} else {
				scalings[e.idx][1] = s
			}
		}
	}
	return scalings, nil
}
