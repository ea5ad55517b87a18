/*
 * symmetry.go, part of goqube.
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
	"math"

	qube "github.com/rmera/goqube"
)

//SymmetryAverage returns a new parameter list where, within each group
//of chemically equivalent atoms (say, the hydrogens of a methyl group),
//charge, sigma and epsilon are replaced by the group's arithmetic means.
//Groups of less than 2 atoms change nothing; an out-of-range index is an
//error.
func SymmetryAverage(params []*LJParameter, groups [][]int) ([]*LJParameter, error) {
	out := make([]*LJParameter, len(params))
	for i, p := range params {
		np := *p
		out[i] = &np
	}
	for g, group := range groups {
		if len(group) < 2 {
			continue
		}
		var q, s, e float64
		for _, i := range group {
			if i < 0 || i >= len(out) {
				return nil, Error{fmt.Sprintf("goQube/nonbonded: Symmetry group %d names atom %d, out of range for %d atoms", g, i, len(out)), []string{"SymmetryAverage"}}
			}
			q += out[i].Charge
			s += out[i].Sigma
			e += out[i].Epsilon
		}
		n := float64(len(group))
		for _, i := range group {
			out[i].Charge = q / n
			out[i].Sigma = s / n
			out[i].Epsilon = e / n
		}
	}
	return out, nil
}

//ChargeReport describes the outcome of the net-charge check.
type ChargeReport struct {
	Sum      float64 //of the atomic charges, before any correction
	Net      int     //the declared net charge
	Adjusted int     //atom whose charge absorbed the difference, or -1
}

//CheckCharge verifies that the atomic charges sum to the declared net
//charge of the molecule, within the tolerance of the settings. Within
//tolerance, nothing is changed. A larger mismatch is an error under
//StrictCharge; otherwise the whole difference is folded into the atom
//with the largest absolute charge, so that the sum comes out exact, and
//the report says which. The returned list is the input one when no
//correction was needed.
func CheckCharge(params []*LJParameter, net int, settings *qube.Settings) ([]*LJParameter, *ChargeReport, error) {
	if settings == nil {
		settings = qube.DefaultSettings()
	}
	report := &ChargeReport{Net: net, Adjusted: -1}
	for _, p := range params {
		report.Sum += p.Charge
	}
	delta := report.Sum - float64(net)
	if math.Abs(delta) <= settings.ChargeTolerance {
		return params, report, nil
	}
	if settings.StrictCharge {
		return params, report, Error{fmt.Sprintf("goQube/nonbonded: Atomic charges sum to %.5f but the declared net charge is %d", report.Sum, net), []string{"CheckCharge"}}
	}
	if len(params) == 0 {
		return params, report, nil
	}
	big := 0
	for i, p := range params {
		if math.Abs(p.Charge) > math.Abs(params[big].Charge) {
			big = i
		}
	}
	out := make([]*LJParameter, len(params))
	for i, p := range params {
		np := *p
		out[i] = &np
	}
	out[big].Charge -= delta
	report.Adjusted = big
	return out, report, nil
}
