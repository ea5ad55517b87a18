/*
 * qubejson_test.go, part of goqube.
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

package qubejson

import (
	"math"
	"strings"
	"testing"

	qube "github.com/rmera/goqube"
	"github.com/rmera/goqube/nonbonded"
	"github.com/rmera/goqube/seminario"
)

func waterResult() *QMResult {
	dim := 9
	hessian := make([]float64, dim*dim)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			lo, hi := i, j
			if lo > hi {
				lo, hi = hi, lo
			}
			hessian[i*dim+j] = float64(10*lo + hi)
		}
	}
	return &QMResult{
		Elements:     []string{"O", "H", "H"},
		Geometry:     []float64{0, 0, 0, 0.9572, 0, 0, -0.2399, 0.9266, 0},
		Hessian:      hessian,
		HessianUnits: KcalUnits,
		Bonds:        [][2]int{{1, 2}, {1, 3}},
		Charge:       0,
		Multiplicity: 1,
		AIM: []AIMRecord{
			{Element: "O", Charge: -0.8, Volume: 26.5},
			{Element: "H", Charge: 0.4, Volume: 3.8},
			{Element: "H", Charge: 0.4, Volume: 3.8},
		},
		Sites:  []SiteRecord{{Parent: 1, Position: []float64{0.1, 0.2, -0.3}, Charge: -0.1}},
		Groups: [][]int{{2, 3}},
	}
}

func TestMoleculeFromRecord(Te *testing.T) {
	q := waterResult()
	mol, coords, jerr := q.Molecule()
	if jerr != nil {
		Te.Fatal(jerr)
	}
	if mol.Len() != 3 {
		Te.Fatalf("got %d atoms, wanted 3", mol.Len())
	}
	o := mol.Atom(0)
	if o.Symbol != "O" || o.Charge != -0.8 || o.Volume != 26.5 {
		Te.Errorf("the AIM data did not reach the atom: %s %v %v", o.Symbol, o.Charge, o.Volume)
	}
	if got := len(qube.BondsOf(mol)); got != 2 {
		Te.Errorf("got %d bonds, wanted 2", got)
	}
	if coords.At(1, 0) != 0.9572 {
		Te.Errorf("got %v for the first H x coordinate", coords.At(1, 0))
	}
	bad := waterResult()
	bad.AIM[0].Element = "N"
	if _, _, jerr := bad.Molecule(); jerr == nil {
		Te.Error("wanted an error for mismatched AIM and geometry elements, got nil")
	} else if jerr.Atom != 0 {
		Te.Errorf("the error blames atom %d, wanted 0", jerr.Atom)
	}
	bad2 := waterResult()
	bad2.Geometry = bad2.Geometry[:8]
	if _, _, jerr := bad2.Molecule(); jerr == nil {
		Te.Error("wanted an error for a truncated geometry, got nil")
	}
}

func TestHessianFromRecord(Te *testing.T) {
	full := &QMResult{
		Elements:     []string{"C"},
		Geometry:     []float64{0, 0, 0},
		Hessian:      []float64{1, 2, 3, 2, 4, 5, 3, 5, 6},
		HessianUnits: HartreeUnits,
	}
	H, jerr := full.HessianMatrix()
	if jerr != nil {
		Te.Fatal(jerr)
	}
	if want := 2 * qube.HBohr22KcalA2; math.Abs(H.At(0, 1)-want) > 1e-9 {
		Te.Errorf("got %v after the Hartree/Bohr^2 conversion, wanted %v", H.At(0, 1), want)
	}
	tri := &QMResult{
		Elements: []string{"C"},
		Geometry: []float64{0, 0, 0},
		Hessian:  []float64{1, 2, 4, 3, 5, 6},
	}
	Ht, jerr := tri.HessianMatrix()
	if jerr != nil {
		Te.Fatal(jerr)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if want := H.At(i, j) / qube.HBohr22KcalA2; math.Abs(Ht.At(i, j)-want) > 1e-9 {
				Te.Errorf("triangular expansion differs at %d,%d: got %v, wanted %v", i, j, Ht.At(i, j), want)
			}
		}
	}
	bad := &QMResult{Elements: []string{"C"}, Hessian: []float64{1, 2, 3, 4, 5, 6, 7}}
	if _, jerr := bad.HessianMatrix(); jerr == nil {
		Te.Error("wanted an error for a Hessian fitting neither form, got nil")
	}
	bad2 := &QMResult{Elements: []string{"C"}, Hessian: []float64{1, 2, 3, 2, 4, 5, 3, 5, 6}, HessianUnits: "eV/pm^2"}
	if _, jerr := bad2.HessianMatrix(); jerr == nil {
		Te.Error("wanted an error for unknown Hessian units, got nil")
	}
}

func TestSitesAndGroups(Te *testing.T) {
	q := waterResult()
	raw, jerr := q.RawSites()
	if jerr != nil {
		Te.Fatal(jerr)
	}
	if len(raw) != 1 || raw[0].Parent != 0 {
		Te.Errorf("got parent %d for the site, wanted the 0-based 0", raw[0].Parent)
	}
	if raw[0].Position != [3]float64{0.1, 0.2, -0.3} {
		Te.Errorf("the site position did not survive: %v", raw[0].Position)
	}
	groups, jerr := q.SymmetryGroups()
	if jerr != nil {
		Te.Fatal(jerr)
	}
	if len(groups) != 1 || groups[0][0] != 1 || groups[0][1] != 2 {
		Te.Errorf("got groups %v, wanted [[1 2]]", groups)
	}
	bad := waterResult()
	bad.Sites[0].Parent = 5
	if _, jerr := bad.RawSites(); jerr == nil {
		Te.Error("wanted an error for an out-of-range site parent, got nil")
	}
	bad2 := waterResult()
	bad2.Groups = [][]int{{2, 9}}
	if _, jerr := bad2.SymmetryGroups(); jerr == nil {
		Te.Error("wanted an error for an out-of-range group atom, got nil")
	}
}

const chargemolJSON = `{"elements":["O","H","H"],
"coords":[0,0,0,0.9572,0,0,-0.2399,0.9266,0],
"bonds":[[1,2],[1,3]],"net_charge":0,"multiplicity":1,"ddec_version":6,
"ddec_charges":[-0.8,0.4,0.4],"ddec_volumes":[26.5,3.8,3.8]}`

const onetepJSON = `{"atoms":[
{"element":"O","xyz":[0,0,0],"charge":-0.8,"volume":26.5,"dipole":[0.1,0,0]},
{"element":"H","xyz":[0.9572,0,0],"charge":0.4,"volume":3.8},
{"element":"H","xyz":[-0.2399,0.9266,0],"charge":0.4,"volume":3.8}],
"hessian_units":"kcal/mol/angstrom^2","bonds":[[1,2],[1,3]],"net_charge":0,"multiplicity":1}`

func TestProviders(Te *testing.T) {
	q, err := Chargemol{DDECVersion: 6}.Read(strings.NewReader(chargemolJSON))
	if err != nil {
		Te.Fatal(err)
	}
	if q.HessianUnits != HartreeUnits {
		Te.Errorf("Chargemol records carry QM-engine units, got %q", q.HessianUnits)
	}
	if q.AIM[0].Charge != -0.8 || q.AIM[2].Volume != 3.8 {
		Te.Errorf("the AIM arrays did not land per atom: %v", q.AIM)
	}
	if len(q.Bonds) != 2 || q.Bonds[0] != [2]int{1, 2} {
		Te.Errorf("got bonds %v", q.Bonds)
	}
	if _, err := (Chargemol{DDECVersion: 3}).Read(strings.NewReader(chargemolJSON)); err == nil {
		Te.Error("wanted an error for a DDEC version mismatch, got nil")
	}
	q2, err := ONETEP{}.Read(strings.NewReader(onetepJSON))
	if err != nil {
		Te.Fatal(err)
	}
	if q2.Geometry[3] != 0.9572 {
		Te.Errorf("the per-atom coordinates did not flatten: %v", q2.Geometry)
	}
	if q2.HessianUnits != KcalUnits {
		Te.Errorf("the declared units got lost: %q", q2.HessianUnits)
	}
	if len(q2.AIM[0].Dipole) != 3 || q2.AIM[0].Dipole[0] != 0.1 {
		Te.Errorf("the dipole did not stay with the atom: %v", q2.AIM[0].Dipole)
	}
	//without a declared unit, ONETEP data is taken as the engine wrote it
	plain := strings.Replace(onetepJSON, `"hessian_units":"kcal/mol/angstrom^2",`, "", 1)
	q3, err := ONETEP{}.Read(strings.NewReader(plain))
	if err != nil {
		Te.Fatal(err)
	}
	if q3.HessianUnits != HartreeUnits {
		Te.Errorf("got %q as the default units", q3.HessianUnits)
	}
	s := qube.DefaultSettings()
	p, jerr := ProviderFor(s)
	if jerr != nil {
		Te.Fatal(jerr)
	}
	if p.Name() != "chargemol" {
		Te.Errorf("got provider %q for the default settings", p.Name())
	}
}

func TestResultRoundTrip(Te *testing.T) {
	q := waterResult()
	for _, name := range []string{"../test/qmresult.json", "../test/qmresult.json.zst"} {
		if jerr := WriteResult(name, q); jerr != nil {
			Te.Fatal(jerr)
		}
		back, jerr := ReadResult(name, nil)
		if jerr != nil {
			Te.Fatal(jerr)
		}
		if len(back.Elements) != 3 || back.Elements[0] != "O" {
			Te.Errorf("%s: elements did not survive: %v", name, back.Elements)
		}
		for i, v := range q.Geometry {
			if back.Geometry[i] != v {
				Te.Errorf("%s: coordinate %d changed from %v to %v", name, i, v, back.Geometry[i])
			}
		}
		if back.Hessian[14] != q.Hessian[14] {
			Te.Errorf("%s: the Hessian did not survive", name)
		}
		if len(back.Sites) != 1 || back.Sites[0].Charge != -0.1 {
			Te.Errorf("%s: the sites did not survive: %v", name, back.Sites)
		}
		if len(back.Groups) != 1 || back.Groups[0][1] != 3 {
			Te.Errorf("%s: the groups did not survive: %v", name, back.Groups)
		}
	}
}

func TestParameterExport(Te *testing.T) {
	bonded := &seminario.Parameters{
		Bonds:  []*seminario.BondTerm{{At1: 0, At2: 1, K: 300, Eq: 0.9572}},
		Angles: []*seminario.AngleTerm{{At1: 1, Center: 0, At2: 2, K: 100, Eq: 104.5}},
	}
	lj := []*nonbonded.LJParameter{{Atom: 0, Charge: -0.8, Sigma: 0.3, Epsilon: 0.6}}
	sites := []*nonbonded.Site{{Parent: 0, Ref1: 1, Ref2: 2, Local: [3]float64{0.01, 0.02, 0}, Charge: -0.1}}
	ps := NewParameterSet("water", bonded, lj, sites)
	b := ps.Bonds[0]
	if b.KKJNm != 300*qube.KcalA22KJNm2 || b.EqNm != 0.9572*qube.A2Nm {
		Te.Errorf("bond conversion: got %v and %v", b.KKJNm, b.EqNm)
	}
	a := ps.Angles[0]
	if a.KKJ != 100*qube.Kcal2KJ || a.EqRad != 104.5*qube.Deg2Rad {
		Te.Errorf("angle conversion: got %v and %v", a.KKJ, a.EqRad)
	}
	at := ps.Atoms[0]
	if math.Abs(at.SigmaA-3.0) > 1e-12 || at.EpsilonKcal != 0.6*qube.KJ2Kcal {
		Te.Errorf("atom conversion: got %v and %v", at.SigmaA, at.EpsilonKcal)
	}
	if len(ps.Sites) != 1 || ps.Sites[0].Refs != [2]int{1, 2} {
		Te.Errorf("the sites did not make it into the set: %v", ps.Sites)
	}
	name := "../test/params.json.zst"
	if jerr := WriteParameters(name, ps); jerr != nil {
		Te.Fatal(jerr)
	}
	back, jerr := ReadParameters(name)
	if jerr != nil {
		Te.Fatal(jerr)
	}
	if back.Molecule != "water" || len(back.Bonds) != 1 || back.Bonds[0].K != 300 {
		Te.Errorf("the set did not survive the file: %+v", back)
	}
	if back.Angles[0].EqRad != ps.Angles[0].EqRad {
		Te.Error("the converted numbers did not survive the file")
	}
}
