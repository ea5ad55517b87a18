/*
 * export.go, part of goqube.
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
	"bufio"
	"encoding/json"
	"io"
	"os"

	qube "github.com/rmera/goqube"
	"github.com/rmera/goqube/nonbonded"
	"github.com/rmera/goqube/seminario"
)

//A BondRecord carries one harmonic bond term in both unit systems.
type BondRecord struct {
	Atoms [2]int
	K     float64 //kcal/(mol A^2)
	Eq    float64 //A
	KKJNm float64 //kJ/(mol nm^2)
	EqNm  float64 //nm
}

//An AngleRecord carries one harmonic angle term in both unit systems.
type AngleRecord struct {
	Atoms [3]int  //the central atom in the middle
	K     float64 //kcal/(mol rad^2)
	Eq    float64 //degrees
	KKJ   float64 //kJ/(mol rad^2)
	EqRad float64 //radians
}

//An AtomRecord carries the nonbonded parameters of one atom in both
//unit systems.
type AtomRecord struct {
	Atom        int
	Charge      float64 //e
	Sigma       float64 //nm
	Epsilon     float64 //kJ/mol
	SigmaA      float64 //A
	EpsilonKcal float64 //kcal/mol
}

//A SiteExport carries one placed off-center charge site.
type SiteExport struct {
	Parent int
	Refs   [2]int
	Local  [3]float64 //nm, in the parent local frame
	Charge float64    //e
}

//A ParameterSet is the JSON-exportable form of everything goQube
//derives for one molecule. Atom indexes are 0-based here: this is
//goQube output, not an engine record.
type ParameterSet struct {
	Molecule string
	Bonds    []*BondRecord
	Angles   []*AngleRecord
	Atoms    []*AtomRecord
	Sites    []*SiteExport
}

//NewParameterSet assembles the exportable set from derived bonded
//terms, nonbonded parameters and placed sites, filling in the converted
//numbers. Any of the three may be nil.
func NewParameterSet(name string, bonded *seminario.Parameters, lj []*nonbonded.LJParameter, sites []*nonbonded.Site) *ParameterSet {
	ps := &ParameterSet{Molecule: name}
	if bonded != nil {
		for _, b := range bonded.Bonds {
			ps.Bonds = append(ps.Bonds, &BondRecord{
				Atoms: [2]int{b.At1, b.At2},
				K:     b.K,
				Eq:    b.Eq,
				KKJNm: b.K * qube.KcalA22KJNm2,
				EqNm:  b.Eq * qube.A2Nm,
			})
		}
		for _, a := range bonded.Angles {
			ps.Angles = append(ps.Angles, &AngleRecord{
				Atoms: [3]int{a.At1, a.Center, a.At2},
				K:     a.K,
				Eq:    a.Eq,
				KKJ:   a.K * qube.Kcal2KJ,
				EqRad: a.Eq * qube.Deg2Rad,
			})
		}
	}
	for _, p := range lj {
		ps.Atoms = append(ps.Atoms, &AtomRecord{
			Atom:        p.Atom,
			Charge:      p.Charge,
			Sigma:       p.Sigma,
			Epsilon:     p.Epsilon,
			SigmaA:      p.Sigma * qube.Nm2A,
			EpsilonKcal: p.Epsilon * qube.KJ2Kcal,
		})
	}
	for _, s := range sites {
		ps.Sites = append(ps.Sites, &SiteExport{
			Parent: s.Parent,
			Refs:   [2]int{s.Ref1, s.Ref2},
			Local:  s.Local,
			Charge: s.Charge,
		})
	}
	return ps
}

//Send Marshals the set and writes it to out, returns an error or nil.
func (ps *ParameterSet) Send(out io.Writer) *Error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(ps); err != nil {
		return NewError("export", "ParameterSet.Send", err)
	}
	return nil
}

//WriteParameters writes the set to the named file, compressing if the
//name ends in .zst.
func WriteParameters(name string, ps *ParameterSet) *Error {
	const funcname = "WriteParameters"
	f, err := os.Create(name)
	if err != nil {
		return NewError("export", funcname, err)
	}
	h, jerr := compressOut(f, name)
	if jerr != nil {
		f.Close()
		return jerr
	}
	jerr = ps.Send(h)
	err = h.Close()
	if err2 := f.Close(); err == nil {
		err = err2
	}
	if jerr != nil {
		return jerr
	}
	if err != nil {
		return NewError("export", funcname, err)
	}
	return nil
}

//ReadParameters reads a set back from the named file, decompressing if
//the name ends in .zst.
func ReadParameters(name string) (*ParameterSet, *Error) {
	const funcname = "ReadParameters"
	f, err := os.Open(name)
	if err != nil {
		return nil, NewError("record", funcname, err)
	}
	defer f.Close()
	h, jerr := decompressIn(bufio.NewReader(f), name)
	if jerr != nil {
		return nil, jerr
	}
	defer h.Close()
	ps := new(ParameterSet)
	dec := json.NewDecoder(h)
	if err := dec.Decode(ps); err != nil {
		return nil, NewError("record", funcname, err)
	}
	return ps, nil
}
