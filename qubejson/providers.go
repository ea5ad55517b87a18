/*
 * providers.go, part of goqube.
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
	"encoding/json"
	"fmt"
	"io"

	qube "github.com/rmera/goqube"
)

//A Provider normalizes the record shape of one QM/partitioning engine
//into the QMResult every other part of goQube consumes. The derivations
//never see which engine produced their data.
type Provider interface {

	//Name returns the lowercase name of the engine whose records this
	//provider reads.
	Name() string

	//Read decodes one record in the engine's own shape from r and
	//returns it normalized.
	Read(r io.Reader) (*QMResult, error)
}

//ProviderFor returns the provider selected by the settings, with the
//requested DDEC version bound for Chargemol data.
func ProviderFor(settings *qube.Settings) (Provider, *Error) {
	if settings == nil {
		settings = qube.DefaultSettings()
	}
	switch settings.Provider {
	case "chargemol":
		return Chargemol{DDECVersion: settings.DDECVersion}, nil
	case "onetep":
		return ONETEP{}, nil
	}
	return nil, NewError("record", "ProviderFor", fmt.Errorf("no provider reads %q records", settings.Provider))
}

//Native reads records already in the normalized shape, as written by
//WriteResult.
type Native struct{}

//Name returns "goqube".
func (n Native) Name() string { return "goqube" }

//Read decodes one normalized record.
func (n Native) Read(r io.Reader) (*QMResult, error) {
	q, jerr := DecodeResult(r)
	if jerr != nil {
		return nil, jerr
	}
	return q, nil
}

//The shape in which off-center sites appear in engine records.
type siteShape struct {
	Parent   int       `json:"parent"`
	Position []float64 `json:"position"`
	Charge   float64   `json:"charge"`
}

func siteRecords(raw []siteShape) []SiteRecord {
	if len(raw) == 0 {
		return nil
	}
	out := make([]SiteRecord, len(raw))
	for i, s := range raw {
		out[i] = SiteRecord{Parent: s.Parent, Position: s.Position, Charge: s.Charge}
	}
	return out
}

//The shape in which Chargemol/DDEC runs arrive: flat per-property
//arrays, the AIM data split by property and the Hessian still in
//Hartree/Bohr^2, as the QM engine wrote it.
type chargemolRecord struct {
	Elements     []string    `json:"elements"`
	Names        []string    `json:"names"`
	Coords       []float64   `json:"coords"`
	Hessian      []float64   `json:"hessian"`
	Bonds        [][2]int    `json:"bonds"`
	NetCharge    int         `json:"net_charge"`
	Multiplicity int         `json:"multiplicity"`
	DDECVersion  int         `json:"ddec_version"`
	Charges      []float64   `json:"ddec_charges"`
	Volumes      []float64   `json:"ddec_volumes"`
	Sites        []siteShape `json:"sites"`
	Groups       [][]int     `json:"symmetry_groups"`
}

//Chargemol reads records produced by Chargemol DDEC3/DDEC6 density
//partitioning. A zero DDECVersion accepts whatever version the record
//declares.
type Chargemol struct {
	DDECVersion int
}

//Name returns "chargemol".
func (c Chargemol) Name() string { return "chargemol" }

//Read decodes one Chargemol-shaped record and normalizes it.
func (c Chargemol) Read(r io.Reader) (*QMResult, error) {
	raw := new(chargemolRecord)
	dec := json.NewDecoder(r)
	if err := dec.Decode(raw); err != nil {
		return nil, err
	}
	n := len(raw.Elements)
	if n == 0 {
		return nil, fmt.Errorf("the record contains no atoms")
	}
	if c.DDECVersion != 0 && raw.DDECVersion != 0 && raw.DDECVersion != c.DDECVersion {
		return nil, fmt.Errorf("the record was partitioned with DDEC%d, but DDEC%d was requested", raw.DDECVersion, c.DDECVersion)
	}
	if len(raw.Charges) != n || len(raw.Volumes) != n {
		return nil, fmt.Errorf("got %d charges and %d volumes for %d atoms", len(raw.Charges), len(raw.Volumes), n)
	}
	q := &QMResult{
		Elements:     raw.Elements,
		Names:        raw.Names,
		Geometry:     raw.Coords,
		Hessian:      raw.Hessian,
		HessianUnits: HartreeUnits,
		Bonds:        raw.Bonds,
		Charge:       raw.NetCharge,
		Multiplicity: raw.Multiplicity,
		Sites:        siteRecords(raw.Sites),
		Groups:       raw.Groups,
	}
	q.AIM = make([]AIMRecord, n)
	for i := range raw.Elements {
		q.AIM[i] = AIMRecord{Element: raw.Elements[i], Charge: raw.Charges[i], Volume: raw.Volumes[i]}
	}
	return q, nil
}

//One atom as it appears in an ONETEP record: everything about the atom
//in one block, dipole components included.
type onetepAtom struct {
	Element string    `json:"element"`
	XYZ     []float64 `json:"xyz"`
	Charge  float64   `json:"charge"`
	Volume  float64   `json:"volume"`
	Dipole  []float64 `json:"dipole"`
}

//The shape in which ONETEP runs arrive: per-atom blocks, and a Hessian
//whose units the record itself declares.
type onetepRecord struct {
	Atoms        []onetepAtom `json:"atoms"`
	Hessian      []float64    `json:"hessian"`
	HessianUnits string       `json:"hessian_units"`
	Bonds        [][2]int     `json:"bonds"`
	NetCharge    int          `json:"net_charge"`
	Multiplicity int          `json:"multiplicity"`
	Sites        []siteShape  `json:"sites"`
	Groups       [][]int      `json:"symmetry_groups"`
}

//ONETEP reads records produced by ONETEP runs with DDEC partitioning.
type ONETEP struct{}

//Name returns "onetep".
func (o ONETEP) Name() string { return "onetep" }

//Read decodes one ONETEP-shaped record and normalizes it.
func (o ONETEP) Read(r io.Reader) (*QMResult, error) {
	raw := new(onetepRecord)
	dec := json.NewDecoder(r)
	if err := dec.Decode(raw); err != nil {
		return nil, err
	}
	n := len(raw.Atoms)
	if n == 0 {
		return nil, fmt.Errorf("the record contains no atoms")
	}
	units := raw.HessianUnits
	if units == "" {
		units = HartreeUnits
	}
	q := &QMResult{
		Elements:     make([]string, n),
		Geometry:     make([]float64, 0, 3*n),
		Hessian:      raw.Hessian,
		HessianUnits: units,
		Bonds:        raw.Bonds,
		Charge:       raw.NetCharge,
		Multiplicity: raw.Multiplicity,
		AIM:          make([]AIMRecord, n),
		Sites:        siteRecords(raw.Sites),
		Groups:       raw.Groups,
	}
	for i, a := range raw.Atoms {
		if len(a.XYZ) != 3 {
			return nil, fmt.Errorf("atom %d: got %d coordinates", i+1, len(a.XYZ))
		}
		q.Elements[i] = a.Element
		q.Geometry = append(q.Geometry, a.XYZ...)
		q.AIM[i] = AIMRecord{Element: a.Element, Charge: a.Charge, Volume: a.Volume, Dipole: a.Dipole}
	}
	return q, nil
}
