/*
 * json.go, part of goqube.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package qubejson

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	qube "github.com/rmera/goqube"
	"github.com/rmera/goqube/nonbonded"
	v3 "github.com/rmera/goqube/v3"
)

//The unit tags a QM record may carry for its Hessian.
const (
	HartreeUnits = "hartree/bohr^2"
	KcalUnits    = "kcal/mol/angstrom^2"
)

//An easily JSON-serializable error type.
type Error struct {
	deco      []string
	IsError   bool   //If this is false (no error) all the other fields will be at their zero-values.
	InRecord  bool   //If error, was it in decoding or validating a QM record?
	InExport  bool   //Was it in preparing or writing an output file?
	InProcess bool   //Anything else.
	Atom      int    //The offending atom, or -1 if no single atom is to blame.
	Function  string //which go function gave the error
	Message   string //the error itself
}

//Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//Serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - "))
	}
	return ret
}

//Takes an error and some additional info to create a json-marshal-ble error
func NewError(where, function string, err error) *Error {
	jerr := new(Error)
	jerr.IsError = true
	jerr.Atom = -1
	switch where {
	case "record":
		jerr.InRecord = true
	case "export":
		jerr.InExport = true
	default:
		jerr.InProcess = true
	}
	jerr.Function = function
	jerr.Message = err.Error()
	return jerr
}

//A SiteRecord is an off-center charge site as it arrives in a QM
//record. The parent index is 1-based, as everything in the records.
type SiteRecord struct {
	Parent   int
	Position []float64 //A
	Charge   float64
}

//An AIMRecord carries the electron-density partitioning results for one
//atom. The dipole components only appear in ONETEP-style records; the
//sigma/epsilon derivation does not use them but they stay with the atom.
type AIMRecord struct {
	Element string
	Charge  float64
	Volume  float64 //Bohr^3
	Dipole  []float64
}

//A QMResult is the one normalized shape in which QM and partitioning
//results enter goQube, whatever engine produced them. Geometry is in A.
//The Hessian is flattened row-major, full or lower-triangular, in the
//units named by HessianUnits; an empty tag means kcal/mol/A^2 already.
//All atom indexes, in Bonds, Sites and Groups, are 1-based. They become
//0-based when the record is turned into goQube types, here and nowhere
//else.
type QMResult struct {
	Elements     []string
	Names        []string //optional; the element symbol is used when empty
	Geometry     []float64
	Hessian      []float64
	HessianUnits string
	Bonds        [][2]int
	Charge       int
	Multiplicity int
	AIM          []AIMRecord
	Sites        []SiteRecord
	Groups       [][]int
}

//Molecule builds a molecule and its coordinates from the record,
//including bonds and, if AIM data is present, the per-atom charges and
//volumes. The record is not modified.
func (q *QMResult) Molecule() (*qube.Molecule, *v3.Matrix, *Error) {
	const funcname = "QMResult.Molecule"
	n := len(q.Elements)
	if n == 0 {
		return nil, nil, NewError("record", funcname, fmt.Errorf("the record contains no atoms"))
	}
	if len(q.Geometry) != 3*n {
		return nil, nil, NewError("record", funcname, fmt.Errorf("got %d coordinates for %d atoms", len(q.Geometry), n))
	}
	if q.AIM != nil && len(q.AIM) != n {
		return nil, nil, NewError("record", funcname, fmt.Errorf("got %d AIM records for %d atoms", len(q.AIM), n))
	}
	ats := make([]*qube.Atom, n)
	for i, el := range q.Elements {
		name := el
		if i < len(q.Names) && q.Names[i] != "" {
			name = q.Names[i]
		}
		at := qube.NewAtom(name, el, i)
		if q.AIM != nil {
			a := q.AIM[i]
			if a.Element != "" && !strings.EqualFold(a.Element, at.Symbol) {
				jerr := NewError("record", funcname, fmt.Errorf("atom %d is %s in the geometry but %s in the AIM data", i+1, at.Symbol, a.Element))
				jerr.Atom = i
				return nil, nil, jerr
			}
			at.Charge = a.Charge
			at.Volume = a.Volume
		}
		ats[i] = at
	}
	coords, err := v3.NewMatrix(q.Geometry)
	if err != nil {
		return nil, nil, NewError("record", funcname, err)
	}
	multi := q.Multiplicity
	if multi == 0 {
		multi = 1
	}
	mol, err := qube.NewMolecule(ats, coords, q.Charge, multi)
	if err != nil {
		return nil, nil, NewError("record", funcname, err)
	}
	if len(q.Bonds) > 0 {
		if err := qube.SetBonds(mol, coords, q.Bonds, true); err != nil {
			return nil, nil, NewError("record", funcname, err)
		}
	}
	return mol, coords, nil
}

//HessianMatrix builds the Hessian from the record, expanding a
//lower-triangular form if that is what the record carries and
//converting Hartree/Bohr^2 data to kcal/mol/A^2. Symmetry is checked on
//construction, so a corrupted record fails here, not downstream.
func (q *QMResult) HessianMatrix() (*qube.Hessian, *Error) {
	const funcname = "QMResult.HessianMatrix"
	n := len(q.Elements)
	if n == 0 {
		return nil, NewError("record", funcname, fmt.Errorf("the record contains no atoms"))
	}
	dim := 3 * n
	var data []float64
	switch len(q.Hessian) {
	case dim * dim:
		data = make([]float64, len(q.Hessian))
		copy(data, q.Hessian)
	case dim * (dim + 1) / 2:
		data = expandTriangle(q.Hessian, dim)
	default:
		return nil, NewError("record", funcname, fmt.Errorf("a Hessian of %d elements fits neither the square nor the triangular form for %d atoms", len(q.Hessian), n))
	}
	switch q.HessianUnits {
	case KcalUnits, "":
	case HartreeUnits:
		for i := range data {
			data[i] *= qube.HBohr22KcalA2
		}
	default:
		return nil, NewError("record", funcname, fmt.Errorf("unknown Hessian units %q", q.HessianUnits))
	}
	H, err := qube.NewHessian(data, n, 0)
	if err != nil {
		return nil, NewError("record", funcname, err)
	}
	return H, nil
}

//expandTriangle rebuilds the full row-major matrix from its row-major
//lower triangle.
func expandTriangle(tri []float64, dim int) []float64 {
	data := make([]float64, dim*dim)
	k := 0
	for i := 0; i < dim; i++ {
		for j := 0; j <= i; j++ {
			data[i*dim+j] = tri[k]
			data[j*dim+i] = tri[k]
			k++
		}
	}
	return data
}

//RawSites returns the off-center charge sites of the record with
//0-based parents, ready for placement. A record with no sites gives
//nil, nil.
func (q *QMResult) RawSites() ([]*nonbonded.RawSite, *Error) {
	const funcname = "QMResult.RawSites"
	if len(q.Sites) == 0 {
		return nil, nil
	}
	n := len(q.Elements)
	out := make([]*nonbonded.RawSite, len(q.Sites))
	for i, s := range q.Sites {
		if s.Parent < 1 || s.Parent > n {
			return nil, NewError("record", funcname, fmt.Errorf("site %d: parent atom %d out of range", i, s.Parent))
		}
		if len(s.Position) != 3 {
			return nil, NewError("record", funcname, fmt.Errorf("site %d: got %d position components", i, len(s.Position)))
		}
		rs := &nonbonded.RawSite{Parent: s.Parent - 1, Charge: s.Charge}
		copy(rs.Position[:], s.Position)
		out[i] = rs
	}
	return out, nil
}

//SymmetryGroups returns the symmetry-equivalent atom groups of the
//record with 0-based indexes. A record with no groups gives nil, nil.
func (q *QMResult) SymmetryGroups() ([][]int, *Error) {
	const funcname = "QMResult.SymmetryGroups"
	if len(q.Groups) == 0 {
		return nil, nil
	}
	n := len(q.Elements)
	out := make([][]int, len(q.Groups))
	for gi, g := range q.Groups {
		ng := make([]int, len(g))
		for i, a := range g {
			if a < 1 || a > n {
				return nil, NewError("record", funcname, fmt.Errorf("group %d: atom %d out of range", gi, a))
			}
			ng[i] = a - 1
		}
		out[gi] = ng
	}
	return out, nil
}

//This is needed because *zstd.Decoder does not implement io.ReadCloser,
//as its Close returns nothing.
type zstql struct {
	closeql func()
	*zstd.Decoder
}

//Close Closes the object.
func (z zstql) Close() error {
	z.closeql()
	return nil
}

//The writer-side counterpart, for uncompressed streams.
type plainql struct {
	io.Writer
}

func (p plainql) Close() error { return nil }

//compressOut wraps w for writing under the conventions of name: a .zst
//suffix gets zstd at its best ratio, anything else passes through.
func compressOut(w io.Writer, name string) (io.WriteCloser, *Error) {
	if strings.HasSuffix(strings.ToLower(name), ".zst") {
		z, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			return nil, NewError("export", "compressOut", err)
		}
		return z, nil
	}
	return plainql{w}, nil
}

//decompressIn wraps r for reading under the conventions of name.
func decompressIn(r io.Reader, name string) (io.ReadCloser, *Error) {
	if strings.HasSuffix(strings.ToLower(name), ".zst") {
		z, err := zstd.NewReader(r)
		if err != nil {
			return nil, NewError("record", "decompressIn", err)
		}
		return zstql{z.Close, z}, nil
	}
	return io.NopCloser(r), nil
}

//DecodeResult decodes one record already in the normalized shape.
func DecodeResult(r io.Reader) (*QMResult, *Error) {
	q := new(QMResult)
	dec := json.NewDecoder(r)
	if err := dec.Decode(q); err != nil {
		return nil, NewError("record", "DecodeResult", err)
	}
	return q, nil
}

//ReadResult reads one QM record from the named file through the given
//provider, decompressing first if the name ends in .zst. A nil provider
//means the file is already in the normalized shape.
func ReadResult(name string, p Provider) (*QMResult, *Error) {
	const funcname = "ReadResult"
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
	if p == nil {
		p = Native{}
	}
	q, err := p.Read(h)
	if err != nil {
		return nil, NewError("record", funcname+"("+p.Name()+")", err)
	}
	return q, nil
}

//WriteResult writes the record to the named file in the normalized
//shape, compressing if the name ends in .zst.
func WriteResult(name string, q *QMResult) *Error {
	const funcname = "WriteResult"
	f, err := os.Create(name)
	if err != nil {
		return NewError("export", funcname, err)
	}
	h, jerr := compressOut(f, name)
	if jerr != nil {
		f.Close()
		return jerr
	}
	enc := json.NewEncoder(h)
	err = enc.Encode(q)
	if err2 := h.Close(); err == nil {
		err = err2
	}
	if err2 := f.Close(); err == nil {
		err = err2
	}
	if err != nil {
		return NewError("export", funcname, err)
	}
	return nil
}
