/*
 * pdb.go, part of goqube.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	v3 "github.com/rmera/goqube/v3"
)

//pdbSymbol extracts the element symbol of a ligand PDB atom. The
//element columns (77-78) win when present. Otherwise the symbol is
//guessed from the atom name by dropping digits, which works for the
//C1/CL2/H11-style names sdf- and mol2-derived PDBs use, but will misread
//names like "CA" meaning an alpha carbon. QM-sized molecules, not
//proteins, are assumed.
func pdbSymbol(line, name string) string {
	if len(line) >= 78 {
		if s := strings.TrimSpace(line[76:78]); s != "" {
			return s
		}
	}
	letters := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return -1
		}
		return r
	}, name)
	return letters
}

//pdbAtomLine parses one ATOM or HETATM line, returning the serial
//number, the atom and its coordinates.
func pdbAtomLine(line string) (int, *Atom, []float64, error) {
	if len(line) < 54 {
		return 0, nil, nil, fmt.Errorf("line has only %d columns", len(line))
	}
	serial, err := strconv.Atoi(strings.TrimSpace(line[6:11]))
	if err != nil {
		return 0, nil, nil, err
	}
	name := strings.TrimSpace(line[12:16])
	at := NewAtom(name, pdbSymbol(line, name), -1)
	at.Mass = symbolMass[at.Symbol]
	coords := make([]float64, 3)
	for j := 0; j < 3; j++ {
		coords[j], err = strconv.ParseFloat(strings.TrimSpace(line[30+8*j:38+8*j]), 64)
		if err != nil {
			return 0, nil, nil, err
		}
	}
	return serial, at, coords, nil
}

//PDBRead reads a small-molecule PDB from the reader: ATOM and HETATM
//records become atoms, in file order, and CONECT records become bonds.
//Chains, residues, occupancies and anisotropic data are ignored, and
//only the first model of a multi-model file is read. The molecule
//comes out with zero charge and singlet multiplicity.
func PDBRead(f io.Reader) (*Molecule, error) {
	ats := make([]*Atom, 0, 10)
	coords := make([]float64, 0, 30)
	serial2index := make(map[int]int)
	var pairs [][2]int
	scanner := bufio.NewScanner(f)
	nline := 0
	for scanner.Scan() {
		line := scanner.Text()
		nline++
		if strings.HasPrefix(line, "END") { //this catches ENDMDL too
			break
		}
		if strings.HasPrefix(line, "ATOM") || strings.HasPrefix(line, "HETATM") {
			serial, at, xyz, err := pdbAtomLine(line)
			if err != nil {
				return nil, CError{fmt.Sprintf("Ill formatted PDB: line %d: %s", nline, err.Error()), []string{"PDBRead"}}
			}
			at.Index = len(ats)
			serial2index[serial] = at.Index
			ats = append(ats, at)
			coords = append(coords, xyz...)
			continue
		}
		if strings.HasPrefix(line, "CONECT") {
			fields := strings.Fields(line)
			serials := make([]int, 0, len(fields)-1)
			for _, v := range fields[1:] {
				s, err := strconv.Atoi(v)
				if err != nil {
					return nil, CError{fmt.Sprintf("Ill formatted PDB: CONECT in line %d: %s", nline, err.Error()), []string{"PDBRead"}}
				}
				serials = append(serials, s)
			}
			for _, s := range serials[1:] {
				pairs = append(pairs, [2]int{serials[0], s})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, CError{"Ill formatted PDB: " + err.Error(), []string{"PDBRead"}}
	}
	if len(ats) == 0 {
		return nil, CError{"Ill formatted PDB: no ATOM or HETATM records found", []string{"PDBRead"}}
	}
	mcoords, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, errDecorate(err, "PDBRead")
	}
	mol, err := NewMolecule(ats, mcoords, 0, 1)
	if err != nil {
		return nil, errDecorate(err, "PDBRead")
	}
	if len(pairs) > 0 {
		//CONECT lists each bond from both ends, so every pair appears
		//twice. SetBonds wants each bond once, and 0-based.
		seen := make(map[[2]int]bool, len(pairs))
		unique := make([][2]int, 0, len(pairs)/2)
		for _, p := range pairs {
			i, oki := serial2index[p[0]]
			j, okj := serial2index[p[1]]
			if !oki || !okj {
				return nil, CError{fmt.Sprintf("Ill formatted PDB: CONECT refers to the absent serial %d or %d", p[0], p[1]), []string{"PDBRead"}}
			}
			if i > j {
				i, j = j, i
			}
			if i == j || seen[[2]int{i, j}] {
				continue
			}
			seen[[2]int{i, j}] = true
			unique = append(unique, [2]int{i, j})
		}
		if err := SetBonds(mol, mcoords, unique, false); err != nil {
			return nil, errDecorate(err, "PDBRead")
		}
	}
	return mol, nil
}

//PDBFileRead reads a small-molecule PDB file given by its name.
func PDBFileRead(pdbname string) (*Molecule, error) {
	pdbfile, err := os.Open(pdbname)
	if err != nil {
		return nil, err
	}
	defer pdbfile.Close()
	mol, err := PDBRead(pdbfile)
	if err != nil {
		err = errDecorate(err, "PDBFileRead: "+pdbname)
	}
	return mol, err
}
