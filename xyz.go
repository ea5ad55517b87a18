/*
 * xyz.go, part of goqube.
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

//XYZRead reads an xyz-formatted geometry from the reader and returns it
//as a molecule with zero charge and singlet multiplicity (the format
//carries no electronic information; use the Set* methods to amend).
//Coordinates are taken to be in A.
func XYZRead(f io.Reader) (*Molecule, error) {
	xyz := bufio.NewReader(f)
	line, err := xyz.ReadString('\n')
	if err != nil {
		return nil, CError{"Ill formatted XYZ: " + err.Error(), []string{"XYZRead"}}
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return nil, CError{"Ill formatted XYZ: couldn't read the number of atoms", []string{"XYZRead"}}
	}
	ats := make([]*Atom, natoms)
	coords := make([]float64, natoms*3)
	if _, err := xyz.ReadString('\n'); err != nil { //the comment line
		return nil, CError{"Ill formatted XYZ: " + err.Error(), []string{"XYZRead"}}
	}
	for i := 0; i < natoms; i++ {
		line, err = xyz.ReadString('\n')
		if err != nil && !(err == io.EOF && line != "") {
			return nil, CError{fmt.Sprintf("Ill formatted XYZ: line for atom %d: %s", i, err.Error()), []string{"XYZRead"}}
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, CError{fmt.Sprintf("Ill formatted XYZ: line for atom %d has %d fields", i, len(fields)), []string{"XYZRead"}}
		}
		ats[i] = NewAtom(fields[0], fields[0], i)
		ats[i].Mass = symbolMass[ats[i].Symbol]
		for j := 0; j < 3; j++ {
			coords[i*3+j], err = strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, CError{fmt.Sprintf("Ill formatted XYZ: coordinate %d of atom %d: %s", j, i, err.Error()), []string{"XYZRead"}}
			}
		}
	}
	mcoords, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, errDecorate(err, "XYZRead")
	}
	return NewMolecule(ats, mcoords, 0, 1)
}

//XYZFileRead reads an xyz file given by its name.
func XYZFileRead(xyzname string) (*Molecule, error) {
	xyzfile, err := os.Open(xyzname)
	if err != nil {
		return nil, err
	}
	defer xyzfile.Close()
	mol, err := XYZRead(xyzfile)
	if err != nil {
		err = errDecorate(err, "XYZFileRead: "+xyzname)
	}
	return mol, err
}

//XYZWrite writes the atoms of mol with the coordinates coord (in A) to
//out, in xyz format.
func XYZWrite(out io.Writer, mol Atomer, coord *v3.Matrix) error {
	if mol == nil || coord == nil {
		return CError{string(ErrNilData), []string{"XYZWrite"}}
	}
	if mol.Len() != coord.NVecs() {
		return CError{string(ErrCoordsAtomsMismatch), []string{"XYZWrite"}}
	}
	fmt.Fprintf(out, "%-4d\n", mol.Len())
	fmt.Fprintf(out, "\n")
	c := make([]float64, 3)
	for i := 0; i < mol.Len(); i++ {
		coord.Row(c, i)
		_, err := fmt.Fprintf(out, "%-2s  %8.3f%8.3f%8.3f \n", mol.Atom(i).Symbol, c[0], c[1], c[2])
		if err != nil {
			return CError{err.Error(), []string{"XYZWrite"}}
		}
	}
	return nil
}

//XYZFileWrite writes mol to an XYZ file with the given name, which is
//created or, if it exists, overwritten.
func XYZFileWrite(xyzname string, mol Atomer, coord *v3.Matrix) error {
	out, err := os.Create(xyzname)
	if err != nil {
		return CError{err.Error(), []string{"XYZFileWrite"}}
	}
	defer out.Close()
	err = XYZWrite(out, mol, coord)
	if err != nil {
		err = errDecorate(err, "XYZFileWrite: "+xyzname)
	}
	return err
}
