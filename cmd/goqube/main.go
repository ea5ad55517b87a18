/*
 * main.go, part of goqube.
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

/*To the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche*/

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	qube "github.com/rmera/goqube"
	"github.com/rmera/goqube/nonbonded"
	"github.com/rmera/goqube/qmio"
	"github.com/rmera/goqube/qubegraph"
	"github.com/rmera/goqube/qubejson"
	"github.com/rmera/goqube/qubeplot"
	"github.com/rmera/goqube/seminario"
)

// Global variables... Sometimes, you gotta use'em
var warnings []string //warnings issued during the run, to be repeated at the end
var verb int

// If level is larger or equal to the program's verbosity level, prints
// the d arguments to stderr. Otherwise, does nothing. Arguments at
// level 1 or lower are collected as warnings.
func LogV(level int, d ...interface{}) {
	if level <= verb {
		fmt.Fprintln(os.Stderr, d...)
	}
	if level <= 1 {
		warnings = append(warnings, fmt.Sprintln(d...))
	}

}

// If level is larger or equal to the program's verbosity level, prints
// the d arguments to stdout. Otherwise, does nothing. Results go through
// PrintV and diagnostics through LogV, so the two streams can be
// redirected to different files.
func PrintV(level int, d ...interface{}) {
	if level <= verb {
		fmt.Println(d...)
	}

}

// CErr terminates the run if err is not nil.
func CErr(err error, info string) {
	if err != nil {
		log.Fatal(err, info)
	}
}

// JErr is CErr for the concrete error type returned by qubejson. A nil
// *qubejson.Error put into an error interface stops being nil, so
// these errors never go through CErr.
func JErr(err *qubejson.Error, info string) {
	if err != nil {
		log.Fatal(err.Error(), " in ", strings.Join(err.Decorate(info), "/"))
	}
}

// baseName strips the directory and the extension from a file name, to
// use the rest as the molecule name. The .zst of a compressed record
// does not count as the extension.
func baseName(name string) string {
	fs := strings.Split(name, "/")
	last := fs[len(fs)-1]
	last = strings.TrimSuffix(last, ".zst")
	if i := strings.LastIndex(last, "."); i > 0 {
		last = last[:i]
	}
	return last
}

// gets a file's extension, i.e. whatever is written after the last dot
func getExtension(name string) string {
	fs := strings.Split(name, ".")
	return strings.ToLower(fs[len(fs)-1])
}

// parseTriplet reads 3 comma-separated 1-based atom indexes and returns
// them 0-based.
func parseTriplet(s string) ([3]int, error) {
	var r [3]int
	fs := strings.Split(s, ",")
	if len(fs) != 3 {
		return r, fmt.Errorf("got %d comma-separated fields, need 3", len(fs))
	}
	for i, v := range fs {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return r, err
		}
		r[i] = n - 1
	}
	return r, nil
}

func main() {
	conf := flag.String("conf", "goqube.toml", "TOML settings file. The defaults are used if the file is absent")
	qmname := flag.String("qm", "", "QM result file, JSON or zstd-compressed JSON (.json.zst)")
	xyzname := flag.String("xyz", "", "XYZ or PDB file overriding the geometry in the QM record")
	outname := flag.String("o", "", "name for the parameter file. Molecule name plus .parm.json if empty")
	molname := flag.String("name", "", "molecule name for the parameter file. Taken from the QM record filename if empty")
	chargeflag := flag.String("c", "", "total charge, overriding the one in the QM record")
	multiflag := flag.String("m", "", "multiplicity, overriding the one in the QM record")
	plots := flag.Bool("plots", false, "write PNG plots of the force-constant distributions and Lennard-Jones wells")
	scan := flag.String("scan", "", "3 comma-separated 1-based atom indexes, e.g. 2,1,3, for an angle force-constant sweep plot")
	mkinput := flag.String("mkinput", "", "write an input file for the given program (psi4, gaussian or chargemol) and stop")
	theory := flag.String("theory", "", "DFT functional for generated inputs. B3LYP if empty")
	basis := flag.String("basis", "", "basis set for generated inputs. 6-311++G(d,p) if empty")
	verbose := flag.Int("v", 1, "level of verbosity")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage:\n  %s -qm result.json [flags]  \n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	verb = *verbose

	if *qmname == "" && (*mkinput == "" || *xyzname == "") {
		flag.Usage()
		log.Fatal("goqube requires a QM result file (-qm), unless -mkinput is used with a -xyz geometry")
	}

	settings := qube.DefaultSettings()
	if _, err := os.Stat(*conf); err == nil {
		settings, err = qube.LoadSettings(*conf)
		CErr(err, " when reading "+*conf)
		LogV(3, "Settings read from", *conf)
	} else {
		LogV(2, "No settings file", *conf, "found, running with the defaults")
	}

	provider, jerr := qubejson.ProviderFor(settings)
	JErr(jerr, "main")
	q := new(qubejson.QMResult)
	if *qmname != "" {
		q, jerr = qubejson.ReadResult(*qmname, provider)
		JErr(jerr, "main")
		PrintV(2, "Read", len(q.Elements), "atoms from", *qmname, "with the", provider.Name(), "provider")
	}

	if *xyzname != "" {
		var xmol *qube.Molecule
		var err error
		if getExtension(*xyzname) == "pdb" {
			xmol, err = qube.PDBFileRead(*xyzname)
		} else {
			xmol, err = qube.XYZFileRead(*xyzname)
		}
		CErr(err, " when reading "+*xyzname)
		if len(q.Elements) == 0 {
			q.Elements = make([]string, 0, xmol.Len())
			for i := 0; i < xmol.Len(); i++ {
				q.Elements = append(q.Elements, xmol.Atom(i).Symbol)
			}
		} else if len(q.Elements) != xmol.Len() {
			log.Fatalf("The QM record has %d atoms but %s has %d", len(q.Elements), *xyzname, xmol.Len())
		}
		geo := make([]float64, 0, 3*xmol.Len())
		for i := 0; i < xmol.Len(); i++ {
			for j := 0; j < 3; j++ {
				geo = append(geo, xmol.Coords.At(i, j))
			}
		}
		q.Geometry = geo
		if len(q.Bonds) == 0 { //a PDB with CONECT records brings its own bonds
			for _, b := range qube.BondsOf(xmol) {
				q.Bonds = append(q.Bonds, [2]int{b.At1.Index + 1, b.At2.Index + 1})
			}
		}
		LogV(3, "Geometry taken from", *xyzname)
	}

	mol, coords, jerr := q.Molecule()
	JErr(jerr, "main")
	if *chargeflag != "" {
		c, err := strconv.Atoi(*chargeflag)
		CErr(err, " in the -c flag")
		mol.SetCharge(c)
	}
	if *multiflag != "" {
		m, err := strconv.Atoi(*multiflag)
		CErr(err, " in the -m flag")
		mol.SetMulti(m)
	}
	if len(qube.BondsOf(mol)) == 0 {
		LogV(1, "The QM record carries no bonds, they will be assigned from the interatomic distances")
		err := qube.AssignBonds(coords, mol)
		CErr(err, "main")
	}

	name := *molname
	if name == "" && *qmname != "" {
		name = baseName(*qmname)
	}
	if name == "" {
		name = baseName(*xyzname)
	}

	if *mkinput != "" {
		var h qmio.Handle
		calc := &qmio.Calc{Theory: *theory, Basis: *basis, DDECVersion: settings.DDECVersion}
		switch strings.ToLower(*mkinput) {
		case "psi4":
			h = qmio.NewPsi4Handle()
			calc.Optimize = true
			calc.Hessian = true
		case "gaussian":
			h = qmio.NewGaussianHandle()
			calc.Optimize = true
			calc.Hessian = true
			calc.Density = true
		case "chargemol":
			h = qmio.NewChargemolHandle()
		default:
			log.Fatal("-mkinput takes psi4, gaussian or chargemol, not " + *mkinput)
		}
		h.SetName(name)
		err := h.BuildInput(coords, mol, calc)
		CErr(err, "main")
		PrintV(1, "Input written for a", *mkinput, "job named", name)
		return
	}

	var bonded *seminario.Parameters
	var H *qube.Hessian
	if len(q.Hessian) > 0 {
		H, jerr = q.HessianMatrix()
		JErr(jerr, "main")
		var err error
		bonded, err = seminario.Derive(mol, coords, H, settings)
		CErr(err, "main")
		PrintV(2, fmt.Sprintf("Derived %d bond and %d angle terms", len(bonded.Bonds), len(bonded.Angles)))
	} else {
		LogV(1, "The QM record carries no Hessian, bonded terms will not be derived")
	}

	var lj []*nonbonded.LJParameter
	var sites []*nonbonded.Site
	if len(q.AIM) > 0 {
		groups, gerr := q.SymmetryGroups()
		JErr(gerr, "main")
		if len(groups) == 0 && settings.SymmetryAveraging {
			groups = qubegraph.EquivalentAtoms(qubegraph.FromMolecule(mol))
			if len(groups) > 0 {
				LogV(2, "Symmetry groups derived from the bond graph")
			}
		}
		var report *nonbonded.ChargeReport
		var err error
		lj, report, err = nonbonded.Derive(mol, groups, settings)
		CErr(err, "main")
		if report.Adjusted >= 0 {
			LogV(1, fmt.Sprintf("The AIM charges add up to %8.5f for a declared net charge of %d. The difference was folded into atom %d", report.Sum, report.Net, report.Adjusted))
		}
		raw, serr := q.RawSites()
		JErr(serr, "main")
		if len(raw) > 0 {
			sites, lj, err = nonbonded.PlaceSites(mol, coords, raw, lj)
			CErr(err, "main")
			PrintV(2, "Placed", len(sites), "virtual sites")
		}
	} else {
		LogV(1, "The QM record carries no AIM data, Lennard-Jones terms will not be derived")
	}

	out := *outname
	if out == "" {
		out = name + ".parm.json"
	}
	ps := qubejson.NewParameterSet(name, bonded, lj, sites)
	jerr = qubejson.WriteParameters(out, ps)
	JErr(jerr, "main")
	PrintV(1, "Parameters written to", out)

	if *plots {
		if bonded != nil && len(bonded.Bonds) > 0 {
			ks := make([]float64, 0, len(bonded.Bonds))
			for _, b := range bonded.Bonds {
				ks = append(ks, b.K)
			}
			err := qubeplot.FCHistogram(ks, 0, name+" bond force constants", "K (kcal/mol A^2)", name+"_bondK")
			if err != nil {
				LogV(1, "Could not plot the bond force constants:", err.Error())
			}
		}
		if bonded != nil && len(bonded.Angles) > 0 {
			ks := make([]float64, 0, len(bonded.Angles))
			for _, a := range bonded.Angles {
				ks = append(ks, a.K)
			}
			err := qubeplot.FCHistogram(ks, 0, name+" angle force constants", "K (kcal/mol rad^2)", name+"_angleK")
			if err != nil {
				LogV(1, "Could not plot the angle force constants:", err.Error())
			}
		}
		if len(lj) > 0 {
			atoms := make([]int, 0, len(lj))
			for _, p := range lj {
				if p.Sigma > 0 && p.Epsilon > 0 {
					atoms = append(atoms, p.Atom)
				}
			}
			if len(atoms) > 0 {
				err := qubeplot.LJCurve(lj, atoms, name+" Lennard-Jones", name+"_LJ")
				if err != nil {
					LogV(1, "Could not plot the Lennard-Jones curves:", err.Error())
				}
			}
		}
	}
	if *scan != "" {
		if H == nil {
			LogV(1, "The -scan flag needs a Hessian in the QM record, no sweep plot made")
		} else {
			abc, err := parseTriplet(*scan)
			CErr(err, " in the -scan flag")
			err = qubeplot.AngleScan(coords, H, abc[0], abc[1], abc[2], fmt.Sprintf("%s angle %s sweep", name, *scan), name+"_scan")
			if err != nil {
				LogV(1, "Could not plot the angle sweep:", err.Error())
			}
		}
	}

	if len(warnings) > 0 {
		PrintV(1, fmt.Sprintf("%d warnings were issued:", len(warnings)))
		for _, v := range warnings {
			fmt.Print(v)
		}
	}
}
