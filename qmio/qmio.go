/*
 * qmio.go, part of goqube.
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

package qmio

import (
	"fmt"
	"strings"

	qube "github.com/rmera/goqube"
	v3 "github.com/rmera/goqube/v3"
)

//Program names, used in errors.
const (
	Psi4      = "Psi4"
	Gaussian  = "Gaussian"
	Chargemol = "Chargemol"
)

//Calc holds the settings of one calculation, separated from the
//program that will run it. The zero value asks for a single point with
//the default theory level, so the flags have to be set for anything
//else. Note that the defaults are not part of the API and can change.
type Calc struct {
	Theory      string //DFT functional, e.g. "B3LYP"
	Basis       string
	Memory      int  //in MB
	Optimize    bool //optimize the geometry before anything else
	Hessian     bool //frequency job, keeping the Hessian
	Density     bool //write the wfx density file for the AIM partitioning
	Solvent     bool //implicit solvent, with each program's scheme
	DDECVersion int  //3 or 6, only meaningful for Chargemol
}

//Handle is the common interface to the input writers for the
//supported programs.
type Handle interface {

	//SetName sets the name for the job, used for the input and
	//output files. The extensions depend on the program.
	SetName(name string)

	//BuildInput writes the input file for a calculation with the
	//settings in Q, on the given geometry.
	BuildInput(coords *v3.Matrix, atoms qube.AtomMultiCharger, Q *Calc) error

	//Run launches the calculation previously set, waiting for it to
	//finish or not depending on wait.
	Run(wait bool) error
}

const (
	defTheory = "B3LYP"
	defBasis  = "6-311++G(d,p)"
	defMemory = 2000 //MB
)

//Error messages
const (
	ErrMissingData = "goQube/qmio: Missing coordinates, atom data or calculation settings"
	ErrMismatch    = "goQube/qmio: Coordinates and atom data differ in length"
	ErrCantInput   = "goQube/qmio: Can't build the input file"
	ErrNotRunning  = "goQube/qmio: Can't run the program"
)

//Error is the qmio error type, implementing qube.Error. Critical
//errors mean the calculation can't proceed at all.
type Error struct {
	message    string
	program    string
	inputname  string
	underlying string
	deco       []string
	critical   bool
}

func (err Error) Error() string {
	return fmt.Sprintf("%s (program: %s, input: %s) %s", err.message, err.program, err.inputname, err.underlying)
}

//Decorate adds the dec string to the decoration slice of the error and
//returns the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical reports whether the error prevents the calculation entirely.
func (err Error) Critical() bool {
	return err.critical
}

//checkInput is the common validation for every BuildInput.
func checkInput(coords *v3.Matrix, atoms qube.AtomMultiCharger, Q *Calc, program, inputname string) error {
	if atoms == nil || coords == nil || Q == nil {
		return Error{ErrMissingData, program, inputname, "", []string{"BuildInput"}, true}
	}
	if atoms.Len() != coords.NVecs() {
		return Error{ErrMismatch, program, inputname, "", []string{"BuildInput"}, true}
	}
	return nil
}

//jobLabel turns an input name, which can carry a directory, into a
//label usable inside an input file.
func jobLabel(inputname string) string {
	i := strings.LastIndex(inputname, "/")
	return strings.ReplaceAll(inputname[i+1:], ".", "_")
}

//prefixedName prepends prefix to the file part of inputname, leaving
//any directory part in place.
func prefixedName(inputname, prefix string) string {
	i := strings.LastIndex(inputname, "/")
	return inputname[:i+1] + prefix + inputname[i+1:]
}
