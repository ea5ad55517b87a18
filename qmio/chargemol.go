/*
 * chargemol.go, part of goqube.
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
	"os"
	"os/exec"
	"strings"

	qube "github.com/rmera/goqube"
	v3 "github.com/rmera/goqube/v3"
)

//ChargemolHandle writes and runs the control file for the DDEC
//partitioning of a density with the Chargemol program. The job reads
//name.wfx, as written by a previous Gaussian density job, so the
//geometry is not repeated here.
type ChargemolHandle struct {
	command   string
	inputname string
	densities string //path to the atomic densities that ship with Chargemol
}

func NewChargemolHandle() *ChargemolHandle {
	run := new(ChargemolHandle)
	run.SetDefaults()
	return run
}

func (O *ChargemolHandle) SetName(name string) {
	O.inputname = name
}

func (O *ChargemolHandle) SetCommand(name string) {
	O.command = name
}

//SetDensitiesDir sets the directory holding Chargemol's reference
//atomic densities.
func (O *ChargemolHandle) SetDensitiesDir(dir string) {
	O.densities = dir
}

//The CHARGEMOLBIN and CHARGEMOLDIR environment variables, when
//present, give the binary and the densities directory.
func (O *ChargemolHandle) SetDefaults() {
	O.command = os.Getenv("CHARGEMOLBIN")
	if O.command == "" {
		O.command = "chargemol"
	}
	O.densities = os.Getenv("CHARGEMOLDIR")
}

//BuildInput writes the job_control.txt file, next to the input files
//of the job. Only the net charge and the DDEC version are read from
//atoms and Q, so coords can be nil here despite the Handle signature.
//A DDEC version other than 3 or 6 falls back to 6.
func (O *ChargemolHandle) BuildInput(coords *v3.Matrix, atoms qube.AtomMultiCharger, Q *Calc) error {
	if O.inputname == "" {
		O.inputname = "goqube"
	}
	if atoms == nil || Q == nil {
		return Error{ErrMissingData, Chargemol, O.inputname, "", []string{"BuildInput"}, true}
	}
	version := Q.DDECVersion
	if version != 3 && version != 6 {
		version = 6
	}
	dir := "" //Chargemol wants this exact file name, so only the directory follows the job name
	if i := strings.LastIndex(O.inputname, "/"); i >= 0 {
		dir = O.inputname[:i+1]
	}
	f, err := os.Create(dir + "job_control.txt")
	if err != nil {
		return Error{ErrCantInput, Chargemol, O.inputname, err.Error(), []string{"os.Create", "BuildInput"}, true}
	}
	defer f.Close()
	fmt.Fprintf(f, "<input filename>\n%s.wfx\n</input filename>", jobLabel(O.inputname))
	fmt.Fprintf(f, "\n\n<net charge>\n%d.0\n</net charge>", atoms.Charge())
	fmt.Fprint(f, "\n\n<periodicity along A, B and C vectors>\n.false.\n.false.\n.false.\n</periodicity along A, B and C vectors>")
	if O.densities != "" {
		fmt.Fprintf(f, "\n\n<atomic densities directory complete path>\n%s/atomic_densities/\n</atomic densities directory complete path>", O.densities)
	}
	fmt.Fprintf(f, "\n\n<charge type>\nDDEC%d\n</charge type>", version)
	if _, err := fmt.Fprint(f, "\n\n<compute BOs>\n.true.\n</compute BOs>\n"); err != nil {
		return Error{ErrCantInput, Chargemol, O.inputname, err.Error(), []string{"BuildInput"}, true}
	}
	return nil
}

//Run launches the partitioning previously set, waiting for it or not
//according to wait.
func (O *ChargemolHandle) Run(wait bool) error {
	var err error
	if wait {
		command := exec.Command("sh", "-c", O.command+" job_control.txt > chargemol.out 2>&1")
		err = command.Run()
	} else {
		command := exec.Command("sh", "-c", "nohup "+O.command+" job_control.txt > chargemol.out 2>&1 &")
		err = command.Start()
	}
	if err != nil {
		err = Error{ErrNotRunning, Chargemol, O.inputname, err.Error(), []string{"exec.Run/Start", "Run"}, true}
	}
	return err
}
