/*
 * gaussian.go, part of goqube.
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
	"runtime"

	qube "github.com/rmera/goqube"
	v3 "github.com/rmera/goqube/v3"
)

//GaussianHandle writes and runs Gaussian jobs. For the job name X, the
//input goes to gj_X and the output to gj_X.log.
type GaussianHandle struct {
	command   string
	inputname string
	nCPU      int
}

func NewGaussianHandle() *GaussianHandle {
	run := new(GaussianHandle)
	run.SetDefaults()
	return run
}

//Sets the number of CPU to be used
func (O *GaussianHandle) SetnCPU(cpu int) {
	O.nCPU = cpu
}

func (O *GaussianHandle) SetName(name string) {
	O.inputname = name
}

func (O *GaussianHandle) SetCommand(name string) {
	O.command = name
}

func (O *GaussianHandle) SetDefaults() {
	O.command = "g09"
	O.nCPU = runtime.NumCPU() / 2
	if O.nCPU < 1 {
		O.nCPU = 1
	}
}

//BuildInput writes a Gaussian input for the settings in Q. With
//Q.Density, the job keeps the current density and writes the wfx file
//the AIM partitioning needs. Q.Solvent asks for IPCM with an epsilon
//of 4, the protein-interior-like value of the original workflow.
func (O *GaussianHandle) BuildInput(coords *v3.Matrix, atoms qube.AtomMultiCharger, Q *Calc) error {
	if O.inputname == "" {
		O.inputname = "goqube"
	}
	if err := checkInput(coords, atoms, Q, Gaussian, O.inputname); err != nil {
		return err
	}
	theory := Q.Theory
	if theory == "" {
		theory = defTheory
	}
	if theory == "PBE" { //Gaussian knows this functional by its other name
		theory = "PBEPBE"
	}
	basis := Q.Basis
	if basis == "" {
		basis = defBasis
	}
	mem := Q.Memory
	if mem == 0 {
		mem = defMemory
	}
	f, err := os.Create(prefixedName(O.inputname, "gj_"))
	if err != nil {
		return Error{ErrCantInput, Gaussian, O.inputname, err.Error(), []string{"os.Create", "BuildInput"}, true}
	}
	defer f.Close()
	fmt.Fprintf(f, "%%Mem=%dMB\n%%NProcShared=%d\n%%Chk=lig\n", mem, O.nCPU)
	//the route groups have to keep this order
	commands := fmt.Sprintf("# %s/%s SCF=XQC ", theory, basis)
	if Q.Optimize {
		commands += "opt "
	}
	if Q.Hessian {
		commands += "freq "
	}
	if Q.Solvent {
		commands += "SCRF=(IPCM,Read) "
	}
	if Q.Density {
		commands += "density=current OUTPUT=WFX "
	}
	label := jobLabel(O.inputname)
	commands += fmt.Sprintf("\n\n%s\n\n%d %d\n", label, atoms.Charge(), atoms.Multi())
	fmt.Fprint(f, commands)
	c := make([]float64, 3)
	for i := 0; i < atoms.Len(); i++ {
		coords.Row(c, i)
		fmt.Fprintf(f, "%s % .3f % .3f % .3f\n", atoms.Atom(i).Symbol, c[0], c[1], c[2])
	}
	if Q.Solvent { //epsilon and cavity
		fmt.Fprint(f, "\n4.0 0.0004")
	}
	if Q.Density {
		fmt.Fprintf(f, "\n%s.wfx", label)
	}
	//Gaussian wants the trailing blank lines
	if _, err := fmt.Fprint(f, "\n\n"); err != nil {
		return Error{ErrCantInput, Gaussian, O.inputname, err.Error(), []string{"BuildInput"}, true}
	}
	return nil
}

//Run launches the job previously built, waiting for it or not
//according to wait.
func (O *GaussianHandle) Run(wait bool) error {
	var err error
	name := prefixedName(O.inputname, "gj_")
	if wait {
		command := exec.Command("sh", "-c", fmt.Sprintf("%s < %s > %s.log 2>&1", O.command, name, name))
		err = command.Run()
	} else {
		command := exec.Command("sh", "-c", fmt.Sprintf("nohup %s < %s > %s.log 2>&1 &", O.command, name, name))
		err = command.Start()
	}
	if err != nil {
		err = Error{ErrNotRunning, Gaussian, O.inputname, err.Error(), []string{"exec.Run/Start", "Run"}, true}
	}
	return err
}
