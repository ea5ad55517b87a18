/*
 * psi4.go, part of goqube.
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

//In order to use this part of the library you need the Psi4 program,
//which can be obtained from psicode.org. Please cite the Psi4
//references if you use it.

package qmio

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	qube "github.com/rmera/goqube"
	v3 "github.com/rmera/goqube/v3"
)

//Psi4Handle writes and runs Psi4 jobs. The input goes to name.dat and
//the output to name.out.
type Psi4Handle struct {
	command   string
	inputname string
	nCPU      int
}

func NewPsi4Handle() *Psi4Handle {
	run := new(Psi4Handle)
	run.SetDefaults()
	return run
}

//Sets the number of CPU to be used
func (O *Psi4Handle) SetnCPU(cpu int) {
	O.nCPU = cpu
}

func (O *Psi4Handle) SetName(name string) {
	O.inputname = name
}

func (O *Psi4Handle) SetCommand(name string) {
	O.command = name
}

func (O *Psi4Handle) SetDefaults() {
	O.command = "psi4"
	O.nCPU = runtime.NumCPU() / 2
	if O.nCPU < 1 {
		O.nCPU = 1
	}
}

//BuildInput writes a Psi4 input for the settings in Q. The geometry is
//printed unreoriented and in A, so the Hessian comes back in the frame
//of the given coordinates. Q.Solvent and Q.Density are not supported
//here; a Gaussian job covers those parts of the workflow.
func (O *Psi4Handle) BuildInput(coords *v3.Matrix, atoms qube.AtomMultiCharger, Q *Calc) error {
	if O.inputname == "" {
		O.inputname = "goqube"
	}
	if err := checkInput(coords, atoms, Q, Psi4, O.inputname); err != nil {
		return err
	}
	theory := Q.Theory
	if theory == "" {
		theory = defTheory
	}
	if theory == "PBEPBE" { //Psi4 knows this functional by its other name
		theory = "PBE"
	}
	basis := Q.Basis
	if basis == "" {
		basis = defBasis
	}
	mem := Q.Memory
	if mem == 0 {
		mem = defMemory
	}
	f, err := os.Create(O.inputname + ".dat")
	if err != nil {
		return Error{ErrCantInput, Psi4, O.inputname, err.Error(), []string{"os.Create", "BuildInput"}, true}
	}
	defer f.Close()
	fmt.Fprintf(f, "memory %d MB\n\nmolecule %s {\n%d %d \n", mem, jobLabel(O.inputname), atoms.Charge(), atoms.Multi())
	c := make([]float64, 3)
	for i := 0; i < atoms.Len(); i++ {
		coords.Row(c, i)
		fmt.Fprintf(f, " %s    % .10f  % .10f  % .10f \n", atoms.Atom(i).Symbol, c[0], c[1], c[2])
	}
	fmt.Fprintf(f, " units angstrom\n no_reorient\n}\n\nset {\n basis %s\n", basis)
	tasks := ""
	if Q.Optimize {
		fmt.Fprint(f, " g_convergence GAU_TIGHT\n GEOM_MAXITER 100\n")
		tasks += fmt.Sprintf("\noptimize('%s')\n", strings.ToLower(theory))
	}
	if Q.Hessian {
		fmt.Fprint(f, " hessian_write on\n")
		tasks += fmt.Sprintf("\nenergy, wfn = frequency('%s', return_wfn=True)\nwfn.hessian().print_out()\n", strings.ToLower(theory))
	}
	if tasks == "" { //a job has to do something, a single point is the minimum
		tasks = fmt.Sprintf("\nenergy('%s')\n", strings.ToLower(theory))
	}
	fmt.Fprintf(f, "}\nset_num_threads(%d)\n", O.nCPU)
	if _, err := fmt.Fprint(f, tasks); err != nil {
		return Error{ErrCantInput, Psi4, O.inputname, err.Error(), []string{"BuildInput"}, true}
	}
	return nil
}

//Run launches the job previously built, waiting for it or not
//according to wait.
func (O *Psi4Handle) Run(wait bool) error {
	var err error
	if wait {
		command := exec.Command(O.command, "-n", strconv.Itoa(O.nCPU), O.inputname+".dat", O.inputname+".out")
		err = command.Run()
	} else {
		command := exec.Command("sh", "-c", "nohup "+O.command+fmt.Sprintf(" -n %d %s.dat %s.out &", O.nCPU, O.inputname, O.inputname))
		err = command.Start()
	}
	if err != nil {
		err = Error{ErrNotRunning, Psi4, O.inputname, err.Error(), []string{"exec.Run/Start", "Run"}, true}
	}
	return err
}
