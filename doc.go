/*
 * doc.go, part of goqube.
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
 * goQube is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package qube is the main package of the goQube library, which derives
molecular-mechanics force-field parameters from quantum-chemistry results.

goQube does not parse QM output: results enter as JSON records, with the
optimized geometry, the Hessian and the electron-density partitioning
already available as data, and leave as force-field numbers. It can,
however, write the input files for the QM and AIM jobs themselves, and
launch them (the qmio sub-package).


	**goQube Capabilities**


    Harmonic bond and angle force constants from a cartesian Hessian,
	via the Modified Seminario Method (Allen et al., 2018,
	DOI:10.1021/acs.jctc.7b00785), including the connectivity-based
	scaling of angle constants and the near-linear angle fallback.

    Lennard-Jones sigma/epsilon per atom from atoms-in-molecule volumes
	and charges (Cole et al., 2016), with polar-hydrogen redistribution
	and symmetry averaging.

    Virtual-site (off-center charge) placement in a local reference
	frame, conserving the net molecular charge.

    Detection of topologically equivalent atoms from the bond graph
	(the qubegraph sub-package), for symmetry averaging when the QM
	record declares no groups.

    Reads XYZ and PDB geometries (CONECT records become bonds), writes
	XYZ. Reads QM result records in JSON, plain or zstd-compressed, from
	Chargemol- or ONETEP-style data.

    Writes the derived parameters as a JSON record, in both kcal/A and
	kJ/nm unit systems.

    Input generation for Psi4, Gaussian and Chargemol jobs.

    Diagnostic plots for derived parameters (Lennard-Jones potential
	curves, angle-sweep profiles, force-constant histograms).

This package provides the shared data types: molecules, atoms, bonds,
angles, the Hessian, element reference data and the derivation settings.
The derivations themselves live in the seminario and nonbonded
sub-packages.

goQube implements its own matrix type for coordinates, v3.Matrix, based on
gonum's mat.Dense, where each row represents one point in space.*/
package qube
