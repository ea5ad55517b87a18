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
 *
 * goQube is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

//Package qmio writes input files for the QM and AIM programs of the
//parameterization workflow, keeping the calculation settings separated
//from the choice of program. Psi4 and Gaussian inputs cover the
//geometry optimization and the Hessian (frequency) job, and a
//Chargemol control file covers the DDEC partitioning of the resulting
//density. The package only builds and launches the jobs. Their results
//enter goqube as qubejson records, so nothing here parses QM output.
package qmio
