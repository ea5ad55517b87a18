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

/*Package seminario derives harmonic bond and angle force constants from a
cartesian Hessian with the Modified Seminario Method of Allen, Payne and
Cole (J. Chem. Theory Comput. 2018, DOI:10.1021/acs.jctc.7b00785), which
extends the original method of Seminario (Int. J. Quantum Chem. 1996) with
a scaling that accounts for angles sharing a central atom.

The whole derivation is a deterministic forward pass: an eigendecomposition
of every 3x3 interatomic sub-block of the Hessian is computed once and
cached, and each bond and angle force constant is then a projection of the
relevant bond or in-plane vectors onto the cached eigenvectors. Every
constant is computed for both orderings of its atoms and the two values
averaged, as eigendecompositions of a block and its transpose need not
project identically.

Near-linear angles, where the plane of the angle is undefined, are handled
by averaging the force constant over a sweep of synthetic normal
directions. This is an approximation for those geometries, not an exact
closed form.

Force constants are returned in kcal/(mol A^2) for bonds and
kcal/(mol rad^2) for angles, with equilibrium values in A and degrees.*/
package seminario
