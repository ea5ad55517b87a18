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

/*Package nonbonded derives per-atom Lennard-Jones parameters from
atoms-in-molecule volumes and charges, following Cole, Vilseck, Acevedo
and Jorgensen (J. Chem. Theory Comput. 2016, DOI:10.1021/acs.jctc.6b00027):
each atom's free-atom dispersion coefficient and radius are rescaled by the
ratio of its in-molecule AIM volume to the free-atom volume, which gives
the a_i and b_i coefficients, and from them sigma and epsilon.

The derivation runs as a chain of stages, each producing a new value from
the previous one: dispersion terms from the volumes, sigma/epsilon from
the terms, then the optional polar-hydrogen correction (which moves the
dispersion of hydrogens bonded to N, O or S onto the heavy atom and
recomputes the epsilons), symmetry averaging over chemically equivalent
atoms, and the net-charge check. Virtual off-center charges, when the
charge partitioning provides them, are expressed in a local frame attached
to their parent atom, with their charge taken out of the parent's.

Charges are in e, sigmas in nm and epsilons in kJ/mol.*/
package nonbonded
