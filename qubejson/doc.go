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

/*Package qubejson implements serialization and unserialization of the
goQube data types. QM and electron-density partitioning results enter
the library as typed JSON records rather than as the text formats of
each engine: a provider (Chargemol or ONETEP) normalizes its own record
shape into one QMResult, from which the molecule, coordinates and
Hessian are built. Derived parameter sets leave as JSON carrying each
number in both unit systems, so both kcal/A-world and kJ/nm-world
programs can consume them without further conversion. Files with the
.zst suffix are compressed with zstd on writing and decompressed on
reading, transparently.*/
package qubejson
