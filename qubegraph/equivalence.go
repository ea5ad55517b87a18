/*
 * equivalence.go, part of goqube.
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

package qubegraph

import (
	"fmt"
	"sort"
)

//EquivalentAtoms partitions the atoms of the graph into classes that
//cannot be told apart by element and connectivity, by iterative
//refinement: two atoms stay in the same class as long as they have the
//same element and the same multiset of neighbor classes. Only classes
//with at least 2 members are returned, in order of their first member,
//each sorted by atom index. The classification is topological, so
//atoms that only a 3D criterion could separate, like the two hydrogens
//of a terminal =CH2, end up together.
func EquivalentAtoms(T *Topology) [][]int {
	n := len(T.atoms)
	if n == 0 {
		return nil
	}
	codes := make([]int, n)
	symbols := make([]string, n)
	for i, at := range T.atoms {
		symbols[i] = at.Symbol
	}
	nclasses := recode(symbols, codes)
	//each round embeds the previous codes, so classes can only split.
	//With at most n classes, n rounds always suffice.
	for it := 0; it < n; it++ {
		keys := make([]string, n)
		for i := range T.atoms {
			neigh := make([]int, 0, len(T.atoms[i].Edges))
			nodes := T.From(int64(i))
			for nodes.Next() {
				neigh = append(neigh, codes[nodes.Node().ID()])
			}
			sort.Ints(neigh)
			keys[i] = fmt.Sprint(codes[i], neigh)
		}
		split := recode(keys, codes)
		if split == nclasses {
			break
		}
		nclasses = split
	}
	first := make(map[int]int, nclasses) //code to position of its first member
	members := make([][]int, 0, nclasses)
	for i, c := range codes {
		if at, ok := first[c]; ok {
			members[at] = append(members[at], i)
			continue
		}
		first[c] = len(members)
		members = append(members, []int{i})
	}
	groups := make([][]int, 0, len(members))
	for _, m := range members {
		if len(m) > 1 {
			groups = append(groups, m)
		}
	}
	if len(groups) == 0 {
		return nil
	}
	return groups
}

//recode replaces each distinct key with a small int, deterministically,
//writing them to codes. It returns the number of distinct keys.
func recode(keys []string, codes []int) int {
	uniq := make([]string, len(keys))
	copy(uniq, keys)
	sort.Strings(uniq)
	code := make(map[string]int, len(keys))
	for _, k := range uniq {
		if _, ok := code[k]; !ok {
			code[k] = len(code)
		}
	}
	for i, k := range keys {
		codes[i] = code[k]
	}
	return len(code)
}
