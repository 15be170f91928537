// Copyright (C) 2020 Markus L. Noga
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package kdtree

import (
	"sort"

	"github.com/mlnoga/kdspace/geom"
)

// Returns the indices of the given points sorted by X then Y. Stable, so
// coincident points keep their input order.
func sortedIndices(points []geom.Point) []int {
	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return geom.Less(points[order[i]], points[order[j]])
	})
	return order
}

// Collapses runs of exactly equal points. Returns one representative index per
// distinct position in sorted order, and for every position shared by two or more
// points the full run keyed by its representative. The representative is the
// last point of its run.
func dedup(points []geom.Point) (unique []int, groups map[int][]int) {
	groups = map[int][]int{}
	if len(points) == 0 {
		return nil, groups
	}
	order := sortedIndices(points)

	unique = make([]int, 0, len(order))
	runStart := 0
	for i := 1; i <= len(order); i++ {
		if i < len(order) && points[order[i]].Equal(points[order[runStart]]) {
			continue
		}
		rep := order[i-1]
		if i-runStart > 1 {
			groups[rep] = append([]int(nil), order[runStart:i]...)
		}
		unique = append(unique, rep)
		runStart = i
	}
	return unique, groups
}
