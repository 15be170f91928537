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
	"github.com/mlnoga/kdspace/geom"
	"github.com/mlnoga/kdspace/internal/qsort"
)

// Builds the subtree for the given point indices at the given depth, and returns
// the arena index of its root, or noChild if elems is empty. Reorders elems.
// Nodes are allocated before their subtrees, so arena order is pre-order.
func (t *Tree) build(elems []int, depth int) int {
	if len(elems) == 0 {
		return noChild
	}
	id := len(t.nodes)
	t.nodes = append(t.nodes, node{elem: noChild, left: noChild, right: noChild})

	median := len(elems) / 2
	if len(elems) > 1 {
		// partition around the median on this depth's axis
		axis := geom.AxisForDepth(depth)
		qsort.Select(elems, median, func(a, b int) bool {
			return axis.Less(t.points[a], t.points[b])
		})
		left := t.build(elems[:median], depth+1)
		right := t.build(elems[median+1:], depth+1)
		t.nodes[id].left, t.nodes[id].right = left, right
	}
	t.nodes[id].elem = elems[median]
	return id
}
