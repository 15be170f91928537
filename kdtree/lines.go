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
)

// The splitting line of one node, clipped to the space its ancestors leave to it.
type SeparatingLine struct {
	Segment geom.Segment
	Depth   int
}

// Returns one separating line per node, in arena order. Recomputed on every call.
func (t *Tree) SeparatingLines() []SeparatingLine {
	lines := make([]SeparatingLine, 0, len(t.nodes))
	t.ForEachSeparatingLine(func(l SeparatingLine) {
		lines = append(lines, l)
	})
	return lines
}

// Calls fn with the separating line of each node, in arena order. Does not modify the tree.
func (t *Tree) ForEachSeparatingLine(fn func(l SeparatingLine)) {
	t.walkLines(t.root, t.bounds, 0, fn)
}

func (t *Tree) walkLines(id int, box geom.AABB, depth int, fn func(SeparatingLine)) {
	if !t.exists(id) {
		return
	}
	n := t.nodes[id]
	p := t.points[n.elem]
	axis := geom.AxisForDepth(depth)
	fn(SeparatingLine{Segment: box.SplitLine(axis, p), Depth: depth})

	lo, hi := box.Split(axis, p)
	t.walkLines(n.left, lo, depth+1, fn)
	t.walkLines(n.right, hi, depth+1, fn)
}
