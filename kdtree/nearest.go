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
	"math"

	"github.com/mlnoga/kdspace/geom"
)

// State of a single nearest neighbor search. Lives on the caller's stack,
// so queries never write to the tree.
type search struct {
	t        *Tree
	q        geom.Point
	bestDist float64
	best     int
	trace    bool
	visited  []geom.AABB
}

// Returns the indices of all points closest to q, in input order. More than one
// index is returned only if several points share the closest position exactly.
// Among distinct positions at the same distance, one is picked by traversal order.
// Returns nil on an empty tree, and at least one index otherwise, even when
// distances overflow to +Inf. For a query with a NaN coordinate all distances
// compare false, so the result is the root's group.
func (t *Tree) Nearest(q geom.Point) []int {
	s := search{t: t, q: q}
	return s.run()
}

// Like Nearest, but returns the borrowed points themselves.
func (t *Tree) NearestPoints(q geom.Point) []geom.Point {
	idx := t.Nearest(q)
	if idx == nil {
		return nil
	}
	pts := make([]geom.Point, len(idx))
	for i, id := range idx {
		pts[i] = t.points[id]
	}
	return pts
}

// Like Nearest, but also returns the bounding boxes of all nodes the search
// visited, in visit order. Pruned subtrees do not appear.
func (t *Tree) NearestTrace(q geom.Point) (nearest []int, visited []geom.AABB) {
	s := search{t: t, q: q, trace: true}
	nearest = s.run()
	return nearest, s.visited
}

func (s *search) run() []int {
	s.bestDist, s.best = math.Inf(1), noChild
	s.visit(s.t.root, s.t.bounds, 0)
	if s.best == noChild {
		return nil
	}
	elem := s.t.nodes[s.best].elem
	if group, ok := s.t.dups[elem]; ok {
		return append([]int(nil), group...)
	}
	return []int{elem}
}

func (s *search) visit(id int, box geom.AABB, depth int) {
	if !s.t.exists(id) {
		return
	}
	if s.best != noChild && box.MinDistanceTo(s.q) >= s.bestDist {
		return // nothing in this box can beat the current best
	}
	if s.trace {
		s.visited = append(s.visited, box)
	}

	n := s.t.nodes[id]
	p := s.t.points[n.elem]
	if d := geom.Dist(p, s.q); s.best == noChild || d < s.bestDist {
		s.bestDist, s.best = d, id
	}

	lo, hi := box.Split(geom.AxisForDepth(depth), p)
	if s.childDist(n.left) <= s.childDist(n.right) {
		s.visit(n.left, lo, depth+1)
		s.visit(n.right, hi, depth+1)
	} else {
		s.visit(n.right, hi, depth+1)
		s.visit(n.left, lo, depth+1)
	}
}

// Distance from the query to a child's point, or +Inf for an absent child.
func (s *search) childDist(id int) float64 {
	if !s.t.exists(id) {
		return math.Inf(1)
	}
	return geom.Dist(s.t.point(id), s.q)
}
