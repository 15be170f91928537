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
	"fmt"
	"io"
	"time"

	"github.com/mlnoga/kdspace/geom"
)

// Marks an absent child, and the root of an empty tree
const noChild = -1

// A tree node. Holds the index of its representative point in the borrowed
// slice, and the arena indices of its children. The split axis follows from depth.
type node struct {
	elem  int
	left  int
	right int
}

// A 2-dimensional k-d tree with duplicate-aware nearest neighbor search.
// The zero value is not usable, create trees with New.
type Tree struct {
	cfg Config

	points []geom.Point  // borrowed from the caller, never copied or written
	nodes  []node        // arena, in allocation order
	root   int           // arena index of the root, or noChild
	dups   map[int][]int // representative index -> indices of all coincident points
	bounds geom.AABB     // space covered by the root node
}

// Summary figures for a built tree
type Stats struct {
	Points          int       // number of points passed to Build
	Nodes           int       // number of distinct positions
	DuplicateGroups int       // positions shared by two or more points
	Duplicates      int       // points folded into another point's node
	Height          int       // longest root to leaf path, in nodes
	Bounds          geom.AABB // space covered by the root
}

func (s Stats) String() string {
	return fmt.Sprintf("%d points, %d nodes, %d duplicate groups (%d duplicates), height %d, bounds %v",
		s.Points, s.Nodes, s.DuplicateGroups, s.Duplicates, s.Height, s.Bounds)
}

// Creates an empty tree with the given options.
func New(opts ...Option) *Tree {
	cfg := Config{Log: io.Discard}
	for _, opt := range opts {
		opt(&cfg)
	}
	t := &Tree{cfg: cfg}
	t.Clear()
	return t
}

// Replaces the contents of the tree with the given points. The slice is borrowed:
// the tree keeps it, refers to its elements by index, and never modifies it.
// An empty or nil slice yields an empty tree.
func (t *Tree) Build(points []geom.Point) {
	start := time.Now()
	t.Clear()
	t.points = points
	if len(points) == 0 {
		return
	}

	t.bounds = geom.BoundsOf(points)
	if t.cfg.HasBounds {
		t.bounds = t.bounds.Union(t.cfg.Bounds)
	}

	var unique []int
	unique, t.dups = dedup(points)
	t.nodes = make([]node, 0, len(unique))
	t.root = t.build(unique, 0)

	fmt.Fprintf(t.cfg.Log, "Built tree of %d nodes from %d points with %d duplicate groups in %v\n",
		len(t.nodes), len(points), len(t.dups), time.Since(start))
}

// Empties the tree. Safe to call on an empty tree.
func (t *Tree) Clear() {
	t.points = nil
	t.nodes = nil
	t.root = noChild
	t.dups = map[int][]int{}
	t.bounds = geom.AABB{}
	if t.cfg.HasBounds {
		t.bounds = t.cfg.Bounds
	}
}

// Returns the number of nodes, which equals the number of distinct positions.
func (t *Tree) Len() int { return len(t.nodes) }

// Returns the borrowed point slice passed to the last Build.
func (t *Tree) Points() []geom.Point { return t.points }

// Returns the space covered by the root node.
func (t *Tree) Bounds() geom.AABB { return t.bounds }

// Returns summary figures for the current tree.
func (t *Tree) Stats() Stats {
	s := Stats{
		Points:          len(t.points),
		Nodes:           len(t.nodes),
		DuplicateGroups: len(t.dups),
		Bounds:          t.bounds,
	}
	for _, group := range t.dups {
		s.Duplicates += len(group) - 1
	}
	s.Height = t.height(t.root)
	return s
}

func (t *Tree) height(id int) int {
	if !t.exists(id) {
		return 0
	}
	n := t.nodes[id]
	l, r := t.height(n.left), t.height(n.right)
	if l > r {
		return l + 1
	}
	return r + 1
}

// Returns true if id refers to a node. The sentinel yields false; any other
// index outside the arena is a broken invariant and panics.
func (t *Tree) exists(id int) bool {
	if id == noChild {
		return false
	}
	if id < 0 || id >= len(t.nodes) {
		panic(fmt.Sprintf("kdtree: node index %d outside arena of %d nodes", id, len(t.nodes)))
	}
	return true
}

// Returns the representative point of the given node
func (t *Tree) point(id int) geom.Point {
	return t.points[t.nodes[id].elem]
}
