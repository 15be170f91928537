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

package geom

import (
	"fmt"
	"math"
)

// An axis-aligned bounding box. XMin<=XMax and YMin<=YMax at all times.
// Boxes are closed: points on the boundary are inside.
type AABB struct {
	XMin float64
	YMin float64
	XMax float64
	YMax float64
}

// Creates a box from the given bounds, swapping them if given in the wrong order.
func NewAABB(xMin, yMin, xMax, yMax float64) AABB {
	if xMin > xMax {
		xMin, xMax = xMax, xMin
	}
	if yMin > yMax {
		yMin, yMax = yMax, yMin
	}
	return AABB{xMin, yMin, xMax, yMax}
}

// Returns the smallest box covering all given points, or the zero box if there are none.
func BoundsOf(points []Point) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	b := AABB{points[0].X, points[0].Y, points[0].X, points[0].Y}
	for _, p := range points[1:] {
		b = b.Extend(p)
	}
	return b
}

func (b AABB) String() string {
	return fmt.Sprintf("[%g..%g]x[%g..%g]", b.XMin, b.XMax, b.YMin, b.YMax)
}

func (b AABB) Width() float64  { return b.XMax - b.XMin }
func (b AABB) Height() float64 { return b.YMax - b.YMin }

// Returns true if p lies inside the box or on its boundary.
func (b AABB) Contains(p Point) bool {
	return p.X >= b.XMin && p.X <= b.XMax && p.Y >= b.YMin && p.Y <= b.YMax
}

// Returns the box grown just enough to cover p.
func (b AABB) Extend(p Point) AABB {
	if p.X < b.XMin {
		b.XMin = p.X
	}
	if p.X > b.XMax {
		b.XMax = p.X
	}
	if p.Y < b.YMin {
		b.YMin = p.Y
	}
	if p.Y > b.YMax {
		b.YMax = p.Y
	}
	return b
}

// Returns the smallest box covering both boxes.
func (b AABB) Union(o AABB) AABB {
	return b.Extend(Point{o.XMin, o.YMin}).Extend(Point{o.XMax, o.YMax})
}

// Splits the box at the pivot's coordinate on the given axis into a lower and an upper half.
// The cut is where the tree partitions its data, not the geometric midpoint.
// A pivot outside the box is clamped, so both halves remain valid boxes.
func (b AABB) Split(axis Axis, pivot Point) (lo, hi AABB) {
	lo, hi = b, b
	if axis == AxisX {
		cut := math.Min(math.Max(pivot.X, b.XMin), b.XMax)
		lo.XMax, hi.XMin = cut, cut
	} else {
		cut := math.Min(math.Max(pivot.Y, b.YMin), b.YMax)
		lo.YMax, hi.YMin = cut, cut
	}
	return lo, hi
}

// Returns the euclidian distance from p to the nearest point of the box, or 0 if p is inside.
func (b AABB) MinDistanceTo(p Point) float64 {
	dx, dy := 0.0, 0.0
	if p.X < b.XMin {
		dx = b.XMin - p.X
	} else if p.X > b.XMax {
		dx = p.X - b.XMax
	}
	if p.Y < b.YMin {
		dy = b.YMin - p.Y
	} else if p.Y > b.YMax {
		dy = p.Y - b.YMax
	}
	if dx == 0 {
		return dy
	}
	if dy == 0 {
		return dx
	}
	return hypot(dx, dy)
}
