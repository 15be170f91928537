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

// Package geom holds the 2-dimensional primitives shared by the spatial index
// and its consumers: points, axis-aligned bounding boxes and line segments.
package geom

import (
	"fmt"
	"math"
)

// A 2-dimensional point with floating point coordinates.
// Two points are equal only if both coordinates match exactly.
type Point struct {
	X float64
	Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Returns true if both coordinates are bitwise-comparable equal. No tolerance.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Orders points by X, then by Y.
func Less(a, b Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// Returns the euclidian distance between the two given points
func Dist(a, b Point) float64 {
	return hypot(a.X-b.X, a.Y-b.Y)
}

// Returns sqrt(dx*dx+dy*dy), falling back to math.Hypot where the squares overflow.
func hypot(dx, dy float64) float64 {
	if d := math.Sqrt(dx*dx + dy*dy); !math.IsInf(d, 1) {
		return d
	}
	return math.Hypot(dx, dy)
}

// Returns the squared euclidian distance between the two given points.
// Overflows to +Inf for coordinate differences beyond about 1e154.
func DistSquared(a, b Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

func Add(a, b Point) Point {
	return Point{a.X + b.X, a.Y + b.Y}
}

func Sub(a, b Point) Point {
	return Point{a.X - b.X, a.Y - b.Y}
}

// A splitting axis of the 2-d tree.
type Axis int

const (
	AxisX Axis = 0
	AxisY Axis = 1
)

// Returns the axis a kd-tree splits on at the given depth: X on even depths, Y on odd ones.
func AxisForDepth(depth int) Axis {
	return Axis(depth & 1)
}

// Returns the coordinate of p along this axis.
func (a Axis) Coord(p Point) float64 {
	if a == AxisX {
		return p.X
	}
	return p.Y
}

// Compares a and b along this axis only.
func (a Axis) Less(p, q Point) bool {
	return a.Coord(p) < a.Coord(q)
}

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}
