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

import "fmt"

// A line segment between two points
type Segment struct {
	A Point
	B Point
}

func (s Segment) String() string {
	return fmt.Sprintf("%v-%v", s.A, s.B)
}

func (s Segment) Length() float64 {
	return Dist(s.A, s.B)
}

// Returns the segment along the given axis through p, clipped to the box.
// For AxisX this is the vertical line x=p.X, for AxisY the horizontal line y=p.Y.
func (b AABB) SplitLine(axis Axis, p Point) Segment {
	if axis == AxisX {
		return Segment{Point{p.X, b.YMin}, Point{p.X, b.YMax}}
	}
	return Segment{Point{b.XMin, p.Y}, Point{b.XMax, p.Y}}
}
