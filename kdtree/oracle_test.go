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
	"testing"

	"github.com/mlnoga/kdspace/geom"
	"github.com/mlnoga/kdspace/internal/pointgen"
	gonumkd "gonum.org/v1/gonum/spatial/kdtree"
)

// Cross-checks nearest neighbor distances against gonum's k-d tree.
func TestNearestMatchesGonum(t *testing.T) {
	space := geom.AABB{XMin: -50, YMin: -50, XMax: 50, YMax: 50}
	points := pointgen.Random(5000, space, 11)

	ref := make(gonumkd.Points, len(points))
	for i, p := range points {
		ref[i] = gonumkd.Point{p.X, p.Y}
	}
	oracle := gonumkd.New(ref, false)

	tree := New()
	tree.Build(points)

	queries := pointgen.Random(2000, geom.AABB{XMin: -80, YMin: -80, XMax: 80, YMax: 80}, 12)
	for _, q := range queries {
		_, dsq := oracle.Nearest(gonumkd.Point{q.X, q.Y})
		got := tree.NearestPoints(q)
		if len(got) == 0 {
			t.Fatalf("no result for %v", q)
		}
		if d := geom.DistSquared(got[0], q); math.Abs(d-dsq) > 1e-9*math.Max(1, dsq) {
			t.Fatalf("query %v: got %v at squared distance %g, gonum found %g", q, got[0], d, dsq)
		}
	}
}
