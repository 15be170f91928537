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

package pointgen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mlnoga/kdspace/geom"
)

func TestRandomDeterministicAndInBounds(t *testing.T) {
	b := geom.AABB{XMin: -10, YMin: 5, XMax: 10, YMax: 6}
	a1 := Random(1000, b, 42)
	a2 := Random(1000, b, 42)
	for i := range a1 {
		if a1[i] != a2[i] {
			t.Fatalf("point %d differs between runs with the same seed", i)
		}
		if !b.Contains(a1[i]) {
			t.Fatalf("point %v outside %v", a1[i], b)
		}
	}
	if c := Random(1000, b, 43); c[0] == a1[0] && c[1] == a1[1] {
		t.Error("different seeds gave the same sequence")
	}
}

func TestRandomPixels(t *testing.T) {
	points := RandomPixels(500, 3, 2, 9)
	for _, p := range points {
		if p.X < 0 || p.X >= 3 || p.Y < 0 || p.Y >= 2 || p.X != float64(int(p.X)) {
			t.Fatalf("pixel %v outside 3x2 grid", p)
		}
	}
}

func TestParse(t *testing.T) {
	in := "# canvas clicks\n0.5 1\n\n1,2\n  444444;888888  \n"
	points, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := []geom.Point{{X: 0.5, Y: 1}, {X: 1, Y: 2}, {X: 444444, Y: 888888}}
	if len(points) != len(want) {
		t.Fatalf("got %v", points)
	}
	for i := range want {
		if points[i] != want[i] {
			t.Errorf("point %d: got %v want %v", i, points[i], want[i])
		}
	}

	for _, bad := range []string{"1\n", "1 2 3\n", "x 2\n", "1 y\n"} {
		if _, err := Parse(strings.NewReader(bad)); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestReadFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "points.txt")
	if err := os.WriteFile(fileName, []byte("1 1\n2 2\n"), 0666); err != nil {
		t.Fatal(err)
	}
	points, err := ReadFile(fileName)
	if err != nil || len(points) != 2 {
		t.Fatalf("got %v, %v", points, err)
	}
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}
