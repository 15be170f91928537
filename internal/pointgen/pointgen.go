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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mlnoga/kdspace/geom"
	"github.com/valyala/fastrand"
)

// Returns n points distributed uniformly in the given box. The same non-zero
// seed always yields the same points; seed 0 picks a random sequence.
func Random(n int, bounds geom.AABB, seed uint32) []geom.Point {
	rng := fastrand.RNG{}
	rng.Seed(seed)
	w, h := bounds.Width(), bounds.Height()
	points := make([]geom.Point, n)
	for i := range points {
		points[i] = geom.Point{
			X: bounds.XMin + w*unit(&rng),
			Y: bounds.YMin + h*unit(&rng),
		}
	}
	return points
}

// Returns n points on the integer pixel grid [0,width)x[0,height), like mouse clicks
// on a canvas. Small grids yield many coincident points.
func RandomPixels(n, width, height int, seed uint32) []geom.Point {
	rng := fastrand.RNG{}
	rng.Seed(seed)
	points := make([]geom.Point, n)
	for i := range points {
		points[i] = geom.Point{
			X: float64(rng.Uint32n(uint32(width))),
			Y: float64(rng.Uint32n(uint32(height))),
		}
	}
	return points
}

// Uniform float64 in [0,1)
func unit(rng *fastrand.RNG) float64 {
	return float64(rng.Uint32()) / (1 << 32)
}

// Reads points from a text file, see Parse.
func ReadFile(fileName string) ([]geom.Point, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	points, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return points, nil
}

// Parses one point per line, as "x y" or "x,y". Blank lines and lines
// starting with # are skipped.
func Parse(r io.Reader) ([]geom.Point, error) {
	var points []geom.Point
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(c rune) bool {
			return c == ',' || c == ' ' || c == '\t' || c == ';'
		})
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected two coordinates, got %q", line, text)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		points = append(points, geom.Point{X: x, Y: y})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return points, nil
}
