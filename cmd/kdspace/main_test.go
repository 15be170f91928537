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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mlnoga/kdspace/geom"
	"github.com/mlnoga/kdspace/kdtree"
)

func smallTree() *kdtree.Tree {
	tree := kdtree.New(kdtree.WithBounds(geom.AABB{XMax: 800, YMax: 800}))
	tree.Build([]geom.Point{{X: 100, Y: 100}, {X: 700, Y: 200}, {X: 100, Y: 100}, {X: 400, Y: 600}})
	return tree
}

func TestParseQuery(t *testing.T) {
	tcs := []struct {
		args  []string
		want  geom.Point
		ok    bool
		isErr bool
	}{
		{nil, geom.Point{}, false, false},
		{[]string{"1.5", "-2"}, geom.Point{X: 1.5, Y: -2}, true, false},
		{[]string{"1"}, geom.Point{}, false, true},
		{[]string{"a", "2"}, geom.Point{}, false, true},
		{[]string{"1", "b"}, geom.Point{}, false, true},
	}
	for _, tc := range tcs {
		got, ok, err := parseQuery(tc.args)
		if (err != nil) != tc.isErr || ok != tc.ok || got != tc.want {
			t.Errorf("parseQuery(%v) = %v, %v, %v", tc.args, got, ok, err)
		}
	}
}

func TestQueryCommand(t *testing.T) {
	var buf bytes.Buffer
	if err := runCommand("query", []string{"90", "95"}, smallTree(), &buf); err != nil {
		t.Fatal(err)
	}
	s := buf.String()
	if !strings.Contains(s, "(100, 100)") || !strings.Contains(s, "shared by 2 points") {
		t.Errorf("unexpected output %q", s)
	}
	if err := runCommand("query", nil, smallTree(), &buf); err == nil {
		t.Error("expected error for query without coordinates")
	}
}

func TestLinesCommand(t *testing.T) {
	var buf bytes.Buffer
	tree := smallTree()
	if err := runCommand("lines", nil, tree, &buf); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(buf.String(), "\n"); got != tree.Len() {
		t.Errorf("got %d lines for %d nodes", got, tree.Len())
	}
}

func TestRenderCommand(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "tree.png")
	*out, *width, *height, *trace = fileName, 80, 80, true

	var buf bytes.Buffer
	if err := runCommand("render", []string{"10", "10"}, smallTree(), &buf); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(fileName); err != nil {
		t.Error(err)
	}
	if !strings.Contains(buf.String(), "visited") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestBenchCommand(t *testing.T) {
	*queries, *seed = 500, 3
	var buf bytes.Buffer
	if err := runCommand("bench", nil, smallTree(), &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Verified 100 queries") {
		t.Errorf("unexpected output %q", buf.String())
	}
	if err := runCommand("bench", nil, kdtree.New(), &buf); err == nil {
		t.Error("expected error for empty tree")
	}
}
