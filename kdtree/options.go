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
	"io"

	"github.com/mlnoga/kdspace/geom"
)

// Option configures a Tree.
type Option func(*Config)

// Config holds the settings applied to every build of a Tree.
type Config struct {
	Bounds    geom.AABB // minimum space covered by the root, e.g. a drawing canvas
	HasBounds bool
	Log       io.Writer // receives build diagnostics
}

// WithBounds sets the minimum space the tree covers. Points outside of it
// widen the space on each build, so pruning stays exact.
func WithBounds(b geom.AABB) Option {
	return func(cfg *Config) {
		cfg.Bounds = b
		cfg.HasBounds = true
	}
}

// WithLog directs build diagnostics to w. Nil disables them.
func WithLog(w io.Writer) Option {
	return func(cfg *Config) {
		if w == nil {
			w = io.Discard
		}
		cfg.Log = w
	}
}
