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

// Package kdtree implements a 2-dimensional k-d tree over caller-owned points.
//
// The tree is rebuilt in bulk from a point slice, which it borrows rather than
// copies: results refer to points by their index into that slice, and the caller
// must not modify the slice while the tree is in use. Coincident points are
// collapsed into a single tree node, and a nearest neighbor query returns the
// whole group of points sharing the closest position.
//
// Nodes live in a flat arena and link to their children by index. Search is
// branch-and-bound: each node carries the bounding box its subtree partitions,
// and subtrees whose box is no closer than the best candidate so far are skipped.
//
// Queries and separating line walks only read the tree, and may run concurrently
// with each other. Build and Clear must not run while either is in progress.
package kdtree
