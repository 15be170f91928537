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

package internal

import (
	"fmt"
	"math"

	"github.com/klauspost/cpuid"
	"github.com/pbnjay/memory"
)

// Approximate bytes held per input point while building: the point itself,
// its node, and the index slices used for sorting and selection.
const bytesPerPoint = 16 + 24 + 3*8

// Returns a one-line description of the host, for the log banner
func SysInfo() string {
	return fmt.Sprintf("Running on %s with %d logical cores, AVX2 %v, and %d MiB physical memory",
		cpuid.CPU.BrandName, cpuid.CPU.LogicalCores, cpuid.CPU.AVX2(), memory.TotalMemory()/1024/1024)
}

// Returns the largest point count whose tree fits into the given fraction of
// physical memory. Unlimited if the memory size cannot be determined.
func MaxPoints(fraction float64) int {
	return maxPointsFor(memory.TotalMemory(), fraction)
}

func maxPointsFor(totalBytes uint64, fraction float64) int {
	if totalBytes == 0 || fraction <= 0 {
		return math.MaxInt
	}
	n := float64(totalBytes) * fraction / bytesPerPoint
	if n >= math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}
