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

package qsort

// Partitions a around its middle element and returns the split index r:
// no element of a[:r+1] is greater than the pivot, and no element of a[r+1:] is less.
// Comparator must be a strict weak ordering; for floats this means no IEEE NaN.
func Partition[T any](a []T, less func(a, b T) bool) int {
	left, right := 0, len(a)-1
	mid := (left + right) >> 1
	pivot := a[mid]
	l := left - 1
	r := right + 1
	for {
		for {
			l++
			if !less(a[l], pivot) {
				break
			}
		}
		for {
			r--
			if !less(pivot, a[r]) {
				break
			}
		}
		if l >= r {
			return r
		}
		a[l], a[r] = a[r], a[l]
	}
}

// Moves the kth lowest element (zero-based) of a into a[k]. Partially reorders the array:
// afterwards no element of a[:k] is greater than a[k], and no element of a[k+1:] is less.
// Neither side is sorted. Panics if k is out of range.
func Select[T any](a []T, k int, less func(a, b T) bool) {
	if k < 0 || k >= len(a) {
		panic("qsort: select index out of range")
	}
	left, right := 0, len(a)-1
	for left < right {
		index := left + Partition(a[left:right+1], less)
		if k <= index {
			right = index
		} else {
			left = index + 1
		}
	}
}

func lessFloat64(a, b float64) bool { return a < b }

// Select kth lowest element (zero-based) from an array of float64. Partially reorders the array.
// Array must not contain IEEE NaN
func SelectFloat64(a []float64, k int) float64 {
	Select(a, k, lessFloat64)
	return a[k]
}

// Select the lower median of an array of float64. Partially reorders the array.
// Returns 0 for an empty array. Array must not contain IEEE NaN
func MedianFloat64(a []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	return SelectFloat64(a, (len(a)-1)>>1)
}
