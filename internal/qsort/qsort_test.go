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

import (
	"testing"

	"github.com/valyala/fastrand"
)

// prepare array of given length with a random permutation of 1..n
func shuffled(rng *fastrand.RNG, n int) []float64 {
	arr := make([]float64, n)
	for j := 0; j < len(arr); j++ {
		arr[j] = float64(j + 1)
	}
	for j := 0; j < len(arr); j++ {
		k := rng.Uint32n(uint32(len(arr)))
		arr[j], arr[k] = arr[k], arr[j]
	}
	return arr
}

func TestMedian(t *testing.T) {
	rng := fastrand.RNG{}
	for i := 1; i < 1000; i++ {
		arr := shuffled(&rng, i)
		expect := float64((i + 1) / 2)
		if res := MedianFloat64(arr); res != expect {
			t.Errorf("median(1..%d) got %f expect %f", i, res, expect)
		}
	}
	if MedianFloat64(nil) != 0 {
		t.Error("median of empty array should be 0")
	}
}

func TestSelectPartitions(t *testing.T) {
	rng := fastrand.RNG{}
	for n := 1; n < 200; n++ {
		for _, k := range []int{0, n / 2, n - 1} {
			arr := shuffled(&rng, n)
			// plant duplicates to exercise equal keys
			if n > 3 {
				arr[0], arr[1] = arr[2], arr[2]
			}
			got := SelectFloat64(arr, k)
			for i := 0; i < k; i++ {
				if arr[i] > got {
					t.Fatalf("n=%d k=%d: a[%d]=%g > a[k]=%g", n, k, i, arr[i], got)
				}
			}
			for i := k + 1; i < n; i++ {
				if arr[i] < got {
					t.Fatalf("n=%d k=%d: a[%d]=%g < a[k]=%g", n, k, i, arr[i], got)
				}
			}
		}
	}
}

func TestSelectSortedAndConstant(t *testing.T) {
	sorted := make([]float64, 101)
	for i := range sorted {
		sorted[i] = float64(i)
	}
	if got := SelectFloat64(sorted, 50); got != 50 {
		t.Errorf("sorted select got %g", got)
	}
	constant := []float64{7, 7, 7, 7, 7}
	if got := SelectFloat64(constant, 2); got != 7 {
		t.Errorf("constant select got %g", got)
	}
}

func TestSelectOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	SelectFloat64([]float64{1, 2}, 2)
}
