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
	"fmt"
	"io"
	"math"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/mlnoga/kdspace/geom"
	"github.com/mlnoga/kdspace/internal/pointgen"
	"github.com/mlnoga/kdspace/internal/qsort"
	"github.com/mlnoga/kdspace/kdtree"
	"gonum.org/v1/gonum/stat"
)

// Number of bench queries cross-checked against a linear scan
const benchVerify = 100

// Times random nearest neighbor queries over the tree bounds, and checks a
// sample of them against a linear scan over all points.
func cmdBench(tree *kdtree.Tree, logWriter io.Writer) error {
	if tree.Len() == 0 {
		return fmt.Errorf("cannot bench an empty tree")
	}
	if *queries < 1 {
		return fmt.Errorf("need at least one query, got %d", *queries)
	}
	qs := pointgen.Random(*queries, tree.Bounds(), uint32(*seed)+1)
	micros := make([]float64, len(qs))
	results := 0
	for i, q := range qs {
		start := time.Now()
		results += len(tree.Nearest(q))
		micros[i] = float64(time.Since(start).Nanoseconds()) / 1000
	}

	mean, std := stat.MeanStdDev(micros, nil)
	median := qsort.MedianFloat64(micros)
	fmt.Fprintf(logWriter, "%d queries: mean %.3fus stddev %.3fus median %.3fus, %.2f results per query\n",
		len(qs), mean, std, median, float64(results)/float64(len(qs)))

	elapsed, parResults := parallelQueries(tree, qs)
	fmt.Fprintf(logWriter, "%d queries on %d cores in %v, %.0f queries per second\n",
		len(qs), runtime.NumCPU(), elapsed, float64(len(qs))/elapsed.Seconds())
	if parResults != results {
		return fmt.Errorf("parallel run returned %d results, sequential run %d", parResults, results)
	}

	points := tree.Points()
	for i := 0; i < benchVerify && i < len(qs); i++ {
		q := qs[i]
		got := geom.Dist(points[tree.Nearest(q)[0]], q)
		if want := linearMinDist(points, q); got != want {
			return fmt.Errorf("query %v: tree found distance %g, linear scan %g", q, got, want)
		}
	}
	fmt.Fprintf(logWriter, "Verified %d queries against a linear scan\n", min(benchVerify, len(qs)))
	return nil
}

func linearMinDist(points []geom.Point, q geom.Point) float64 {
	best := math.Inf(1)
	for _, p := range points {
		if d := geom.Dist(p, q); d < best {
			best = d
		}
	}
	return best
}

// Runs the queries concurrently in batches, no fewer than 8*NumCPU().
// Returns the elapsed time and the total number of results.
func parallelQueries(tree *kdtree.Tree, qs []geom.Point) (time.Duration, int) {
	start := time.Now()
	numBatches := 8 * runtime.NumCPU()
	batchSize := (len(qs) + numBatches - 1) / numBatches
	sem := make(chan bool, runtime.NumCPU()) // limit parallelism to NumCPU()
	var results int64

	for lower := 0; lower < len(qs); lower += batchSize {
		upper := min(lower+batchSize, len(qs))
		sem <- true
		go func(batch []geom.Point) {
			defer func() { <-sem }()
			n := 0
			for _, q := range batch {
				n += len(tree.Nearest(q))
			}
			atomic.AddInt64(&results, int64(n))
		}(qs[lower:upper])
	}
	for i := 0; i < cap(sem); i++ { // wait for all batches to finish
		sem <- true
	}
	return time.Since(start), int(results)
}
