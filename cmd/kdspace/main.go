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
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"strconv"
	"time"

	"github.com/mlnoga/kdspace/geom"
	nl "github.com/mlnoga/kdspace/internal"
	"github.com/mlnoga/kdspace/internal/pointgen"
	"github.com/mlnoga/kdspace/internal/render"
	"github.com/mlnoga/kdspace/kdtree"
)

const version = "0.1.0"

var envErr = nl.LoadEnv()

var maxPoints = nl.MaxPoints(0.7)

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")

var (
	in     = flag.String("in", "", "read points from `file`, one \"x y\" pair per line. Default: random points")
	n      = flag.Int("n", nl.EnvInt("KDSPACE_N", 1000), "number of random points to generate")
	width  = flag.Int("width", nl.EnvInt("KDSPACE_WIDTH", 800), "canvas width; random points and rendering use [0,width)")
	height = flag.Int("height", nl.EnvInt("KDSPACE_HEIGHT", 800), "canvas height; random points and rendering use [0,height)")
	seed   = flag.Int("seed", nl.EnvInt("KDSPACE_SEED", 1), "random seed, 0=pick one")
	pixels = flag.Bool("pixels", false, "generate random points on the integer pixel grid, like canvas clicks")
)

var (
	out     = flag.String("out", "kdspace.png", "save rendered image to `file`, .png, .tif or .jpg")
	trace   = flag.Bool("trace", false, "shade the boxes visited by the nearest neighbor search when rendering")
	queries = flag.Int("queries", 100000, "number of random queries for the bench command")
	log     = flag.String("log", nl.EnvString("KDSPACE_LOG", ""), "save log output to `file`")
)

func main() {
	logWriter := nl.LogWriter()
	start := time.Now()
	flag.Usage = func() {
		fmt.Fprintf(logWriter, `kdspace Copyright (c) 2020 Markus L. Noga
This program comes with ABSOLUTELY NO WARRANTY.
This is free software, and you are welcome to redistribute it under certain conditions.
Refer to https://www.gnu.org/licenses/gpl-3.0.en.html for details.

Usage: %s [-flag value] (build|query|lines|render|bench|legal|version) [x y]

Commands:
  build   Build the tree and show statistics
  query   Find the points nearest to x y
  lines   List the separating lines of the partition
  render  Draw the partition, and the nearest points to x y if given
  bench   Time random nearest neighbor queries
  legal   Show license and attribution information
  version Show version information

Flags:
`, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *log != "" {
		if err := nl.LogAlsoToFile(*log); err != nil {
			nl.LogFatalf("Unable to open logfile '%s': %s\n", *log, err)
		}
	}
	if envErr != nil {
		nl.LogPrintf("Ignoring .env file: %s\n", envErr)
	}

	// Enable CPU profiling if flagged
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			nl.LogFatal("Could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			nl.LogFatal("Could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	args := flag.Args()
	if len(args) < 1 {
		flag.Usage()
		return
	}

	var err error
	switch args[0] {
	case "build", "query", "lines", "render", "bench":
		fmt.Fprintln(logWriter, nl.SysInfo())
		var tree *kdtree.Tree
		tree, err = buildTree(logWriter)
		if err != nil {
			break
		}
		err = runCommand(args[0], args[1:], tree, logWriter)

	case "legal":
		fmt.Fprint(logWriter, legal)

	case "version":
		fmt.Fprintf(logWriter, "Version %s\n", version)

	case "help", "?":
		flag.Usage()

	default:
		fmt.Fprintf(logWriter, "Unknown command '%s'\n\n", args[0])
		flag.Usage()
		return
	}

	fmt.Fprintf(logWriter, "\nDone after %v\n", time.Since(start))
	if err != nil {
		nl.LogFatalf("Error: %s\n", err)
	}
	nl.LogSync()
}

func runCommand(cmd string, args []string, tree *kdtree.Tree, logWriter io.Writer) error {
	switch cmd {
	case "build":
		fmt.Fprintln(logWriter, tree.Stats())
		return nil

	case "query":
		q, ok, err := parseQuery(args)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("query needs x and y coordinates")
		}
		cmdQuery(tree, q, logWriter)
		return nil

	case "lines":
		tree.ForEachSeparatingLine(func(l kdtree.SeparatingLine) {
			fmt.Fprintf(logWriter, "depth %2d %v %v\n", l.Depth, geom.AxisForDepth(l.Depth), l.Segment)
		})
		return nil

	case "render":
		q, ok, err := parseQuery(args)
		if err != nil {
			return err
		}
		return cmdRender(tree, q, ok, logWriter)

	case "bench":
		return cmdBench(tree, logWriter)
	}
	return fmt.Errorf("unknown command '%s'", cmd)
}

// Loads or generates the input points and builds the tree over the canvas
func buildTree(logWriter io.Writer) (*kdtree.Tree, error) {
	canvas := geom.AABB{XMax: float64(*width), YMax: float64(*height)}

	var points []geom.Point
	if *in != "" {
		var err error
		points, err = pointgen.ReadFile(*in)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(logWriter, "Read %d points from %s\n", len(points), *in)
	} else {
		if *n > maxPoints {
			return nil, fmt.Errorf("%d points exceed the memory limit of %d points", *n, maxPoints)
		}
		if *pixels {
			points = pointgen.RandomPixels(*n, *width, *height, uint32(*seed))
		} else {
			points = pointgen.Random(*n, canvas, uint32(*seed))
		}
		fmt.Fprintf(logWriter, "Generated %d random points on %v with seed %d\n", len(points), canvas, *seed)
	}

	tree := kdtree.New(kdtree.WithBounds(canvas), kdtree.WithLog(logWriter))
	tree.Build(points)
	return tree, nil
}

// Parses optional x y query coordinates. Returns false if none are given.
func parseQuery(args []string) (geom.Point, bool, error) {
	if len(args) == 0 {
		return geom.Point{}, false, nil
	}
	if len(args) != 2 {
		return geom.Point{}, false, fmt.Errorf("expected x and y coordinates, got %d arguments", len(args))
	}
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return geom.Point{}, false, fmt.Errorf("x coordinate: %w", err)
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return geom.Point{}, false, fmt.Errorf("y coordinate: %w", err)
	}
	return geom.Point{X: x, Y: y}, true, nil
}

func cmdQuery(tree *kdtree.Tree, q geom.Point, logWriter io.Writer) {
	nearest := tree.Nearest(q)
	if len(nearest) == 0 {
		fmt.Fprintf(logWriter, "Tree is empty, no points near %v\n", q)
		return
	}
	p := tree.Points()[nearest[0]]
	fmt.Fprintf(logWriter, "Nearest to %v is %v at distance %g, shared by %d points:\n", q, p, geom.Dist(p, q), len(nearest))
	for _, i := range nearest {
		fmt.Fprintf(logWriter, "  #%d\n", i)
	}
}

func cmdRender(tree *kdtree.Tree, q geom.Point, hasQuery bool, logWriter io.Writer) error {
	opts := render.Options{
		Width:  *width,
		Height: *height,
		View:   tree.Bounds(),
	}
	if hasQuery {
		nearest, visited := tree.NearestTrace(q)
		opts.Query = &q
		for _, i := range nearest {
			opts.Highlight = append(opts.Highlight, tree.Points()[i])
		}
		if *trace {
			opts.Visited = visited
		}
		fmt.Fprintf(logWriter, "Search for %v visited %d of %d nodes\n", q, len(visited), tree.Len())
	}

	img := render.Draw(tree, opts)
	if err := render.WriteFile(img, *out); err != nil {
		return err
	}
	fmt.Fprintf(logWriter, "Wrote %dx%d image to %s\n", *width, *height, *out)
	return nil
}
