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

package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mlnoga/kdspace/geom"
	"github.com/mlnoga/kdspace/kdtree"
	"golang.org/x/image/vector"
)

const pointSize = 7.0

var (
	background  = color.RGBA{255, 255, 255, 255}
	pointColor  = color.RGBA{240, 220, 0, 255}
	outline     = color.RGBA{0, 0, 0, 255}
	queryColor  = color.RGBA{0, 180, 0, 255}
	resultColor = color.RGBA{220, 0, 0, 255}
)

// Drawing settings
type Options struct {
	Width     int
	Height    int
	View      geom.AABB    // space mapped onto the image; tree bounds if zero
	Query     *geom.Point  // drawn in green if set
	Highlight []geom.Point // drawn in red, e.g. the nearest group
	Visited   []geom.AABB  // boxes visited by a search, shaded
}

// Draws the partition of the tree: separating lines with stroke width falling
// with depth, colored by depth, then the points on top.
func Draw(t *kdtree.Tree, opts Options) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	c := newCanvas(img, opts.View, t.Bounds())
	for _, b := range opts.Visited {
		c.fillBox(b, color.NRGBA{0, 30, 30, 40})
	}
	t.ForEachSeparatingLine(func(l kdtree.SeparatingLine) {
		c.line(l.Segment, strokeWidth(l.Depth), depthColor(l.Depth))
	})
	for _, p := range t.Points() {
		c.dot(p, pointColor)
	}
	if opts.Query != nil {
		c.dot(*opts.Query, queryColor)
	}
	for _, p := range opts.Highlight {
		c.dot(p, resultColor)
	}
	return img
}

// Returns the stroke width for a line at the given tree depth
func strokeWidth(depth int) float32 {
	w := 6 - depth
	if w < 1 {
		w = 1
	}
	return float32(w)
}

// Returns a color for the given tree depth. Hue cycles, luminance rises with depth.
func depthColor(depth int) color.Color {
	h := math.Mod(float64(depth)*47, 360)
	l := math.Min(0.25+0.05*float64(depth), 0.7)
	return colorful.Hcl(h, 0.6, l).Clamped()
}

// Maps space coordinates onto image pixels and rasterizes shapes
type canvas struct {
	img    *image.RGBA
	z      *vector.Rasterizer
	view   geom.AABB
	sx, sy float64
}

func newCanvas(img *image.RGBA, view, fallback geom.AABB) *canvas {
	if view == (geom.AABB{}) {
		view = fallback
	}
	if view.Width() == 0 {
		view.XMin, view.XMax = view.XMin-1, view.XMax+1
	}
	if view.Height() == 0 {
		view.YMin, view.YMax = view.YMin-1, view.YMax+1
	}
	b := img.Bounds()
	return &canvas{
		img:  img,
		z:    vector.NewRasterizer(b.Dx(), b.Dy()),
		view: view,
		sx:   float64(b.Dx()) / view.Width(),
		sy:   float64(b.Dy()) / view.Height(),
	}
}

func (c *canvas) project(p geom.Point) (float32, float32) {
	return float32((p.X - c.view.XMin) * c.sx), float32((p.Y - c.view.YMin) * c.sy)
}

func (c *canvas) fill(col color.Color) {
	c.z.DrawOp = draw.Over
	c.z.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
}

// Strokes a segment with the given width in pixels
func (c *canvas) line(s geom.Segment, width float32, col color.Color) {
	ax, ay := c.project(s.A)
	bx, by := c.project(s.B)
	dx, dy := bx-ax, by-ay
	length := float32(math.Hypot(float64(dx), float64(dy)))
	half := width / 2
	var nx, ny, ex, ey float32
	if length > 0 {
		nx, ny = -dy/length*half, dx/length*half // normal
		ex, ey = dx/length*half, dy/length*half  // end cap
	} else {
		nx, ex = half, 0
		ny, ey = 0, half
	}
	c.z.MoveTo(ax-ex+nx, ay-ey+ny)
	c.z.LineTo(bx+ex+nx, by+ey+ny)
	c.z.LineTo(bx+ex-nx, by+ey-ny)
	c.z.LineTo(ax-ex-nx, ay-ey-ny)
	c.z.ClosePath()
	c.fill(col)
}

// Draws a filled circle with an outline at p
func (c *canvas) dot(p geom.Point, col color.Color) {
	x, y := c.project(p)
	c.circle(x, y, pointSize/2+1)
	c.fill(outline)
	c.circle(x, y, pointSize/2)
	c.fill(col)
}

func (c *canvas) circle(x, y, r float32) {
	const steps = 16
	c.z.MoveTo(x+r, y)
	for i := 1; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / steps
		c.z.LineTo(x+r*float32(math.Cos(a)), y+r*float32(math.Sin(a)))
	}
	c.z.ClosePath()
}

func (c *canvas) fillBox(b geom.AABB, col color.Color) {
	x0, y0 := c.project(geom.Point{X: b.XMin, Y: b.YMin})
	x1, y1 := c.project(geom.Point{X: b.XMax, Y: b.YMax})
	c.z.MoveTo(x0, y0)
	c.z.LineTo(x1, y0)
	c.z.LineTo(x1, y1)
	c.z.LineTo(x0, y1)
	c.z.ClosePath()
	c.fill(col)
}
