// Copyright 2024 The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Raster is a Surface that renders to an in-memory RGBA image,
// suitable for PNG encoding. Fills are anti-aliased through
// x/image/vector; strokes are realized as filled quads per path
// segment with octagonal joins. Text uses the fixed basicfont face,
// which has no rotation, so VerticalText falls back to horizontal
// text centered on its position.
type Raster struct {
	img   *image.RGBA
	ops   []pathOp
	color color.Color
}

type pathOp struct {
	verb byte // 'M', 'L' or 'C'
	pts  [6]float64
}

// NewRaster returns a Surface backed by a width x height image. The
// image starts fully transparent; callers that want a background draw
// it.
func NewRaster(width, height int) *Raster {
	return &Raster{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		color: color.Black,
	}
}

// Image returns the backing image.
func (r *Raster) Image() *image.RGBA { return r.img }

// EncodePNG writes the image as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	return png.Encode(w, r.img)
}

func (r *Raster) SetColor(c color.Color) { r.color = c }

func (r *Raster) MoveTo(x, y float64) {
	r.ops = append(r.ops, pathOp{'M', [6]float64{x, y}})
}

func (r *Raster) LineTo(x, y float64) {
	r.ops = append(r.ops, pathOp{'L', [6]float64{x, y}})
}

func (r *Raster) CurveTo(cx1, cy1, cx2, cy2, x, y float64) {
	r.ops = append(r.ops, pathOp{'C', [6]float64{cx1, cy1, cx2, cy2, x, y}})
}

func (r *Raster) Fill() {
	if len(r.ops) == 0 {
		return
	}
	b := r.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	started := false
	for _, op := range r.ops {
		switch op.verb {
		case 'M':
			if started {
				z.ClosePath()
			}
			z.MoveTo(float32(op.pts[0]), float32(op.pts[1]))
			started = true
		case 'L':
			z.LineTo(float32(op.pts[0]), float32(op.pts[1]))
		case 'C':
			z.CubeTo(
				float32(op.pts[0]), float32(op.pts[1]),
				float32(op.pts[2]), float32(op.pts[3]),
				float32(op.pts[4]), float32(op.pts[5]))
		}
	}
	if started {
		z.ClosePath()
	}
	z.Draw(r.img, b, image.NewUniform(r.color), image.Point{})
	r.ops = nil
}

func (r *Raster) Stroke(width float64) {
	if len(r.ops) == 0 {
		return
	}
	half := width / 2
	if half <= 0 {
		half = 0.5
	}
	for _, line := range r.flatten() {
		for i := 1; i < len(line); i++ {
			r.strokeSegment(line[i-1], line[i], half)
		}
		for _, p := range line {
			r.fillOctagon(p, half)
		}
	}
	r.ops = nil
}

type rpoint struct{ x, y float64 }

// flatten converts the accumulated path into polylines, subdividing
// curves into fixed-count line segments.
func (r *Raster) flatten() [][]rpoint {
	const curveSteps = 16
	var lines [][]rpoint
	var cur []rpoint
	for _, op := range r.ops {
		switch op.verb {
		case 'M':
			if len(cur) > 1 {
				lines = append(lines, cur)
			}
			cur = []rpoint{{op.pts[0], op.pts[1]}}
		case 'L':
			cur = append(cur, rpoint{op.pts[0], op.pts[1]})
		case 'C':
			if len(cur) == 0 {
				cur = []rpoint{{op.pts[4], op.pts[5]}}
				continue
			}
			p0 := cur[len(cur)-1]
			for i := 1; i <= curveSteps; i++ {
				t := float64(i) / curveSteps
				cur = append(cur, cubicAt(p0,
					rpoint{op.pts[0], op.pts[1]},
					rpoint{op.pts[2], op.pts[3]},
					rpoint{op.pts[4], op.pts[5]}, t))
			}
		}
	}
	if len(cur) > 1 {
		lines = append(lines, cur)
	}
	return lines
}

func cubicAt(p0, p1, p2, p3 rpoint, t float64) rpoint {
	u := 1 - t
	a, b, c, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
	return rpoint{
		a*p0.x + b*p1.x + c*p2.x + d*p3.x,
		a*p0.y + b*p1.y + c*p2.y + d*p3.y,
	}
}

func (r *Raster) strokeSegment(a, b rpoint, half float64) {
	dx, dy := b.x-a.x, b.y-a.y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*half, dx/l*half
	r.fillConvex([]rpoint{
		{a.x + nx, a.y + ny},
		{b.x + nx, b.y + ny},
		{b.x - nx, b.y - ny},
		{a.x - nx, a.y - ny},
	})
}

func (r *Raster) fillOctagon(c rpoint, radius float64) {
	pts := make([]rpoint, 8)
	for i := range pts {
		a := float64(i) * math.Pi / 4
		pts[i] = rpoint{c.x + radius*math.Cos(a), c.y + radius*math.Sin(a)}
	}
	r.fillConvex(pts)
}

// fillConvex fills one convex polygon through its own rasterizer so
// overlapping stroke pieces cannot cancel each other's winding.
func (r *Raster) fillConvex(pts []rpoint) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.x), math.Max(maxX, p.x)
		minY, maxY = math.Min(minY, p.y), math.Max(maxY, p.y)
	}
	x0, y0 := int(math.Floor(minX)), int(math.Floor(minY))
	x1, y1 := int(math.Ceil(maxX))+1, int(math.Ceil(maxY))+1
	rect := image.Rect(x0, y0, x1, y1).Intersect(r.img.Bounds())
	if rect.Empty() {
		return
	}
	z := vector.NewRasterizer(rect.Dx(), rect.Dy())
	ox, oy := float64(rect.Min.X), float64(rect.Min.Y)
	z.MoveTo(float32(pts[0].x-ox), float32(pts[0].y-oy))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.x-ox), float32(p.y-oy))
	}
	z.ClosePath()
	z.Draw(r.img, rect, image.NewUniform(r.color), image.Point{})
}

func (r *Raster) face() font.Face { return basicfont.Face7x13 }

func (r *Raster) Text(s string, x, y, size float64, anchor Anchor) {
	w, _ := r.MeasureText(s, size)
	switch anchor {
	case AnchorMiddle:
		x -= w / 2
	case AnchorEnd:
		x -= w
	}
	d := font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(r.color),
		Face: r.face(),
		Dot:  fixed.P(int(x), int(y)),
	}
	d.DrawString(s)
}

func (r *Raster) VerticalText(s string, x, y, size float64) {
	// basicfont has no rotated rendering; center horizontally on
	// the anchor instead.
	r.Text(s, x, y, size, AnchorMiddle)
}

func (r *Raster) MeasureText(s string, size float64) (w, h float64) {
	adv := font.MeasureString(r.face(), s)
	m := r.face().Metrics()
	return float64(adv) / 64, float64(m.Height) / 64
}
