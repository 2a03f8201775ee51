// Copyright 2024 The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	svg "github.com/ajstarks/svgo"
)

// SVG is a Surface that renders to an SVG document.
type SVG struct {
	canvas *svg.SVG
	path   bytes.Buffer
	color  color.Color
}

// NewSVG returns a Surface writing an SVG document of the given pixel
// size to w. The caller must call Close to end the document.
func NewSVG(w io.Writer, width, height int) *SVG {
	c := svg.New(w)
	c.Start(width, height, `font-family="Helvetica,Arial,sans-serif"`)
	return &SVG{canvas: c, color: color.Black}
}

// Close ends the SVG document. The Surface must not be used after
// Close.
func (s *SVG) Close() {
	s.canvas.End()
}

func (s *SVG) SetColor(c color.Color) {
	s.color = c
}

func (s *SVG) MoveTo(x, y float64) {
	s.appendCmd('M', x, y)
}

func (s *SVG) LineTo(x, y float64) {
	s.appendCmd('L', x, y)
}

func (s *SVG) CurveTo(cx1, cy1, cx2, cy2, x, y float64) {
	s.appendCmd('C', cx1, cy1, cx2, cy2, x, y)
}

func (s *SVG) appendCmd(verb byte, coords ...float64) {
	s.path.WriteByte(verb)
	for i, c := range coords {
		if i > 0 {
			s.path.WriteByte(' ')
		}
		b := strconv.AppendFloat(nil, c, 'g', 6, 64)
		s.path.Write(b)
	}
}

func (s *SVG) Stroke(width float64) {
	if s.path.Len() == 0 {
		return
	}
	fill, opacity := cssColor(s.color)
	style := fmt.Sprintf("stroke:%s;stroke-opacity:%.3g;stroke-width:%.6g;fill:none;stroke-linecap:round;stroke-linejoin:round", fill, opacity, width)
	s.canvas.Path(wrapPath(s.path.String()), style)
	s.path.Reset()
}

func (s *SVG) Fill() {
	if s.path.Len() == 0 {
		return
	}
	fill, opacity := cssColor(s.color)
	style := fmt.Sprintf("fill:%s;fill-opacity:%.3g;stroke:none", fill, opacity)
	s.canvas.Path(wrapPath(s.path.String()), style)
	s.path.Reset()
}

func (s *SVG) Text(str string, x, y, size float64, anchor Anchor) {
	fill, opacity := cssColor(s.color)
	a := "start"
	switch anchor {
	case AnchorMiddle:
		a = "middle"
	case AnchorEnd:
		a = "end"
	}
	s.canvas.Text(int(x), int(y),
		str,
		fmt.Sprintf(`font-size="%.6gpx" text-anchor="%s" fill="%s" fill-opacity="%.3g"`, size, a, fill, opacity))
}

func (s *SVG) VerticalText(str string, x, y, size float64) {
	fill, opacity := cssColor(s.color)
	s.canvas.Text(int(x), int(y),
		str,
		fmt.Sprintf(`font-size="%.6gpx" text-anchor="middle" fill="%s" fill-opacity="%.3g" transform="rotate(-90 %d %d)"`,
			size, fill, opacity, int(x), int(y)))
}

// MeasureText estimates text metrics. SVG rendering happens in the
// viewer, so exact glyph metrics are not available; the estimate of
// half an em per rune matches typical sans-serif faces closely enough
// for legend and margin sizing.
func (s *SVG) MeasureText(str string, size float64) (w, h float64) {
	return 0.5 * size * float64(utf8.RuneCountInString(str)), 1.25 * size
}

func cssColor(c color.Color) (css string, opacity float64) {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return "#000000", 0
	}
	// Un-premultiply to 8-bit channels.
	r8 := uint8((r * 0xff) / a)
	g8 := uint8((g * 0xff) / a)
	b8 := uint8((b * 0xff) / a)
	return fmt.Sprintf("#%02x%02x%02x", r8, g8, b8), float64(a) / 0xffff
}

// wrapPath wraps path data to avoid exceeding SVG's recommended line
// length limit of 255 characters.
func wrapPath(p string) string {
	const width = 70
	if len(p) <= width {
		return p
	}
	parts := make([]string, 0, 16)
	for len(p) > width {
		lastCmd := 0
		for i, ch := range p {
			if i >= width && lastCmd != 0 {
				break
			}
			if i > 0 && ('a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z') {
				lastCmd = i
			}
		}
		if lastCmd == 0 {
			break
		}
		parts, p = append(parts, p[:lastCmd]), p[lastCmd:]
	}
	if len(p) > 0 {
		parts = append(parts, p)
	}
	return strings.Join(parts, "\n")
}
