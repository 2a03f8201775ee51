// Copyright 2024 The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"bytes"
	"image/color"
	"strings"
	"testing"
)

func TestSVGOutput(t *testing.T) {
	var buf bytes.Buffer
	s := NewSVG(&buf, 200, 100)
	s.SetColor(color.NRGBA{0x1f, 0x77, 0xb4, 0xff})
	s.MoveTo(10, 10)
	s.LineTo(190, 90)
	s.Stroke(2)
	s.SetColor(color.NRGBA{0xff, 0x00, 0x00, 0x80})
	Circle(s, 100, 50, 5)
	s.Fill()
	s.Text("hello", 100, 95, 12, AnchorMiddle)
	s.Close()

	out := buf.String()
	for _, want := range []string{
		"<svg", "</svg>",
		"stroke:#1f77b4",
		"fill:#ff0000",
		`text-anchor="middle"`,
		"hello",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG output missing %q", want)
		}
	}
	// Half-alpha fill carries its opacity into the style.
	if !strings.Contains(out, "fill-opacity:0.502") {
		t.Errorf("SVG output missing translucent fill opacity:\n%s", out)
	}
}

func TestSVGEmptyPathNoOp(t *testing.T) {
	var buf bytes.Buffer
	s := NewSVG(&buf, 10, 10)
	s.Stroke(1)
	s.Fill()
	s.Close()
	if strings.Contains(buf.String(), "<path") {
		t.Error("empty path emitted a <path> element")
	}
}

func TestRasterStrokePaintsPixels(t *testing.T) {
	r := NewRaster(50, 50)
	r.SetColor(color.NRGBA{0, 0, 0, 0xff})
	r.MoveTo(5, 25)
	r.LineTo(45, 25)
	r.Stroke(3)

	img := r.Image()
	if _, _, _, a := img.At(25, 25).RGBA(); a == 0 {
		t.Error("stroke left the midpoint unpainted")
	}
	if _, _, _, a := img.At(25, 5).RGBA(); a != 0 {
		t.Error("stroke painted far from the segment")
	}
}

func TestRasterFillPaintsInterior(t *testing.T) {
	r := NewRaster(40, 40)
	r.SetColor(color.NRGBA{0x2c, 0xa0, 0x2c, 0xff})
	r.MoveTo(10, 10)
	r.LineTo(30, 10)
	r.LineTo(30, 30)
	r.LineTo(10, 30)
	r.Fill()

	img := r.Image()
	if _, _, _, a := img.At(20, 20).RGBA(); a == 0 {
		t.Error("fill left the interior unpainted")
	}
	if _, _, _, a := img.At(35, 35).RGBA(); a != 0 {
		t.Error("fill painted outside the rectangle")
	}
}

func TestRasterEncodePNG(t *testing.T) {
	r := NewRaster(20, 20)
	r.SetColor(color.White)
	r.MoveTo(0, 0)
	r.LineTo(20, 0)
	r.LineTo(20, 20)
	r.LineTo(0, 20)
	r.Fill()

	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte{0x89, 'P', 'N', 'G'}) {
		t.Error("output does not start with the PNG signature")
	}
}

func TestMeasureText(t *testing.T) {
	for _, s := range []Surface{NewRaster(10, 10), NewSVG(&bytes.Buffer{}, 10, 10)} {
		w, h := s.MeasureText("axis label", 12)
		if w <= 0 || h <= 0 {
			t.Errorf("%T.MeasureText = (%v, %v); want positive", s, w, h)
		}
		w2, _ := s.MeasureText("a much longer axis label", 12)
		if w2 <= w {
			t.Errorf("%T: longer string measured %v, shorter %v", s, w2, w)
		}
	}
}
