// Copyright 2024 The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plotkit/plotkit/palette"
)

func TestSavePNG(t *testing.T) {
	s := NewScatter(640, 480)
	s.SetLabels("speedup", "threads", "ratio")
	s.Add([]Point{{1, 2}, {2, 4}, {3, 6}, {4, 8}, {5, 10}})

	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, s.SavePNG(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	// PNG signature.
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])
}

func TestSaveSVG(t *testing.T) {
	l := NewLine(640, 480)
	l.AddNamed("latency", []Point{{0, 1}, {1, 3}, {2, 2}})
	require.NoError(t, l.AddHLineNamed(2.5, "budget"))

	path := filepath.Join(t.TempDir(), "out.svg")
	require.NoError(t, l.SaveSVG(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
	assert.Contains(t, string(data), "</svg>")
	assert.Contains(t, string(data), "latency")
}

func TestSaveEmptyPlot(t *testing.T) {
	// An empty plot still renders: axes plus a placeholder message,
	// no error and no panic.
	s := NewScatter(400, 300)
	path := filepath.Join(t.TempDir(), "empty.png")
	require.NoError(t, s.SavePNG(path))

	svgPath := filepath.Join(t.TempDir(), "empty.svg")
	require.NoError(t, s.SaveSVG(svgPath))
	data, err := os.ReadFile(svgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Empty plot")
}

func TestRenderIsIdempotent(t *testing.T) {
	h := NewHistogram(500, 400)
	require.NoError(t, h.AddNamed("sample", []float64{1, 1, 2, 3, 5, 8, 13, 21}))
	h.SetTitle("fib")

	dir := t.TempDir()
	p1 := filepath.Join(dir, "a.png")
	p2 := filepath.Join(dir, "b.png")
	require.NoError(t, h.SavePNG(p1))
	require.NoError(t, h.SavePNG(p2))

	d1, err := os.ReadFile(p1)
	require.NoError(t, err)
	d2, err := os.ReadFile(p2)
	require.NoError(t, err)
	if !bytes.Equal(d1, d2) {
		t.Error("repeated saves of an unchanged plot differ")
	}
}

func TestClusterColorsStableAcrossPlots(t *testing.T) {
	pts := []Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}}
	labels := []int{0, 1, 1, -1}

	s1 := NewScatter(400, 300)
	// Extra series on one plot must not shift cluster colors on
	// either: cluster coloring ignores the rotation entirely.
	s1.Add([]Point{{9, 9}})
	require.NoError(t, s1.AddClusters(pts, labels))

	s2 := NewScatter(400, 300)
	require.NoError(t, s2.AddClusters(pts, labels))

	c1 := s1.series[1].clusters
	c2 := s2.series[0].clusters
	require.Equal(t, len(c1), len(c2))
	for i := range c1 {
		assert.Equal(t, c1[i].color, c2[i].color, "cluster %q", c1[i].name)
	}

	// Outliers sort first and are always red.
	assert.Equal(t, "Outliers", c1[0].name)
	assert.Equal(t, palette.Red, c1[0].color)
}

func TestHideLegendItemKeepsColors(t *testing.T) {
	build := func(hide bool) *Scatter {
		s := NewScatter(400, 300)
		s.AddNamed("a", []Point{{0, 0}})
		s.AddNamed("b", []Point{{1, 1}})
		if hide {
			s.HideLegendItem("a")
		}
		return s
	}
	ref, hidden := build(false), build(true)
	for i := range ref.series {
		assert.Equal(t, ref.series[i].style.Color, hidden.series[i].style.Color)
	}

	// Hidden entries drop out of the legend only.
	assert.Len(t, hidden.legendEntries(), 1)
	assert.Len(t, ref.legendEntries(), 2)
}

func TestAutoNamesAndColors(t *testing.T) {
	s := NewScatter(400, 300)
	s.Add([]Point{{0, 0}})
	s.Add([]Point{{1, 1}})
	assert.Equal(t, "Series 1", s.series[0].style.Label)
	assert.Equal(t, "Series 2", s.series[1].style.Label)

	// First auto color is blue, and the rotation never repeats
	// until the palette wraps.
	assert.Equal(t, palette.Blue, s.series[0].style.Color)
	assert.NotEqual(t, s.series[0].style.Color, s.series[1].style.Color)
}

func TestClearResetsRotation(t *testing.T) {
	s := NewScatter(400, 300)
	s.Add([]Point{{0, 0}})
	first := s.series[0].style.Color

	s.Clear()
	assert.Empty(t, s.series)

	s.Add([]Point{{2, 2}})
	assert.Equal(t, first, s.series[0].style.Color)
	assert.Equal(t, "Series 1", s.series[0].style.Label)
}

func TestRefLineAvoidsSeriesColor(t *testing.T) {
	s := NewScatter(400, 300)
	s.AddStyled("a", []Point{{0, 0}}, palette.Blue)
	require.NoError(t, s.AddVLine(1))
	assert.NotEqual(t, palette.Blue, s.refLines[0].Color)
}

func TestClusterLabelValidation(t *testing.T) {
	s := NewScatter(400, 300)
	err := s.AddClusters([]Point{{0, 0}, {1, 1}}, []int{0})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
