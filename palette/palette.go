// Copyright 2024 The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette provides the fixed plot palettes and the per-plot
// color assignment policy.
package palette

import "image/color"

// The named palette colors. Components are sRGB.
var (
	Red     = color.NRGBA{0xd6, 0x27, 0x28, 0xff}
	Blue    = color.NRGBA{0x1f, 0x77, 0xb4, 0xff}
	Green   = color.NRGBA{0x2c, 0xa0, 0x2c, 0xff}
	Orange  = color.NRGBA{0xff, 0x7f, 0x0e, 0xff}
	Purple  = color.NRGBA{0x94, 0x67, 0xbd, 0xff}
	Cyan    = color.NRGBA{0x17, 0xbe, 0xcf, 0xff}
	Magenta = color.NRGBA{0xe3, 0x77, 0xc2, 0xff}
	Yellow  = color.NRGBA{0xbc, 0xbd, 0x22, 0xff}
	Black   = color.NRGBA{0x00, 0x00, 0x00, 0xff}
	Gray    = color.NRGBA{0x7f, 0x7f, 0x7f, 0xff}
)

// Auto is the rotation order for automatically assigned series colors.
// Blue is first to match the legacy default series color.
var Auto = []color.NRGBA{
	Blue, Red, Green, Orange, Purple, Cyan, Magenta, Yellow, Black, Gray,
}

// clusters is the stable palette for non-negative cluster labels. It
// deliberately omits Red, which is reserved for outliers.
var clusters = []color.NRGBA{
	Blue, Green, Orange, Purple, Cyan, Magenta, Yellow, Gray, Black,
}

// Cluster returns the color for a cluster label. The color is a pure
// function of the label, so the same label renders identically within
// and across plots. Label -1 (outliers) is always red.
func Cluster(label int) color.NRGBA {
	if label < 0 {
		return Red
	}
	return clusters[label%len(clusters)]
}
