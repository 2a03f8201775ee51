// Copyright 2024 The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import "image/color"

// An Assigner hands out colors from the Auto palette in rotation. Each
// plot owns one Assigner, so the first two auto-colored series in a
// plot never share a color, while independent plots repeat the same
// sequence.
//
// The zero Assigner is ready to use.
type Assigner struct {
	next int
}

// Next returns the next color in the rotation.
func (a *Assigner) Next() color.NRGBA {
	c := Auto[a.next%len(Auto)]
	a.next++
	return c
}

// NextAvoiding returns the next rotation color that is not in used.
// This is the reference-line policy: avoid colliding with data series
// where feasible. If every palette color is in used, it falls back to
// straight rotation.
//
// The rotation counter advances past skipped colors, so later calls
// do not return a color that an earlier call skipped and a data series
// holds.
func (a *Assigner) NextAvoiding(used []color.NRGBA) color.NRGBA {
	inUse := func(c color.NRGBA) bool {
		for _, u := range used {
			if c == u {
				return true
			}
		}
		return false
	}
	for i := 0; i < len(Auto); i++ {
		c := Auto[a.next%len(Auto)]
		if !inUse(c) {
			a.next++
			return c
		}
		a.next++
	}
	return a.Next()
}
