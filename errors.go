// Copyright 2024 The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit

import "errors"

// Sentinel errors for caller mistakes. Errors returned by this package
// wrap one of these; test with errors.Is.
//
// Degenerate data (empty series, all-equal values) is never an error:
// it always has a defined fallback rendering.
var (
	// ErrInvalidArgument reports mismatched argument lengths,
	// mixing discrete and continuous histogram data on one plot,
	// or a vertical reference line on a categorical axis.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange reports a subplot index outside the grid.
	ErrOutOfRange = errors.New("out of range")
)
