// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot3d

// Dims are the three dimensions of the plot box.
type Dims int32

const (
	X Dims = iota
	Y
	Z

	// DimsN is the number of dimensions.
	DimsN
)

// Modes are the kinds of values shown on an axis, which select
// the tick generator.
type Modes int32

const (
	// Numeric axes show plain numbers.
	Numeric Modes = iota

	// DateTime axes show dates and times, stored as Unix seconds.
	DateTime

	// Labels axes show text labels at numeric positions.
	Labels

	// ModesN is the number of modes.
	ModesN
)

// AutoRanges are the ways automatic axis bounds are derived
// from the extent of the data.
type AutoRanges int32

const (
	// Exact uses the data extent as is.
	Exact AutoRanges = iota

	// NextTick extends automatic bounds to the next major tick.
	NextTick

	// Plus2 pads automatic bounds by 2% of the range.
	Plus2

	// Plus5 pads automatic bounds by 5% of the range.
	Plus5

	// Plus10 pads automatic bounds by 10% of the range.
	Plus10

	// Plus15 pads automatic bounds by 15% of the range.
	Plus15

	// AutoRangesN is the number of auto range modes.
	AutoRangesN
)
