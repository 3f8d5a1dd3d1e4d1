// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot3d

import (
	"math"

	"cogentcore.org/axis3d/math32/minmax"
)

// AutoRangeAdjuster adjusts a plotted range after the automatic
// bounds have been substituted, for example to add padding.
// rng is always ordered with Min < Max. Only the ends flagged by
// adjustMin and adjustMax may be changed.
type AutoRangeAdjuster interface {
	AdjustPlottedRange(rng *minmax.F64, adjustMin, adjustMax, log bool)
}

// Percent returns the padding percentage of the mode, or 0
// for modes that do not pad.
func (ar AutoRanges) Percent() float64 {
	switch ar {
	case Plus2:
		return 2
	case Plus5:
		return 5
	case Plus10:
		return 10
	case Plus15:
		return 15
	}
	return 0
}

// AdjustPlottedRange pads the automatic ends of rng by the mode's
// percentage of the range. On log axes the padding is a fraction of
// the number of decades spanned, applied multiplicatively.
func (ar AutoRanges) AdjustPlottedRange(rng *minmax.F64, adjustMin, adjustMax, log bool) {
	pc := ar.Percent()
	if pc == 0 {
		return
	}
	if log {
		decades := math.Abs(math.Log10(rng.Max) - math.Log10(rng.Min))
		f := math.Pow(10, decades*pc/100)
		if adjustMin {
			rng.Min /= f
		}
		if adjustMax {
			rng.Max *= f
		}
		return
	}
	d := rng.Range() * pc / 100
	if adjustMin {
		rng.Min -= d
	}
	if adjustMax {
		rng.Max += d
	}
}
