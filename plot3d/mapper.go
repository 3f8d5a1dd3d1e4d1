// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot3d

import (
	"math"

	"cogentcore.org/axis3d/math32/minmax"
	"cogentcore.org/axis3d/plot3d/ticks"
)

// Mapper converts data values into logical coordinates along one
// axis of the graph box.
type Mapper struct {
	// Range is the plotted range; Min > Max for an inverted axis.
	Range minmax.F64

	// Log is whether the axis is logarithmic.
	Log bool

	// Scale multiplies data values before mapping.
	Scale float64

	// Lower and Upper are the logical positions that Range.Min
	// and Range.Max map onto.
	Lower, Upper float64
}

// Fraction returns the position of the data value v within the
// plotted range, as a fraction from 0 at Range.Min to 1 at Range.Max.
func (mp *Mapper) Fraction(v float64) float64 {
	v *= mp.Scale
	if mp.Log {
		l1, l2 := math.Log(mp.Range.Min), math.Log(mp.Range.Max)
		cv := min(max(v, ticks.LogMin), ticks.LogMax)
		return (math.Log(cv) - l1) / (l2 - l1)
	}
	lo, hi := mp.Range.Min/2, mp.Range.Max/2
	return (v/2 - lo) / (hi - lo)
}

// Map returns the logical coordinate of the data value v.
func (mp *Mapper) Map(v float64) float64 {
	return mp.Lower + mp.Fraction(v)*(mp.Upper-mp.Lower)
}

// ToLogical returns the logical coordinates of the data values.
func (mp *Mapper) ToLogical(vals []float64) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = mp.Map(v)
	}
	return out
}
