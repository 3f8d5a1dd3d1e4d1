// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minmax provides a struct that holds Min and Max values.
package minmax

import "math"

// F64 represents a min / max range for float64 values.
// Min is not required to be below Max: an axis drawn in the
// reverse direction keeps its pair in the requested order.
type F64 struct {
	Min float64
	Max float64
}

// IsValid returns true if Min <= Max
func (mr F64) IsValid() bool {
	return mr.Min <= mr.Max
}

// IsFinite returns true if neither end is NaN or infinite.
func (mr F64) IsFinite() bool {
	return !math.IsNaN(mr.Min) && !math.IsNaN(mr.Max) &&
		!math.IsInf(mr.Min, 0) && !math.IsInf(mr.Max, 0)
}

// Range returns Max - Min
func (mr F64) Range() float64 {
	return mr.Max - mr.Min
}

// Swap exchanges Min and Max.
func (mr *F64) Swap() {
	mr.Min, mr.Max = mr.Max, mr.Min
}

// Sorted returns the range with Min <= Max, and whether
// the ends had to be exchanged to get there.
func (mr F64) Sorted() (F64, bool) {
	if mr.Min > mr.Max {
		return F64{mr.Max, mr.Min}, true
	}
	return mr, false
}

// Scale returns the range with both ends multiplied by s.
func (mr F64) Scale(s float64) F64 {
	return F64{mr.Min * s, mr.Max * s}
}

// FitValInRange adjusts our Min, Max to fit given value within Min, Max range
// returns true if we had to adjust to fit.
func (mr *F64) FitValInRange(val float64) bool {
	adj := false
	if val < mr.Min {
		mr.Min = val
		adj = true
	}
	if val > mr.Max {
		mr.Max = val
		adj = true
	}
	return adj
}

// SetInfinity sets the Min to +Inf, Max to -Inf, suitable for
// iteratively calling FitValInRange.
func (mr *F64) SetInfinity() {
	mr.Min = math.Inf(1)
	mr.Max = math.Inf(-1)
}

// Range64 represents a range of values for plotting, where the min or max
// can be fixed to a given value, or left to be determined from the data.
type Range64 struct {
	// FixMin is whether Min is fixed; otherwise it comes from the data.
	FixMin bool

	// FixMax is whether Max is fixed; otherwise it comes from the data.
	FixMax bool

	// Min is the fixed minimum value, used when FixMin is set.
	Min float64

	// Max is the fixed maximum value, used when FixMax is set.
	Max float64
}

// SetMin fixes the minimum to the given value.
func (rr *Range64) SetMin(mn float64) *Range64 {
	rr.FixMin = true
	rr.Min = mn
	return rr
}

// SetMax fixes the maximum to the given value.
func (rr *Range64) SetMax(mx float64) *Range64 {
	rr.FixMax = true
	rr.Max = mx
	return rr
}

// IsAuto returns true if either end is determined from the data.
func (rr Range64) IsAuto() bool {
	return !rr.FixMin || !rr.FixMax
}

// Clamp returns the given data-derived min and max, replaced by
// the fixed values wherever an end is fixed.
func (rr Range64) Clamp(mnIn, mxIn float64) (mn, mx float64) {
	mn, mx = mnIn, mxIn
	if rr.FixMin {
		mn = rr.Min
	}
	if rr.FixMax {
		mx = rr.Max
	}
	return
}

// Range returns the result of [Range64.Clamp] as an [F64].
func (rr Range64) Range(data F64) F64 {
	mn, mx := rr.Clamp(data.Min, data.Max)
	return F64{mn, mx}
}
