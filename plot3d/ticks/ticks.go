// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ticks provides the tick generators used by 3D plot axes:
// a numeric generator for linear and logarithmic axes and a date
// generator for axes whose values are Unix times in seconds.
package ticks

import (
	"math"
	"slices"
)

// LogMin is the smallest positive value used on a logarithmic axis;
// anything below it is clamped up to it.
const LogMin = 1e-99

// LogMax is the largest value used when mapping onto a logarithmic axis.
const LogMax = 1e99

// Request is the input to a [Ticker].
type Request struct {
	// Min and Max are the range to place ticks in, with Min < Max.
	Min, Max float64

	// Major is the number of major ticks to aim for.
	Major int

	// Minor is the number of minor ticks to aim for.
	Minor int

	// ExtendMin allows Min to be moved down to the next major tick.
	ExtendMin bool

	// ExtendMax allows Max to be moved up to the next major tick.
	ExtendMax bool

	// Log is whether the axis is logarithmic.
	Log bool
}

// Result is the output of a [Ticker].
type Result struct {
	// Min and Max are the range after any extension.
	Min, Max float64

	// Major and Minor are the tick values in ascending order,
	// all lying within [Min, Max].
	Major, Minor []float64

	// AutoFormat is the suggested format for tick labels,
	// suitable for [Format].
	AutoFormat string
}

// Ticker generates tick values for an axis range.
type Ticker interface {
	Ticks(req Request) Result
}

// TickerFunc is a function that implements [Ticker].
type TickerFunc func(req Request) Result

func (f TickerFunc) Ticks(req Request) Result {
	return f(req)
}

// sanitize returns req with usable tick counts.
func (req Request) sanitize() Request {
	if req.Major < 2 {
		req.Major = 2
	}
	if req.Minor < req.Major {
		req.Minor = req.Major
	}
	return req
}

// Filter returns the values that lie within [lo, hi] inclusive,
// in ascending order. The result is never nil. It is used both for
// manually given ticks and to keep generated ticks inside the range.
func Filter(vals []float64, lo, hi float64) []float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	out := make([]float64, 0, len(vals))
	for _, v := range vals {
		if v >= lo && v <= hi {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return out
}

// slack returns the tolerance used when testing whether a tick
// lies inside [lo, hi], so that rounding in the tick arithmetic
// does not drop end ticks.
func slack(lo, hi float64) float64 {
	return math.Abs(hi/2-lo/2) * 2e-10
}

// within returns the values inside [lo, hi] within slack,
// snapping values that lie just outside onto the ends.
func within(vals []float64, lo, hi float64) []float64 {
	sl := slack(lo, hi)
	out := make([]float64, 0, len(vals))
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < lo-sl || v > hi+sl {
			continue
		}
		out = append(out, min(max(v, lo), hi))
	}
	return out
}

// stepTicks returns the multiples of step within [lo, hi]. If extMin
// or extMax is set, the corresponding end is first moved outward onto
// the next multiple of step.
func stepTicks(lo, hi, step float64, extMin, extMax bool) (float64, float64, []float64) {
	if step <= 0 || math.IsInf(step, 0) || math.IsNaN(step) {
		return lo, hi, nil
	}
	sl := slack(lo, hi)
	if v := math.Floor((lo+sl)/step) * step; extMin && !math.IsInf(v, 0) {
		lo = v
	}
	if v := math.Ceil((hi-sl)/step) * step; extMax && !math.IsInf(v, 0) {
		hi = v
	}
	first := math.Ceil((lo - sl) / step)
	last := math.Floor((hi + sl) / step)
	const maxTicks = 10000
	if !(last-first <= maxTicks) {
		return lo, hi, nil
	}
	vals := make([]float64, 0, int(last-first)+1)
	for i := 0.0; i <= last-first; i++ {
		n := first + i
		v := n * step
		if n == 0 {
			v = 0
		}
		vals = append(vals, v)
	}
	return lo, hi, within(vals, lo, hi)
}
