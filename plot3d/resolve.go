// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot3d

import (
	"math"
	"slices"

	"cogentcore.org/axis3d/math32/minmax"
	"cogentcore.org/axis3d/plot3d/ticks"
)

const (
	// logEpsilon is the floor applied to values on log axes.
	logEpsilon = ticks.LogMin

	// degenerateTol is the relative width below which a range
	// is treated as having zero width.
	degenerateTol = 1e-8
)

// tickers is the tick generator used for each axis mode.
var tickers = map[Modes]ticks.Ticker{
	Numeric:  ticks.Numeric{},
	DateTime: ticks.Date{},
	Labels:   ticks.Numeric{},
}

// TickerFor returns the tick generator for the given axis mode.
func TickerFor(mode Modes) ticks.Ticker {
	if tk, ok := tickers[mode]; ok {
		return tk
	}
	return ticks.Numeric{}
}

// Ticks are the tick values of an axis.
type Ticks struct {
	// Major are the major tick values, in ascending order.
	Major []float64

	// Minor are the minor tick values, in ascending order.
	Minor []float64

	// AutoFormat is the label format suggested by the tick generator.
	AutoFormat string
}

func (t Ticks) clone() Ticks {
	t.Major = slices.Clone(t.Major)
	t.Minor = slices.Clone(t.Minor)
	return t
}

// Request has everything needed to resolve the plotted range of an axis.
type Request struct {
	// Bounds are the requested bounds, each fixed or automatic.
	Bounds minmax.Range64

	// Auto is the range substituted for automatic bounds.
	Auto minmax.F64

	// Override, if non-nil, is used instead of Bounds and Auto,
	// and disables auto range adjustment and tick extension.
	Override *minmax.F64

	// Log is whether the axis is logarithmic.
	Log bool

	// AutoRange is the auto range mode, which determines whether
	// automatic bounds may be extended to the next tick.
	AutoRange AutoRanges

	// Adjuster adjusts automatic bounds; nil means AutoRange.
	Adjuster AutoRangeAdjuster

	// Ticker generates the ticks; nil means [ticks.Numeric].
	Ticker ticks.Ticker

	// MajorNumber and MinorNumber are the tick counts to aim for.
	MajorNumber, MinorNumber int

	// ManualTicks, if non-empty, replace the generated major ticks.
	ManualTicks []float64
}

// Resolution is the result of resolving an axis range.
type Resolution struct {
	// Range is the plotted range in the requested direction:
	// Min > Max when the axis is inverted. Min != Max always.
	Range minmax.F64

	// Inverted is whether the requested bounds were reversed.
	Inverted bool

	// Ticks are the tick values within Range.
	Ticks Ticks
}

// Resolve converts the requested bounds into the plotted range and
// computes its ticks. Zero-width, reversed and non-positive log
// ranges are corrected rather than reported.
func Resolve(req *Request) Resolution {
	var rng minmax.F64
	if req.Override != nil {
		rng = *req.Override
	} else {
		rng = req.Bounds.Range(req.Auto)
	}

	if degenerate(rng) {
		widen(&rng)
	}

	rng, inverted := rng.Sorted()

	if req.Log {
		rng.Min = math.Max(rng.Min, logEpsilon)
		rng.Max = math.Max(rng.Max, logEpsilon)
		if rng.Min == rng.Max {
			rng.Max = rng.Min * 2
		}
	}

	autoMin := req.Override == nil && !req.Bounds.FixMin
	autoMax := req.Override == nil && !req.Bounds.FixMax
	if inverted {
		autoMin, autoMax = autoMax, autoMin
	}

	adj := req.Adjuster
	if adj == nil {
		adj = req.AutoRange
	}
	padded := rng
	adj.AdjustPlottedRange(&padded, autoMin, autoMax, req.Log)
	if usableRange(padded, req.Log) {
		rng = padded
	}

	var tks Ticks
	rng, tks = computeTicks(req, rng, autoMin, autoMax)

	if inverted {
		rng.Swap()
	}
	return Resolution{Range: rng, Inverted: inverted, Ticks: tks}
}

// computeTicks runs the tick generator over the ordered range rng,
// returning the possibly extended range and the ticks.
func computeTicks(req *Request, rng minmax.F64, autoMin, autoMax bool) (minmax.F64, Ticks) {
	tk := req.Ticker
	if tk == nil {
		tk = ticks.Numeric{}
	}
	next := req.AutoRange == NextTick
	res := tk.Ticks(ticks.Request{
		Min:       rng.Min,
		Max:       rng.Max,
		Major:     req.MajorNumber,
		Minor:     req.MinorNumber,
		ExtendMin: next && autoMin,
		ExtendMax: next && autoMax,
		Log:       req.Log,
	})
	if ext := (minmax.F64{Min: res.Min, Max: res.Max}); usableRange(ext, req.Log) {
		rng = ext
	} else if res.Min != rng.Min || res.Max != rng.Max {
		res = tk.Ticks(ticks.Request{
			Min:   rng.Min,
			Max:   rng.Max,
			Major: req.MajorNumber,
			Minor: req.MinorNumber,
			Log:   req.Log,
		})
	}
	tks := Ticks{
		Major:      ticks.Filter(res.Major, rng.Min, rng.Max),
		Minor:      ticks.Filter(res.Minor, rng.Min, rng.Max),
		AutoFormat: res.AutoFormat,
	}
	if len(req.ManualTicks) > 0 {
		tks.Major = ticks.Filter(req.ManualTicks, rng.Min, rng.Max)
	}
	return rng, tks
}

// degenerate reports whether the range has zero width relative to
// its magnitude. Halves are compared so that the test cannot overflow.
func degenerate(rng minmax.F64) bool {
	if rng.Min == rng.Max {
		return true
	}
	lo, hi := rng.Min/2, rng.Max/2
	return math.Abs(lo-hi) < (math.Abs(lo)+math.Abs(hi))*degenerateTol
}

// widen gives a degenerate range a width of max(1, |Min|/10), moving
// Max up, or Min down when Max would overflow.
func widen(rng *minmax.F64) {
	w := math.Max(1, math.Abs(rng.Min)*0.1)
	hi := rng.Min + w
	switch {
	case !math.IsInf(hi, 0):
		rng.Max = hi
	case rng.Min < math.MaxFloat64:
		rng.Max = math.MaxFloat64
	default:
		rng.Max = rng.Min
		rng.Min -= w
	}
}

// usableRange reports whether an ordered range can be plotted.
func usableRange(rng minmax.F64, log bool) bool {
	if !rng.IsFinite() || !(rng.Min < rng.Max) {
		return false
	}
	return !log || rng.Min >= logEpsilon
}
