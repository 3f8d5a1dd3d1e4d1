// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import "math"

// NumericFormat is the label format suggested for numeric ticks.
const NumericFormat = "%.12g"

// Numeric generates "nice" ticks for numeric axes. Linear ranges use
// the Talbot, Lin and Hanrahan labelling search; logarithmic ranges
// spanning at least a decade get ticks at powers of ten.
type Numeric struct{}

func (Numeric) Ticks(req Request) Result {
	req = req.sanitize()
	if req.Log {
		return logTicks(req)
	}
	return linearTicks(req)
}

func linearTicks(req Request) Result {
	lo, hi := req.Min, req.Max
	containment := free
	if req.ExtendMin || req.ExtendMax {
		containment = containData
	}
	vals, step := talbotLinHanrahan(lo, hi, req.Major, containment)
	if n := len(vals); n >= 2 {
		if req.ExtendMin && vals[0] < lo && !math.IsInf(vals[0], 0) {
			lo = vals[0]
		}
		if req.ExtendMax && vals[n-1] > hi && !math.IsInf(vals[n-1], 0) {
			hi = vals[n-1]
		}
	}
	if step <= 0 {
		step = hi - lo
	}
	for i, v := range vals {
		if math.Abs(v) < step*1e-10 {
			vals[i] = 0
		}
	}
	return Result{
		Min:        lo,
		Max:        hi,
		Major:      within(vals, lo, hi),
		Minor:      minorTicks(lo, hi, step, req.Minor),
		AutoFormat: NumericFormat,
	}
}

// minorDivisors are the ways a major step is split into minor steps.
var minorDivisors = []float64{1, 2, 4, 5, 10, 20, 25, 50, 100}

// minorTicks returns minor ticks in [lo, hi] at a subdivision of
// the major step giving a count closest to want.
func minorTicks(lo, hi, step float64, want int) []float64 {
	if step <= 0 {
		return []float64{}
	}
	best, bestDiff := minorDivisors[0], math.Inf(1)
	for _, d := range minorDivisors {
		n := (hi/2 - lo/2) / (step / d) * 2
		if diff := math.Abs(n - float64(want)); diff < bestDiff {
			best, bestDiff = d, diff
		}
	}
	_, _, minor := stepTicks(lo, hi, step/best, false, false)
	if minor == nil {
		minor = []float64{}
	}
	return minor
}

func logTicks(req Request) Result {
	lo, hi := max(req.Min, LogMin), max(req.Max, LogMin)
	llo, lhi := math.Log10(lo), math.Log10(hi)
	if lhi-llo < 1 {
		return logLinearTicks(req, lo, hi)
	}

	k := math.Max(1, math.Ceil((lhi-llo)/float64(req.Major)))
	sl := (lhi - llo) * 1e-10
	e0 := math.Ceil((llo-sl)/k) * k
	e1 := math.Floor((lhi+sl)/k) * k
	if req.ExtendMin {
		e0 = math.Floor((llo+sl)/k) * k
		lo = max(math.Pow(10, e0), LogMin)
	}
	if req.ExtendMax {
		// stay below the largest finite power of ten
		if e := math.Ceil((lhi-sl)/k) * k; !math.IsInf(math.Pow(10, e), 0) {
			e1 = e
			hi = math.Pow(10, e)
		}
	}

	var major []float64
	for e := e0; e <= e1; e += k {
		major = append(major, math.Pow(10, e))
	}

	var minor []float64
	d0, d1 := math.Floor(math.Log10(lo)), math.Ceil(math.Log10(hi))
	for e := d0; e <= d1 && !math.IsInf(d1, 0); e++ {
		dec := math.Pow(10, e)
		if math.IsInf(dec, 0) {
			break
		}
		if k > 1 {
			minor = append(minor, dec)
			continue
		}
		for m := 1.0; m <= 9; m++ {
			minor = append(minor, m*dec)
		}
	}
	return Result{
		Min:        lo,
		Max:        hi,
		Major:      logWithin(major, lo, hi),
		Minor:      logWithin(minor, lo, hi),
		AutoFormat: NumericFormat,
	}
}

// logLinearTicks places linear ticks on a log axis spanning less
// than a decade, never extending the range down to zero or below.
func logLinearTicks(req Request, lo, hi float64) Result {
	req.Min, req.Max = lo, hi
	res := linearTicks(req)
	if res.Min <= 0 {
		res.Min = lo
		res.Major = within(res.Major, res.Min, res.Max)
		res.Minor = within(res.Minor, res.Min, res.Max)
	}
	return res
}

// logWithin is [within] with a tolerance relative to the decade span.
func logWithin(vals []float64, lo, hi float64) []float64 {
	out := make([]float64, 0, len(vals))
	const rel = 1e-10
	for _, v := range vals {
		if math.IsInf(v, 0) || v < lo*(1-rel) || v > hi*(1+rel) {
			continue
		}
		out = append(out, min(max(v, lo), hi))
	}
	return out
}
