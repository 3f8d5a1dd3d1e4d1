// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"math"
	"time"
)

// dateInterval is one candidate spacing between date ticks:
// either a fixed number of seconds or a number of calendar months.
type dateInterval struct {
	secs   float64
	months int
	layout string
}

const (
	minute = 60
	hour   = 60 * minute
	day    = 24 * hour

	// monthSecs is the mean length of a month, used only to
	// estimate tick counts for calendar intervals.
	monthSecs = 30.436875 * day

	// maxDateSecs bounds the times given calendar ticks, about
	// thirty million years either side of 1970.
	maxDateSecs = 1e15
)

var dateIntervals = []dateInterval{
	{secs: 1, layout: "15:04:05"},
	{secs: 2, layout: "15:04:05"},
	{secs: 5, layout: "15:04:05"},
	{secs: 10, layout: "15:04:05"},
	{secs: 15, layout: "15:04:05"},
	{secs: 30, layout: "15:04:05"},
	{secs: minute, layout: "15:04"},
	{secs: 2 * minute, layout: "15:04"},
	{secs: 5 * minute, layout: "15:04"},
	{secs: 10 * minute, layout: "15:04"},
	{secs: 15 * minute, layout: "15:04"},
	{secs: 30 * minute, layout: "15:04"},
	{secs: hour, layout: "2006-01-02 15:04"},
	{secs: 2 * hour, layout: "2006-01-02 15:04"},
	{secs: 3 * hour, layout: "2006-01-02 15:04"},
	{secs: 6 * hour, layout: "2006-01-02 15:04"},
	{secs: 12 * hour, layout: "2006-01-02 15:04"},
	{secs: day, layout: "2006-01-02"},
	{secs: 2 * day, layout: "2006-01-02"},
	{secs: 7 * day, layout: "2006-01-02"},
	{months: 1, layout: "2006-01"},
	{months: 2, layout: "2006-01"},
	{months: 3, layout: "2006-01"},
	{months: 6, layout: "2006-01"},
	{months: 12, layout: "2006"},
	{months: 24, layout: "2006"},
	{months: 60, layout: "2006"},
	{months: 120, layout: "2006"},
	{months: 240, layout: "2006"},
	{months: 600, layout: "2006"},
	{months: 1200, layout: "2006"},
}

// approxSecs returns the approximate length of the interval in seconds.
func (di dateInterval) approxSecs() float64 {
	if di.months > 0 {
		return float64(di.months) * monthSecs
	}
	return di.secs
}

// ticks returns the ticks of this interval inside [lo, hi],
// extending the ends onto ticks if requested.
func (di dateInterval) ticks(lo, hi float64, extMin, extMax bool) (float64, float64, []float64) {
	if di.months == 0 {
		return stepTicks(lo, hi, di.secs, extMin, extMax)
	}
	return monthTicks(lo, hi, di.months, extMin, extMax)
}

// Date generates ticks for axes holding Unix times in seconds, placed
// on round clock or calendar boundaries in UTC.
type Date struct{}

func (Date) Ticks(req Request) Result {
	req = req.sanitize()
	if !(math.Abs(req.Min) <= maxDateSecs && math.Abs(req.Max) <= maxDateSecs) {
		return linearTicks(req)
	}
	width := req.Max - req.Min
	mi := chooseInterval(width, req.Major)
	if mi < 0 {
		res := linearTicks(req)
		res.AutoFormat = "15:04:05.000"
		if width > dateIntervals[len(dateIntervals)-1].approxSecs()*float64(req.Major) {
			res.AutoFormat = "2006"
		}
		return res
	}
	major := dateIntervals[mi]
	lo, hi, mticks := major.ticks(req.Min, req.Max, req.ExtendMin, req.ExtendMax)

	ni := chooseInterval(hi-lo, req.Minor)
	if ni < 0 || ni > mi {
		ni = mi
	}
	_, _, nticks := dateIntervals[ni].ticks(lo, hi, false, false)
	if mticks == nil {
		mticks = []float64{}
	}
	if nticks == nil {
		nticks = []float64{}
	}
	return Result{
		Min:        lo,
		Max:        hi,
		Major:      mticks,
		Minor:      nticks,
		AutoFormat: major.layout,
	}
}

// chooseInterval returns the index of the smallest interval giving at
// most want steps over width, or -1 if the width is below one second
// per tick or beyond the largest interval.
func chooseInterval(width float64, want int) int {
	if width < float64(want) {
		return -1
	}
	for i, di := range dateIntervals {
		if width/di.approxSecs() <= float64(want) {
			return i
		}
	}
	return -1
}

// monthTicks returns ticks on the first of every months-th month
// (counted from year zero) inside [lo, hi].
func monthTicks(lo, hi float64, months int, extMin, extMax bool) (float64, float64, []float64) {
	t := time.Unix(int64(math.Floor(lo)), 0).UTC()
	idx := t.Year()*12 + int(t.Month()) - 1
	idx -= ((idx % months) + months) % months
	at := func(i int) float64 {
		return float64(time.Date(i/12, time.Month(i%12+1), 1, 0, 0, 0, 0, time.UTC).Unix())
	}
	if extMin {
		lo = at(idx)
	}
	ticks := []float64{}
	for i := idx; len(ticks) <= 10000; i += months {
		v := at(i)
		if v > hi {
			if extMax && (len(ticks) == 0 || ticks[len(ticks)-1] < hi) {
				hi = v
				ticks = append(ticks, v)
			}
			break
		}
		if v >= lo {
			ticks = append(ticks, v)
		}
	}
	return lo, hi, ticks
}
