// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot3d

import (
	"math"
	"slices"
	"testing"
	"time"

	"cogentcore.org/axis3d/math32/minmax"
	"cogentcore.org/axis3d/plot3d/ticks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixed(mn, mx float64) minmax.Range64 {
	return minmax.Range64{FixMin: true, FixMax: true, Min: mn, Max: mx}
}

func newRequest(bounds minmax.Range64, auto minmax.F64) *Request {
	return &Request{
		Bounds:      bounds,
		Auto:        auto,
		AutoRange:   NextTick,
		Ticker:      ticks.Numeric{},
		MajorNumber: 6,
		MinorNumber: 20,
	}
}

func TestResolveExplicit(t *testing.T) {
	tests := []struct {
		lo, hi   float64
		inverted bool
	}{
		{0, 1, false},
		{5, -3, true},
		{1e-3, 2e6, false},
		{-10, -20, true},
		{-1e12, 3, false},
		{-1e308, 1e308, false},
		{math.MaxFloat64, -math.MaxFloat64, true},
	}
	for _, test := range tests {
		res := Resolve(newRequest(fixed(test.lo, test.hi), minmax.F64{}))
		assert.Equal(t, minmax.F64{Min: test.lo, Max: test.hi}, res.Range)
		assert.Equal(t, test.inverted, res.Inverted)
	}
}

func TestResolveDegenerate(t *testing.T) {
	tests := []struct {
		lo, hi, want float64
	}{
		{0, 0, 1},
		{5, 5, 6},
		{100, 100, 110},
		{-50, -50, -45},
		{1, 1 + 1e-9, 2},
	}
	for _, test := range tests {
		res := Resolve(newRequest(fixed(test.lo, test.hi), minmax.F64{}))
		assert.Equal(t, test.lo, res.Range.Min)
		assert.Equal(t, test.want, res.Range.Max)
		assert.Greater(t, res.Range.Range(), 0.0)
	}
}

func TestResolveLogClamp(t *testing.T) {
	req := newRequest(fixed(-5, 10), minmax.F64{})
	req.Log = true
	res := Resolve(req)
	assert.Equal(t, minmax.F64{Min: 1e-99, Max: 10}, res.Range)

	req = newRequest(fixed(-5, -1), minmax.F64{})
	req.Log = true
	res = Resolve(req)
	assert.Equal(t, minmax.F64{Min: 1e-99, Max: 2e-99}, res.Range)
}

func TestResolveNextTick(t *testing.T) {
	res := Resolve(newRequest(minmax.Range64{}, minmax.F64{Min: 0.3, Max: 9.7}))
	require.NotEmpty(t, res.Ticks.Major)
	assert.LessOrEqual(t, res.Range.Min, 0.3)
	assert.GreaterOrEqual(t, res.Range.Max, 9.7)
	assert.InDelta(t, res.Range.Min, res.Ticks.Major[0], 1e-9)
	assert.InDelta(t, res.Range.Max, res.Ticks.Major[len(res.Ticks.Major)-1], 1e-9)

	// a fixed end is never moved
	res = Resolve(newRequest(minmax.Range64{FixMin: true, Min: 0.3}, minmax.F64{Min: 0, Max: 9.7}))
	assert.Equal(t, 0.3, res.Range.Min)
	assert.GreaterOrEqual(t, res.Range.Max, 9.7)

	// inverted automatic ranges are extended and then restored
	res = Resolve(newRequest(minmax.Range64{}, minmax.F64{Min: 9.7, Max: 0.3}))
	assert.True(t, res.Inverted)
	assert.GreaterOrEqual(t, res.Range.Min, 9.7)
	assert.LessOrEqual(t, res.Range.Max, 0.3)

	// a fixed end stays fixed when the range is inverted
	res = Resolve(newRequest(minmax.Range64{FixMax: true, Max: 0.3}, minmax.F64{Min: 9.7, Max: 5}))
	assert.True(t, res.Inverted)
	assert.GreaterOrEqual(t, res.Range.Min, 9.7)
	assert.Equal(t, 0.3, res.Range.Max)
}

func TestResolveAutoRanges(t *testing.T) {
	req := newRequest(minmax.Range64{}, minmax.F64{Min: 0.3, Max: 9.7})
	req.AutoRange = Exact
	assert.Equal(t, minmax.F64{Min: 0.3, Max: 9.7}, Resolve(req).Range)

	req = newRequest(minmax.Range64{}, minmax.F64{Min: 0, Max: 10})
	req.AutoRange = Plus10
	res := Resolve(req)
	assert.InDelta(t, -1, res.Range.Min, 1e-12)
	assert.InDelta(t, 11, res.Range.Max, 1e-12)

	req = newRequest(minmax.Range64{FixMin: true}, minmax.F64{Min: 5, Max: 10})
	req.AutoRange = Plus10
	res = Resolve(req)
	assert.Equal(t, 0.0, res.Range.Min)
	assert.InDelta(t, 11, res.Range.Max, 1e-12)

	req = newRequest(minmax.Range64{}, minmax.F64{Min: 1, Max: 100})
	req.AutoRange = Plus10
	req.Log = true
	res = Resolve(req)
	assert.InDelta(t, math.Pow(10, -0.2), res.Range.Min, 1e-12)
	assert.InDelta(t, 100*math.Pow(10, 0.2), res.Range.Max, 1e-9)
}

func TestResolveManualTicks(t *testing.T) {
	req := newRequest(fixed(0, 1), minmax.F64{})
	req.ManualTicks = []float64{0.5, 1.5, 99}
	res := Resolve(req)
	assert.Equal(t, []float64{0.5}, res.Ticks.Major)
	assert.NotEmpty(t, res.Ticks.Minor)
	assert.Equal(t, minmax.F64{Min: 0, Max: 1}, res.Range)

	req.ManualTicks = []float64{7}
	res = Resolve(req)
	assert.NotNil(t, res.Ticks.Major)
	assert.Empty(t, res.Ticks.Major)

	// inverted axes filter against the ordered range
	req = newRequest(fixed(1, 0), minmax.F64{})
	req.ManualTicks = []float64{1, 0.25}
	assert.Equal(t, []float64{0.25, 1}, Resolve(req).Ticks.Major)
}

func TestResolveOverride(t *testing.T) {
	req := newRequest(minmax.Range64{}, minmax.F64{Min: 0.3, Max: 9.7})
	req.Override = &minmax.F64{Min: 10, Max: 2}
	res := Resolve(req)
	assert.Equal(t, minmax.F64{Min: 10, Max: 2}, res.Range)
	assert.True(t, res.Inverted)
}

func TestResolveBadTicker(t *testing.T) {
	req := newRequest(fixed(0, 1), minmax.F64{})
	req.Ticker = ticks.TickerFunc(func(r ticks.Request) ticks.Result {
		return ticks.Result{
			Min:   math.NaN(),
			Max:   r.Max,
			Major: []float64{0, 0.5, 7},
			Minor: []float64{-3, 0.25, 2},
		}
	})
	res := Resolve(req)
	assert.Equal(t, minmax.F64{Min: 0, Max: 1}, res.Range)
	assert.Equal(t, []float64{0, 0.5}, res.Ticks.Major)
	assert.Equal(t, []float64{0.25}, res.Ticks.Minor)
	assertTicksWithin(t, res)
}

func TestResolveLargeMagnitudes(t *testing.T) {
	tests := []struct {
		name  string
		req   *Request
		exact bool
	}{
		{"explicit 1e308", newRequest(fixed(-1e308, 1e308), minmax.F64{}), true},
		{"explicit max", newRequest(fixed(-math.MaxFloat64, math.MaxFloat64), minmax.F64{}), true},
		{"degenerate 1.7e308", newRequest(fixed(1.7e308, 1.7e308), minmax.F64{}), false},
		{"degenerate max", newRequest(fixed(math.MaxFloat64, math.MaxFloat64), minmax.F64{}), false},
		{"degenerate -max", newRequest(fixed(-math.MaxFloat64, -math.MaxFloat64), minmax.F64{}), false},
		{"log next tick", logRequest(minmax.F64{Min: 1, Max: 1e308}), false},
		{"log full", logRequest(minmax.F64{Min: 1e-300, Max: math.MaxFloat64}), false},
		{"next tick positive", newRequest(minmax.Range64{}, minmax.F64{Min: 0, Max: 1.7e308}), false},
		{"next tick symmetric", newRequest(minmax.Range64{}, minmax.F64{Min: -1.7e308, Max: 1.7e308}), false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			done := make(chan Resolution, 1)
			go func() { done <- Resolve(test.req) }()
			var res Resolution
			select {
			case res = <-done:
			case <-time.After(5 * time.Second):
				t.Fatal("Resolve did not return")
			}
			assert.True(t, res.Range.IsFinite(), "range %v", res.Range)
			assert.NotEqual(t, res.Range.Min, res.Range.Max)
			if test.exact {
				assert.Equal(t, test.req.Bounds.Min, res.Range.Min)
				assert.Equal(t, test.req.Bounds.Max, res.Range.Max)
			}
			assertTicksWithin(t, res)
		})
	}
}

func logRequest(auto minmax.F64) *Request {
	req := newRequest(minmax.Range64{}, auto)
	req.Log = true
	return req
}

// assertTicksWithin checks that every tick lies inside the plotted range.
func assertTicksWithin(t *testing.T, res Resolution) {
	t.Helper()
	rng, _ := res.Range.Sorted()
	for _, v := range append(slices.Clone(res.Ticks.Major), res.Ticks.Minor...) {
		assert.True(t, v >= rng.Min && v <= rng.Max, "tick %g outside %v", v, rng)
	}
}

func TestResolveAdjuster(t *testing.T) {
	var gotMin, gotMax bool
	req := newRequest(minmax.Range64{FixMax: true, Max: 4}, minmax.F64{Min: 1, Max: 2})
	req.AutoRange = Exact
	req.Adjuster = adjusterFunc(func(rng *minmax.F64, adjustMin, adjustMax, log bool) {
		gotMin, gotMax = adjustMin, adjustMax
		assert.True(t, rng.Min < rng.Max)
	})
	Resolve(req)
	assert.True(t, gotMin)
	assert.False(t, gotMax)
}

type adjusterFunc func(rng *minmax.F64, adjustMin, adjustMax, log bool)

func (f adjusterFunc) AdjustPlottedRange(rng *minmax.F64, adjustMin, adjustMax, log bool) {
	f(rng, adjustMin, adjustMax, log)
}

func TestTickerFor(t *testing.T) {
	assert.Equal(t, ticks.Numeric{}, TickerFor(Numeric))
	assert.Equal(t, ticks.Date{}, TickerFor(DateTime))
	assert.Equal(t, ticks.Numeric{}, TickerFor(Labels))
	assert.Equal(t, ticks.Numeric{}, TickerFor(Modes(42)))
}
