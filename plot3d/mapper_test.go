// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot3d

import (
	"math"
	"sort"
	"testing"

	"cogentcore.org/axis3d/math32/minmax"
	"github.com/stretchr/testify/assert"
)

const tol = 1e-12

func TestMapperLinear(t *testing.T) {
	mp := &Mapper{Range: minmax.F64{Min: 0, Max: 10}, Scale: 1, Lower: 0.2, Upper: 0.8}
	assert.InDelta(t, 0.2, mp.Map(0), tol)
	assert.InDelta(t, 0.8, mp.Map(10), tol)
	assert.InDelta(t, 0.5, mp.Map(5), tol)
	assert.InDeltaSlice(t, []float64{0.2, 0.5, 0.8}, mp.ToLogical([]float64{0, 5, 10}), tol)

	mp.Scale = 2
	assert.InDelta(t, 0.8, mp.Map(5), tol)

	mp.Scale = 1
	mp.Range = minmax.F64{Min: 10, Max: 0}
	assert.InDelta(t, 0.2, mp.Map(10), tol)
	assert.InDelta(t, 0.8, mp.Map(0), tol)
}

func TestMapperLog(t *testing.T) {
	mp := &Mapper{Range: minmax.F64{Min: 1, Max: 1000}, Log: true, Scale: 1, Lower: 0.1, Upper: 0.9}
	assert.InDelta(t, 0.1, mp.Map(1), tol)
	assert.InDelta(t, 0.9, mp.Map(1000), tol)
	assert.InDelta(t, 0.1+0.8/3, mp.Map(10), tol)

	for _, rng := range []minmax.F64{{Min: 1e-5, Max: 3}, {Min: 0.5, Max: 0.7}, {Min: 1e-99, Max: 1e99}} {
		mp.Range = rng
		assert.InDelta(t, mp.Lower, mp.Map(rng.Min), tol)
		assert.InDelta(t, mp.Upper, mp.Map(rng.Max), tol)
	}

	mp.Range = minmax.F64{Min: 1, Max: 1000}
	for _, v := range []float64{0, -5, math.Inf(-1)} {
		got := mp.Map(v)
		assert.False(t, math.IsNaN(got))
		assert.Equal(t, mp.Map(1e-99), got)
	}
	assert.Equal(t, mp.Map(1e99), mp.Map(math.Inf(1)))
}

func TestMapperMonotonic(t *testing.T) {
	vals := []float64{-3, -1, 0, 1e-3, 0.5, 2, 7, 1e4, 1e9}
	for _, log := range []bool{false, true} {
		mp := &Mapper{Range: minmax.F64{Min: 0.01, Max: 100}, Log: log, Scale: 1, Lower: 0, Upper: 1}
		assert.True(t, sort.Float64sAreSorted(mp.ToLogical(vals)))
	}
}
