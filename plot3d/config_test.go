// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot3d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundText(t *testing.T) {
	var b Bound
	require.NoError(t, b.UnmarshalText([]byte("2.5")))
	assert.Equal(t, Fix(2.5), b)
	assert.Equal(t, "2.5", b.String())

	require.NoError(t, b.UnmarshalText([]byte(" AUTO ")))
	assert.Equal(t, Auto(), b)
	assert.Equal(t, "Auto", b.String())

	require.NoError(t, b.UnmarshalText([]byte("-1e3")))
	assert.Equal(t, Fix(-1000), b)

	assert.Error(t, b.UnmarshalText([]byte("lots")))
	assert.Error(t, b.UnmarshalText([]byte("NaN")))
	assert.Error(t, b.UnmarshalText([]byte("+Inf")))
	assert.Equal(t, Fix(-1000), b)

	txt, err := Fix(7).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "7", string(txt))
}

func TestEnumText(t *testing.T) {
	var d Dims
	require.NoError(t, d.UnmarshalText([]byte("Z")))
	assert.Equal(t, Z, d)
	assert.Equal(t, "z", d.String())
	assert.Error(t, d.UnmarshalText([]byte("w")))

	var m Modes
	require.NoError(t, m.UnmarshalText([]byte("DateTime")))
	assert.Equal(t, DateTime, m)

	var ar AutoRanges
	require.NoError(t, ar.UnmarshalText([]byte("+10%")))
	assert.Equal(t, Plus10, ar)
	txt, err := NextTick.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "next-tick", string(txt))
	assert.Equal(t, "7", AutoRanges(7).String())
}

func TestEnumValues(t *testing.T) {
	assert.Equal(t, []Dims{X, Y, Z}, X.Values())
	assert.Len(t, Numeric.Values(), int(ModesN))
	assert.Len(t, Exact.Strings(), int(AutoRangesN))
	assert.Equal(t, []string{"numeric", "datetime", "labels"}, Labels.Strings())

	strs := Z.Strings()
	strs[0] = "w"
	assert.Equal(t, "x", X.String())

	assert.True(t, Plus15.IsValid())
	assert.False(t, AutoRangesN.IsValid())
	assert.False(t, Dims(-1).IsValid())
	assert.False(t, ModesN.IsValid())

	var ar AutoRanges
	require.NoError(t, ar.SetString("NEXT-TICK"))
	assert.Equal(t, NextTick, ar)
	assert.Error(t, ar.SetString("+3%"))
}

func TestAutoRangesPercent(t *testing.T) {
	assert.Equal(t, 0.0, Exact.Percent())
	assert.Equal(t, 0.0, NextTick.Percent())
	assert.Equal(t, 2.0, Plus2.Percent())
	assert.Equal(t, 15.0, Plus15.Percent())
}

func TestConfigDefaults(t *testing.T) {
	c := NewConfig()
	assert.Equal(t, Auto(), c.Min)
	assert.Equal(t, NextTick, c.AutoRange)
	assert.True(t, c.AutoMirror)
	assert.Equal(t, 1.0, c.DataScale)
	assert.Equal(t, 6, c.MajorTicks.Number)
	assert.Equal(t, 20, c.MinorTicks.Number)
	assert.Equal(t, "Auto", c.TickLabels.Format)
	assert.True(t, c.Bounds().IsAuto())
	assert.NoError(t, c.Validate())
	assert.Equal(t, "range Auto to Auto", c.String())

	c.Min = Fix(1)
	c.Max = Fix(1000)
	c.Log = true
	assert.Equal(t, "range 1 to 1000 (log)", c.String())
	b := c.Bounds()
	assert.True(t, b.FixMin)
	assert.Equal(t, 1000.0, b.Max)
}

func TestConfigValidate(t *testing.T) {
	c := NewConfig()
	c.DataScale = 0
	c.LowerPosition = math.NaN()
	c.Direction = DimsN
	c.MajorTicks.Number = 0
	c.MinorTicks.Length = -1
	err := c.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "dataScale must be positive")
	assert.Contains(t, msg, "lowerPosition must be finite")
	assert.Contains(t, msg, "invalid direction")
	assert.Contains(t, msg, "tick numbers")
	assert.Contains(t, msg, "tick lengths")
}
