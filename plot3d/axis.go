// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot3d computes the range, ticks and geometry of the axes
// of a 3D graph, in logical coordinates of the unit box.
//
// An [Axis] resolves its requested bounds into a plotted range,
// generates ticks with a [ticks.Ticker], maps data values into the
// [0,1] box, and lays out its line and ticks on every mirrored face.
// Results are cached against a changeset supplied by the owning
// [Document], and recomputed when it advances.
package plot3d

import (
	"log/slog"

	"cogentcore.org/axis3d/math32/minmax"
	"cogentcore.org/axis3d/plot3d/ticks"
)

// Axis manages the range, ticks and layout of one 3D axis.
// An Axis is not safe for concurrent use.
type Axis struct {

	// Config has the axis settings.
	Config Config

	// Ticker, if set, overrides the tick generator chosen by Config.Mode.
	Ticker ticks.Ticker

	// Adjuster, if set, overrides Config.AutoRange for adjusting
	// automatic bounds.
	Adjuster AutoRangeAdjuster

	// autoRange is the range used for automatic bounds.
	autoRange minmax.F64

	// changeset is the document changeset the cache was computed at.
	changeset int64

	// res is the cached resolution.
	res Resolution
}

// NewAxis returns a new axis with the given settings.
func NewAxis(cfg Config) *Axis {
	ax := &Axis{Config: cfg, changeset: -1}
	ax.SetAutoRange(nil)
	return ax
}

// SetAutoRange sets the extent of the data, used for automatic bounds.
// It is scaled by the data scale; on log axes the minimum is kept
// positive. A nil range sets the default of 0 to 1 (0.01 to 1 on
// log axes).
func (ax *Axis) SetAutoRange(data *minmax.F64) {
	switch {
	case data != nil:
		ax.autoRange = data.Scale(ax.Config.DataScale)
		if ax.Config.Log {
			ax.autoRange.Min = max(logEpsilon, ax.autoRange.Min)
		}
	case ax.Config.Log:
		ax.autoRange = minmax.F64{Min: 1e-2, Max: 1}
	default:
		ax.autoRange = minmax.F64{Min: 0, Max: 1}
	}
}

// AutoRange returns the range used for automatic bounds.
func (ax *Axis) AutoRange() minmax.F64 {
	return ax.autoRange
}

// UsesAutoRange returns whether any of the bounds are automatic.
func (ax *Axis) UsesAutoRange() bool {
	return ax.Config.Bounds().IsAuto()
}

// request returns the resolve request for the current settings.
func (ax *Axis) request(override *minmax.F64) *Request {
	c := &ax.Config
	tk := ax.Ticker
	if tk == nil {
		tk = TickerFor(c.Mode)
	}
	return &Request{
		Bounds:      c.Bounds(),
		Auto:        ax.autoRange,
		Override:    override,
		Log:         c.Log,
		AutoRange:   c.AutoRange,
		Adjuster:    ax.Adjuster,
		Ticker:      tk,
		MajorNumber: c.MajorTicks.Number,
		MinorNumber: c.MinorTicks.Number,
		ManualTicks: c.MajorTicks.ManualTicks,
	}
}

// ComputePlottedRange resolves the plotted range and ticks, unless they
// were already computed at the given changeset and force is false.
// A non-nil override is plotted instead of the configured bounds.
func (ax *Axis) ComputePlottedRange(changeset int64, force bool, override *minmax.F64) {
	if ax.changeset == changeset && !force {
		return
	}
	ax.res = Resolve(ax.request(override))
	ax.changeset = changeset
	slog.Debug("plot3d: computed axis range", "direction", ax.Config.Direction,
		"min", ax.res.Range.Min, "max", ax.res.Range.Max,
		"majorTicks", len(ax.res.Ticks.Major), "changeset", changeset)
}

// PlottedRange returns the range plotted by the axis; Min > Max
// when the axis is inverted.
func (ax *Axis) PlottedRange(changeset int64) minmax.F64 {
	ax.ComputePlottedRange(changeset, false, nil)
	return ax.res.Range
}

// Ticks returns a copy of the major and minor ticks of the axis.
func (ax *Axis) Ticks(changeset int64) Ticks {
	ax.ComputePlottedRange(changeset, false, nil)
	return ax.res.Ticks.clone()
}

// Resolution returns a copy of the resolution of the axis.
func (ax *Axis) Resolution(changeset int64) Resolution {
	ax.ComputePlottedRange(changeset, false, nil)
	res := ax.res
	res.Ticks = res.Ticks.clone()
	return res
}

// Mapper returns the mapper from data values to logical coordinates.
func (ax *Axis) Mapper(changeset int64) *Mapper {
	ax.ComputePlottedRange(changeset, false, nil)
	return &Mapper{
		Range: ax.res.Range,
		Log:   ax.Config.Log,
		Scale: ax.Config.DataScale,
		Lower: ax.Config.LowerPosition,
		Upper: ax.Config.UpperPosition,
	}
}

// DataToLogical returns the logical coordinates of the data values.
func (ax *Axis) DataToLogical(changeset int64, vals []float64) []float64 {
	return ax.Mapper(changeset).ToLogical(vals)
}

// Faces returns the faces the axis is drawn on.
func (ax *Axis) Faces() []Face {
	c := &ax.Config
	return MirrorFaces(c.OtherPosition1, c.OtherPosition2, c.AutoMirror)
}
