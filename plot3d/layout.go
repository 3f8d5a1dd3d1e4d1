// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot3d

import (
	"strings"

	"cogentcore.org/axis3d/math32/minmax"
	"cogentcore.org/axis3d/plot3d/ticks"
)

// tickLengthScale converts tick lengths in settings to logical units.
const tickLengthScale = 1e-3

// TickLabel is a tick label to be placed by the renderer.
type TickLabel struct {
	// Value is the tick value.
	Value float64

	// Frac is the logical position of the tick along the axis.
	Frac float64

	// Text is the formatted label.
	Text string
}

// Layout is the geometry of an axis in logical coordinates,
// ready to be handed to a renderer.
type Layout struct {
	// Direction is the dimension the axis runs along.
	Direction Dims

	// Range is the plotted range.
	Range minmax.F64

	// Faces are the faces the axis is drawn on.
	Faces []Face

	// LineCoords are the axis lines on every face, which tick
	// labels are attached to even when the line is hidden.
	LineCoords []Segment

	// Line are the axis line segments to draw; nil if hidden.
	Line []Segment

	// Major and Minor are the tick marks.
	Major, Minor []TickMark

	// MajorSegments and MinorSegments are the tick segments
	// to draw; nil if hidden.
	MajorSegments, MinorSegments []Segment

	// Labels are the major tick labels; nil if hidden.
	Labels []TickLabel
}

// Layout computes the geometry of the axis line, ticks and labels.
func (ax *Axis) Layout(changeset int64) *Layout {
	c := &ax.Config
	mp := ax.Mapper(changeset)
	tks := ax.res.Ticks
	faces := ax.Faces()
	dir := c.Direction

	ly := &Layout{
		Direction:  dir,
		Range:      ax.res.Range,
		Faces:      faces,
		LineCoords: AxisLineSegments(dir, c.LowerPosition, c.UpperPosition, faces),
	}
	if !c.Line.Hide {
		ly.Line = ly.LineCoords
	}

	majFracs := mp.ToLogical(tks.Major)
	ly.Major = TickMarks(dir, majFracs, c.MajorTicks.Length*tickLengthScale, faces)
	if !c.MajorTicks.Hide {
		ly.MajorSegments = TickSegments(ly.Major)
	}
	ly.Minor = TickMarks(dir, mp.ToLogical(tks.Minor), c.MinorTicks.Length*tickLengthScale, faces)
	if !c.MinorTicks.Hide {
		ly.MinorSegments = TickSegments(ly.Minor)
	}

	if !c.TickLabels.Hide {
		format := c.TickLabels.Format
		if format == "" || strings.EqualFold(format, "auto") {
			format = tks.AutoFormat
		}
		texts := ticks.FormatAll(tks.Major, format, c.TickLabels.Scale)
		ly.Labels = make([]TickLabel, len(tks.Major))
		for i, v := range tks.Major {
			ly.Labels[i] = TickLabel{Value: v, Frac: majFracs[i], Text: texts[i]}
		}
	}
	return ly
}
