// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cogentcore.org/axis3d/math32/minmax"
	"cogentcore.org/axis3d/plot3d"
	"cogentcore.org/axis3d/plot3d/axisfile"
	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// axisReport is the printed layout of one axis.
type axisReport struct {
	Label      string        `yaml:"label,omitempty"`
	Direction  plot3d.Dims   `yaml:"direction"`
	Range      [2]float64    `yaml:"range,flow"`
	Inverted   bool          `yaml:"inverted,omitempty"`
	MajorTicks []float64     `yaml:"majorTicks,flow"`
	MinorTicks int           `yaml:"minorTicks"`
	Labels     []labelReport `yaml:"labels,omitempty"`
	Faces      [][2]float64  `yaml:"faces,flow"`
	LineStarts []float64     `yaml:"lineStarts,flow,omitempty"`
	LineEnds   []float64     `yaml:"lineEnds,flow,omitempty"`
	Segments   string        `yaml:"segments"`
}

type labelReport struct {
	Text string     `yaml:"text"`
	At   [3]float64 `yaml:"at,flow"`
}

// layoutAxes lays out a fresh copy of each config, with data as
// the extent used for automatic bounds.
func layoutAxes(cfgs []plot3d.Config, data *minmax.F64, changeset int64) []axisReport {
	reps := make([]axisReport, len(cfgs))
	for i := range cfgs {
		ax := plot3d.NewAxis(axisfile.Clone(&cfgs[i]))
		ax.SetAutoRange(data)
		ly := ax.Layout(changeset)
		res := ax.Resolution(changeset)

		rep := axisReport{
			Label:      ax.Config.Label,
			Direction:  ly.Direction,
			Range:      [2]float64{ly.Range.Min, ly.Range.Max},
			Inverted:   res.Inverted,
			MajorTicks: res.Ticks.Major,
			MinorTicks: len(res.Ticks.Minor),
		}
		for _, f := range ly.Faces {
			rep.Faces = append(rep.Faces, [2]float64{f.P1, f.P2})
		}
		for _, lb := range ly.Labels {
			at := plot3d.AxisPoint(ly.Direction, lb.Frac, ly.Faces[0])
			rep.Labels = append(rep.Labels, labelReport{Text: lb.Text, At: [3]float64{at.X, at.Y, at.Z}})
		}
		rep.LineStarts, rep.LineEnds = plot3d.SegmentPoints(ly.Line)
		nseg := len(ly.Line) + len(ly.MajorSegments) + len(ly.MinorSegments)
		rep.Segments = humanize.Comma(int64(nseg)) + " line segments"
		reps[i] = rep
	}
	return reps
}

func marshalReport(reps []axisReport) ([]byte, error) {
	return yaml.Marshal(map[string][]axisReport{"axis": reps})
}
