// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout(t *testing.T) {
	ax := NewAxis(*NewConfig())
	ly := ax.Layout(0)

	assert.Equal(t, X, ly.Direction)
	require.Len(t, ly.Faces, 4)
	require.Len(t, ly.Line, 4)
	for _, s := range ly.Line {
		assert.Equal(t, 1.0, dist(s.Start, s.End))
		assert.Equal(t, 0.0, s.Start.X)
	}

	nmaj := len(ax.Ticks(0).Major)
	assert.Equal(t, 6, nmaj)
	assert.Len(t, ly.Major, 4*nmaj)
	assert.Len(t, ly.MajorSegments, 8*nmaj)
	assert.Len(t, ly.MinorSegments, 2*len(ly.Minor))

	require.Len(t, ly.Labels, nmaj)
	var texts []string
	for _, lb := range ly.Labels {
		texts = append(texts, lb.Text)
	}
	assert.Equal(t, []string{"0", "0.2", "0.4", "0.6", "0.8", "1"}, texts)
	assert.InDelta(t, 1.0, ly.Labels[5].Frac, tol)

	// major ticks are 20 thousandths of the box long
	m := ly.Major[0]
	assert.InDelta(t, 0.02, dist(m.End1, m.OnAxis), tol)
}

func TestLayoutHidden(t *testing.T) {
	cfg := NewConfig()
	cfg.Line.Hide = true
	cfg.MajorTicks.Hide = true
	cfg.MinorTicks.Hide = true
	cfg.TickLabels.Hide = true
	cfg.OtherPosition1 = 0.5
	cfg.OtherPosition2 = 0.5
	ly := NewAxis(*cfg).Layout(0)
	assert.Nil(t, ly.Line)
	assert.Nil(t, ly.MajorSegments)
	assert.Nil(t, ly.MinorSegments)
	assert.Nil(t, ly.Labels)
	assert.Len(t, ly.LineCoords, 1)
	assert.NotEmpty(t, ly.Major)
}

func TestLayoutLabels(t *testing.T) {
	cfg := NewConfig()
	cfg.Min = Fix(0)
	cfg.Max = Fix(1)
	cfg.TickLabels.Scale = 100
	cfg.TickLabels.Format = "%.0f%%"
	ly := NewAxis(*cfg).Layout(0)
	require.NotEmpty(t, ly.Labels)
	assert.Equal(t, "0%", ly.Labels[0].Text)
	assert.Equal(t, "100%", ly.Labels[len(ly.Labels)-1].Text)

	cfg.MajorTicks.ManualTicks = []float64{0.25, 0.75}
	cfg.TickLabels.Format = ""
	cfg.TickLabels.Scale = 1
	ly = NewAxis(*cfg).Layout(0)
	require.Len(t, ly.Labels, 2)
	assert.Equal(t, "0.25", ly.Labels[0].Text)
	assert.InDelta(t, 0.75, ly.Labels[1].Frac, tol)
}
