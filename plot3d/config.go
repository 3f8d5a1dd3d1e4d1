// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot3d

import (
	"fmt"
	"math"

	"cogentcore.org/axis3d/base/errors"
	"cogentcore.org/axis3d/math32/minmax"
)

// Config holds all of the settings of one 3D axis. It is treated as
// immutable for the duration of a layout pass.
type Config struct {

	// Label is the axis label text.
	Label string `toml:"label" yaml:"label"`

	// Min is the minimum value of the axis, or automatic.
	Min Bound `toml:"min" yaml:"min"`

	// Max is the maximum value of the axis, or automatic.
	Max Bound `toml:"max" yaml:"max"`

	// Log is whether the axis is logarithmic.
	Log bool `toml:"log" yaml:"log"`

	// AutoRange is how automatic bounds are derived from the data.
	AutoRange AutoRanges `toml:"autoRange" yaml:"autoRange"`

	// Mode is the type of ticks shown on the axis.
	Mode Modes `toml:"mode" yaml:"mode"`

	// AutoMirror places copies of the axis on the opposite
	// sides of the graph when it lies on the box boundary.
	AutoMirror bool `toml:"autoMirror" yaml:"autoMirror"`

	// DataScale scales the data plotted by this factor.
	DataScale float64 `toml:"dataScale" yaml:"dataScale"`

	// Direction is the dimension of the box the axis runs along.
	Direction Dims `toml:"direction" yaml:"direction"`

	// LowerPosition is the fractional position of the lower end of the axis on the graph.
	LowerPosition float64 `toml:"lowerPosition" yaml:"lowerPosition"`

	// UpperPosition is the fractional position of the upper end of the axis on the graph.
	UpperPosition float64 `toml:"upperPosition" yaml:"upperPosition"`

	// OtherPosition1 is the fractional position of the axis in
	// its first perpendicular direction.
	OtherPosition1 float64 `toml:"otherPosition1" yaml:"otherPosition1"`

	// OtherPosition2 is the fractional position of the axis in
	// its second perpendicular direction.
	OtherPosition2 float64 `toml:"otherPosition2" yaml:"otherPosition2"`

	// Line has the axis line settings.
	Line LineStyle `toml:"line" yaml:"line"`

	// MajorTicks has the major tick settings.
	MajorTicks MajorTickStyle `toml:"majorTicks" yaml:"majorTicks"`

	// MinorTicks has the minor tick settings.
	MinorTicks TickStyle `toml:"minorTicks" yaml:"minorTicks"`

	// TickLabels has the tick label settings.
	TickLabels TickLabelStyle `toml:"tickLabels" yaml:"tickLabels"`
}

// LineStyle has the settings for the axis line.
type LineStyle struct {
	// Hide turns off drawing of the line.
	Hide bool `toml:"hide" yaml:"hide"`
}

// TickStyle has the settings for one set of ticks.
type TickStyle struct {
	// Hide turns off drawing of the ticks.
	Hide bool `toml:"hide" yaml:"hide"`

	// Length is the length of the ticks, in thousandths of the graph box.
	Length float64 `toml:"length" yaml:"length"`

	// Number is the number of ticks to aim for.
	Number int `toml:"number" yaml:"number"`
}

// MajorTickStyle has the settings for major ticks.
type MajorTickStyle struct {
	TickStyle `yaml:",inline"`

	// ManualTicks is a list of tick values overriding the generated ones.
	ManualTicks []float64 `toml:"manualTicks,omitempty" yaml:"manualTicks,omitempty"`
}

// TickLabelStyle has the settings for tick labels.
type TickLabelStyle struct {
	// Hide turns off tick labels.
	Hide bool `toml:"hide" yaml:"hide"`

	// Format is the label format, or "Auto" to use the format
	// suggested by the tick generator. See [ticks.Format].
	Format string `toml:"format" yaml:"format"`

	// Scale multiplies the tick values shown in labels.
	Scale float64 `toml:"scale" yaml:"scale"`
}

// NewConfig returns a new Config with defaults applied.
func NewConfig() *Config {
	c := &Config{}
	c.Defaults()
	return c
}

func (c *Config) Defaults() {
	c.Min = Auto()
	c.Max = Auto()
	c.AutoRange = NextTick
	c.Mode = Numeric
	c.AutoMirror = true
	c.DataScale = 1
	c.Direction = X
	c.LowerPosition = 0
	c.UpperPosition = 1
	c.MajorTicks.Length = 20
	c.MajorTicks.Number = 6
	c.MinorTicks.Length = 10
	c.MinorTicks.Number = 20
	c.TickLabels.Format = "Auto"
	c.TickLabels.Scale = 1
}

// Bounds returns the Min and Max bounds as a [minmax.Range64].
func (c *Config) Bounds() minmax.Range64 {
	var rr minmax.Range64
	if c.Min.Fixed {
		rr.SetMin(c.Min.Value)
	}
	if c.Max.Fixed {
		rr.SetMax(c.Max.Value)
	}
	return rr
}

// Validate returns an error describing every setting that is out of range.
func (c *Config) Validate() error {
	var errs []error
	finite := func(name string, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("plot3d: %s must be finite, not %g", name, v))
		}
	}
	finite("min", c.Min.Value)
	finite("max", c.Max.Value)
	finite("dataScale", c.DataScale)
	finite("lowerPosition", c.LowerPosition)
	finite("upperPosition", c.UpperPosition)
	finite("otherPosition1", c.OtherPosition1)
	finite("otherPosition2", c.OtherPosition2)
	if !(c.DataScale > 0) {
		errs = append(errs, fmt.Errorf("plot3d: dataScale must be positive, not %g", c.DataScale))
	}
	if !c.Direction.IsValid() {
		errs = append(errs, fmt.Errorf("plot3d: invalid direction %d", c.Direction))
	}
	if !c.Mode.IsValid() {
		errs = append(errs, fmt.Errorf("plot3d: invalid mode %d", c.Mode))
	}
	if !c.AutoRange.IsValid() {
		errs = append(errs, fmt.Errorf("plot3d: invalid autoRange %d", c.AutoRange))
	}
	if c.MajorTicks.Number < 1 || c.MinorTicks.Number < 1 {
		errs = append(errs, errors.New("plot3d: tick numbers must be at least 1"))
	}
	if c.MajorTicks.Length < 0 || c.MinorTicks.Length < 0 {
		errs = append(errs, errors.New("plot3d: tick lengths must not be negative"))
	}
	return errors.Join(errs...)
}

// String returns a short description of the axis range.
func (c *Config) String() string {
	s := fmt.Sprintf("range %s to %s", c.Min, c.Max)
	if c.Log {
		s += " (log)"
	}
	return s
}
