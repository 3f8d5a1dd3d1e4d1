// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot3d

import (
	"fmt"
	"strconv"
	"strings"
)

var _DimsValues = []Dims{X, Y, Z}

var _DimsNameToValueMap = map[string]Dims{"x": 0, "y": 1, "z": 2}

var _DimsNames = []string{"x", "y", "z"}

// String returns the string representation of this Dims value.
func (i Dims) String() string {
	if i < 0 || int(i) >= len(_DimsNames) {
		return strconv.FormatInt(int64(i), 10)
	}
	return _DimsNames[i]
}

// SetString sets the Dims value from its string representation,
// and returns an error if the string is invalid.
func (i *Dims) SetString(s string) error {
	if val, ok := _DimsNameToValueMap[s]; ok {
		*i = val
		return nil
	}
	if val, ok := _DimsNameToValueMap[strings.ToLower(s)]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("plot3d: %q does not belong to Dims values", s)
}

// Values returns all possible values for the type Dims.
func (i Dims) Values() []Dims { return _DimsValues }

// Strings returns the string encodings of all possible values
// for the type Dims, in the same order as Values.
func (i Dims) Strings() []string {
	strs := make([]string, len(_DimsNames))
	copy(strs, _DimsNames)
	return strs
}

// IsValid returns whether the value is a valid option for type Dims.
func (i Dims) IsValid() bool {
	_, ok := _DimsNameToValueMap[i.String()]
	return ok
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Dims) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Dims) UnmarshalText(text []byte) error {
	return i.SetString(strings.TrimSpace(string(text)))
}

var _ModesValues = []Modes{Numeric, DateTime, Labels}

var _ModesNameToValueMap = map[string]Modes{"numeric": 0, "datetime": 1, "labels": 2}

var _ModesNames = []string{"numeric", "datetime", "labels"}

// String returns the string representation of this Modes value.
func (i Modes) String() string {
	if i < 0 || int(i) >= len(_ModesNames) {
		return strconv.FormatInt(int64(i), 10)
	}
	return _ModesNames[i]
}

// SetString sets the Modes value from its string representation,
// and returns an error if the string is invalid.
func (i *Modes) SetString(s string) error {
	if val, ok := _ModesNameToValueMap[s]; ok {
		*i = val
		return nil
	}
	if val, ok := _ModesNameToValueMap[strings.ToLower(s)]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("plot3d: %q does not belong to Modes values", s)
}

// Values returns all possible values for the type Modes.
func (i Modes) Values() []Modes { return _ModesValues }

// Strings returns the string encodings of all possible values
// for the type Modes, in the same order as Values.
func (i Modes) Strings() []string {
	strs := make([]string, len(_ModesNames))
	copy(strs, _ModesNames)
	return strs
}

// IsValid returns whether the value is a valid option for type Modes.
func (i Modes) IsValid() bool {
	_, ok := _ModesNameToValueMap[i.String()]
	return ok
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Modes) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Modes) UnmarshalText(text []byte) error {
	return i.SetString(strings.TrimSpace(string(text)))
}

var _AutoRangesValues = []AutoRanges{Exact, NextTick, Plus2, Plus5, Plus10, Plus15}

var _AutoRangesNameToValueMap = map[string]AutoRanges{"exact": 0, "next-tick": 1, "+2%": 2, "+5%": 3, "+10%": 4, "+15%": 5}

var _AutoRangesNames = []string{"exact", "next-tick", "+2%", "+5%", "+10%", "+15%"}

// String returns the string representation of this AutoRanges value.
func (i AutoRanges) String() string {
	if i < 0 || int(i) >= len(_AutoRangesNames) {
		return strconv.FormatInt(int64(i), 10)
	}
	return _AutoRangesNames[i]
}

// SetString sets the AutoRanges value from its string representation,
// and returns an error if the string is invalid.
func (i *AutoRanges) SetString(s string) error {
	if val, ok := _AutoRangesNameToValueMap[s]; ok {
		*i = val
		return nil
	}
	if val, ok := _AutoRangesNameToValueMap[strings.ToLower(s)]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("plot3d: %q does not belong to AutoRanges values", s)
}

// Values returns all possible values for the type AutoRanges.
func (i AutoRanges) Values() []AutoRanges { return _AutoRangesValues }

// Strings returns the string encodings of all possible values
// for the type AutoRanges, in the same order as Values.
func (i AutoRanges) Strings() []string {
	strs := make([]string, len(_AutoRangesNames))
	copy(strs, _AutoRangesNames)
	return strs
}

// IsValid returns whether the value is a valid option for type AutoRanges.
func (i AutoRanges) IsValid() bool {
	_, ok := _AutoRangesNameToValueMap[i.String()]
	return ok
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i AutoRanges) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *AutoRanges) UnmarshalText(text []byte) error {
	return i.SetString(strings.TrimSpace(string(text)))
}
