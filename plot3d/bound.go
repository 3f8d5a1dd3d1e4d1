// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot3d

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Bound is one end of an axis: either automatic, determined from
// the data, or fixed at Value. The zero Bound is automatic.
type Bound struct {
	// Fixed is whether the bound is fixed at Value.
	Fixed bool

	// Value is the fixed value.
	Value float64
}

// Auto returns an automatic bound.
func Auto() Bound { return Bound{} }

// Fix returns a bound fixed at v.
func Fix(v float64) Bound { return Bound{Fixed: true, Value: v} }

func (b Bound) String() string {
	if !b.Fixed {
		return "Auto"
	}
	return strconv.FormatFloat(b.Value, 'g', -1, 64)
}

func (b Bound) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

// UnmarshalText sets the bound from "Auto" (in any case) or a number.
func (b *Bound) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if s == "" || strings.EqualFold(s, "auto") {
		*b = Auto()
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("plot3d: invalid axis bound %q: must be Auto or a number", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("plot3d: invalid axis bound %q: must be finite", s)
	}
	*b = Fix(v)
	return nil
}
