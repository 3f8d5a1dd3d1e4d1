// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Format formats a tick value for a label. The format is one of:
//
//   - "" for the shortest exact representation
//   - a fmt verb such as "%.3g" (anything starting with '%')
//   - "SI" for a value with an SI prefix, such as "1.5 k"
//   - "," for a value with comma separated thousands
//   - otherwise a time layout, applied to the value as Unix seconds in UTC
func Format(v float64, format string) string {
	switch {
	case format == "":
		return strconv.FormatFloat(v, 'g', -1, 64)
	case strings.HasPrefix(format, "%"):
		return fmt.Sprintf(format, v)
	case strings.EqualFold(format, "SI"):
		return humanize.SIWithDigits(v, 3, "")
	case format == ",":
		return humanize.Commaf(v)
	}
	sec, frac := math.Modf(v)
	return time.Unix(int64(sec), int64(frac*1e9)).UTC().Format(format)
}

// FormatAll formats each value multiplied by scale.
func FormatAll(vals []float64, format string, scale float64) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = Format(v*scale, format)
	}
	return out
}
