// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axisfile

import (
	"cogentcore.org/axis3d/base/errors"
	"cogentcore.org/axis3d/plot3d"
	"github.com/jinzhu/copier"
)

// Clone returns a deep copy of the config, sharing no slices with it,
// for use as the fixed settings of one layout pass.
func Clone(cfg *plot3d.Config) plot3d.Config {
	var c plot3d.Config
	errors.Log(copier.CopyWithOption(&c, cfg, copier.Option{CaseSensitive: true, DeepCopy: true}))
	return c
}

// CloneAll returns deep copies of the configs.
func CloneAll(cfgs []plot3d.Config) []plot3d.Config {
	out := make([]plot3d.Config, len(cfgs))
	for i := range cfgs {
		out[i] = Clone(&cfgs[i])
	}
	return out
}
