// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot3d

import "sync/atomic"

// Document tracks the changeset of a graph document: a counter that
// advances whenever anything affecting the axes changes. Axes cache
// their results against its value.
type Document struct {
	changeset atomic.Int64
}

// Changeset returns the current changeset.
func (d *Document) Changeset() int64 {
	return d.changeset.Load()
}

// Changed advances the changeset and returns the new value.
func (d *Document) Changed() int64 {
	return d.changeset.Add(1)
}
