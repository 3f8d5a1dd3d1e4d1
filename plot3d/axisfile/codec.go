// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package axisfile reads and writes axis configurations as TOML or
// YAML files, and watches them for changes.
package axisfile

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Formats are the supported file formats.
type Formats int32

const (
	// TOML files have one [[axis]] table per axis.
	TOML Formats = iota

	// YAML files have a list of axes under the axis key.
	YAML
)

func (f Formats) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	}
	return fmt.Sprintf("Formats(%d)", int32(f))
}

// FormatForPath returns the format of the file based on its extension.
func FormatForPath(path string) (Formats, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("axisfile: unsupported file extension for %q: must be .toml, .yaml or .yml", path)
}
