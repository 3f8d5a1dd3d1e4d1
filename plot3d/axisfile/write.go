// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axisfile

import (
	"io"
	"os"

	"cogentcore.org/axis3d/plot3d"
	"github.com/pelletier/go-toml/v2"
	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type configFile struct {
	Axis []plot3d.Config `toml:"axis" yaml:"axis"`
}

// Save writes the axis configurations to the given file, choosing
// the format from its extension.
func Save(filename string, cfgs []plot3d.Config) error {
	format, err := FormatForPath(filename)
	if err != nil {
		return err
	}
	b, err := WriteBytes(cfgs, format)
	if err != nil {
		return pkgerrors.Wrapf(err, "axisfile: encoding %s", filename)
	}
	if err := os.WriteFile(filename, b, 0666); err != nil {
		return pkgerrors.Wrapf(err, "axisfile: writing %s", filename)
	}
	return nil
}

// Write writes the axis configurations in the given format to w.
func Write(w io.Writer, cfgs []plot3d.Config, format Formats) error {
	b, err := WriteBytes(cfgs, format)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// WriteBytes returns the axis configurations encoded in the given format.
func WriteBytes(cfgs []plot3d.Config, format Formats) ([]byte, error) {
	f := configFile{Axis: cfgs}
	if format == YAML {
		return yaml.Marshal(&f)
	}
	return toml.Marshal(&f)
}
