// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axisfile

import (
	"bytes"
	"io"
	"os"
	"strconv"

	"cogentcore.org/axis3d/base/errors"
	"cogentcore.org/axis3d/plot3d"
	"github.com/pelletier/go-toml/v2"
	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// tomlFile is the raw form of a TOML file, kept as maps until the
// bounds are normalized.
type tomlFile struct {
	Axis []map[string]any `toml:"axis"`
}

type yamlFile struct {
	Axis []yaml.Node `yaml:"axis"`
}

// Open reads the axis configurations in the given file, choosing
// the format from its extension. Settings missing from the file
// have their default values, and every config is validated.
func Open(filename string) ([]plot3d.Config, error) {
	format, err := FormatForPath(filename)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "axisfile: reading %s", filename)
	}
	cfgs, err := ReadBytes(b, format)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "axisfile: %s", filename)
	}
	return cfgs, nil
}

// Read reads axis configurations in the given format from r.
func Read(r io.Reader, format Formats) ([]plot3d.Config, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ReadBytes(b, format)
}

// ReadBytes reads axis configurations in the given format from b.
func ReadBytes(b []byte, format Formats) ([]plot3d.Config, error) {
	var cfgs []plot3d.Config
	var err error
	switch format {
	case YAML:
		cfgs, err = readYAML(b)
	default:
		cfgs, err = readTOML(b)
	}
	if err != nil {
		return nil, err
	}
	var errs []error
	for i := range cfgs {
		if verr := cfgs[i].Validate(); verr != nil {
			errs = append(errs, pkgerrors.Wrapf(verr, "axis %d", i))
		}
	}
	return cfgs, errors.Join(errs...)
}

func readTOML(b []byte) ([]plot3d.Config, error) {
	var raw tomlFile
	if err := toml.NewDecoder(bytes.NewReader(b)).Decode(&raw); err != nil {
		return nil, pkgerrors.Wrap(err, "decoding toml")
	}
	cfgs := make([]plot3d.Config, len(raw.Axis))
	for i, m := range raw.Axis {
		boundsToText(m)
		tb, err := toml.Marshal(m)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "axis %d", i)
		}
		cfgs[i].Defaults()
		if err := toml.Unmarshal(tb, &cfgs[i]); err != nil {
			return nil, pkgerrors.Wrapf(err, "axis %d", i)
		}
	}
	return cfgs, nil
}

// boundsToText converts numeric min and max values to their text form,
// so that bounds can be written either as numbers or as "Auto".
func boundsToText(m map[string]any) {
	for _, k := range []string{"min", "max"} {
		switch v := m[k].(type) {
		case int64:
			m[k] = strconv.FormatInt(v, 10)
		case float64:
			m[k] = strconv.FormatFloat(v, 'g', -1, 64)
		}
	}
}

func readYAML(b []byte) ([]plot3d.Config, error) {
	var raw yamlFile
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, pkgerrors.Wrap(err, "decoding yaml")
	}
	cfgs := make([]plot3d.Config, len(raw.Axis))
	for i := range raw.Axis {
		cfgs[i].Defaults()
		if err := raw.Axis[i].Decode(&cfgs[i]); err != nil {
			return nil, pkgerrors.Wrapf(err, "axis %d", i)
		}
	}
	return cfgs, nil
}
