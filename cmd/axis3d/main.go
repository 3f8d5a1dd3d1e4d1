// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command axis3d lays out the axes of a 3D graph described in
// a TOML or YAML file and prints the result as YAML.
package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"

	"cogentcore.org/axis3d/base/errors"
	"cogentcore.org/axis3d/math32/minmax"
	"cogentcore.org/axis3d/plot3d"
	"cogentcore.org/axis3d/plot3d/axisfile"
	"github.com/spf13/cobra"
)

var (
	auto []float64
	data []float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "axis3d",
		Short: "Lay out the axes of a 3D graph",
		Long: `axis3d resolves the ranges and ticks of the axes in a TOML or YAML
axis file and prints them, with the axis geometry, as YAML.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().Float64SliceVar(&auto, "auto", nil, "data extent min,max used for automatic bounds (default 0,1)")
	rootCmd.PersistentFlags().Float64SliceVar(&data, "data", nil, "data values whose extent is used for automatic bounds")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "layout <file>",
		Short: "Print the layout of the axes in a file",
		Args:  cobra.ExactArgs(1),
		RunE:  runLayout,
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "watch <file>",
		Short: "Print the layout of the axes in a file every time it changes",
		Args:  cobra.ExactArgs(1),
		RunE:  runWatch,
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// autoRange returns the data extent given by the --auto or --data
// flags, or nil if neither is set.
func autoRange() (*minmax.F64, error) {
	if len(data) > 0 {
		if len(auto) > 0 {
			return nil, fmt.Errorf("--auto and --data cannot be used together")
		}
		return dataExtent(data), nil
	}
	switch len(auto) {
	case 0:
		return nil, nil
	case 2:
		return &minmax.F64{Min: auto[0], Max: auto[1]}, nil
	}
	return nil, fmt.Errorf("--auto needs two values, min,max: got %d", len(auto))
}

// dataExtent returns the extent of the finite values, or nil if there are none.
func dataExtent(vals []float64) *minmax.F64 {
	var ext minmax.F64
	ext.SetInfinity()
	for _, v := range vals {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			ext.FitValInRange(v)
		}
	}
	if !ext.IsValid() {
		return nil
	}
	return &ext
}

func runLayout(cmd *cobra.Command, args []string) error {
	data, err := autoRange()
	if err != nil {
		return err
	}
	cfgs, err := axisfile.Open(args[0])
	if err != nil {
		return err
	}
	var doc plot3d.Document
	return writeReport(cmd.OutOrStdout(), layoutAxes(cfgs, data, doc.Changeset()))
}

func runWatch(cmd *cobra.Command, args []string) error {
	data, err := autoRange()
	if err != nil {
		return err
	}
	fn := args[0]
	out := cmd.OutOrStdout()
	var doc plot3d.Document

	show := func(cfgs []plot3d.Config, err error) {
		if errors.Log(err) != nil {
			return
		}
		fmt.Fprintf(out, "# %s, changeset %d\n", fn, doc.Changeset())
		errors.Log(writeReport(out, layoutAxes(cfgs, data, doc.Changeset())))
	}
	show(axisfile.Open(fn))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return axisfile.Watch(ctx, fn, &doc, show)
}

func writeReport(w io.Writer, rep []axisReport) error {
	b, err := marshalReport(rep)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
