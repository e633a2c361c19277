// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/markplot/markplot/internal/csvtable"
	"github.com/markplot/markplot/internal/plotspec"
	"github.com/markplot/markplot/plot"
	"github.com/spf13/cobra"
)

// chartOptions are the flags that describe a chart.
type chartOptions struct {
	data  string
	spec  string
	marks []string
}

func (o *chartOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.data, "data", "d", "", "CSV `file` of the chart's data")
	cmd.Flags().StringVarP(&o.spec, "spec", "s", "", "YAML `file` describing the chart")
	cmd.Flags().StringArrayVarP(&o.marks, "mark", "m", nil, "add a mark, as \"type key=value...\"")
	cmd.MarkFlagRequired("data")
}

// plot loads the data and spec and draws the chart.
func (o *chartOptions) plot() (*plot.Figure, error) {
	data, err := csvtable.ReadFile(o.data)
	if err != nil {
		return nil, err
	}

	spec := new(plotspec.Spec)
	if o.spec != "" {
		spec, err = plotspec.LoadFile(o.spec)
		if err != nil {
			return nil, err
		}
	}
	for _, desc := range o.marks {
		ms, err := plotspec.ParseMarkString(desc)
		if err != nil {
			return nil, fmt.Errorf("--mark %q: %w", desc, err)
		}
		spec.Marks = append(spec.Marks, ms)
	}
	if len(spec.Marks) == 0 {
		return nil, fmt.Errorf("no marks; use --spec or --mark")
	}

	po, err := spec.Build(data)
	if err != nil {
		return nil, err
	}
	return plot.Plot(po)
}
