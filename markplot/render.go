// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/spf13/cobra"
)

type renderOptions struct {
	chartOptions
	output string
}

func registerRenderCmd(parent *cobra.Command) {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a chart as SVG",
		Example: `  # Scatter plot of two columns
  markplot render -d penguins.csv -m 'dot x=weight y=height' -o penguins.svg

  # Chart described by a spec file, plus a reference line
  markplot render -d penguins.csv -s plot.yaml -m 'ruleY y=[0]'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write SVG to `file` instead of stdout")

	parent.AddCommand(cmd)
}

func runRender(cmd *cobra.Command, opts *renderOptions) error {
	fig, err := opts.plot()
	if err != nil {
		return err
	}
	if opts.output == "" {
		return fig.WriteSVG(cmd.OutOrStdout())
	}

	f, err := os.Create(opts.output)
	if err != nil {
		return err
	}
	if err := fig.WriteSVG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
