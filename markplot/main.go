// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command markplot draws charts of CSV data as SVG.
//
// A chart is a list of marks, given either in a YAML spec file or as
// shell-style descriptions on the command line:
//
//	markplot render -d penguins.csv -m 'dot x=weight y=height fill=species' -o penguins.svg
//
// markplot scales prints the scales a chart would use, which is
// useful to see what type and domain were inferred from the data.
package main

import (
	"log"

	"github.com/spf13/cobra"
)

func main() {
	log.SetPrefix("markplot: ")
	log.SetFlags(0)

	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "markplot",
		Short:         "Draw charts of CSV data",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	registerRenderCmd(root)
	registerScalesCmd(root)

	return root
}
