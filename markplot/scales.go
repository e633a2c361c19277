// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
	"github.com/markplot/markplot/plot"
	"github.com/spf13/cobra"
)

var (
	borderCol = lipgloss.Color("#243141")
	accentFg  = lipgloss.Color("#7C3AED")

	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	headerStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	cellStyle   = lipgloss.NewStyle().PaddingRight(2)
)

type scalesOptions struct {
	chartOptions
	dump bool
}

func registerScalesCmd(parent *cobra.Command) {
	opts := &scalesOptions{}

	cmd := &cobra.Command{
		Use:   "scales",
		Short: "Print the scales of a chart",
		Long:  `Print the type, domain, and range of every scale of a chart, as inferred from its marks and data.`,
		Example: `  markplot scales -d penguins.csv -m 'dot x=weight y=height fill=species'

  # Everything about the scales
  markplot scales -d penguins.csv -s plot.yaml --dump`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScales(cmd.OutOrStdout(), opts)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().BoolVar(&opts.dump, "dump", false, "dump the scales in full")

	parent.AddCommand(cmd)
}

func runScales(w io.Writer, opts *scalesOptions) error {
	fig, err := opts.plot()
	if err != nil {
		return err
	}
	if opts.dump {
		cfg := spew.ConfigState{
			Indent:                  "  ",
			SortKeys:                true,
			DisableMethods:          true,
			DisablePointerAddresses: true,
			DisableCapacities:       true,
		}
		cfg.Fdump(w, fig.Scales)
		return nil
	}
	_, err = fmt.Fprintln(w, scalesTable(fig.Scales))
	return err
}

// scalesTable formats scales as a table with one row per scale.
func scalesTable(scales plot.Scales) string {
	rows := [][]string{{"KEY", "TYPE", "DOMAIN", "RANGE", "LABEL"}}
	for _, key := range scales.Keys() {
		s := scales[key]
		rows = append(rows, []string{key, s.Type.String(), formatList(s.Domain), formatList(s.Range), s.Label})
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for j, cell := range row {
			widths[j] = max(widths[j], lipgloss.Width(cell))
		}
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			st := cellStyle.Width(widths[j] + 2)
			if i == 0 {
				st = st.Inherit(headerStyle)
			}
			cells[j] = st.Render(cell)
		}
		lines[i] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// formatList formats a domain or range, shortening long ordinal
// domains.
func formatList(vs []interface{}) string {
	const maxItems = 6
	strs := make([]string, 0, len(vs))
	for i, v := range vs {
		if i == maxItems {
			strs = append(strs, fmt.Sprintf("... (%d more)", len(vs)-maxItems))
			break
		}
		strs = append(strs, fmt.Sprint(v))
	}
	return "[" + strings.Join(strs, " ") + "]"
}
