// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"

	"github.com/aclements/go-gg/table"
	"github.com/markplot/markplot/svgnode"
)

// Facet splits a plot into cells by the values of one or two columns
// of Data. Marks whose data is Data draw only their rows for each
// cell; other marks draw in full in every cell.
type Facet struct {
	Data *table.Table

	// X and Y name the columns that split cells horizontally and
	// vertically. Either may be "".
	X, Y string
}

// facetIndex is the rows of the facet data in each facet cell.
type facetIndex struct {
	facet *Facet
	rows  map[facetKey][]int
}

type facetKey struct {
	x, y interface{}
}

// rowColumn is the column facetIndex adds to the facet data to
// recover row indexes after grouping.
const rowColumn = "[row]"

func newFacetIndex(f *Facet) (*facetIndex, error) {
	if f.Data == nil {
		return nil, configErrorf("facet", ErrInvalidOption, "no data")
	}
	var cols []string
	for _, col := range []string{f.X, f.Y} {
		if col == "" {
			continue
		}
		if f.Data.Column(col) == nil {
			return nil, configErrorf("facet", ErrInvalidOption, "no column %q", col)
		}
		cols = append(cols, col)
	}
	if len(cols) == 0 {
		return nil, configErrorf("facet", ErrInvalidOption, "no facet columns")
	}

	rows := make([]int, f.Data.Len())
	for i := range rows {
		rows[i] = i
	}
	t := table.NewBuilder(f.Data).Add(rowColumn, rows).Done()
	grouped := table.GroupBy(t, cols...)

	idx := &facetIndex{facet: f, rows: make(map[facetKey][]int)}
	for _, gid := range grouped.Tables() {
		var key facetKey
		pid := gid
		if f.Y != "" {
			key.y = ordinalKey(pid.Label())
			pid = pid.Parent()
		}
		if f.X != "" {
			key.x = ordinalKey(pid.Label())
		}
		idx.rows[key] = append(idx.rows[key], grouped.Table(gid).MustColumn(rowColumn).([]int)...)
	}
	return idx, nil
}

// channels returns the fx and fy channels of the facet data.
func (idx *facetIndex) channels() []channelValues {
	f := idx.facet
	var out []channelValues
	add := func(key, col string) {
		if col == "" {
			return
		}
		c := &Channel{Name: key, Value: Field(col), Scale: key, Type: ScaleBand}
		out = append(out, channelValues{c, c.Value.eval(f.Data, f.Data.Len())})
	}
	add("fx", f.X)
	add("fy", f.Y)
	return out
}

// render draws every mark in each facet cell.
func (idx *facetIndex) render(states []*markState, scales Scales, d Dimensions) []*svgnode.Node {
	fx, fy := scales["fx"], scales["fy"]
	xs, ys := []interface{}{nil}, []interface{}{nil}
	if fx != nil {
		xs = fx.Domain
	}
	if fy != nil {
		ys = fy.Domain
	}
	cell := d.cell(fx, fy)

	// Unfaceted marks draw the same rows everywhere.
	full := make([][]int, len(states))
	for i, st := range states {
		if !st.faceted {
			full[i] = st.base.filter(st.all, st.raw, st.scaled)
		}
	}

	var out []*svgnode.Node
	for yi, ky := range ys {
		for xi, kx := range xs {
			var tx, ty float64
			if fx != nil {
				tx, _ = toFloat(fx.Map(kx))
			}
			if fy != nil {
				ty, _ = toFloat(fy.Map(ky))
			}
			g := svgnode.New("g").Set("aria-label", "facet").
				Set("transform", fmt.Sprintf("translate(%s,%s)", numString(tx), numString(ty)))
			if fx != nil && yi == 0 {
				g.Append(svgnode.New("text").Set("class", "facet-label").
					SetNum("x", cell.Width/2).SetNum("y", -6).SetText(stringOf(kx)))
			}
			if fy != nil && xi == len(xs)-1 {
				g.Append(svgnode.New("text").Set("class", "facet-label").Set("text-anchor", "start").
					SetNum("x", cell.Width+6).SetNum("y", cell.Height/2).Set("dy", "0.32em").SetText(stringOf(ky)))
			}
			key := facetKey{ordinalKey(kx), ordinalKey(ky)}
			for i, st := range states {
				index := full[i]
				if st.faceted {
					index = st.base.filter(idx.rows[key], st.raw, st.scaled)
				}
				g.Append(st.mark.Render(index, scales, st.scaled, cell))
			}
			out = append(out, g)
		}
	}
	return out
}
