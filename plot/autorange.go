// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

// Margins are the space between a plot's frame and its edges.
type Margins struct {
	Top, Right, Bottom, Left float64
}

// DefaultMargins leave room for the default axes.
var DefaultMargins = Margins{Top: 20, Right: 20, Bottom: 30, Left: 40}

// Dimensions are the size and margins of a plot, or of one facet
// cell of a plot.
type Dimensions struct {
	Width, Height float64
	Margins
}

// cell returns the dimensions of one facet cell. A faceted axis has
// the facet scale's bandwidth as its extent and no margins.
func (d Dimensions) cell(fx, fy *Scale) Dimensions {
	c := d
	if fx != nil {
		c.Width = fx.Bandwidth()
		c.Left, c.Right = 0, 0
	}
	if fy != nil {
		c.Height = fy.Bandwidth()
		c.Top, c.Bottom = 0, 0
	}
	return c
}

// autoScaleRange finalizes every positional scale that doesn't have
// a range yet. Facet scales are ranged against the full dimensions,
// and x and y against a facet cell. Calling it again has no effect.
func autoScaleRange(scales Scales, d Dimensions) {
	fx, fy := scales["fx"], scales["fy"]
	autoScaleRangeX(fx, d)
	autoScaleRangeY(fy, d)
	inner := d.cell(fx, fy)
	autoScaleRangeX(scales["x"], inner)
	autoScaleRangeY(scales["y"], inner)
}

func autoScaleRangeX(s *Scale, d Dimensions) {
	if s == nil || s.finalized {
		return
	}
	s.finalize(d.Left+s.inset, d.Width-d.Right-s.inset)
}

// autoScaleRangeY ranges s bottom to top, except that ordinal scales
// read top to bottom.
func autoScaleRangeY(s *Scale, d Dimensions) {
	if s == nil || s.finalized {
		return
	}
	r0, r1 := d.Height-d.Bottom-s.inset, d.Top+s.inset
	if s.IsOrdinal() {
		r0, r1 = r1, r0
	}
	s.finalize(r0, r1)
}
