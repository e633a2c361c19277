// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"bytes"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/aclements/go-gg/table"
	"github.com/markplot/markplot/svgnode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withAttr returns the nodes under root with the given tag and
// attribute value.
func withAttr(root *svgnode.Node, tag, name, value string) []*svgnode.Node {
	var out []*svgnode.Node
	for _, n := range root.Find(tag) {
		if v, ok := n.Get(name); ok && v == value {
			out = append(out, n)
		}
	}
	return out
}

func attrOf(t *testing.T, n *svgnode.Node, name string) string {
	t.Helper()
	v, ok := n.Get(name)
	require.True(t, ok, "<%s> has no %s", n.Tag, name)
	return v
}

func TestPlotDots(t *testing.T) {
	fig, err := Plot(Options{Marks: []Mark{
		Dot(nil, DotOptions{X: []int{1, 2, 3}, Y: []float64{10, 20, 30}}),
	}})
	require.NoError(t, err)

	x := fig.Scales["x"]
	require.NotNil(t, x)
	assert.Equal(t, ScaleLinear, x.Type)
	assert.Equal(t, []float64{1, 3}, floats(x.Domain))
	assert.Equal(t, []string{"x", "y"}, fig.Scales.Keys())

	root := fig.SVG
	assert.Equal(t, "plot-1", attrOf(t, root, "class"))
	assert.Equal(t, "0 0 640 400", attrOf(t, root, "viewBox"))
	circles := root.Find("circle")
	require.Len(t, circles, 3)
	assert.Equal(t, "40", attrOf(t, circles[0], "cx"))
	assert.Equal(t, "620", attrOf(t, circles[2], "cx"))
	assert.Len(t, withAttr(root, "g", "aria-label", "dot"), 1)
	assert.Len(t, withAttr(root, "g", "aria-label", "x-axis"), 1)
	assert.Len(t, withAttr(root, "g", "aria-label", "y-axis"), 1)

	dots := withAttr(root, "g", "aria-label", "dot")[0]
	assert.Equal(t, "none", attrOf(t, dots, "fill"))
	assert.Equal(t, "currentColor", attrOf(t, dots, "stroke"))
	assert.Equal(t, "1.5", attrOf(t, dots, "stroke-width"))

	var buf bytes.Buffer
	require.NoError(t, fig.WriteSVG(&buf))
	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, `class="plot-1"`)
	assert.Contains(t, out, ".plot-1 {")
	assert.Contains(t, out, "</svg>")
}

func TestPlotPointScale(t *testing.T) {
	fig, err := Plot(Options{HideAxes: true, Marks: []Mark{
		Dot(nil, DotOptions{X: []string{"a", "b", "c"}}),
	}})
	require.NoError(t, err)
	x := fig.Scales["x"]
	assert.Equal(t, ScalePoint, x.Type)
	assert.Equal(t, []interface{}{"a", "b", "c"}, x.Domain)
	assert.Nil(t, fig.Scales["y"])
	assert.Empty(t, withAttr(fig.SVG, "g", "class", "tick"))
}

// declaredMark is a custom mark with a channel of a declared type.
type declaredMark struct {
	MarkBase
}

func (m *declaredMark) Render(index []int, scales Scales, vs Values, d Dimensions) *svgnode.Node {
	return nil
}

func TestPlotIncompatibleScale(t *testing.T) {
	dates := []time.Time{
		time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	custom := &declaredMark{}
	custom.MarkBase = NewMarkBase(nil, []Channel{
		{Name: "stroke", Value: Array([]float64{1, 2}), Scale: "color", Type: ScaleLinear},
	}, MarkOptions{}, StyleDefaults{})
	fig, err := Plot(Options{Marks: []Mark{
		Dot(nil, DotOptions{X: []int{1, 2}, MarkOptions: MarkOptions{StyleOptions: StyleOptions{Fill: dates}}}),
		custom,
	}})
	assert.Nil(t, fig)
	assert.True(t, errors.Is(err, ErrIncompatibleScale), "got %v", err)
}

func TestPlotConfigErrors(t *testing.T) {
	line := Line(nil, LineOptions{
		X:           []int{1, 2},
		Y:           []int{1, 2},
		MarkOptions: MarkOptions{StyleOptions: StyleOptions{Stroke: Reduce{Value: "g", Op: "nope"}}},
	})
	assert.Error(t, line.Err())
	for _, test := range []struct {
		o    Options
		want error
	}{
		{Options{Marks: []Mark{line}}, ErrInvalidReduce},
		{Options{Scales: map[string]ScaleOptions{"z": {}}}, ErrUnknownScale},
		{Options{ClassName: "Bad Name"}, ErrInvalidClassName},
		{Options{Scales: map[string]ScaleOptions{"x": {Type: "bogus"}}, Marks: []Mark{Dot(nil, DotOptions{X: []int{1}})}}, ErrUnknownScaleType},
		{Options{Marks: []Mark{AxisX(AxisOptions{Anchor: "left"})}}, ErrInvalidOption},
		{Options{Marks: []Mark{Dot(nil, DotOptions{MarkOptions: MarkOptions{FrameAnchor: "nowhere"}})}}, ErrInvalidOption},
		{Options{Marks: []Mark{Text(nil, TextOptions{TextAnchor: "left"})}}, ErrInvalidOption},
	} {
		fig, err := Plot(test.o)
		assert.Nil(t, fig)
		assert.True(t, errors.Is(err, test.want), "want %v, got %v", test.want, err)
		var cerr *ConfigError
		assert.True(t, errors.As(err, &cerr), "%v is not a ConfigError", err)
	}
}

func TestPlotFiltersRows(t *testing.T) {
	fig, err := Plot(Options{HideAxes: true, Marks: []Mark{
		Dot(nil, DotOptions{X: []interface{}{1.0, nil, 3.0, 4.0}, R: []float64{1, 1, 1, -1}}),
	}})
	require.NoError(t, err)
	assert.Len(t, fig.SVG.Find("circle"), 2)
}

func TestPlotClassNames(t *testing.T) {
	gen := &ClassNames{}
	for _, want := range []string{"plot-1", "plot-2"} {
		fig, err := Plot(Options{ClassNames: gen})
		require.NoError(t, err)
		assert.Equal(t, want, attrOf(t, fig.SVG, "class"))
	}
	fig, err := Plot(Options{ClassName: "mine"})
	require.NoError(t, err)
	assert.Equal(t, "mine", attrOf(t, fig.SVG, "class"))
}

func TestPlotBars(t *testing.T) {
	fig, err := Plot(Options{Marks: []Mark{
		BarY(nil, BarYOptions{X: []string{"a", "b"}, Y: []float64{3, 5}}),
	}})
	require.NoError(t, err)
	assert.Equal(t, ScaleBand, fig.Scales["x"].Type)
	assert.Equal(t, []float64{0, 5}, floats(fig.Scales["y"].Domain))

	rects := fig.SVG.Find("rect")
	require.Len(t, rects, 2)
	assert.Equal(t, "210", attrOf(t, rects[0], "height"))
	assert.Equal(t, "160", attrOf(t, rects[0], "y"))
	assert.Equal(t, "350", attrOf(t, rects[1], "height"))
}

func TestPlotGroupedLine(t *testing.T) {
	data := table.NewBuilder(nil).
		Add("x", []float64{1, 2, 3, 4}).
		Add("y", []float64{1, 2, 3, 4}).
		Add("g", []string{"a", "a", "b", "b"}).
		Add("w", []float64{1, 3, 2, 5}).
		Done()
	fig, err := Plot(Options{HideAxes: true, Marks: []Mark{
		Line(data, LineOptions{X: "x", Y: "y", MarkOptions: MarkOptions{StyleOptions: StyleOptions{
			Stroke:      "g",
			StrokeWidth: Reduce{Value: "w", Op: "max"},
		}}}),
	}})
	require.NoError(t, err)
	paths := fig.SVG.Find("path")
	require.Len(t, paths, 2)
	assert.Equal(t, "#4e79a7", attrOf(t, paths[0], "stroke"))
	assert.Equal(t, "#f28e2c", attrOf(t, paths[1], "stroke"))
	assert.Equal(t, "3", attrOf(t, paths[0], "stroke-width"))
	assert.Equal(t, "5", attrOf(t, paths[1], "stroke-width"))
	assert.Regexp(t, `^M[0-9.]+,[0-9.]+L[0-9.]+,[0-9.]+$`, attrOf(t, paths[0], "d"))
}

func TestPlotTitlesAndLinks(t *testing.T) {
	fig, err := Plot(Options{HideAxes: true, Marks: []Mark{
		Dot(nil, DotOptions{X: []float64{1234.5}, MarkOptions: MarkOptions{StyleOptions: StyleOptions{
			Title:  []float64{1234.5},
			Href:   []string{"https://example.com/"},
			Target: "_blank",
		}}}),
	}})
	require.NoError(t, err)
	titles := fig.SVG.Find("title")
	require.Len(t, titles, 1)
	assert.Equal(t, "1,234.5", titles[0].Text)

	links := fig.SVG.Find("a")
	require.Len(t, links, 1)
	assert.Equal(t, "https://example.com/", attrOf(t, links[0], "href"))
	assert.Equal(t, "_blank", attrOf(t, links[0], "target"))
	assert.Len(t, links[0].Find("circle"), 1)
}

func TestPlotText(t *testing.T) {
	when := time.Date(2021, 6, 1, 12, 0, 0, 0, time.UTC)
	fig, err := Plot(Options{HideAxes: true, Marks: []Mark{
		Text(nil, TextOptions{Text: []float64{1000, 2.5}}),
		Text(nil, TextOptions{Text: []time.Time{when}}),
		Text(nil, TextOptions{Text: []string{"one\ntwo"}}),
	}})
	require.NoError(t, err)
	var got []string
	for _, n := range fig.SVG.Find("text") {
		if n.Text != "" {
			got = append(got, n.Text)
		}
	}
	assert.Equal(t, []string{"1,000", "2.5", "2021-06-01T12:00:00.000Z"}, got)
	spans := fig.SVG.Find("tspan")
	require.Len(t, spans, 2)
	assert.Equal(t, "one", spans[0].Text)
	assert.Equal(t, "1.2em", attrOf(t, spans[1], "dy"))
}

func TestPlotFacets(t *testing.T) {
	data := table.NewBuilder(nil).
		Add("x", []float64{1, 2, 3}).
		Add("g", []string{"a", "a", "b"}).
		Done()
	fig, err := Plot(Options{
		Facet: &Facet{Data: data, X: "g"},
		Marks: []Mark{Dot(data, DotOptions{X: "x"})},
	})
	require.NoError(t, err)

	fx, x := fig.Scales["fx"], fig.Scales["x"]
	require.NotNil(t, fx)
	require.NotNil(t, x)
	assert.Equal(t, ScaleBand, fx.Type)
	assert.Equal(t, []interface{}{"a", "b"}, fx.Domain)
	r := floats(x.Range)
	assert.InDelta(t, fx.Bandwidth(), r[1]-r[0], 1e-9)
	assert.Less(t, fx.Bandwidth(), 640.0-40-20)

	cells := withAttr(fig.SVG, "g", "aria-label", "facet")
	require.Len(t, cells, 2)
	assert.Len(t, cells[0].Find("circle"), 2)
	assert.Len(t, cells[1].Find("circle"), 1)
	assert.Len(t, withAttr(cells[0], "text", "class", "facet-label"), 1)
}

func facetData() *table.Table {
	return table.NewBuilder(nil).
		Add("x", []float64{1, 2, 3, 4}).
		Add("g", []string{"a", "a", "b", "b"}).
		Add("h", []string{"p", "q", "p", "p"}).
		Done()
}

func TestPlotFacetsY(t *testing.T) {
	data := facetData()
	fig, err := Plot(Options{
		Facet: &Facet{Data: data, Y: "g"},
		Marks: []Mark{Dot(data, DotOptions{X: "x", Y: "x"})},
	})
	require.NoError(t, err)

	fy, y := fig.Scales["fy"], fig.Scales["y"]
	require.NotNil(t, fy)
	require.NotNil(t, y)
	assert.Nil(t, fig.Scales["fx"])
	assert.Equal(t, []interface{}{"a", "b"}, fy.Domain)
	r := floats(y.Range)
	assert.InDelta(t, fy.Bandwidth(), math.Abs(r[1]-r[0]), 1e-9)

	cells := withAttr(fig.SVG, "g", "aria-label", "facet")
	require.Len(t, cells, 2)
	assert.Len(t, cells[0].Find("circle"), 2)
	assert.Len(t, cells[1].Find("circle"), 2)
}

func TestPlotFacetsXY(t *testing.T) {
	data := facetData()
	fig, err := Plot(Options{
		Facet: &Facet{Data: data, X: "h", Y: "g"},
		Marks: []Mark{Dot(data, DotOptions{X: "x", Y: "x"})},
	})
	require.NoError(t, err)

	fx, fy := fig.Scales["fx"], fig.Scales["fy"]
	require.NotNil(t, fx)
	require.NotNil(t, fy)
	assert.Equal(t, []interface{}{"p", "q"}, fx.Domain)
	rx, ry := floats(fig.Scales["x"].Range), floats(fig.Scales["y"].Range)
	assert.InDelta(t, fx.Bandwidth(), math.Abs(rx[1]-rx[0]), 1e-9)
	assert.InDelta(t, fy.Bandwidth(), math.Abs(ry[1]-ry[0]), 1e-9)

	// Cells are in row-major order: (a,p), (a,q), (b,p), (b,q).
	cells := withAttr(fig.SVG, "g", "aria-label", "facet")
	require.Len(t, cells, 4)
	for i, want := range []int{1, 1, 2, 0} {
		assert.Len(t, cells[i].Find("circle"), want, "cell %d", i)
	}
}

func TestPlotFacetErrors(t *testing.T) {
	data := table.NewBuilder(nil).Add("g", []string{"a"}).Done()
	for _, f := range []*Facet{
		{X: "g"},
		{Data: data},
		{Data: data, X: "missing"},
	} {
		_, err := Plot(Options{Facet: f})
		assert.True(t, errors.Is(err, ErrInvalidOption), "%+v: got %v", f, err)
	}
}
