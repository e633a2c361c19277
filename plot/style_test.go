// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"errors"
	"image/color"
	"testing"

	"github.com/markplot/markplot/svgnode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func channelNames(cs []Channel) []string {
	var names []string
	for _, c := range cs {
		names = append(names, c.Name)
	}
	return names
}

func TestStrokeSuppressesFill(t *testing.T) {
	s, cs, err := resolveStyle(StyleOptions{Stroke: "red"}, nil, StyleDefaults{})
	require.NoError(t, err)
	assert.Equal(t, "none", s.Fill)
	assert.True(t, s.fillNone)
	assert.Equal(t, "red", s.Stroke)
	assert.Empty(t, cs)
}

func TestPaintOrderNeedsStroke(t *testing.T) {
	o := StyleOptions{PaintOrder: "stroke"}
	s, _, err := resolveStyle(o, nil, StyleDefaults{})
	require.NoError(t, err)
	g := svgnode.New("g")
	applyIndirectStyles(g, s)
	assert.False(t, g.Has("paint-order"))

	o.Stroke = "white"
	s, _, err = resolveStyle(o, nil, StyleDefaults{})
	require.NoError(t, err)
	g = svgnode.New("g")
	applyIndirectStyles(g, s)
	v, _ := g.Get("paint-order")
	assert.Equal(t, "stroke", v)
}

func TestFillSuppressesStroke(t *testing.T) {
	d := StyleDefaults{Fill: "none", Stroke: "currentColor", StrokeWidth: 1.5}
	s, _, err := resolveStyle(StyleOptions{Fill: "blue"}, nil, d)
	require.NoError(t, err)
	assert.Equal(t, "blue", s.Fill)
	assert.Equal(t, "", s.Stroke)
	assert.True(t, s.strokeNone)
	assert.Equal(t, "", s.StrokeWidth, "stroke defaults apply only when stroked")
}

func TestStyleDefaults(t *testing.T) {
	d := StyleDefaults{Fill: "none", Stroke: "currentColor", StrokeWidth: 1.5}
	s, _, err := resolveStyle(StyleOptions{}, nil, d)
	require.NoError(t, err)
	assert.Equal(t, "none", s.Fill)
	assert.Equal(t, "currentColor", s.Stroke)
	assert.Equal(t, "1.5", s.StrokeWidth)
}

func TestImpliedValuesDropped(t *testing.T) {
	o := StyleOptions{
		Fill:             "currentColor",
		FillOpacity:      1,
		Stroke:           "black",
		StrokeWidth:      1.0,
		StrokeMiterlimit: 4,
		StrokeLinejoin:   "miter",
		StrokeLinecap:    "butt",
		Opacity:          1.0,
		MixBlendMode:     "normal",
		ShapeRendering:   "auto",
	}
	s, _, err := resolveStyle(o, nil, StyleDefaults{})
	require.NoError(t, err)
	assert.Equal(t, Style{Stroke: "black"}, s)
}

func TestStyleConstants(t *testing.T) {
	o := StyleOptions{
		Fill:        color.RGBA{0xff, 0, 0, 0xff},
		FillOpacity: 0.5,
		Opacity:     0.25,
	}
	s, cs, err := resolveStyle(o, nil, StyleDefaults{})
	require.NoError(t, err)
	assert.Equal(t, "#f00", s.Fill)
	assert.Equal(t, "0.5", s.FillOpacity)
	assert.Equal(t, "0.25", s.Opacity)
	assert.Empty(t, cs)
}

func TestStyleChannels(t *testing.T) {
	base := []Channel{{Name: "x", Value: Field("x"), Scale: "x"}}
	o := StyleOptions{
		Fill:    "category",
		Opacity: "weight",
		Title:   "name",
	}
	s, cs, err := resolveStyle(o, base, StyleDefaults{})
	require.NoError(t, err)
	assert.Equal(t, "", s.Fill, "channel fill has no constant")
	assert.Equal(t, []string{"x", "title", "fill", "opacity"}, channelNames(cs))
	for _, c := range cs[1:] {
		assert.True(t, c.Optional, "%s should be optional", c.Name)
	}
	assert.Equal(t, "color", cs[2].Scale)
	assert.Equal(t, "opacity", cs[3].Scale)
	assert.Len(t, base, 1, "input channels must not change")
}

func TestStyleField(t *testing.T) {
	// Field forces a column even when its name is a color.
	_, cs, err := resolveStyle(StyleOptions{Fill: Field("red")}, nil, StyleDefaults{})
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.Equal(t, "red", cs[0].Value.FieldName())
}

func TestNoFillMark(t *testing.T) {
	s, cs, err := resolveStyle(StyleOptions{Fill: "group", Stroke: "red"}, nil, StyleDefaults{NoFill: true, NoStroke: true})
	require.NoError(t, err)
	assert.Equal(t, "", s.Fill)
	assert.Equal(t, "", s.Stroke)
	assert.Empty(t, cs)
}

func TestStyleInvalidReduce(t *testing.T) {
	_, _, err := resolveStyle(StyleOptions{Fill: Reduce{Value: "g", Op: "bogus"}}, nil, StyleDefaults{})
	assert.True(t, errors.Is(err, ErrInvalidReduce), "got %v", err)
}

func TestIsNone(t *testing.T) {
	for _, v := range []interface{}{nil, "none", " NONE ", Const("none"), Value{}} {
		assert.True(t, isNone(v), "%v", v)
	}
	for _, v := range []interface{}{"red", "nonesuch", Field("none"), 0} {
		assert.False(t, isNone(v), "%v", v)
	}
}
