// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotspec

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/markplot/markplot/plot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const specYAML = `
width: 320
height: 200
margins: {top: 10, right: 10, bottom: 20, left: 30}
inset: 2
locale: de
facet: {x: species}
scales:
  y: {type: log, nice: true, inset: 5}
  color: {scheme: Blues, reverse: true}
marks:
  - {type: dot, x: weight, y: height, fill: species, r: 4}
  - type: ruleY
    y: [4]
    stroke: "#f00"
`

func testData() *table.Table {
	return table.NewBuilder(nil).
		Add("weight", []float64{1, 2, 3}).
		Add("height", []float64{4, 5, 6}).
		Add("species", []string{"a", "b", "a"}).
		Done()
}

func TestLoad(t *testing.T) {
	s, err := Load(strings.NewReader(specYAML))
	require.NoError(t, err)
	assert.Equal(t, 320.0, s.Width)
	assert.Equal(t, &plot.Margins{Top: 10, Right: 10, Bottom: 20, Left: 30}, s.Margins)
	assert.Equal(t, &FacetSpec{X: "species"}, s.Facet)
	require.Contains(t, s.Scales, "y")
	assert.Equal(t, "log", s.Scales["y"].Type)
	require.NotNil(t, s.Scales["y"].Inset)
	assert.Equal(t, 5.0, *s.Scales["y"].Inset)
	assert.Nil(t, s.Scales["y"].Padding)
	require.Len(t, s.Marks, 2)
	assert.Equal(t, "dot", s.Marks[0].Type())
	assert.Equal(t, 4, s.Marks[0]["r"])
	assert.Equal(t, []interface{}{4}, s.Marks[1]["y"])
}

func TestLoadEmpty(t *testing.T) {
	s, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, &Spec{}, s)
}

func TestLoadUnknownKey(t *testing.T) {
	_, err := Load(strings.NewReader("widht: 3\n"))
	assert.Error(t, err)
	_, err = Load(strings.NewReader("scales: {x: {kind: log}}\n"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(specYAML), 0o644))
	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, s.Marks, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	s, err := Load(strings.NewReader(specYAML))
	require.NoError(t, err)
	data := testData()
	o, err := s.Build(data)
	require.NoError(t, err)

	assert.Equal(t, 320.0, o.Width)
	assert.Equal(t, "de", o.Locale.String())
	require.NotNil(t, o.Facet)
	assert.Equal(t, "species", o.Facet.X)
	assert.Same(t, data, o.Facet.Data)
	assert.Equal(t, "log", o.Scales["y"].Type)
	assert.True(t, o.Scales["color"].Reverse)
	require.Len(t, o.Marks, 2)
	assert.Same(t, data, o.Marks[0].Base().Data)
}

func TestBuildPlot(t *testing.T) {
	s := &Spec{Marks: []MarkSpec{
		{"type": "dot", "x": "weight", "y": "height", "fill": "species"},
	}}
	o, err := s.Build(testData())
	require.NoError(t, err)
	fig, err := plot.Plot(o)
	require.NoError(t, err)
	assert.Len(t, fig.SVG.Find("circle"), 3)
	assert.Equal(t, plot.ScaleLinear, fig.Scales["x"].Type)
	assert.Equal(t, plot.ScaleOrdinal, fig.Scales["color"].Type)
}

func TestBuildErrors(t *testing.T) {
	for _, test := range []struct {
		mark MarkSpec
		err  string
	}{
		{MarkSpec{"type": "pie"}, `unknown mark type "pie"`},
		{MarkSpec{}, `unknown mark type ""`},
		{MarkSpec{"type": "dot", "colour": "red", "size": 2}, "unknown option colour, size"},
		{MarkSpec{"type": "text", "fontSize": "big"}, "fontSize"},
		{MarkSpec{"type": "axisX", "grid": "yes"}, "grid"},
		{MarkSpec{"type": "line", "stroke": map[string]interface{}{"value": "g"}}, "stroke"},
	} {
		s := &Spec{Marks: []MarkSpec{test.mark}}
		_, err := s.Build(testData())
		if assert.Error(t, err, "%v", test.mark) {
			assert.Contains(t, err.Error(), test.err)
			assert.Contains(t, err.Error(), "mark 0")
		}
	}

	s := &Spec{Locale: "not a locale!"}
	_, err := s.Build(testData())
	assert.Error(t, err)
}

func TestBuildReduce(t *testing.T) {
	ms := MarkSpec{
		"type":        "line",
		"x":           "weight",
		"y":           "height",
		"stroke":      "species",
		"strokeWidth": map[string]interface{}{"value": "weight", "reduce": "max"},
	}
	m, err := ms.Build(testData())
	require.NoError(t, err)
	assert.NoError(t, m.Base().Err())
}

func TestParseMark(t *testing.T) {
	ms, err := ParseMarkString(`dot x=weight y=height r=4 "fill=#f00" title='a b' z=[1,2,3] "stroke={value: g, reduce: max}" frameAnchor=`)
	require.NoError(t, err)
	assert.Equal(t, MarkSpec{
		"type":        "dot",
		"x":           "weight",
		"y":           "height",
		"r":           4,
		"fill":        "#f00",
		"title":       "a b",
		"z":           []interface{}{1, 2, 3},
		"stroke":      map[string]interface{}{"value": "g", "reduce": "max"},
		"frameAnchor": nil,
	}, ms)
}

func TestParseMarkErrors(t *testing.T) {
	for _, desc := range []string{"", "dot x", "dot =a", "dot 'x=a", "dot x=[1,"} {
		_, err := ParseMarkString(desc)
		assert.Error(t, err, desc)
	}
}
