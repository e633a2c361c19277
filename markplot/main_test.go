// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCSV = `name,weight,height,species
a,1,4,x
b,2,5,y
c,3,6,x
`

const testSpec = `
width: 300
height: 200
scales:
  y: {type: log}
marks:
  - {type: dot, x: weight, y: height, fill: species}
`

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRender(t *testing.T) {
	data := writeFile(t, "data.csv", testCSV)
	out, err := run(t, "render", "-d", data, "-m", "dot x=weight y=height title=name")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<?xml"), out)
	assert.Equal(t, 3, strings.Count(out, "<circle"))
	assert.Contains(t, out, "<title>b</title>")
}

func TestRenderFile(t *testing.T) {
	data := writeFile(t, "data.csv", testCSV)
	spec := writeFile(t, "plot.yaml", testSpec)
	svg := filepath.Join(t.TempDir(), "out.svg")
	out, err := run(t, "render", "--data", data, "--spec", spec, "--mark", "ruleY y=[5]", "-o", svg)
	require.NoError(t, err)
	assert.Empty(t, out)

	b, err := os.ReadFile(svg)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(string(b), "<circle"))
	assert.Contains(t, string(b), `viewBox="0 0 300 200"`)
	assert.Contains(t, string(b), "<line")
}

func TestRenderErrors(t *testing.T) {
	data := writeFile(t, "data.csv", testCSV)
	for _, args := range [][]string{
		{"render", "-m", "dot x=weight"},
		{"render", "-d", data},
		{"render", "-d", data, "-m", "pie x=weight"},
		{"render", "-d", data, "-m", "dot 'x=weight"},
		{"render", "-d", filepath.Join(t.TempDir(), "missing.csv"), "-m", "dot x=weight"},
		{"render", "-d", data, "-s", filepath.Join(t.TempDir(), "missing.yaml")},
		{"render", "-d", data, "-m", "dot x=weight", "extra"},
	} {
		_, err := run(t, args...)
		assert.Error(t, err, "%v", args)
	}
}

func TestScales(t *testing.T) {
	data := writeFile(t, "data.csv", testCSV)
	spec := writeFile(t, "plot.yaml", testSpec)
	out, err := run(t, "scales", "-d", data, "-s", spec)
	require.NoError(t, err)
	for _, want := range []string{"KEY", "TYPE", "linear", "log", "ordinal", "weight", "[x y]"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "linear"), strings.Index(out, "log"))
}

func TestScalesDump(t *testing.T) {
	data := writeFile(t, "data.csv", testCSV)
	out, err := run(t, "scales", "-d", data, "-m", "dot x=weight y=height", "--dump")
	require.NoError(t, err)
	assert.Contains(t, out, `Key: (string) (len=1) "x"`)
	assert.Contains(t, out, `Key: (string) (len=1) "y"`)
	// The dump shows fields, not the one-line String form.
	assert.NotContains(t, out, "=>")
	assert.Contains(t, out, "Domain: ([]interface {})")
}

func TestFormatList(t *testing.T) {
	assert.Equal(t, "[]", formatList(nil))
	assert.Equal(t, "[1 a]", formatList([]interface{}{1, "a"}))
	assert.Equal(t, "[0 1 2 3 4 5 ... (2 more)]",
		formatList([]interface{}{0, 1, 2, 3, 4, 5, 6, 7}))
}
