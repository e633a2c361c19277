// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestTextFormat(t *testing.T) {
	num := textFormat([]interface{}{nil, 1.0}, DefaultLocale)
	assert.Equal(t, "1,234.568", num(1234.5678))
	assert.Equal(t, "-2", num(-2))

	de := textFormat([]interface{}{1.0}, language.German)
	assert.Equal(t, "1.234,5", de(1234.5))

	when := time.Date(2020, 1, 2, 3, 4, 5, 0, time.FixedZone("X", 3600))
	tf := textFormat([]interface{}{when}, DefaultLocale)
	assert.Equal(t, "2020-01-02T02:04:05.000Z", tf(when))

	str := textFormat([]interface{}{"a"}, DefaultLocale)
	assert.Equal(t, "a", str("a"))
	assert.Equal(t, "1.5", str(1.5))
}

func TestCSSColor(t *testing.T) {
	assert.Equal(t, "#f00", cssColor(color.RGBA{0xff, 0, 0, 0xff}))
	assert.Equal(t, "#123456", cssColor(color.RGBA{0x12, 0x34, 0x56, 0xff}))
	assert.Equal(t, "none", cssColor(color.RGBA{}))
	assert.Equal(t, "rgba(255,0,0,0.501961)", cssColor(color.NRGBA{0xff, 0, 0, 0x80}))
}

func TestParseColor(t *testing.T) {
	for s, want := range map[string]color.RGBA{
		"#abc":       {0xaa, 0xbb, 0xcc, 0xff},
		"#abcd":      {0xaa, 0xbb, 0xcc, 0xdd},
		"#102030":    {0x10, 0x20, 0x30, 0xff},
		"#10203040":  {0x10, 0x20, 0x30, 0x40},
		"rgb(1,2,3)": {1, 2, 3, 0xff},
		" Red ":      {0xff, 0, 0, 0xff},
	} {
		got, ok := parseColor(s)
		assert.True(t, ok, s)
		assert.Equal(t, want, got, s)
	}
	for _, s := range []string{"#abcde", "#xyz", "notacolor"} {
		_, ok := parseColor(s)
		assert.False(t, ok, s)
	}
}

func TestClassNames(t *testing.T) {
	var gen ClassNames
	assert.Equal(t, "plot-1", gen.Next())
	assert.Equal(t, "plot-2", gen.Next())
	custom := ClassNames{Prefix: "chart"}
	assert.Equal(t, "chart-1", custom.Next())

	for _, name := range []string{"my-plot", "_x", "-a1", "café"} {
		got, err := className(name, nil)
		assert.NoError(t, err, name)
		assert.Equal(t, name, got)
	}
	for _, name := range []string{"Plot", "1abc", "a b", "--x"} {
		_, err := className(name, nil)
		assert.ErrorIs(t, err, ErrInvalidClassName, name)
	}
	got, err := className("", &gen)
	assert.NoError(t, err)
	assert.Equal(t, "plot-3", got)
}
