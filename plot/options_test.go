// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/stretchr/testify/assert"
)

func TestMaybeValue(t *testing.T) {
	assert.False(t, maybeValue(nil).Defined())
	assert.Equal(t, "a", maybeValue("a").FieldName())
	assert.Equal(t, 3, maybeValue([]int{1, 2, 3}).length())
	assert.Equal(t, 2.5, maybeValue(2.5).Constant())
	assert.Equal(t, "x", maybeValue(Field("x")).FieldName())

	v := maybeValue(func(_ *table.Table, i int) interface{} { return i * 2 })
	assert.Equal(t, []interface{}{0, 2, 4}, v.eval(nil, 3))
}

func TestValueEval(t *testing.T) {
	tab := table.NewBuilder(nil).Add("a", []string{"x", "y"}).Done()
	assert.Equal(t, []interface{}{"x", "y"}, Field("a").eval(tab, 2))
	assert.Equal(t, []interface{}{nil, nil}, Field("missing").eval(tab, 2))
	assert.Equal(t, []interface{}{1, nil}, Array([]int{1}).eval(nil, 2))
	assert.Equal(t, []interface{}{"k", "k"}, Const("k").eval(nil, 2))
	assert.Equal(t, []interface{}{0, 1}, Index.eval(tab, 2))
	assert.Equal(t, []interface{}{"x", "y"}, Identity.eval(tab, 2))
	assert.Panics(t, func() { Array(1) })
}

func TestMaybeColorChannel(t *testing.T) {
	for _, test := range []struct {
		raw, def interface{}
		field    string
		constant interface{}
	}{
		{"red", nil, "", "red"},
		{"#ABC", nil, "", "#ABC"},
		{"category", nil, "category", nil},
		{nil, "none", "", "none"},
		{Const("blue"), nil, "", "blue"},
		{Field("red"), nil, "red", nil},
	} {
		v, c := maybeColorChannel(test.raw, test.def)
		assert.Equal(t, test.field, v.FieldName(), "%v", test.raw)
		assert.Equal(t, test.constant, c, "%v", test.raw)
		assert.False(t, v.Defined() && c != nil, "%v: both defined", test.raw)
	}
}

func TestMaybeNumberChannel(t *testing.T) {
	v, c := maybeNumberChannel(2, nil)
	assert.False(t, v.Defined())
	assert.Equal(t, 2.0, c)

	v, c = maybeNumberChannel("w", nil)
	assert.Equal(t, "w", v.FieldName())
	assert.Nil(t, c)

	_, c = maybeNumberChannel(nil, 3.0)
	assert.Equal(t, 3.0, c)

	_, c = maybeNumberChannel(Const(5), nil)
	assert.Equal(t, 5.0, c)

	v, c = maybeNumberChannel(nil, nil)
	assert.False(t, v.Defined())
	assert.Nil(t, c)
}

func TestPathsAndURLs(t *testing.T) {
	for _, s := range []string{"./a.png", "../img/a.png", "/abs.png", "https://example.com/a.png", "DATA:image/png;base64,AA", "blob:x", "file:///tmp/a"} {
		v, c := maybePathChannel(s)
		assert.False(t, v.Defined(), s)
		assert.Equal(t, s, c)
	}
	for _, s := range []string{"src", "a/b.png", ".hidden", "mailto:x", "field:name"} {
		v, c := maybePathChannel(s)
		assert.Equal(t, s, v.FieldName(), s)
		assert.Equal(t, "", c)
	}
	_, c := maybePathChannel(Const("x.png"))
	assert.Equal(t, "x.png", c)
}

func TestIsColor(t *testing.T) {
	for _, s := range []string{"red", "SteelBlue", "#abc", "#abcd", "#aabbcc", "#aabbccdd", "rgb(1, 2, 3)", "rgba(1,2,3,0.5)", "hsl(120, 50%, 50%)", "currentColor", "none", "transparent", "url(#grad)"} {
		assert.True(t, isColor(s), s)
	}
	for _, s := range []string{"category", "#abcde", "rgb(1)", ""} {
		assert.False(t, isColor(s), s)
	}
}

func TestStringOf(t *testing.T) {
	assert.Equal(t, "", stringOf(nil))
	assert.Equal(t, "s", stringOf("s"))
	assert.Equal(t, "0.5", stringOf(0.5))
	assert.Equal(t, "3", stringOf(3))
	assert.Equal(t, "true", stringOf(true))
}
