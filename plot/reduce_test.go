// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReducers(t *testing.T) {
	vs := []interface{}{3.0, nil, 1, 4.0, 1.0, "x"}
	for _, test := range []struct {
		op   string
		want interface{}
	}{
		{"first", 3.0},
		{"last", "x"},
		{"count", 6.0},
		{"sum", 9.0},
		{"min", 1.0},
		{"MAX", 4.0},
		{"mean", 2.25},
		{"median", 2.0},
		{"mode", 1.0},
		{"distinct", 5.0},
	} {
		f, err := makeReducer("fill", test.op)
		require.NoError(t, err, test.op)
		assert.Equal(t, test.want, f(vs), test.op)
	}
}

func TestReducerEmpty(t *testing.T) {
	for _, op := range []string{"first", "last", "min", "max", "mean", "median", "mode"} {
		f, err := makeReducer("fill", op)
		require.NoError(t, err)
		assert.Nil(t, f(nil), op)
	}
}

func TestMakeReducer(t *testing.T) {
	f, err := makeReducer("stroke", func(vs []interface{}) interface{} { return len(vs) })
	require.NoError(t, err)
	assert.Equal(t, 2, f([]interface{}{1, 2}))

	for _, op := range []interface{}{"bogus", 42, nil} {
		_, err := makeReducer("stroke", op)
		assert.True(t, errors.Is(err, ErrInvalidReduce), "%v: got %v", op, err)
	}
}

func TestUnwrapReduce(t *testing.T) {
	v, f, err := unwrapReduce("fill", "red")
	require.NoError(t, err)
	assert.Equal(t, "red", v)
	assert.Nil(t, f)

	v, f, err = unwrapReduce("fill", Reduce{Value: "g", Op: "first"})
	require.NoError(t, err)
	assert.Equal(t, "g", v)
	assert.NotNil(t, f)
}

func TestGroupRows(t *testing.T) {
	groups := groupRows([]interface{}{"b", "a", "b", 1, 1.0, nil, nil})
	assert.Equal(t, [][]int{{0, 2}, {1}, {3, 4}, {5, 6}}, groups)

	f, _ := makeReducer("fill", "sum")
	out := reduceGroups([]interface{}{1.0, 2.0, 3.0, 4.0, 5.0, 6.0, 7.0}, groups, f)
	assert.Equal(t, []interface{}{4.0, 2.0, 4.0, 9.0, 9.0, 13.0, 13.0}, out)
}
