// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"
	"sort"
	"strings"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-moremath/stats"
)

// Reduce is a grouped style option. Grouped marks, like Line, draw
// one element per group, so a style channel must be reduced to one
// value per group. Op is a reducer name or a function of the group's
// values.
//
// The reducer names are "first", "last", "count", "distinct", "sum",
// "min", "max", "mean", "median", and "mode". Names are
// case-insensitive.
//
// On marks that are not grouped, a Reduce acts like its Value.
type Reduce struct {
	Value interface{}
	Op    interface{}
}

type reducer func(vs []interface{}) interface{}

// unwrapReduce splits a style option into its value and reducer.
func unwrapReduce(name string, raw interface{}) (interface{}, reducer, error) {
	r, ok := raw.(Reduce)
	if !ok {
		return raw, nil, nil
	}
	f, err := makeReducer(name, r.Op)
	if err != nil {
		return nil, nil, err
	}
	return r.Value, f, nil
}

func makeReducer(name string, op interface{}) (reducer, error) {
	switch op := op.(type) {
	case func([]interface{}) interface{}:
		return op, nil
	case reducer:
		return op, nil
	case string:
		if f, ok := reducers[strings.ToLower(op)]; ok {
			return f, nil
		}
	}
	return nil, configErrorf(name, ErrInvalidReduce, "%v", op)
}

var reducers = map[string]reducer{
	"first": func(vs []interface{}) interface{} {
		if len(vs) == 0 {
			return nil
		}
		return vs[0]
	},
	"last": func(vs []interface{}) interface{} {
		if len(vs) == 0 {
			return nil
		}
		return vs[len(vs)-1]
	},
	"count": func(vs []interface{}) interface{} {
		return float64(len(vs))
	},
	"distinct": func(vs []interface{}) interface{} {
		seen := make(map[interface{}]bool)
		for _, v := range vs {
			seen[ordinalKey(v)] = true
		}
		return float64(len(seen))
	},
	"sum": func(vs []interface{}) interface{} {
		sum := 0.0
		for _, x := range numbers(vs) {
			sum += x
		}
		return sum
	},
	"min": func(vs []interface{}) interface{} {
		xs := numbers(vs)
		if len(xs) == 0 {
			return nil
		}
		min, _ := stats.Bounds(xs)
		return min
	},
	"max": func(vs []interface{}) interface{} {
		xs := numbers(vs)
		if len(xs) == 0 {
			return nil
		}
		_, max := stats.Bounds(xs)
		return max
	},
	"mean": func(vs []interface{}) interface{} {
		xs := numbers(vs)
		if len(xs) == 0 {
			return nil
		}
		return stats.Mean(xs)
	},
	"median": func(vs []interface{}) interface{} {
		xs := numbers(vs)
		if len(xs) == 0 {
			return nil
		}
		sort.Float64s(xs)
		n := len(xs)
		if n%2 == 1 {
			return xs[n/2]
		}
		return (xs[n/2-1] + xs[n/2]) / 2
	},
	"mode": func(vs []interface{}) interface{} {
		counts := make(map[interface{}]int)
		var mode interface{}
		best := 0
		for _, v := range vs {
			if !defined(v) {
				continue
			}
			k := ordinalKey(v)
			counts[k]++
			if counts[k] > best {
				mode, best = v, counts[k]
			}
		}
		return mode
	},
}

// numbers returns the defined numeric values of vs.
func numbers(vs []interface{}) []float64 {
	var xs []float64
	for _, v := range vs {
		if x, ok := toFloat(v); ok && !math.IsNaN(x) {
			xs = append(xs, x)
		}
	}
	return xs
}

// groupRows partitions rows 0..len(keys)-1 by key, in order of each
// group's first row.
func groupRows(keys []interface{}) [][]int {
	index := make(map[interface{}]int)
	var groups [][]int
	for i, k := range keys {
		ok := ordinalKey(k)
		g, seen := index[ok]
		if !seen {
			g = len(groups)
			index[ok] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], i)
	}
	return groups
}

// reduceGroups replaces each value of vs with the reduction of its
// group.
func reduceGroups(vs []interface{}, groups [][]int, f reducer) []interface{} {
	out := make([]interface{}, len(vs))
	for _, g := range groups {
		r := f(slice.Select(vs, g).([]interface{}))
		for _, i := range g {
			out[i] = r
		}
	}
	return out
}
