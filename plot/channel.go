// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

// A Channel binds a named visual property of a mark to a Value.
type Channel struct {
	// Name is the channel's name within its mark, such as "x1"
	// or "fill".
	Name string

	Value Value

	// Scale is the key of the scale that maps this channel, or ""
	// if its values are used as given.
	Scale string

	// Type, if not ScaleAuto, declares the scale type this channel
	// requires.
	Type ScaleType

	// Filter, if non-nil, drops rows whose defined value it
	// rejects.
	Filter func(v interface{}) bool

	// Optional channels don't drop rows with undefined values.
	Optional bool

	// reduce, if non-nil, reduces this channel over each group of
	// a grouped mark.
	reduce reducer
}

// channelValues is a channel evaluated against its mark's data.
type channelValues struct {
	*Channel
	values []interface{}
}

// Values maps channel names to per-row values. A channel bound to a
// scale holds scaled values; other channels hold their evaluated
// values.
type Values map[string][]interface{}

// at returns the i'th value of channel name, or nil.
func (vs Values) at(name string, i int) interface{} {
	col, ok := vs[name]
	if !ok || i >= len(col) {
		return nil
	}
	return col[i]
}

// float returns the i'th value of channel name as a float64, and
// whether it was defined.
func (vs Values) float(name string, i int) (float64, bool) {
	x, ok := toFloat(vs.at(name, i))
	return x, ok && isFinite(x)
}
