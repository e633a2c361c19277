// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"
	"reflect"
	"time"
)

var timeType = reflect.TypeOf(time.Time{})

// toFloat converts a numeric value to float64. It accepts any value
// whose kind is an integer or floating-point kind, including named
// types like time.Duration. time.Time converts to Unix milliseconds.
func toFloat(v interface{}) (float64, bool) {
	switch v := v.(type) {
	case nil:
		return 0, false
	case float64:
		return v, true
	case int:
		return float64(v), true
	case time.Time:
		return timeToFloat(v), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	}
	return 0, false
}

// isNumber reports whether v is numeric (not a time).
func isNumber(v interface{}) bool {
	if _, ok := v.(time.Time); ok {
		return false
	}
	_, ok := toFloat(v)
	return ok
}

func timeToFloat(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e6
}

func floatToTime(ms float64) time.Time {
	return time.Unix(0, int64(ms*1e6)).UTC()
}

// defined reports whether v is a usable value: not nil and not NaN.
func defined(v interface{}) bool {
	switch v := v.(type) {
	case nil:
		return false
	case float64:
		return !math.IsNaN(v)
	case float32:
		return !math.IsNaN(float64(v))
	}
	return true
}

// firstDefined returns the first defined value of vs.
func firstDefined(vs []interface{}) (interface{}, bool) {
	for _, v := range vs {
		if defined(v) {
			return v, true
		}
	}
	return nil, false
}

// isTemporal reports whether the first defined value of vs is a
// time.Time.
func isTemporal(vs []interface{}) bool {
	v, ok := firstDefined(vs)
	if !ok {
		return false
	}
	_, ok = v.(time.Time)
	return ok
}

// isNumeric reports whether the first defined value of vs is a
// number.
func isNumeric(vs []interface{}) bool {
	v, ok := firstDefined(vs)
	return ok && isNumber(v)
}

// isFinite reports whether x is neither NaN nor infinite.
func isFinite(x float64) bool {
	return !(math.IsNaN(x) || math.IsInf(x, 0))
}

// positive is a channel filter that accepts numbers greater than 0.
func positive(v interface{}) bool {
	x, ok := toFloat(v)
	return ok && x > 0
}
