// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"image/color"
	"reflect"
	"regexp"
	"strings"

	"github.com/aclements/go-gg/table"
	"golang.org/x/image/colornames"
)

// maybeValue converts a raw option into a Value. Strings name
// fields, slices are per-row arrays, functions are computed per row,
// and anything else is a constant.
func maybeValue(raw interface{}) Value {
	switch v := raw.(type) {
	case nil:
		return Value{}
	case Value:
		return v
	case string:
		return Field(v)
	case func(*table.Table, int) interface{}:
		return Func(v)
	}
	switch reflect.TypeOf(raw).Kind() {
	case reflect.Slice, reflect.Array:
		return Array(raw)
	}
	return Const(raw)
}

// maybeColorChannel disambiguates a color option. A string that is a
// CSS color, or a color.Color, is a constant; anything else is a
// channel. If raw is nil, def is used instead. Exactly one of the
// results is defined, unless both raw and def are nil.
func maybeColorChannel(raw, def interface{}) (Value, interface{}) {
	if raw == nil {
		raw = def
	}
	switch v := raw.(type) {
	case nil:
		return Value{}, nil
	case Value:
		if v.IsConstant() {
			return maybeColorChannel(v.constant, nil)
		}
		return v, nil
	case string:
		if isColor(v) {
			return Value{}, v
		}
	case color.Color:
		return Value{}, cssColor(v)
	}
	return maybeValue(raw), nil
}

// maybeNumberChannel disambiguates a numeric option. Numbers are
// constants; anything else is a channel. If raw is nil, def is used
// instead.
func maybeNumberChannel(raw, def interface{}) (Value, interface{}) {
	if raw == nil {
		raw = def
	}
	if v, ok := raw.(Value); ok && v.IsConstant() {
		raw = v.constant
		if !isNumber(raw) {
			return Value{}, raw
		}
	}
	if raw == nil {
		return Value{}, nil
	}
	if x, ok := toFloat(raw); ok && isNumber(raw) {
		return Value{}, x
	}
	return maybeValue(raw), nil
}

var (
	pathRE = regexp.MustCompile(`^\.*/`)

	// The allowed schemes are deliberately narrow, since allowing
	// any scheme would misclassify field names that contain a
	// colon.
	urlRE = regexp.MustCompile(`(?i)^(blob|data|file|http|https):`)
)

// isPath reports whether s starts with "./", "../", or "/".
func isPath(s string) bool {
	return pathRE.MatchString(s)
}

// isURL reports whether s starts with a recognized URL scheme.
func isURL(s string) bool {
	return urlRE.MatchString(s)
}

// maybePathChannel disambiguates an asset reference such as an image
// source. A path or URL string is a constant; any other string is a
// field name.
//
// This is a lexical guess. A field named, say, "/src" will be taken
// as a constant path; use Field to force the other interpretation.
func maybePathChannel(raw interface{}) (Value, string) {
	switch v := raw.(type) {
	case string:
		if isPath(v) || isURL(v) {
			return Value{}, v
		}
	case Value:
		if v.IsConstant() {
			return Value{}, stringOf(v.constant)
		}
	}
	return maybeValue(raw), ""
}

var (
	hexColorRE  = regexp.MustCompile(`^#([0-9a-f]{3}|[0-9a-f]{4}|[0-9a-f]{6}|[0-9a-f]{8})$`)
	funcColorRE = regexp.MustCompile(`^(rgb|rgba|hsl|hsla)\(\s*[-+0-9.%]+(\s*[,\s/]\s*[-+0-9.%]+){2,3}\s*\)$`)
)

// isColor reports whether s is a CSS color literal.
func isColor(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "none", "currentcolor", "transparent":
		return true
	}
	if strings.HasPrefix(s, "url(") && strings.HasSuffix(s, ")") {
		return true
	}
	if _, ok := colornames.Map[s]; ok {
		return true
	}
	return hexColorRE.MatchString(s) || funcColorRE.MatchString(s)
}

// stringOf converts a constant to its attribute form. nil is "".
func stringOf(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return numString(v)
	}
	return fmt.Sprint(v)
}

// frameAnchors are the valid values of a mark's FrameAnchor.
var frameAnchors = map[string]bool{
	"": true, "middle": true,
	"top-left": true, "top": true, "top-right": true,
	"right": true, "bottom-right": true, "bottom": true,
	"bottom-left": true, "left": true,
}
