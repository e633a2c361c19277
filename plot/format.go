// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"math"
	"time"

	"github.com/markplot/markplot/svgnode"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocale is the locale used to format numbers when
// Options.Locale is unset.
var DefaultLocale = language.AmericanEnglish

// isoFormat formats t as an ISO 8601 UTC timestamp with millisecond
// precision.
func isoFormat(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}

// numberFormat returns a function that formats numbers for humans:
// grouped digits and at most three fraction digits, according to
// the conventions of tag.
func numberFormat(tag language.Tag) func(interface{}) string {
	p := message.NewPrinter(tag)
	return func(v interface{}) string {
		x, ok := toFloat(v)
		if !ok {
			return fmt.Sprint(v)
		}
		if math.IsNaN(x) {
			return "NaN"
		}
		return p.Sprint(number.Decimal(x, number.MaxFractionDigits(3)))
	}
}

// textFormat returns a function that formats values of the column
// vs as text. Times use ISO 8601, numbers use numberFormat, and
// everything else uses fmt.Sprint. The choice is made once, from the
// first defined value, so a column formats consistently.
func textFormat(vs []interface{}, tag language.Tag) func(interface{}) string {
	switch {
	case isTemporal(vs):
		return func(v interface{}) string {
			if t, ok := v.(time.Time); ok {
				return isoFormat(t)
			}
			return stringOf(v)
		}
	case isNumeric(vs):
		return numberFormat(tag)
	}
	return stringOf
}

// numString formats x for an attribute.
func numString(x float64) string {
	return svgnode.Num(x)
}
