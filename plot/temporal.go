// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"time"
)

// location returns the location temporal ticks are aligned and
// formatted in.
func (s *Scale) location() *time.Location {
	if s.Type == ScaleTime {
		return time.Local
	}
	return time.UTC
}

// A timeInterval is a tick spacing. Exactly one of d, days, months,
// or years is non-zero.
type timeInterval struct {
	d                  time.Duration
	days, months, year int
}

func (iv timeInterval) approx() float64 {
	const day = 24 * time.Hour
	switch {
	case iv.d != 0:
		return float64(iv.d / time.Millisecond)
	case iv.days != 0:
		return float64(time.Duration(iv.days) * day / time.Millisecond)
	case iv.months != 0:
		return float64(time.Duration(iv.months) * 30 * day / time.Millisecond)
	}
	return float64(time.Duration(iv.year) * 365 * day / time.Millisecond)
}

var timeIntervals = []timeInterval{
	{d: time.Second}, {d: 5 * time.Second}, {d: 15 * time.Second}, {d: 30 * time.Second},
	{d: time.Minute}, {d: 5 * time.Minute}, {d: 15 * time.Minute}, {d: 30 * time.Minute},
	{d: time.Hour}, {d: 3 * time.Hour}, {d: 6 * time.Hour}, {d: 12 * time.Hour},
	{days: 1}, {days: 2}, {days: 7},
	{months: 1}, {months: 3},
	{year: 1},
}

// floor returns the latest tick of iv at or before t.
func (iv timeInterval) floor(t time.Time) time.Time {
	y, m, d := t.Date()
	loc := t.Location()
	switch {
	case iv.d != 0:
		return t.Truncate(iv.d)
	case iv.days != 0:
		day := time.Date(y, m, d, 0, 0, 0, 0, loc)
		if iv.days == 7 {
			day = day.AddDate(0, 0, -int(day.Weekday()))
		}
		return day
	case iv.months != 0:
		m0 := (int(m)-1)/iv.months*iv.months + 1
		return time.Date(y, time.Month(m0), 1, 0, 0, 0, 0, loc)
	}
	return time.Date(y/iv.year*iv.year, 1, 1, 0, 0, 0, 0, loc)
}

func (iv timeInterval) next(t time.Time) time.Time {
	switch {
	case iv.d != 0:
		return t.Add(iv.d)
	case iv.days != 0:
		return t.AddDate(0, 0, iv.days)
	case iv.months != 0:
		return t.AddDate(0, iv.months, 0)
	}
	return t.AddDate(iv.year, 0, 0)
}

// timeTicks returns about n calendar-aligned times between lo and hi
// (in Unix milliseconds).
func timeTicks(lo, hi float64, n int, loc *time.Location) []interface{} {
	span := hi - lo
	iv := timeInterval{year: 1}
	found := false
	for _, cand := range timeIntervals {
		if span/cand.approx() <= float64(n) {
			iv, found = cand, true
			break
		}
	}
	if !found {
		// Multi-year intervals: 1, 2, 5, 10, 20, 50, ...
		for mult := 0; ; mult++ {
			k := []int{1, 2, 5}[mult%3]
			for i := 0; i < mult/3; i++ {
				k *= 10
			}
			iv = timeInterval{year: k}
			if span/iv.approx() <= float64(n) {
				break
			}
		}
	}

	start, end := floatToTime(lo).In(loc), floatToTime(hi).In(loc)
	var out []interface{}
	for t := iv.floor(start); !t.After(end); t = iv.next(t) {
		if !t.Before(start) {
			out = append(out, t)
		}
	}
	return out
}

// timeFormat returns a formatter suited to the coarsest alignment
// shared by ticks.
func timeFormat(typ ScaleType, ticks []interface{}) func(interface{}) string {
	loc := time.UTC
	if typ == ScaleTime {
		loc = time.Local
	}
	layout := "2006"
	for _, v := range ticks {
		t, ok := v.(time.Time)
		if !ok {
			continue
		}
		t = t.In(loc)
		switch {
		case t.Second() != 0 || t.Nanosecond() != 0:
			layout = "15:04:05"
		case t.Hour() != 0 || t.Minute() != 0:
			if layout != "15:04:05" {
				layout = "15:04"
			}
		case t.Day() != 1:
			if layout == "2006" || layout == "Jan" {
				layout = "Jan 02"
			}
		case t.Month() != time.January:
			if layout == "2006" {
				layout = "Jan"
			}
		}
	}
	return func(v interface{}) string {
		t, ok := v.(time.Time)
		if !ok {
			return stringOf(v)
		}
		return t.In(loc).Format(layout)
	}
}
