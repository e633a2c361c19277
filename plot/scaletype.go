// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "strings"

//go:generate go tool stringer -type=ScaleType -linecomment

// ScaleType is the kind of mapping a scale performs.
type ScaleType int

const (
	// ScaleAuto means no type has been chosen. As a channel type
	// hint it means "infer"; as the result of inference it means
	// no scale is needed.
	ScaleAuto ScaleType = iota // auto

	ScaleLinear      // linear
	ScaleSqrt        // sqrt
	ScalePow         // pow
	ScaleLog         // log
	ScaleSymlog      // symlog
	ScaleTime        // time
	ScaleUtc         // utc
	ScalePoint       // point
	ScaleBand        // band
	ScaleOrdinal     // ordinal
	ScaleDiverging   // diverging
	ScaleCategorical // categorical
	ScaleCyclical    // cyclical
	ScaleSequential  // sequential

	numScaleTypes = int(iota)
)

// ParseScaleType returns the ScaleType named s. Names are matched
// case-insensitively. It returns a *ConfigError wrapping
// ErrUnknownScaleType if s names no type.
func ParseScaleType(s string) (ScaleType, error) {
	for t := ScaleType(0); int(t) < numScaleTypes; t++ {
		if strings.EqualFold(t.String(), s) {
			return t, nil
		}
	}
	return ScaleAuto, configErrorf("", ErrUnknownScaleType, "%s", s)
}

// family groups scale types whose channels can share a scale.
type family int

const (
	familyNone family = iota
	familyQuantitative
	familyTemporal
	familyOrdinal
)

func (t ScaleType) family() family {
	switch t {
	case ScaleAuto:
		return familyNone
	case ScaleTime, ScaleUtc:
		return familyTemporal
	case ScalePoint, ScaleBand, ScaleOrdinal, ScaleCategorical:
		return familyOrdinal
	}
	return familyQuantitative
}

// IsOrdinal reports whether t maps a discrete domain.
func (t ScaleType) IsOrdinal() bool {
	return t.family() == familyOrdinal
}
