// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"regexp"
)

// classNameRE is the CSS identifier grammar, restricted to lower
// case.
var classNameRE = regexp.MustCompile(`^-?([_a-z]|[\x{a0}-\x{ff}]|\\[0-9a-f]{1,6}(\r\n|[ \t\r\n\f])?|\\[^\r\n\f0-9a-f])([_a-z0-9-]|[\x{a0}-\x{ff}]|\\[0-9a-f]{1,6}(\r\n|[ \t\r\n\f])?|\\[^\r\n\f0-9a-f])*$`)

// ClassNames generates plot class names "plot-1", "plot-2", and so
// on. Sharing a ClassNames between plots keeps their class names, and
// so their style rules, distinct on one page.
//
// The zero value is ready to use. A ClassNames is not safe for
// concurrent use.
type ClassNames struct {
	Prefix string
	n      int
}

// Next returns the next class name.
func (c *ClassNames) Next() string {
	c.n++
	prefix := c.Prefix
	if prefix == "" {
		prefix = "plot"
	}
	return fmt.Sprintf("%s-%d", prefix, c.n)
}

// className returns the validated explicit class name, or the next
// name from gen.
func className(name string, gen *ClassNames) (string, error) {
	if name == "" {
		if gen == nil {
			gen = new(ClassNames)
		}
		return gen.Next(), nil
	}
	if !classNameRE.MatchString(name) {
		return "", configErrorf("className", ErrInvalidClassName, "%q", name)
	}
	return name, nil
}
