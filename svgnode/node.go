// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svgnode is a small tree of SVG element descriptors.
//
// Marks build Nodes rather than writing SVG directly so that a plot
// can be inspected (for testing, or by callers that want to splice
// the output into a larger document) before it is serialized. Write
// serializes a tree as an SVG document.
package svgnode

import (
	"strconv"
)

// An Attr is a single element attribute. Values are stored
// unescaped; escaping happens during serialization.
type Attr struct {
	Name, Value string
}

// A Node is an SVG element. Text is the element's character data and
// is written before its children.
type Node struct {
	Tag      string
	Attrs    []Attr
	Children []*Node
	Text     string
}

// New returns a new element with the given tag and no attributes.
func New(tag string) *Node {
	return &Node{Tag: tag}
}

// Set sets attribute name to value, replacing any existing value.
// It returns n for ease of chaining.
func (n *Node) Set(name, value string) *Node {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return n
		}
	}
	n.Attrs = append(n.Attrs, Attr{name, value})
	return n
}

// SetNum is like Set, but formats x with Num.
func (n *Node) SetNum(name string, x float64) *Node {
	return n.Set(name, Num(x))
}

// Get returns the value of attribute name.
func (n *Node) Get(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Has reports whether n has attribute name.
func (n *Node) Has(name string) bool {
	_, ok := n.Get(name)
	return ok
}

// SetText sets the character data of n.
func (n *Node) SetText(text string) *Node {
	n.Text = text
	return n
}

// Append adds children to n. Nil children are ignored.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// Find returns all descendants of n (including n itself) with the
// given tag, in document order.
func (n *Node) Find(tag string) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(m *Node) {
		if m.Tag == tag {
			out = append(out, m)
		}
		for _, c := range m.Children {
			walk(c)
		}
	}
	walk(n)
	return out
}

// Num formats x for use in an SVG attribute. It uses at most 6
// significant digits, which is well below a pixel at any sensible
// plot size.
func Num(x float64) string {
	return strconv.FormatFloat(x, 'g', 6, 64)
}
