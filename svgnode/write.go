// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgnode

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/ajstarks/svgo"
)

// errWriter records the first error from w. svgo doesn't report
// write errors, so this lets Write return them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

// Write serializes the tree rooted at root to w. If root is an <svg>
// element, Write produces a complete SVG document using its width and
// height attributes; otherwise it writes root as a fragment.
func Write(w io.Writer, root *Node) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	if root.Tag != "svg" {
		writeNode(canvas, root)
		return ew.err
	}

	width, height := 0, 0
	var rest []string
	for _, a := range root.Attrs {
		switch a.Name {
		case "width":
			width = atoi(a.Value)
		case "height":
			height = atoi(a.Value)
		case "xmlns", "xmlns:xlink":
			// svgo writes these itself.
		default:
			rest = append(rest, attr(a))
		}
	}
	canvas.Start(width, height, rest...)
	for _, c := range root.Children {
		writeNode(canvas, c)
	}
	canvas.End()
	return ew.err
}

// String returns the serialized form of n.
func (n *Node) String() string {
	var buf bytes.Buffer
	Write(&buf, n)
	return buf.String()
}

func atoi(s string) int {
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	f, _ := strconv.ParseFloat(s, 64)
	return int(f + 0.5)
}

func attr(a Attr) string {
	return a.Name + `="` + escape(a.Value) + `"`
}

func attrs(n *Node) []string {
	out := make([]string, len(n.Attrs))
	for i, a := range n.Attrs {
		out[i] = attr(a)
	}
	return out
}

func escape(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

func writeNode(canvas *svg.SVG, n *Node) {
	switch n.Tag {
	case "g":
		canvas.Group(attrs(n)...)
		writeChildren(canvas, n)
		canvas.Gend()
		return
	case "title":
		if len(n.Attrs) == 0 && len(n.Children) == 0 {
			canvas.Title(n.Text)
			return
		}
	case "desc":
		if len(n.Attrs) == 0 && len(n.Children) == 0 {
			canvas.Desc(n.Text)
			return
		}
	case "style":
		canvas.Style("text/css", n.Text)
		return
	}

	w := canvas.Writer
	fmt.Fprintf(w, "<%s", n.Tag)
	for _, a := range n.Attrs {
		fmt.Fprintf(w, " %s", attr(a))
	}
	if n.Text == "" && len(n.Children) == 0 {
		io.WriteString(w, "/>\n")
		return
	}
	io.WriteString(w, ">")
	io.WriteString(w, escape(n.Text))
	if len(n.Children) > 0 {
		io.WriteString(w, "\n")
	}
	writeChildren(canvas, n)
	fmt.Fprintf(w, "</%s>\n", n.Tag)
}

func writeChildren(canvas *svg.SVG, n *Node) {
	for _, c := range n.Children {
		writeNode(canvas, c)
	}
}
