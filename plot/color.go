// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-gg/palette/brewer"
	"golang.org/x/image/colornames"
)

// cssColor returns the CSS form of c, using #rgb when it's exact.
func cssColor(c color.Color) string {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return "none"
	}
	if a != 0xffff {
		// Undo alpha pre-multiplication.
		r = r * 0xffff / a
		g = g * 0xffff / a
		b = b * 0xffff / a
	}
	r, g, b = r>>8, g>>8, b>>8
	if a != 0xffff {
		return fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, numString(float64(a)/0xffff))
	}
	if r>>4 == r&0xF && g>>4 == g&0xF && b>>4 == b&0xF {
		return fmt.Sprintf("#%x%x%x", r>>4, g>>4, b>>4)
	}
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// parseColor parses a CSS hex color, rgb() color, or SVG color
// name.
func parseColor(s string) (color.RGBA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return c, true
	}
	if strings.HasPrefix(s, "#") {
		h := s[1:]
		if len(h) == 3 || len(h) == 4 {
			var long []byte
			for i := range h {
				long = append(long, h[i], h[i])
			}
			h = string(long)
		}
		if len(h) == 6 {
			h += "ff"
		}
		if len(h) != 8 {
			return color.RGBA{}, false
		}
		v, err := strconv.ParseUint(h, 16, 32)
		if err != nil {
			return color.RGBA{}, false
		}
		return color.RGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, true
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "rgb(%d,%d,%d)", &r, &g, &b); err == nil {
		return color.RGBA{r, g, b, 0xff}, true
	}
	return color.RGBA{}, false
}

// categorical is the default palette for ordinal color scales.
var categorical = []color.Color{
	color.RGBA{0x4e, 0x79, 0xa7, 0xff},
	color.RGBA{0xf2, 0x8e, 0x2c, 0xff},
	color.RGBA{0xe1, 0x57, 0x59, 0xff},
	color.RGBA{0x76, 0xb7, 0xb2, 0xff},
	color.RGBA{0x59, 0xa1, 0x4f, 0xff},
	color.RGBA{0xed, 0xc9, 0x49, 0xff},
	color.RGBA{0xaf, 0x7a, 0xa1, 0xff},
	color.RGBA{0xff, 0x9d, 0xa7, 0xff},
	color.RGBA{0x9c, 0x75, 0x5f, 0xff},
	color.RGBA{0xba, 0xb0, 0xab, 0xff},
}

// viridis is the default sequential palette.
var viridis = palette.RGBGradient{Colors: []color.RGBA{
	{0x44, 0x01, 0x54, 0xff},
	{0x47, 0x2c, 0x7a, 0xff},
	{0x3b, 0x51, 0x8b, 0xff},
	{0x2c, 0x71, 0x8e, 0xff},
	{0x21, 0x90, 0x8d, 0xff},
	{0x27, 0xad, 0x81, 0xff},
	{0x5c, 0xc8, 0x63, 0xff},
	{0xaa, 0xdc, 0x32, 0xff},
	{0xfd, 0xe7, 0x25, 0xff},
}}

const defaultDiverging = "RdBu"

// schemeColors returns the variant of the named brewer scheme with
// at least n levels, or its largest variant if none is that large.
func schemeColors(name string, n int) ([]color.Color, bool) {
	variants, ok := brewer.ByName[name]
	if !ok {
		return nil, false
	}
	var sizes []int
	for k := range variants {
		sizes = append(sizes, k)
	}
	if len(sizes) == 0 {
		return nil, false
	}
	sort.Ints(sizes)
	for _, k := range sizes {
		if k >= n {
			return variants[k], true
		}
	}
	return variants[sizes[len(sizes)-1]], true
}

// gradient converts colors to an RGB gradient.
func gradient(colors []color.Color) palette.RGBGradient {
	var g palette.RGBGradient
	for _, c := range colors {
		g.Colors = append(g.Colors, color.RGBAModel.Convert(c).(color.RGBA))
	}
	return g
}

// continuousScheme returns the continuous palette for a color scale.
// An explicit range of colors takes precedence over a scheme name.
func continuousScheme(key string, typ ScaleType, o ScaleOptions) (palette.Continuous, error) {
	switch o.Interpolate {
	case "", "rgb":
	default:
		Warning.Printf("%s: unsupported interpolate %q; using rgb", key, o.Interpolate)
	}
	if len(o.Range) > 0 {
		var g palette.RGBGradient
		for _, v := range o.Range {
			var c color.RGBA
			ok := false
			switch v := v.(type) {
			case string:
				c, ok = parseColor(v)
			case color.Color:
				c, ok = color.RGBAModel.Convert(v).(color.RGBA), true
			}
			if !ok {
				return nil, configErrorf(key, ErrIncompatibleScale, "range value %v is not a color", v)
			}
			g.Colors = append(g.Colors, c)
		}
		return g, nil
	}
	name := o.Scheme
	if name == "" {
		if typ != ScaleDiverging {
			return viridis, nil
		}
		name = defaultDiverging
	}
	colors, ok := schemeColors(name, 9)
	if !ok {
		return nil, configErrorf(key, ErrUnknownScheme, "%s", name)
	}
	return gradient(colors), nil
}

// ordinalScheme returns n colors for an ordinal color scale. Colors
// cycle if the scheme is shorter than n.
func ordinalScheme(key string, n int, o ScaleOptions) ([]interface{}, error) {
	colors := categorical
	if o.Scheme != "" {
		var ok bool
		if colors, ok = schemeColors(o.Scheme, n); !ok {
			return nil, configErrorf(key, ErrUnknownScheme, "%s", o.Scheme)
		}
	}
	out := make([]interface{}, len(colors))
	for i, c := range colors {
		out[i] = cssColor(c)
	}
	return out, nil
}
