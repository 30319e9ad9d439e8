package rasterizer

import (
	"image/color"
	"strings"
)

var namedColors = map[string]color.RGBA{
	"black":   {0x00, 0x00, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"red":     {0xff, 0x00, 0x00, 0xff},
	"green":   {0x00, 0x80, 0x00, 0xff},
	"lime":    {0x00, 0xff, 0x00, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"orange":  {0xff, 0xa5, 0x00, 0xff},
	"purple":  {0x80, 0x00, 0x80, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},
	"gray":    {0x80, 0x80, 0x80, 0xff},
	"grey":    {0x80, 0x80, 0x80, 0xff},
}

// ParseColor parses a CSS color name or a hexadecimal color such as #ff0000 or #F00. It returns false for colors it does not know.
func ParseColor(s string) (color.RGBA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if col, ok := namedColors[s]; ok {
		return col, true
	} else if len(s) == 0 || s[0] != '#' {
		return color.RGBA{}, false
	}

	s = s[1:]
	h := make([]uint8, len(s))
	for i, c := range []byte(s) {
		if '0' <= c && c <= '9' {
			h[i] = c - '0'
		} else if 'a' <= c && c <= 'f' {
			h[i] = 10 + c - 'a'
		} else {
			return color.RGBA{}, false
		}
	}
	if len(s) == 3 {
		return color.RGBA{h[0]*16 + h[0], h[1]*16 + h[1], h[2]*16 + h[2], 0xff}, true
	} else if len(s) == 6 {
		return color.RGBA{h[0]*16 + h[1], h[2]*16 + h[3], h[4]*16 + h[5], 0xff}, true
	}
	return color.RGBA{}, false
}
