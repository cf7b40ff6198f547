// Package palette converts generation indices and terrain into display
// colors. Colors are cosmetic derivation only: nothing downstream reads
// them back.
package palette

import (
	"fmt"
	"math"
)

// HSLToHex converts hue in degrees [0,360), saturation and lightness in
// percent [0,100] into a "#rrggbb" string using the standard HSL to RGB
// transform.
func HSLToHex(h, s, l float64) string {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s /= 100
	l /= 100

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return fmt.Sprintf("#%02x%02x%02x",
		int(math.Round((r+m)*255)),
		int(math.Round((g+m)*255)),
		int(math.Round((b+m)*255)))
}

// goldenRatio spaces hues so neighboring indices land far apart on the
// color wheel.
const goldenRatio = 0.618033988749895

// IndexColor is the terrain-agnostic palette mode: golden-ratio hue
// stepping for contexts that only know a territory's index.
func IndexColor(index int, seed int64) string {
	hue := math.Mod(float64(index)*goldenRatio+float64(seed)*0.1, 1)
	if hue < 0 {
		hue++
	}
	return HSLToHex(hue*360, 65, 55)
}
