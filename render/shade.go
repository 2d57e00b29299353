package render

import (
	"fmt"
	"image/color"
	"math"
)

// Shade maps a distance intensity onto the blue palette: the root is white
// and the farthest cell navy. Values outside [0, 1] are clamped.
func Shade(intensity float64) color.RGBA {
	if math.IsNaN(intensity) {
		intensity = 0
	}
	near := 1 - min(max(intensity, 0), 1)
	dark := uint8(math.Floor(255 * near))
	bright := uint8(128 + math.Floor(127*near))
	return color.RGBA{R: dark, G: dark, B: bright, A: 0xff}
}

// Hex formats c as #rrggbb.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
