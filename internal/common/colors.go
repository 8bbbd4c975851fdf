package common

import (
	"image/color"
)

// NationPalette is indexed by a nation's position in the roster
var NationPalette = []color.RGBA{
	{200, 50, 50, 255},  // Red
	{50, 100, 200, 255}, // Blue
	{50, 200, 50, 255},  // Green
	{200, 200, 50, 255}, // Yellow
	{160, 70, 200, 255}, // Purple
	{40, 190, 190, 255}, // Cyan
	{230, 130, 40, 255}, // Orange
	{200, 90, 150, 255}, // Pink
}

// Board colors
var (
	UnownedColor    = color.RGBA{120, 120, 120, 255}
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	GridLineColor   = color.RGBA{50, 50, 50, 255}
	TextColor       = color.RGBA{255, 255, 255, 255}
)

// NationColor returns the palette entry for a roster index; negative means unowned
func NationColor(index int) color.RGBA {
	if index < 0 {
		return UnownedColor
	}
	return NationPalette[index%len(NationPalette)]
}

// Shade darkens c for low development so richer provinces stand out.
// development is clamped to [0, maxDevelopment].
func Shade(c color.RGBA, development, maxDevelopment int) color.RGBA {
	if maxDevelopment <= 0 {
		return c
	}
	if development < 0 {
		development = 0
	}
	if development > maxDevelopment {
		development = maxDevelopment
	}
	// Scale between 40% and 100% brightness
	factor := 0.4 + 0.6*float64(development)/float64(maxDevelopment)
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
