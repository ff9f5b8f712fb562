package core

import "image/color"

// Color is a palette entry shared by the terminal and desktop renderers.
// The zero value leaves the terminal's own foreground in place.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray

	numColors
)

type swatch struct {
	ansi string // xterm 256-color index
	rgba color.RGBA
}

// Values follow the xterm default palette so both frontends look alike.
var swatches = [numColors]swatch{
	ColorDefault:       {"", color.RGBA{229, 229, 229, 255}},
	ColorRed:           {"1", color.RGBA{205, 0, 0, 255}},
	ColorGreen:         {"2", color.RGBA{0, 205, 0, 255}},
	ColorYellow:        {"3", color.RGBA{205, 205, 0, 255}},
	ColorBlue:          {"4", color.RGBA{0, 0, 238, 255}},
	ColorMagenta:       {"5", color.RGBA{205, 0, 205, 255}},
	ColorCyan:          {"6", color.RGBA{0, 205, 205, 255}},
	ColorWhite:         {"7", color.RGBA{229, 229, 229, 255}},
	ColorBrightRed:     {"9", color.RGBA{255, 0, 0, 255}},
	ColorBrightGreen:   {"10", color.RGBA{0, 255, 0, 255}},
	ColorBrightYellow:  {"11", color.RGBA{255, 255, 0, 255}},
	ColorBrightBlue:    {"12", color.RGBA{92, 92, 255, 255}},
	ColorBrightMagenta: {"13", color.RGBA{255, 0, 255, 255}},
	ColorBrightCyan:    {"14", color.RGBA{0, 255, 255, 255}},
	ColorBrightWhite:   {"15", color.RGBA{255, 255, 255, 255}},
	ColorOrange:        {"208", color.RGBA{255, 135, 0, 255}},
	ColorGray:          {"245", color.RGBA{138, 138, 138, 255}},
}

// Palette returns every color that changes the foreground, in order.
func Palette() []Color {
	colors := make([]Color, 0, numColors-1)
	for c := ColorDefault + 1; c < numColors; c++ {
		colors = append(colors, c)
	}
	return colors
}

// ANSI returns the 256-color index as a string, or "" for ColorDefault
// and unknown values.
func (c Color) ANSI() string {
	if c >= numColors {
		return ""
	}
	return swatches[c].ansi
}

// RGBA returns the color for pixel renderers. Unknown values render as
// ColorDefault.
func (c Color) RGBA() color.RGBA {
	if c >= numColors {
		return swatches[ColorDefault].rgba
	}
	return swatches[c].rgba
}
