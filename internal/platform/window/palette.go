package window

import (
	"image/color"

	"github.com/vovakirdan/shooter-arcade/internal/core"
)

// palette maps core colors to RGBA.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {R: 0, G: 0, B: 0, A: 255},
	core.ColorRed:           {R: 205, G: 49, B: 49, A: 255},
	core.ColorGreen:         {R: 13, G: 188, B: 121, A: 255},
	core.ColorYellow:        {R: 229, G: 229, B: 16, A: 255},
	core.ColorBlue:          {R: 36, G: 114, B: 200, A: 255},
	core.ColorMagenta:       {R: 188, G: 63, B: 188, A: 255},
	core.ColorCyan:          {R: 17, G: 168, B: 205, A: 255},
	core.ColorWhite:         {R: 229, G: 229, B: 229, A: 255},
	core.ColorBrightRed:     {R: 241, G: 76, B: 76, A: 255},
	core.ColorBrightGreen:   {R: 35, G: 209, B: 139, A: 255},
	core.ColorBrightYellow:  {R: 245, G: 245, B: 67, A: 255},
	core.ColorBrightBlue:    {R: 59, G: 142, B: 234, A: 255},
	core.ColorBrightMagenta: {R: 214, G: 112, B: 214, A: 255},
	core.ColorBrightCyan:    {R: 41, G: 184, B: 219, A: 255},
	core.ColorBrightWhite:   {R: 255, G: 255, B: 255, A: 255},
	core.ColorOrange:        {R: 255, G: 184, B: 107, A: 255},
	core.ColorGray:          {R: 140, G: 140, B: 140, A: 255},
	core.ColorPink:          {R: 255, G: 214, B: 247, A: 255},
	core.ColorViolet:        {R: 155, G: 124, B: 255, A: 255},
	core.ColorRiver:         {R: 1, G: 46, B: 63, A: 255},
	core.ColorStripe:        {R: 3, G: 52, B: 70, A: 255},
	core.ColorSpace:         {R: 10, G: 8, B: 24, A: 255},
	core.ColorPanel:         {R: 20, G: 24, B: 38, A: 230},
}

// rgba returns the palette entry for c, opaque black if unknown.
func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

// withAlpha returns c with its alpha replaced. Channels are premultiplied.
func withAlpha(c color.RGBA, a uint8) color.RGBA {
	scale := func(v uint8) uint8 {
		return uint8(uint16(v) * uint16(a) / 255) //#nosec G115 -- result <= 255
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: a}
}
