package core

// Color is a palette entry. The terminal maps it to an ANSI 256-color code,
// the window front-end to an RGBA value.
type Color uint8

// Palette used by the games.
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
	ColorPink   // River Run enemy kind 0
	ColorViolet // River Run ship body
	ColorRiver  // River Run water
	ColorStripe // River Run current stripes
	ColorSpace  // Invaders background
	ColorPanel  // Message box background
)

// Style describes how a shape is painted. Pixel surfaces use Color only;
// cell surfaces additionally use Glyph for every covered cell.
type Style struct {
	Color Color
	Glyph rune
}

// Solid returns a style that fills cells with a full block.
func Solid(c Color) Style {
	return Style{Color: c, Glyph: '█'}
}
