package core

import (
	"math"
	"unicode/utf8"
)

// Canvas is the drawing surface handed to games each frame.
// Coordinates are world units; the surface decides how units map to
// pixels or terminal cells. Games never touch a concrete surface.
type Canvas interface {
	// Size returns the drawable area in world units.
	Size() (w, h float64)
	// Clear paints the whole surface.
	Clear(st Style)
	// FillRect paints an axis-aligned rectangle.
	FillRect(r RectF, st Style)
	// FillDiamond paints the rhombus inscribed in r.
	FillDiamond(r RectF, st Style)
	// DrawText writes text with its top-left corner at (x, y).
	DrawText(x, y float64, text string, c Color)
	// TextWidth returns the width of text in world units.
	TextWidth(text string) float64
	// LineHeight returns the height of one text line in world units.
	LineHeight() float64
}

// World units covered by one terminal cell. Terminal cells are roughly
// twice as tall as they are wide.
const (
	CellUnitsX = 8.0
	CellUnitsY = 16.0
)

// CellsToUnits converts a cell area to world units.
func CellsToUnits(cols, rows int) (float64, float64) {
	return float64(cols) * CellUnitsX, float64(rows) * CellUnitsY
}

// CellCanvas paints world-space shapes into a Screen.
// Rows above top are reserved for the platform (HUD).
type CellCanvas struct {
	screen *Screen
	top    int
}

// NewCellCanvas wraps a screen; the canvas starts at row top.
func NewCellCanvas(s *Screen, top int) *CellCanvas {
	return &CellCanvas{screen: s, top: top}
}

var _ Canvas = (*CellCanvas)(nil)

// Size returns the area below the reserved rows in world units.
func (c *CellCanvas) Size() (float64, float64) {
	return CellsToUnits(c.screen.Width(), max(0, c.screen.Height()-c.top))
}

// Clear fills every canvas cell with the style glyph.
func (c *CellCanvas) Clear(st Style) {
	c.screen.DrawRect(NewRect(0, c.top, c.screen.Width(), c.screen.Height()-c.top), glyphOr(st, ' '), st.Color)
}

// FillRect paints the cells covered by r.
func (c *CellCanvas) FillRect(r RectF, st Style) {
	x0, y0, w, h := c.span(r)
	g := glyphOr(st, '█')
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			c.set(x, y, g, st.Color)
		}
	}
}

// FillDiamond paints the cells whose centers fall inside the rhombus.
// At least the center cell is painted so tiny shapes stay visible.
func (c *CellCanvas) FillDiamond(r RectF, st Style) {
	x0, y0, w, h := c.span(r)
	g := glyphOr(st, '█')
	cx, cy := r.Center()
	hw, hh := r.W/2, r.H/2
	painted := false

	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			ux := (float64(x) + 0.5) * CellUnitsX
			uy := (float64(y-c.top) + 0.5) * CellUnitsY
			if hw <= 0 || hh <= 0 {
				continue
			}
			if math.Abs(ux-cx)/hw+math.Abs(uy-cy)/hh <= 1 {
				c.set(x, y, g, st.Color)
				painted = true
			}
		}
	}

	if !painted {
		c.set(int(math.Floor(cx/CellUnitsX)), int(math.Floor(cy/CellUnitsY))+c.top, g, st.Color)
	}
}

// DrawText writes text starting at the cell containing (x, y).
func (c *CellCanvas) DrawText(x, y float64, text string, col Color) {
	row := int(math.Floor(y/CellUnitsY)) + c.top
	if row < c.top {
		return
	}
	c.screen.DrawText(int(math.Floor(x/CellUnitsX)), row, text, col)
}

// TextWidth returns one cell width per rune.
func (c *CellCanvas) TextWidth(text string) float64 {
	return float64(utf8.RuneCountInString(text)) * CellUnitsX
}

// LineHeight returns the height of one cell row.
func (c *CellCanvas) LineHeight() float64 {
	return CellUnitsY
}

// span maps a world rectangle to a cell rectangle (screen rows).
// Sizes are rounded around the center so an entity keeps a stable cell
// footprint while it moves.
func (c *CellCanvas) span(r RectF) (x, y, w, h int) {
	w = max(1, int(math.Round(r.W/CellUnitsX)))
	h = max(1, int(math.Round(r.H/CellUnitsY)))
	cx, cy := r.Center()
	x = int(math.Floor(cx/CellUnitsX - float64(w)/2 + 0.5))
	y = int(math.Floor(cy/CellUnitsY-float64(h)/2+0.5)) + c.top
	return x, y, w, h
}

// set paints one cell, clipping the reserved rows.
func (c *CellCanvas) set(x, y int, r rune, col Color) {
	if y < c.top {
		return
	}
	c.screen.SetCell(x, y, r, col)
}

func glyphOr(st Style, fallback rune) rune {
	if st.Glyph == 0 {
		return fallback
	}
	return st.Glyph
}

// DrawMessage draws a centered panel with a title and subtitle.
// Used for pause and game over notifications.
func DrawMessage(c Canvas, title, subtitle string) {
	w, h := c.Size()
	lh := c.LineHeight()
	pad := c.TextWidth("  ")

	boxW := max(c.TextWidth(title), c.TextWidth(subtitle)) + 2*pad
	boxH := 5 * lh
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	c.FillRect(NewRectF(boxX, boxY, boxW, boxH), Style{Color: ColorPanel, Glyph: ' '})
	c.DrawText(boxX+(boxW-c.TextWidth(title))/2, boxY+lh, title, ColorBrightWhite)
	c.DrawText(boxX+(boxW-c.TextWidth(subtitle))/2, boxY+3*lh, subtitle, ColorWhite)
}
