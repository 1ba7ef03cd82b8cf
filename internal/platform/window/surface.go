package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/shooter-arcade/internal/core"
)

var (
	// Source texture for untextured triangles.
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	face = text.NewGoXFace(basicfont.Face7x13)
)

func init() {
	whiteImage.Fill(color.White)
}

// surface draws world-unit shapes onto an ebiten image. One world unit is
// one logical pixel; scale converts to device pixels.
type surface struct {
	dst   *ebiten.Image
	scale float64
	top   float64 // units reserved above the play area
	w, h  float64 // play area in units
}

var _ core.Canvas = (*surface)(nil)

func (s *surface) px(v float64) float32 {
	return float32(v * s.scale)
}

// Size returns the play area in world units.
func (s *surface) Size() (float64, float64) {
	return s.w, s.h
}

// Clear fills the play area.
func (s *surface) Clear(st core.Style) {
	vector.FillRect(s.dst, 0, s.px(s.top), s.px(s.w), s.px(s.h), rgba(st.Color), false)
}

// FillRect paints a rectangle. Glyphs are ignored.
func (s *surface) FillRect(r core.RectF, st core.Style) {
	vector.FillRect(s.dst, s.px(r.X), s.px(r.Y+s.top), s.px(r.W), s.px(r.H), rgba(st.Color), true)
}

// FillDiamond paints the rhombus inscribed in r as two triangles.
func (s *surface) FillDiamond(r core.RectF, st core.Style) {
	cx, cy := r.Center()
	pts := [4][2]float64{
		{cx, r.Y},
		{r.Right(), cy},
		{cx, r.Bottom()},
		{r.X, cy},
	}

	c := rgba(st.Color)
	cr, cg, cb, ca := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255

	vs := make([]ebiten.Vertex, 0, len(pts))
	for _, p := range pts {
		vs = append(vs, ebiten.Vertex{
			DstX:   s.px(p[0]),
			DstY:   s.px(p[1] + s.top),
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	s.dst.DrawTriangles(vs, []uint16{0, 1, 2, 0, 2, 3}, whiteSubImage, op)
}

// DrawText writes text with its top-left corner at (x, y).
func (s *surface) DrawText(x, y float64, str string, c core.Color) {
	drawText(s.dst, str, x, y+s.top, s.scale, rgba(c))
}

// TextWidth returns the advance of str in world units.
func (s *surface) TextWidth(str string) float64 {
	return textWidth(str)
}

// LineHeight returns the font's line height in world units.
func (s *surface) LineHeight() float64 {
	return lineHeight()
}

func textWidth(str string) float64 {
	return text.Advance(str, face)
}

func lineHeight() float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent
}

// drawText draws str at world position (x, y) on dst.
func drawText(dst *ebiten.Image, str string, x, y, scale float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x*scale, y*scale)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, str, face, op)
}
