package window

import (
	"image/color"
	"testing"

	"github.com/vovakirdan/shooter-arcade/internal/core"
)

func TestPaletteCoversColors(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorPanel; c++ {
		if _, ok := palette[c]; !ok {
			t.Errorf("no RGBA for color %d", c)
		}
	}
}

func TestPalettePremultiplied(t *testing.T) {
	for c, v := range palette {
		if v.R > v.A || v.G > v.A || v.B > v.A {
			t.Errorf("color %d is not premultiplied: %+v", c, v)
		}
	}
}

func TestRGBAFallback(t *testing.T) {
	if got := rgba(core.Color(250)); got != palette[core.ColorDefault] {
		t.Errorf("unknown color = %+v", got)
	}
}

func TestWithAlpha(t *testing.T) {
	got := withAlpha(color.RGBA{R: 255, G: 100, B: 0, A: 255}, 51)
	want := color.RGBA{R: 51, G: 20, B: 0, A: 51}
	if got != want {
		t.Errorf("withAlpha = %+v, expected %+v", got, want)
	}
}
