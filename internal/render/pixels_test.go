package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillPaletteClampsStates(t *testing.T) {
	palette := []color.RGBA{{R: 1, A: 255}, {G: 2, A: 255}}
	buf := make([]byte, 12)
	fillPaletteRGBA(buf, []uint8{0, 1, 7}, palette)
	want := []byte{1, 0, 0, 255, 0, 2, 0, 255, 0, 2, 0, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("pixels %v, want %v", buf, want)
	}
}

func TestFillPaletteEmptyClears(t *testing.T) {
	buf := []byte{9, 9, 9, 9, 9, 9, 9, 9}
	fillPaletteRGBA(buf, []uint8{1, 0}, nil)
	for _, b := range buf {
		if b != 0 {
			t.Fatalf("buffer not cleared: %v", buf)
		}
	}
}
