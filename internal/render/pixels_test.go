package render

import (
	"image/color"
	"testing"
)

func pixel(buf []byte, imgW, x, y int) color.RGBA {
	i := (y*imgW + x) * 4
	return color.RGBA{R: buf[i], G: buf[i+1], B: buf[i+2], A: buf[i+3]}
}

func TestFillHexRGBAOffsetsOddRows(t *testing.T) {
	palette := []color.RGBA{
		{A: 255},
		{R: 10, A: 255},
		{G: 20, A: 255},
	}
	const w, h, scale = 2, 2, 4
	imgW, imgH := HexImageSize(w, h, scale)
	if imgW != 10 || imgH != 8 {
		t.Fatalf("image size = %dx%d, want 10x8", imgW, imgH)
	}
	buf := make([]byte, 4*imgW*imgH)
	fillHexRGBA(buf, []uint8{1, 2, 2, 1}, w, h, scale, palette)

	if got := pixel(buf, imgW, 0, 0); got != palette[1] {
		t.Fatalf("row 0 col 0 = %v", got)
	}
	if got := pixel(buf, imgW, 9, 0); got != palette[0] {
		t.Fatalf("even row margin = %v, want background", got)
	}
	if got := pixel(buf, imgW, 1, 4); got != palette[0] {
		t.Fatalf("odd row margin = %v, want background", got)
	}
	if got := pixel(buf, imgW, 2, 4); got != palette[2] {
		t.Fatalf("odd row first cell = %v", got)
	}
	if got := pixel(buf, imgW, 9, 7); got != palette[1] {
		t.Fatalf("odd row last cell = %v", got)
	}
}

func TestFillHexRGBAClampsPalette(t *testing.T) {
	palette := []color.RGBA{{A: 255}, {B: 99, A: 255}}
	buf := make([]byte, 4)
	fillHexRGBA(buf, []uint8{200}, 1, 1, 1, palette)
	if got := pixel(buf, 1, 0, 0); got != palette[1] {
		t.Fatalf("out-of-range value drew %v", got)
	}
	fillHexRGBA(buf, []uint8{1}, 1, 1, 1, nil)
	if got := pixel(buf, 1, 0, 0); got != (color.RGBA{}) {
		t.Fatalf("empty palette drew %v", got)
	}
}

func TestCellAt(t *testing.T) {
	tests := []struct {
		px, py   int
		row, col int
		ok       bool
	}{
		{0, 0, 0, 0, true},
		{7, 3, 0, 1, true},
		{1, 4, 0, 0, false},
		{2, 4, 1, 0, true},
		{9, 7, 1, 1, true},
		{8, 0, 0, 0, false},
		{-1, 0, 0, 0, false},
		{0, 8, 0, 0, false},
	}
	for _, tt := range tests {
		row, col, ok := CellAt(tt.px, tt.py, 2, 2, 4)
		if ok != tt.ok || (ok && (row != tt.row || col != tt.col)) {
			t.Errorf("CellAt(%d,%d) = %d,%d,%v want %d,%d,%v", tt.px, tt.py, row, col, ok, tt.row, tt.col, tt.ok)
		}
	}
}
