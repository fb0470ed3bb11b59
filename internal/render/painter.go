//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// HexPainter keeps one RGBA image of the lattice and re-uploads it on every
// Blit.
type HexPainter struct {
	w, h, scale int
	img         *ebiten.Image
	buf         []byte
}

// NewHexPainter allocates a painter for a w×h lattice at the given scale.
func NewHexPainter(w, h, scale int) *HexPainter {
	if scale <= 0 {
		scale = 1
	}
	iw, ih := HexImageSize(w, h, scale)
	return &HexPainter{
		w: w, h: h, scale: scale,
		img: ebiten.NewImage(iw, ih),
		buf: make([]byte, 4*iw*ih),
	}
}

// Blit rasterises cells with palette and draws the result at the origin of
// dst.
func (p *HexPainter) Blit(dst *ebiten.Image, cells []uint8, palette []color.RGBA) {
	if len(cells) != p.w*p.h {
		return
	}
	fillHexRGBA(p.buf, cells, p.w, p.h, p.scale, palette)
	p.img.WritePixels(p.buf)
	dst.DrawImage(p.img, nil)
}

// Size returns the pixel dimensions of the painted image.
func (p *HexPainter) Size() (int, int) { return HexImageSize(p.w, p.h, p.scale) }

// Matches reports whether the painter was built for this lattice and scale.
func (p *HexPainter) Matches(w, h, scale int) bool {
	return p.w == w && p.h == h && p.scale == scale
}
