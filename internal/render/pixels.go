package render

import "image/color"

// HexImageSize returns the pixel dimensions of a w×h offset lattice drawn at
// scale pixels per cell. Odd rows are shifted right by half a cell, so the
// image is half a cell wider than the grid.
func HexImageSize(w, h, scale int) (int, int) {
	if scale <= 0 {
		scale = 1
	}
	return w*scale + scale/2, h * scale
}

// CellAt maps an image pixel back to lattice coordinates. ok is false when
// the pixel falls in the empty margin of an offset row or off the image.
func CellAt(px, py, w, h, scale int) (row, col int, ok bool) {
	if scale <= 0 {
		scale = 1
	}
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	row = py / scale
	if row%2 != 0 {
		px -= scale / 2
		if px < 0 {
			return 0, 0, false
		}
	}
	col = px / scale
	if row >= h || col >= w {
		return 0, 0, false
	}
	return row, col, true
}

// fillHexRGBA rasterises cell values into buf as a brick layout: each cell is
// a scale×scale block, odd rows offset by scale/2. buf must hold
// 4*imgW*imgH bytes for the size reported by HexImageSize. Pixels not covered
// by any cell take palette[0].
func fillHexRGBA(buf []byte, cells []uint8, w, h, scale int, palette []color.RGBA) {
	if scale <= 0 {
		scale = 1
	}
	imgW, _ := HexImageSize(w, h, scale)
	var bg color.RGBA
	if len(palette) > 0 {
		bg = palette[0]
	}
	for i := 0; i+3 < len(buf); i += 4 {
		buf[i+0], buf[i+1], buf[i+2], buf[i+3] = bg.R, bg.G, bg.B, bg.A
	}
	if len(palette) == 0 {
		return
	}
	last := len(palette) - 1
	for row := 0; row < h; row++ {
		offset := 0
		if row%2 != 0 {
			offset = scale / 2
		}
		for col := 0; col < w; col++ {
			idx := row*w + col
			if idx >= len(cells) {
				return
			}
			c := palette[min(int(cells[idx]), last)]
			x0 := col*scale + offset
			for y := row * scale; y < (row+1)*scale; y++ {
				base := (y*imgW + x0) * 4
				for x := 0; x < scale; x++ {
					p := base + x*4
					buf[p+0], buf[p+1], buf[p+2], buf[p+3] = c.R, c.G, c.B, c.A
				}
			}
		}
	}
}
