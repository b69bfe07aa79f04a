package render

import "image/color"

// fillBinaryRGBA converts live/dead cells into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []bool, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// CellAt maps a screen position to the (row, col) of the cell drawn there at
// the given scale. Positions outside the board are reported as ok=false.
func CellAt(x, y, scale, w, h int) (row, col int, ok bool) {
	if scale <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y/scale, x/scale
	if row >= h || col >= w {
		return 0, 0, false
	}
	return row, col, true
}
