// This file is part of Gopher8bit.
//
// Gopher8bit is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8bit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8bit.  If not, see <https://www.gnu.org/licenses/>.

package gtia

// BufferSize is the number of entries in the scanline buffer. One entry for
// every colour clock in the widest display plus a margin.
const BufferSize = 200

// objects are not drawn outside of these limits.
const (
	clipLeft  = 2
	clipRight = BufferSize - 10
)

// the horizontal position that corresponds to the first entry in the
// scanline buffer.
const hposOrigin = 0x20

// expansion of the player graphics registers. bit 0 of an entry is the
// leftmost colour clock. the index into the first dimension is the SIZEP
// value: normal, double, normal and quadruple width.
var grafpLookup [4][256]uint32

func init() {
	for i := range 256 {
		var x1, x2, x4 uint32
		for b := range 8 {
			if i&(0x80>>b) != 0 {
				x1 |= 0x01 << b
				x2 |= 0x03 << (2 * b)
				x4 |= 0x0f << (4 * b)
			}
		}
		grafpLookup[0][i] = x1
		grafpLookup[1][i] = x2
		grafpLookup[2][i] = x1
		grafpLookup[3][i] = x4
	}
}

// the width in colour clocks of each bit of a missile for each SIZEM value.
var missileWidths = [4]int{1, 2, 1, 4}

// hpospMask returns the mask applied to the expanded player graphics for the
// horizontal position. the mask removes those colour clocks that would be
// drawn outside of the clipping area.
func hpospMask(hpos uint8) uint32 {
	switch {
	case hpos <= 2:
		return 0
	case hpos < 0x22:
		return 0xffffffff << (0x22 - hpos)
	case hpos <= 0xbe:
		return 0xffffffff
	case hpos < 0xde:
		return 0xffffffff >> (hpos - 0xbe)
	}
	return 0
}

// NewScanline draws the players and missiles into the scanline buffer. It
// should be called once at the beginning of every scanline, after the
// graphics registers have been loaded by DMA.
func (g *GTIA) NewScanline() {
	// the buffer only needs to be cleared if anything was drawn on the
	// previous scanline
	if g.dirty {
		clear(g.buffer[:])
		g.dirty = false
	}

	g.playersT = [4]uint8{}
	g.missilesT = [4]uint8{}
	g.lineCleared = false
	g.cursor = 0

	g.draw(0)
	g.drawing = true
}

// redraw the scanline buffer from the entry onwards using the current values
// of the graphics registers. entries to the left are not changed.
func (g *GTIA) redraw(from int) {
	from = max(from, 0)
	if from >= BufferSize {
		return
	}
	if g.dirty {
		clear(g.buffer[from:])
	}
	g.draw(from)
}

// draw the players and missiles into the entries of the scanline buffer from
// the entry onwards. the entries must be clear.
func (g *GTIA) draw(from int) {
	// player 0 is drawn first into a clear buffer so there is nothing to
	// collide with
	if v := g.regs[GRAFP0]; v != 0 {
		mask := g.grafp[0][v] & g.hpospMask[0]
		pos := int(g.regs[HPOSP0]) - hposOrigin
		for ; mask != 0; mask >>= 1 {
			if mask&0x01 == 0x01 && pos >= from {
				g.buffer[pos] = 0x01
			}
			pos++
		}
		g.dirty = true
	}

	for n := 1; n < 4; n++ {
		v := g.regs[GRAFP0+n]
		if v == 0 {
			continue
		}
		bit := uint8(0x01 << n)
		mask := g.grafp[n][v] & g.hpospMask[n]
		pos := int(g.regs[HPOSP0+n]) - hposOrigin
		for ; mask != 0; mask >>= 1 {
			if mask&0x01 == 0x01 && pos >= from {
				g.buffer[pos] |= bit
				g.playersT[n] |= g.buffer[pos]
			}
			pos++
		}
		g.dirty = true
	}

	grafm := g.regs[GRAFM]
	if grafm == 0 {
		return
	}

	// each missile has two bits in GRAFM. the higher bit is the leftmost
	for n := 3; n >= 0; n-- {
		bits := (grafm >> (2 * n)) & 0x03
		if bits == 0 {
			continue
		}

		width := g.missileWidth[n]
		pos := int(g.regs[HPOSM0+n]) - hposOrigin
		switch bits {
		case 0x03:
			width <<= 1
		case 0x01:
			pos += width
		}

		if pos < clipLeft {
			width += pos - clipLeft
			pos = clipLeft
		} else if pos+width > clipRight {
			width = clipRight - pos
		}

		bit := uint8(0x10 << n)
		for ; width > 0; width-- {
			if pos >= from {
				g.buffer[pos] |= bit
				g.missilesT[n] |= g.buffer[pos]
			}
			pos++
		}
	}
	g.dirty = true
}

// Scanline returns the scanline buffer. The returned slice should not be
// modified.
func (g *GTIA) Scanline() []uint8 {
	return g.buffer[:]
}

// Playfield returns the playfield buffer for the current scanline. Each entry
// is aligned with the scanline buffer and contains a value between zero and
// four: zero for the background and one to four for playfield colours 0 to 3.
//
// The playfield buffer is written by the display DMA before NewScanline() is
// called.
func (g *GTIA) Playfield() []uint8 {
	return g.playfield[:]
}
