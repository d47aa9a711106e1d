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

package linedma

import "github.com/jetsetilly/gopher8bit/hardware/gtia"

// the number of scanlines in one row of each map mode.
var modeLines = [16]int{
	0x02: 8, 0x03: 10, 0x04: 8, 0x05: 16, 0x06: 8, 0x07: 16,
	0x08: 8, 0x09: 4, 0x0a: 4, 0x0b: 2, 0x0c: 1, 0x0d: 2, 0x0e: 1, 0x0f: 1,
}

// the number of bytes read from screen memory for one row of each map mode.
var bytesPerLine = [16]uint16{
	0x02: 40, 0x03: 40, 0x04: 40, 0x05: 40, 0x06: 20, 0x07: 20,
	0x08: 10, 0x09: 10, 0x0a: 20, 0x0b: 20, 0x0c: 20, 0x0d: 40, 0x0e: 40, 0x0f: 40,
}

func (d *LineDMA) fetchByte() uint8 {
	v := d.mem.Peek(d.pc)

	// the program counter does not cross a 1k boundary
	d.pc = d.pc&0xfc00 | (d.pc+1)&0x03ff
	return v
}

func (d *LineDMA) fetchWord() uint16 {
	lo := d.fetchByte()
	hi := d.fetchByte()
	return uint16(hi)<<8 | uint16(lo)
}

// fetch the next display list instruction.
func (d *LineDMA) fetch() {
	d.instr = d.fetchByte()

	switch mode := d.instr & 0x0f; mode {
	case 0x00:
		d.lines = int((d.instr>>4)&0x07) + 1
	case 0x01:
		d.pc = d.fetchWord()
		d.waitVB = d.instr&0x40 == 0x40
		d.lines = 1
	default:
		if d.instr&0x40 == 0x40 {
			d.memScan = d.fetchWord()
		}
		d.lines = modeLines[mode]
	}
}

// the memory scan counter does not cross a 4k boundary.
func (d *LineDMA) advanceMemScan(n uint16) {
	d.memScan = d.memScan&0xf000 | (d.memScan+n)&0x0fff
}

func (d *LineDMA) screenByte(i uint16) uint8 {
	return d.mem.Peek(d.memScan&0xf000 | (d.memScan+i)&0x0fff)
}

// render the current row of the map mode into the playfield buffer. modes
// that are not supported are left blank.
func (d *LineDMA) render(mode uint8, pf []uint8) {
	switch mode {
	case 0x0b, 0x0c:
		// one bit per colour clock. set pixels are playfield colour 0
		for x := range pf {
			v := d.screenByte(uint16(x >> 3))
			pf[x] = (v >> (7 - uint(x&0x07))) & 0x01
		}
	case 0x0d, 0x0e:
		// two bits per colour clock. values 1 to 3 are playfield colours 0
		// to 2
		for x := range pf {
			v := d.screenByte(uint16(x >> 2))
			pf[x] = (v >> (6 - uint(x&0x03)*2)) & 0x03
		}
	default:
		clear(pf)
	}
}

// loadPlayerMissiles copies player and missile graphics from memory to the
// GTIA. With double line resolution the graphics of vertically delayed
// objects change on odd scanlines only.
func (d *LineDMA) loadPlayerMissiles(scanline int) {
	gractl := d.gtia.GRACTL()
	vdelay := d.gtia.VDELAY()
	single := d.dmactl&DmactlSingleLine == DmactlSingleLine
	delayed := !single && scanline&0x01 == 0x00

	var base uint16
	var line uint16
	if single {
		base = uint16(d.pmbase&0xf8) << 8
		line = uint16(scanline)
	} else {
		base = uint16(d.pmbase&0xfc) << 8
		line = uint16(scanline >> 1)
	}

	if d.dmactl&DmactlMissiles == DmactlMissiles && gractl&gtia.GractlMissiles == gtia.GractlMissiles {
		var address uint16
		if single {
			address = base + 0x300 + line
		} else {
			address = base + 0x180 + line
		}
		v := d.mem.Peek(address)

		if delayed {
			var mask uint8
			for n := range 4 {
				if vdelay&(0x01<<n) != 0 {
					mask |= 0x03 << (n * 2)
				}
			}
			v = v&^mask | d.gtia.GRAFM()&mask
		}

		d.gtia.Write(gtia.GRAFM, v)
	}

	if d.dmactl&DmactlPlayers == DmactlPlayers && gractl&gtia.GractlPlayers == gtia.GractlPlayers {
		for n := range 4 {
			if delayed && vdelay&(0x10<<n) != 0 {
				continue
			}
			var address uint16
			if single {
				address = base + 0x400 + uint16(n)*0x100 + line
			} else {
				address = base + 0x200 + uint16(n)*0x80 + line
			}
			d.gtia.Write(gtia.GRAFP0+uint8(n), d.mem.Peek(address))
		}
	}
}
