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

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/gopher8bit/test"
)

func TestHPOSPMask(t *testing.T) {
	tcs := []struct {
		hpos uint8
		mask uint32
	}{
		{0x00, 0x00000000},
		{0x02, 0x00000000},
		{0x03, 0x80000000},
		{0x21, 0xfffffffe},
		{0x22, 0xffffffff},
		{0xbe, 0xffffffff},
		{0xbf, 0x7fffffff},
		{0xdd, 0x00000001},
		{0xde, 0x00000000},
		{0xff, 0x00000000},
	}

	g := NewGTIA(nil, nil)
	for _, tc := range tcs {
		tag := fmt.Sprintf("hpos %#02x", tc.hpos)
		test.ExpectEquality(t, hpospMask(tc.hpos), tc.mask, tag)

		// the derived mask is refreshed immediately by a write to the register
		g.Write(HPOSP2, tc.hpos)
		test.ExpectEquality(t, g.hpospMask[2], tc.mask, tag)
	}
}

func TestGrafpLookup(t *testing.T) {
	test.ExpectEquality(t, grafpLookup[0][0x80], 0x00000001)
	test.ExpectEquality(t, grafpLookup[0][0x01], 0x00000080)
	test.ExpectEquality(t, grafpLookup[1][0x80], 0x00000003)
	test.ExpectEquality(t, grafpLookup[1][0x01], 0x0000c000)
	test.ExpectEquality(t, grafpLookup[3][0x80], 0x0000000f)
	test.ExpectEquality(t, grafpLookup[3][0x01], 0xf0000000)
	test.ExpectEquality(t, grafpLookup[3][0xff], 0xffffffff)
	test.ExpectEquality(t, grafpLookup[2], grafpLookup[0])

	g := NewGTIA(nil, nil)
	g.Write(SIZEP1, 0x03)
	test.ExpectEquality(t, g.grafp[1], &grafpLookup[3])
	g.Write(SIZEP1, 0xfe)
	test.ExpectEquality(t, g.grafp[1], &grafpLookup[2])
}

func TestMissileWidths(t *testing.T) {
	g := NewGTIA(nil, nil)
	g.Write(SIZEM, 0b11_10_01_00)
	test.ExpectEquality(t, g.missileWidth, [4]int{1, 2, 1, 4})
	g.Write(SIZEM, 0b01_00_11_01)
	test.ExpectEquality(t, g.missileWidth, [4]int{2, 4, 1, 2})
}

func TestDirtyScanline(t *testing.T) {
	g := NewGTIA(nil, nil)

	empty := [BufferSize]uint8{}

	g.NewScanline()
	test.ExpectFailure(t, g.dirty)
	test.ExpectEquality(t, g.buffer, empty)

	g.Write(HPOSP0, 0x40)
	g.Write(GRAFP0, 0xff)
	g.NewScanline()
	test.ExpectSuccess(t, g.dirty)
	test.ExpectInequality(t, g.buffer, empty)

	// nothing is drawn so the buffer is cleared
	g.Write(GRAFP0, 0x00)
	g.NewScanline()
	test.ExpectFailure(t, g.dirty)
	test.ExpectEquality(t, g.buffer, empty)

	// subsequent scanlines with nothing drawn leave the buffer unchanged
	for range 10 {
		before := g.buffer
		g.NewScanline()
		test.ExpectEquality(t, g.buffer, before)
		test.ExpectEquality(t, g.buffer, empty)
	}
}

func TestPlayerDraw(t *testing.T) {
	g := NewGTIA(nil, nil)

	g.Write(HPOSP0, 0x40)
	g.Write(GRAFP0, 0xff)
	g.NewScanline()
	test.ExpectEquality(t, g.buffer[0x1f], 0x00)
	for i := 0x20; i <= 0x27; i++ {
		test.ExpectEquality(t, g.buffer[i], 0x01, i)
	}
	test.ExpectEquality(t, g.buffer[0x28], 0x00)

	// leftmost pixel is bit 7
	g.Write(GRAFP0, 0x81)
	g.Write(SIZEP0, 0x01)
	g.NewScanline()
	test.ExpectEquality(t, g.buffer[0x20], 0x01)
	test.ExpectEquality(t, g.buffer[0x21], 0x01)
	test.ExpectEquality(t, g.buffer[0x22], 0x00)
	test.ExpectEquality(t, g.buffer[0x2d], 0x00)
	test.ExpectEquality(t, g.buffer[0x2e], 0x01)
	test.ExpectEquality(t, g.buffer[0x2f], 0x01)
	test.ExpectEquality(t, g.buffer[0x30], 0x00)
}

func TestPlayerClipping(t *testing.T) {
	g := NewGTIA(nil, nil)

	// completely off the left of the buffer
	g.Write(HPOSP0, 0x10)
	g.Write(GRAFP0, 0xff)

	// partially clipped on the left
	g.Write(HPOSP1, 0x21)
	g.Write(GRAFP1, 0xff)

	// partially clipped on the right
	g.Write(HPOSP2, 0xc8)
	g.Write(SIZEP2, 0x03)
	g.Write(GRAFP2, 0xff)

	g.NewScanline()

	test.ExpectEquality(t, g.buffer[0], 0x00)
	test.ExpectEquality(t, g.buffer[1], 0x00)
	for i := 2; i <= 8; i++ {
		test.ExpectEquality(t, g.buffer[i], 0x02, i)
	}
	test.ExpectEquality(t, g.buffer[9], 0x00)

	for i := 0xa8; i < clipRight; i++ {
		test.ExpectEquality(t, g.buffer[i], 0x04, i)
	}
	for i := clipRight; i < BufferSize; i++ {
		test.ExpectEquality(t, g.buffer[i], 0x00, i)
	}
}

func TestMissileDraw(t *testing.T) {
	g := NewGTIA(nil, nil)
	g.Write(HPOSM0, 0x50)

	// both bits of missile 0
	g.Write(GRAFM, 0x03)
	g.NewScanline()
	test.ExpectEquality(t, g.buffer[0x2f], 0x00)
	test.ExpectEquality(t, g.buffer[0x30], 0x10)
	test.ExpectEquality(t, g.buffer[0x31], 0x10)
	test.ExpectEquality(t, g.buffer[0x32], 0x00)

	// left bit only
	g.Write(GRAFM, 0x02)
	g.NewScanline()
	test.ExpectEquality(t, g.buffer[0x30], 0x10)
	test.ExpectEquality(t, g.buffer[0x31], 0x00)

	// right bit only
	g.Write(GRAFM, 0x01)
	g.NewScanline()
	test.ExpectEquality(t, g.buffer[0x30], 0x00)
	test.ExpectEquality(t, g.buffer[0x31], 0x10)

	// quadruple width with both bits
	g.Write(SIZEM, 0x03)
	g.Write(GRAFM, 0x03)
	g.NewScanline()
	for i := 0x30; i <= 0x37; i++ {
		test.ExpectEquality(t, g.buffer[i], 0x10, i)
	}
	test.ExpectEquality(t, g.buffer[0x38], 0x00)

	// missile 3 is four colour clocks wide and clipped on the left
	g.Write(SIZEM, 0x40)
	g.Write(HPOSM3, 0x21)
	g.Write(GRAFM, 0xc0)
	g.NewScanline()
	test.ExpectEquality(t, g.buffer[1], 0x00)
	test.ExpectEquality(t, g.buffer[2], 0x80)
	test.ExpectEquality(t, g.buffer[3], 0x80)
	test.ExpectEquality(t, g.buffer[4], 0x80)
	test.ExpectEquality(t, g.buffer[5], 0x00)
}
