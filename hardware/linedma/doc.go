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

// Package linedma implements the display DMA controller. Once per scanline the
// controller fetches the display list, loads the playfield for the scanline
// into the GTIA and loads the player and missile graphics registers.
//
// The display list is a program of one, two or three byte instructions. The
// lower nibble of the first byte selects the instruction:
//
//	0	blank lines. bits 4 to 6 give the number of lines minus one
//	1	jump. with bit 6 set (JVB) the display list waits for the next frame
//	2-f	map modes. bit 6 (LMS) loads the memory scan counter
//
// Bit 7 of any instruction requests a display list interrupt (DLI) at the end
// of the last scanline of the instruction.
//
// Only map modes b to e are drawn. The other map modes are treated as blank
// lines of the correct height but the memory scan counter still advances.
//
// The display list is restarted from the DLIST registers at the top of every
// frame. A display list address of zero while display list DMA is enabled is
// an error.
package linedma
