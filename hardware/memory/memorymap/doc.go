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

// Package memorymap facilitates the translation of addresses to memory areas.
//
// The address space is divided as follows:
//
//	0000 -> 7fff	cartridge ROM. the upper 16k is banked for large cartridges
//	8000 -> cfff	RAM. 8000 to bfff can be replaced by extended RAM
//	d000 -> d0ff	GTIA (mirrored every 32 bytes)
//	d300 -> d3ff	PIA (mirrored every 4 bytes)
//	d400 -> d4ff	line DMA (mirrored every 16 bytes)
//	d500 -> d5ff	cartridge bank control
//	d800 -> ffff	RAM
//
// The areas d100 -> d2ff and d600 -> d7ff are not connected to anything.
package memorymap
