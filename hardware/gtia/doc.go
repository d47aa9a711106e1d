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

// Package gtia implements the player/missile graphics and the collision
// detection of the GTIA video chip.
//
// Players and missiles are drawn into a scanline buffer at the start of every
// scanline by NewScanline(). Each entry in the buffer is one colour clock. Bits
// 0 to 3 of an entry indicate the presence of players 0 to 3 and bits 4 to 7
// indicate the presence of missiles 0 to 3.
//
// Collisions can be resolved in one of two ways. The Simple strategy records
// collisions while the objects are drawn and makes them visible to the CPU at
// the end of the scanline. The CycleExact strategy resolves collisions from
// the scanline buffer as the beam moves across the screen, so that a collision
// register read part way through a scanline sees only those collisions that
// have happened to the left of the beam.
//
// The strategy is selected with the gtia.cycleexact preference. The
// collision registers can be masked with the gtia.collisions.mask.*
// preferences.
package gtia
