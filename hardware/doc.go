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

// Package hardware is the base package for the board emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Board type is the root of the emulation and contains external
// references to all the board's sub-systems. From here, the emulation can be
// run continuously (with an optional callback to check for continuation), run
// for a number of frames, or stepped scanline by scanline.
//
// The CPU runs for the length of a scanline at a time. The graphics chip is
// prepared before the CPU runs and finalised afterwards. Accesses to the
// collision registers during the scanline are resolved at the position of the
// beam, which is derived from the number of cycles the CPU has executed since
// the start of the scanline.
//
// The state of the board can be saved to and loaded from a file with the
// Save() and Load() functions. Snapshot() and Plumb() do the same in memory
// and are used by the Rewind type.
package hardware
