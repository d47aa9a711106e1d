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

// Package disassembly produces a disassembly of a cartridge using the same
// instruction definitions as the CPU's dispatch tables.
//
// The disassembly follows the flow of the program from the CPU's entry
// points: the reset address, the RST addresses and the NMI address. Bytes
// that are reached this way are considered to be reliable instructions. Every
// other address is also decoded as though it were the start of an
// instruction. These entries are less reliable but are useful when the flow
// of the program can not be determined statically, for example when jumping
// through a register.
//
// For banked cartridges every bank is disassembled separately. The fixed area
// at the bottom of the cartridge is only included with the first bank.
package disassembly
