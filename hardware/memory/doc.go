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

// Package memory implements the memory map of the machine as seen by the CPU.
//
// The CPU reads and writes memory through the Read() and Write() functions.
// Addresses are translated to a memory area by the memorymap package and the
// access is forwarded to the cartridge, to RAM or to one of the chips in the
// hardware page. Chips are connected with the Plumb() function.
//
// Outside of the hardware page the address space is divided into eight 8k
// read banks and eight 8k write banks. The bank is the top three bits of the
// address and the remaining 13 bits are the offset into the bank. The write
// banks of the cartridge area all point to a single dummy bank so that writes
// to ROM are discarded. Banks are remapped when the cartridge bank or the
// extended RAM selection changes.
//
// Cartridges of 32k or less are mapped at the bottom of the address space.
// Larger cartridges are divided into 16k banks. The first bank is fixed at
// 0000 -> 3fff and the bank at 4000 -> 7fff is selected by writing the bank
// number to the cartridge control area at d500 -> d5ff.
//
// The RAM between 8000 and bfff can be replaced by one of four 16k banks of
// extended RAM. Extended RAM is selected when bit 4 of PIA port B is clear.
// Bits 2 and 3 of port B choose the bank.
//
// The Peek() and Poke() functions access memory without side effects and are
// intended for debugging and for the disassembler.
package memory
