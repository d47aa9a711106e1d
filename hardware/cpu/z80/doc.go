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

// Package z80 implements the Zilog Z80 CPU.
//
// Instructions are described by Definition values collected into dispatch
// tables, one table for each opcode prefix: the base table, CB, ED, DD, FD,
// and the DDCB/FDCB tables for bit operations on the index registers. The
// tables are built once from declarative definitions when the package is
// initialised.
//
// The CPU is run with Execute(), which executes instructions until the cycle
// budget is used up. The static cost of each instruction is deducted from the
// budget before the instruction's handler is called. Conditional branches and
// repeating block instructions deduct additional cycles when the branch is
// taken or the instruction repeats. The number of cycles consumed can
// therefore be slightly more than the budget; the caller is expected to
// carry the overrun into the next call.
//
// Memory and I/O accesses are made through the Bus interface.
//
// Interrupts are signalled with SetINT() (level triggered) and TriggerNMI()
// (edge triggered). The data byte put on the bus during the interrupt
// acknowledge cycle, required by interrupt modes 0 and 2, is supplied by the
// function given to SetVectorCallback().
package z80
