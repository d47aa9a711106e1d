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

package z80

import "github.com/jetsetilly/gopher8bit/hardware/state"

// StateSave adds the CPU registers and interrupt state to the Saver. State
// should only be saved between calls to Execute().
func (mc *CPU) StateSave(s *state.Saver) {
	s.Tag("z80")
	s.SaveByte(mc.A, mc.F, mc.B, mc.C, mc.D, mc.E, mc.H, mc.L)
	s.SaveWord(mc.AF2, mc.BC2, mc.DE2, mc.HL2)
	s.SaveWord(mc.IX, mc.IY, mc.SP, mc.PC)
	s.SaveByte(mc.I, mc.R, mc.IM)
	s.SaveBool(mc.IFF1, mc.IFF2, mc.Halted, mc.intLine, mc.nmiPending, mc.eiDefer)
	s.SaveInt(int(mc.cycles))
}

// StateLoad restores the CPU from the Loader. Errors are accumulated by the
// Loader.
func (mc *CPU) StateLoad(l *state.Loader) {
	l.Tag("z80")
	l.LoadByte(&mc.A, &mc.F, &mc.B, &mc.C, &mc.D, &mc.E, &mc.H, &mc.L)
	l.LoadWord(&mc.AF2, &mc.BC2, &mc.DE2, &mc.HL2)
	l.LoadWord(&mc.IX, &mc.IY, &mc.SP, &mc.PC)
	l.LoadByte(&mc.I, &mc.R, &mc.IM)
	l.LoadBool(&mc.IFF1, &mc.IFF2, &mc.Halted, &mc.intLine, &mc.nmiPending, &mc.eiDefer)

	var cycles int
	l.LoadInt(&cycles)
	mc.cycles = uint64(cycles)

	mc.budget = 0
	mc.budgetStart = 0
	mc.yield = false
}
