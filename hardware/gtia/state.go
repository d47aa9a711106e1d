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

import "github.com/jetsetilly/gopher8bit/hardware/state"

// StateSave adds the GTIA registers and collision state to the Saver.
func (g *GTIA) StateSave(s *state.Saver) {
	s.Tag("gtia")
	s.SaveByte(g.regs[:]...)
	s.SaveByte(g.players[:]...)
	s.SaveByte(g.missiles[:]...)
	s.SaveByte(g.pfCollisions[:]...)
	s.SaveBool(g.triggerLatch[:]...)
	s.SaveInt(g.cursor)
}

// StateLoad restores the GTIA from the Loader. The values derived from the
// registers are recreated by writing to the registers.
//
// The collision cursor was not saved in version 1 of the state format. The
// state is saved between frames so the cursor is assumed to be zero.
func (g *GTIA) StateLoad(l *state.Loader) {
	l.Tag("gtia")
	g.drawing = false

	var regs [NumRegisters]uint8
	for i := range regs {
		l.LoadByte(&regs[i])
	}
	for i, v := range regs {
		if i == HITCLR {
			g.regs[i] = v
			continue
		}
		g.Write(uint8(i), v)
	}

	for n := range 4 {
		l.LoadByte(&g.players[n])
	}
	for n := range 4 {
		l.LoadByte(&g.missiles[n])
	}
	for n := range 4 {
		l.LoadByte(&g.pfCollisions[n])
	}
	for n := range 4 {
		l.LoadBool(&g.triggerLatch[n])
	}

	g.cursor = 0
	if l.Version() >= state.Version2 {
		l.LoadInt(&g.cursor)
	}

	// the scanline buffer is redrawn on the next scanline
	g.dirty = true
}
