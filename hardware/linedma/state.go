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

package linedma

import "github.com/jetsetilly/gopher8bit/hardware/state"

// StateSave adds the controller registers and display list state to the
// Saver.
func (d *LineDMA) StateSave(s *state.Saver) {
	s.Tag("linedma")
	s.SaveByte(d.dmactl, d.chactl, d.pmbase, d.nmien, d.nmist, d.instr)
	s.SaveWord(d.dlist, d.pc, d.memScan)
	s.SaveInt(d.scanline, d.lines)
	s.SaveBool(d.waitVB, d.dli, d.vbiIRQ)
}

// StateLoad restores the controller from the Loader.
func (d *LineDMA) StateLoad(l *state.Loader) {
	l.Tag("linedma")
	l.LoadByte(&d.dmactl, &d.chactl, &d.pmbase, &d.nmien, &d.nmist, &d.instr)
	l.LoadWord(&d.dlist, &d.pc, &d.memScan)
	l.LoadInt(&d.scanline, &d.lines)

	var vbiIRQ bool
	l.LoadBool(&d.waitVB, &d.dli, &vbiIRQ)
	d.setVBIIRQ(vbiIRQ)
}
