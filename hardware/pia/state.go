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

package pia

import "github.com/jetsetilly/gopher8bit/hardware/state"

// StateSave adds the PIA registers to the Saver.
func (pia *PIA) StateSave(s *state.Saver) {
	s.Tag("pia")
	for i := range pia.ports {
		pt := &pia.ports[i]
		s.SaveByte(pt.latch, pt.mask, pt.ctl, pt.input)
		s.SaveBool(pt.c1, pt.c2)
		s.SaveBool(pt.negPending, pt.posPending)
	}
}

// StateLoad restores the PIA from the Loader. Attached devices are told about
// the restored port output and control line level.
//
// Version 1 of the state format did not include the pending control line
// transitions. They are assumed to be clear.
func (pia *PIA) StateLoad(l *state.Loader) {
	l.Tag("pia")
	for i := range pia.ports {
		pt := &pia.ports[i]
		l.LoadByte(&pt.latch, &pt.mask, &pt.ctl, &pt.input)
		l.LoadBool(&pt.c1, &pt.c2)

		pt.negPending = false
		pt.posPending = false
		if l.Version() >= state.Version2 {
			l.LoadBool(&pt.negPending, &pt.posPending)
		}

		if pt.conn != nil {
			pt.conn.PortOutput(pt.output())
			pt.conn.ControlLine(pt.c2)
		}
	}
	pia.updateIRQ()
}
