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

// Package state provides the primitives used by the hardware packages to save
// and restore their state.
//
// Each chip implements a StateSave() and a StateLoad() function. The chip
// marks the start of its section with Tag() and then saves or loads its
// fields in a fixed order:
//
//	func (pia *PIA) StateSave(s *state.Saver) {
//		s.Tag("pia")
//		s.SaveByte(pia.ctl[0], pia.ctl[1])
//	}
//
//	func (pia *PIA) StateLoad(l *state.Loader) {
//		l.Tag("pia")
//		l.LoadByte(&pia.ctl[0], &pia.ctl[1])
//	}
//
// Errors on loading are sticky. The first error is returned by Err() and all
// subsequent loads are ignored.
//
// Older versions of the state format omit some fields. Chips should check
// Version() and derive the missing fields, normally by sending the saved
// register values through the same path used by a CPU write.
//
// A complete state is written to disk with WriteTo() and read with
// ReadFrom(). The file has a short header consisting of the magic string
// "G8BS", the version number and the CRC32 checksum of the state data.
package state
