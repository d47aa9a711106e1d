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

package memory

import "github.com/jetsetilly/gopher8bit/hardware/state"

// StateSave adds RAM, extended RAM and the cartridge bank to the Saver. The
// cartridge data is not saved.
func (mem *Memory) StateSave(s *state.Saver) {
	s.Tag("memory")
	s.SaveBlob(mem.RAM[:])
	for i := range mem.Extended {
		s.SaveBlob(mem.Extended[i][:])
	}
	s.SaveInt(mem.Cart.bank)
}

// StateLoad restores memory from the Loader.
func (mem *Memory) StateLoad(l *state.Loader) {
	l.Tag("memory")
	copy(mem.RAM[:], l.LoadBlob())
	for i := range mem.Extended {
		copy(mem.Extended[i][:], l.LoadBlob())
	}
	var bank int
	l.LoadInt(&bank)
	mem.Cart.SetBank(bank)
	mem.mapCartridge()
}
