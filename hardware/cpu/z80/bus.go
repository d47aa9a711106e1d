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

// Bus defines the memory and I/O operations required by the CPU.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)

	// only the lower eight bits of the port address are decoded
	In(port uint8) uint8
	Out(port uint8, data uint8)
}
