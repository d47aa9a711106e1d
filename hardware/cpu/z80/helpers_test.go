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

package z80_test

// mockBus is a flat 64KB memory with 256 I/O ports. every output is recorded.
type mockBus struct {
	mem   [0x10000]uint8
	ports [256]uint8
	outs  []output
}

type output struct {
	port uint8
	data uint8
}

func (bus *mockBus) Read(address uint16) uint8 {
	return bus.mem[address]
}

func (bus *mockBus) Write(address uint16, data uint8) {
	bus.mem[address] = data
}

func (bus *mockBus) In(port uint8) uint8 {
	return bus.ports[port]
}

func (bus *mockBus) Out(port uint8, data uint8) {
	bus.outs = append(bus.outs, output{port: port, data: data})
}

func (bus *mockBus) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		bus.mem[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}
