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

package memorymap

import (
	"fmt"
	"strings"
)

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case Cartridge:
		return "Cartridge"
	case RAM:
		return "RAM"
	case GTIA:
		return "GTIA"
	case PIA:
		return "PIA"
	case LineDMA:
		return "LineDMA"
	case CartControl:
		return "CartControl"
	}

	return "undefined"
}

// The different memory areas.
const (
	Undefined Area = iota
	Cartridge
	RAM
	GTIA
	PIA
	LineDMA
	CartControl
)

// The origin and memory top for each area of memory. The RAM area is
// interrupted by the hardware page.
const (
	OriginCart = uint16(0x0000)
	MemtopCart = uint16(0x7fff)
	OriginRAM  = uint16(0x8000)
	MemtopRAM  = uint16(0xffff)

	OriginHardware = uint16(0xd000)
	MemtopHardware = uint16(0xd7ff)

	OriginGTIA        = uint16(0xd000)
	MemtopGTIA        = uint16(0xd0ff)
	OriginPIA         = uint16(0xd300)
	MemtopPIA         = uint16(0xd3ff)
	OriginLineDMA     = uint16(0xd400)
	MemtopLineDMA     = uint16(0xd4ff)
	OriginCartControl = uint16(0xd500)
	MemtopCartControl = uint16(0xd5ff)
)

// Chip registers are mirrored throughout their area of the hardware page.
// The masks keep only the relevant bits of an address that is known to be in
// the area.
const (
	MaskGTIA    = uint16(0x001f)
	MaskPIA     = uint16(0x0003)
	MaskLineDMA = uint16(0x000f)
)

// The extended RAM window. When selected by the PIA, one of the extended RAM
// banks replaces the RAM in this range.
const (
	OriginExtended = uint16(0x8000)
	MemtopExtended = uint16(0xbfff)
)

// The address space is divided into banks of 8k. The memory package keeps a
// read and a write pointer for each bank.
const (
	NumBanks   = 8
	BankSize   = 0x2000
	BankShift  = 13
	BankOffset = uint16(BankSize - 1)
)

// Bank decomposes the address into a bank number and the offset into that
// bank.
func Bank(address uint16) (int, uint16) {
	return int(address >> BankShift), address & BankOffset
}

// IsHardware returns true if the address is in the hardware page. Accesses
// to the hardware page are not made through the banks.
func IsHardware(address uint16) bool {
	return address >= OriginHardware && address <= MemtopHardware
}

// MapAddress returns the memory area the address belongs to and the address
// normalised for that area. For chip areas the normalised address is the
// register number. Addresses in the hardware page that are not connected to
// any chip return the Undefined area.
func MapAddress(address uint16) (uint16, Area) {
	if address <= MemtopCart {
		return address, Cartridge
	}

	if address < OriginHardware || address > MemtopHardware {
		return address, RAM
	}

	switch address & 0xff00 {
	case OriginGTIA:
		return address & MaskGTIA, GTIA
	case OriginPIA:
		return address & MaskPIA, PIA
	case OriginLineDMA:
		return address & MaskLineDMA, LineDMA
	case OriginCartControl:
		return address & 0x00ff, CartControl
	}

	return address, Undefined
}

// IsArea returns true if the address is in the specified area.
func IsArea(address uint16, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}

// Summary returns the memory map as a string. One line per contiguous area.
func Summary() string {
	s := strings.Builder{}

	_, area := MapAddress(0)
	start := 0
	for address := 1; address <= 0x10000; address++ {
		var a Area
		if address < 0x10000 {
			_, a = MapAddress(uint16(address))
			if a == area {
				continue
			}
		}
		s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", start, address-1, area))
		area = a
		start = address
	}

	return strings.TrimSuffix(s.String(), "\n")
}
