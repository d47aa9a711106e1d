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

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8bit/hardware/instance"
	"github.com/jetsetilly/gopher8bit/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher8bit/hardware/pia"
	"github.com/jetsetilly/gopher8bit/logger"
)

// Chip is implemented by the chips connected to the hardware page. The
// register argument has been normalised by the memorymap package.
type Chip interface {
	Read(reg uint8) uint8
	Write(reg uint8, v uint8)
	Peek(reg uint8) uint8
}

// PortB is the PIA port that selects extended RAM.
type PortB interface {
	Output(p pia.Port) uint8
}

// sizes of RAM areas.
const (
	ramSize      = 0x8000
	extendedSize = 0x4000
	numExtended  = 4
)

// bits in PIA port B that control extended RAM.
const (
	portBExtendedDisable = 0x10
	portBExtendedBank    = 0x0c
)

// Memory is the address space seen by the CPU.
type Memory struct {
	instance *instance.Instance

	Cart *Cartridge

	// RAM between 8000 and ffff. the hardware page is never read from
	// or written to this array
	RAM [ramSize]uint8

	Extended [numExtended][extendedSize]uint8

	// the memory seen by the CPU through each 8k bank of the address space.
	// accesses to the hardware page do not use the banks
	readBanks  [memorymap.NumBanks][]uint8
	writeBanks [memorymap.NumBanks][]uint8

	// writes to the cartridge area are sunk here
	sink [memorymap.BankSize]uint8

	// the extended RAM bank mapped into the extended RAM window. -1 if main
	// RAM is mapped
	extended int

	gtia    Chip
	pia     Chip
	lineDMA Chip
	portB   PortB
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(instance *instance.Instance) *Memory {
	mem := &Memory{
		instance: instance,
	}

	// an empty cartridge reads as 0xff everywhere
	mem.Cart, _ = NewCartridge(nil)
	mem.mapCartridge()
	mem.mapExtended(-1)

	// main RAM above the extended RAM window is never replaced
	for n := memorymap.MemtopExtended>>memorymap.BankShift + 1; n < memorymap.NumBanks; n++ {
		b := mem.RAM[(n<<memorymap.BankShift)-memorymap.OriginRAM:][:memorymap.BankSize]
		mem.readBanks[n] = b
		mem.writeBanks[n] = b
	}

	return mem
}

// mapCartridge points the banks of the cartridge area at the cartridge data.
// Must be called whenever the cartridge or the cartridge bank changes.
func (mem *Memory) mapCartridge() {
	for n := range memorymap.MemtopCart>>memorymap.BankShift + 1 {
		mem.readBanks[n] = mem.Cart.page(int(n))
		mem.writeBanks[n] = mem.sink[:]
	}
}

// mapExtended points the banks of the extended RAM window at the extended
// RAM bank. A bank of -1 maps main RAM.
func (mem *Memory) mapExtended(bank int) {
	mem.extended = bank
	for n := memorymap.OriginExtended >> memorymap.BankShift; n <= memorymap.MemtopExtended>>memorymap.BankShift; n++ {
		var b []uint8
		if bank < 0 {
			b = mem.RAM[(n<<memorymap.BankShift)-memorymap.OriginRAM:][:memorymap.BankSize]
		} else {
			b = mem.Extended[bank][(n<<memorymap.BankShift)-memorymap.OriginExtended:][:memorymap.BankSize]
		}
		mem.readBanks[n] = b
		mem.writeBanks[n] = b
	}
}

// syncExtended maps the extended RAM bank selected by the PIA if it has
// changed since the last access.
func (mem *Memory) syncExtended() {
	bank := -1
	if b, ok := mem.extendedBank(); ok {
		bank = b
	}
	if bank != mem.extended {
		mem.mapExtended(bank)
	}
}

// Plumb connects the chips in the hardware page. Any argument can be nil.
func (mem *Memory) Plumb(gtia Chip, pia Chip, lineDMA Chip, portB PortB) {
	mem.gtia = gtia
	mem.pia = pia
	mem.lineDMA = lineDMA
	mem.portB = portB
}

// Attach a cartridge. The cartridge is reset.
func (mem *Memory) Attach(cart *Cartridge) {
	mem.Cart = cart
	mem.Cart.Reset()
	mem.mapCartridge()
	logger.Logf(mem, "memory", "attached %s", cart)
}

// Reset clears RAM and extended RAM and resets the cartridge banking.
func (mem *Memory) Reset() {
	clear(mem.RAM[:])
	for i := range mem.Extended {
		clear(mem.Extended[i][:])
	}
	mem.Cart.Reset()
	mem.mapCartridge()
}

// AllowLogging implements the logger.Permission interface.
func (mem *Memory) AllowLogging() bool {
	return mem.instance == nil || mem.instance.AllowLogging()
}

func (mem *Memory) String() string {
	s := strings.Builder{}
	s.WriteString(mem.Cart.String())
	if bank, ok := mem.extendedBank(); ok {
		s.WriteString(fmt.Sprintf(", extended RAM bank %d", bank))
	}
	return s.String()
}

// extendedBank returns the extended RAM bank selected by the PIA. The second
// return value is false if extended RAM is not selected.
func (mem *Memory) extendedBank() (int, bool) {
	if mem.portB == nil {
		return 0, false
	}
	b := mem.portB.Output(pia.PortB)
	if b&portBExtendedDisable == portBExtendedDisable {
		return 0, false
	}
	return int(b&portBExtendedBank) >> 2, true
}

func (mem *Memory) chip(area memorymap.Area) Chip {
	switch area {
	case memorymap.GTIA:
		return mem.gtia
	case memorymap.PIA:
		return mem.pia
	case memorymap.LineDMA:
		return mem.lineDMA
	}
	return nil
}

// Read implements the z80.Bus interface.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.read(address, false)
}

// Peek returns the value at the address without side effects.
func (mem *Memory) Peek(address uint16) uint8 {
	return mem.read(address, true)
}

func (mem *Memory) read(address uint16, noSideEffects bool) uint8 {
	if memorymap.IsHardware(address) {
		mapped, area := memorymap.MapAddress(address)
		chip := mem.chip(area)
		if chip == nil {
			return 0xff
		}
		if noSideEffects {
			return chip.Peek(uint8(mapped))
		}
		return chip.Read(uint8(mapped))
	}

	if address >= memorymap.OriginExtended && address <= memorymap.MemtopExtended {
		mem.syncExtended()
	}

	bank, offset := memorymap.Bank(address)
	return mem.readBanks[bank][offset]
}

// Write implements the z80.Bus interface. Writes to the cartridge area are
// sunk.
func (mem *Memory) Write(address uint16, v uint8) {
	if memorymap.IsHardware(address) {
		mapped, area := memorymap.MapAddress(address)
		if chip := mem.chip(area); chip != nil {
			chip.Write(uint8(mapped), v)
		} else if area == memorymap.CartControl {
			mem.Cart.SetBank(int(v))
			mem.mapCartridge()
		}
		return
	}

	if address >= memorymap.OriginExtended && address <= memorymap.MemtopExtended {
		mem.syncExtended()
	}

	bank, offset := memorymap.Bank(address)
	mem.writeBanks[bank][offset] = v
}

// Poke changes the value at the address without side effects. Cartridge data
// can be poked. Chip registers can not.
func (mem *Memory) Poke(address uint16, v uint8) {
	if memorymap.IsHardware(address) {
		return
	}

	if address >= memorymap.OriginExtended && address <= memorymap.MemtopExtended {
		mem.syncExtended()
	}

	// the read banks of the cartridge area point to the cartridge data
	bank, offset := memorymap.Bank(address)
	mem.readBanks[bank][offset] = v
}

// Load copies data into memory starting at the address. Data that would pass
// the top of memory is ignored.
func (mem *Memory) Load(address uint16, data []uint8) {
	for i, v := range data {
		a := int(address) + i
		if a > 0xffff {
			return
		}
		mem.Poke(uint16(a), v)
	}
}
