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
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/jetsetilly/gopher8bit/hardware/memory/memorymap"
)

// Error patterns returned by the memory package.
const (
	CartridgeSize = "cartridge: unsupported size (%d bytes)"
)

// sizes of cartridge areas.
const (
	cartSize  = 0x8000
	bankSize  = 0x4000
	maxBanks  = 64
	bankMask  = bankSize - 1
	bankFixed = 0
)

// Cartridge represents the ROM mapped at the bottom of the address space.
type Cartridge struct {
	// the cartridge data. small cartridges are padded with 0xff to fill the
	// cartridge area
	rom []uint8

	// size of the cartridge data before padding
	size int

	// number of banks in the cartridge. zero if the cartridge is not banked
	banks int

	// the bank currently mapped into 4000 -> 7fff
	bank int

	// SHA1 of the cartridge data
	Hash string
}

// NewCartridge creates a new cartridge from the data. The data is copied.
// Cartridges larger than 32k must be a multiple of 16k.
func NewCartridge(data []uint8) (*Cartridge, error) {
	cart := &Cartridge{
		Hash: fmt.Sprintf("%x", sha1.Sum(data)),
		size: len(data),
	}

	if len(data) > cartSize {
		if len(data)%bankSize != 0 || len(data)/bankSize > maxBanks {
			return nil, curated.Errorf(CartridgeSize, len(data))
		}
		cart.banks = len(data) / bankSize
		cart.bank = 1
	}

	cart.rom = make([]uint8, max(len(data), cartSize))
	n := copy(cart.rom, data)
	for i := n; i < len(cart.rom); i++ {
		cart.rom[i] = 0xff
	}

	return cart, nil
}

func (cart *Cartridge) String() string {
	if cart.banks == 0 {
		return fmt.Sprintf("%dk cartridge", cart.size/1024)
	}
	return fmt.Sprintf("%dk cartridge (bank %d of %d)", cart.size/1024, cart.bank, cart.banks)
}

// Reset maps the second bank into the banked area.
func (cart *Cartridge) Reset() {
	if cart.banks > 0 {
		cart.bank = 1
	}
}

// Size returns the number of bytes in the cartridge.
func (cart *Cartridge) Size() int {
	return cart.size
}

// Banks returns the number of banks in the cartridge. Returns zero for
// cartridges that do not bank.
func (cart *Cartridge) Banks() int {
	return cart.banks
}

// Bank returns the bank currently mapped into the banked area.
func (cart *Cartridge) Bank() int {
	return cart.bank
}

// SetBank maps a bank into the banked area. The bank number wraps around the
// number of banks in the cartridge.
func (cart *Cartridge) SetBank(bank int) {
	if cart.banks == 0 {
		return
	}
	cart.bank = bank % cart.banks
}

// Read the cartridge at the normalised address. Addresses beyond the end of a
// small cartridge read as 0xff.
func (cart *Cartridge) Read(address uint16) uint8 {
	idx := int(address)
	if cart.banks > 0 {
		bank := bankFixed
		if address >= bankSize {
			bank = cart.bank
		}
		idx = bank*bankSize + int(address&bankMask)
	}
	if idx >= len(cart.rom) {
		return 0xff
	}
	return cart.rom[idx]
}

// Poke changes the data at the normalised address in the currently mapped
// bank.
func (cart *Cartridge) Poke(address uint16, v uint8) {
	idx := int(address)
	if cart.banks > 0 && address >= bankSize {
		idx = cart.bank*bankSize + int(address&bankMask)
	}
	if idx < len(cart.rom) {
		cart.rom[idx] = v
	}
}

// page returns the cartridge data seen through one of the four 8k banks of
// the cartridge area.
func (cart *Cartridge) page(n int) []uint8 {
	base := n * memorymap.BankSize
	if cart.banks > 0 && n*memorymap.BankSize >= bankSize {
		base = cart.bank*bankSize + n*memorymap.BankSize - bankSize
	}
	return cart.rom[base : base+memorymap.BankSize]
}
