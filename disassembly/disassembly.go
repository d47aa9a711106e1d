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

package disassembly

import (
	"fmt"

	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/jetsetilly/gopher8bit/hardware/cpu/z80"
	"github.com/jetsetilly/gopher8bit/hardware/memory"
	"github.com/jetsetilly/gopher8bit/hardware/memory/memorymap"
)

// Error patterns returned by the disassembly package.
const (
	NoCartridge = "disassembly: no cartridge data"
	NoSuchBank  = "disassembly: no such bank (%d)"
)

// the number of addresses occupied by the cartridge.
const cartSize = int(memorymap.MemtopCart) + 1

// the start of the banked area of a banked cartridge.
const bankedOrigin = 0x4000

// the addresses at which the CPU can begin executing.
var entryPoints = []uint16{0x0000, 0x0008, 0x0010, 0x0018, 0x0020, 0x0028, 0x0030, 0x0038, 0x0066}

// Disassembly represents the disassembly of a cartridge.
type Disassembly struct {
	// the number of banks in the cartridge. one for cartridges that do not
	// bank
	numBanks int

	// indexed by bank and then by address
	Entries [][]*Entry
}

// FromCartridge disassembles the cartridge. The bank selected in the
// cartridge is restored before returning.
func FromCartridge(cart *memory.Cartridge) (*Disassembly, error) {
	if cart == nil || cart.Size() == 0 {
		return nil, curated.Errorf(NoCartridge)
	}

	dsm := &Disassembly{
		numBanks: max(cart.Banks(), 1),
	}
	dsm.Entries = make([][]*Entry, dsm.numBanks)

	restore := cart.Bank()
	defer cart.SetBank(restore)

	for bank := range dsm.numBanks {
		cart.SetBank(bank)
		dsm.Entries[bank] = make([]*Entry, cartSize)
		read := func(address uint16) uint8 {
			if int(address) >= cartSize {
				return 0xff
			}
			return cart.Read(address)
		}
		dsm.flowDisassembly(bank, read)
		dsm.linearDisassembly(bank, read)
	}

	return dsm, nil
}

func (dsm *Disassembly) String() string {
	blessed := 0
	for _, bank := range dsm.Entries {
		for _, e := range bank {
			if e != nil && e.Level == EntryLevelBlessed {
				blessed++
			}
		}
	}
	return fmt.Sprintf("%d banks, %d blessed entries", dsm.numBanks, blessed)
}

// NumBanks returns the number of banks in the disassembly.
func (dsm *Disassembly) NumBanks() int {
	return dsm.numBanks
}

// GetEntry returns the entry at the address in the bank. Returns nil if
// there is no entry.
func (dsm *Disassembly) GetEntry(bank int, address uint16) *Entry {
	if bank < 0 || bank >= dsm.numBanks || int(address) >= cartSize {
		return nil
	}
	return dsm.Entries[bank][address]
}

// the first address of the bank to be included in the output. the fixed area
// is only included with the first bank.
func (dsm *Disassembly) bankOrigin(bank int) int {
	if dsm.numBanks > 1 && bank > 0 {
		return bankedOrigin
	}
	return 0
}

func labelName(address uint16) string {
	return fmt.Sprintf("L%04X", address)
}

// decode every address not covered by a blessed entry.
func (dsm *Disassembly) linearDisassembly(bank int, read func(uint16) uint8) {
	entries := dsm.Entries[bank]
	covered := 0
	for address := range cartSize {
		if e := entries[address]; e != nil {
			covered = max(covered, address+len(e.Bytes))
			continue
		}
		if address < covered {
			continue
		}
		entries[address] = &Entry{
			Instruction: z80.Decode(read, uint16(address)),
			Bank:        bank,
			Level:       EntryLevelDecoded,
		}
	}
}
