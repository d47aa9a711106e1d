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
	"strings"

	"github.com/jetsetilly/gopher8bit/hardware/cpu/z80"
)

// the effect an instruction has on the flow of the program.
type effect int

const (
	// execution continues with the next instruction
	effectNone effect = iota

	// execution may continue at the target or with the next instruction
	effectBranch

	// execution continues at the target
	effectJump

	// execution continues at an address that can not be determined
	// statically
	effectStop
)

// flowEffect returns the effect of the instruction on the flow of the
// program and the target address, if any.
func flowEffect(ins z80.Instruction) (effect, uint16) {
	if ins.Defn == nil {
		return effectNone, 0
	}

	n := len(ins.Bytes)
	m := ins.Defn.Mnemonic

	word := func() uint16 {
		return uint16(ins.Bytes[n-1])<<8 | uint16(ins.Bytes[n-2])
	}
	relative := func() uint16 {
		return ins.Address + uint16(n) + uint16(int8(ins.Bytes[n-1]))
	}

	switch {
	case m == "JP {nn}":
		return effectJump, word()
	case m == "JR {e}":
		return effectJump, relative()
	case strings.HasPrefix(m, "JP ("):
		return effectStop, 0
	case strings.HasPrefix(m, "JP "), strings.HasPrefix(m, "CALL "):
		return effectBranch, word()
	case strings.HasPrefix(m, "JR "), strings.HasPrefix(m, "DJNZ "):
		return effectBranch, relative()
	case strings.HasPrefix(m, "RST "):
		return effectBranch, uint16(ins.Bytes[0] & 0x38)
	case m == "RET", m == "RETI", m == "RETN":
		return effectStop, 0
	}

	return effectNone, 0
}

// flowDisassembly follows the program from each entry point. targets outside
// of the cartridge are ignored. undefined instructions are treated as a NOP
// the length of the bytes consumed, which is how the CPU treats them.
func (dsm *Disassembly) flowDisassembly(bank int, read func(uint16) uint8) {
	entries := dsm.Entries[bank]

	var targets []uint16
	pending := make([]uint16, len(entryPoints))
	copy(pending, entryPoints)

	for len(pending) > 0 {
		pc := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		for int(pc) < cartSize && entries[pc] == nil {
			ins := z80.Decode(read, pc)
			entries[pc] = &Entry{
				Instruction: ins,
				Bank:        bank,
				Level:       EntryLevelBlessed,
			}

			eff, target := flowEffect(ins)
			if eff == effectBranch || eff == effectJump {
				targets = append(targets, target)
				if int(target) < cartSize {
					pending = append(pending, target)
				}
			}
			if eff == effectJump || eff == effectStop {
				break
			}

			pc += uint16(len(ins.Bytes))
		}
	}

	for _, t := range targets {
		if int(t) < cartSize && entries[t] != nil {
			entries[t].Target = true
		}
	}
}
