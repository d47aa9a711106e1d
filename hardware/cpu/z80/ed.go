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

import "fmt"

func edDefinitions() []Definition {
	defns := []Definition{
		{OpCode: 0x47, Mnemonic: "LD I,A", Cycles: 9, execute: func(mc *CPU) { mc.I = mc.A }},
		{OpCode: 0x4f, Mnemonic: "LD R,A", Cycles: 9, execute: func(mc *CPU) { mc.R = mc.A }},
		{OpCode: 0x57, Mnemonic: "LD A,I", Cycles: 9, execute: func(mc *CPU) { mc.loadAIR(mc.I) }},
		{OpCode: 0x5f, Mnemonic: "LD A,R", Cycles: 9, execute: func(mc *CPU) { mc.loadAIR(mc.R) }},
		{OpCode: 0x67, Mnemonic: "RRD", Cycles: 18, execute: func(mc *CPU) { mc.rrd() }},
		{OpCode: 0x6f, Mnemonic: "RLD", Cycles: 18, execute: func(mc *CPU) { mc.rld() }},

		{OpCode: 0x70, Mnemonic: "IN (C)", Cycles: 12, execute: func(mc *CPU) {
			mc.F = sz53p[mc.bus.In(mc.C)] | mc.F&FlagC
		}},
		{OpCode: 0x71, Mnemonic: "OUT (C),0", Cycles: 12, execute: func(mc *CPU) { mc.bus.Out(mc.C, 0) }},

		{OpCode: 0xa0, Mnemonic: "LDI", Cycles: 16, execute: func(mc *CPU) { mc.blockLoad(1) }},
		{OpCode: 0xa8, Mnemonic: "LDD", Cycles: 16, execute: func(mc *CPU) { mc.blockLoad(0xffff) }},
		{OpCode: 0xb0, Mnemonic: "LDIR", Cycles: 16, execute: func(mc *CPU) {
			mc.blockLoad(1)
			if mc.BC() != 0 {
				mc.repeat()
			}
		}},
		{OpCode: 0xb8, Mnemonic: "LDDR", Cycles: 16, execute: func(mc *CPU) {
			mc.blockLoad(0xffff)
			if mc.BC() != 0 {
				mc.repeat()
			}
		}},

		{OpCode: 0xa1, Mnemonic: "CPI", Cycles: 16, execute: func(mc *CPU) { mc.blockCompare(1) }},
		{OpCode: 0xa9, Mnemonic: "CPD", Cycles: 16, execute: func(mc *CPU) { mc.blockCompare(0xffff) }},
		{OpCode: 0xb1, Mnemonic: "CPIR", Cycles: 16, execute: func(mc *CPU) {
			mc.blockCompare(1)
			if mc.BC() != 0 && mc.F&FlagZ == 0 {
				mc.repeat()
			}
		}},
		{OpCode: 0xb9, Mnemonic: "CPDR", Cycles: 16, execute: func(mc *CPU) {
			mc.blockCompare(0xffff)
			if mc.BC() != 0 && mc.F&FlagZ == 0 {
				mc.repeat()
			}
		}},

		{OpCode: 0xa2, Mnemonic: "INI", Cycles: 16, execute: func(mc *CPU) { mc.blockIn(1) }},
		{OpCode: 0xaa, Mnemonic: "IND", Cycles: 16, execute: func(mc *CPU) { mc.blockIn(0xffff) }},
		{OpCode: 0xb2, Mnemonic: "INIR", Cycles: 16, execute: func(mc *CPU) {
			mc.blockIn(1)
			if mc.B != 0 {
				mc.repeat()
			}
		}},
		{OpCode: 0xba, Mnemonic: "INDR", Cycles: 16, execute: func(mc *CPU) {
			mc.blockIn(0xffff)
			if mc.B != 0 {
				mc.repeat()
			}
		}},

		{OpCode: 0xa3, Mnemonic: "OUTI", Cycles: 16, execute: func(mc *CPU) { mc.blockOut(1) }},
		{OpCode: 0xab, Mnemonic: "OUTD", Cycles: 16, execute: func(mc *CPU) { mc.blockOut(0xffff) }},
		{OpCode: 0xb3, Mnemonic: "OTIR", Cycles: 16, execute: func(mc *CPU) {
			mc.blockOut(1)
			if mc.B != 0 {
				mc.repeat()
			}
		}},
		{OpCode: 0xbb, Mnemonic: "OTDR", Cycles: 16, execute: func(mc *CPU) {
			mc.blockOut(0xffff)
			if mc.B != 0 {
				mc.repeat()
			}
		}},
	}

	for r := uint8(0); r < 8; r++ {
		// IN (C) and OUT (C),0 are defined above
		if r == 6 {
			continue
		}
		defns = append(defns,
			Definition{OpCode: 0x40 | r<<3, Mnemonic: fmt.Sprintf("IN %s,(C)", reg8Names[r]), Cycles: 12, execute: func(mc *CPU) {
				v := mc.bus.In(mc.C)
				mc.setReg8(r, v)
				mc.F = sz53p[v] | mc.F&FlagC
			}},
			Definition{OpCode: 0x41 | r<<3, Mnemonic: fmt.Sprintf("OUT (C),%s", reg8Names[r]), Cycles: 12, execute: func(mc *CPU) {
				mc.bus.Out(mc.C, mc.reg8(r))
			}},
		)
	}

	for rr := uint8(0); rr < 4; rr++ {
		defns = append(defns,
			Definition{OpCode: 0x42 | rr<<4, Mnemonic: fmt.Sprintf("SBC HL,%s", reg16Names[rr]), Cycles: 15, execute: func(mc *CPU) {
				mc.sbc16(mc.reg16(rr))
			}},
			Definition{OpCode: 0x4a | rr<<4, Mnemonic: fmt.Sprintf("ADC HL,%s", reg16Names[rr]), Cycles: 15, execute: func(mc *CPU) {
				mc.adc16(mc.reg16(rr))
			}},
			Definition{OpCode: 0x43 | rr<<4, Mnemonic: fmt.Sprintf("LD ({nn}),%s", reg16Names[rr]), Cycles: 20, execute: func(mc *CPU) {
				mc.write16(mc.fetchWord(), mc.reg16(rr))
			}},
			Definition{OpCode: 0x4b | rr<<4, Mnemonic: fmt.Sprintf("LD %s,({nn})", reg16Names[rr]), Cycles: 20, execute: func(mc *CPU) {
				mc.setReg16(rr, mc.read16(mc.fetchWord()))
			}},
		)
	}

	// NEG, RETN/RETI and IM are mirrored across the 0x40-0x7f range
	im := [8]uint8{0, 0, 1, 2, 0, 0, 1, 2}
	for i := uint8(0); i < 8; i++ {
		defns = append(defns, Definition{OpCode: 0x44 | i<<3, Mnemonic: "NEG", Cycles: 8, execute: func(mc *CPU) {
			mc.neg()
		}})

		mnemonic := "RETN"
		if i == 1 {
			mnemonic = "RETI"
		}
		defns = append(defns, Definition{OpCode: 0x45 | i<<3, Mnemonic: mnemonic, Cycles: 14, execute: func(mc *CPU) {
			mc.PC = mc.pop()
			mc.IFF1 = mc.IFF2
		}})

		mode := im[i]
		defns = append(defns, Definition{OpCode: 0x46 | i<<3, Mnemonic: fmt.Sprintf("IM %d", mode), Cycles: 8, execute: func(mc *CPU) {
			mc.IM = mode
		}})
	}

	return defns
}

// loadAIR implements LD A,I and LD A,R. the P/V flag is a copy of IFF2.
func (mc *CPU) loadAIR(v uint8) {
	mc.A = v
	f := sz53[v] | mc.F&FlagC
	if mc.IFF2 {
		f |= FlagP
	}
	mc.F = f
}
