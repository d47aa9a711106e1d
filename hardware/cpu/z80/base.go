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

// names of the accumulator operations as encoded in bits 3-5 of an opcode.
var aluNames = [8]string{"ADD A,", "ADC A,", "SUB ", "SBC A,", "AND ", "XOR ", "OR ", "CP "}

func baseDefinitions() []Definition {
	defns := []Definition{
		{OpCode: 0x00, Mnemonic: "NOP", Cycles: 4, execute: func(mc *CPU) {}},
		{OpCode: 0x02, Mnemonic: "LD (BC),A", Cycles: 7, execute: func(mc *CPU) { mc.bus.Write(mc.BC(), mc.A) }},
		{OpCode: 0x12, Mnemonic: "LD (DE),A", Cycles: 7, execute: func(mc *CPU) { mc.bus.Write(mc.DE(), mc.A) }},
		{OpCode: 0x0a, Mnemonic: "LD A,(BC)", Cycles: 7, execute: func(mc *CPU) { mc.A = mc.bus.Read(mc.BC()) }},
		{OpCode: 0x1a, Mnemonic: "LD A,(DE)", Cycles: 7, execute: func(mc *CPU) { mc.A = mc.bus.Read(mc.DE()) }},
		{OpCode: 0x22, Mnemonic: "LD ({nn}),HL", Cycles: 16, execute: func(mc *CPU) { mc.write16(mc.fetchWord(), mc.HL()) }},
		{OpCode: 0x2a, Mnemonic: "LD HL,({nn})", Cycles: 16, execute: func(mc *CPU) { mc.SetHL(mc.read16(mc.fetchWord())) }},
		{OpCode: 0x32, Mnemonic: "LD ({nn}),A", Cycles: 13, execute: func(mc *CPU) { mc.bus.Write(mc.fetchWord(), mc.A) }},
		{OpCode: 0x3a, Mnemonic: "LD A,({nn})", Cycles: 13, execute: func(mc *CPU) { mc.A = mc.bus.Read(mc.fetchWord()) }},

		{OpCode: 0x07, Mnemonic: "RLCA", Cycles: 4, execute: func(mc *CPU) { mc.rotateA(0) }},
		{OpCode: 0x0f, Mnemonic: "RRCA", Cycles: 4, execute: func(mc *CPU) { mc.rotateA(1) }},
		{OpCode: 0x17, Mnemonic: "RLA", Cycles: 4, execute: func(mc *CPU) { mc.rotateA(2) }},
		{OpCode: 0x1f, Mnemonic: "RRA", Cycles: 4, execute: func(mc *CPU) { mc.rotateA(3) }},
		{OpCode: 0x27, Mnemonic: "DAA", Cycles: 4, execute: func(mc *CPU) { mc.daa() }},
		{OpCode: 0x2f, Mnemonic: "CPL", Cycles: 4, execute: func(mc *CPU) { mc.cpl() }},
		{OpCode: 0x37, Mnemonic: "SCF", Cycles: 4, execute: func(mc *CPU) { mc.scf() }},
		{OpCode: 0x3f, Mnemonic: "CCF", Cycles: 4, execute: func(mc *CPU) { mc.ccf() }},

		{OpCode: 0x08, Mnemonic: "EX AF,AF'", Cycles: 4, execute: func(mc *CPU) {
			af := mc.AF()
			mc.SetAF(mc.AF2)
			mc.AF2 = af
		}},
		{OpCode: 0xd9, Mnemonic: "EXX", Cycles: 4, execute: func(mc *CPU) {
			bc, de, hl := mc.BC(), mc.DE(), mc.HL()
			mc.SetBC(mc.BC2)
			mc.SetDE(mc.DE2)
			mc.SetHL(mc.HL2)
			mc.BC2, mc.DE2, mc.HL2 = bc, de, hl
		}},
		{OpCode: 0xeb, Mnemonic: "EX DE,HL", Cycles: 4, execute: func(mc *CPU) {
			de := mc.DE()
			mc.SetDE(mc.HL())
			mc.SetHL(de)
		}},
		{OpCode: 0xe3, Mnemonic: "EX (SP),HL", Cycles: 19, execute: func(mc *CPU) {
			v := mc.read16(mc.SP)
			mc.write16(mc.SP, mc.HL())
			mc.SetHL(v)
		}},
		{OpCode: 0xe9, Mnemonic: "JP (HL)", Cycles: 4, execute: func(mc *CPU) { mc.PC = mc.HL() }},
		{OpCode: 0xf9, Mnemonic: "LD SP,HL", Cycles: 6, execute: func(mc *CPU) { mc.SP = mc.HL() }},

		{OpCode: 0x10, Mnemonic: "DJNZ {e}", Cycles: 8, execute: func(mc *CPU) {
			e := int8(mc.fetch())
			mc.B--
			if mc.B != 0 {
				mc.PC += uint16(e)
				mc.budget -= 5
			}
		}},
		{OpCode: 0x18, Mnemonic: "JR {e}", Cycles: 12, execute: func(mc *CPU) {
			e := int8(mc.fetch())
			mc.PC += uint16(e)
		}},
		{OpCode: 0xc3, Mnemonic: "JP {nn}", Cycles: 10, execute: func(mc *CPU) { mc.PC = mc.fetchWord() }},
		{OpCode: 0xcd, Mnemonic: "CALL {nn}", Cycles: 17, execute: func(mc *CPU) {
			nn := mc.fetchWord()
			mc.push(mc.PC)
			mc.PC = nn
		}},
		{OpCode: 0xc9, Mnemonic: "RET", Cycles: 10, execute: func(mc *CPU) { mc.PC = mc.pop() }},

		{OpCode: 0xd3, Mnemonic: "OUT ({n}),A", Cycles: 11, execute: func(mc *CPU) { mc.bus.Out(mc.fetch(), mc.A) }},
		{OpCode: 0xdb, Mnemonic: "IN A,({n})", Cycles: 11, execute: func(mc *CPU) { mc.A = mc.bus.In(mc.fetch()) }},

		{OpCode: 0xf3, Mnemonic: "DI", Cycles: 4, execute: func(mc *CPU) {
			mc.IFF1 = false
			mc.IFF2 = false
		}},
		{OpCode: 0xfb, Mnemonic: "EI", Cycles: 4, execute: func(mc *CPU) {
			mc.IFF1 = true
			mc.IFF2 = true
			mc.eiDefer = true
		}},
		{OpCode: 0x76, Mnemonic: "HALT", Cycles: 4, execute: func(mc *CPU) {
			mc.Halted = true
			mc.PC--
			mc.checkCrash()
		}},

		// prefixes. the cost is included in the prefixed definition
		{OpCode: 0xcb, execute: func(mc *CPU) { mc.dispatch(cbTable[mc.fetchOpcode()]) }},
		{OpCode: 0xed, execute: func(mc *CPU) {
			defn := edTable[mc.fetchOpcode()]
			if defn == nil {
				// undefined ED opcodes are eight cycle NOPs
				mc.budget -= 8
				return
			}
			mc.dispatch(defn)
		}},
		{OpCode: 0xdd, execute: func(mc *CPU) { mc.dispatchIndex(ddTable) }},
		{OpCode: 0xfd, execute: func(mc *CPU) { mc.dispatchIndex(fdTable) }},
	}

	for rr := uint8(0); rr < 4; rr++ {
		defns = append(defns,
			Definition{OpCode: 0x01 | rr<<4, Mnemonic: fmt.Sprintf("LD %s,{nn}", reg16Names[rr]), Cycles: 10, execute: func(mc *CPU) {
				mc.setReg16(rr, mc.fetchWord())
			}},
			Definition{OpCode: 0x03 | rr<<4, Mnemonic: fmt.Sprintf("INC %s", reg16Names[rr]), Cycles: 6, execute: func(mc *CPU) {
				mc.setReg16(rr, mc.reg16(rr)+1)
			}},
			Definition{OpCode: 0x0b | rr<<4, Mnemonic: fmt.Sprintf("DEC %s", reg16Names[rr]), Cycles: 6, execute: func(mc *CPU) {
				mc.setReg16(rr, mc.reg16(rr)-1)
			}},
			Definition{OpCode: 0x09 | rr<<4, Mnemonic: fmt.Sprintf("ADD HL,%s", reg16Names[rr]), Cycles: 11, execute: func(mc *CPU) {
				mc.SetHL(mc.add16(mc.HL(), mc.reg16(rr)))
			}},
			Definition{OpCode: 0xc1 | rr<<4, Mnemonic: fmt.Sprintf("POP %s", reg16StackNames[rr]), Cycles: 10, execute: func(mc *CPU) {
				if rr == 3 {
					mc.SetAF(mc.pop())
				} else {
					mc.setReg16(rr, mc.pop())
				}
			}},
			Definition{OpCode: 0xc5 | rr<<4, Mnemonic: fmt.Sprintf("PUSH %s", reg16StackNames[rr]), Cycles: 11, execute: func(mc *CPU) {
				if rr == 3 {
					mc.push(mc.AF())
				} else {
					mc.push(mc.reg16(rr))
				}
			}},
		)
	}

	for r := uint8(0); r < 8; r++ {
		cycles := 4
		if r == 6 {
			cycles = 11
		}
		defns = append(defns,
			Definition{OpCode: 0x04 | r<<3, Mnemonic: fmt.Sprintf("INC %s", reg8Names[r]), Cycles: cycles, execute: func(mc *CPU) {
				mc.setReg8(r, mc.inc8(mc.reg8(r)))
			}},
			Definition{OpCode: 0x05 | r<<3, Mnemonic: fmt.Sprintf("DEC %s", reg8Names[r]), Cycles: cycles, execute: func(mc *CPU) {
				mc.setReg8(r, mc.dec8(mc.reg8(r)))
			}},
		)

		cycles = 7
		if r == 6 {
			cycles = 10
		}
		defns = append(defns, Definition{OpCode: 0x06 | r<<3, Mnemonic: fmt.Sprintf("LD %s,{n}", reg8Names[r]), Cycles: cycles, execute: func(mc *CPU) {
			mc.setReg8(r, mc.fetch())
		}})
	}

	// LD r,r' with HALT in place of LD (HL),(HL)
	for op := 0x40; op < 0x80; op++ {
		if op == 0x76 {
			continue
		}
		dst := uint8(op>>3) & 0x07
		src := uint8(op) & 0x07
		cycles := 4
		if dst == 6 || src == 6 {
			cycles = 7
		}
		defns = append(defns, Definition{OpCode: uint8(op), Mnemonic: fmt.Sprintf("LD %s,%s", reg8Names[dst], reg8Names[src]), Cycles: cycles, execute: func(mc *CPU) {
			mc.setReg8(dst, mc.reg8(src))
		}})
	}

	for op := uint8(0); op < 8; op++ {
		for r := uint8(0); r < 8; r++ {
			cycles := 4
			if r == 6 {
				cycles = 7
			}
			defns = append(defns, Definition{OpCode: 0x80 | op<<3 | r, Mnemonic: aluNames[op] + reg8Names[r], Cycles: cycles, execute: func(mc *CPU) {
				mc.alu(op, mc.reg8(r))
			}})
		}
		defns = append(defns, Definition{OpCode: 0xc6 | op<<3, Mnemonic: aluNames[op] + "{n}", Cycles: 7, execute: func(mc *CPU) {
			mc.alu(op, mc.fetch())
		}})
	}

	for cc := uint8(0); cc < 8; cc++ {
		defns = append(defns,
			Definition{OpCode: 0xc0 | cc<<3, Mnemonic: fmt.Sprintf("RET %s", conditionNames[cc]), Cycles: 5, execute: func(mc *CPU) {
				if mc.condition(cc) {
					mc.PC = mc.pop()
					mc.budget -= 6
				}
			}},
			Definition{OpCode: 0xc2 | cc<<3, Mnemonic: fmt.Sprintf("JP %s,{nn}", conditionNames[cc]), Cycles: 10, execute: func(mc *CPU) {
				nn := mc.fetchWord()
				if mc.condition(cc) {
					mc.PC = nn
				}
			}},
			Definition{OpCode: 0xc4 | cc<<3, Mnemonic: fmt.Sprintf("CALL %s,{nn}", conditionNames[cc]), Cycles: 10, execute: func(mc *CPU) {
				nn := mc.fetchWord()
				if mc.condition(cc) {
					mc.push(mc.PC)
					mc.PC = nn
					mc.budget -= 7
				}
			}},
			Definition{OpCode: 0xc7 | cc<<3, Mnemonic: fmt.Sprintf("RST %02XH", cc<<3), Cycles: 11, execute: func(mc *CPU) {
				mc.push(mc.PC)
				mc.PC = uint16(cc) << 3
			}},
		)

		// JR only supports the first four conditions
		if cc < 4 {
			defns = append(defns, Definition{OpCode: 0x20 | cc<<3, Mnemonic: fmt.Sprintf("JR %s,{e}", conditionNames[cc]), Cycles: 7, execute: func(mc *CPU) {
				e := int8(mc.fetch())
				if mc.condition(cc) {
					mc.PC += uint16(e)
					mc.budget -= 5
				}
			}})
		}
	}

	return defns
}
