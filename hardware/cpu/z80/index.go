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

// dispatchIndex dispatches an opcode from the DD or FD table.
func (mc *CPU) dispatchIndex(t *table) {
	defn := t[mc.fetchOpcode()]
	if defn == nil {
		// the prefix is treated as a NOP and the opcode will be fetched
		// again as a normal instruction
		mc.decR()
		mc.PC--
		mc.budget -= 4
		return
	}
	mc.dispatch(defn)
}

// displaced fetches the displacement byte and returns the effective address.
func (mc *CPU) displaced(idx *uint16) uint16 {
	d := int8(mc.fetch())
	return *idx + uint16(d)
}

// indexDefinitions creates the definitions for the DD and FD tables. the
// reg function returns the index register that takes the place of HL.
//
// opcodes that do not refer to HL, H or L are not defined. a prefix in front
// of such an opcode acts as a NOP.
func indexDefinitions(name string, reg func(mc *CPU) *uint16) []Definition {
	// names of the 8bit registers with H and L replaced by the index register
	// halves
	names := reg8Names
	names[4] = name + "H"
	names[5] = name + "L"

	// the (HL) operand is replaced with a displaced index register
	operand := fmt.Sprintf("(%s{d})", name)

	// read and write the 8bit registers. codes 4 and 5 access the upper and
	// lower halves of the index register. code 6 is handled separately
	get := func(mc *CPU, code uint8) uint8 {
		switch code {
		case 4:
			return uint8(*reg(mc) >> 8)
		case 5:
			return uint8(*reg(mc))
		}
		return mc.reg8(code)
	}
	set := func(mc *CPU, code uint8, v uint8) {
		switch code {
		case 4:
			r := reg(mc)
			*r = *r&0x00ff | uint16(v)<<8
		case 5:
			r := reg(mc)
			*r = *r&0xff00 | uint16(v)
		default:
			mc.setReg8(code, v)
		}
	}

	defns := []Definition{
		{OpCode: 0x21, Mnemonic: fmt.Sprintf("LD %s,{nn}", name), Cycles: 14, execute: func(mc *CPU) {
			*reg(mc) = mc.fetchWord()
		}},
		{OpCode: 0x22, Mnemonic: fmt.Sprintf("LD ({nn}),%s", name), Cycles: 20, execute: func(mc *CPU) {
			mc.write16(mc.fetchWord(), *reg(mc))
		}},
		{OpCode: 0x2a, Mnemonic: fmt.Sprintf("LD %s,({nn})", name), Cycles: 20, execute: func(mc *CPU) {
			*reg(mc) = mc.read16(mc.fetchWord())
		}},
		{OpCode: 0x23, Mnemonic: fmt.Sprintf("INC %s", name), Cycles: 10, execute: func(mc *CPU) {
			*reg(mc)++
		}},
		{OpCode: 0x2b, Mnemonic: fmt.Sprintf("DEC %s", name), Cycles: 10, execute: func(mc *CPU) {
			*reg(mc)--
		}},
		{OpCode: 0x34, Mnemonic: fmt.Sprintf("INC %s", operand), Cycles: 23, execute: func(mc *CPU) {
			ea := mc.displaced(reg(mc))
			mc.bus.Write(ea, mc.inc8(mc.bus.Read(ea)))
		}},
		{OpCode: 0x35, Mnemonic: fmt.Sprintf("DEC %s", operand), Cycles: 23, execute: func(mc *CPU) {
			ea := mc.displaced(reg(mc))
			mc.bus.Write(ea, mc.dec8(mc.bus.Read(ea)))
		}},
		{OpCode: 0x36, Mnemonic: fmt.Sprintf("LD %s,{n}", operand), Cycles: 19, execute: func(mc *CPU) {
			ea := mc.displaced(reg(mc))
			mc.bus.Write(ea, mc.fetch())
		}},
		{OpCode: 0xe1, Mnemonic: fmt.Sprintf("POP %s", name), Cycles: 14, execute: func(mc *CPU) {
			*reg(mc) = mc.pop()
		}},
		{OpCode: 0xe5, Mnemonic: fmt.Sprintf("PUSH %s", name), Cycles: 15, execute: func(mc *CPU) {
			mc.push(*reg(mc))
		}},
		{OpCode: 0xe3, Mnemonic: fmt.Sprintf("EX (SP),%s", name), Cycles: 23, execute: func(mc *CPU) {
			v := mc.read16(mc.SP)
			mc.write16(mc.SP, *reg(mc))
			*reg(mc) = v
		}},
		{OpCode: 0xe9, Mnemonic: fmt.Sprintf("JP (%s)", name), Cycles: 8, execute: func(mc *CPU) {
			mc.PC = *reg(mc)
		}},
		{OpCode: 0xf9, Mnemonic: fmt.Sprintf("LD SP,%s", name), Cycles: 10, execute: func(mc *CPU) {
			mc.SP = *reg(mc)
		}},

		// the displacement comes before the opcode of the bit instruction
		{OpCode: 0xcb, execute: func(mc *CPU) {
			mc.indexAddress = mc.displaced(reg(mc))
			op := mc.fetch()
			if name == "IX" {
				mc.dispatch(ddcbTable[op])
			} else {
				mc.dispatch(fdcbTable[op])
			}
		}},
	}

	for rr := uint8(0); rr < 4; rr++ {
		src := reg16Names[rr]
		if rr == 2 {
			src = name
		}
		defns = append(defns, Definition{OpCode: 0x09 | rr<<4, Mnemonic: fmt.Sprintf("ADD %s,%s", name, src), Cycles: 15, execute: func(mc *CPU) {
			v := mc.reg16(rr)
			if rr == 2 {
				v = *reg(mc)
			}
			*reg(mc) = mc.add16(*reg(mc), v)
		}})
	}

	// 8bit instructions that refer to H or L but not (HL)
	for _, r := range []uint8{4, 5} {
		defns = append(defns,
			Definition{OpCode: 0x04 | r<<3, Mnemonic: fmt.Sprintf("INC %s", names[r]), Cycles: 8, execute: func(mc *CPU) {
				set(mc, r, mc.inc8(get(mc, r)))
			}},
			Definition{OpCode: 0x05 | r<<3, Mnemonic: fmt.Sprintf("DEC %s", names[r]), Cycles: 8, execute: func(mc *CPU) {
				set(mc, r, mc.dec8(get(mc, r)))
			}},
			Definition{OpCode: 0x06 | r<<3, Mnemonic: fmt.Sprintf("LD %s,{n}", names[r]), Cycles: 11, execute: func(mc *CPU) {
				set(mc, r, mc.fetch())
			}},
		)
	}

	for op := 0x40; op < 0x80; op++ {
		if op == 0x76 {
			continue
		}
		dst := uint8(op>>3) & 0x07
		src := uint8(op) & 0x07

		switch {
		case dst == 6:
			// LD (IX+d),r uses the real H and L registers
			defns = append(defns, Definition{OpCode: uint8(op), Mnemonic: fmt.Sprintf("LD %s,%s", operand, reg8Names[src]), Cycles: 19, execute: func(mc *CPU) {
				mc.bus.Write(mc.displaced(reg(mc)), mc.reg8(src))
			}})
		case src == 6:
			defns = append(defns, Definition{OpCode: uint8(op), Mnemonic: fmt.Sprintf("LD %s,%s", reg8Names[dst], operand), Cycles: 19, execute: func(mc *CPU) {
				mc.setReg8(dst, mc.bus.Read(mc.displaced(reg(mc))))
			}})
		case dst == 4 || dst == 5 || src == 4 || src == 5:
			defns = append(defns, Definition{OpCode: uint8(op), Mnemonic: fmt.Sprintf("LD %s,%s", names[dst], names[src]), Cycles: 8, execute: func(mc *CPU) {
				set(mc, dst, get(mc, src))
			}})
		}
	}

	for op := uint8(0); op < 8; op++ {
		for _, r := range []uint8{4, 5} {
			defns = append(defns, Definition{OpCode: 0x80 | op<<3 | r, Mnemonic: aluNames[op] + names[r], Cycles: 8, execute: func(mc *CPU) {
				mc.alu(op, get(mc, r))
			}})
		}
		defns = append(defns, Definition{OpCode: 0x86 | op<<3, Mnemonic: aluNames[op] + operand, Cycles: 19, execute: func(mc *CPU) {
			mc.alu(op, mc.bus.Read(mc.displaced(reg(mc))))
		}})
	}

	return defns
}
