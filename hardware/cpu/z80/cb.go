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

// names of the rotate and shift operations as encoded in bits 3-5 of a CB
// prefixed opcode.
var rotateShiftNames = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SLL", "SRL"}

func cbDefinitions() []Definition {
	var defns []Definition

	for r := uint8(0); r < 8; r++ {
		for op := uint8(0); op < 8; op++ {
			cycles := 8
			if r == 6 {
				cycles = 15
			}
			defns = append(defns, Definition{OpCode: op<<3 | r, Mnemonic: fmt.Sprintf("%s %s", rotateShiftNames[op], reg8Names[r]), Cycles: cycles, execute: func(mc *CPU) {
				mc.setReg8(r, mc.rotateShift(op, mc.reg8(r)))
			}})
		}

		for b := uint8(0); b < 8; b++ {
			cycles := 8
			if r == 6 {
				cycles = 12
			}
			defns = append(defns, Definition{OpCode: 0x40 | b<<3 | r, Mnemonic: fmt.Sprintf("BIT %d,%s", b, reg8Names[r]), Cycles: cycles, execute: func(mc *CPU) {
				v := mc.reg8(r)
				xy := v
				if r == 6 {
					xy = mc.H
				}
				mc.bit(b, v, xy)
			}})

			cycles = 8
			if r == 6 {
				cycles = 15
			}
			defns = append(defns,
				Definition{OpCode: 0x80 | b<<3 | r, Mnemonic: fmt.Sprintf("RES %d,%s", b, reg8Names[r]), Cycles: cycles, execute: func(mc *CPU) {
					mc.setReg8(r, mc.reg8(r)&^(1<<b))
				}},
				Definition{OpCode: 0xc0 | b<<3 | r, Mnemonic: fmt.Sprintf("SET %d,%s", b, reg8Names[r]), Cycles: cycles, execute: func(mc *CPU) {
					mc.setReg8(r, mc.reg8(r)|1<<b)
				}},
			)
		}
	}

	return defns
}

// indexBitDefinitions creates the definitions for the DDCB and FDCB tables.
// the effective address is calculated before dispatch and is stored in the
// indexAddress field of the CPU.
//
// only the documented forms are defined. the undocumented forms that also
// copy the result to a register are treated as the documented form.
func indexBitDefinitions(name string) []Definition {
	var defns []Definition

	operand := fmt.Sprintf("(%s{d})", name)

	for op := uint8(0); op < 8; op++ {
		for r := uint8(0); r < 8; r++ {
			opcode := op<<3 | r
			defns = append(defns, Definition{OpCode: opcode, Mnemonic: fmt.Sprintf("%s %s", rotateShiftNames[op], operand), Cycles: 23, execute: func(mc *CPU) {
				mc.bus.Write(mc.indexAddress, mc.rotateShift(op, mc.bus.Read(mc.indexAddress)))
			}})
		}
	}

	for b := uint8(0); b < 8; b++ {
		for r := uint8(0); r < 8; r++ {
			defns = append(defns,
				Definition{OpCode: 0x40 | b<<3 | r, Mnemonic: fmt.Sprintf("BIT %d,%s", b, operand), Cycles: 20, execute: func(mc *CPU) {
					mc.bit(b, mc.bus.Read(mc.indexAddress), uint8(mc.indexAddress>>8))
				}},
				Definition{OpCode: 0x80 | b<<3 | r, Mnemonic: fmt.Sprintf("RES %d,%s", b, operand), Cycles: 23, execute: func(mc *CPU) {
					mc.bus.Write(mc.indexAddress, mc.bus.Read(mc.indexAddress)&^(1<<b))
				}},
				Definition{OpCode: 0xc0 | b<<3 | r, Mnemonic: fmt.Sprintf("SET %d,%s", b, operand), Cycles: 23, execute: func(mc *CPU) {
					mc.bus.Write(mc.indexAddress, mc.bus.Read(mc.indexAddress)|1<<b)
				}},
			)
		}
	}

	return defns
}
