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

import (
	"fmt"
	"strings"
)

// Instruction is the result of decoding the bytes at an address.
type Instruction struct {
	Address uint16
	Bytes   []uint8

	// the definition will be nil if the bytes do not form a defined
	// instruction. in which case Text will be a DB directive
	Defn *Definition

	// the mnemonic with operands filled in
	Text string
}

// Decode the instruction at address. The read function should have no side
// effects.
func Decode(read func(uint16) uint8, address uint16) Instruction {
	ins := Instruction{Address: address}

	next := func() uint8 {
		v := read(address + uint16(len(ins.Bytes)))
		ins.Bytes = append(ins.Bytes, v)
		return v
	}

	// displacement for DDCB and FDCB instructions. these are the only
	// instructions where an operand comes before the opcode
	var disp uint8
	var hasDisp bool

	op := next()
	switch op {
	case 0xcb:
		ins.Defn = cbTable[next()]
	case 0xed:
		ins.Defn = edTable[next()]
	case 0xdd, 0xfd:
		t, bt := ddTable, ddcbTable
		if op == 0xfd {
			t, bt = fdTable, fdcbTable
		}
		op = read(address + 1)
		if op == 0xcb {
			next()
			disp = next()
			hasDisp = true
			ins.Defn = bt[next()]
		} else if t[op] != nil {
			next()
			ins.Defn = t[op]
		}
	default:
		ins.Defn = baseTable[op]
	}

	if ins.Defn == nil {
		s := make([]string, len(ins.Bytes))
		for i, b := range ins.Bytes {
			s[i] = fmt.Sprintf("$%02x", b)
		}
		ins.Text = fmt.Sprintf("DB %s", strings.Join(s, ","))
		return ins
	}

	var b strings.Builder
	m := ins.Defn.Mnemonic
	for {
		i := strings.IndexByte(m, '{')
		if i == -1 {
			b.WriteString(m)
			break
		}
		b.WriteString(m[:i])
		m = m[i:]

		switch {
		case strings.HasPrefix(m, OperandWord):
			lo := next()
			hi := next()
			fmt.Fprintf(&b, "$%04x", uint16(hi)<<8|uint16(lo))
			m = m[len(OperandWord):]
		case strings.HasPrefix(m, OperandByte):
			fmt.Fprintf(&b, "$%02x", next())
			m = m[len(OperandByte):]
		case strings.HasPrefix(m, OperandRelative):
			e := int8(next())
			target := address + uint16(len(ins.Bytes)) + uint16(e)
			fmt.Fprintf(&b, "$%04x", target)
			m = m[len(OperandRelative):]
		case strings.HasPrefix(m, OperandDisplacement):
			if !hasDisp {
				disp = next()
			}
			d := int8(disp)
			if d < 0 {
				fmt.Fprintf(&b, "-$%02x", -int(d))
			} else {
				fmt.Fprintf(&b, "+$%02x", d)
			}
			m = m[len(OperandDisplacement):]
		default:
			b.WriteByte('{')
			m = m[1:]
		}
	}
	ins.Text = b.String()

	return ins
}

func (ins Instruction) String() string {
	s := make([]string, len(ins.Bytes))
	for i, b := range ins.Bytes {
		s[i] = fmt.Sprintf("%02x", b)
	}
	return fmt.Sprintf("%04x: %-12s %s", ins.Address, strings.Join(s, " "), ins.Text)
}
