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

// Flag bits in the F register.
const (
	FlagC uint8 = 0x01
	FlagN uint8 = 0x02
	FlagP uint8 = 0x04 // parity or overflow
	FlagX uint8 = 0x08 // copy of result bit 3
	FlagH uint8 = 0x10
	FlagY uint8 = 0x20 // copy of result bit 5
	FlagZ uint8 = 0x40
	FlagS uint8 = 0x80

	// FlagV is the same bit as FlagP. it is used after arithmetic operations
	FlagV = FlagP
)

// names of the 8bit registers as encoded in the opcode.
var reg8Names = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// names of the register pairs as encoded in the opcode.
var reg16Names = [4]string{"BC", "DE", "HL", "SP"}

// names of the register pairs when used with PUSH and POP.
var reg16StackNames = [4]string{"BC", "DE", "HL", "AF"}

// names of the branch conditions.
var conditionNames = [8]string{"NZ", "Z", "NC", "C", "PO", "PE", "P", "M"}

// AF returns the AF register pair.
func (mc *CPU) AF() uint16 {
	return uint16(mc.A)<<8 | uint16(mc.F)
}

// BC returns the BC register pair.
func (mc *CPU) BC() uint16 {
	return uint16(mc.B)<<8 | uint16(mc.C)
}

// DE returns the DE register pair.
func (mc *CPU) DE() uint16 {
	return uint16(mc.D)<<8 | uint16(mc.E)
}

// HL returns the HL register pair.
func (mc *CPU) HL() uint16 {
	return uint16(mc.H)<<8 | uint16(mc.L)
}

// SetAF loads the AF register pair.
func (mc *CPU) SetAF(v uint16) {
	mc.A = uint8(v >> 8)
	mc.F = uint8(v)
}

// SetBC loads the BC register pair.
func (mc *CPU) SetBC(v uint16) {
	mc.B = uint8(v >> 8)
	mc.C = uint8(v)
}

// SetDE loads the DE register pair.
func (mc *CPU) SetDE(v uint16) {
	mc.D = uint8(v >> 8)
	mc.E = uint8(v)
}

// SetHL loads the HL register pair.
func (mc *CPU) SetHL(v uint16) {
	mc.H = uint8(v >> 8)
	mc.L = uint8(v)
}

// reg8 returns the value of the register encoded in an opcode. a code of 6
// reads the memory pointed to by HL.
func (mc *CPU) reg8(code uint8) uint8 {
	switch code {
	case 0:
		return mc.B
	case 1:
		return mc.C
	case 2:
		return mc.D
	case 3:
		return mc.E
	case 4:
		return mc.H
	case 5:
		return mc.L
	case 6:
		return mc.bus.Read(mc.HL())
	}
	return mc.A
}

// setReg8 is the write counterpart of reg8().
func (mc *CPU) setReg8(code uint8, v uint8) {
	switch code {
	case 0:
		mc.B = v
	case 1:
		mc.C = v
	case 2:
		mc.D = v
	case 3:
		mc.E = v
	case 4:
		mc.H = v
	case 5:
		mc.L = v
	case 6:
		mc.bus.Write(mc.HL(), v)
	default:
		mc.A = v
	}
}

// reg16 returns the register pair encoded in an opcode.
func (mc *CPU) reg16(code uint8) uint16 {
	switch code {
	case 0:
		return mc.BC()
	case 1:
		return mc.DE()
	case 2:
		return mc.HL()
	}
	return mc.SP
}

// setReg16 is the write counterpart of reg16().
func (mc *CPU) setReg16(code uint8, v uint16) {
	switch code {
	case 0:
		mc.SetBC(v)
	case 1:
		mc.SetDE(v)
	case 2:
		mc.SetHL(v)
	default:
		mc.SP = v
	}
}

// condition returns true if the branch condition encoded in an opcode is
// met.
func (mc *CPU) condition(code uint8) bool {
	switch code {
	case 0:
		return mc.F&FlagZ == 0
	case 1:
		return mc.F&FlagZ != 0
	case 2:
		return mc.F&FlagC == 0
	case 3:
		return mc.F&FlagC != 0
	case 4:
		return mc.F&FlagP == 0
	case 5:
		return mc.F&FlagP != 0
	case 6:
		return mc.F&FlagS == 0
	}
	return mc.F&FlagS != 0
}

// flagString returns the F register as a string of flag letters. A lower
// case letter indicates that the flag is clear.
func flagString(f uint8) string {
	const labels = "SZYHXPNC"
	s := strings.Builder{}
	for i := 0; i < 8; i++ {
		c := labels[i]
		if f&(0x80>>i) == 0 {
			c += 'a' - 'A'
		}
		s.WriteByte(c)
	}
	return s.String()
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%04x SP=%04x AF=%04x BC=%04x DE=%04x HL=%04x IX=%04x IY=%04x I=%02x R=%02x IM%d IFF=%t/%t [%s]",
		mc.PC, mc.SP, mc.AF(), mc.BC(), mc.DE(), mc.HL(), mc.IX, mc.IY,
		mc.I, mc.R, mc.IM, mc.IFF1, mc.IFF2, flagString(mc.F))
}
