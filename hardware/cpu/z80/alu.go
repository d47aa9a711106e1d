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

// sz53 holds the S, Z, Y and X flags for every 8bit result. sz53p also holds
// the parity flag.
var sz53, sz53p [256]uint8

func init() {
	for i := 0; i < 256; i++ {
		v := uint8(i)
		f := v & (FlagS | FlagY | FlagX)
		if v == 0 {
			f |= FlagZ
		}
		sz53[i] = f

		p := v
		p ^= p >> 4
		p ^= p >> 2
		p ^= p >> 1
		if p&1 == 0 {
			f |= FlagP
		}
		sz53p[i] = f
	}
}

// carry returns the carry flag as a number.
func (mc *CPU) carry() uint8 {
	return mc.F & FlagC
}

func (mc *CPU) add8(v uint8, c uint8) {
	a := mc.A
	sum := uint16(a) + uint16(v) + uint16(c)
	r := uint8(sum)

	f := sz53[r]
	if (a&0x0f)+(v&0x0f)+c > 0x0f {
		f |= FlagH
	}
	if (a^v)&0x80 == 0 && (a^r)&0x80 != 0 {
		f |= FlagV
	}
	if sum > 0xff {
		f |= FlagC
	}

	mc.A = r
	mc.F = f
}

// sub8 subtracts v and the carry from the accumulator. the result is not
// stored if store is false (the CP instruction).
func (mc *CPU) sub8(v uint8, c uint8, store bool) {
	a := mc.A
	diff := int(a) - int(v) - int(c)
	r := uint8(diff)

	f := sz53[r] | FlagN
	if int(a&0x0f)-int(v&0x0f)-int(c) < 0 {
		f |= FlagH
	}
	if (a^v)&0x80 != 0 && (a^r)&0x80 != 0 {
		f |= FlagV
	}
	if diff < 0 {
		f |= FlagC
	}

	if store {
		mc.A = r
	} else {
		// X and Y are taken from the operand for CP
		f = f&^(FlagX|FlagY) | v&(FlagX|FlagY)
	}
	mc.F = f
}

// alu performs one of the eight accumulator operations encoded in bits 3-5
// of an opcode.
func (mc *CPU) alu(op uint8, v uint8) {
	switch op {
	case 0:
		mc.add8(v, 0)
	case 1:
		mc.add8(v, mc.carry())
	case 2:
		mc.sub8(v, 0, true)
	case 3:
		mc.sub8(v, mc.carry(), true)
	case 4:
		mc.A &= v
		mc.F = sz53p[mc.A] | FlagH
	case 5:
		mc.A ^= v
		mc.F = sz53p[mc.A]
	case 6:
		mc.A |= v
		mc.F = sz53p[mc.A]
	default:
		mc.sub8(v, 0, false)
	}
}

func (mc *CPU) inc8(v uint8) uint8 {
	r := v + 1
	f := mc.F&FlagC | sz53[r]
	if v&0x0f == 0x0f {
		f |= FlagH
	}
	if v == 0x7f {
		f |= FlagV
	}
	mc.F = f
	return r
}

func (mc *CPU) dec8(v uint8) uint8 {
	r := v - 1
	f := mc.F&FlagC | sz53[r] | FlagN
	if v&0x0f == 0x00 {
		f |= FlagH
	}
	if v == 0x80 {
		f |= FlagV
	}
	mc.F = f
	return r
}

// add16 is used by ADD HL,rr and ADD IX,rr. S, Z and P/V are unaffected.
func (mc *CPU) add16(a uint16, v uint16) uint16 {
	sum := uint32(a) + uint32(v)
	r := uint16(sum)

	f := mc.F & (FlagS | FlagZ | FlagP)
	if (a&0x0fff)+(v&0x0fff) > 0x0fff {
		f |= FlagH
	}
	if sum > 0xffff {
		f |= FlagC
	}
	f |= uint8(r>>8) & (FlagX | FlagY)

	mc.F = f
	return r
}

func (mc *CPU) adc16(v uint16) {
	hl := mc.HL()
	c := uint32(mc.carry())
	sum := uint32(hl) + uint32(v) + c
	r := uint16(sum)

	f := uint8(r>>8) & (FlagS | FlagX | FlagY)
	if r == 0 {
		f |= FlagZ
	}
	if uint32(hl&0x0fff)+uint32(v&0x0fff)+c > 0x0fff {
		f |= FlagH
	}
	if (hl^v)&0x8000 == 0 && (hl^r)&0x8000 != 0 {
		f |= FlagV
	}
	if sum > 0xffff {
		f |= FlagC
	}

	mc.SetHL(r)
	mc.F = f
}

func (mc *CPU) sbc16(v uint16) {
	hl := mc.HL()
	c := int(mc.carry())
	diff := int(hl) - int(v) - c
	r := uint16(diff)

	f := uint8(r>>8)&(FlagS|FlagX|FlagY) | FlagN
	if r == 0 {
		f |= FlagZ
	}
	if int(hl&0x0fff)-int(v&0x0fff)-c < 0 {
		f |= FlagH
	}
	if (hl^v)&0x8000 != 0 && (hl^r)&0x8000 != 0 {
		f |= FlagV
	}
	if diff < 0 {
		f |= FlagC
	}

	mc.SetHL(r)
	mc.F = f
}

// rotateShift performs one of the eight rotate and shift operations encoded
// in bits 3-5 of a CB prefixed opcode.
func (mc *CPU) rotateShift(op uint8, v uint8) uint8 {
	var r uint8
	var c uint8

	switch op {
	case 0: // RLC
		c = v >> 7
		r = v<<1 | c
	case 1: // RRC
		c = v & 0x01
		r = v>>1 | c<<7
	case 2: // RL
		c = v >> 7
		r = v<<1 | mc.carry()
	case 3: // RR
		c = v & 0x01
		r = v>>1 | mc.carry()<<7
	case 4: // SLA
		c = v >> 7
		r = v << 1
	case 5: // SRA
		c = v & 0x01
		r = v>>1 | v&0x80
	case 6: // SLL
		c = v >> 7
		r = v<<1 | 0x01
	default: // SRL
		c = v & 0x01
		r = v >> 1
	}

	mc.F = sz53p[r] | c
	return r
}

// bit tests a single bit of v. the X and Y flags are taken from xy, which is
// the value for register operands and the high byte of the address for
// indexed operands.
func (mc *CPU) bit(n uint8, v uint8, xy uint8) {
	f := mc.F&FlagC | FlagH | xy&(FlagX|FlagY)
	if v&(1<<n) == 0 {
		f |= FlagZ | FlagP
	} else if n == 7 {
		f |= FlagS
	}
	mc.F = f
}

// rotateA implements the four accumulator rotate instructions, which only
// affect the H, N and C flags.
func (mc *CPU) rotateA(op uint8) {
	var c uint8
	a := mc.A

	switch op {
	case 0: // RLCA
		c = a >> 7
		a = a<<1 | c
	case 1: // RRCA
		c = a & 0x01
		a = a>>1 | c<<7
	case 2: // RLA
		c = a >> 7
		a = a<<1 | mc.carry()
	default: // RRA
		c = a & 0x01
		a = a>>1 | mc.carry()<<7
	}

	mc.A = a
	mc.F = mc.F&(FlagS|FlagZ|FlagP) | a&(FlagX|FlagY) | c
}

func (mc *CPU) daa() {
	a := mc.A
	var adj uint8
	c := mc.F & FlagC

	if mc.F&FlagH != 0 || a&0x0f > 0x09 {
		adj |= 0x06
	}
	if c != 0 || a > 0x99 {
		adj |= 0x60
		c = FlagC
	}

	var r uint8
	var h uint8
	if mc.F&FlagN != 0 {
		r = a - adj
		if mc.F&FlagH != 0 && a&0x0f < 0x06 {
			h = FlagH
		}
	} else {
		r = a + adj
		if a&0x0f > 0x09 {
			h = FlagH
		}
	}

	mc.A = r
	mc.F = sz53p[r] | mc.F&FlagN | h | c
}

func (mc *CPU) neg() {
	v := mc.A
	mc.A = 0
	mc.sub8(v, 0, true)
}

func (mc *CPU) cpl() {
	mc.A = ^mc.A
	mc.F = mc.F&(FlagS|FlagZ|FlagP|FlagC) | FlagH | FlagN | mc.A&(FlagX|FlagY)
}

func (mc *CPU) scf() {
	mc.F = mc.F&(FlagS|FlagZ|FlagP) | mc.A&(FlagX|FlagY) | FlagC
}

func (mc *CPU) ccf() {
	f := mc.F&(FlagS|FlagZ|FlagP) | mc.A&(FlagX|FlagY)
	if mc.F&FlagC != 0 {
		f |= FlagH
	} else {
		f |= FlagC
	}
	mc.F = f
}

// rrd and rld rotate BCD digits between the accumulator and (HL).
func (mc *CPU) rrd() {
	hl := mc.HL()
	v := mc.bus.Read(hl)
	mc.bus.Write(hl, v>>4|mc.A<<4)
	mc.A = mc.A&0xf0 | v&0x0f
	mc.F = sz53p[mc.A] | mc.F&FlagC
}

func (mc *CPU) rld() {
	hl := mc.HL()
	v := mc.bus.Read(hl)
	mc.bus.Write(hl, v<<4|mc.A&0x0f)
	mc.A = mc.A&0xf0 | v>>4
	mc.F = sz53p[mc.A] | mc.F&FlagC
}

// ldi and ldd. dir is +1 or -1.
func (mc *CPU) blockLoad(dir uint16) {
	v := mc.bus.Read(mc.HL())
	mc.bus.Write(mc.DE(), v)
	mc.SetHL(mc.HL() + dir)
	mc.SetDE(mc.DE() + dir)
	mc.SetBC(mc.BC() - 1)

	n := v + mc.A
	f := mc.F&(FlagS|FlagZ|FlagC) | n&FlagX | (n&0x02)<<4
	if mc.BC() != 0 {
		f |= FlagV
	}
	mc.F = f
}

// cpi and cpd. the carry flag is unaffected.
func (mc *CPU) blockCompare(dir uint16) {
	v := mc.bus.Read(mc.HL())
	r := mc.A - v
	mc.SetHL(mc.HL() + dir)
	mc.SetBC(mc.BC() - 1)

	f := sz53[r]&(FlagS|FlagZ) | FlagN | mc.F&FlagC
	if mc.A&0x0f < v&0x0f {
		f |= FlagH
		r--
	}
	f |= r&FlagX | (r&0x02)<<4
	if mc.BC() != 0 {
		f |= FlagV
	}
	mc.F = f
}

// the flags for the block I/O instructions are only approximated. the
// documented Z and N flags are correct.
func (mc *CPU) blockIOFlags() {
	mc.F = sz53[mc.B] | FlagN | mc.F&FlagC
}

// ini and ind.
func (mc *CPU) blockIn(dir uint16) {
	v := mc.bus.In(mc.C)
	mc.bus.Write(mc.HL(), v)
	mc.B--
	mc.SetHL(mc.HL() + dir)
	mc.blockIOFlags()
}

// outi and outd. B is decremented before the output.
func (mc *CPU) blockOut(dir uint16) {
	v := mc.bus.Read(mc.HL())
	mc.B--
	mc.bus.Out(mc.C, v)
	mc.SetHL(mc.HL() + dir)
	mc.blockIOFlags()
}

// repeat rewinds the PC so that a block instruction is executed again.
func (mc *CPU) repeat() {
	mc.PC -= 2
	mc.budget -= 5
}
