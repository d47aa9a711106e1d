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
	"testing"

	"github.com/jetsetilly/gopher8bit/test"
)

func TestAddSubFlags(t *testing.T) {
	mc := &CPU{}

	type tc struct {
		op    uint8
		a, v  uint8
		carry bool
		r     uint8
		f     uint8
	}

	tcs := []tc{
		// ADD
		{op: 0, a: 0x7f, v: 0x01, r: 0x80, f: FlagS | FlagH | FlagV},
		{op: 0, a: 0xff, v: 0x01, r: 0x00, f: FlagZ | FlagH | FlagC},
		{op: 0, a: 0x80, v: 0x80, r: 0x00, f: FlagZ | FlagV | FlagC},
		{op: 0, a: 0x0f, v: 0x01, r: 0x10, f: FlagH},
		{op: 0, a: 0x14, v: 0x14, r: 0x28, f: FlagY | FlagX},

		// ADC
		{op: 1, a: 0x7f, v: 0x00, carry: true, r: 0x80, f: FlagS | FlagH | FlagV},
		{op: 1, a: 0xfe, v: 0x01, carry: true, r: 0x00, f: FlagZ | FlagH | FlagC},

		// SUB
		{op: 2, a: 0x80, v: 0x01, r: 0x7f, f: FlagY | FlagH | FlagX | FlagV | FlagN},
		{op: 2, a: 0x00, v: 0x01, r: 0xff, f: FlagS | FlagY | FlagH | FlagX | FlagN | FlagC},
		{op: 2, a: 0x05, v: 0x05, r: 0x00, f: FlagZ | FlagN},

		// SBC
		{op: 3, a: 0x00, v: 0x00, carry: true, r: 0xff, f: FlagS | FlagY | FlagH | FlagX | FlagN | FlagC},

		// CP does not change the accumulator and takes X and Y from the operand
		{op: 7, a: 0x10, v: 0x28, r: 0x10, f: FlagS | FlagY | FlagH | FlagX | FlagN | FlagC},
		{op: 7, a: 0x42, v: 0x42, r: 0x42, f: FlagZ | FlagN},
	}

	for i, c := range tcs {
		mc.A = c.a
		mc.F = 0
		if c.carry {
			mc.F = FlagC
		}
		mc.alu(c.op, c.v)
		tag := fmt.Sprintf("%d: %s%#02x", i, aluNames[c.op], c.v)
		test.ExpectEquality(t, mc.A, c.r, tag)
		test.ExpectEquality(t, flagString(mc.F), flagString(c.f), tag)
	}
}

func TestAddSubRoundTrip(t *testing.T) {
	mc := &CPU{}

	for a := range 256 {
		for v := range 256 {
			mc.A = uint8(a)
			mc.alu(0, uint8(v))
			carry := mc.F&FlagC == FlagC
			if carry != (a+v > 0xff) {
				t.Fatalf("ADD carry incorrect for %#02x + %#02x", a, v)
			}

			mc.alu(2, uint8(v))
			if mc.A != uint8(a) {
				t.Fatalf("SUB did not reverse ADD for %#02x + %#02x", a, v)
			}
			borrow := mc.F&FlagC == FlagC
			if borrow != (v > int(uint8(a+v))) {
				t.Fatalf("SUB carry incorrect for %#02x + %#02x", a, v)
			}
		}
	}
}

func TestIncDec(t *testing.T) {
	mc := &CPU{}

	// carry is unaffected
	mc.F = FlagC
	test.ExpectEquality(t, mc.inc8(0x7f), 0x80)
	test.ExpectEquality(t, mc.F, FlagS|FlagH|FlagV|FlagC)
	test.ExpectEquality(t, mc.inc8(0xff), 0x00)
	test.ExpectEquality(t, mc.F, FlagZ|FlagH|FlagC)

	mc.F = 0
	test.ExpectEquality(t, mc.dec8(0x80), 0x7f)
	test.ExpectEquality(t, mc.F, FlagY|FlagH|FlagX|FlagV|FlagN)
	test.ExpectEquality(t, mc.dec8(0x01), 0x00)
	test.ExpectEquality(t, mc.F, FlagZ|FlagN)
}

func TestAdd16(t *testing.T) {
	mc := &CPU{}

	// S, Z and P/V are preserved
	mc.F = FlagS | FlagZ | FlagP
	test.ExpectEquality(t, mc.add16(0x0fff, 0x0001), 0x1000)
	test.ExpectEquality(t, mc.F, FlagS|FlagZ|FlagP|FlagH)

	mc.F = 0
	test.ExpectEquality(t, mc.add16(0xffff, 0x0001), 0x0000)
	test.ExpectEquality(t, mc.F, FlagH|FlagC)

	mc.SetHL(0x0000)
	mc.F = FlagC
	mc.sbc16(0x0000)
	test.ExpectEquality(t, mc.HL(), 0xffff)
	test.ExpectEquality(t, mc.F, FlagS|FlagY|FlagH|FlagX|FlagN|FlagC)

	mc.SetHL(0x7fff)
	mc.F = 0
	mc.adc16(0x0001)
	test.ExpectEquality(t, mc.HL(), 0x8000)
	test.ExpectEquality(t, mc.F, FlagS|FlagH|FlagV)
}

func TestDAA(t *testing.T) {
	mc := &CPU{}

	// $15 + $27 = $42 in BCD
	mc.A = 0x15
	mc.alu(0, 0x27)
	mc.daa()
	test.ExpectEquality(t, mc.A, 0x42)
	test.ExpectEquality(t, mc.F&FlagC, 0)

	// $99 + $01 = $00 with carry
	mc.A = 0x99
	mc.alu(0, 0x01)
	mc.daa()
	test.ExpectEquality(t, mc.A, 0x00)
	test.ExpectEquality(t, mc.F&(FlagZ|FlagC), FlagZ|FlagC)

	// $42 - $15 = $27
	mc.A = 0x42
	mc.alu(2, 0x15)
	mc.daa()
	test.ExpectEquality(t, mc.A, 0x27)
	test.ExpectEquality(t, mc.F&FlagN, FlagN)
}

func TestRotateShift(t *testing.T) {
	mc := &CPU{}

	test.ExpectEquality(t, mc.rotateShift(0, 0x81), 0x03)
	test.ExpectEquality(t, mc.F&FlagC, FlagC)
	test.ExpectEquality(t, mc.rotateShift(1, 0x01), 0x80)
	test.ExpectEquality(t, mc.F&(FlagS|FlagC), FlagS|FlagC)

	mc.F = FlagC
	test.ExpectEquality(t, mc.rotateShift(2, 0x00), 0x01)
	test.ExpectEquality(t, mc.F&FlagC, 0)
	test.ExpectEquality(t, mc.rotateShift(5, 0x81), 0xc0)
	test.ExpectEquality(t, mc.rotateShift(6, 0x00), 0x01)
	test.ExpectEquality(t, mc.rotateShift(7, 0x01), 0x00)
	test.ExpectEquality(t, mc.F, FlagZ|FlagP|FlagC)
}

func TestTables(t *testing.T) {
	// every opcode in the base and CB tables is defined
	for i := range 256 {
		test.ExpectInequality(t, baseTable[i], (*Definition)(nil), fmt.Sprintf("base %02x", i))
		test.ExpectInequality(t, cbTable[i], (*Definition)(nil), fmt.Sprintf("CB %02x", i))
		test.ExpectInequality(t, ddcbTable[i], (*Definition)(nil), fmt.Sprintf("DDCB %02x", i))
	}

	// prefixed definitions include the cost of the prefix
	test.ExpectEquality(t, cbTable[0x00].Cycles, 8)
	test.ExpectEquality(t, edTable[0xb0].Cycles, 16)
	test.ExpectEquality(t, ddTable[0x21].Cycles, 14)
	test.ExpectEquality(t, ddcbTable[0x46].Cycles, 20)

	// opcodes that do not refer to HL are not in the index tables
	test.ExpectEquality(t, ddTable[0x04], (*Definition)(nil))
	test.ExpectEquality(t, fdTable[0x00], (*Definition)(nil))
}
