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

// Prefix identifies the dispatch table an instruction belongs to.
type Prefix int

// List of valid Prefix values.
const (
	NoPrefix Prefix = iota
	CB
	ED
	DD
	FD
	DDCB
	FDCB
)

func (p Prefix) String() string {
	switch p {
	case CB:
		return "CB"
	case ED:
		return "ED"
	case DD:
		return "DD"
	case FD:
		return "FD"
	case DDCB:
		return "DDCB"
	case FDCB:
		return "FDCB"
	}
	return ""
}

// the number of bytes taken by the prefix and the opcode.
func (p Prefix) length() int {
	switch p {
	case NoPrefix:
		return 1
	case DDCB, FDCB:
		return 3
	}
	return 2
}

// Operand placeholders used in the Mnemonic field of a Definition.
const (
	OperandWord         = "{nn}" // 16bit immediate value
	OperandByte         = "{n}"  // 8bit immediate value
	OperandRelative     = "{e}"  // relative branch offset
	OperandDisplacement = "{d}"  // signed index register displacement
)

// Definition describes a single instruction in one of the dispatch tables.
type Definition struct {
	Prefix Prefix
	OpCode uint8

	// the mnemonic contains placeholders for the operands. for example:
	//
	//	LD (IX{d}),{n}
	Mnemonic string

	// the static cost of the instruction, including the prefix. taken
	// branches and repeating block instructions cost more
	Cycles int

	execute func(mc *CPU)
}

func (defn Definition) String() string {
	return fmt.Sprintf("%s%02x %s (%d cycles)", defn.Prefix, defn.OpCode, defn.Mnemonic, defn.Cycles)
}

// Bytes returns the number of bytes taken by the instruction, including the
// prefix and operands.
func (defn Definition) Bytes() int {
	n := defn.Prefix.length()
	n += strings.Count(defn.Mnemonic, OperandWord) * 2
	n += strings.Count(defn.Mnemonic, OperandByte)
	n += strings.Count(defn.Mnemonic, OperandRelative)
	n += strings.Count(defn.Mnemonic, OperandDisplacement)
	return n
}

// table is a dispatch table. entries for undefined opcodes are nil.
type table [256]*Definition

// newTable creates a dispatch table from a list of definitions. it is a
// programming error for an opcode to be defined more than once.
func newTable(prefix Prefix, defns []Definition) *table {
	t := &table{}
	for i := range defns {
		d := defns[i]
		d.Prefix = prefix
		if t[d.OpCode] != nil {
			panic(fmt.Sprintf("z80: duplicate definition for %s%02x", prefix, d.OpCode))
		}
		t[d.OpCode] = &d
	}
	return t
}

// the dispatch tables.
var (
	baseTable = newTable(NoPrefix, baseDefinitions())
	cbTable   = newTable(CB, cbDefinitions())
	edTable   = newTable(ED, edDefinitions())
	ddTable   = newTable(DD, indexDefinitions("IX", func(mc *CPU) *uint16 { return &mc.IX }))
	fdTable   = newTable(FD, indexDefinitions("IY", func(mc *CPU) *uint16 { return &mc.IY }))
	ddcbTable = newTable(DDCB, indexBitDefinitions("IX"))
	fdcbTable = newTable(FDCB, indexBitDefinitions("IY"))
)

// Lookup returns the definition for the opcode in the table for the prefix.
// Returns nil if the opcode is undefined.
func Lookup(prefix Prefix, opcode uint8) *Definition {
	switch prefix {
	case CB:
		return cbTable[opcode]
	case ED:
		return edTable[opcode]
	case DD:
		return ddTable[opcode]
	case FD:
		return fdTable[opcode]
	case DDCB:
		return ddcbTable[opcode]
	case FDCB:
		return fdcbTable[opcode]
	}
	return baseTable[opcode]
}

// dispatch an opcode from one of the prefixed tables. the static cost of the
// instruction is deducted from the budget before the handler is called.
func (mc *CPU) dispatch(defn *Definition) {
	mc.budget -= defn.Cycles
	defn.execute(mc)
}
