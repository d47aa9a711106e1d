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
	"github.com/jetsetilly/gopher8bit/hardware/cpu/z80"
)

// EntryLevel describes the level of the Entry.
type EntryLevel int

// List of valid EntryLevel in increasing reliability.
//
// Decoded entries have been decoded as though every byte is the start of an
// instruction. Blessed entries have been reached by following the flow of
// the program from an entry point.
const (
	EntryLevelDecoded EntryLevel = iota
	EntryLevelBlessed
)

func (lvl EntryLevel) String() string {
	switch lvl {
	case EntryLevelDecoded:
		return "decoded"
	case EntryLevelBlessed:
		return "blessed"
	}
	return "unknown"
}

// Entry is a disassembled instruction.
type Entry struct {
	z80.Instruction

	// the bank the entry belongs to
	Bank int

	Level EntryLevel

	// the entry is the target of a jump, call or branch instruction
	Target bool
}

// Label returns the label of an entry that is the target of a branch. Returns
// the empty string otherwise.
func (e *Entry) Label() string {
	if !e.Target {
		return ""
	}
	return labelName(e.Address)
}
