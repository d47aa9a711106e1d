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
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopher8bit/curated"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	// include the bytes of the instruction
	ByteCode bool

	// include decoded entries that are not covered by a blessed entry
	Decoded bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for bank := range dsm.numBanks {
		if err := dsm.WriteBank(output, attr, bank); err != nil {
			return err
		}
	}
	return nil
}

// WriteBank writes the disassembly of the selected bank to io.Writer.
func (dsm *Disassembly) WriteBank(output io.Writer, attr WriteAttr, bank int) error {
	if bank < 0 || bank >= dsm.numBanks {
		return curated.Errorf(NoSuchBank, bank)
	}

	if dsm.numBanks > 1 {
		if _, err := fmt.Fprintf(output, "--- bank %d ---\n", bank); err != nil {
			return curated.Errorf("disassembly: %v", err)
		}
	}

	entries := dsm.Entries[bank]
	for address := dsm.bankOrigin(bank); address < len(entries); address++ {
		e := entries[address]
		if e == nil || (e.Level < EntryLevelBlessed && !attr.Decoded) {
			continue
		}
		if err := dsm.WriteEntry(output, attr, e); err != nil {
			return err
		}

		// skip over the operands of blessed entries
		if e.Level == EntryLevelBlessed {
			address += len(e.Bytes) - 1
		}
	}

	return nil
}

// WriteEntry writes a single Entry to io.Writer.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e *Entry) error {
	var s strings.Builder

	if l := e.Label(); l != "" {
		s.WriteString(l)
		s.WriteString(":\n")
	}

	if attr.ByteCode {
		s.WriteString(e.Instruction.String())
	} else {
		fmt.Fprintf(&s, "%04x: %s", e.Address, e.Text)
	}

	if e.Level < EntryLevelBlessed {
		s.WriteString(" ; decoded")
	}
	s.WriteString("\n")

	if _, err := io.WriteString(output, s.String()); err != nil {
		return curated.Errorf("disassembly: %v", err)
	}
	return nil
}
