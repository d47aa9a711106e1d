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
	"io"
	"strings"
)

// Grep searches the blessed entries of the disassembly for the search string
// and writes matching entries to io.Writer. Returns the number of matches.
func (dsm *Disassembly) Grep(output io.Writer, search string, caseSensitive bool) (int, error) {
	if !caseSensitive {
		search = strings.ToUpper(search)
	}

	matches := 0

	for bank := range dsm.numBanks {
		entries := dsm.Entries[bank]
		for address := dsm.bankOrigin(bank); address < len(entries); address++ {
			e := entries[address]
			if e == nil || e.Level < EntryLevelBlessed {
				continue
			}

			m := e.Text
			if !caseSensitive {
				m = strings.ToUpper(m)
			}
			if !strings.Contains(m, search) {
				continue
			}

			matches++
			if err := dsm.WriteEntry(output, WriteAttr{}, e); err != nil {
				return matches, err
			}
		}
	}

	return matches, nil
}
