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

package linedma

// Write registers.
const (
	DMACTL = 0x00
	CHACTL = 0x01
	DLISTL = 0x02
	DLISTH = 0x03
	PMBASE = 0x07
	WSYNC  = 0x0a
	NMIEN  = 0x0e
	NMIRES = 0x0f
)

// Read registers.
const (
	VCOUNT = 0x0b
	NMIST  = 0x0f
)

// NumRegisters is the number of addresses occupied by the controller.
// Addresses are mirrored every NumRegisters bytes.
const NumRegisters = 0x10

// bits in DMACTL.
const (
	DmactlPlayfieldWidth = 0x03
	DmactlMissiles       = 0x04
	DmactlPlayers        = 0x08
	DmactlSingleLine     = 0x10
	DmactlDisplayList    = 0x20
)

// bits in NMIEN and NMIST. the VBI IRQ bit is only used in NMIEN.
const (
	NmiDLI    = 0x80
	NmiVBI    = 0x40
	NmienVIRQ = 0x20
)

var writeNames = [NumRegisters]string{
	"DMACTL", "CHACTL", "DLISTL", "DLISTH", "", "", "", "PMBASE",
	"", "", "WSYNC", "", "", "", "NMIEN", "NMIRES",
}

// WriteName returns the name of the write register at the offset. Returns
// the empty string for unused offsets.
func WriteName(reg uint8) string {
	return writeNames[reg%NumRegisters]
}
