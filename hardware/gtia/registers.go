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

package gtia

// Write registers. Values are offsets from the origin of the GTIA in the
// memory map.
const (
	HPOSP0 = 0x00
	HPOSP1 = 0x01
	HPOSP2 = 0x02
	HPOSP3 = 0x03
	HPOSM0 = 0x04
	HPOSM1 = 0x05
	HPOSM2 = 0x06
	HPOSM3 = 0x07
	SIZEP0 = 0x08
	SIZEP1 = 0x09
	SIZEP2 = 0x0a
	SIZEP3 = 0x0b
	SIZEM  = 0x0c
	GRAFP0 = 0x0d
	GRAFP1 = 0x0e
	GRAFP2 = 0x0f
	GRAFP3 = 0x10
	GRAFM  = 0x11
	COLPM0 = 0x12
	COLPM1 = 0x13
	COLPM2 = 0x14
	COLPM3 = 0x15
	COLPF0 = 0x16
	COLPF1 = 0x17
	COLPF2 = 0x18
	COLPF3 = 0x19
	COLBK  = 0x1a
	PRIOR  = 0x1b
	VDELAY = 0x1c
	GRACTL = 0x1d
	HITCLR = 0x1e
	CONSOL = 0x1f
)

// Read registers.
const (
	M0PF  = 0x00
	M1PF  = 0x01
	M2PF  = 0x02
	M3PF  = 0x03
	P0PF  = 0x04
	P1PF  = 0x05
	P2PF  = 0x06
	P3PF  = 0x07
	M0PL  = 0x08
	M1PL  = 0x09
	M2PL  = 0x0a
	M3PL  = 0x0b
	P0PL  = 0x0c
	P1PL  = 0x0d
	P2PL  = 0x0e
	P3PL  = 0x0f
	TRIG0 = 0x10
	TRIG1 = 0x11
	TRIG2 = 0x12
	TRIG3 = 0x13
	PAL   = 0x14
)

// NumRegisters is the number of addresses occupied by the GTIA. Addresses are
// mirrored every NumRegisters bytes.
const NumRegisters = 0x20

// bits in the GRACTL register.
const (
	GractlMissiles     = 0x01
	GractlPlayers      = 0x02
	GractlLatchTrigger = 0x04
)

// bits in the PRIOR register.
const (
	priorPlayfieldFirst = 0x04
	priorFifthPlayer    = 0x10
)

var writeNames = [NumRegisters]string{
	"HPOSP0", "HPOSP1", "HPOSP2", "HPOSP3", "HPOSM0", "HPOSM1", "HPOSM2", "HPOSM3",
	"SIZEP0", "SIZEP1", "SIZEP2", "SIZEP3", "SIZEM", "GRAFP0", "GRAFP1", "GRAFP2",
	"GRAFP3", "GRAFM", "COLPM0", "COLPM1", "COLPM2", "COLPM3", "COLPF0", "COLPF1",
	"COLPF2", "COLPF3", "COLBK", "PRIOR", "VDELAY", "GRACTL", "HITCLR", "CONSOL",
}

var readNames = [NumRegisters]string{
	"M0PF", "M1PF", "M2PF", "M3PF", "P0PF", "P1PF", "P2PF", "P3PF",
	"M0PL", "M1PL", "M2PL", "M3PL", "P0PL", "P1PL", "P2PL", "P3PL",
	"TRIG0", "TRIG1", "TRIG2", "TRIG3", "PAL", "", "", "",
	"", "", "", "", "", "", "", "CONSOL",
}

// WriteName returns the name of the write register at the offset.
func WriteName(reg uint8) string {
	return writeNames[reg%NumRegisters]
}

// ReadName returns the name of the read register at the offset. Returns the
// empty string if there is no register at that offset.
func ReadName(reg uint8) string {
	return readNames[reg%NumRegisters]
}
