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

// Package pia implements the 6520 Peripheral Interface Adapter.
//
// The PIA has two 8 bit ports (A and B), each with a data direction register,
// a control register and two control lines. The first control line of each
// port (CA1 and CB1) is always an input. The second control line (CA2 and
// CB2) can be an input or an output depending on the mode selected by bits 3
// to 5 of the control register:
//
//	000, 001	input, status on negative edge
//	010, 011	input, status on positive edge
//	100		output, handshake
//	101		output, pulse
//	110		output, low
//	111		output, high
//
// Devices attached to the PIA implement the Connection interface to be told
// about changes to the output of a port and to the level of an output control
// line. The cassette motor is connected to CA2 and the serial command line is
// connected to CB2.
//
// The interrupt request outputs of both ports are combined and sent to the
// interrupt controller whenever a control register or a port is written.
package pia
