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

// Package ioports implements the I/O port address space of the CPU. Only the
// lower eight bits of the port address are decoded.
//
//	IN  7e	V counter (low eight bits of the scanline)
//	IN  7f	H counter (colour clock divided by two)
//	OUT 7e	PSG
//	OUT 7f	PSG
//	IN  dc	PIA port A
//	IN  dd	PIA port B
//
// All other ports read as 0xff and ignore writes.
package ioports

import (
	"fmt"

	"github.com/jetsetilly/gopher8bit/hardware/pia"
)

// Port numbers.
const (
	VCounter = 0x7e
	HCounter = 0x7f
	PSGLo    = 0x7e
	PSGHi    = 0x7f
	PIAPortA = 0xdc
	PIAPortB = 0xdd
)

// Beam reports the position of the television beam.
type Beam interface {
	Scanline() int
	ColourClock() int
}

// PSG is the sound chip connected to the output ports.
type PSG interface {
	Write(v uint8)
}

// PIA is the peripheral adapter whose ports can be read through the input
// ports.
type PIA interface {
	Peek(reg uint8) uint8
}

// Ports implements the In() and Out() functions of the z80.Bus interface.
type Ports struct {
	beam Beam
	psg  PSG
	pia  PIA
}

// NewPorts is the preferred method of initialisation for the Ports type. Any
// argument can be nil.
func NewPorts(beam Beam, psg PSG, pia PIA) *Ports {
	return &Ports{
		beam: beam,
		psg:  psg,
		pia:  pia,
	}
}

func (p *Ports) String() string {
	if p.beam == nil {
		return "ports: no beam"
	}
	return fmt.Sprintf("ports: V=%02x H=%02x", p.In(VCounter), p.In(HCounter))
}

// In returns the value of the input port.
func (p *Ports) In(port uint8) uint8 {
	switch port {
	case VCounter:
		if p.beam != nil {
			return uint8(p.beam.Scanline())
		}
	case HCounter:
		if p.beam != nil {
			return uint8(p.beam.ColourClock() >> 1)
		}
	case PIAPortA:
		if p.pia != nil {
			return p.pia.Peek(pia.PORTA)
		}
	case PIAPortB:
		if p.pia != nil {
			return p.pia.Peek(pia.PORTB)
		}
	}
	return 0xff
}

// Out writes the value to the output port.
func (p *Ports) Out(port uint8, v uint8) {
	switch port {
	case PSGLo, PSGHi:
		if p.psg != nil {
			p.psg.Write(v)
		}
	}
}
