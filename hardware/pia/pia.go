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

package pia

import (
	"fmt"

	"github.com/jetsetilly/gopher8bit/hardware/instance"
	"github.com/jetsetilly/gopher8bit/hardware/irq"
	"github.com/jetsetilly/gopher8bit/logger"
)

// Register offsets. Addresses are mirrored every NumRegisters bytes.
const (
	PORTA = 0x00
	PORTB = 0x01
	PACTL = 0x02
	PBCTL = 0x03

	NumRegisters = 0x04
)

// Port identifies one of the two ports.
type Port int

// List of valid Port values.
const (
	PortA Port = iota
	PortB
)

func (p Port) String() string {
	if p == PortA {
		return "A"
	}
	return "B"
}

// bits in the control register.
const (
	ctlC1Enable   = 0x01
	ctlC1Positive = 0x02
	ctlDataSelect = 0x04
	ctlC2Enable   = 0x08
	ctlC2Output   = 0x20
	ctlC2Status   = 0x40
	ctlC1Status   = 0x80

	ctlStatus = ctlC1Status | ctlC2Status
)

// control line modes selected by bits 3 to 5 of the control register.
const (
	modeHandshake = 0x04
	modePulse     = 0x05
	modeLow       = 0x06
	modeHigh      = 0x07
)

// IRQ is the interrupt controller used by the PIA.
type IRQ interface {
	Set(src irq.Source, asserted bool)
}

// Connection is implemented by devices attached to a port.
type Connection interface {
	// the output of the port has changed. bits configured as inputs read as 1
	PortOutput(v uint8)

	// the level of the second control line has changed while it is an output
	ControlLine(level bool)
}

type port struct {
	port Port

	latch uint8

	// the complement of the data direction register. a set bit is an input
	mask uint8

	ctl uint8

	// the state of the external lines connected to the port
	input uint8

	// the level of the control lines
	c1 bool
	c2 bool

	// a transition of the second control line happened while it was an
	// output. the status bit is set when the control line next becomes an
	// input with the matching edge mode
	negPending bool
	posPending bool

	conn Connection
}

func (pt *port) mode() uint8 {
	return (pt.ctl >> 3) & 0x07
}

// the value driven onto the port by the PIA.
func (pt *port) output() uint8 {
	return pt.latch | pt.mask
}

func (pt *port) irq() bool {
	return (pt.ctl&0x28 == ctlC2Enable && pt.ctl&ctlC2Status == ctlC2Status) ||
		(pt.ctl&ctlC1Enable == ctlC1Enable && pt.ctl&ctlC1Status == ctlC1Status)
}

// PIA represents the 6520 Peripheral Interface Adapter.
type PIA struct {
	instance *instance.Instance
	irq      IRQ

	ports [2]port
}

// NewPIA is the preferred method of initialisation for the PIA type. The
// instance and irq arguments can be nil.
func NewPIA(instance *instance.Instance, irq IRQ) *PIA {
	pia := &PIA{
		instance: instance,
		irq:      irq,
	}
	pia.ports[PortA].port = PortA
	pia.ports[PortB].port = PortB
	pia.Reset()
	return pia
}

// Reset the PIA to its power on state.
func (pia *PIA) Reset() {
	for i := range pia.ports {
		pt := &pia.ports[i]
		pt.latch = 0xff
		pt.mask = 0xff
		pt.ctl = 0x3f
		pt.input = 0xff
		pt.c1 = true
		pt.c2 = true
		pt.negPending = false
		pt.posPending = false
	}
	pia.updateIRQ()
}

// Attach a device to a port. Any existing device is replaced. The device is
// told the current output of the port and the current level of the control
// line.
func (pia *PIA) Attach(p Port, conn Connection) {
	pt := &pia.ports[p]
	pt.conn = conn
	if conn != nil {
		conn.PortOutput(pt.output())
		conn.ControlLine(pt.c2)
	}
}

// AllowLogging implements the logger.Permission interface.
func (pia *PIA) AllowLogging() bool {
	return pia.instance == nil || pia.instance.AllowLogging()
}

func (pia *PIA) String() string {
	a := &pia.ports[PortA]
	b := &pia.ports[PortB]
	return fmt.Sprintf("PORTA=%02x DDRA=%02x PACTL=%02x CA2=%v  PORTB=%02x DDRB=%02x PBCTL=%02x CB2=%v  IRQ=%v",
		a.latch, ^a.mask, a.ctl, a.c2, b.latch, ^b.mask, b.ctl, b.c2, pia.IRQ())
}

// IRQ returns true if either port is requesting an interrupt.
func (pia *PIA) IRQ() bool {
	return pia.ports[PortA].irq() || pia.ports[PortB].irq()
}

func (pia *PIA) updateIRQ() {
	if pia.irq != nil {
		pia.irq.Set(irq.PIA, pia.IRQ())
	}
}

// Output returns the value driven onto the port. Bits configured as inputs
// read as 1.
func (pia *PIA) Output(p Port) uint8 {
	return pia.ports[p].output()
}

// Control returns the value of the control register for the port.
func (pia *PIA) Control(p Port) uint8 {
	return pia.ports[p].ctl
}

// ControlLine returns the level of the second control line (CA2 or CB2) of the
// port.
func (pia *PIA) ControlLine(p Port) bool {
	return pia.ports[p].c2
}

// setC2 changes the level of an output control line.
func (pia *PIA) setC2(pt *port, level bool) {
	if pt.c2 == level {
		return
	}
	if level {
		pt.posPending = true
	} else {
		pt.negPending = true
	}
	pt.c2 = level
	logger.Logf(pia, "pia", "C%s2 output %v", pt.port, level)
	if pt.conn != nil {
		pt.conn.ControlLine(level)
	}
}

func (pia *PIA) portOutput(pt *port) {
	if pt.conn != nil {
		pt.conn.PortOutput(pt.output())
	}
}

// Write a value to the register at the offset.
func (pia *PIA) Write(reg uint8, v uint8) {
	reg %= NumRegisters

	switch reg {
	case PORTA, PORTB:
		pt := &pia.ports[reg-PORTA]
		if pt.ctl&ctlDataSelect == 0 {
			pt.mask = ^v
		} else {
			pt.latch = v
		}
		pia.portOutput(pt)

	case PACTL, PBCTL:
		pt := &pia.ports[reg-PACTL]
		pia.writeControl(pt, v)
	}

	pia.updateIRQ()
}

func (pia *PIA) writeControl(pt *port, v uint8) {
	// the status bits can not be written
	pt.ctl = pt.ctl&ctlStatus | v&^ctlStatus

	switch pt.mode() {
	case 0x00, 0x01:
		if pt.negPending {
			pt.ctl |= ctlC2Status
		}
		pt.negPending = false
		pt.posPending = false
	case 0x02, 0x03:
		if pt.posPending {
			pt.ctl |= ctlC2Status
		}
		pt.negPending = false
		pt.posPending = false
	case modeHandshake, modePulse, modeHigh:
		pia.setC2(pt, true)
	case modeLow:
		pia.setC2(pt, false)
	}
}

// strobe the second control line after a port access. in handshake mode the
// line stays low until the next active transition of the first control line.
func (pia *PIA) strobe(pt *port) {
	switch pt.mode() {
	case modeHandshake:
		pia.setC2(pt, false)
	case modePulse:
		pia.setC2(pt, false)
		pia.setC2(pt, true)
	}
}

// Read the register at the offset. Reading a port in data mode clears the
// status bits of the control register and strobes the control line.
func (pia *PIA) Read(reg uint8) uint8 {
	return pia.read(reg, false)
}

// Peek returns the value of the register at the offset without side effects.
func (pia *PIA) Peek(reg uint8) uint8 {
	return pia.read(reg, true)
}

func (pia *PIA) read(reg uint8, noSideEffects bool) uint8 {
	reg %= NumRegisters

	switch reg {
	case PORTA, PORTB:
		pt := &pia.ports[reg-PORTA]
		if pt.ctl&ctlDataSelect == 0 {
			return ^pt.mask
		}

		v := pt.input & (pt.latch | pt.mask)
		if !noSideEffects {
			pt.ctl &^= ctlStatus
			pia.strobe(pt)
			pia.updateIRQ()
		}
		return v
	}

	return pia.ports[reg-PACTL].ctl
}

// SetInput sets the state of the external lines connected to the port. Only
// the bits set in mask are changed.
func (pia *PIA) SetInput(p Port, mask uint8, v uint8) {
	pt := &pia.ports[p]
	pt.input = pt.input&^mask | v&mask
}

// Input returns the state of the external lines connected to the port.
func (pia *PIA) Input(p Port) uint8 {
	return pia.ports[p].input
}

// SetC1 sets the level of the first control line (CA1 or CB1). An active
// transition sets status bit 7 of the control register. Bit 1 of the control
// register selects the active transition.
func (pia *PIA) SetC1(p Port, level bool) {
	pt := &pia.ports[p]
	if pt.c1 == level {
		return
	}
	pt.c1 = level

	positive := pt.ctl&ctlC1Positive == ctlC1Positive
	if level != positive {
		return
	}

	pt.ctl |= ctlC1Status

	// the active transition ends the handshake
	if pt.mode() == modeHandshake {
		pia.setC2(pt, true)
	}

	pia.updateIRQ()
}

// SetC2 sets the level of the external line connected to the second control
// line (CA2 or CB2). It has no effect unless the control line is configured as
// an input. A transition matching the edge selected by bit 4 of the control
// register sets status bit 6.
func (pia *PIA) SetC2(p Port, level bool) {
	pt := &pia.ports[p]
	if pt.ctl&ctlC2Output == ctlC2Output {
		return
	}
	if pt.c2 == level {
		return
	}
	pt.c2 = level

	positive := pt.mode()&0x02 == 0x02
	if level != positive {
		return
	}

	pt.ctl |= ctlC2Status
	pia.updateIRQ()
}
