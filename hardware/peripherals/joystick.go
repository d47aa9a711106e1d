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

package peripherals

import (
	"strings"

	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/jetsetilly/gopher8bit/hardware/gtia"
	"github.com/jetsetilly/gopher8bit/hardware/pia"
)

// UnhandledEvent is returned by HandleEvent() for events that the joystick
// does not understand.
const UnhandledEvent = "peripherals: unhandled event (%v)"

// PIA is the peripheral adapter the joystick directions are connected to.
type PIA interface {
	SetInput(p pia.Port, mask uint8, v uint8)
}

// GTIA is the graphics chip the fire button and console keys are connected to.
type GTIA interface {
	SetTrigger(n int, pressed bool)
	SetConsoleKeys(keys uint8)
}

// the bits of PIA port A for each direction. the lines are active low.
const (
	stickUp    = 0x01
	stickDown  = 0x02
	stickLeft  = 0x04
	stickRight = 0x08
	stickMask  = 0x0f
)

// Joystick is a digital joystick with one fire button, together with the
// console keys.
type Joystick struct {
	pia  PIA
	gtia GTIA

	// the direction bits currently active. a set bit is a pressed direction
	directions uint8
	fire       bool
	keys       uint8
}

// NewJoystick is the preferred method of initialisation for the Joystick type.
func NewJoystick(pia PIA, gtia GTIA) *Joystick {
	stk := &Joystick{
		pia:  pia,
		gtia: gtia,
	}
	stk.Reset()
	return stk
}

// Reset releases all directions, the fire button and the console keys.
func (stk *Joystick) Reset() {
	stk.directions = 0
	stk.fire = false
	stk.keys = 0
	stk.update()
}

func (stk *Joystick) String() string {
	s := strings.Builder{}
	for _, d := range []struct {
		bit  uint8
		name string
	}{
		{stickUp, "up"}, {stickDown, "down"}, {stickLeft, "left"}, {stickRight, "right"},
	} {
		if stk.directions&d.bit == d.bit {
			s.WriteString(d.name)
			s.WriteRune(' ')
		}
	}
	if stk.fire {
		s.WriteString("fire ")
	}
	if s.Len() == 0 {
		return "centre"
	}
	return strings.TrimSpace(s.String())
}

func (stk *Joystick) update() {
	if stk.pia != nil {
		stk.pia.SetInput(pia.PortA, stickMask, ^stk.directions&stickMask)
	}
	if stk.gtia != nil {
		stk.gtia.SetTrigger(0, stk.fire)
		stk.gtia.SetConsoleKeys(stk.keys)
	}
}

// HandleEvent changes the state of the joystick or console keys.
func (stk *Joystick) HandleEvent(ev Event) error {
	switch ev {
	case NoEvent:
		return nil
	case Fire:
		stk.fire = true
	case NoFire:
		stk.fire = false
	case Up:
		stk.directions = stk.directions&^stickDown | stickUp
	case NoUp:
		stk.directions &^= stickUp
	case Down:
		stk.directions = stk.directions&^stickUp | stickDown
	case NoDown:
		stk.directions &^= stickDown
	case Left:
		stk.directions = stk.directions&^stickRight | stickLeft
	case NoLeft:
		stk.directions &^= stickLeft
	case Right:
		stk.directions = stk.directions&^stickLeft | stickRight
	case NoRight:
		stk.directions &^= stickRight
	case Centre:
		stk.directions = 0
	case StartPress:
		stk.keys |= gtia.ConsoleStart
	case StartRelease:
		stk.keys &^= gtia.ConsoleStart
	case SelectPress:
		stk.keys |= gtia.ConsoleSelect
	case SelectRelease:
		stk.keys &^= gtia.ConsoleSelect
	case OptionPress:
		stk.keys |= gtia.ConsoleOption
	case OptionRelease:
		stk.keys &^= gtia.ConsoleOption
	default:
		return curated.Errorf(UnhandledEvent, ev)
	}

	stk.update()
	return nil
}
