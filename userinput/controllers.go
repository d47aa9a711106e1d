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

package userinput

import "github.com/jetsetilly/gopher8bit/hardware/peripherals"

// the peripheral events for the press and release of a key.
type keyEvents struct {
	press   peripherals.Event
	release peripherals.Event
}

var keyboardMap = map[string]keyEvents{
	"Left":  {peripherals.Left, peripherals.NoLeft},
	"Right": {peripherals.Right, peripherals.NoRight},
	"Up":    {peripherals.Up, peripherals.NoUp},
	"Down":  {peripherals.Down, peripherals.NoDown},
	"Space": {peripherals.Fire, peripherals.NoFire},
	"F2":    {peripherals.OptionPress, peripherals.OptionRelease},
	"F3":    {peripherals.SelectPress, peripherals.SelectRelease},
	"F4":    {peripherals.StartPress, peripherals.StartRelease},
}

// Controllers keeps track of hardware userinput options.
type Controllers struct {
	// whether or not the last HandleUserInput() was for an event that was
	// consumed by the emulation as an input
	LastKeyHandled bool

	// is true if last event was a quit emulation event
	Quit bool
}

// HandleUserInput forwards the Event to the HandleInput implementation. The
// returned bool is true if the event was consumed.
func (c *Controllers) HandleUserInput(ev Event, handle HandleInput) (bool, error) {
	c.LastKeyHandled = false
	c.Quit = false

	switch ev := ev.(type) {
	case EventQuit:
		c.Quit = true
		return true, nil
	case EventKeyboard:
		return c.keyboard(ev, handle)
	}

	return false, nil
}

func (c *Controllers) keyboard(ev EventKeyboard, handle HandleInput) (bool, error) {
	if ev.Repeat || ev.Mod != KeyModNone {
		return false, nil
	}

	if ev.Key == "Escape" {
		c.Quit = ev.Down
		return true, nil
	}

	k, ok := keyboardMap[ev.Key]
	if !ok {
		return false, nil
	}

	c.LastKeyHandled = true

	if ev.Down {
		return true, handle.HandleEvent(k.press)
	}
	return true, handle.HandleEvent(k.release)
}
