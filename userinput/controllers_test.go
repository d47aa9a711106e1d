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

package userinput_test

import (
	"testing"

	"github.com/jetsetilly/gopher8bit/hardware/peripherals"
	"github.com/jetsetilly/gopher8bit/test"
	"github.com/jetsetilly/gopher8bit/userinput"
)

type recorder struct {
	events []peripherals.Event
}

func (r *recorder) HandleEvent(ev peripherals.Event) error {
	r.events = append(r.events, ev)
	return nil
}

func TestKeyboard(t *testing.T) {
	var c userinput.Controllers
	var r recorder

	handled, err := c.HandleUserInput(userinput.EventKeyboard{Key: "Left", Down: true}, &r)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, handled)
	test.ExpectSuccess(t, c.LastKeyHandled)

	_, err = c.HandleUserInput(userinput.EventKeyboard{Key: "Left", Down: false}, &r)
	test.ExpectSuccess(t, err)

	_, err = c.HandleUserInput(userinput.EventKeyboard{Key: "F4", Down: true}, &r)
	test.ExpectSuccess(t, err)

	test.DemandEquality(t, len(r.events), 3)
	test.ExpectEquality(t, r.events[0], peripherals.Left)
	test.ExpectEquality(t, r.events[1], peripherals.NoLeft)
	test.ExpectEquality(t, r.events[2], peripherals.StartPress)

	// repeated keys and keys with a modifier are not forwarded
	handled, _ = c.HandleUserInput(userinput.EventKeyboard{Key: "Up", Down: true, Repeat: true}, &r)
	test.ExpectFailure(t, handled)
	handled, _ = c.HandleUserInput(userinput.EventKeyboard{Key: "Up", Down: true, Mod: userinput.KeyModCtrl}, &r)
	test.ExpectFailure(t, handled)
	handled, _ = c.HandleUserInput(userinput.EventKeyboard{Key: "Backspace", Down: true}, &r)
	test.ExpectFailure(t, handled)
	test.ExpectFailure(t, c.LastKeyHandled)
	test.ExpectEquality(t, len(r.events), 3)
}

func TestQuit(t *testing.T) {
	var c userinput.Controllers
	var r recorder

	_, err := c.HandleUserInput(userinput.EventQuit{}, &r)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, c.Quit)

	_, err = c.HandleUserInput(userinput.EventKeyboard{Key: "Space", Down: true}, &r)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, c.Quit)

	_, err = c.HandleUserInput(userinput.EventKeyboard{Key: "Escape", Down: true}, &r)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, c.Quit)
	test.ExpectEquality(t, len(r.events), 1)
}

func TestJoystick(t *testing.T) {
	var c userinput.Controllers
	stk := peripherals.NewJoystick(nil, nil)

	_, err := c.HandleUserInput(userinput.EventKeyboard{Key: "Up", Down: true}, stk)
	test.ExpectSuccess(t, err)
	_, err = c.HandleUserInput(userinput.EventKeyboard{Key: "Space", Down: true}, stk)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, stk.String(), "up fire")
}
