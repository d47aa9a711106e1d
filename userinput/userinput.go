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

// Event represents all the different type of userinput events.
type Event any

// EventQuit is sent when the user wants the emulation to end.
type EventQuit struct{}

// KeyMod identifies the modifier key held down during a keyboard event.
type KeyMod int

// List of valid key modifiers.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// EventKeyboard is sent for every key press and release.
type EventKeyboard struct {
	Key    string
	Down   bool
	Mod    KeyMod
	Repeat bool
}

// HandleInput conceptualises data being sent to the emulated peripherals.
type HandleInput interface {
	HandleEvent(ev peripherals.Event) error
}
