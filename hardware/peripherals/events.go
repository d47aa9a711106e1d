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

// Event represents the possible actions that can be performed by the user
// when interacting with the console.
type Event int

// List of defined events.
const (
	NoEvent Event = iota

	// joystick
	Fire
	NoFire
	Up
	NoUp
	Down
	NoDown
	Left
	NoLeft
	Right
	NoRight
	Centre

	// console keys
	StartPress
	StartRelease
	SelectPress
	SelectRelease
	OptionPress
	OptionRelease
)

var eventNames = map[Event]string{
	NoEvent:       "NoEvent",
	Fire:          "Fire",
	NoFire:        "NoFire",
	Up:            "Up",
	NoUp:          "NoUp",
	Down:          "Down",
	NoDown:        "NoDown",
	Left:          "Left",
	NoLeft:        "NoLeft",
	Right:         "Right",
	NoRight:       "NoRight",
	Centre:        "Centre",
	StartPress:    "StartPress",
	StartRelease:  "StartRelease",
	SelectPress:   "SelectPress",
	SelectRelease: "SelectRelease",
	OptionPress:   "OptionPress",
	OptionRelease: "OptionRelease",
}

func (ev Event) String() string {
	if s, ok := eventNames[ev]; ok {
		return s
	}
	return "unknown event"
}
