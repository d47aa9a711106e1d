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

package termplay

import (
	"bufio"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8bit/hardware/television/specification"
	"github.com/jetsetilly/gopher8bit/test"
	"github.com/jetsetilly/gopher8bit/userinput"
)

func TestParseKeys(t *testing.T) {
	keys := parseKeys([]byte("\x1b[A\x1b[D \x7f\x1bOS\x1b[15~q"))
	test.ExpectEquality(t, strings.Join(keys, ","), "Up,Left,Space,Backspace,F4,F5,Quit")

	// a lone escape
	keys = parseKeys([]byte{0x1b})
	test.ExpectEquality(t, strings.Join(keys, ","), "Escape")

	// unknown sequences and truncated sequences are ignored
	keys = parseKeys([]byte("\x1b[99~x\x1b[1"))
	test.ExpectEquality(t, len(keys), 0)
}

func TestRender(t *testing.T) {
	frame := make([]byte, specification.FrameWidth*specification.FrameHeight*4)

	// top-left pixel is red. the pixel below it is blue
	frame[0] = 0xff
	frame[specification.FrameWidth*4+2] = 0xff

	var s strings.Builder
	w := bufio.NewWriter(&s)
	test.ExpectSuccess(t, render(w, frame, specification.FrameWidth, specification.FrameHeight/2))

	out := s.String()
	test.ExpectSuccess(t, strings.HasPrefix(out, "\x1b[H\x1b[38;2;255;0;0m\x1b[48;2;0;0;255m▀"))
	test.ExpectEquality(t, strings.Count(out, "▀"), specification.FrameWidth*specification.FrameHeight/2)
	test.ExpectEquality(t, strings.Count(out, "\r\n"), specification.FrameHeight/2-1)

	// a small terminal
	s.Reset()
	test.ExpectSuccess(t, render(w, frame, 4, 2))
	test.ExpectEquality(t, strings.Count(s.String(), "▀"), 8)
}

func TestHeldKeys(t *testing.T) {
	trm := &TermPlay{
		held:   make(map[string]int),
		events: make(chan userinput.Event, 10),
	}

	trm.press([]string{"Left"})
	trm.press([]string{"Left", quitKey})

	test.DemandEquality(t, len(trm.events), 2)
	test.ExpectEquality(t, (<-trm.events).(userinput.EventKeyboard), userinput.EventKeyboard{Key: "Left", Down: true})
	_, ok := (<-trm.events).(userinput.EventQuit)
	test.ExpectSuccess(t, ok)

	for range holdFrames - 1 {
		trm.release()
	}
	test.ExpectEquality(t, len(trm.events), 0)

	trm.release()
	test.DemandEquality(t, len(trm.events), 1)
	test.ExpectEquality(t, (<-trm.events).(userinput.EventKeyboard), userinput.EventKeyboard{Key: "Left", Down: false})
}
