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

package playmode_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher8bit/gui"
	"github.com/jetsetilly/gopher8bit/hardware"
	"github.com/jetsetilly/gopher8bit/hardware/instance"
	"github.com/jetsetilly/gopher8bit/hardware/memory"
	"github.com/jetsetilly/gopher8bit/hardware/television"
	"github.com/jetsetilly/gopher8bit/playmode"
	"github.com/jetsetilly/gopher8bit/test"
	"github.com/jetsetilly/gopher8bit/userinput"
)

// a gui that queues a list of events as soon as the event channel is set
type scripted struct {
	script  []userinput.Event
	visible bool
	fail    error
}

func (scr *scripted) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	if scr.fail != nil {
		return scr.fail
	}
	switch request {
	case gui.ReqSetEventChan:
		events := args[0].(chan userinput.Event)
		for _, ev := range scr.script {
			events <- ev
		}
	case gui.ReqSetVisibility:
		scr.visible = args[0].(bool)
	}
	return nil
}

func newBoard(t *testing.T) *hardware.Board {
	t.Helper()

	ins, err := instance.NewInstance(instance.Test, nil)
	test.DemandSuccess(t, err)
	ins.Normalise()

	tv, err := television.NewTelevision("NTSC")
	test.DemandSuccess(t, err)
	brd, err := hardware.NewBoard(ins, tv)
	test.DemandSuccess(t, err)

	// JR to self
	data := make([]uint8, 0x100)
	data[0], data[1] = 0x18, 0xfe
	cart, err := memory.NewCartridge(data)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, brd.AttachCartridge(cart))

	return brd
}

func TestQuit(t *testing.T) {
	brd := newBoard(t)
	rewind := hardware.NewRewind(brd, 10)

	scr := &scripted{script: []userinput.Event{
		userinput.EventKeyboard{Key: "Up", Down: true},
		userinput.EventQuit{},
	}}

	test.ExpectSuccess(t, playmode.Play(brd, scr, rewind))
	test.ExpectSuccess(t, scr.visible)
	test.ExpectEquality(t, brd.TV.FrameNum(), 1)
	test.ExpectEquality(t, brd.Joystick.String(), "up")
	test.ExpectEquality(t, rewind.Len(), 1)
}

func TestHotkeys(t *testing.T) {
	brd := newBoard(t)

	scr := &scripted{script: []userinput.Event{
		userinput.EventKeyboard{Key: "F7", Down: true},
		userinput.EventKeyboard{Key: "F5", Down: true},
		userinput.EventKeyboard{Key: "Backspace", Down: true},
		userinput.EventKeyboard{Key: "F7", Down: true},
		userinput.EventKeyboard{Key: "Escape", Down: true},
	}}

	// without a rewind the backspace key does nothing
	test.ExpectSuccess(t, playmode.Play(brd, scr, nil))
	test.ExpectEquality(t, brd.TV.FrameNum(), 1)
}

func TestFeatureError(t *testing.T) {
	brd := newBoard(t)
	scr := &scripted{fail: errors.New("no window")}
	test.ExpectFailure(t, playmode.Play(brd, scr, nil))
	test.ExpectEquality(t, brd.TV.FrameNum(), 0)
}
