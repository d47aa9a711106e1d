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

package playmode

import (
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/jetsetilly/gopher8bit/gui"
	"github.com/jetsetilly/gopher8bit/hardware"
	"github.com/jetsetilly/gopher8bit/logger"
	"github.com/jetsetilly/gopher8bit/userinput"
)

// PlayError is the pattern for errors returned by Play().
const PlayError = "playmode: %v"

// the number of events that can be queued between frames
const eventQueueLength = 16

type playmode struct {
	brd    *hardware.Board
	scr    gui.GUI
	rewind *hardware.Rewind

	controllers userinput.Controllers
	events      chan userinput.Event
	intChan     chan os.Signal

	// the quick save snapshot
	quick []byte
}

// Play sets the emulation running until the user quits. The rewind argument
// can be nil in which case the rewind hotkey is ignored.
func Play(brd *hardware.Board, scr gui.GUI, rewind *hardware.Rewind) error {
	pl := &playmode{
		brd:     brd,
		scr:     scr,
		rewind:  rewind,
		events:  make(chan userinput.Event, eventQueueLength),
		intChan: make(chan os.Signal, 1),
	}

	err := scr.SetFeature(gui.ReqSetEventChan, pl.events)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}

	err = scr.SetFeature(gui.ReqSetVisibility, true)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}

	// ctrl-c ends the emulation gracefully
	signal.Notify(pl.intChan, os.Interrupt)
	defer signal.Stop(pl.intChan)

	err = brd.Run(pl.continueCheck)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}

	return nil
}

// called at the end of every frame. all queued events are handled before
// returning
func (pl *playmode) continueCheck() (bool, error) {
	if pl.rewind != nil {
		pl.rewind.RecordFrame()
	}

	for {
		select {
		case <-pl.intChan:
			return false, nil

		case ev := <-pl.events:
			handled, err := pl.controllers.HandleUserInput(ev, pl.brd.Joystick)
			if err != nil {
				return false, err
			}
			if pl.controllers.Quit {
				return false, nil
			}
			if !handled {
				if err := pl.hotkey(ev); err != nil {
					return false, err
				}
			}

		default:
			return true, nil
		}
	}
}

func (pl *playmode) hotkey(ev userinput.Event) error {
	kev, ok := ev.(userinput.EventKeyboard)
	if !ok || !kev.Down || kev.Repeat {
		return nil
	}

	switch kev.Key {
	case "Backspace":
		if pl.rewind == nil {
			return nil
		}
		err := pl.rewind.Back(int(pl.brd.Spec().FramesPerSecond))
		if err != nil {
			if curated.Is(err, hardware.RewindEmpty) {
				return nil
			}
			return err
		}
		logger.Log(pl.brd, "playmode", pl.rewind)

	case "F5":
		pl.quick = pl.brd.Snapshot()
		logger.Log(pl.brd, "playmode", "quick save")

	case "F7":
		if pl.quick == nil {
			return nil
		}
		if err := pl.brd.Plumb(pl.quick); err != nil {
			return err
		}
		logger.Log(pl.brd, "playmode", "quick load")
	}

	return nil
}
