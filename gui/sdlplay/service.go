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

package sdlplay

import (
	"github.com/jetsetilly/gopher8bit/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

func keyMod(mod uint16) userinput.KeyMod {
	switch {
	case mod&sdl.KMOD_LALT == sdl.KMOD_LALT || mod&sdl.KMOD_RALT == sdl.KMOD_RALT:
		return userinput.KeyModAlt
	case mod&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT || mod&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT:
		return userinput.KeyModShift
	case mod&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL || mod&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL:
		return userinput.KeyModCtrl
	}
	return userinput.KeyModNone
}

// send event to the emulation. events are dropped if the channel is full or
// if no channel has been set
func (scr *SdlPlay) send(ev userinput.Event) {
	if scr.events == nil {
		return
	}
	select {
	case scr.events <- ev:
	default:
	}
}

// Service implements the GuiCreator interface.
//
// MUST ONLY be called from the main thread.
func (scr *SdlPlay) Service() {
	for ev := sdl.WaitEventTimeout(1); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.send(userinput.EventQuit{})

		case *sdl.KeyboardEvent:
			scr.send(userinput.EventKeyboard{
				Key:    sdl.GetKeyName(ev.Keysym.Sym),
				Down:   ev.Type == sdl.KEYDOWN,
				Mod:    keyMod(ev.Keysym.Mod),
				Repeat: ev.Repeat != 0,
			})
		}
	}

	scr.present()

	// run any outstanding service functions
	select {
	case f := <-scr.service:
		f()
	default:
	}
}
