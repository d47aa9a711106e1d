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
	"fmt"

	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/jetsetilly/gopher8bit/gui"
	"github.com/jetsetilly/gopher8bit/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

// SetFeature implements the gui.GUI interface. The request is serviced by
// the main thread.
func (scr *SdlPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	scr.service <- func() {
		scr.serviceErr <- scr.serviceFeature(request, args...)
	}
	return <-scr.serviceErr
}

func (scr *SdlPlay) serviceFeature(request gui.FeatureReq, args ...gui.FeatureReqData) (err error) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sdlplay: %s: %v", request, r)
		}
	}()

	switch request {
	case gui.ReqSetEventChan:
		scr.events = args[0].(chan userinput.Event)

	case gui.ReqSetVisibility:
		if args[0].(bool) {
			scr.window.Show()
		} else {
			scr.window.Hide()
		}

	case gui.ReqSetScale:
		scr.setScale(args[0].(float32))

	case gui.ReqFullScreen:
		if args[0].(bool) {
			err = scr.window.SetFullscreen(sdl.WINDOW_FULLSCREEN_DESKTOP)
		} else {
			err = scr.window.SetFullscreen(0)
		}

	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, request)
	}

	return err
}
