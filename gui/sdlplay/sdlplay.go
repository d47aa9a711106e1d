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

// Package sdlplay is a simple SDL window that displays the television
// framebuffer and forwards keyboard input to the emulation.
//
// SDL requires that window handling happens on the main thread. The Service()
// function must therefore be called regularly from the main thread and
// nowhere else. The PixelRenderer functions are called from the emulation
// goroutine and hand completed frames to Service() through a mutex protected
// buffer.
package sdlplay

import (
	"fmt"
	"io"
	"sync"
	"unsafe"

	"github.com/jetsetilly/gopher8bit/gui/sdlaudio"
	"github.com/jetsetilly/gopher8bit/hardware/television"
	"github.com/jetsetilly/gopher8bit/hardware/television/specification"
	"github.com/jetsetilly/gopher8bit/logger"
	"github.com/jetsetilly/gopher8bit/userinput"
	"github.com/jetsetilly/gopher8bit/version"

	"github.com/veandco/go-sdl2/sdl"
)

const pixelDepth = 4

// the default amount of scaling applied to the framebuffer
const defaultScale = 3.0

// SdlPlay is a simple SDL implementation of the television.PixelRenderer
// interface.
type SdlPlay struct {
	tv *television.Television

	// user input is sent on this channel. it is set with the ReqSetEventChan
	// request
	events chan userinput.Event

	// functions to be run on the main thread and the result of the function
	service    chan func()
	serviceErr chan error

	aud *sdlaudio.Audio

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// refresh rate of the monitor
	refreshRate float32

	scale float32

	// pixels is written to by SetScanline(). it is copied to the ready buffer
	// on NewFrame()
	pixels []byte

	// the most recent complete frame
	crit  sync.Mutex
	ready []byte
	fresh bool
	title string
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay.
//
// MUST ONLY be called from the main thread.
func NewSdlPlay(tv *television.Television) (*SdlPlay, error) {
	scr := &SdlPlay{
		tv:         tv,
		service:    make(chan func(), 1),
		serviceErr: make(chan error, 1),
		scale:      defaultScale,
		pixels:     make([]byte, specification.FrameWidth*specification.FrameHeight*pixelDepth),
		ready:      make([]byte, specification.FrameWidth*specification.FrameHeight*pixelDepth),
	}

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO)
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdlplay", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	mode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdlplay: %w", err)
	}
	scr.refreshRate = float32(mode.RefreshRate)
	logger.Logf(logger.Allow, "sdlplay", "refresh rate: %dHz", mode.RefreshRate)

	// window size is set in setScale()
	scr.window, err = sdl.CreateWindow(version.ApplicationName,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		0, 0,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		scr.window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		specification.FrameWidth, specification.FrameHeight)
	if err != nil {
		scr.renderer.Destroy()
		scr.window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	scr.setScale(scr.scale)

	// sound is not essential. carry on without it if the device can't be
	// opened
	scr.aud, err = sdlaudio.NewAudio()
	if err != nil {
		logger.Log(logger.Allow, "sdlplay", err)
	} else {
		tv.AddAudioMixer(scr.aud)
	}

	err = tv.AddPixelRenderer(scr)
	if err != nil {
		scr.Destroy(io.Discard)
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	// the limiter will quantise the frame rate to the refresh rate of the
	// monitor
	tv.Limiter.SetDisplay(scr)
	tv.Limiter.Active.Store(true)

	return scr, nil
}

// Destroy implements the GuiCreator interface.
//
// MUST ONLY be called from the main thread.
func (scr *SdlPlay) Destroy(output io.Writer) {
	if err := scr.texture.Destroy(); err != nil {
		fmt.Fprintln(output, err)
	}
	if err := scr.renderer.Destroy(); err != nil {
		fmt.Fprintln(output, err)
	}
	if err := scr.window.Destroy(); err != nil {
		fmt.Fprintln(output, err)
	}
	sdl.Quit()
}

// DisplayRefreshRate implements the limiter.Display interface.
func (scr *SdlPlay) DisplayRefreshRate() (float32, bool) {
	return scr.refreshRate, true
}

func (scr *SdlPlay) setScale(scale float32) {
	scr.scale = scale
	w := int32(float32(specification.FrameWidth) * scale)
	h := int32(float32(specification.FrameHeight) * scale)
	scr.window.SetSize(w, h)
}

// Resize implements the television.PixelRenderer interface.
func (scr *SdlPlay) Resize(spec *specification.Spec) error {
	scr.crit.Lock()
	defer scr.crit.Unlock()
	scr.title = fmt.Sprintf("%s (%s)", version.ApplicationName, spec.ID)
	return nil
}

// SetScanline implements the television.PixelRenderer interface.
func (scr *SdlPlay) SetScanline(y int, pixels []byte) error {
	copy(scr.pixels[y*specification.FrameWidth*pixelDepth:], pixels)
	return nil
}

// NewFrame implements the television.PixelRenderer interface.
func (scr *SdlPlay) NewFrame(_ int) error {
	scr.crit.Lock()
	defer scr.crit.Unlock()
	copy(scr.ready, scr.pixels)
	scr.fresh = true
	return nil
}

// EndRendering implements the television.PixelRenderer interface.
func (scr *SdlPlay) EndRendering() error {
	return nil
}

// present the most recent frame. called from Service()
func (scr *SdlPlay) present() {
	scr.crit.Lock()
	defer scr.crit.Unlock()

	if scr.title != "" {
		scr.window.SetTitle(scr.title)
		scr.title = ""
	}

	if !scr.fresh {
		return
	}
	scr.fresh = false

	err := scr.texture.Update(nil, unsafe.Pointer(&scr.ready[0]), specification.FrameWidth*pixelDepth)
	if err != nil {
		logger.Log(logger.Allow, "sdlplay", err)
		return
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		logger.Log(logger.Allow, "sdlplay", err)
		return
	}

	scr.renderer.Present()
}
