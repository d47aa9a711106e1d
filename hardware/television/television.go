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

package television

import (
	"fmt"
	"image"

	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/jetsetilly/gopher8bit/hardware/television/limiter"
	"github.com/jetsetilly/gopher8bit/hardware/television/specification"
)

// Error patterns returned by the television package.
const (
	UnknownSpec = "television: unknown specification (%s)"
	Renderer    = "television: renderer: %v"
	Mixer       = "television: mixer: %v"
)

// Television receives scanlines and sound from the board.
type Television struct {
	spec *specification.Spec

	frameNum int

	// the most recently completed scanline
	scanline int

	// the frame being built
	frame *image.RGBA

	renderers []PixelRenderer
	mixers    []AudioMixer

	Limiter *limiter.Limiter
}

// NewTelevision creates a new instance of the television type, satisfying the
// Television interface.
func NewTelevision(spec string) (*Television, error) {
	tv := &Television{
		frame: image.NewRGBA(image.Rect(0, 0, specification.FrameWidth, specification.FrameHeight)),
	}

	err := tv.SetSpec(spec)
	if err != nil {
		return nil, err
	}

	tv.Limiter = limiter.NewLimiter(tv.spec.FramesPerSecond)

	// the limiter is activated by the front-ends that require it
	tv.Limiter.Active.Store(false)

	return tv, nil
}

func (tv *Television) String() string {
	return fmt.Sprintf("%s FR=%d SL=%d", tv.spec.ID, tv.frameNum, tv.scanline)
}

// SetSpec changes the television specification. Renderers are told about the
// change.
func (tv *Television) SetSpec(spec string) error {
	s, ok := specification.SearchSpec(spec)
	if !ok {
		return curated.Errorf(UnknownSpec, spec)
	}

	tv.spec = s

	if tv.Limiter != nil {
		tv.Limiter.SetRefreshRate(tv.spec.FramesPerSecond)
	}

	for _, r := range tv.renderers {
		if err := r.Resize(tv.spec); err != nil {
			return curated.Errorf(Renderer, err)
		}
	}

	return nil
}

// GetSpec returns the current specification.
func (tv *Television) GetSpec() *specification.Spec {
	return tv.spec
}

// AddPixelRenderer registers an implementation of PixelRenderer.
func (tv *Television) AddPixelRenderer(r PixelRenderer) error {
	tv.renderers = append(tv.renderers, r)
	if err := r.Resize(tv.spec); err != nil {
		return curated.Errorf(Renderer, err)
	}
	return nil
}

// AddAudioMixer registers an implementation of AudioMixer.
func (tv *Television) AddAudioMixer(m AudioMixer) {
	tv.mixers = append(tv.mixers, m)
}

// Reset the frame counter and clear the framebuffer.
func (tv *Television) Reset() {
	tv.frameNum = 0
	tv.scanline = 0
	clear(tv.frame.Pix)
}

// End the use of the television. EndRendering() and EndMixing() is called on
// every PixelRenderer and AudioMixer.
func (tv *Television) End() error {
	var err error
	for _, r := range tv.renderers {
		if e := r.EndRendering(); e != nil && err == nil {
			err = curated.Errorf(Renderer, e)
		}
	}
	for _, m := range tv.mixers {
		if e := m.EndMixing(); e != nil && err == nil {
			err = curated.Errorf(Mixer, e)
		}
	}
	return err
}

// FrameNum returns the number of frames completed since reset.
func (tv *Television) FrameNum() int {
	return tv.frameNum
}

// Frame returns the framebuffer. The contents are only complete immediately
// after EndFrame().
func (tv *Television) Frame() *image.RGBA {
	return tv.frame
}

// Scanline receives a line of colour indexes. The first entry of the colours
// slice is the colour clock at specification.VisibleLeft. Scanlines outside of
// the visible area are ignored.
func (tv *Television) Scanline(scanline int, colours []uint8) error {
	tv.scanline = scanline

	if scanline < specification.ScanlineTop || scanline >= specification.ScanlineBottom {
		return nil
	}

	y := scanline - specification.ScanlineTop
	row := tv.frame.Pix[y*tv.frame.Stride : (y+1)*tv.frame.Stride]

	n := min(len(colours), specification.VisibleColourClocks)
	for x := range n {
		c := tv.spec.Colours[colours[x]]
		i := x * 8
		row[i], row[i+1], row[i+2], row[i+3] = c.R, c.G, c.B, c.A
		row[i+4], row[i+5], row[i+6], row[i+7] = c.R, c.G, c.B, c.A
	}

	for _, r := range tv.renderers {
		if err := r.SetScanline(y, row); err != nil {
			return curated.Errorf(Renderer, err)
		}
	}

	return nil
}

// SetAudio sends sound samples to every AudioMixer.
func (tv *Television) SetAudio(samples []float32) error {
	if len(samples) == 0 {
		return nil
	}
	for _, m := range tv.mixers {
		if err := m.SetAudio(samples); err != nil {
			return curated.Errorf(Mixer, err)
		}
	}
	return nil
}

// EndFrame completes the current frame. Renderers are told about the new
// frame and the limiter waits if it is active.
func (tv *Television) EndFrame() error {
	tv.frameNum++

	for _, r := range tv.renderers {
		if err := r.NewFrame(tv.frameNum); err != nil {
			return curated.Errorf(Renderer, err)
		}
	}

	tv.Limiter.CheckFrame()
	tv.Limiter.MeasureActual()

	return nil
}
