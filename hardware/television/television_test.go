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

package television_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/jetsetilly/gopher8bit/hardware/television"
	"github.com/jetsetilly/gopher8bit/hardware/television/specification"
	"github.com/jetsetilly/gopher8bit/test"
)

type renderer struct {
	spec      string
	rows      int
	lastRow   int
	firstPix  [4]byte
	frames    int
	ended     bool
	failFrame bool
}

func (r *renderer) Resize(spec *specification.Spec) error {
	r.spec = spec.ID
	return nil
}

func (r *renderer) SetScanline(y int, pixels []byte) error {
	r.rows++
	r.lastRow = y
	copy(r.firstPix[:], pixels)
	return nil
}

func (r *renderer) NewFrame(frameNum int) error {
	r.frames = frameNum
	if r.failFrame {
		return errors.New("test error")
	}
	return nil
}

func (r *renderer) EndRendering() error {
	r.ended = true
	return nil
}

type mixer struct {
	samples int
	ended   bool
}

func (m *mixer) SetAudio(samples []float32) error {
	m.samples += len(samples)
	return nil
}

func (m *mixer) EndMixing() error {
	m.ended = true
	return nil
}

func TestSpec(t *testing.T) {
	_, err := television.NewTelevision("SECAM")
	test.ExpectSuccess(t, curated.Is(err, television.UnknownSpec))

	tv, err := television.NewTelevision("NTSC")
	test.DemandSuccess(t, err)

	var r renderer
	test.ExpectSuccess(t, tv.AddPixelRenderer(&r))
	test.ExpectEquality(t, r.spec, "NTSC")

	test.ExpectSuccess(t, tv.SetSpec("PAL"))
	test.ExpectEquality(t, r.spec, "PAL")
	test.ExpectEquality(t, tv.GetSpec().ScanlinesTotal, 312)
}

func TestFrame(t *testing.T) {
	tv, err := television.NewTelevision("NTSC")
	test.DemandSuccess(t, err)

	var r renderer
	var m mixer
	test.DemandSuccess(t, tv.AddPixelRenderer(&r))
	tv.AddAudioMixer(&m)

	colours := make([]uint8, specification.VisibleColourClocks)
	colours[0] = 0x0f
	colours[1] = 0x48

	for sl := range tv.GetSpec().ScanlinesTotal {
		test.DemandSuccess(t, tv.Scanline(sl, colours))
	}
	test.ExpectEquality(t, r.rows, specification.ScanlinesVisible)
	test.ExpectEquality(t, r.lastRow, specification.FrameHeight-1)

	white := specification.SpecNTSC.GetColour(0x0f)
	test.ExpectEquality(t, r.firstPix, [4]byte{white.R, white.G, white.B, white.A})

	// every colour clock is two pixels wide
	img := tv.Frame()
	test.ExpectEquality(t, img.RGBAAt(0, 0), white)
	test.ExpectEquality(t, img.RGBAAt(1, 0), white)
	test.ExpectEquality(t, img.RGBAAt(2, 0), specification.SpecNTSC.GetColour(0x48))

	test.DemandSuccess(t, tv.SetAudio(make([]float32, 800)))
	test.DemandSuccess(t, tv.EndFrame())
	test.ExpectEquality(t, r.frames, 1)
	test.ExpectEquality(t, m.samples, 800)
	test.ExpectEquality(t, tv.FrameNum(), 1)

	r.failFrame = true
	err = tv.EndFrame()
	test.ExpectSuccess(t, curated.Is(err, television.Renderer))

	test.ExpectSuccess(t, tv.End())
	test.ExpectSuccess(t, r.ended)
	test.ExpectSuccess(t, m.ended)

	tv.Reset()
	test.ExpectEquality(t, tv.FrameNum(), 0)
}
