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

import "github.com/jetsetilly/gopher8bit/hardware/television/specification"

// PixelRenderer implementations display, or otherwise work with, visual
// information from a television.
type PixelRenderer interface {
	// Resize is called when the television specification changes. The
	// framebuffer size does not change between specifications
	Resize(spec *specification.Spec) error

	// SetScanline is called for every visible scanline. The y argument is
	// the row in the framebuffer and the pixels are in RGBA order. The slice
	// should not be retained after the function returns
	SetScanline(y int, pixels []byte) error

	// NewFrame is called once every scanline of the frame has been sent
	NewFrame(frameNum int) error

	// some renderers may need to conclude and/or dispose of resources gently.
	// for simplicity, the PixelRenderer should be considered unusable after
	// EndRendering() has been called
	EndRendering() error
}

// AudioMixer implementations work with sound; most probably playing it.
type AudioMixer interface {
	// SetAudio is called once per frame with mono samples in the range -1.0
	// to 1.0. The slice should not be retained after the function returns
	SetAudio(samples []float32) error

	// some mixers may need to conclude and/or dispose of resources gently.
	// for simplicity, the AudioMixer should be considered unusable after
	// EndMixing() has been called
	EndMixing() error
}
