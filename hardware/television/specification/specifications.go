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

// Package specification contains the definitions of the PAL and NTSC
// television protocols supported by the emulation.
package specification

import (
	"image/color"
	"strings"
)

// SpecList is the list of specifications that the television may adopt.
var SpecList = []string{"NTSC", "PAL"}

// Horizontal timing is the same for both specifications. The CPU runs at one
// cycle per colour clock.
const (
	ColourClocksPerScanline = 228
	CyclesPerScanline       = ColourClocksPerScanline
)

// The visible part of the screen. The framebuffer is two pixels wide for
// every colour clock.
const (
	VisibleColourClocks = 160
	VisibleLeft         = 0x30
	ScanlineTop         = 8
	ScanlineBottom      = 248
	ScanlinesVisible    = ScanlineBottom - ScanlineTop

	FrameWidth  = VisibleColourClocks * 2
	FrameHeight = ScanlinesVisible
)

// Spec is used to define the two television specifications.
type Spec struct {
	ID string

	// the total number of scanlines in the frame
	ScanlinesTotal int

	// the scanline on which the vertical blank interrupt is raised
	ScanlineVBI int

	// the number of frames per second required by the specification
	FramesPerSecond float32

	// the CPU clock derived from the frame rate
	ClockHz int

	// the 256 entry palette. the upper nibble of the colour index is the hue
	// and the lower nibble is the luminance
	Colours [256]color.RGBA
}

func (spec *Spec) String() string {
	return spec.ID
}

// GetColour translates a colour index to the color type.
func (spec *Spec) GetColour(col uint8) color.RGBA {
	return spec.Colours[col]
}

// SpecNTSC is the specification for NTSC television types.
var SpecNTSC Spec

// SpecPAL is the specification for PAL television types.
var SpecPAL Spec

func init() {
	SpecNTSC = Spec{
		ID:              "NTSC",
		ScanlinesTotal:  262,
		ScanlineVBI:     ScanlineBottom,
		FramesPerSecond: 59.92,
	}
	SpecNTSC.ClockHz = int(float32(SpecNTSC.ScanlinesTotal*CyclesPerScanline) * SpecNTSC.FramesPerSecond)
	generateNTSC(&SpecNTSC.Colours)

	SpecPAL = Spec{
		ID:              "PAL",
		ScanlinesTotal:  312,
		ScanlineVBI:     ScanlineBottom,
		FramesPerSecond: 49.86,
	}
	SpecPAL.ClockHz = int(float32(SpecPAL.ScanlinesTotal*CyclesPerScanline) * SpecPAL.FramesPerSecond)
	generatePAL(&SpecPAL.Colours)
}

// SearchSpec looks for the specification in the list of known
// specifications. The search is case insensitive.
func SearchSpec(id string) (*Spec, bool) {
	switch strings.ToUpper(strings.TrimSpace(id)) {
	case "NTSC":
		return &SpecNTSC, true
	case "PAL":
		return &SpecPAL, true
	}
	return nil, false
}
