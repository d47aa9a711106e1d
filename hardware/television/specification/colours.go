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

package specification

import (
	"image/color"
	"math"
)

// the range of the Y component for luminance values 0 to 15
const (
	minY = 0.05
	maxY = 1.00
)

// the saturation of all hues other than zero
const saturation = 0.25

// the change of phase between adjacent hues, in degrees
const (
	phaseNTSC = 25.7
	phasePAL  = 23.5
)

const gamma = 2.2

func clamp(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}

func gammaCorrect(v float64) uint8 {
	return uint8(math.Pow(clamp(v), 1/gamma) * 255)
}

// returns the Y component and the angle on the colour wheel, in radians, for a
// colour index. the saturation is zero for hue zero
func components(col int, phase float64) (Y float64, phi float64, sat float64) {
	hue := col >> 4
	lum := col & 0x0f

	Y = minY + (float64(lum)/15)*(maxY-minY)
	if hue == 0 {
		return Y, 0, 0
	}

	phi = (180 - float64(hue-1)*phase) * math.Pi / 180
	return Y, phi, saturation
}

// the palette is an approximation. it makes no attempt to be correct in any
// colour space.
func generateNTSC(palette *[256]color.RGBA) {
	for col := range palette {
		Y, phi, sat := components(col, phaseNTSC)
		I := sat * math.Sin(phi)
		Q := sat * math.Cos(phi)

		// YIQ conversion values taken from the "NTSC 1953 colorimetry" section
		// of: https://en.wikipedia.org/w/index.php?title=YIQ&oldid=1220238306
		R := Y + (0.956 * I) + (0.619 * Q)
		G := Y - (0.272 * I) - (0.647 * Q)
		B := Y - (1.106 * I) + (1.703 * Q)

		palette[col] = color.RGBA{R: gammaCorrect(R), G: gammaCorrect(G), B: gammaCorrect(B), A: 255}
	}
}

func generatePAL(palette *[256]color.RGBA) {
	for col := range palette {
		Y, phi, sat := components(col, phasePAL)
		U := sat * math.Sin(phi)
		V := sat * math.Cos(phi)

		// YUV conversion values taken from the "SDTV with BT.470" section of:
		// https://en.wikipedia.org/w/index.php?title=Y%E2%80%B2UV&oldid=1249546174
		R := Y + (1.140 * V)
		G := Y - (0.395 * U) - (0.581 * V)
		B := Y + (2.032 * U)

		palette[col] = color.RGBA{R: gammaCorrect(R), G: gammaCorrect(G), B: gammaCorrect(B), A: 255}
	}
}
