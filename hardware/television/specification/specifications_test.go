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

package specification_test

import (
	"testing"

	"github.com/jetsetilly/gopher8bit/hardware/television/specification"
	"github.com/jetsetilly/gopher8bit/test"
)

func TestSearch(t *testing.T) {
	spec, ok := specification.SearchSpec("pal")
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, spec.ID, "PAL")
	test.ExpectEquality(t, spec.ScanlinesTotal, 312)

	spec, ok = specification.SearchSpec(" NTSC")
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, spec.ScanlinesTotal, 262)

	_, ok = specification.SearchSpec("SECAM")
	test.ExpectFailure(t, ok)
}

func TestClock(t *testing.T) {
	test.ExpectApproximate(t, specification.SpecNTSC.ClockHz, 3579545, 0.001)
	test.ExpectApproximate(t, specification.SpecPAL.ClockHz, 3546894, 0.001)
}

func TestPalette(t *testing.T) {
	for _, spec := range []*specification.Spec{&specification.SpecNTSC, &specification.SpecPAL} {
		// hue zero is a grey scale of increasing brightness
		for lum := range 16 {
			c := spec.GetColour(uint8(lum))
			test.ExpectEquality(t, c.R, c.G, spec.ID, lum)
			test.ExpectEquality(t, c.G, c.B, spec.ID, lum)
			if lum > 0 {
				test.ExpectSuccess(t, c.R > spec.GetColour(uint8(lum-1)).R, spec.ID, lum)
			}
			test.ExpectEquality(t, c.A, 0xff)
		}

		// other hues are not grey
		c := spec.GetColour(0x48)
		test.ExpectSuccess(t, c.R != c.G || c.G != c.B, spec.ID)
	}

	test.ExpectEquality(t, specification.SpecNTSC.GetColour(0x0f).R, 0xff)
}
