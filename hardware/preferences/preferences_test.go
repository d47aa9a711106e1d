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

package preferences_test

import (
	"testing"

	"github.com/jetsetilly/gopher8bit/hardware/preferences"
	"github.com/jetsetilly/gopher8bit/prefs"
	"github.com/jetsetilly/gopher8bit/test"
)

func TestCollisionMasks(t *testing.T) {
	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	p.SetDefaults()

	test.ExpectEquality(t, p.GTIA.Live.MaskPlayerPlayer.Load(), uint32(0x0f))

	test.ExpectSuccess(t, p.GTIA.MaskPlayerPlayer.Set(0x05))
	test.ExpectEquality(t, p.GTIA.Live.MaskPlayerPlayer.Load(), uint32(0x05))

	// out of range values are rejected and the live value is unchanged
	test.ExpectFailure(t, p.GTIA.MaskPlayerPlayer.Set(0x10))
	test.ExpectEquality(t, p.GTIA.Live.MaskPlayerPlayer.Load(), uint32(0x05))
}

func TestSpecification(t *testing.T) {
	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	p.SetDefaults()

	test.ExpectEquality(t, p.Spec.String(), "NTSC")
	test.ExpectSuccess(t, p.Spec.Set("PAL"))
	test.ExpectFailure(t, p.Spec.Set("SECAM"))
	test.ExpectEquality(t, p.Spec.String(), "PAL")
}

func TestCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("gtia.cycleexact::false; cpu.trapcrash::false")
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, p.GTIA.CycleExact.Get().(bool))
	test.ExpectFailure(t, p.TrapCrash.Get().(bool))
}
