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

package preferences

import (
	"sync/atomic"

	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/jetsetilly/gopher8bit/prefs"
)

// LiveGTIAPreferences holds the values read by the GTIA emulation on every
// collision register read. For performance reasons these should be preferred
// to the prefs values in GTIAPreferences.
type LiveGTIAPreferences struct {
	MaskMissilePlayer    atomic.Uint32
	MaskPlayerPlayer     atomic.Uint32
	MaskMissilePlayfield atomic.Uint32
	MaskPlayerPlayfield  atomic.Uint32
}

// GTIAPreferences defines the preferences for the GTIA collision engine.
type GTIAPreferences struct {
	Live LiveGTIAPreferences

	// select the cycle exact collision strategy. otherwise collisions are
	// only resolved at the end of the scanline
	CycleExact prefs.Bool

	// collision register read masks. each bit enables collision detection
	// against the corresponding object
	MaskMissilePlayer    prefs.Int
	MaskPlayerPlayer     prefs.Int
	MaskMissilePlayfield prefs.Int
	MaskPlayerPlayfield  prefs.Int
}

func newGTIAPreferences() (*GTIAPreferences, error) {
	p := &GTIAPreferences{}

	live := func(store *atomic.Uint32) func(v prefs.Value) error {
		return func(v prefs.Value) error {
			store.Store(uint32(v.(int)) & 0x0f)
			return nil
		}
	}
	p.MaskMissilePlayer.SetHookPost(live(&p.Live.MaskMissilePlayer))
	p.MaskPlayerPlayer.SetHookPost(live(&p.Live.MaskPlayerPlayer))
	p.MaskMissilePlayfield.SetHookPost(live(&p.Live.MaskMissilePlayfield))
	p.MaskPlayerPlayfield.SetHookPost(live(&p.Live.MaskPlayerPlayfield))

	validate := func(v prefs.Value) error {
		if m := v.(int); m < 0 || m > 0x0f {
			return curated.Errorf("preferences: collision mask out of range (%#02x)", m)
		}
		return nil
	}
	p.MaskMissilePlayer.SetHookPre(validate)
	p.MaskPlayerPlayer.SetHookPre(validate)
	p.MaskMissilePlayfield.SetHookPre(validate)
	p.MaskPlayerPlayfield.SetHookPre(validate)

	p.SetDefaults()

	return p, nil
}

func (p *GTIAPreferences) addTo(dsk *prefs.Disk) error {
	if err := dsk.Add("gtia.cycleexact", &p.CycleExact); err != nil {
		return err
	}
	if err := dsk.Add("gtia.collisions.mask.missileplayer", &p.MaskMissilePlayer); err != nil {
		return err
	}
	if err := dsk.Add("gtia.collisions.mask.playerplayer", &p.MaskPlayerPlayer); err != nil {
		return err
	}
	if err := dsk.Add("gtia.collisions.mask.missileplayfield", &p.MaskMissilePlayfield); err != nil {
		return err
	}
	if err := dsk.Add("gtia.collisions.mask.playerplayfield", &p.MaskPlayerPlayfield); err != nil {
		return err
	}
	return nil
}

// SetDefaults reverts the GTIA preferences to the default values.
func (p *GTIAPreferences) SetDefaults() {
	_ = p.CycleExact.Set(true)
	_ = p.MaskMissilePlayer.Set(0x0f)
	_ = p.MaskPlayerPlayer.Set(0x0f)
	_ = p.MaskMissilePlayfield.Set(0x0f)
	_ = p.MaskPlayerPlayfield.Set(0x0f)
}
