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
	"strings"

	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/jetsetilly/gopher8bit/logger"
	"github.com/jetsetilly/gopher8bit/paths"
	"github.com/jetsetilly/gopher8bit/prefs"
)

// Preferences defines and collates all the preference values used by the
// hardware emulation.
type Preferences struct {
	dsk *prefs.Disk

	// the television specification used by the board. either NTSC or PAL
	Spec prefs.String

	// raise an error when the CPU halts with interrupts disabled and with no
	// possibility of an NMI
	TrapCrash prefs.Bool

	// VBI NMI is enabled when the board is reset
	VBlankNMI prefs.Bool

	GTIA *GTIAPreferences
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type.
//
// If the preferences file cannot be located the preferences will work
// normally but will not be saved.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	var err error

	p.GTIA, err = newGTIAPreferences()
	if err != nil {
		return nil, err
	}

	p.Spec.SetHookPre(func(v prefs.Value) error {
		switch strings.ToUpper(v.(string)) {
		case "NTSC", "PAL":
			return nil
		}
		return curated.Errorf("preferences: unsupported specification (%v)", v)
	})

	p.SetDefaults()

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		logger.Logf(logger.Allow, "preferences", "preferences will not be saved: %v", err)
		pth = ""
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("board.spec", &p.Spec)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("board.nmi.vblank", &p.VBlankNMI)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cpu.trapcrash", &p.TrapCrash)
	if err != nil {
		return nil, err
	}
	err = p.GTIA.addTo(p.dsk)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all hardware preferences to the default values.
func (p *Preferences) SetDefaults() {
	// the values are all valid so there can be no errors
	_ = p.Spec.Set("NTSC")
	_ = p.TrapCrash.Set(true)
	_ = p.VBlankNMI.Set(true)
	p.GTIA.SetDefaults()
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
