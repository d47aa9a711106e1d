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

// Package instance defines those parts of the emulation that might change from
// instance to instance of the board, but is not actually the board itself.
//
// Particularly useful when running more than one instance of the emulation in
// parallel, as the tests do.
package instance

import (
	"github.com/jetsetilly/gopher8bit/hardware/preferences"
)

// Label indicates the context of the instance.
type Label string

// List of value Label values.
const (
	Main     Label = ""
	Headless Label = "headless"
	Test     Label = "test"
)

// Instance defines those parts of the emulation that might change between
// different instantiations of the board type.
type Instance struct {
	Label Label

	// the preferences of the running instance. this instance can be shared
	// with other running instances of the emulation.
	Prefs *preferences.Preferences
}

// NewInstance is the preferred method of initialisation for the Instance type.
//
// The prefs argument can be nil, in which case a new prefs instance will be
// created. Providing a non-nil value allows the preferences of more than one
// board to be synchronised.
func NewInstance(label Label, prefs *preferences.Preferences) (*Instance, error) {
	ins := &Instance{
		Label: label,
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	ins.Prefs = prefs

	return ins, nil
}

// Normalise ensures the instance is in an known default state. Useful for
// testing where the initial state must be the same for every run.
func (ins *Instance) Normalise() {
	ins.Prefs.SetDefaults()
}

// AllowLogging implements the logger.Permission interface. Instances created
// by tests do not log.
func (ins *Instance) AllowLogging() bool {
	return ins.Label != Test
}
