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

// Package cartridgeloader is used to specify the data that is to be attached
// to the emulated board.
//
// When the data is ready to be loaded into the emulator, the Load() function
// should be used. The Load() function handles loading of data from different
// sources. Currently local files and data over HTTP are supported.
//
// The simplest instance of the Loader type:
//
//	cl := cartridgeloader.Loader{
//		Filename: "roms/game.rom",
//	}
//
// It is preferred however that the NewLoader() function is used. The
// NewLoader() function will set the IsSoundData field automatically according
// to the filename extension. Sound data is intended for the cassette rather
// than the cartridge slot.
package cartridgeloader
