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

// Package prefs facilitates the storage of preference values on disk. Values
// are typed (Bool, Int, Float, String and Generic) and can have hook
// functions that run when the value is set. Values are added to a Disk
// instance under a key and saved to a text file in "key :: value" form.
//
// Values can also be specified on the command line. PushCommandLineStack()
// adds a group of values which override the values loaded from disk the next
// time Disk.Load() is called for the matching key.
package prefs
