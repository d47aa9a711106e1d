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

// Package termplay displays the television framebuffer in a terminal using
// ANSI truecolor escape sequences. Each character cell shows two pixels, one
// above the other, using the upper half block character.
//
// Terminals do not report key releases. A key is considered held for a short
// number of frames after the most recent press, which works well with the
// auto-repeat of a typical terminal.
package termplay
