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

// Package performance is used to test the basic performance of the emulator.
// The board is run as quickly as possible for a set duration and the
// achieved frame rate is reported, as a raw number and as a percentage of the
// television specification's frame rate.
//
// The Check() function can optionally create CPU and memory profiles and an
// execution trace of the run, for examination with "go tool pprof" and
// "go tool trace".
package performance
