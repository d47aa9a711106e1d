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

// Package test contains helper functions that remove boilerplate from the
// tests found throughout the project.
//
// The Expect*() functions report a failure but allow the test to continue.
// The Demand*() functions are fatal to the test. Demand functions should be
// used when subsequent parts of the test depend on the value being correct,
// for example the length of a slice before it is indexed.
//
// ExpectSuccess() and ExpectFailure() interpret the value according to its
// type:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// The nil case is not obvious but it follows from how errors are normally
// returned. A nil error has no type and arrives as an untyped nil.
//
// All functions accept an optional list of tags. The tags are printed at the
// beginning of any failure message and are useful for identifying which
// iteration of a loop failed.
//
// CappedWriter and RingWriter implement io.Writer and are useful for
// capturing output that might otherwise grow without limit.
package test
