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

// Package curated is a helper package for the Go error type. Errors are
// created with Errorf(), which takes a pattern and a list of values in the
// same way as fmt.Errorf(). The pattern identifies the error, which makes it
// possible to test for specific errors without declaring sentinel values:
//
//	const CPUCrash = "cpu crash: %v"
//
//	err := curated.Errorf(CPUCrash, pc)
//	if curated.Is(err, CPUCrash) {
//		...
//	}
//
// Has() is similar to Is() but searches the entire error chain. Errors wrapped
// by a curated error (through the %v verb) form the chain:
//
//	f := curated.Errorf("board: %v", err)
//	curated.Is(f, CPUCrash)  // false
//	curated.Has(f, CPUCrash) // true
//
// The Error() function normalises the message by removing duplicate adjacent
// parts. This means a function can prefix its package name to an error
// without worrying whether the callee has already done so:
//
//	"state: state: bad magic" becomes "state: bad magic"
//
// Curated errors also implement Unwrap() so they can take part in the
// errors.Is() and errors.As() functions of the standard library.
package curated
