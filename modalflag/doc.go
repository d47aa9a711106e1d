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

// Package modalflag wraps the flag package in the Go standard library and
// adds the concept of program modes. Each mode has its own set of flags and
// can have sub-modes of its own.
//
// Arguments are supplied once with NewArgs(). Each call to Parse() consumes
// the flags for the current mode and, if sub-modes have been added with
// AddSubModes(), the name of the selected sub-mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "HEADLESS", "DISASM")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		scale := md.AddFloat64("scale", 2.0, "window scaling")
//		...
//	}
//
// The first sub-mode in the list is the default and is selected when the
// next argument does not name a sub-mode. Sub-mode names are case
// insensitive.
//
// Non-flag arguments that remain after parsing are returned by
// RemainingArgs() and GetArg().
package modalflag
