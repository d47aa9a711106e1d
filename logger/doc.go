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

// Package logger is the logging package used throughout the project. Entries
// are made up of a tag and a detail string. The tag is normally the name of
// the package or component making the entry:
//
//	logger.Logf(logger.Allow, "pia", "CA2 low: cassette motor on")
//
// Every logging call takes a Permission. Components that might be running
// in a context where logging is unwanted (a test harness, or a second board
// instance used for comparison) pass a Permission that can say no.
//
// Consecutive identical entries are collapsed into a single entry with a
// repeat count. The central log holds a fixed number of entries; the oldest
// entries are dropped first.
package logger
