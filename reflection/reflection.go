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

// Package reflection writes a graph of the internal structure of the board,
// or any of its components, in the graphviz DOT format.
//
// The output can be converted to an image with the dot tool:
//
//	dot -Tsvg board.dot > board.svg
package reflection

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/jetsetilly/gopher8bit/hardware"
	"github.com/jetsetilly/gopher8bit/logger"

	"github.com/bradleyjkemp/memviz"
)

// UnknownComponent is returned when a component name is not recognised.
const UnknownComponent = "reflection: unknown component (%s)"

// components returns the named components of the board
func components(brd *hardware.Board) map[string]any {
	return map[string]any{
		"CPU":      brd.CPU,
		"GTIA":     brd.GTIA,
		"PIA":      brd.PIA,
		"DMA":      brd.DMA,
		"IRQ":      brd.IRQ,
		"PSG":      brd.PSG,
		"MEM":      brd.Mem,
		"JOYSTICK": brd.Joystick,
		"CASSETTE": brd.Cassette,
		"SERIAL":   brd.Serial,
	}
}

// Components returns the names that can be used with Dump().
func Components(brd *hardware.Board) []string {
	var names []string
	for n := range components(brd) {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Dump writes a graph of the named components. Names are not case
// sensitive. If no names are given then every component except the memory is
// included. The memory is only included on request because of the size of
// the RAM array.
func Dump(w io.Writer, brd *hardware.Board, names ...string) error {
	comps := components(brd)

	if len(names) == 0 {
		for _, n := range Components(brd) {
			if n != "MEM" {
				names = append(names, n)
			}
		}
	}

	var values []any
	for _, n := range names {
		c, ok := comps[strings.ToUpper(n)]
		if !ok {
			return curated.Errorf(UnknownComponent, n)
		}
		values = append(values, c)
	}

	memviz.Map(w, values...)

	return nil
}

// DumpFile is the same as Dump() but writes to the named file.
func DumpFile(path string, brd *hardware.Board, names ...string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("reflection: %w", err)
	}
	defer f.Close()

	err = Dump(f, brd, names...)
	if err != nil {
		return err
	}

	logger.Logf(brd, "reflection", "written to %s", path)
	return nil
}
