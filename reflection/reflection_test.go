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

package reflection_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/jetsetilly/gopher8bit/hardware"
	"github.com/jetsetilly/gopher8bit/hardware/instance"
	"github.com/jetsetilly/gopher8bit/hardware/television"
	"github.com/jetsetilly/gopher8bit/reflection"
	"github.com/jetsetilly/gopher8bit/test"
)

func newBoard(t *testing.T) *hardware.Board {
	t.Helper()
	ins, err := instance.NewInstance(instance.Test, nil)
	test.DemandSuccess(t, err)
	ins.Normalise()
	tv, err := television.NewTelevision("NTSC")
	test.DemandSuccess(t, err)
	brd, err := hardware.NewBoard(ins, tv)
	test.DemandSuccess(t, err)
	return brd
}

func TestComponents(t *testing.T) {
	brd := newBoard(t)
	names := reflection.Components(brd)
	test.ExpectEquality(t, strings.Join(names, ","), "CASSETTE,CPU,DMA,GTIA,IRQ,JOYSTICK,MEM,PIA,PSG,SERIAL")
}

func TestDump(t *testing.T) {
	brd := newBoard(t)

	var s strings.Builder
	test.ExpectSuccess(t, reflection.Dump(&s, brd, "pia", "irq"))
	test.ExpectSuccess(t, strings.Contains(s.String(), "digraph"))

	// the end of a complete dump
	ring, err := test.NewRingWriter(64)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, reflection.Dump(ring, brd))
	test.ExpectSuccess(t, strings.HasSuffix(strings.TrimSpace(ring.String()), "}"))

	err = reflection.Dump(&s, brd, "vic")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, reflection.UnknownComponent))
}

func TestDumpFile(t *testing.T) {
	brd := newBoard(t)
	test.ExpectSuccess(t, reflection.DumpFile(filepath.Join(t.TempDir(), "board.dot"), brd, "joystick"))
	test.ExpectFailure(t, reflection.DumpFile(filepath.Join(t.TempDir(), "missing", "board.dot"), brd))
}
