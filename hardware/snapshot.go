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

package hardware

import (
	"io"

	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/jetsetilly/gopher8bit/hardware/state"
	"github.com/jetsetilly/gopher8bit/logger"
)

// StateSave adds every component of the board to the Saver. The cartridge
// data and the television are not part of the state.
func (brd *Board) StateSave(s *state.Saver) {
	s.Tag("board")
	s.SaveInt(brd.scanline, brd.overrun)
	brd.Mem.StateSave(s)
	brd.PIA.StateSave(s)
	brd.GTIA.StateSave(s)
	brd.DMA.StateSave(s)
	brd.PSG.StateSave(s)

	// the CPU is saved last so that the level of the INT line is restored
	// after the chips have driven the interrupt controller
	brd.CPU.StateSave(s)
}

// StateLoad restores every component of the board from the Loader. The
// board should be considered unusable if an error is returned.
func (brd *Board) StateLoad(l *state.Loader) error {
	l.Tag("board")
	l.LoadInt(&brd.scanline, &brd.overrun)
	brd.Mem.StateLoad(l)
	brd.PIA.StateLoad(l)
	brd.GTIA.StateLoad(l)
	brd.DMA.StateLoad(l)
	brd.PSG.StateLoad(l)
	brd.CPU.StateLoad(l)

	if err := l.Err(); err != nil {
		return curated.Errorf(BoardError, err)
	}

	if brd.scanline < 0 || brd.scanline >= brd.spec.ScanlinesTotal {
		return curated.Errorf(BoardError, "scanline out of range in state")
	}

	logger.Logf(brd, "board", "state loaded (version %d)", l.Version())
	return nil
}

// Save writes the state of the board, with the file header, to the
// io.Writer.
func (brd *Board) Save(w io.Writer) error {
	s := state.NewSaver()
	brd.StateSave(s)
	_, err := s.WriteTo(w)
	return err
}

// Load restores the state of the board from a state file.
func (brd *Board) Load(r io.Reader) error {
	l, err := state.ReadFrom(r)
	if err != nil {
		return err
	}
	return brd.StateLoad(l)
}

// Snapshot returns the state of the board without the file header. The
// snapshot can be restored with Plumb().
func (brd *Board) Snapshot() []byte {
	s := state.NewSaver()
	brd.StateSave(s)
	return s.Bytes()
}

// Plumb restores a snapshot created by Snapshot().
func (brd *Board) Plumb(snapshot []byte) error {
	return brd.StateLoad(state.NewLoader(snapshot, state.CurrentVersion))
}
