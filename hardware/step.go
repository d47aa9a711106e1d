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
	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/jetsetilly/gopher8bit/hardware/cpu/z80"
	"github.com/jetsetilly/gopher8bit/hardware/linedma"
	"github.com/jetsetilly/gopher8bit/hardware/television/specification"
	"github.com/jetsetilly/gopher8bit/logger"
)

// Error patterns returned by the board.
const (
	CPUCrash        = "hardware: cpu crash: %v"
	DisplayListZero = "hardware: display list: %v"
	BoardError      = "hardware: %v"
)

// execute the CPU for the scanline budget. a crash inside the CPU is
// returned as an error.
func (brd *Board) execute(budget int) (consumed int, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		crash := z80.AsCrash(r)
		if crash == nil {
			panic(r)
		}
		logger.Logf(brd, "board", "crash: %v", crash)
		err = curated.Errorf(CPUCrash, crash)
	}()
	return brd.CPU.Execute(budget), nil
}

// StepScanline runs the board for a single scanline. The end of the frame is
// handled when the last scanline of the frame has been run.
//
// The order of operation for each scanline is:
//
//   - the line DMA prepares the playfield and the player/missile registers
//   - the GTIA draws the players and missiles into the scanline buffer
//   - the CPU executes for the remainder of the scanline
//   - the GTIA resolves the collisions for the scanline
//   - the scanline is composited and sent to the television
//   - the sound chip and the cassette are advanced by the scanline's cycles
func (brd *Board) StepScanline() error {
	sl := brd.scanline

	if err := brd.DMA.StartScanline(sl); err != nil {
		if curated.Is(err, linedma.DisplayListZero) {
			return curated.Errorf(DisplayListZero, err)
		}
		return curated.Errorf(BoardError, err)
	}

	brd.GTIA.NewScanline()

	// cycles carried over from the previous scanline are part of this
	// scanline
	brd.lineStart = brd.CPU.Cycles() - uint64(brd.overrun)
	budget := specification.CyclesPerScanline - brd.overrun

	consumed, err := brd.execute(budget)
	if err != nil {
		return err
	}

	// a write to WSYNC ends the scanline
	if brd.CPU.Yielded() {
		brd.overrun = 0
	} else {
		brd.overrun = max(0, consumed-budget)
	}

	brd.GTIA.EndScanline()
	brd.GTIA.Composite(brd.composite[:])
	if err := brd.TV.Scanline(sl, brd.composite[:]); err != nil {
		return curated.Errorf(BoardError, err)
	}

	brd.DMA.EndScanline()
	brd.PSG.Generate(specification.CyclesPerScanline)
	brd.Cassette.Step(specification.CyclesPerScanline)

	brd.scanline++
	if brd.scanline < brd.spec.ScanlinesTotal {
		return nil
	}
	brd.scanline = 0

	return brd.endFrame()
}

// send the sound generated during the frame to the television and complete
// the frame.
func (brd *Board) endFrame() error {
	if err := brd.TV.SetAudio(brd.PSG.Samples()); err != nil {
		return curated.Errorf(BoardError, err)
	}
	brd.PSG.Flush()
	if err := brd.TV.EndFrame(); err != nil {
		return curated.Errorf(BoardError, err)
	}
	return nil
}
