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

// RunFrame runs the board until the end of the current frame. If the board
// is at the start of a frame then a complete frame is run.
func (brd *Board) RunFrame() error {
	for {
		if err := brd.StepScanline(); err != nil {
			return err
		}
		if brd.scanline == 0 {
			return nil
		}
	}
}

// Run sets the emulation running frame by frame. The continueCheck()
// function is called at the end of every frame and should return false when
// the emulation should stop.
func (brd *Board) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		if err := brd.RunFrame(); err != nil {
			return err
		}

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}

// RunForFrameCount sets the board running for the specified number of
// frames. Useful for headless operation and for tests. The continueCheck()
// function can be nil.
func (brd *Board) RunForFrameCount(numFrames int, continueCheck func(frame int) (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (bool, error) { return true, nil }
	}

	targetFrame := brd.TV.FrameNum() + numFrames

	for brd.TV.FrameNum() < targetFrame {
		if err := brd.RunFrame(); err != nil {
			return err
		}

		cont, err := continueCheck(brd.TV.FrameNum())
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}

	return nil
}
