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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8bit/hardware"
)

// the maximum amount of time to run the board before measuring starts
const maxLeadTime = 2 * time.Second

// Check the performance of the board. The board is run for a short lead time
// before the measurement begins. The result is written to output.
func Check(output io.Writer, profile Profile, brd *hardware.Board, duration time.Duration) error {
	brd.TV.Limiter.Active.Store(false)

	leadTime := min(maxLeadTime, duration/4)

	err := runFor(brd, leadTime)
	if err != nil {
		return err
	}

	var numFrames int
	var elapsed time.Duration

	err = RunProfiler(profile, "performance", func() error {
		startFrame := brd.TV.FrameNum()
		startTime := time.Now()

		err := runFor(brd, duration)
		if err != nil {
			return err
		}

		elapsed = time.Since(startTime)
		numFrames = brd.TV.FrameNum() - startFrame
		return nil
	})
	if err != nil {
		return err
	}

	fps, accuracy := CalcFPS(brd.Spec(), numFrames, elapsed)
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, elapsed.Seconds(), accuracy)

	return nil
}

// runFor runs the board until the duration has elapsed. the check is made at
// the end of every frame.
func runFor(brd *hardware.Board, duration time.Duration) error {
	timesUp := time.After(duration)
	return brd.Run(func() (bool, error) {
		select {
		case <-timesUp:
			return false, nil
		default:
		}
		return true, nil
	})
}
