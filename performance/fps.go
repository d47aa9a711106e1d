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
	"time"

	"github.com/jetsetilly/gopher8bit/hardware/television/specification"
)

// CalcFPS takes the number of frames and the duration and returns the frames
// per second and the accuracy of that value as a percentage of the
// specification's frame rate.
func CalcFPS(spec *specification.Spec, numFrames int, duration time.Duration) (fps float64, accuracy float64) {
	secs := duration.Seconds()
	if secs <= 0 {
		return 0, 0
	}
	fps = float64(numFrames) / secs
	accuracy = 100 * fps / float64(spec.FramesPerSecond)
	return fps, accuracy
}
