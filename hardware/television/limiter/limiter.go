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

// Package limiter caps the number of frames generated per second and measures
// the actual rate.
package limiter

import (
	"sync/atomic"
	"time"
)

// Display is implemented by front-ends that know the refresh rate of the
// monitor. The second return value is true if a frame rate close to the
// refresh rate should be quantised to the refresh rate.
type Display interface {
	DisplayRefreshRate() (float32, bool)
}

// MatchRefreshRate can be used with SetLimit() to limit the frame rate to the
// refresh rate of the television specification.
const MatchRefreshRate float32 = -1.0

// Limiter is used to wait for the start of the next frame.
type Limiter struct {
	// whether to wait each frame
	Active atomic.Bool

	// the refresh rate of the television specification
	refreshRate atomic.Value // float32

	// the frame rate being aimed for, including quantisation
	IdealFPS atomic.Value // float32

	// the value sent to SetLimit()
	requestedFPS atomic.Value // float32

	// the ticker is slower than the frame rate for high frame rates. the
	// counter decides which frames wait for the ticker
	pulse        *time.Ticker
	pulseCt      int
	pulseCtLimit int

	// frames counted since the last measurement
	measuringPulse *time.Ticker
	measureTime    time.Time
	measureCt      int

	// the measured number of frames per second
	Measured atomic.Value // float32

	// the number of frames that will not wait for the ticker
	Nudge atomic.Int32

	display Display
}

// NewLimiter is preferred method of initialising a new instance of the Limiter
// type. The limit is set to match the refresh rate.
func NewLimiter(refreshRate float32) *Limiter {
	lmtr := &Limiter{}
	lmtr.Active.Store(true)
	lmtr.Measured.Store(float32(0.0))
	lmtr.pulse = time.NewTicker(time.Millisecond * 16)
	lmtr.measuringPulse = time.NewTicker(time.Millisecond * 1000)
	lmtr.refreshRate.Store(refreshRate)
	lmtr.SetLimit(MatchRefreshRate)
	return lmtr
}

// SetDisplay sets the display used to quantise the frame rate.
func (lmtr *Limiter) SetDisplay(display Display) {
	lmtr.display = display
	lmtr.SetLimit(lmtr.requestedFPS.Load().(float32))
}

// SetRefreshRate changes the refresh rate of the television. The limit is
// recalculated if it was set to match the refresh rate.
func (lmtr *Limiter) SetRefreshRate(refreshRate float32) {
	lmtr.refreshRate.Store(refreshRate)
	if lmtr.requestedFPS.Load().(float32) <= 0.0 {
		lmtr.SetLimit(MatchRefreshRate)
	}
}

// SetLimit sets the number of frames per second. Use a value of
// MatchRefreshRate to match the television refresh rate.
func (lmtr *Limiter) SetLimit(fps float32) {
	lmtr.requestedFPS.Store(fps)

	if fps <= 0.0 {
		fps = lmtr.refreshRate.Load().(float32)
	}
	if fps <= 0.0 {
		return
	}

	if lmtr.display != nil {
		hz, quantise := lmtr.display.DisplayRefreshRate()
		if quantise && fps >= hz*0.96 && fps <= hz*1.04 {
			fps = hz
		}
	}

	lmtr.IdealFPS.Store(fps)

	lmtr.pulseCt = 0
	lmtr.pulseCtLimit = 1 + int(fps/20)
	lmtr.pulse.Reset(time.Duration(1000000000 / fps * float32(lmtr.pulseCtLimit)))

	lmtr.measureCt = 0
	lmtr.measureTime = time.Now()
}

// CheckFrame should be called every frame. It waits for the frame rate to
// catch up with the ideal frame rate.
func (lmtr *Limiter) CheckFrame() {
	lmtr.measureCt++

	if nudge := lmtr.Nudge.Load(); nudge > 0 {
		lmtr.Nudge.Store(nudge - 1)
		return
	}

	if lmtr.Active.Load() {
		lmtr.pulseCt++
		if lmtr.pulseCt >= lmtr.pulseCtLimit {
			lmtr.pulseCt = 0
			<-lmtr.pulse.C
		}
	}
}

// MeasureActual updates the Measured field once per second.
func (lmtr *Limiter) MeasureActual() {
	select {
	case <-lmtr.measuringPulse.C:
		t := time.Now()
		m := float32(lmtr.measureCt) / float32(t.Sub(lmtr.measureTime).Seconds())
		lmtr.Measured.Store(m)
		lmtr.measureTime = t
		lmtr.measureCt = 0
	default:
	}
}
