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

package limiter_test

import (
	"testing"

	"github.com/jetsetilly/gopher8bit/hardware/television/limiter"
	"github.com/jetsetilly/gopher8bit/test"
)

type display struct{}

func (display) DisplayRefreshRate() (float32, bool) {
	return 60.0, true
}

func TestQuantise(t *testing.T) {
	lmtr := limiter.NewLimiter(59.92)
	test.ExpectEquality(t, lmtr.IdealFPS.Load().(float32), 59.92)

	lmtr.SetDisplay(display{})
	test.ExpectEquality(t, lmtr.IdealFPS.Load().(float32), 60.0)

	lmtr.SetRefreshRate(49.86)
	test.ExpectEquality(t, lmtr.IdealFPS.Load().(float32), 49.86)

	lmtr.SetLimit(30)
	test.ExpectEquality(t, lmtr.IdealFPS.Load().(float32), 30.0)

	// the limit is not changed by the refresh rate when it has been set
	// explicitly
	lmtr.SetRefreshRate(59.92)
	test.ExpectEquality(t, lmtr.IdealFPS.Load().(float32), 30.0)
}

func TestNudge(t *testing.T) {
	lmtr := limiter.NewLimiter(1.0)
	lmtr.Nudge.Store(3)

	// nudged frames do not wait
	for range 3 {
		lmtr.CheckFrame()
	}
	test.ExpectEquality(t, lmtr.Nudge.Load(), 0)
}

func TestInactive(t *testing.T) {
	lmtr := limiter.NewLimiter(1.0)
	lmtr.Active.Store(false)

	// an inactive limiter does not wait
	for range 100 {
		lmtr.CheckFrame()
	}
}
