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

package irq_test

import (
	"testing"

	"github.com/jetsetilly/gopher8bit/hardware/irq"
	"github.com/jetsetilly/gopher8bit/test"
)

type line struct {
	level   bool
	changes int
}

func (l *line) SetINT(level bool) {
	l.level = level
	l.changes++
}

func TestController(t *testing.T) {
	var l line
	c := irq.NewController(&l)

	c.Set(irq.PIA, true)
	test.ExpectSuccess(t, l.level)
	test.ExpectEquality(t, l.changes, 1)

	// the line is already asserted
	c.Set(irq.LineDMA, true)
	test.ExpectEquality(t, l.changes, 1)
	test.ExpectEquality(t, c.String(), "IRQ: PIA LineDMA")

	c.Set(irq.PIA, false)
	test.ExpectSuccess(t, l.level)
	test.ExpectSuccess(t, c.Asserted(irq.LineDMA))
	test.ExpectFailure(t, c.Asserted(irq.PIA))

	c.Set(irq.LineDMA, false)
	test.ExpectFailure(t, l.level)
	test.ExpectEquality(t, l.changes, 2)
	test.ExpectEquality(t, c.String(), "IRQ: none")

	c.Set(irq.PIA, true)
	c.Reset()
	test.ExpectFailure(t, c.Level())
	test.ExpectEquality(t, l.changes, 4)
}
