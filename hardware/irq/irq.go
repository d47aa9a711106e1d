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

// Package irq combines the interrupt request outputs of the chips in the
// board onto the single INT line of the CPU.
package irq

import (
	"fmt"
	"strings"
)

// Line is the input to which the combined interrupt request is connected.
// Implemented by the CPU.
type Line interface {
	SetINT(level bool)
}

// Source identifies a chip that can request an interrupt.
type Source int

// List of valid Source values.
const (
	PIA Source = iota
	LineDMA
	numSources
)

func (src Source) String() string {
	switch src {
	case PIA:
		return "PIA"
	case LineDMA:
		return "LineDMA"
	}
	return fmt.Sprintf("source %d", int(src))
}

// Controller is a wired-OR of the interrupt request outputs.
type Controller struct {
	line     Line
	asserted [numSources]bool
	level    bool
}

// NewController is the preferred method of initialisation for the Controller
// type. The line argument can be nil.
func NewController(line Line) *Controller {
	return &Controller{line: line}
}

// Plumb a new Line into the controller. The current level is forwarded to the
// new line.
func (c *Controller) Plumb(line Line) {
	c.line = line
	if c.line != nil {
		c.line.SetINT(c.level)
	}
}

// Reset deasserts all sources.
func (c *Controller) Reset() {
	c.asserted = [numSources]bool{}
	c.update()
}

// Set the state of the interrupt request from the source. The line is only
// updated if the combined level has changed.
func (c *Controller) Set(src Source, asserted bool) {
	c.asserted[src] = asserted
	c.update()
}

func (c *Controller) update() {
	level := false
	for _, a := range c.asserted {
		level = level || a
	}
	if level == c.level {
		return
	}
	c.level = level
	if c.line != nil {
		c.line.SetINT(level)
	}
}

// Level returns the combined level of all sources.
func (c *Controller) Level() bool {
	return c.level
}

// Asserted returns true if the source is requesting an interrupt.
func (c *Controller) Asserted(src Source) bool {
	return c.asserted[src]
}

func (c *Controller) String() string {
	var s []string
	for src, a := range c.asserted {
		if a {
			s = append(s, Source(src).String())
		}
	}
	if len(s) == 0 {
		return "IRQ: none"
	}
	return fmt.Sprintf("IRQ: %s", strings.Join(s, " "))
}
