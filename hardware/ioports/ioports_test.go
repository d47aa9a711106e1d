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

package ioports_test

import (
	"testing"

	"github.com/jetsetilly/gopher8bit/hardware/ioports"
	"github.com/jetsetilly/gopher8bit/hardware/pia"
	"github.com/jetsetilly/gopher8bit/test"
)

type beam struct {
	scanline    int
	colourClock int
}

func (b *beam) Scanline() int {
	return b.scanline
}

func (b *beam) ColourClock() int {
	return b.colourClock
}

type psg struct {
	written []uint8
}

func (p *psg) Write(v uint8) {
	p.written = append(p.written, v)
}

func TestPorts(t *testing.T) {
	b := &beam{scanline: 0x123, colourClock: 0x91}
	s := &psg{}
	a := pia.NewPIA(nil, nil)
	a.SetInput(pia.PortA, 0xff, 0xfe)

	p := ioports.NewPorts(b, s, a)
	test.ExpectEquality(t, p.In(ioports.VCounter), 0x23)
	test.ExpectEquality(t, p.In(ioports.HCounter), 0x48)
	test.ExpectEquality(t, p.In(ioports.PIAPortA), 0xfe)
	test.ExpectEquality(t, p.In(ioports.PIAPortB), 0xff)
	test.ExpectEquality(t, p.In(0x00), 0xff)

	p.Out(ioports.PSGLo, 0x9f)
	p.Out(ioports.PSGHi, 0xbf)
	p.Out(0x00, 0x01)
	test.ExpectEquality(t, len(s.written), 2)
	test.ExpectEquality(t, s.written[1], 0xbf)
}

func TestUnconnected(t *testing.T) {
	p := ioports.NewPorts(nil, nil, nil)
	test.ExpectEquality(t, p.In(ioports.VCounter), 0xff)
	test.ExpectEquality(t, p.In(ioports.PIAPortA), 0xff)
	p.Out(ioports.PSGLo, 0x00)
	test.ExpectEquality(t, p.String(), "ports: no beam")
}
