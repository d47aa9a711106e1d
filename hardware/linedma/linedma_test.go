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

package linedma_test

import (
	"testing"

	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/jetsetilly/gopher8bit/hardware/gtia"
	"github.com/jetsetilly/gopher8bit/hardware/instance"
	"github.com/jetsetilly/gopher8bit/hardware/irq"
	"github.com/jetsetilly/gopher8bit/hardware/linedma"
	"github.com/jetsetilly/gopher8bit/hardware/state"
	"github.com/jetsetilly/gopher8bit/test"
)

type memory [0x10000]uint8

func (m *memory) Peek(address uint16) uint8 {
	return m[address]
}

type graphics struct {
	regs      [gtia.NumRegisters]uint8
	playfield [gtia.BufferSize]uint8
}

func (g *graphics) Write(reg uint8, v uint8) {
	g.regs[reg] = v
}

func (g *graphics) GRACTL() uint8 {
	return g.regs[gtia.GRACTL]
}

func (g *graphics) VDELAY() uint8 {
	return g.regs[gtia.VDELAY]
}

func (g *graphics) GRAFM() uint8 {
	return g.regs[gtia.GRAFM]
}

func (g *graphics) Playfield() []uint8 {
	return g.playfield[:]
}

// pixel returns the playfield value of the visible colour clock.
func (g *graphics) pixel(x int) uint8 {
	return g.playfield[gtia.VisibleLeft+x]
}

type cpu struct {
	nmis   int
	yields int
}

func (c *cpu) TriggerNMI() {
	c.nmis++
}

func (c *cpu) Yield() {
	c.yields++
}

type interrupt struct {
	asserted bool
}

func (i *interrupt) Set(src irq.Source, asserted bool) {
	if src == irq.LineDMA {
		i.asserted = asserted
	}
}

func setup() (*linedma.LineDMA, *memory, *graphics, *cpu, *interrupt) {
	var mem memory
	var g graphics
	var c cpu
	var i interrupt
	return linedma.NewLineDMA(nil, &mem, &g, &c, &i), &mem, &g, &c, &i
}

func setDisplayList(d *linedma.LineDMA, address uint16) {
	d.Write(linedma.DLISTL, uint8(address))
	d.Write(linedma.DLISTH, uint8(address>>8))
}

func TestDisplayListZero(t *testing.T) {
	d, _, _, _, _ := setup()
	d.Write(linedma.DMACTL, linedma.DmactlDisplayList|0x02)

	test.ExpectSuccess(t, d.StartScanline(7))
	err := d.StartScanline(8)
	test.ExpectSuccess(t, curated.Is(err, linedma.DisplayListZero))

	// no error when display list DMA is disabled
	d.Write(linedma.DMACTL, 0x02)
	test.ExpectSuccess(t, d.StartScanline(8))
}

func TestMapModes(t *testing.T) {
	d, mem, g, c, _ := setup()

	copy(mem[0x1000:], []uint8{
		0x70,             // 8 blank lines
		0x4d, 0x00, 0x20, // mode d with LMS
		0x0e,             // mode e
		0x8b,             // mode b with DLI
		0x41, 0x00, 0x10, // JVB
	})
	mem[0x2000] = 0x1b
	mem[0x2028] = 0xc0
	mem[0x2050] = 0x80

	setDisplayList(d, 0x1000)
	d.Write(linedma.DMACTL, linedma.DmactlDisplayList|0x02)
	d.Write(linedma.NMIEN, linedma.NmiDLI)

	run := func(sl int) {
		t.Helper()
		g.playfield = [gtia.BufferSize]uint8{}
		test.DemandSuccess(t, d.StartScanline(sl))
		d.EndScanline()
	}

	for sl := 8; sl < 16; sl++ {
		run(sl)
		test.ExpectEquality(t, g.pixel(1), 0, sl)
	}

	for sl := 16; sl < 18; sl++ {
		run(sl)
		test.ExpectEquality(t, g.pixel(0), 0, sl)
		test.ExpectEquality(t, g.pixel(1), 1, sl)
		test.ExpectEquality(t, g.pixel(2), 2, sl)
		test.ExpectEquality(t, g.pixel(3), 3, sl)
		test.ExpectEquality(t, g.pixel(4), 0, sl)
	}

	run(18)
	test.ExpectEquality(t, g.pixel(0), 3)
	test.ExpectEquality(t, g.pixel(1), 0)

	run(19)
	test.ExpectEquality(t, g.pixel(0), 1)
	test.ExpectEquality(t, g.pixel(1), 0)
	test.ExpectEquality(t, c.nmis, 0)

	// the DLI happens at the end of the last line of the instruction
	run(20)
	test.ExpectEquality(t, g.pixel(0), 1)
	test.ExpectEquality(t, c.nmis, 1)
	test.ExpectEquality(t, d.Peek(linedma.NMIST), 0x9f)

	// the JVB leaves the rest of the frame blank
	mem[0x1000] = 0x0e
	for sl := 21; sl < 30; sl++ {
		run(sl)
		test.ExpectEquality(t, g.pixel(0), 0, sl)
	}
	test.ExpectEquality(t, c.nmis, 1)
}

func TestMemScanWrap(t *testing.T) {
	d, mem, g, _, _ := setup()

	copy(mem[0x1000:], []uint8{0x4e, 0xf0, 0x2f, 0x0e})
	mem[0x2000] = 0xc0
	mem[0x2018] = 0x40

	setDisplayList(d, 0x1000)
	d.Write(linedma.DMACTL, linedma.DmactlDisplayList|0x02)

	test.DemandSuccess(t, d.StartScanline(8))
	test.ExpectEquality(t, g.pixel(64), 3)

	// the second row starts 40 bytes later, wrapped within the 4k block
	test.DemandSuccess(t, d.StartScanline(9))
	test.ExpectEquality(t, g.pixel(0), 1)
}

func TestVerticalBlank(t *testing.T) {
	d, _, _, c, i := setup()

	// the VBI is not enabled without an instance
	test.ExpectFailure(t, d.NMISource())

	d.Write(linedma.NMIEN, linedma.NmiVBI|linedma.NmienVIRQ)
	test.ExpectSuccess(t, d.NMISource())

	test.DemandSuccess(t, d.StartScanline(247))
	test.ExpectEquality(t, c.nmis, 0)
	test.DemandSuccess(t, d.StartScanline(248))
	test.ExpectEquality(t, c.nmis, 1)
	test.ExpectSuccess(t, i.asserted)
	test.ExpectEquality(t, d.Peek(linedma.NMIST), 0x5f)

	d.Write(linedma.NMIRES, 0x00)
	test.ExpectFailure(t, i.asserted)
	test.ExpectEquality(t, d.Peek(linedma.NMIST), 0x1f)
}

func TestVBlankPreference(t *testing.T) {
	ins, err := instance.NewInstance(instance.Test, nil)
	test.DemandSuccess(t, err)
	ins.Normalise()

	var mem memory
	var g graphics
	d := linedma.NewLineDMA(ins, &mem, &g, nil, nil)
	test.ExpectSuccess(t, d.NMISource())

	test.DemandSuccess(t, ins.Prefs.VBlankNMI.Set(false))
	d.Reset()
	test.ExpectFailure(t, d.NMISource())
}

func TestWSYNC(t *testing.T) {
	d, _, _, c, _ := setup()
	d.Write(linedma.WSYNC, 0x00)
	d.Write(linedma.WSYNC+linedma.NumRegisters, 0x00)
	test.ExpectEquality(t, c.yields, 2)
}

func TestVCOUNT(t *testing.T) {
	d, _, _, _, _ := setup()
	test.DemandSuccess(t, d.StartScanline(101))
	test.ExpectEquality(t, d.Peek(linedma.VCOUNT), 50)
	test.ExpectEquality(t, d.Read(linedma.VCOUNT), 50)
	test.ExpectEquality(t, d.Scanline(), 101)
}

func TestPlayerMissileDMA(t *testing.T) {
	d, mem, g, _, _ := setup()
	g.regs[gtia.GRACTL] = gtia.GractlMissiles | gtia.GractlPlayers

	// double line resolution
	d.Write(linedma.PMBASE, 0x31)
	d.Write(linedma.DMACTL, linedma.DmactlPlayers|linedma.DmactlMissiles)
	mem[0x3000+0x180+10] = 0x0f
	mem[0x3000+0x200+10] = 0xaa
	mem[0x3000+0x280+10] = 0x55
	mem[0x3000+0x380+10] = 0xff

	test.DemandSuccess(t, d.StartScanline(20))
	test.ExpectEquality(t, g.regs[gtia.GRAFM], 0x0f)
	test.ExpectEquality(t, g.regs[gtia.GRAFP0], 0xaa)
	test.ExpectEquality(t, g.regs[gtia.GRAFP1], 0x55)
	test.ExpectEquality(t, g.regs[gtia.GRAFP3], 0xff)

	// single line resolution
	d.Write(linedma.DMACTL, linedma.DmactlPlayers|linedma.DmactlMissiles|linedma.DmactlSingleLine)
	mem[0x3000+0x300+20] = 0x30
	mem[0x3000+0x400+20] = 0x11
	mem[0x3000+0x700+20] = 0x22

	test.DemandSuccess(t, d.StartScanline(20))
	test.ExpectEquality(t, g.regs[gtia.GRAFM], 0x30)
	test.ExpectEquality(t, g.regs[gtia.GRAFP0], 0x11)
	test.ExpectEquality(t, g.regs[gtia.GRAFP3], 0x22)

	// players are not loaded unless GRACTL allows it
	g.regs[gtia.GRACTL] = gtia.GractlMissiles
	mem[0x3000+0x400+21] = 0x99
	test.DemandSuccess(t, d.StartScanline(21))
	test.ExpectEquality(t, g.regs[gtia.GRAFP0], 0x11)
}

func TestVerticalDelay(t *testing.T) {
	d, mem, g, _, _ := setup()
	g.regs[gtia.GRACTL] = gtia.GractlMissiles | gtia.GractlPlayers

	// player 0 and missile 0 are delayed
	g.regs[gtia.VDELAY] = 0x11

	d.Write(linedma.PMBASE, 0x30)
	d.Write(linedma.DMACTL, linedma.DmactlPlayers|linedma.DmactlMissiles)
	mem[0x3000+0x180+10] = 0xff
	mem[0x3000+0x200+10] = 0xaa
	mem[0x3000+0x280+10] = 0x55

	test.DemandSuccess(t, d.StartScanline(20))
	test.ExpectEquality(t, g.regs[gtia.GRAFP0], 0x00)
	test.ExpectEquality(t, g.regs[gtia.GRAFP1], 0x55)
	test.ExpectEquality(t, g.regs[gtia.GRAFM], 0xfc)

	test.DemandSuccess(t, d.StartScanline(21))
	test.ExpectEquality(t, g.regs[gtia.GRAFP0], 0xaa)
	test.ExpectEquality(t, g.regs[gtia.GRAFM], 0xff)
}

func TestState(t *testing.T) {
	d, mem, _, _, _ := setup()
	copy(mem[0x1000:], []uint8{0x4d, 0x00, 0x20})
	setDisplayList(d, 0x1000)
	d.Write(linedma.DMACTL, linedma.DmactlDisplayList|0x02)
	d.Write(linedma.NMIEN, linedma.NmiVBI|linedma.NmienVIRQ)
	test.DemandSuccess(t, d.StartScanline(8))

	s := state.NewSaver()
	d.StateSave(s)

	e, _, _, _, i := setup()
	l := state.NewLoader(s.Bytes(), state.CurrentVersion)
	e.StateLoad(l)
	test.DemandSuccess(t, l.Err())
	test.ExpectEquality(t, e.String(), d.String())
	test.ExpectFailure(t, i.asserted)
	test.ExpectEquality(t, e.Scanline(), 8)
}
