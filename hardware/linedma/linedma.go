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

package linedma

import (
	"fmt"

	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/jetsetilly/gopher8bit/hardware/gtia"
	"github.com/jetsetilly/gopher8bit/hardware/instance"
	"github.com/jetsetilly/gopher8bit/hardware/irq"
	"github.com/jetsetilly/gopher8bit/hardware/television/specification"
	"github.com/jetsetilly/gopher8bit/logger"
)

// DisplayListZero is returned by StartScanline() when display list DMA is
// enabled and the display list address is zero.
const DisplayListZero = "linedma: display list address is zero"

// Memory is read by the controller without side effects.
type Memory interface {
	Peek(address uint16) uint8
}

// GTIA is the graphics chip loaded by the controller.
type GTIA interface {
	Write(reg uint8, v uint8)
	GRACTL() uint8
	VDELAY() uint8
	GRAFM() uint8
	Playfield() []uint8
}

// CPU receives the interrupts raised by the controller. The CPU yields the
// rest of the scanline when WSYNC is written to.
type CPU interface {
	TriggerNMI()
	Yield()
}

// IRQ is the interrupt controller.
type IRQ interface {
	Set(src irq.Source, asserted bool)
}

// LineDMA is the display DMA controller.
type LineDMA struct {
	instance *instance.Instance

	mem  Memory
	gtia GTIA
	cpu  CPU
	irq  IRQ

	dmactl uint8
	chactl uint8
	dlist  uint16
	pmbase uint8
	nmien  uint8
	nmist  uint8

	scanline int

	// the display list program counter and the current instruction
	pc    uint16
	instr uint8

	// scanlines remaining for the current instruction, including the current
	// scanline
	lines int

	memScan uint16

	// a JVB instruction has been reached. the display is blank until the top
	// of the next frame
	waitVB bool

	// the current scanline is the last line of an instruction with the DLI
	// bit set
	dli bool

	// the VBI IRQ is being asserted
	vbiIRQ bool
}

// NewLineDMA is the preferred method of initialisation for the LineDMA type.
// The instance, cpu and irq arguments can be nil.
func NewLineDMA(instance *instance.Instance, mem Memory, gtia GTIA, cpu CPU, irq IRQ) *LineDMA {
	d := &LineDMA{
		instance: instance,
		mem:      mem,
		gtia:     gtia,
		cpu:      cpu,
		irq:      irq,
	}
	d.Reset()
	return d
}

// Plumb the CPU into the controller.
func (d *LineDMA) Plumb(cpu CPU) {
	d.cpu = cpu
}

// Reset the controller. The VBI is enabled if the preferences require it.
func (d *LineDMA) Reset() {
	d.dmactl = 0
	d.chactl = 0
	d.dlist = 0
	d.pmbase = 0
	d.nmien = 0
	d.nmist = 0
	d.scanline = 0
	d.pc = 0
	d.instr = 0
	d.lines = 0
	d.memScan = 0
	d.waitVB = false
	d.dli = false
	d.setVBIIRQ(false)

	if d.instance != nil && d.instance.Prefs.VBlankNMI.Get().(bool) {
		d.nmien = NmiVBI
	}
}

// AllowLogging implements the logger.Permission interface.
func (d *LineDMA) AllowLogging() bool {
	return d.instance == nil || d.instance.AllowLogging()
}

func (d *LineDMA) String() string {
	return fmt.Sprintf("DMACTL=%02x DLIST=%04x PMBASE=%02x NMIEN=%02x NMIST=%02x DLPC=%04x MEMSCAN=%04x",
		d.dmactl, d.dlist, d.pmbase, d.nmien, d.nmist, d.pc, d.memScan)
}

// NMISource returns true if the controller can raise an NMI.
func (d *LineDMA) NMISource() bool {
	return d.nmien&(NmiDLI|NmiVBI) != 0
}

// Scanline returns the scanline most recently started.
func (d *LineDMA) Scanline() int {
	return d.scanline
}

func (d *LineDMA) setVBIIRQ(asserted bool) {
	d.vbiIRQ = asserted
	if d.irq != nil {
		d.irq.Set(irq.LineDMA, asserted)
	}
}

// Write a value to the register at the offset.
func (d *LineDMA) Write(reg uint8, v uint8) {
	switch reg % NumRegisters {
	case DMACTL:
		d.dmactl = v & 0x3f
	case CHACTL:
		d.chactl = v & 0x07
	case DLISTL:
		d.dlist = d.dlist&0xff00 | uint16(v)
	case DLISTH:
		d.dlist = d.dlist&0x00ff | uint16(v)<<8
	case PMBASE:
		d.pmbase = v
	case WSYNC:
		if d.cpu != nil {
			d.cpu.Yield()
		}
	case NMIEN:
		d.nmien = v & (NmiDLI | NmiVBI | NmienVIRQ)
		if d.nmien&NmienVIRQ == 0 && d.vbiIRQ {
			d.setVBIIRQ(false)
		}
	case NMIRES:
		d.nmist = 0
		if d.vbiIRQ {
			d.setVBIIRQ(false)
		}
	}
}

// Read the register at the offset. Reading has no side effects.
func (d *LineDMA) Read(reg uint8) uint8 {
	return d.Peek(reg)
}

// Peek returns the value of the register at the offset.
func (d *LineDMA) Peek(reg uint8) uint8 {
	switch reg % NumRegisters {
	case VCOUNT:
		return uint8(d.scanline >> 1)
	case NMIST:
		return d.nmist | 0x1f
	}
	return 0xff
}

// StartScanline prepares the GTIA for the scanline. It must be called before
// the GTIA's NewScanline() function.
func (d *LineDMA) StartScanline(scanline int) error {
	d.scanline = scanline
	d.dli = false

	if scanline == specification.ScanlineBottom {
		d.verticalBlank()
	}

	if scanline == specification.ScanlineTop {
		d.waitVB = false
		d.lines = 0
		if d.dmactl&DmactlDisplayList == DmactlDisplayList {
			if d.dlist == 0 {
				logger.Log(d, "linedma", "display list address is zero")
				return curated.Errorf(DisplayListZero)
			}
			d.pc = d.dlist
		}
	}

	visible := scanline >= specification.ScanlineTop && scanline < specification.ScanlineBottom

	if visible {
		d.loadPlayerMissiles(scanline)
	}

	pf := d.gtia.Playfield()[gtia.VisibleLeft : gtia.VisibleLeft+gtia.VisibleWidth]

	if !visible || d.waitVB || d.dmactl&DmactlDisplayList == 0 {
		clear(pf)
		return nil
	}

	if d.lines == 0 {
		d.fetch()
	}

	mode := d.instr & 0x0f
	if d.dmactl&DmactlPlayfieldWidth == 0 || mode < 0x02 {
		clear(pf)
	} else {
		d.render(mode, pf)
	}

	d.lines--
	if d.lines == 0 {
		d.dli = d.instr&0x80 == 0x80
		if mode >= 0x02 {
			d.advanceMemScan(bytesPerLine[mode])
		}
	}

	return nil
}

// EndScanline raises the display list interrupt if the scanline was the last
// line of an instruction with the DLI bit set.
func (d *LineDMA) EndScanline() {
	if !d.dli {
		return
	}
	d.dli = false
	d.nmist = d.nmist&^NmiVBI | NmiDLI
	if d.nmien&NmiDLI == NmiDLI && d.cpu != nil {
		d.cpu.TriggerNMI()
	}
}

func (d *LineDMA) verticalBlank() {
	d.nmist = d.nmist&^NmiDLI | NmiVBI
	if d.nmien&NmiVBI == NmiVBI && d.cpu != nil {
		d.cpu.TriggerNMI()
	}
	if d.nmien&NmienVIRQ == NmienVIRQ {
		d.setVBIIRQ(true)
	}
}
