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

import (
	"fmt"

	"github.com/jetsetilly/gopher8bit/hardware/cpu/z80"
	"github.com/jetsetilly/gopher8bit/hardware/gtia"
	"github.com/jetsetilly/gopher8bit/hardware/instance"
	"github.com/jetsetilly/gopher8bit/hardware/ioports"
	"github.com/jetsetilly/gopher8bit/hardware/irq"
	"github.com/jetsetilly/gopher8bit/hardware/linedma"
	"github.com/jetsetilly/gopher8bit/hardware/memory"
	"github.com/jetsetilly/gopher8bit/hardware/peripherals"
	"github.com/jetsetilly/gopher8bit/hardware/peripherals/cassette"
	"github.com/jetsetilly/gopher8bit/hardware/peripherals/serial"
	"github.com/jetsetilly/gopher8bit/hardware/pia"
	"github.com/jetsetilly/gopher8bit/hardware/psg"
	"github.com/jetsetilly/gopher8bit/hardware/television"
	"github.com/jetsetilly/gopher8bit/hardware/television/specification"
	"github.com/jetsetilly/gopher8bit/logger"
)

// Board is the main container for the emulated components of the machine.
type Board struct {
	Instance *instance.Instance

	// the television is not part of the board but is attached to it
	TV *television.Television

	CPU   *z80.CPU
	Mem   *memory.Memory
	GTIA  *gtia.GTIA
	PIA   *pia.PIA
	DMA   *linedma.LineDMA
	IRQ   *irq.Controller
	Ports *ioports.Ports
	PSG   *psg.PSG

	Joystick *peripherals.Joystick
	Cassette *cassette.Cassette
	Serial   *serial.Serial

	spec *specification.Spec

	// the scanline being executed and the value of CPU.Cycles() at the
	// start of the scanline
	scanline  int
	lineStart uint64

	// cycles executed beyond the end of the previous scanline
	overrun int

	// colour register values for the visible part of the scanline
	composite [specification.VisibleColourClocks]uint8
}

// the CPU sees memory and the I/O ports on separate buses.
type bus struct {
	mem   *memory.Memory
	ports *ioports.Ports
}

func (b *bus) Read(address uint16) uint8 {
	return b.mem.Read(address)
}

func (b *bus) Write(address uint16, data uint8) {
	b.mem.Write(address, data)
}

func (b *bus) In(port uint8) uint8 {
	return b.ports.In(port)
}

func (b *bus) Out(port uint8, data uint8) {
	b.ports.Out(port, data)
}

// NewBoard creates a new Board and everything associated with the hardware.
// The television specification is taken from the instance preferences.
func NewBoard(instance *instance.Instance, tv *television.Television) (*Board, error) {
	if instance != nil {
		if err := tv.SetSpec(instance.Prefs.Spec.Get().(string)); err != nil {
			return nil, err
		}
	}

	brd := &Board{
		Instance: instance,
		TV:       tv,
		spec:     tv.GetSpec(),
	}

	brd.Mem = memory.NewMemory(instance)
	brd.CPU = z80.NewCPU(instance, nil)
	brd.IRQ = irq.NewController(brd.CPU)
	brd.PIA = pia.NewPIA(instance, brd.IRQ)
	brd.GTIA = gtia.NewGTIA(instance, brd)
	brd.DMA = linedma.NewLineDMA(instance, brd.Mem, brd.GTIA, brd.CPU, brd.IRQ)
	brd.PSG = psg.NewPSG(brd.spec.ClockHz, brd.spec.FramesPerSecond)
	brd.Ports = ioports.NewPorts(brd, brd.PSG, brd.PIA)

	brd.Mem.Plumb(brd.GTIA, brd.PIA, brd.DMA, brd.PIA)
	brd.CPU.Plumb(&bus{mem: brd.Mem, ports: brd.Ports})
	brd.CPU.SetNMISource(brd.DMA.NMISource)

	brd.Joystick = peripherals.NewJoystick(brd.PIA, brd.GTIA)
	brd.Cassette = cassette.NewCassette(instance, brd.PIA, brd.spec.ClockHz)
	brd.Serial = serial.NewSerial(instance)
	brd.PIA.Attach(pia.PortA, brd.Cassette)
	brd.PIA.Attach(pia.PortB, brd.Serial)

	brd.Reset()

	return brd, nil
}

// AllowLogging implements the logger.Permission interface.
func (brd *Board) AllowLogging() bool {
	return brd.Instance == nil || brd.Instance.AllowLogging()
}

func (brd *Board) String() string {
	return fmt.Sprintf("%s SL=%d CC=%d", brd.spec.ID, brd.scanline, brd.ColourClock())
}

// Spec returns the television specification the board was created with.
func (brd *Board) Spec() *specification.Spec {
	return brd.spec
}

// AttachCartridge inserts the cartridge into the board and resets. A nil
// cartridge removes any existing cartridge.
func (brd *Board) AttachCartridge(cart *memory.Cartridge) error {
	if cart == nil {
		var err error
		cart, err = memory.NewCartridge(nil)
		if err != nil {
			return err
		}
	}
	brd.Mem.Attach(cart)
	brd.Reset()
	return nil
}

// Reset every component of the board to its power on state. The cartridge
// and the cassette stay inserted.
func (brd *Board) Reset() {
	brd.Mem.Reset()
	brd.IRQ.Reset()
	brd.PIA.Reset()
	brd.GTIA.Reset()
	brd.DMA.Reset()
	brd.PSG.Reset()
	brd.CPU.Reset()
	brd.Joystick.Reset()
	brd.Cassette.Rewind()
	brd.Serial.Reset()
	brd.TV.Reset()

	brd.scanline = 0
	brd.lineStart = 0
	brd.overrun = 0

	logger.Logf(brd, "board", "reset (%s)", brd.spec.ID)
}

// Scanline implements the ioports.Beam interface.
func (brd *Board) Scanline() int {
	return brd.scanline
}

// ColourClock implements the gtia.Beam and ioports.Beam interfaces. The CPU
// and the beam advance at the same rate.
func (brd *Board) ColourClock() int {
	cc := int(brd.CPU.Cycles() - brd.lineStart)
	return min(cc, specification.ColourClocksPerScanline-1)
}
