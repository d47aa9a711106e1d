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

package gtia

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8bit/hardware/instance"
	"github.com/jetsetilly/gopher8bit/logger"
)

// Beam reports the position of the television beam.
type Beam interface {
	// the horizontal position of the beam, measured in colour clocks from the
	// start of the scanline
	ColourClock() int
}

// The first colour clock and the number of colour clocks in the visible
// portion of a scanline. Measured as an index into the scanline buffer.
const (
	VisibleLeft  = 0x10
	VisibleWidth = 160
)

// GTIA represents the player/missile graphics, collision and composition
// parts of the GTIA chip.
type GTIA struct {
	instance *instance.Instance
	beam     Beam

	// the last value written to each register
	regs [NumRegisters]uint8

	// derived from the HPOSPn, SIZEPn and SIZEM registers
	hpospMask    [4]uint32
	grafp        [4]*[256]uint32
	missileWidth [4]int

	buffer    [BufferSize]uint8
	playfield [BufferSize]uint8

	// something was drawn into the buffer during the most recent call to
	// NewScanline()
	dirty bool

	// collision registers. players[0] is not used because the player 0
	// collisions are composed from the other player registers when read
	players  [4]uint8
	missiles [4]uint8

	// collisions between the players and missiles and each of the four
	// playfield colours. bits 0 to 3 are players and bits 4 to 7 are missiles
	pfCollisions [4]uint8

	// collisions recorded during NewScanline()
	playersT  [4]uint8
	missilesT [4]uint8

	strategy CollisionStrategy

	// the first entry in the scanline buffer that the CycleExact strategy
	// has not yet processed
	cursor int

	// the scanline has been drawn by NewScanline() but EndScanline() has not
	// yet been called
	drawing bool

	// HITCLR was written during the scanline in the Simple strategy
	lineCleared bool

	pal bool

	// triggers (fire buttons) and console keys. pressed is true
	trigger      [4]bool
	triggerLatch [4]bool
	consoleKeys  uint8
}

// NewGTIA is the preferred method of initialisation for the GTIA type. The
// instance argument can be nil.
func NewGTIA(instance *instance.Instance, beam Beam) *GTIA {
	g := &GTIA{
		instance: instance,
		beam:     beam,
	}
	g.Reset()
	return g
}

// Reset the GTIA to its power on state.
func (g *GTIA) Reset() {
	g.drawing = false
	for i := range g.regs {
		if i == HITCLR {
			continue
		}
		g.Write(uint8(i), 0)
	}
	g.clearCollisions()
	clear(g.buffer[:])
	clear(g.playfield[:])
	g.dirty = false
	g.cursor = 0
	g.triggerLatch = [4]bool{}

	g.pal = false
	if g.instance != nil {
		g.pal = strings.ToUpper(g.instance.Prefs.Spec.Get().(string)) == "PAL"
	}

	g.Reconfigure()
}

// Reconfigure selects the collision strategy from the preferences.
func (g *GTIA) Reconfigure() {
	var strategy CollisionStrategy = CycleExact{}
	if g.instance != nil && !g.instance.Prefs.GTIA.CycleExact.Get().(bool) {
		strategy = Simple{}
	}
	g.SetStrategy(strategy)
}

// SetStrategy sets the collision strategy. Collision state is not lost but
// collisions for the remainder of the current scanline may be missed.
func (g *GTIA) SetStrategy(strategy CollisionStrategy) {
	if g.strategy == strategy {
		return
	}
	if g.strategy != nil {
		logger.Logf(g, "gtia", "collision strategy changed to %s", strategy)
	}
	g.strategy = strategy
	g.cursor = 0
}

// Strategy returns the current collision strategy.
func (g *GTIA) Strategy() CollisionStrategy {
	return g.strategy
}

// AllowLogging implements the logger.Permission interface.
func (g *GTIA) AllowLogging() bool {
	return g.instance == nil || g.instance.AllowLogging()
}

func (g *GTIA) String() string {
	s := strings.Builder{}
	for n := range 4 {
		fmt.Fprintf(&s, "P%d: hpos=%02x size=%02x graf=%02x col=%02x  ", n,
			g.regs[HPOSP0+n], g.regs[SIZEP0+n], g.regs[GRAFP0+n], g.regs[COLPM0+n])
		fmt.Fprintf(&s, "M%d: hpos=%02x width=%d\n", n, g.regs[HPOSM0+n], g.missileWidth[n])
	}
	fmt.Fprintf(&s, "GRAFM=%02x PRIOR=%02x GRACTL=%02x strategy=%s", g.regs[GRAFM], g.regs[PRIOR], g.regs[GRACTL], g.strategy)
	return s.String()
}

// the index into the scanline buffer of the beam. the result may be outside
// the bounds of the buffer.
func (g *GTIA) beamIndex() int {
	if g.beam == nil {
		return BufferSize - 1
	}
	return g.beam.ColourClock() - hposOrigin
}

// Write a value to the register at the offset. In the CycleExact strategy a
// write to a player or missile graphics register during the scanline affects
// the remainder of the scanline.
func (g *GTIA) Write(reg uint8, v uint8) {
	reg %= NumRegisters
	g.regs[reg] = v

	switch reg {
	case HPOSP0, HPOSP1, HPOSP2, HPOSP3:
		g.hpospMask[reg-HPOSP0] = hpospMask(v)
	case SIZEP0, SIZEP1, SIZEP2, SIZEP3:
		g.grafp[reg-SIZEP0] = &grafpLookup[v&0x03]
	case SIZEM:
		for n := range 4 {
			g.missileWidth[n] = missileWidths[(v>>(2*n))&0x03]
		}
	case HPOSM0, HPOSM1, HPOSM2, HPOSM3, GRAFP0, GRAFP1, GRAFP2, GRAFP3, GRAFM:
	case GRACTL:
		if v&GractlLatchTrigger == 0 {
			g.triggerLatch = [4]bool{}
		}
		return
	case HITCLR:
		g.clearCollisions()
		g.strategy.HitClear(g)
		return
	default:
		return
	}

	if g.drawing {
		g.strategy.Redraw(g)
	}
}

// Read the register at the offset. Reading a collision register in the
// CycleExact strategy resolves collisions up to the beam position.
func (g *GTIA) Read(reg uint8) uint8 {
	reg %= NumRegisters
	if reg <= P3PL {
		g.strategy.Update(g)
	}
	return g.Peek(reg)
}

// Peek returns the value of the register at the offset without side
// effects.
func (g *GTIA) Peek(reg uint8) uint8 {
	reg %= NumRegisters

	switch {
	case reg <= M3PF:
		return g.playfieldComposite(0x10<<reg) & g.mask(maskMissilePlayfield)
	case reg <= P3PF:
		return g.playfieldComposite(0x01<<(reg-P0PF)) & g.mask(maskPlayerPlayfield)
	case reg <= M3PL:
		return g.missiles[reg-M0PL] & 0x0f & g.mask(maskMissilePlayer)
	case reg <= P3PL:
		return g.playerComposite(reg-P0PL) & g.mask(maskPlayerPlayer)
	case reg <= TRIG3:
		n := reg - TRIG0
		if g.trigger[n] || g.triggerLatch[n] {
			return 0x00
		}
		return 0x01
	case reg == PAL:
		if g.pal {
			return 0x01
		}
		return 0x0f
	case reg == CONSOL:
		return 0x0f &^ (g.consoleKeys | g.regs[CONSOL]&0x07)
	}

	return 0x0f
}

// SetTrigger sets the state of the trigger input. A pressed trigger is
// latched if GRACTL bit 2 is set.
func (g *GTIA) SetTrigger(n int, pressed bool) {
	g.trigger[n] = pressed
	if pressed && g.regs[GRACTL]&GractlLatchTrigger == GractlLatchTrigger {
		g.triggerLatch[n] = true
	}
}

// Console key bits as used by SetConsoleKeys().
const (
	ConsoleStart  = 0x01
	ConsoleSelect = 0x02
	ConsoleOption = 0x04
)

// SetConsoleKeys sets which of the console keys are pressed.
func (g *GTIA) SetConsoleKeys(keys uint8) {
	g.consoleKeys = keys & 0x07
}

// GRACTL returns the value of the GRACTL register. Used by the display DMA to
// decide whether to load the graphics registers.
func (g *GTIA) GRACTL() uint8 {
	return g.regs[GRACTL]
}

// VDELAY returns the value of the VDELAY register.
func (g *GTIA) VDELAY() uint8 {
	return g.regs[VDELAY]
}

// GRAFM returns the value of the GRAFM register. The display DMA keeps the
// bits of vertically delayed missiles.
func (g *GTIA) GRAFM() uint8 {
	return g.regs[GRAFM]
}

// Composite writes the colour register value of every visible colour clock in
// the current scanline to dst. The priority of players and playfield is
// decided by the PRIOR register.
func (g *GTIA) Composite(dst []uint8) {
	prior := g.regs[PRIOR]

	for i := range min(len(dst), VisibleWidth) {
		idx := VisibleLeft + i
		pm := g.buffer[idx]
		pf := g.playfield[idx]

		col := g.regs[COLBK]
		if pf != 0 {
			col = g.regs[COLPF0+pf-1]
		}

		if pm != 0 && (pf == 0 || prior&priorPlayfieldFirst == 0) {
			if p := pm & 0x0f; p != 0 {
				col = g.regs[COLPM0+lowestBit(p)]
			} else if prior&priorFifthPlayer == priorFifthPlayer {
				col = g.regs[COLPF3]
			} else {
				col = g.regs[COLPM0+lowestBit(pm>>4)]
			}
		}

		dst[i] = col
	}
}

// lowestBit returns the number of the lowest set bit in a non-zero value.
func lowestBit(v uint8) uint8 {
	var n uint8
	for v&0x01 == 0 {
		v >>= 1
		n++
	}
	return n
}
