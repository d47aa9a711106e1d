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

// CollisionStrategy decides when the collisions drawn into the scanline
// buffer become visible in the collision registers.
type CollisionStrategy interface {
	// Update is called before a collision register is read
	Update(g *GTIA)

	// HitClear is called after the collision registers have been cleared
	HitClear(g *GTIA)

	// Redraw is called after a player or missile graphics register has been
	// written during the scanline
	Redraw(g *GTIA)

	// EndScanline is called once the CPU has finished with the scanline
	EndScanline(g *GTIA)

	String() string
}

// Simple resolves collisions at the end of the scanline. Collisions recorded
// while the players and missiles were drawn are added to the collision
// registers by UpdateCollisions().
type Simple struct{}

func (Simple) String() string {
	return "simple"
}

// Update implements the CollisionStrategy interface.
func (Simple) Update(g *GTIA) {
}

// HitClear implements the CollisionStrategy interface. The player and
// missile collisions recorded for the scanline have been cleared so the
// playfield collisions for the scanline are not recorded either.
func (Simple) HitClear(g *GTIA) {
	g.lineCleared = g.drawing
}

// Redraw implements the CollisionStrategy interface. Graphics changes take
// effect on the next scanline.
func (Simple) Redraw(g *GTIA) {
}

// EndScanline implements the CollisionStrategy interface.
func (Simple) EndScanline(g *GTIA) {
	g.UpdateCollisions()
	if !g.lineCleared {
		g.playfieldCollisions(0, BufferSize-1)
	}
	g.lineCleared = false
}

// CycleExact resolves collisions up to the position of the beam whenever a
// collision register is read.
type CycleExact struct{}

func (CycleExact) String() string {
	return "cycle exact"
}

// Update implements the CollisionStrategy interface.
func (CycleExact) Update(g *GTIA) {
	b := g.beamIndex()
	if b < g.cursor {
		return
	}
	g.UpdatePartial(g.cursor, b)
	g.cursor = b + 1
}

// HitClear implements the CollisionStrategy interface. Collisions to the left
// of the beam are not recorded.
func (CycleExact) HitClear(g *GTIA) {
	g.cursor = max(0, g.beamIndex())
}

// Redraw implements the CollisionStrategy interface. Collisions up to the
// beam are resolved with the objects as they were before the write and the
// scanline buffer is redrawn from the beam onwards.
func (c CycleExact) Redraw(g *GTIA) {
	c.Update(g)
	g.redraw(g.cursor)
}

// EndScanline implements the CollisionStrategy interface.
func (CycleExact) EndScanline(g *GTIA) {
	g.UpdatePartial(g.cursor, BufferSize-1)
	g.cursor = 0
}

// EndScanline resolves any outstanding collisions for the scanline. It should
// be called once the CPU has finished executing for the scanline.
func (g *GTIA) EndScanline() {
	g.strategy.EndScanline(g)
	g.drawing = false
}

// UpdateCollisions adds the collisions recorded by NewScanline() to the
// collision registers.
func (g *GTIA) UpdateCollisions() {
	for n := range 4 {
		g.players[n] |= g.playersT[n]
		g.missiles[n] |= g.missilesT[n]
	}
}

// UpdatePartial adds collisions from the scanline buffer to the collision
// registers. Both left and right are inclusive and are clamped to the bounds
// of the buffer.
func (g *GTIA) UpdatePartial(left int, right int) {
	left = max(left, 0)
	right = min(right, BufferSize-1)

	for i := left; i <= right; i++ {
		v := g.buffer[i]
		if v == 0 {
			continue
		}

		// player 0 collisions are composed from the other players
		for n := 1; n < 4; n++ {
			if v&(0x01<<n) != 0 {
				g.players[n] |= v
			}
		}
		for n := range 4 {
			if v&(0x10<<n) != 0 {
				g.missiles[n] |= v
			}
		}
	}

	g.playfieldCollisions(left, right)
}

// collisions with the playfield. left and right are inclusive and must be
// within the bounds of the buffer.
func (g *GTIA) playfieldCollisions(left int, right int) {
	for i := left; i <= right; i++ {
		if pf := g.playfield[i]; pf != 0 {
			g.pfCollisions[pf-1] |= g.buffer[i]
		}
	}
}

func (g *GTIA) clearCollisions() {
	g.players = [4]uint8{}
	g.missiles = [4]uint8{}
	g.pfCollisions = [4]uint8{}
	g.playersT = [4]uint8{}
	g.missilesT = [4]uint8{}
}

// the collision classes that can be masked by the preferences.
const (
	maskMissilePlayer = iota
	maskPlayerPlayer
	maskMissilePlayfield
	maskPlayerPlayfield
)

func (g *GTIA) mask(class int) uint8 {
	if g.instance == nil {
		return 0x0f
	}
	live := &g.instance.Prefs.GTIA.Live
	switch class {
	case maskMissilePlayer:
		return uint8(live.MaskMissilePlayer.Load())
	case maskPlayerPlayer:
		return uint8(live.MaskPlayerPlayer.Load())
	case maskMissilePlayfield:
		return uint8(live.MaskMissilePlayfield.Load())
	}
	return uint8(live.MaskPlayerPlayfield.Load())
}

// playfieldComposite builds the value of a PnPF or MnPF register. bit n of
// the result is set if the object collided with playfield colour n.
func (g *GTIA) playfieldComposite(bit uint8) uint8 {
	var v uint8
	for n := range 4 {
		if g.pfCollisions[n]&bit != 0 {
			v |= 0x01 << n
		}
	}
	return v
}

// playerComposite builds the value of a PnPL register. a player's collision
// register records the players drawn before it. collisions with players drawn
// after it are taken from the other players' registers.
func (g *GTIA) playerComposite(n uint8) uint8 {
	switch n {
	case 0:
		return (g.players[1]&0x01)<<1 | (g.players[2]&0x01)<<2 | (g.players[3]&0x01)<<3
	case 1:
		return g.players[1]&0x01 | (g.players[2]&0x02)<<1 | (g.players[3]&0x02)<<2
	case 2:
		return g.players[2]&0x03 | (g.players[3]&0x04)<<1
	}
	return g.players[3] & 0x07
}
