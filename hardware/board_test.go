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

package hardware_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/jetsetilly/gopher8bit/hardware"
	"github.com/jetsetilly/gopher8bit/hardware/gtia"
	"github.com/jetsetilly/gopher8bit/hardware/instance"
	"github.com/jetsetilly/gopher8bit/hardware/memory"
	"github.com/jetsetilly/gopher8bit/hardware/peripherals"
	"github.com/jetsetilly/gopher8bit/hardware/television"
	"github.com/jetsetilly/gopher8bit/test"
)

// a cartridge with the program at address zero and a RETN at the NMI vector.
func program(t *testing.T, code ...uint8) *memory.Cartridge {
	t.Helper()
	data := make([]uint8, 0x100)
	copy(data, code)
	data[0x66] = 0xed
	data[0x67] = 0x45
	cart, err := memory.NewCartridge(data)
	test.DemandSuccess(t, err)
	return cart
}

func newBoard(t *testing.T, ins *instance.Instance, cart *memory.Cartridge) *hardware.Board {
	t.Helper()
	tv, err := television.NewTelevision("NTSC")
	test.DemandSuccess(t, err)
	brd, err := hardware.NewBoard(ins, tv)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, brd.AttachCartridge(cart))
	return brd
}

// players 0 and 1 at the same position. the P1PL collision register is copied
// to 8000 continuously.
var collisionProgram = []uint8{
	0x3e, 0x80, // LD A,80
	0x32, 0x00, 0xd0, // LD (HPOSP0),A
	0x32, 0x01, 0xd0, // LD (HPOSP1),A
	0x3e, 0xff, // LD A,FF
	0x32, 0x0d, 0xd0, // LD (GRAFP0),A
	0x32, 0x0e, 0xd0, // LD (GRAFP1),A
	0x3e, 0x0f, // LD A,0F
	0x32, 0x12, 0xd0, // LD (COLPM0),A
	0x3a, 0x0d, 0xd0, // loop: LD A,(P1PL)
	0x32, 0x00, 0x80, // LD (8000),A
	0x18, 0xf8, // JR loop
}

func TestCollisionProgram(t *testing.T) {
	brd := newBoard(t, nil, program(t, collisionProgram...))

	test.DemandSuccess(t, brd.RunFrame())
	test.ExpectEquality(t, brd.TV.FrameNum(), 1)

	// the overlapping players are in the scanline buffer
	idx := 0x80 - 0x20
	test.ExpectEquality(t, brd.GTIA.Scanline()[idx], uint8(0x03))

	// the program has seen the collision
	test.ExpectEquality(t, brd.Mem.Peek(0x8000), uint8(0x01))
	test.ExpectEquality(t, brd.GTIA.Peek(gtia.P0PL), uint8(0x02))

	// the player is drawn in the framebuffer with the COLPM0 colour
	x := (idx - gtia.VisibleLeft) * 2
	test.ExpectEquality(t, brd.TV.Frame().RGBAAt(x, 0), brd.Spec().Colours[0x0f])
	test.ExpectEquality(t, brd.TV.Frame().RGBAAt(0, 0), brd.Spec().Colours[0x00])

	// remove player 1 and clear the collisions
	brd.Mem.Write(0xd00e, 0x00)
	brd.Mem.Write(0xd01e, 0x00)
	test.ExpectEquality(t, brd.GTIA.Peek(gtia.P0PL), uint8(0x00))
	test.ExpectEquality(t, brd.GTIA.Peek(gtia.P1PL), uint8(0x00))

	test.DemandSuccess(t, brd.RunFrame())
	test.ExpectEquality(t, brd.Mem.Peek(0x8000), uint8(0x00))
	test.ExpectEquality(t, brd.GTIA.Scanline()[idx], uint8(0x01))
}

// HL counts the number of times WSYNC has been written to.
var wsyncProgram = []uint8{
	0x21, 0x00, 0x00, // LD HL,0
	0x32, 0x0a, 0xd4, // loop: LD (WSYNC),A
	0x23,       // INC HL
	0x18, 0xfa, // JR loop
}

func TestWSYNC(t *testing.T) {
	brd := newBoard(t, nil, program(t, wsyncProgram...))
	test.DemandSuccess(t, brd.RunFrame())
	test.ExpectEquality(t, brd.CPU.HL(), uint16(261))
	test.DemandSuccess(t, brd.RunFrame())
	test.ExpectEquality(t, brd.CPU.HL(), uint16(523))
}

func TestRunForFrameCount(t *testing.T) {
	brd := newBoard(t, nil, program(t, wsyncProgram...))

	test.DemandSuccess(t, brd.RunForFrameCount(3, nil))
	test.ExpectEquality(t, brd.TV.FrameNum(), 3)

	var frames []int
	err := brd.RunForFrameCount(10, func(frame int) (bool, error) {
		frames = append(frames, frame)
		return frame < 5, nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(frames), 2)
	test.ExpectEquality(t, brd.TV.FrameNum(), 5)
}

func TestCrash(t *testing.T) {
	ins, err := instance.NewInstance(instance.Test, nil)
	test.DemandSuccess(t, err)
	ins.Normalise()

	// the VBI NMI is disabled before the HALT
	brd := newBoard(t, ins, program(t,
		0xf3,       // DI
		0x3e, 0x00, // LD A,0
		0x32, 0x0e, 0xd4, // LD (NMIEN),A
		0x76, // HALT
	))

	err = brd.RunFrame()
	test.ExpectSuccess(t, curated.Is(err, hardware.CPUCrash))

	// with the VBI NMI enabled the HALT is not a crash
	brd = newBoard(t, ins, program(t,
		0xf3, // DI
		0x76, // HALT
	))
	test.ExpectSuccess(t, brd.RunFrame())
}

func TestDisplayListZero(t *testing.T) {
	brd := newBoard(t, nil, program(t,
		0x3e, 0x20, // LD A,20
		0x32, 0x00, 0xd4, // LD (DMACTL),A
		0x18, 0xfe, // JR $
	))
	err := brd.RunFrame()
	test.ExpectSuccess(t, curated.Is(err, hardware.DisplayListZero))
}

func TestJoystick(t *testing.T) {
	brd := newBoard(t, nil, program(t,
		0x3a, 0x00, 0xd3, // loop: LD A,(PORTA)
		0x32, 0x01, 0x80, // LD (8001),A
		0xdb, 0xdc, // IN A,(DC)
		0x32, 0x02, 0x80, // LD (8002),A
		0x18, 0xf3, // JR loop
	))

	test.DemandSuccess(t, brd.RunFrame())
	test.ExpectEquality(t, brd.Mem.Peek(0x8001), uint8(0xff))

	test.DemandSuccess(t, brd.Joystick.HandleEvent(peripherals.Up))
	test.DemandSuccess(t, brd.RunFrame())
	test.ExpectEquality(t, brd.Mem.Peek(0x8001), uint8(0xfe))
	test.ExpectEquality(t, brd.Mem.Peek(0x8002), uint8(0xfe))
}

func TestState(t *testing.T) {
	brd := newBoard(t, nil, program(t, collisionProgram...))
	test.DemandSuccess(t, brd.RunFrame())

	var buf bytes.Buffer
	test.DemandSuccess(t, brd.Save(&buf))

	pc := brd.CPU.PC
	cycles := brd.CPU.Cycles()

	// change the state of the board
	brd.Mem.Write(0xd01e, 0x00)
	brd.Mem.Poke(0x8000, 0x55)
	test.DemandSuccess(t, brd.RunFrame())
	test.ExpectInequality(t, brd.CPU.Cycles(), cycles)

	test.DemandSuccess(t, brd.Load(&buf))
	test.ExpectEquality(t, brd.CPU.PC, pc)
	test.ExpectEquality(t, brd.CPU.Cycles(), cycles)
	test.ExpectEquality(t, brd.Mem.Peek(0x8000), uint8(0x01))
	test.ExpectEquality(t, brd.GTIA.Peek(gtia.P0PL), uint8(0x02))

	// a damaged state file is rejected
	test.ExpectFailure(t, brd.Load(bytes.NewReader([]byte("G8BS"))))
}

func TestRewind(t *testing.T) {
	brd := newBoard(t, nil, program(t, wsyncProgram...))
	rw := hardware.NewRewind(brd, 2)

	test.ExpectFailure(t, rw.Back(0))

	for range 3 {
		test.DemandSuccess(t, brd.RunFrame())
		rw.RecordFrame()
	}
	test.ExpectEquality(t, rw.Len(), 2)
	test.ExpectEquality(t, brd.CPU.HL(), uint16(785))

	// the oldest snapshot is two frames ago
	test.DemandSuccess(t, rw.Back(5))
	test.ExpectEquality(t, brd.CPU.HL(), uint16(523))
	test.ExpectEquality(t, rw.Len(), 1)

	test.DemandSuccess(t, brd.RunFrame())
	test.ExpectEquality(t, brd.CPU.HL(), uint16(785))
}
