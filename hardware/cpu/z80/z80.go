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

package z80

import (
	"fmt"

	"github.com/jetsetilly/gopher8bit/hardware/instance"
	"github.com/jetsetilly/gopher8bit/logger"
)

// CPU implements the Z80.
type CPU struct {
	instance *instance.Instance
	bus      Bus

	A, F, B, C, D, E, H, L uint8

	// the alternative register set
	AF2, BC2, DE2, HL2 uint16

	IX, IY uint16
	SP, PC uint16
	I, R   uint8

	IFF1 bool
	IFF2 bool
	IM   uint8

	// the CPU is executing a HALT instruction
	Halted bool

	// the state of the INT line
	intLine bool

	// an NMI edge has been seen and not yet accepted
	nmiPending bool

	// interrupts are not accepted immediately after an EI instruction
	eiDefer bool

	// effective address for DDCB and FDCB instructions
	indexAddress uint16

	// supplies the data bus value during an interrupt acknowledge
	vector func() uint8

	// returns true if an NMI can be raised by the board. used to decide
	// whether a HALT with interrupts disabled is a crash
	nmiSource func() bool

	// cycle budget for the current call to Execute(). the budget is reduced
	// before the instruction handler is called
	budget      int
	budgetStart int

	// total number of cycles consumed before the current call to Execute()
	cycles uint64

	// execution will stop at the end of the current instruction
	yield bool
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// instance argument can be nil.
func NewCPU(instance *instance.Instance, bus Bus) *CPU {
	mc := &CPU{
		instance: instance,
		bus:      bus,
	}
	mc.Reset()
	return mc
}

// Plumb a new Bus into the CPU.
func (mc *CPU) Plumb(bus Bus) {
	mc.bus = bus
}

// Reset the CPU to its power on state.
func (mc *CPU) Reset() {
	mc.A, mc.F = 0, FlagZ
	mc.B, mc.C, mc.D, mc.E, mc.H, mc.L = 0, 0, 0, 0, 0, 0
	mc.AF2, mc.BC2, mc.DE2, mc.HL2 = 0, 0, 0, 0
	mc.IX = 0xffff
	mc.IY = 0xffff
	mc.SP = 0xf000
	mc.PC = 0
	mc.I = 0
	mc.R = 0
	mc.IFF1 = false
	mc.IFF2 = false
	mc.IM = 0
	mc.Halted = false
	mc.intLine = false
	mc.nmiPending = false
	mc.eiDefer = false
	mc.budget = 0
	mc.budgetStart = 0
	mc.cycles = 0
	mc.yield = false
}

// SetVectorCallback sets the function that supplies the value on the data
// bus during an interrupt acknowledge. In interrupt mode 0 the function is
// called once for each byte of the instruction being executed.
func (mc *CPU) SetVectorCallback(f func() uint8) {
	mc.vector = f
}

// SetNMISource sets the function that reports whether the board can raise an
// NMI.
func (mc *CPU) SetNMISource(f func() bool) {
	mc.nmiSource = f
}

// SetINT sets the level of the INT line. The interrupt will be accepted at
// the start of the next instruction if IFF1 is set.
func (mc *CPU) SetINT(level bool) {
	mc.intLine = level
}

// INT returns the level of the INT line.
func (mc *CPU) INT() bool {
	return mc.intLine
}

// TriggerNMI signals a falling edge on the NMI line. The NMI will be accepted
// at the start of the next instruction.
func (mc *CPU) TriggerNMI() {
	mc.nmiPending = true
}

// Yield stops execution at the end of the current instruction. The remaining
// budget is not consumed.
func (mc *CPU) Yield() {
	mc.yield = true
}

// Yielded returns true if the most recent call to Execute() ended because of
// a call to Yield().
func (mc *CPU) Yielded() bool {
	return mc.yield
}

// Cycles returns the total number of cycles consumed since reset. The value is
// valid during a call to Execute() and includes the static cost of the
// current instruction.
func (mc *CPU) Cycles() uint64 {
	return mc.cycles + uint64(mc.budgetStart-mc.budget)
}

// Execute instructions until the cycle budget is used up. Returns the number
// of cycles consumed, which may be more than the budget.
func (mc *CPU) Execute(budget int) int {
	mc.budget = budget
	mc.budgetStart = budget
	mc.yield = false

	for mc.budget > 0 && !mc.yield {
		mc.step()
	}

	consumed := mc.budgetStart - mc.budget
	mc.cycles += uint64(consumed)
	mc.budget = 0
	mc.budgetStart = 0

	return consumed
}

// Step executes a single instruction, or accepts a single interrupt. Returns
// the number of cycles consumed.
func (mc *CPU) Step() int {
	return mc.Execute(1)
}

func (mc *CPU) step() {
	if mc.nmiPending {
		mc.acceptNMI()
		return
	}

	if mc.eiDefer {
		mc.eiDefer = false
	} else if mc.intLine && mc.IFF1 {
		mc.acceptINT()
		return
	}

	defn := baseTable[mc.fetchOpcode()]
	mc.budget -= defn.Cycles
	defn.execute(mc)
}

// incR increments the lower seven bits of the R register. bit 7 is unchanged.
func (mc *CPU) incR() {
	mc.R = (mc.R & 0x80) | ((mc.R + 1) & 0x7f)
}

// decR is used when a fetched opcode is abandoned and will be fetched again.
func (mc *CPU) decR() {
	mc.R = (mc.R & 0x80) | ((mc.R - 1) & 0x7f)
}

// fetchOpcode reads the byte at PC as an M1 cycle.
func (mc *CPU) fetchOpcode() uint8 {
	mc.incR()
	return mc.fetch()
}

func (mc *CPU) fetch() uint8 {
	v := mc.bus.Read(mc.PC)
	mc.PC++
	return v
}

func (mc *CPU) fetchWord() uint16 {
	lo := mc.fetch()
	hi := mc.fetch()
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) read16(address uint16) uint16 {
	lo := mc.bus.Read(address)
	hi := mc.bus.Read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) write16(address uint16, v uint16) {
	mc.bus.Write(address, uint8(v))
	mc.bus.Write(address+1, uint8(v>>8))
}

func (mc *CPU) push(v uint16) {
	mc.SP--
	mc.bus.Write(mc.SP, uint8(v>>8))
	mc.SP--
	mc.bus.Write(mc.SP, uint8(v))
}

func (mc *CPU) pop() uint16 {
	v := mc.read16(mc.SP)
	mc.SP += 2
	return v
}

// vectorByte returns the value on the data bus during an interrupt
// acknowledge. with no callback the bus floats high.
func (mc *CPU) vectorByte() uint8 {
	if mc.vector == nil {
		return 0xff
	}
	return mc.vector()
}

// an accepted interrupt takes the CPU out of the halted state and moves the
// PC past the HALT instruction.
func (mc *CPU) leaveHalt() {
	if mc.Halted {
		mc.Halted = false
		mc.PC++
	}
}

func (mc *CPU) acceptNMI() {
	mc.nmiPending = false
	mc.leaveHalt()
	mc.incR()
	mc.push(mc.PC)
	mc.IFF1 = false
	mc.PC = 0x0066
	mc.budget -= 11
}

func (mc *CPU) acceptINT() {
	mc.leaveHalt()
	mc.incR()
	mc.IFF1 = false
	mc.IFF2 = false

	switch mc.IM {
	case 0:
		// the byte on the bus is executed as an instruction. only RST and
		// the three byte CALL and JP instructions are supported
		op := mc.vectorByte()
		switch {
		case op == 0xcd:
			lo := mc.vectorByte()
			hi := mc.vectorByte()
			mc.push(mc.PC)
			mc.PC = uint16(hi)<<8 | uint16(lo)
			mc.budget -= 19
		case op == 0xc3:
			lo := mc.vectorByte()
			hi := mc.vectorByte()
			mc.PC = uint16(hi)<<8 | uint16(lo)
			mc.budget -= 12
		case op&0xc7 == 0xc7:
			mc.push(mc.PC)
			mc.PC = uint16(op & 0x38)
			mc.budget -= 13
		default:
			logger.Logf(mc, "z80", "unsupported IM0 instruction on data bus (%#02x)", op)
			mc.push(mc.PC)
			mc.PC = 0x0038
			mc.budget -= 13
		}
	case 1:
		mc.push(mc.PC)
		mc.PC = 0x0038
		mc.budget -= 13
	default:
		address := uint16(mc.I)<<8 | uint16(mc.vectorByte())
		mc.push(mc.PC)
		mc.PC = mc.read16(address)
		mc.budget -= 19
	}
}

// AllowLogging implements the logger.Permission interface.
func (mc *CPU) AllowLogging() bool {
	return mc.instance == nil || mc.instance.AllowLogging()
}

// crash is raised with panic() when the CPU can make no further progress.
type crash struct {
	pc     uint16
	reason string
}

func (c crash) Error() string {
	return fmt.Sprintf("%s at %#04x", c.reason, c.pc)
}

// AsCrash returns the CPU crash as an error if the value returned by recover()
// was raised by a crash. Returns nil otherwise.
func AsCrash(r any) error {
	if c, ok := r.(crash); ok {
		return c
	}
	return nil
}

// a HALT instruction with interrupts disabled can only be ended by an NMI. if
// there is no NMI source enabled then the program has crashed.
func (mc *CPU) checkCrash() {
	if mc.IFF1 || mc.nmiPending {
		return
	}
	if mc.instance == nil || !mc.instance.Prefs.TrapCrash.Get().(bool) {
		return
	}
	if mc.nmiSource != nil && mc.nmiSource() {
		return
	}
	panic(crash{pc: mc.PC, reason: "HALT with interrupts disabled"})
}
