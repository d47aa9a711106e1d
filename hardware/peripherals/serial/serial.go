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

// Package serial implements a serial bus listener connected to PIA port B.
//
// A command is framed by the CB2 line. While CB2 is low every byte written to
// port B is part of the command. The command is complete when CB2 returns high.
package serial

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8bit/hardware/instance"
	"github.com/jetsetilly/gopher8bit/logger"
)

const logTag = "serial"

// Serial collects commands sent over the serial bus. It implements the
// pia.Connection interface for port B.
type Serial struct {
	instance *instance.Instance

	framing bool
	current []uint8

	// the completed commands in the order they were sent
	Commands [][]uint8
}

// NewSerial is the preferred method of initialisation for the Serial type.
// The instance argument can be nil.
func NewSerial(instance *instance.Instance) *Serial {
	return &Serial{
		instance: instance,
	}
}

// AllowLogging implements the logger.Permission interface.
func (ser *Serial) AllowLogging() bool {
	return ser.instance == nil || ser.instance.AllowLogging()
}

func (ser *Serial) String() string {
	return fmt.Sprintf("serial: %d commands framing=%v", len(ser.Commands), ser.framing)
}

// Reset discards all commands.
func (ser *Serial) Reset() {
	ser.framing = false
	ser.current = ser.current[:0]
	ser.Commands = ser.Commands[:0]
}

// PortOutput implements the pia.Connection interface.
func (ser *Serial) PortOutput(v uint8) {
	if ser.framing {
		ser.current = append(ser.current, v)
	}
}

// ControlLine implements the pia.Connection interface.
func (ser *Serial) ControlLine(level bool) {
	if !level {
		ser.framing = true
		ser.current = ser.current[:0]
		return
	}

	if !ser.framing {
		return
	}
	ser.framing = false

	if len(ser.current) == 0 {
		return
	}

	cmd := make([]uint8, len(ser.current))
	copy(cmd, ser.current)
	ser.Commands = append(ser.Commands, cmd)

	s := strings.Builder{}
	for i, b := range cmd {
		if i > 0 {
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("%02x", b))
	}
	logger.Logf(ser, logTag, "command: %s", s.String())
}
