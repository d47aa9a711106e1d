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

// Package psg connects the SN76489 programmable sound generator to the board.
// The sound chip is written to through I/O ports and samples are generated
// once per scanline.
package psg

import (
	"fmt"

	sn76489 "github.com/user-none/go-chip-sn76489"

	"github.com/jetsetilly/gopher8bit/hardware/state"
)

// SampleRate is the number of samples generated per second.
const SampleRate = 48000

// PSG wraps the SN76489 sound chip.
type PSG struct {
	chip *sn76489.SN76489

	clockHz int
	fps     float32

	// samples generated since the last call to Flush()
	samples []float32

	// the last value written to the chip
	latch uint8
}

// NewPSG is the preferred method of initialisation for the PSG type. The
// clock is the frequency of the CPU in Hz. The fps argument is used to size
// the sample buffer.
func NewPSG(clockHz int, fps float32) *PSG {
	p := &PSG{
		clockHz: clockHz,
		fps:     fps,
	}
	p.Reset()
	return p
}

// Reset the sound chip. Any samples not yet flushed are discarded.
func (p *PSG) Reset() {
	perFrame := int(float32(SampleRate)/p.fps) + 1
	p.chip = sn76489.New(p.clockHz, SampleRate, perFrame*2, sn76489.Sega)
	p.samples = make([]float32, 0, perFrame*2)
	p.latch = 0
}

func (p *PSG) String() string {
	return fmt.Sprintf("PSG: %dHz latch=%02x pending=%d", p.clockHz, p.latch, len(p.samples))
}

// Write a value to the sound chip.
func (p *PSG) Write(v uint8) {
	p.latch = v
	p.chip.Write(v)
}

// Generate samples for the number of CPU cycles.
func (p *PSG) Generate(cycles int) {
	if cycles <= 0 {
		return
	}
	p.chip.GenerateSamples(cycles)
	buffer, count := p.chip.GetBuffer()
	if count > 0 {
		p.samples = append(p.samples, buffer[:count]...)
	}
}

// Samples returns the samples generated since the last call to Flush(). The
// returned slice is only valid until the next call to Flush().
func (p *PSG) Samples() []float32 {
	return p.samples
}

// Flush discards generated samples.
func (p *PSG) Flush() {
	p.samples = p.samples[:0]
}

// StateSave adds the sound chip to the Saver.
func (p *PSG) StateSave(s *state.Saver) {
	s.Tag("psg")
	data := make([]byte, sn76489.SerializeSize)
	p.chip.Serialize(data)
	s.SaveBlob(data)
	s.SaveByte(p.latch)
}

// StateLoad restores the sound chip from the Loader. The sound chip was not
// saved in version 1 of the state format and is reset instead.
func (p *PSG) StateLoad(l *state.Loader) {
	if l.Version() < state.Version2 {
		p.Reset()
		return
	}
	l.Tag("psg")
	data := l.LoadBlob()
	if len(data) == sn76489.SerializeSize {
		p.chip.Deserialize(data)
	}
	l.LoadByte(&p.latch)
	p.Flush()
}
