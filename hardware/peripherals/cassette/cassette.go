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

// Package cassette implements a cassette tape recorder connected to the PIA.
//
// The motor is controlled by the CA2 line of the PIA. The motor runs while
// CA2 is low. While the motor is running the tape advances with CPU time and
// the level of the tape drives the CA1 line and bit 7 of PIA port A.
//
// Tapes are loaded from WAV or MP3 files. Only the first channel of the sound
// data is used.
package cassette

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/jetsetilly/gopher8bit/hardware/instance"
	"github.com/jetsetilly/gopher8bit/hardware/pia"
	"github.com/jetsetilly/gopher8bit/logger"
)

// Error patterns returned by the cassette package.
const (
	UnsupportedFormat = "cassette: unsupported format (%s)"
	DecodeError       = "cassette: %s: %v"
)

const logTag = "cassette"

// the tape bit in PIA port A.
const tapeBit = 0x80

// PIA is the peripheral adapter the cassette is connected to.
type PIA interface {
	SetC1(p pia.Port, level bool)
	SetInput(p pia.Port, mask uint8, v uint8)
}

// Cassette is the tape recorder. It implements the pia.Connection interface
// for port A.
type Cassette struct {
	instance *instance.Instance
	pia      PIA

	// mono sound data
	data       []float32
	sampleRate float64

	// the CPU clock in Hz
	clockHz float64

	// position on the tape as a sample index. fractional samples carry over
	// to the next call to Step()
	position float64

	motor bool
	level bool
}

// NewCassette is the preferred method of initialisation for the Cassette
// type. The instance argument can be nil.
func NewCassette(instance *instance.Instance, pia PIA, clockHz int) *Cassette {
	return &Cassette{
		instance: instance,
		pia:      pia,
		clockHz:  float64(clockHz),
		level:    true,
	}
}

// AllowLogging implements the logger.Permission interface.
func (tap *Cassette) AllowLogging() bool {
	return tap.instance == nil || tap.instance.AllowLogging()
}

func (tap *Cassette) String() string {
	if len(tap.data) == 0 {
		return "cassette: empty"
	}
	return fmt.Sprintf("cassette: %.02fs of %.02fs motor=%v", tap.Position(), tap.Length(), tap.motor)
}

// Load a tape. The name is used to decide the format of the data. The tape is
// rewound.
func (tap *Cassette) Load(name string, data []byte) error {
	var err error

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".wav":
		err = tap.loadWAV(data)
	case ".mp3":
		err = tap.loadMP3(data)
	default:
		return curated.Errorf(UnsupportedFormat, ext)
	}
	if err != nil {
		return err
	}

	tap.position = 0
	logger.Logf(tap, logTag, "sample rate: %0.2fHz", tap.sampleRate)
	logger.Logf(tap, logTag, "total time: %.02fs", tap.Length())

	return nil
}

// SetSamples loads a tape from mono samples. The tape is rewound.
func (tap *Cassette) SetSamples(samples []float32, sampleRate float64) {
	tap.data = samples
	tap.sampleRate = sampleRate
	tap.position = 0
}

func (tap *Cassette) loadWAV(data []byte) error {
	dec := wav.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() {
		return curated.Errorf(DecodeError, "wav", "not a valid wav file")
	}

	logger.Log(tap, logTag, "loading from wav file")

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return curated.Errorf(DecodeError, "wav", err)
	}
	floatBuf := buf.AsFloat32Buffer()

	chans := int(dec.NumChans)
	if chans == 0 {
		return curated.Errorf(DecodeError, "wav", "no channels")
	}

	tap.data = make([]float32, 0, len(floatBuf.Data)/chans)
	for i := 0; i < len(floatBuf.Data); i += chans {
		tap.data = append(tap.data, floatBuf.Data[i])
	}
	tap.sampleRate = float64(dec.SampleRate)

	return nil
}

func (tap *Cassette) loadMP3(data []byte) error {
	dec, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return curated.Errorf(DecodeError, "mp3", err)
	}

	logger.Log(tap, logTag, "loading from mp3 file")

	// the decoded stream is always 16bit little endian with two channels
	samples, err := decodePCM16(dec, 2)
	if err != nil {
		return curated.Errorf(DecodeError, "mp3", err)
	}

	tap.data = samples
	tap.sampleRate = float64(dec.SampleRate())

	return nil
}

// decodePCM16 reads interleaved 16bit little endian samples. Only the first
// channel is kept.
func decodePCM16(r io.Reader, chans int) ([]float32, error) {
	frame := 2 * chans
	chunk := make([]byte, 4096-4096%frame)

	var samples []float32
	for {
		n, err := io.ReadFull(r, chunk)
		for i := 0; i+1 < n; i += frame {
			f := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
			samples = append(samples, float32(f)/32768)
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return samples, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// Length returns the length of the tape in seconds.
func (tap *Cassette) Length() float64 {
	if tap.sampleRate == 0 {
		return 0
	}
	return float64(len(tap.data)) / tap.sampleRate
}

// Position returns the position of the tape in seconds.
func (tap *Cassette) Position() float64 {
	if tap.sampleRate == 0 {
		return 0
	}
	return tap.position / tap.sampleRate
}

// Rewind the tape to the beginning.
func (tap *Cassette) Rewind() {
	tap.position = 0
}

// Motor returns true if the motor is running.
func (tap *Cassette) Motor() bool {
	return tap.motor
}

// PortOutput implements the pia.Connection interface.
func (tap *Cassette) PortOutput(_ uint8) {
}

// ControlLine implements the pia.Connection interface. The motor runs while
// the line is low.
func (tap *Cassette) ControlLine(level bool) {
	motor := !level
	if motor == tap.motor {
		return
	}
	tap.motor = motor
	if len(tap.data) > 0 {
		logger.Logf(tap, logTag, "motor %v at %.02fs", motor, tap.Position())
	}
}

// Step advances the tape by the number of CPU cycles if the motor is running.
// The level of the tape is sent to the PIA.
func (tap *Cassette) Step(cycles int) {
	if !tap.motor || len(tap.data) == 0 || tap.position >= float64(len(tap.data)) {
		return
	}

	tap.position += float64(cycles) * tap.sampleRate / tap.clockHz

	idx := int(tap.position)
	if idx >= len(tap.data) {
		idx = len(tap.data) - 1
		logger.Log(tap, logTag, "end of tape")
	}

	level := tap.data[idx] > 0
	if level == tap.level {
		return
	}
	tap.level = level

	if tap.pia != nil {
		tap.pia.SetC1(pia.PortA, level)
		if level {
			tap.pia.SetInput(pia.PortA, tapeBit, tapeBit)
		} else {
			tap.pia.SetInput(pia.PortA, tapeBit, 0)
		}
	}
}
