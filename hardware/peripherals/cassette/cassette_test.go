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

package cassette_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/jetsetilly/gopher8bit/hardware/peripherals/cassette"
	"github.com/jetsetilly/gopher8bit/hardware/pia"
	"github.com/jetsetilly/gopher8bit/test"
)

// squareWave returns a wav file of a square wave that changes level every ten
// samples, starting high.
func squareWave(t *testing.T, numSamples int, sampleRate int) []byte {
	t.Helper()

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		SourceBitDepth: 16,
		Data:           make([]int, numSamples),
	}
	for i := range buf.Data {
		if (i/10)%2 == 0 {
			buf.Data[i] = 16000
		} else {
			buf.Data[i] = -16000
		}
	}

	fn := filepath.Join(t.TempDir(), "tape.wav")
	f, err := os.Create(fn)
	test.DemandSuccess(t, err)

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	test.DemandSuccess(t, enc.Write(buf))
	test.DemandSuccess(t, enc.Close())
	test.DemandSuccess(t, f.Close())

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	return data
}

func TestLoad(t *testing.T) {
	tap := cassette.NewCassette(nil, nil, 1000)
	test.ExpectEquality(t, tap.String(), "cassette: empty")

	err := tap.Load("tape.cas", []byte{0x00})
	test.ExpectSuccess(t, curated.Is(err, cassette.UnsupportedFormat))

	err = tap.Load("tape.wav", []byte{0x00, 0x01, 0x02})
	test.ExpectSuccess(t, curated.Is(err, cassette.DecodeError))

	test.DemandSuccess(t, tap.Load("TAPE.WAV", squareWave(t, 2000, 1000)))
	test.ExpectApproximate(t, tap.Length(), 2.0, 0.001)
	test.ExpectEquality(t, tap.Position(), 0.0)
}

func TestMotorAndLevel(t *testing.T) {
	p := pia.NewPIA(nil, nil)
	tap := cassette.NewCassette(nil, p, 1000)
	test.DemandSuccess(t, tap.Load("tape.wav", squareWave(t, 100, 1000)))

	// the motor is controlled by CA2
	p.Attach(pia.PortA, tap)
	test.ExpectFailure(t, tap.Motor())

	// the tape does not move while the motor is off
	tap.Step(15)
	test.ExpectEquality(t, tap.Position(), 0.0)

	// CA2 output low
	p.Write(pia.PACTL, 0x36)
	test.ExpectSuccess(t, tap.Motor())

	tap.Step(5)
	test.ExpectEquality(t, p.Peek(pia.PORTA)&0x80, 0x80)

	// the tape level falls. CA1 is set to detect the positive edge
	tap.Step(10)
	test.ExpectEquality(t, p.Peek(pia.PORTA)&0x80, 0x00)
	test.ExpectEquality(t, p.Peek(pia.PACTL)&0x80, 0x00)

	// the tape level rises
	tap.Step(10)
	test.ExpectEquality(t, p.Peek(pia.PORTA)&0x80, 0x80)
	test.ExpectEquality(t, p.Peek(pia.PACTL)&0x80, 0x80)
	test.ExpectApproximate(t, tap.Position(), 0.025, 0.001)

	// CA2 output high stops the motor
	p.Write(pia.PACTL, 0x3e)
	test.ExpectFailure(t, tap.Motor())
	tap.Step(10)
	test.ExpectApproximate(t, tap.Position(), 0.025, 0.001)

	tap.Rewind()
	test.ExpectEquality(t, tap.Position(), 0.0)
}

func TestSetSamples(t *testing.T) {
	p := pia.NewPIA(nil, nil)
	tap := cassette.NewCassette(nil, p, 100)
	tap.SetSamples([]float32{1, -1, -1, 1}, 100)
	tap.ControlLine(false)

	tap.Step(1)
	test.ExpectEquality(t, p.Input(pia.PortA)&0x80, 0x00)

	// the end of the tape holds the last level
	tap.Step(100)
	test.ExpectEquality(t, p.Input(pia.PortA)&0x80, 0x80)
}
