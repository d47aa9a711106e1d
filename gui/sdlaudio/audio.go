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

// Package sdlaudio plays the sound generated by the emulation through the
// SDL audio queue.
package sdlaudio

import (
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/gopher8bit/hardware/psg"
	"github.com/jetsetilly/gopher8bit/logger"

	"github.com/veandco/go-sdl2/sdl"
)

// the number of samples in the SDL buffer. the precise value is not
// critical.
const bufferLength = 1024

// the maximum amount of queued audio, in bytes. if the queue grows beyond
// this then the emulation is running faster than the audio device and the
// queue is cleared to keep the sound in time with the picture
const maxQueueLength = psg.SampleRate / 5 * bytesPerSample

const bytesPerSample = 2

// Audio outputs sound using SDL.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// samples converted to the format required by the device
	buffer []byte
}

// NewAudio is the preferred method of initialisation for the Audio Type. The
// SDL audio subsystem must have been initialised.
func NewAudio() (*Audio, error) {
	aud := &Audio{}

	spec := &sdl.AudioSpec{
		Freq:     psg.SampleRate,
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	var err error
	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, fmt.Errorf("sdlaudio: %w", err)
	}
	aud.spec = actualSpec

	logger.Logf(logger.Allow, "sdlaudio", "frequency: %d samples/sec", aud.spec.Freq)
	logger.Logf(logger.Allow, "sdlaudio", "buffer size: %d samples", aud.spec.Samples)

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// SetAudio implements the television.AudioMixer interface.
func (aud *Audio) SetAudio(samples []float32) error {
	aud.buffer = aud.buffer[:0]
	for _, s := range samples {
		s = min(max(s, -1.0), 1.0)
		aud.buffer = binary.LittleEndian.AppendUint16(aud.buffer, uint16(int16(s*32767)))
	}

	if sdl.GetQueuedAudioSize(aud.id) > maxQueueLength {
		sdl.ClearQueuedAudio(aud.id)
	}

	err := sdl.QueueAudio(aud.id, aud.buffer)
	if err != nil {
		return fmt.Errorf("sdlaudio: %w", err)
	}

	return nil
}

// EndMixing implements the television.AudioMixer interface.
func (aud *Audio) EndMixing() error {
	sdl.CloseAudioDevice(aud.id)
	return nil
}
