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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/jetsetilly/gopher8bit/hardware/television"
)

// Audio is an implementation of the television.AudioMixer interface. It
// generates a SHA-1 value of the samples sent every frame.
type Audio struct {
	digest [sha1.Size]byte
	buffer []byte
}

// NewAudio is the preferred method of initialisation for the Audio type. The
// Audio instance is added to the television.
func NewAudio(tv *television.Television) *Audio {
	dig := &Audio{}
	tv.AddAudioMixer(dig)
	return dig
}

func (dig *Audio) String() string {
	return fmt.Sprintf("audio digest: %s", dig.Hash())
}

// Hash implements the digest.Digest interface.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *Audio) ResetDigest() {
	clear(dig.digest[:])
}

// SetAudio implements the television.AudioMixer interface.
func (dig *Audio) SetAudio(samples []float32) error {
	dig.buffer = append(dig.buffer[:0], dig.digest[:]...)
	for _, s := range samples {
		dig.buffer = binary.LittleEndian.AppendUint32(dig.buffer, math.Float32bits(s))
	}
	dig.digest = sha1.Sum(dig.buffer)
	return nil
}

// EndMixing implements the television.AudioMixer interface.
func (dig *Audio) EndMixing() error {
	return nil
}
