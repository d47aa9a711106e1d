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

package cassette

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"

	"github.com/jetsetilly/gopher8bit/test"
)

func TestDecodePCM16(t *testing.T) {
	// two stereo frames. the right channel is ignored
	pcm := []byte{0x00, 0x40, 0xff, 0x7f, 0x00, 0xc0, 0x00, 0x80}

	samples, err := decodePCM16(bytes.NewReader(pcm), 2)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(samples), 2)
	test.ExpectEquality(t, samples[0], 0.5)
	test.ExpectEquality(t, samples[1], -0.5)

	// an error partway through the stream discards everything
	r := io.MultiReader(bytes.NewReader(pcm), iotest.ErrReader(errors.New("bad sector")))
	samples, err = decodePCM16(r, 2)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, len(samples), 0)
}

func TestFailedLoadKeepsTape(t *testing.T) {
	tap := NewCassette(nil, nil, 1000)
	orig := []float32{0.25, -0.25, 0.25, -0.25}
	tap.SetSamples(orig, 4)
	length := tap.Length()

	test.ExpectFailure(t, tap.Load("tape.mp3", []byte("not an mp3 file")))
	test.ExpectFailure(t, tap.Load("tape.wav", []byte("not a wav file")))

	test.ExpectEquality(t, tap.Length(), length)
	test.ExpectEquality(t, len(tap.data), len(orig))
	test.ExpectEquality(t, orig[0], 0.25)
	test.ExpectEquality(t, orig[1], -0.25)
}
