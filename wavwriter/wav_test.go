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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"

	"github.com/jetsetilly/gopher8bit/hardware/psg"
	"github.com/jetsetilly/gopher8bit/test"
	"github.com/jetsetilly/gopher8bit/wavwriter"
)

func TestWavWriter(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.wav")

	aw, err := wavwriter.New(fn)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, aw.SetAudio([]float32{0.0, 0.5, -0.5, 2.0}))
	test.ExpectSuccess(t, aw.SetAudio(nil))
	test.ExpectEquality(t, aw.Len(), 4)
	test.DemandSuccess(t, aw.EndMixing())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, buf.Format.SampleRate, psg.SampleRate)
	test.ExpectEquality(t, buf.Format.NumChannels, 1)
	test.DemandEquality(t, len(buf.Data), 4)
	test.ExpectEquality(t, buf.Data[0], 0)
	test.ExpectEquality(t, buf.Data[1], 16383)
	test.ExpectEquality(t, buf.Data[2], -16383)

	// samples outside the range are clamped
	test.ExpectEquality(t, buf.Data[3], 32767)
}

func TestBadFilename(t *testing.T) {
	aw, err := wavwriter.New(filepath.Join(t.TempDir(), "missing", "out.wav"))
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, aw.EndMixing())
}
