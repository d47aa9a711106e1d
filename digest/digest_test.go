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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/gopher8bit/digest"
	"github.com/jetsetilly/gopher8bit/hardware"
	"github.com/jetsetilly/gopher8bit/hardware/memory"
	"github.com/jetsetilly/gopher8bit/hardware/television"
	"github.com/jetsetilly/gopher8bit/test"
)

var (
	idle = []uint8{
		0x18, 0xfe, // JR $
	}

	background = []uint8{
		0x3e, 0x46, // LD A,46
		0x32, 0x1a, 0xd0, // LD (COLBK),A
		0x18, 0xfe, // JR $
	}

	tone = []uint8{
		0x3e, 0x8f, // LD A,8F
		0xd3, 0x7f, // OUT (7F),A
		0x3e, 0x3f, // LD A,3F
		0xd3, 0x7f, // OUT (7F),A
		0x3e, 0x90, // LD A,90
		0xd3, 0x7f, // OUT (7F),A
		0x18, 0xfe, // JR $
	}
)

// run the program for the number of frames and return the video and audio
// digests.
func run(t *testing.T, frames int, code ...uint8) (*digest.Video, *digest.Audio) {
	t.Helper()

	data := make([]uint8, 0x100)
	copy(data, code)
	data[0x66] = 0xed
	data[0x67] = 0x45
	cart, err := memory.NewCartridge(data)
	test.DemandSuccess(t, err)

	tv, err := television.NewTelevision("NTSC")
	test.DemandSuccess(t, err)
	brd, err := hardware.NewBoard(nil, tv)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, brd.AttachCartridge(cart))

	vid, err := digest.NewVideo(tv)
	test.DemandSuccess(t, err)
	aud := digest.NewAudio(tv)

	test.DemandSuccess(t, brd.RunForFrameCount(frames, nil))

	return vid, aud
}

func TestDeterminism(t *testing.T) {
	vidA, audA := run(t, 5, background...)
	vidB, audB := run(t, 5, background...)
	test.ExpectEquality(t, vidA.Hash(), vidB.Hash())
	test.ExpectEquality(t, audA.Hash(), audB.Hash())
	test.ExpectEquality(t, len(vidA.Hash()), 40)
}

func TestVideo(t *testing.T) {
	vidA, _ := run(t, 5, idle...)
	vidB, _ := run(t, 5, background...)
	test.ExpectInequality(t, vidA.Hash(), vidB.Hash())

	// the digest is chained so the number of frames matters
	vidC, _ := run(t, 6, idle...)
	test.ExpectInequality(t, vidA.Hash(), vidC.Hash())
}

func TestAudio(t *testing.T) {
	_, audA := run(t, 5, idle...)
	_, audB := run(t, 5, tone...)
	test.ExpectInequality(t, audA.Hash(), audB.Hash())
}

func TestReset(t *testing.T) {
	vid, aud := run(t, 2, tone...)

	var empty digest.Digest = vid
	empty.ResetDigest()
	test.ExpectEquality(t, empty.Hash(), "0000000000000000000000000000000000000000")

	empty = aud
	empty.ResetDigest()
	test.ExpectEquality(t, empty.Hash(), "0000000000000000000000000000000000000000")
}
