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

package state_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/jetsetilly/gopher8bit/hardware/state"
	"github.com/jetsetilly/gopher8bit/test"
)

func TestSaveLoad(t *testing.T) {
	s := state.NewSaver()
	s.Tag("chip")
	s.SaveByte(0x12, 0x34)
	s.SaveWord(0xbeef)
	s.SaveInt(-1, 1000000)
	s.SaveBool(true, false)
	s.SaveBlob([]byte{1, 2, 3})

	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	test.DemandSuccess(t, err)

	l, err := state.ReadFrom(&buf)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, l.Version(), state.CurrentVersion)

	var a, b uint8
	var w uint16
	var x, y int
	var p, q bool

	l.Tag("chip")
	l.LoadByte(&a, &b)
	l.LoadWord(&w)
	l.LoadInt(&x, &y)
	l.LoadBool(&p, &q)
	blob := l.LoadBlob()
	test.ExpectSuccess(t, l.Err())

	test.ExpectEquality(t, a, 0x12)
	test.ExpectEquality(t, b, 0x34)
	test.ExpectEquality(t, w, 0xbeef)
	test.ExpectEquality(t, x, -1)
	test.ExpectEquality(t, y, 1000000)
	test.ExpectSuccess(t, p)
	test.ExpectFailure(t, q)
	test.ExpectEquality(t, string(blob), string([]byte{1, 2, 3}))
}

func TestBadTag(t *testing.T) {
	s := state.NewSaver()
	s.Tag("gtia")
	s.SaveByte(1)

	l := state.NewLoader(s.Bytes(), state.CurrentVersion)
	l.Tag("pia")

	var v uint8
	l.LoadByte(&v)
	test.ExpectSuccess(t, curated.Is(l.Err(), state.BadTag))
	test.ExpectEquality(t, v, 0)
}

func TestTruncated(t *testing.T) {
	s := state.NewSaver()
	s.SaveByte(1)

	l := state.NewLoader(s.Bytes(), state.CurrentVersion)

	var w uint16
	l.LoadWord(&w)
	test.ExpectSuccess(t, curated.Is(l.Err(), state.Truncated))
}

func TestCorruption(t *testing.T) {
	s := state.NewSaver()
	s.Tag("cpu")
	s.SaveWord(0x1234)

	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	test.DemandSuccess(t, err)

	data := buf.Bytes()
	data[len(data)-1] ^= 0xff
	_, err = state.ReadFrom(bytes.NewReader(data))
	test.ExpectSuccess(t, curated.Is(err, state.BadChecksum))

	data[0] = 'X'
	_, err = state.ReadFrom(bytes.NewReader(data))
	test.ExpectSuccess(t, curated.Is(err, state.BadMagic))
}

func TestVersion(t *testing.T) {
	l := state.NewLoader(nil, 99)
	test.ExpectSuccess(t, curated.Is(l.Err(), state.BadVersion))

	l = state.NewLoader(nil, state.Version1)
	test.ExpectSuccess(t, l.Err())
	test.ExpectEquality(t, l.Version(), state.Version1)
}
