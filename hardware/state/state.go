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

package state

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"io"

	"github.com/jetsetilly/gopher8bit/curated"
)

// Version numbers of the state format.
const (
	// the initial version did not include the PIA pending edge flags, the GTIA
	// collision cursor or the PSG
	Version1 = 1

	Version2 = 2

	// CurrentVersion is used by all new Saver instances.
	CurrentVersion = Version2
)

// the magic string at the beginning of a state file.
const magic = "G8BS"

// the size of the header at the beginning of a state file: the magic string,
// the version number and the CRC32 of the data.
const headerSize = len(magic) + 2 + 4

// Sentinal errors.
const (
	BadMagic    = "state: not a state file"
	BadVersion  = "state: unsupported version (%d)"
	BadChecksum = "state: checksum failure"
	BadTag      = "state: expected tag %q but found %q"
	Truncated   = "state: truncated data"
	IOError     = "state: %v"
)

// Saver is used to collate the state of all chips in a board.
type Saver struct {
	buf bytes.Buffer
}

// NewSaver is the preferred method of initialisation for the Saver type.
func NewSaver() *Saver {
	return &Saver{}
}

// Tag marks the beginning of a new section in the state data.
func (s *Saver) Tag(name string) {
	n := min(len(name), 255)
	s.buf.WriteByte(uint8(n))
	s.buf.WriteString(name[:n])
}

// SaveByte adds one or more byte values to the state.
func (s *Saver) SaveByte(v ...uint8) {
	s.buf.Write(v)
}

// SaveBool adds one or more boolean values to the state. Each value is stored
// as a single byte.
func (s *Saver) SaveBool(v ...bool) {
	for _, b := range v {
		if b {
			s.buf.WriteByte(1)
		} else {
			s.buf.WriteByte(0)
		}
	}
}

// SaveWord adds one or more 16bit values to the state.
func (s *Saver) SaveWord(v ...uint16) {
	for _, w := range v {
		s.buf.Write(binary.LittleEndian.AppendUint16(nil, w))
	}
}

// SaveInt adds one or more integer values to the state. Each value is stored
// as 64 bits.
func (s *Saver) SaveInt(v ...int) {
	for _, n := range v {
		s.buf.Write(binary.LittleEndian.AppendUint64(nil, uint64(n)))
	}
}

// SaveBlob adds a length prefixed slice of bytes to the state.
func (s *Saver) SaveBlob(b []byte) {
	s.SaveInt(len(b))
	s.buf.Write(b)
}

// Bytes returns the state data without the file header.
func (s *Saver) Bytes() []byte {
	return s.buf.Bytes()
}

// WriteTo writes the state data, with the file header, to the io.Writer.
// Implements the io.WriterTo interface.
func (s *Saver) WriteTo(w io.Writer) (int64, error) {
	hdr := make([]byte, 0, headerSize)
	hdr = append(hdr, magic...)
	hdr = binary.LittleEndian.AppendUint16(hdr, CurrentVersion)
	hdr = binary.LittleEndian.AppendUint32(hdr, crc32.ChecksumIEEE(s.buf.Bytes()))

	n, err := w.Write(hdr)
	if err != nil {
		return int64(n), curated.Errorf(IOError, err)
	}

	m, err := w.Write(s.buf.Bytes())
	if err != nil {
		return int64(n + m), curated.Errorf(IOError, err)
	}

	return int64(n + m), nil
}

// Loader is used to restore the state of all chips in a board.
type Loader struct {
	data    []byte
	idx     int
	version int
	err     error
}

// NewLoader creates a Loader for state data of the specified version. The
// data should not include the file header.
func NewLoader(data []byte, version int) *Loader {
	l := &Loader{
		data:    data,
		version: version,
	}
	if version < Version1 || version > CurrentVersion {
		l.err = curated.Errorf(BadVersion, version)
	}
	return l
}

// ReadFrom reads state data, including the file header, from the io.Reader.
// The header is checked for validity.
func ReadFrom(r io.Reader) (*Loader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, curated.Errorf(IOError, err)
	}

	if len(data) < headerSize || string(data[:len(magic)]) != magic {
		return nil, curated.Errorf(BadMagic)
	}

	version := int(binary.LittleEndian.Uint16(data[len(magic):]))
	if version < Version1 || version > CurrentVersion {
		return nil, curated.Errorf(BadVersion, version)
	}

	crc := binary.LittleEndian.Uint32(data[len(magic)+2:])
	data = data[headerSize:]
	if crc != crc32.ChecksumIEEE(data) {
		return nil, curated.Errorf(BadChecksum)
	}

	return NewLoader(data, version), nil
}

// Version returns the version of the state data being loaded.
func (l *Loader) Version() int {
	return l.version
}

// Err returns the first error encountered while loading.
func (l *Loader) Err() error {
	return l.err
}

// next returns the next n bytes of the state data. returns nil if there are
// not enough bytes or if an error has already occurred.
func (l *Loader) next(n int) []byte {
	if l.err != nil {
		return nil
	}
	if l.idx+n > len(l.data) {
		l.err = curated.Errorf(Truncated)
		return nil
	}
	b := l.data[l.idx : l.idx+n]
	l.idx += n
	return b
}

// Tag checks that the next section in the state data has the expected name.
func (l *Loader) Tag(name string) {
	b := l.next(1)
	if b == nil {
		return
	}
	t := l.next(int(b[0]))
	if t == nil {
		return
	}
	if string(t) != name {
		l.err = curated.Errorf(BadTag, name, string(t))
	}
}

// LoadByte loads one or more byte values from the state.
func (l *Loader) LoadByte(v ...*uint8) {
	for _, p := range v {
		b := l.next(1)
		if b == nil {
			return
		}
		*p = b[0]
	}
}

// LoadBool loads one or more boolean values from the state.
func (l *Loader) LoadBool(v ...*bool) {
	for _, p := range v {
		b := l.next(1)
		if b == nil {
			return
		}
		*p = b[0] != 0
	}
}

// LoadWord loads one or more 16bit values from the state.
func (l *Loader) LoadWord(v ...*uint16) {
	for _, p := range v {
		b := l.next(2)
		if b == nil {
			return
		}
		*p = binary.LittleEndian.Uint16(b)
	}
}

// LoadInt loads one or more integer values from the state.
func (l *Loader) LoadInt(v ...*int) {
	for _, p := range v {
		b := l.next(8)
		if b == nil {
			return
		}
		*p = int(binary.LittleEndian.Uint64(b))
	}
}

// LoadBlob loads a length prefixed slice of bytes from the state. The
// returned slice is a copy of the data.
func (l *Loader) LoadBlob() []byte {
	var n int
	l.LoadInt(&n)
	if n < 0 {
		l.err = curated.Errorf(Truncated)
		return nil
	}
	b := l.next(n)
	if b == nil {
		return nil
	}
	return bytes.Clone(b)
}
