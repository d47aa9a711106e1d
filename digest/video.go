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
	"fmt"

	"github.com/jetsetilly/gopher8bit/hardware/television"
	"github.com/jetsetilly/gopher8bit/hardware/television/specification"
)

// Video is an implementation of the television.PixelRenderer interface. It
// generates a SHA-1 value of the image every frame. It does not display the
// image anywhere.
type Video struct {
	digest [sha1.Size]byte

	// the first sha1.Size bytes hold the digest of the previous frame
	pixels []byte

	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type. The
// Video instance is added to the television.
func NewVideo(tv *television.Television) (*Video, error) {
	dig := &Video{
		pixels: make([]byte, sha1.Size+specification.FrameWidth*specification.FrameHeight*4),
	}

	err := tv.AddPixelRenderer(dig)
	if err != nil {
		return nil, err
	}

	return dig, nil
}

func (dig *Video) String() string {
	return fmt.Sprintf("video digest: %s (frame %d)", dig.Hash(), dig.frameNum)
}

// Hash implements the digest.Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	dig.frameNum = 0
}

// Resize implements the television.PixelRenderer interface.
func (dig *Video) Resize(_ *specification.Spec) error {
	return nil
}

// SetScanline implements the television.PixelRenderer interface.
func (dig *Video) SetScanline(y int, pixels []byte) error {
	copy(dig.pixels[sha1.Size+y*specification.FrameWidth*4:], pixels)
	return nil
}

// NewFrame implements the television.PixelRenderer interface.
func (dig *Video) NewFrame(frameNum int) error {
	copy(dig.pixels, dig.digest[:])
	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum = frameNum
	return nil
}

// EndRendering implements the television.PixelRenderer interface.
func (dig *Video) EndRendering() error {
	return nil
}
