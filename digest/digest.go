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

// Package digest is used to create fingerprints of the output of the
// emulation. Two runs of the same cartridge with the same input should
// produce the same digest.
//
// The Video type is an implementation of television.PixelRenderer and the
// Audio type is an implementation of television.AudioMixer. Both chain the
// digest of the previous frame into the next, so the final digest covers
// every frame since the last reset.
//
// SHA-1 is used because this is not a cryptographic task.
package digest

// Digest implementations compute a fingerprint of the emulation output.
type Digest interface {
	Hash() string
	ResetDigest()
}
