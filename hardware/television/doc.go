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

// Package television implements the output device of the emulated machine.
//
// The television does not present any information itself. PixelRenderers
// and AudioMixers are added to the television and are sent the completed
// scanlines and sound samples.
//
// The board sends every scanline of the frame to the television with the
// Scanline() function. Only the scanlines between specification.ScanlineTop
// and specification.ScanlineBottom are visible. Each colour clock of a visible
// scanline becomes two pixels in the framebuffer.
//
// The frame is completed with EndFrame(). Renderers are told about the new
// frame and the frame limiter waits if necessary.
package television
