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

// Package screenshot saves the television framebuffer as a PNG file.
package screenshot

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/jetsetilly/gopher8bit/logger"

	"golang.org/x/image/draw"
)

// Scale returns a copy of the frame scaled by the integer factor. Pixels are
// scaled without any smoothing.
func Scale(frame *image.RGBA, scale int) *image.RGBA {
	scale = max(scale, 1)
	b := frame.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), frame, b, draw.Src, nil)
	return dst
}

// Write the frame as a PNG image to the io.Writer.
func Write(w io.Writer, frame *image.RGBA, scale int) error {
	err := png.Encode(w, Scale(frame, scale))
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	return nil
}

// Save the frame as a PNG file.
func Save(path string, frame *image.RGBA, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		logger.Logf(logger.Allow, "screenshot", "save failed: %v", err)
		return fmt.Errorf("screenshot: %w", err)
	}

	err = Write(f, frame, scale)
	if err != nil {
		f.Close()
		logger.Logf(logger.Allow, "screenshot", "save failed: %v", err)
		return err
	}

	err = f.Close()
	if err != nil {
		logger.Logf(logger.Allow, "screenshot", "save failed: %v", err)
		return fmt.Errorf("screenshot: %w", err)
	}

	logger.Logf(logger.Allow, "screenshot", "saved: %s", path)
	return nil
}
