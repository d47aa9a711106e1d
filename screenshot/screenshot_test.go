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

package screenshot_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8bit/screenshot"
	"github.com/jetsetilly/gopher8bit/test"
)

func frame() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.SetRGBA(1, 2, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff})
	return img
}

func TestScale(t *testing.T) {
	img := screenshot.Scale(frame(), 3)
	test.ExpectEquality(t, img.Bounds(), image.Rect(0, 0, 12, 9))
	test.ExpectEquality(t, img.RGBAAt(3, 6), color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff})
	test.ExpectEquality(t, img.RGBAAt(5, 8), color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff})
	test.ExpectEquality(t, img.RGBAAt(2, 6), color.RGBA{})

	// a scale of zero is treated as one
	img = screenshot.Scale(frame(), 0)
	test.ExpectEquality(t, img.Bounds(), image.Rect(0, 0, 4, 3))
}

func TestWrite(t *testing.T) {
	var b bytes.Buffer
	test.DemandSuccess(t, screenshot.Write(&b, frame(), 2))

	img, err := png.Decode(&b)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds(), image.Rect(0, 0, 8, 6))
	r, g, bl, _ := img.At(2, 4).RGBA()
	test.ExpectEquality(t, [3]uint32{r >> 8, g >> 8, bl >> 8}, [3]uint32{0x10, 0x20, 0x30})
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	test.ExpectSuccess(t, screenshot.Save(path, frame(), 1))
	_, err := os.Stat(path)
	test.ExpectSuccess(t, err)

	test.ExpectFailure(t, screenshot.Save(filepath.Join(t.TempDir(), "missing", "frame.png"), frame(), 1))
}
