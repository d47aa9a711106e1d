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

package termplay

import (
	"bufio"
	"fmt"

	"github.com/jetsetilly/gopher8bit/hardware/television/specification"
)

const upperHalfBlock = "▀"

// render the RGBA frame into a grid of cols by rows character cells. the
// cursor is moved to the top-left of the terminal first
func render(w *bufio.Writer, frame []byte, cols int, rows int) error {
	cols = min(max(cols, 1), specification.FrameWidth)
	rows = min(max(rows, 1), specification.FrameHeight/2)

	w.WriteString("\x1b[H")

	pixel := func(x, y int) (uint8, uint8, uint8) {
		fx := x * specification.FrameWidth / cols
		fy := y * specification.FrameHeight / (rows * 2)
		i := (fy*specification.FrameWidth + fx) * 4
		return frame[i], frame[i+1], frame[i+2]
	}

	for y := range rows {
		for x := range cols {
			ur, ug, ub := pixel(x, y*2)
			lr, lg, lb := pixel(x, y*2+1)
			fmt.Fprintf(w, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%s", ur, ug, ub, lr, lg, lb, upperHalfBlock)
		}
		w.WriteString("\x1b[0m")
		if y < rows-1 {
			w.WriteString("\r\n")
		}
	}

	return w.Flush()
}
