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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/gopher8bit/curated"
)

// RewindEmpty is returned by Rewind.Back() when there are no snapshots.
const RewindEmpty = "rewind: no snapshots"

// the default number of frames stored by a Rewind.
const defaultRewindFrames = 100

// Rewind keeps snapshots of the board taken at the end of recent frames.
type Rewind struct {
	brd *Board

	// circular list of snapshots. the oldest snapshot is at index start
	steps [][]byte
	start int
	count int
}

// NewRewind is the preferred method of initialisation for the Rewind type. A
// maxFrames value of zero or less uses a default value.
func NewRewind(brd *Board, maxFrames int) *Rewind {
	if maxFrames <= 0 {
		maxFrames = defaultRewindFrames
	}
	return &Rewind{
		brd:   brd,
		steps: make([][]byte, maxFrames),
	}
}

func (r *Rewind) String() string {
	return fmt.Sprintf("rewind: %d/%d frames", r.count, len(r.steps))
}

// Len returns the number of snapshots available.
func (r *Rewind) Len() int {
	return r.count
}

// Reset forgets all snapshots.
func (r *Rewind) Reset() {
	clear(r.steps)
	r.start = 0
	r.count = 0
}

// RecordFrame takes a snapshot of the board. Should be called between
// frames. The oldest snapshot is forgotten if the list is full.
func (r *Rewind) RecordFrame() {
	idx := (r.start + r.count) % len(r.steps)
	r.steps[idx] = r.brd.Snapshot()
	if r.count < len(r.steps) {
		r.count++
	} else {
		r.start = (r.start + 1) % len(r.steps)
	}
}

// Back restores the board to the snapshot taken the specified number of
// frames ago, counting the most recent snapshot as zero frames ago. The
// restored snapshot and every older snapshot are kept. If there are fewer
// snapshots than requested then the oldest snapshot is used.
func (r *Rewind) Back(frames int) error {
	if r.count == 0 {
		return curated.Errorf(RewindEmpty)
	}

	frames = min(max(frames, 0), r.count-1)
	r.count -= frames
	idx := (r.start + r.count - 1) % len(r.steps)

	return r.brd.Plumb(r.steps[idx])
}
