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
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/jetsetilly/gopher8bit/gui"
	"github.com/jetsetilly/gopher8bit/hardware/television"
	"github.com/jetsetilly/gopher8bit/hardware/television/specification"
	"github.com/jetsetilly/gopher8bit/logger"
	"github.com/jetsetilly/gopher8bit/userinput"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// NotATerminal is returned by NewTermPlay() if the output is not a terminal.
const NotATerminal = "termplay: not a terminal"

// the number of frames a key is held for after it has been pressed
const holdFrames = 10

// TermPlay displays the television in the terminal.
type TermPlay struct {
	input  *os.File
	output *bufio.Writer
	outFd  int

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	// protects fields shared with the input and signal goroutines
	crit sync.Mutex

	events chan userinput.Event

	// keys currently held and the number of frames remaining before they
	// are released
	held map[string]int

	cols int
	rows int

	visible bool
	frame   []byte

	stop     chan bool
	done     chan bool
	sigwinch chan os.Signal
}

// NewTermPlay is the preferred method of initialisation for the TermPlay
// type. The input file is put into cbreak mode until Destroy() is called.
func NewTermPlay(tv *television.Television, input *os.File, output *os.File) (*TermPlay, error) {
	if !term.IsTerminal(int(output.Fd())) || !term.IsTerminal(int(input.Fd())) {
		return nil, curated.Errorf(NotATerminal)
	}

	trm := &TermPlay{
		input:    input,
		output:   bufio.NewWriter(output),
		outFd:    int(output.Fd()),
		held:     make(map[string]int),
		frame:    make([]byte, specification.FrameWidth*specification.FrameHeight*4),
		stop:     make(chan bool),
		done:     make(chan bool),
		sigwinch: make(chan os.Signal, 1),
	}

	err := termios.Tcgetattr(input.Fd(), &trm.canAttr)
	if err != nil {
		return nil, fmt.Errorf("termplay: %w", err)
	}
	trm.cbreakAttr = trm.canAttr
	termios.Cfmakecbreak(&trm.cbreakAttr)

	err = termios.Tcsetattr(input.Fd(), termios.TCIFLUSH, &trm.cbreakAttr)
	if err != nil {
		return nil, fmt.Errorf("termplay: %w", err)
	}

	err = unix.SetNonblock(int(input.Fd()), true)
	if err != nil {
		_ = termios.Tcsetattr(input.Fd(), termios.TCIFLUSH, &trm.canAttr)
		return nil, fmt.Errorf("termplay: %w", err)
	}

	trm.resize()
	signal.Notify(trm.sigwinch, syscall.SIGWINCH)

	go trm.readInput()

	err = tv.AddPixelRenderer(trm)
	if err != nil {
		trm.Destroy(io.Discard)
		return nil, fmt.Errorf("termplay: %w", err)
	}
	tv.Limiter.Active.Store(true)

	return trm, nil
}

// Destroy restores the terminal to the state it was in before NewTermPlay()
// was called.
func (trm *TermPlay) Destroy(output io.Writer) {
	close(trm.stop)
	<-trm.done
	signal.Stop(trm.sigwinch)

	if err := unix.SetNonblock(int(trm.input.Fd()), false); err != nil {
		fmt.Fprintln(output, err)
	}
	if err := termios.Tcsetattr(trm.input.Fd(), termios.TCIFLUSH, &trm.canAttr); err != nil {
		fmt.Fprintln(output, err)
	}

	// show cursor and reset attributes
	trm.output.WriteString("\x1b[0m\x1b[?25h\r\n")
	trm.output.Flush()
}

// Service implements the GuiCreator interface. There is nothing in the
// terminal that needs servicing on the main thread.
func (trm *TermPlay) Service() {
}

func (trm *TermPlay) resize() {
	cols, rows, err := term.GetSize(trm.outFd)
	if err != nil {
		logger.Log(logger.Allow, "termplay", err)
		cols, rows = 80, 24
	}

	trm.crit.Lock()
	defer trm.crit.Unlock()
	trm.cols = cols
	trm.rows = rows
}

func (trm *TermPlay) readInput() {
	defer close(trm.done)

	buf := make([]byte, 32)
	for {
		select {
		case <-trm.stop:
			return
		case <-trm.sigwinch:
			trm.resize()
		default:
		}

		n, err := unix.Read(int(trm.input.Fd()), buf)
		if n > 0 {
			trm.press(parseKeys(buf[:n]))
		}
		if err == unix.EAGAIN || n <= 0 {
			time.Sleep(5 * time.Millisecond)
			continue
		}
		if err != nil {
			logger.Log(logger.Allow, "termplay", err)
			return
		}
	}
}

func (trm *TermPlay) send(ev userinput.Event) {
	if trm.events == nil {
		return
	}
	select {
	case trm.events <- ev:
	default:
	}
}

func (trm *TermPlay) press(keys []string) {
	trm.crit.Lock()
	defer trm.crit.Unlock()

	for _, k := range keys {
		if k == quitKey {
			trm.send(userinput.EventQuit{})
			continue
		}
		if _, ok := trm.held[k]; !ok {
			trm.send(userinput.EventKeyboard{Key: k, Down: true})
		}
		trm.held[k] = holdFrames
	}
}

// release any keys that have been held for long enough. called once per
// frame
func (trm *TermPlay) release() {
	trm.crit.Lock()
	defer trm.crit.Unlock()

	for k, n := range trm.held {
		n--
		if n <= 0 {
			delete(trm.held, k)
			trm.send(userinput.EventKeyboard{Key: k, Down: false})
		} else {
			trm.held[k] = n
		}
	}
}

// SetFeature implements the gui.GUI interface.
func (trm *TermPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("termplay: %s: %v", request, r)
		}
	}()

	trm.crit.Lock()
	defer trm.crit.Unlock()

	switch request {
	case gui.ReqSetEventChan:
		trm.events = args[0].(chan userinput.Event)
	case gui.ReqSetVisibility:
		trm.visible = args[0].(bool)
		if trm.visible {
			// clear screen and hide cursor
			trm.output.WriteString("\x1b[2J\x1b[?25l")
		} else {
			trm.output.WriteString("\x1b[?25h")
		}
		return trm.output.Flush()
	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, request)
	}

	return nil
}

// Resize implements the television.PixelRenderer interface.
func (trm *TermPlay) Resize(_ *specification.Spec) error {
	return nil
}

// SetScanline implements the television.PixelRenderer interface.
func (trm *TermPlay) SetScanline(y int, pixels []byte) error {
	copy(trm.frame[y*specification.FrameWidth*4:], pixels)
	return nil
}

// NewFrame implements the television.PixelRenderer interface.
func (trm *TermPlay) NewFrame(_ int) error {
	trm.release()

	trm.crit.Lock()
	defer trm.crit.Unlock()

	if !trm.visible {
		return nil
	}

	// the bottom line of the terminal is left empty
	return render(trm.output, trm.frame, trm.cols, trm.rows-1)
}

// EndRendering implements the television.PixelRenderer interface.
func (trm *TermPlay) EndRendering() error {
	return nil
}
