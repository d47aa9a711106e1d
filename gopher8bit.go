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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/jetsetilly/gopher8bit/cartridgeloader"
	"github.com/jetsetilly/gopher8bit/digest"
	"github.com/jetsetilly/gopher8bit/disassembly"
	"github.com/jetsetilly/gopher8bit/gui"
	"github.com/jetsetilly/gopher8bit/gui/sdlplay"
	"github.com/jetsetilly/gopher8bit/hardware"
	"github.com/jetsetilly/gopher8bit/hardware/instance"
	"github.com/jetsetilly/gopher8bit/hardware/television"
	"github.com/jetsetilly/gopher8bit/logger"
	"github.com/jetsetilly/gopher8bit/modalflag"
	"github.com/jetsetilly/gopher8bit/paths"
	"github.com/jetsetilly/gopher8bit/performance"
	"github.com/jetsetilly/gopher8bit/playmode"
	"github.com/jetsetilly/gopher8bit/prefs"
	"github.com/jetsetilly/gopher8bit/reflection"
	"github.com/jetsetilly/gopher8bit/screenshot"
	"github.com/jetsetilly/gopher8bit/statsview"
	"github.com/jetsetilly/gopher8bit/termplay"
	"github.com/jetsetilly/gopher8bit/version"
	"github.com/jetsetilly/gopher8bit/wavwriter"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative handler is
	// more appropriate. the playmode package for example, provides its own
	// handler.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary (if at all). It
	// MUST ONLY by called as part of a larger loop from the main thread. It
	// should service all gui events that are not safe to do in sub-threads.
	Service()
}

// communication between the main() function and the launch() function. this is
// required because many gui solutions (notably SDL) require window event
// handling (including creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync, os.Args[1:])

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			if gui != nil {
				gui.Destroy(os.Stderr)
			}
			done = true

		case creator := <-sync.creator:
			var err error

			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err

				// gui is of interface type. a nil pointer returned by the
				// creator does not compare equal to nil
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if gui != nil {
				gui.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubModes("RUN", "TERM", "HEADLESS", "PERFORMANCE", "DISASM", "MEMVIZ", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)
	case "TERM":
		err = termMode(md, sync)
	case "HEADLESS":
		err = headless(md, os.Stdout)
	case "PERFORMANCE":
		err = perform(md, os.Stdout)
	case "DISASM":
		err = disasm(md, os.Stdout)
	case "MEMVIZ":
		err = memviz(md, os.Stdout)
	case "VERSION":
		err = showVersion(md, os.Stdout)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// boardFlags are the flags common to every mode that creates a board.
type boardFlags struct {
	spec  *string
	prefs *string
	tape  *string
	log   *bool
}

func addBoardFlags(md *modalflag.Modes) boardFlags {
	return boardFlags{
		spec:  md.AddString("tv", "AUTO", "television specification: NTSC, PAL"),
		prefs: md.AddString("prefs", "", "preferences to apply for this run: \"key::value; key::value\""),
		tape:  md.AddString("tape", "", "cassette tape to insert: WAV or MP3 file"),
		log:   md.AddBool("log", false, "echo debugging log to stdout"),
	}
}

// create a board with the cartridge and tape specified on the command line.
// the cartridge filename can be empty
func newBoard(label instance.Label, flgs boardFlags, filename string) (*hardware.Board, error) {
	if *flgs.log {
		logger.SetEcho(os.Stdout, false)
	}

	prefs.PushCommandLineStack(*flgs.prefs)
	ins, err := instance.NewInstance(label, nil)
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "prefs", "unused: %s", unused)
	}
	if err != nil {
		return nil, err
	}

	if spec := strings.ToUpper(*flgs.spec); spec != "AUTO" {
		err = ins.Prefs.Spec.Set(spec)
		if err != nil {
			return nil, err
		}
	}

	tv, err := television.NewTelevision(ins.Prefs.Spec.String())
	if err != nil {
		return nil, err
	}

	brd, err := hardware.NewBoard(ins, tv)
	if err != nil {
		return nil, err
	}

	if filename != "" {
		cartload := cartridgeloader.NewLoader(filename)
		cart, err := cartload.Cartridge()
		if err != nil {
			return nil, err
		}
		err = brd.AttachCartridge(cart)
		if err != nil {
			return nil, err
		}
	}

	if *flgs.tape != "" {
		tapeload := cartridgeloader.NewLoader(*flgs.tape)
		err = tapeload.Load()
		if err != nil {
			return nil, err
		}
		err = brd.Cassette.Load(tapeload.Filename, tapeload.Data)
		if err != nil {
			return nil, err
		}
	}

	return brd, nil
}

func cartridgeArg(md *modalflag.Modes) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return "", fmt.Errorf("cartridge required for %s mode", md)
	case 1:
		return md.GetArg(0), nil
	}
	return "", fmt.Errorf("too many arguments for %s mode", md)
}

// a feature request to make of the GUI before the emulation starts
type feature struct {
	req gui.FeatureReq
	arg gui.FeatureReqData
}

// play the board in a GUI created by the creator function
func play(sync *mainSync, brd *hardware.Board, creator func() (GuiCreator, error), features ...feature) error {
	defer brd.TV.End()

	sync.creator <- creator

	var scr gui.GUI
	select {
	case g := <-sync.creation:
		scr = g.(gui.GUI)
	case err := <-sync.creationError:
		return err
	}

	for _, f := range features {
		if err := scr.SetFeature(f.req, f.arg); err != nil {
			return err
		}
	}

	// turn off fallback ctrl-c handling. the playmode ends gracefully on
	// ctrl-c
	sync.state <- stateRequest{req: reqNoIntSig}

	rewind := hardware.NewRewind(brd, 0)
	return playmode.Play(brd, scr, rewind)
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	flgs := addBoardFlags(md)
	scale := md.AddFloat64("scale", 0.0, "television scaling")
	fullScreen := md.AddBool("fullscreen", false, "start in fullscreen mode")
	wav := md.AddString("wav", "", "record audio to wav file")
	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	brd, err := newBoard(instance.Main, flgs, filename)
	if err != nil {
		return err
	}

	if stats != nil && *stats {
		stop := statsview.Launch(os.Stdout)
		defer stop()
	}

	if *wav != "" {
		aw, err := wavwriter.New(*wav)
		if err != nil {
			return err
		}
		brd.TV.AddAudioMixer(aw)
	}

	var features []feature
	if *scale > 0.0 {
		features = append(features, feature{req: gui.ReqSetScale, arg: float32(*scale)})
	}
	if *fullScreen {
		features = append(features, feature{req: gui.ReqFullScreen, arg: true})
	}

	err = play(sync, brd, func() (GuiCreator, error) {
		return sdlplay.NewSdlPlay(brd.TV)
	}, features...)
	if err != nil {
		return err
	}

	// save preferences before finishing successfully
	return brd.Instance.Prefs.Save()
}

func termMode(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	flgs := addBoardFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	brd, err := newBoard(instance.Main, flgs, filename)
	if err != nil {
		return err
	}

	return play(sync, brd, func() (GuiCreator, error) {
		return termplay.NewTermPlay(brd.TV, os.Stdin, os.Stdout)
	})
}

func headless(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	flgs := addBoardFlags(md)
	frames := md.AddInt("frames", 60, "number of frames to run")
	wav := md.AddString("wav", "", "record audio to wav file")
	shot := md.AddString("screenshot", "", "save the final frame to a PNG file")
	shotScale := md.AddInt("scale", 1, "scaling of the screenshot")
	load := md.AddString("load", "", "state file to load before running")
	save := md.AddString("save", "", "state file to save after running")
	fpsCap := md.AddBool("fpscap", false, "cap fps to specification")
	dig := md.AddBool("digest", false, "print video and audio digests of the run")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	brd, err := newBoard(instance.Headless, flgs, filename)
	if err != nil {
		return err
	}

	brd.TV.Limiter.Active.Store(*fpsCap)

	var digests []digest.Digest
	if *dig {
		vid, err := digest.NewVideo(brd.TV)
		if err != nil {
			return err
		}
		digests = append(digests, vid, digest.NewAudio(brd.TV))
	}

	if *wav != "" {
		aw, err := wavwriter.New(*wav)
		if err != nil {
			return err
		}
		brd.TV.AddAudioMixer(aw)
	}

	if *load != "" {
		f, err := os.Open(*load)
		if err != nil {
			return err
		}
		err = brd.Load(f)
		f.Close()
		if err != nil {
			return err
		}
	}

	err = brd.RunForFrameCount(*frames, nil)
	if err != nil {
		return err
	}

	// the wav file is written when the television ends
	err = brd.TV.End()
	if err != nil {
		return err
	}

	if *shot != "" {
		err = screenshot.Save(*shot, brd.TV.Frame(), *shotScale)
		if err != nil {
			return err
		}
	}

	if *save != "" {
		f, err := os.Create(*save)
		if err != nil {
			return err
		}
		err = brd.Save(f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(output, "%d frames: %s\n", brd.TV.FrameNum(), brd.CPU)
	for _, d := range digests {
		fmt.Fprintln(output, d)
	}

	return nil
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	flgs := addBoardFlags(md)
	duration := md.AddString("duration", "5s", "run duration (with an additional lead time)")
	profile := md.AddString("profile", "none", "create profile for emulator: CPU, MEM, TRACE or ALL")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	dur, err := time.ParseDuration(*duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	filename, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	brd, err := newBoard(instance.Headless, flgs, filename)
	if err != nil {
		return err
	}

	return performance.Check(output, prf, brd, dur)
}

func disasm(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	bytecode := md.AddBool("bytecode", false, "including bytecode in disassembly")
	decoded := md.AddBool("decoded", false, "include code found only by linear decoding")
	grep := md.AddString("grep", "", "only show instructions containing the string")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	cartload := cartridgeloader.NewLoader(filename)
	cart, err := cartload.Cartridge()
	if err != nil {
		return err
	}

	dsm, err := disassembly.FromCartridge(cart)
	if err != nil {
		return err
	}

	if *grep != "" {
		_, err = dsm.Grep(output, *grep, false)
		return err
	}

	return dsm.Write(output, disassembly.WriteAttr{ByteCode: *bytecode, Decoded: *decoded})
}

func memviz(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	flgs := addBoardFlags(md)
	frames := md.AddInt("frames", 0, "number of frames to run before writing the graph")
	components := md.AddString("components", "", fmt.Sprintf("comma separated list of components: %s",
		strings.Join(reflection.Components(&hardware.Board{}), ",")))
	dot := md.AddString("o", "", "output file. default is a unique name in the working directory")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	brd, err := newBoard(instance.Headless, flgs, filename)
	if err != nil {
		return err
	}
	brd.TV.Limiter.Active.Store(false)

	err = brd.RunForFrameCount(*frames, nil)
	if err != nil {
		return err
	}

	if *dot == "" {
		cartload := cartridgeloader.NewLoader(filename)
		*dot = fmt.Sprintf("%s.dot", paths.UniqueFilename("memviz", cartload.ShortName()))
	}

	var names []string
	if *components != "" {
		names = strings.Split(*components, ",")
	}

	err = reflection.DumpFile(*dot, brd, names...)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "board graph written to %s\n", *dot)

	return nil
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control system (if available)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(output, r)
	}

	return nil
}
