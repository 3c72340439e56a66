// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/hexkey/gopher8/disassembly"
	"github.com/hexkey/gopher8/gui"
	"github.com/hexkey/gopher8/gui/sdlaudio"
	"github.com/hexkey/gopher8/gui/sdldisplay"
	"github.com/hexkey/gopher8/hardware"
	"github.com/hexkey/gopher8/hardware/cpu"
	"github.com/hexkey/gopher8/logger"
	"github.com/hexkey/gopher8/modalflag"
	"github.com/hexkey/gopher8/performance"
	"github.com/hexkey/gopher8/playmode"
	"github.com/hexkey/gopher8/prefs"
	"github.com/hexkey/gopher8/romloader"
	"github.com/hexkey/gopher8/statsview"
	"github.com/hexkey/gopher8/version"
	"github.com/hexkey/gopher8/wavwriter"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative handler is
	// more appropriate. for example, the playmode package provides a mode
	// specific handler.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
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

	// Service() should not pause or loop longer than necessary (if at all).
	// It MUST ONLY be called as part of a larger loop from the main thread.
	// It should service all gui events that are not safe to do in
	// sub-threads.
	Service()
}

// communication between the main() function and the launch() function. this
// is required because many gui solutions (notably SDL) require window event
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

	// fallback ctrl-c handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through the
	// mainSync instance
	go launch(sync)

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	//
	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err

				// make sure the interface value is nil and not a non-nil
				// interface wrapping a nil instance
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
			// service the gui if there is one. wait rather than spin when
			// there is not
			if gui != nil {
				gui.Service()
			} else {
				time.Sleep(10 * time.Millisecond)
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PLAY", "DISASM", "PERFORMANCE")

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
		fallthrough

	case "PLAY":
		err = play(md, sync)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

func play(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	frequency := md.AddInt("frequency", cpu.DefaultFrequency, "execution frequency in instructions per second (0 for unlimited)")
	scaling := md.AddFloat64("scale", 0.0, "display scaling")
	wav := md.AddString("wav", "", "record audio to wav file")
	prf := md.AddString("prefs", "", "preference values for this session only (\"key::value; key::value\")")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("CHIP-8 program required for %s mode", md)
	case 1:
		ver, rev, _ := version.Version()
		logger.Logf("gopher8", "version: %s (%s)", ver, rev)

		loader, err := romloader.NewLoader(md.GetArg(0))
		if err != nil {
			return err
		}

		// bespoke preference values for this session only. the stack is
		// popped again once the hardware has been created
		prefs.PushCommandLineStack(*prf)

		c8, err := hardware.NewChip8()
		if err != nil {
			return err
		}
		c8.CPU.Frequency = *frequency

		unused := prefs.PopCommandLineStack()
		if unused != "" {
			logger.Logf("gopher8", "%s unused", unused)
		}

		err = c8.AttachROM(loader)
		if err != nil {
			return err
		}

		// create gui
		sync.creator <- func() (GuiCreator, error) {
			return sdldisplay.NewDisplay(c8.Scr, c8.Key, float32(*scaling), loader.ShortName())
		}

		// wait for creator result
		var scr gui.GUI
		select {
		case g := <-sync.creation:
			scr = g.(gui.GUI)
		case err := <-sync.creationError:
			return err
		}

		// sound is mixed by SDL for the speakers and additionally recorded
		// to a wav file when one has been named
		aud, err := sdlaudio.NewAudio()
		if err != nil {
			return err
		}
		c8.Snd.AddMixer(aud)

		if *wav != "" {
			aw, err := wavwriter.New(*wav)
			if err != nil {
				return err
			}
			c8.Snd.AddMixer(aw)
		}

		// turn off fallback ctrl-c handling. this so that the playmode can
		// end the session gracefully
		sync.state <- stateRequest{req: reqNoIntSig}

		err = playmode.Play(c8, scr)
		if err != nil {
			return err
		}

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("CHIP-8 program required for %s mode", md)
	case 1:
		attr := disassembly.WriteAttr{
			ByteCode: *bytecode,
		}

		loader, err := romloader.NewLoader(md.GetArg(0))
		if err != nil {
			return err
		}

		dsm := disassembly.FromLoader(loader)

		err = dsm.Write(md.Output, attr)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	frequency := md.AddInt("frequency", 0, "execution frequency in instructions per second (0 for unlimited)")
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddBool("profile", false, "produce cpu and memory profiling reports")
	stats := md.AddBool("statsview", false, "run stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(md.Output)
		} else {
			return fmt.Errorf("statsview is not available in this build (requires the statsview build constraint)")
		}
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("CHIP-8 program required for %s mode", md)
	case 1:
		loader, err := romloader.NewLoader(md.GetArg(0))
		if err != nil {
			return err
		}

		err = performance.Check(md.Output, *profile, loader, *frequency, *duration)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}
