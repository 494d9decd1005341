// This file is part of Framepoll.
//
// Framepoll is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Framepoll is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Framepoll.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jetsetilly/framepoll/macro"
	"github.com/jetsetilly/framepoll/modalflag"
	"github.com/jetsetilly/framepoll/recorder"
	"github.com/jetsetilly/framepoll/remotepoll"
	"github.com/jetsetilly/framepoll/sdlpoll"
	"github.com/jetsetilly/framepoll/termpoll"
	"github.com/jetsetilly/framepoll/ttypoll"
	"github.com/jetsetilly/framepoll/version"
)

// SDL requires that window events are handled by the main thread
func init() {
	runtime.LockOSThread()
}

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args any
}

// MainThreadService is implemented by sources that must be created, serviced
// and destroyed by the main thread.
type MainThreadService interface {
	// Service should not pause or loop. It is called repeatedly by the main
	// thread loop.
	Service()

	// cleanup resources used by the source
	Destroy(io.Writer)
}

// communication between the main() function and the launch() function
type mainSync struct {
	state   chan stateRequest
	creator chan func() (MainThreadService, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan MainThreadService
	creationError chan error

	// interrupt signals are forwarded so that the frame loop can end cleanly
	interrupt chan bool
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (MainThreadService, error)),
		creation:      make(chan MainThreadService),
		creationError: make(chan error),
		interrupt:     make(chan bool, 1),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync)

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new source creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created
	//     source
	done := false
	var svc MainThreadService
	for !done {
		select {
		case <-intChan:
			// a second interrupt while the first is still pending ends the
			// program immediately
			select {
			case sync.interrupt <- true:
			default:
				fmt.Println("\r")
				done = true
			}

		case creator := <-sync.creator:
			if svc != nil {
				svc.Destroy(os.Stderr)
				svc = nil
			}

			s, err := creator()
			if err != nil {
				sync.creationError <- err
			} else {
				svc = s
				sync.creation <- svc
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if svc != nil {
					svc.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}

		default:
			if svc != nil {
				svc.Service()
			}
			time.Sleep(time.Millisecond)
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// request source creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("SDL", "TERM", "TTY", "REMOTE", "PLAYBACK", "MACRO")
	showVersion := md.AddBool("version", false, "print version and exit")

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

	if *showVersion {
		fmt.Println(version.String())
		sync.state <- stateRequest{req: reqQuit}
		return
	}

	switch md.Mode() {
	case "SDL":
		err = sdlMode(md, sync)
	case "TERM":
		err = termMode(md, sync)
	case "TTY":
		err = ttyMode(md, sync)
	case "REMOTE":
		err = remoteMode(md, sync)
	case "PLAYBACK":
		err = playbackMode(md, sync)
	case "MACRO":
		err = macroMode(md, sync)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// sdlService adapts sdlpoll.Source to the MainThreadService interface
type sdlService struct {
	*sdlpoll.Source
}

func (svc sdlService) Destroy(output io.Writer) {
	if err := svc.Source.Destroy(); err != nil {
		fmt.Fprintf(output, "* %v\n", err)
	}
}

func sdlMode(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	opts := addOptions(md)
	width := md.AddInt("width", 640, "width of window")
	height := md.AddInt("height", 480, "height of window")
	grab := md.AddBool("grab", false, "grab the pointer")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	sync.creator <- func() (MainThreadService, error) {
		src, err := sdlpoll.NewSource(version.ApplicationName, *width, *height)
		if err != nil {
			return nil, err
		}
		src.SetGrabbed(*grab)
		return sdlService{Source: src}, nil
	}

	var src *sdlpoll.Source
	select {
	case svc := <-sync.creation:
		src = svc.(sdlService).Source
	case err := <-sync.creationError:
		return err
	}

	return run(opts, host{
		mode:      md.Mode(),
		src:       src,
		size:      src.Size,
		quit:      src.Quit,
		output:    os.Stdout,
		interrupt: sync.interrupt,
	})
}

func termMode(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	opts := addOptions(md)

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	src, err := termpoll.NewSource(screen)
	if err != nil {
		return err
	}
	defer src.Close()

	return run(opts, host{
		mode:      md.Mode(),
		src:       src,
		size:      src.Size,
		quit:      src.Quit,
		output:    newScreenLog(screen),
		interrupt: sync.interrupt,
	})
}

func ttyMode(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	opts := addOptions(md)
	tty := md.AddString("tty", ttypoll.DefaultTTY, "terminal device to read from")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	src, err := ttypoll.NewSource(*tty)
	if err != nil {
		return err
	}
	defer src.Close()

	return run(opts, host{
		mode:      md.Mode(),
		src:       src,
		quit:      src.Quit,
		output:    crlfWriter{w: os.Stdout},
		interrupt: sync.interrupt,
	})
}

func remoteMode(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	opts := addOptions(md)
	addr := md.AddString("addr", "localhost:12601", "address to listen on")
	width := md.AddInt("width", 640, "width of the remote view")
	height := md.AddInt("height", 480, "height of the remote view")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	src := remotepoll.NewServer()
	mux := http.NewServeMux()
	mux.Handle("/input", src)
	srv := &http.Server{Addr: *addr, Handler: mux}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("* %v\n", err)
		}
	}()
	defer srv.Close()

	fmt.Printf("input available at ws://%s/input\n", *addr)

	return run(opts, host{
		mode:      md.Mode(),
		src:       src,
		size:      func() (int, int) { return *width, *height },
		output:    os.Stdout,
		interrupt: sync.interrupt,
	})
}

func playbackMode(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	opts := addOptions(md)
	width := md.AddInt("width", 640, "width of the view at the time of recording")
	height := md.AddInt("height", 480, "height of the view at the time of recording")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("a single transcript file is required")
	}

	f, err := os.Open(md.GetArg(0))
	if err != nil {
		return err
	}
	defer f.Close()

	plb, err := recorder.NewPlayback(f)
	if err != nil {
		return err
	}

	return run(opts, host{
		mode: md.Mode(),
		src:  plb,
		size: func() (int, int) { return *width, *height },
		quit: func() bool {
			if err := plb.Ended(); err != nil {
				fmt.Println(err)
				return true
			}
			return false
		},
		output:    os.Stdout,
		interrupt: sync.interrupt,
	})
}

func macroMode(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	opts := addOptions(md)
	width := md.AddInt("width", 640, "width of the view")
	height := md.AddInt("height", 480, "height of the view")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("a single macro file is required")
	}

	f, err := os.Open(md.GetArg(0))
	if err != nil {
		return err
	}
	defer f.Close()

	mcr, err := macro.NewMacro(f)
	if err != nil {
		return err
	}

	err = run(opts, host{
		mode:      md.Mode(),
		src:       mcr,
		size:      func() (int, int) { return *width, *height },
		quit:      mcr.Ended,
		output:    os.Stdout,
		interrupt: sync.interrupt,
	})
	if err != nil {
		return err
	}
	return mcr.Err()
}
