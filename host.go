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
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/framepoll/command"
	"github.com/jetsetilly/framepoll/input"
	"github.com/jetsetilly/framepoll/logger"
	"github.com/jetsetilly/framepoll/modalflag"
	"github.com/jetsetilly/framepoll/paths"
	"github.com/jetsetilly/framepoll/prefs"
	"github.com/jetsetilly/framepoll/recorder"
	"github.com/jetsetilly/framepoll/statsview"
	"github.com/jetsetilly/framepoll/userinput"
)

// the command that ends the frame loop
const cmdQuit command.Command = "quit"

// options common to every mode
type options struct {
	record    *string
	log       *bool
	statsview *bool
	memviz    *string
	prefs     *string
	repeat    *bool
	fps       *int
}

func addOptions(md *modalflag.Modes) options {
	return options{
		record:    md.AddString("record", "", "record input to file. a directory will be given a unique filename"),
		log:       md.AddBool("log", false, "echo log to stdout"),
		statsview: md.AddBool("statsview", false, "run stats server"),
		memviz:    md.AddString("memviz", "", "write graph of input state to file on exit"),
		prefs:     md.AddString("prefs", "", "preferences for this session only (eg. \"input.doubleclick::400\")"),
		repeat:    md.AddBool("repeat", false, "enable key repeat for this session"),
		fps:       md.AddInt("fps", 60, "frames per second"),
	}
}

// host describes the source chosen by the mode
type host struct {
	mode string
	src  userinput.Source

	// size of the view. nil if the source has no view
	size func() (int, int)

	// quit is checked after every frame. can be nil
	quit func() bool

	// where events are printed
	output io.Writer

	interrupt chan bool
}

// run the frame loop until the quit command, the quit function of the host or
// an interrupt
func run(opts options, h host) (rerr error) {
	if *opts.log {
		logger.SetEcho(h.output, true)
		defer logger.SetEcho(nil, false)
	}

	if *opts.statsview {
		statsview.Launch(h.output)
	}

	if *opts.fps <= 0 {
		return fmt.Errorf("fps must be greater than zero")
	}

	src := h.src
	if *opts.record != "" {
		rec, err := startRecording(*opts.record, h.mode, src)
		if err != nil {
			return err
		}
		defer func() {
			err := rec.end()
			if rerr == nil {
				rerr = err
			}
		}()
		src = rec
	}

	width, height := 0, 0
	if h.size != nil {
		width, height = h.size()
	}

	inp := input.NewInput(src, height)

	if *opts.prefs != "" {
		prefs.PushCommandLineStack(*opts.prefs)
	}
	if *opts.repeat {
		prefs.PushCommandLineStack("input.keyrepeat::true")
	}
	defer func() {
		for prefs.SizeCommandLineStack() > 0 {
			prefs.PopCommandLineStack()
		}
	}()

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return err
	}
	if _, err := input.NewPreferences(inp, pth); err != nil {
		return err
	}
	hp, err := newHostPrefs(pth)
	if err != nil {
		return err
	}

	// a failure is logged by the input system and is not fatal
	_ = inp.InitControllers()

	printer := &eventPrinter{output: h.output}
	inp.AddListener(printer)

	cmds, err := newCommands(inp, hp.Bindings.String(), h.output)
	if err != nil {
		return err
	}
	defer cmds.Detach()

	if *opts.memviz != "" {
		defer func() {
			err := writeMemviz(*opts.memviz, inp)
			if rerr == nil {
				rerr = err
			}
		}()
	}

	fmt.Fprintf(h.output, "%s mode. press escape to quit\n", strings.ToLower(h.mode))

	ticker := time.NewTicker(time.Second / time.Duration(*opts.fps))
	defer ticker.Stop()

	for {
		select {
		case <-h.interrupt:
			return nil
		case <-ticker.C:
		}

		if h.size != nil {
			width, height = h.size()
		}
		inp.Poll(width, height)

		if cmds.IsCommandControlPressed(cmdQuit) {
			return nil
		}
		if h.quit != nil && h.quit() {
			return nil
		}
	}
}

// preferences of the host program. they are stored in the same file as the
// input preferences
type hostPrefs struct {
	dsk *prefs.Disk

	// name of the bindings file in the resource directory
	Bindings prefs.String
}

// maximum length of the bindings filename
const maxBindingsName = 64

func newHostPrefs(pth string) (*hostPrefs, error) {
	hp := &hostPrefs{}

	hp.Bindings.SetMaxLen(maxBindingsName)
	hp.Bindings.SetHookPre(func(v prefs.Value) error {
		s := v.(string)
		if s == "" || strings.ContainsAny(s, `/\`) {
			return fmt.Errorf("bindings must be a filename without a directory (%q)", s)
		}
		return nil
	})
	if err := hp.Bindings.Set(command.DefaultBindingsFile); err != nil {
		return nil, err
	}

	var err error
	hp.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	if err := hp.dsk.Add("framepoll.bindings", &hp.Bindings); err != nil {
		return nil, err
	}
	if err := hp.dsk.Load(true); err != nil {
		return nil, err
	}

	return hp, nil
}

// commands wraps a command.Provider and prints the commands as they happen
type commands struct {
	*command.Provider
	output io.Writer
}

// newCommands attaches a command.Provider to the Input and loads the bindings
// from the named file in the resource directory. the quit command is always
// bound to something
func newCommands(inp *input.Input, bindings string, output io.Writer) (*commands, error) {
	pth, err := paths.ResourcePath("", bindings)
	if err != nil {
		return nil, err
	}

	cmds := &commands{
		Provider: command.NewProvider(inp),
		output:   output,
	}

	if err := cmds.Load(pth); err != nil {
		logger.Log(logger.Allow, "framepoll", err)
	}
	if len(cmds.ControlsFor(cmdQuit)) == 0 {
		cmds.Bind(command.KeyControl{Key: input.KeyEscape}, cmdQuit)
	}

	cmds.AddListener(cmds)

	return cmds, nil
}

func (cmds *commands) ControlPressed(cmd command.Command) {
	fmt.Fprintf(cmds.output, "command %s pressed\n", cmd)
}

func (cmds *commands) ControlReleased(cmd command.Command) {
	fmt.Fprintf(cmds.output, "command %s released\n", cmd)
}

// recording wraps a recorder.Recorder and the file it is writing to
type recording struct {
	*recorder.Recorder
	f *os.File
}

func startRecording(pth string, mode string, src userinput.Source) (*recording, error) {
	if fi, err := os.Stat(pth); err == nil && fi.IsDir() {
		pth = filepath.Join(pth, paths.UniqueFilename("transcript", strings.ToLower(mode)))
	}

	f, err := os.Create(pth)
	if err != nil {
		return nil, err
	}

	rec, err := recorder.NewRecorder(src, f)
	if err != nil {
		f.Close()
		return nil, err
	}

	logger.Logf(logger.Allow, "framepoll", "recording to %s", pth)

	return &recording{Recorder: rec, f: f}, nil
}

func (rec *recording) end() error {
	err := rec.End()
	if cerr := rec.f.Close(); err == nil {
		err = cerr
	}
	return err
}

func writeMemviz(pth string, inp *input.Input) error {
	f, err := os.Create(pth)
	if err != nil {
		return err
	}
	defer f.Close()
	memviz.Map(f, inp)
	return nil
}
