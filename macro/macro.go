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

package macro

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/framepoll/curated"
	"github.com/jetsetilly/framepoll/input"
	"github.com/jetsetilly/framepoll/logger"
	"github.com/jetsetilly/framepoll/userinput"
)

// Sentinel error patterns.
const (
	NotAMacro  = "macro: not a macro file"
	MacroError = "macro: line %d: %v"
)

const (
	headerLineID = iota
	headerLineVersion
	headerNumLines
)

const (
	headerID      = "framepollmacro"
	headerVersion = "1"
)

// number of frames to wait if WAIT has no argument
const defaultWait = 60

type loop struct {
	line int

	// loop counters count upwards because it is more natural when
	// referencing the counter value to think of the counter as counting
	// upwards
	count    int
	countEnd int

	// if loop counter has been named then we need to know it so that we can
	// update the entry in the variables table
	countName string
}

// Macro is a userinput.Source that is driven by a script.
type Macro struct {
	*userinput.Buffer

	instructions []string

	// next instruction to execute
	ln int

	// number of frames to skip before execution continues
	wait int

	loops     []loop
	variables map[string]int

	x, y int

	ended bool
	quit  bool
	err   error
}

// NewMacro is the preferred method of initialisation for the Macro type.
// Instructions are not checked until they are executed.
func NewMacro(script io.Reader) (*Macro, error) {
	b, err := io.ReadAll(script)
	if err != nil {
		return nil, fmt.Errorf("macro: %w", err)
	}

	lines := strings.Split(strings.ReplaceAll(string(b), "\r\n", "\n"), "\n")
	if len(lines) < headerNumLines {
		return nil, curated.Errorf(NotAMacro)
	}
	if strings.TrimSpace(lines[headerLineID]) != headerID {
		return nil, curated.Errorf(NotAMacro)
	}
	if v := strings.TrimSpace(lines[headerLineVersion]); v != headerVersion {
		return nil, curated.Errorf(MacroError, headerLineVersion+1, fmt.Sprintf("unsupported version (%s)", v))
	}

	return &Macro{
		Buffer:       userinput.NewBuffer(),
		instructions: lines[headerNumLines:],
		variables:    make(map[string]int),
	}, nil
}

// Ended returns true if the macro has run out of instructions, has executed
// QUIT or has stopped because of an error.
func (mcr *Macro) Ended() bool {
	return mcr.ended
}

// Quit returns true if the macro has executed the QUIT instruction.
func (mcr *Macro) Quit() bool {
	return mcr.quit
}

// Err returns the error that stopped the macro, if any.
func (mcr *Macro) Err() error {
	return mcr.err
}

// KeyTransitions implements the userinput.Source interface. Each call is a
// new frame.
func (mcr *Macro) KeyTransitions() []userinput.KeyTransition {
	if mcr.wait > 0 {
		mcr.wait--
	} else {
		mcr.step()
	}
	return mcr.Buffer.KeyTransitions()
}

// execute instructions until the frame ends or the macro ends
func (mcr *Macro) step() {
	for !mcr.ended && mcr.wait == 0 {
		if mcr.ln >= len(mcr.instructions) {
			mcr.ended = true
			return
		}

		ln := mcr.ln
		mcr.ln++

		toks := strings.Fields(mcr.instructions[ln])
		if len(toks) == 0 || strings.HasPrefix(toks[0], "--") {
			continue // for loop
		}

		frameEnded, err := mcr.execute(toks)
		if err != nil {
			mcr.err = curated.Errorf(MacroError, ln+headerNumLines+1, err)
			logger.Log(logger.Allow, "macro", mcr.err)
			mcr.ended = true
			return
		}
		if frameEnded {
			return
		}
	}
}

// execute a single instruction. returns true if the frame has ended
func (mcr *Macro) execute(toks []string) (bool, error) {
	args := toks[1:]

	switch toks[0] {
	case "DO":
		if len(args) < 1 || len(args) > 2 {
			return false, fmt.Errorf("DO requires a count and an optional name")
		}
		ct, err := mcr.number(args[0])
		if err != nil {
			return false, err
		}
		if ct < 1 {
			return false, fmt.Errorf("DO count must be at least one")
		}
		lp := loop{line: mcr.ln, countEnd: ct}
		if len(args) == 2 {
			lp.countName = args[1]
			mcr.variables[lp.countName] = lp.count
		}
		mcr.loops = append(mcr.loops, lp)

	case "LOOP":
		if err := expectArgs(toks, 0); err != nil {
			return false, err
		}
		idx := len(mcr.loops) - 1
		if idx == -1 {
			return false, fmt.Errorf("LOOP without a DO")
		}

		lp := &mcr.loops[idx]
		lp.count++

		if lp.count < lp.countEnd {
			mcr.ln = lp.line
			if lp.countName != "" {
				mcr.variables[lp.countName] = lp.count
			}
		} else {
			mcr.loops = mcr.loops[:idx]
			delete(mcr.variables, lp.countName)
		}

	case "WAIT":
		w := defaultWait
		switch len(args) {
		case 0:
		case 1:
			var err error
			w, err = mcr.number(args[0])
			if err != nil {
				return false, err
			}
			if w < 1 {
				return false, fmt.Errorf("WAIT must be for at least one frame")
			}
		default:
			return false, fmt.Errorf("too many arguments for WAIT")
		}

		// the current frame counts as the first frame
		mcr.wait = w - 1
		return true, nil

	case "PRESS", "RELEASE", "TAP":
		if err := expectArgs(toks, 1); err != nil {
			return false, err
		}
		code, ok := input.KeyCode(strings.ToUpper(args[0]))
		if !ok {
			return false, fmt.Errorf("unrecognised key (%s)", args[0])
		}
		if toks[0] != "RELEASE" {
			mcr.PushKey(userinput.KeyTransition{Code: code, Down: true})
		}
		if toks[0] != "PRESS" {
			mcr.PushKey(userinput.KeyTransition{Code: code, Down: false})
		}

	case "TYPE":
		if len(args) == 0 {
			return false, fmt.Errorf("TYPE requires text")
		}
		for _, r := range strings.Join(args, " ") {
			code, ok := input.RuneKey(r)
			if !ok {
				return false, fmt.Errorf("cannot type character (%q)", r)
			}
			mcr.PushKey(userinput.KeyTransition{Code: code, Char: r, Down: true})
			mcr.PushKey(userinput.KeyTransition{Code: code, Char: r, Down: false})
		}

	case "MOVE":
		if err := expectArgs(toks, 2); err != nil {
			return false, err
		}
		x, err := mcr.number(args[0])
		if err != nil {
			return false, err
		}
		y, err := mcr.number(args[1])
		if err != nil {
			return false, err
		}
		mcr.x, mcr.y = x, y
		mcr.SetPointerPosition(x, y)

	case "MOUSEDOWN", "MOUSEUP", "CLICK":
		if err := expectArgs(toks, 1); err != nil {
			return false, err
		}
		b, err := mcr.number(args[0])
		if err != nil {
			return false, err
		}
		if b < 0 || b >= input.MaxMouseButtons {
			return false, fmt.Errorf("button out of range (%d)", b)
		}
		if toks[0] != "MOUSEUP" {
			mcr.PushPointer(userinput.PointerTransition{Button: b, Down: true, X: mcr.x, Y: mcr.y})
		}
		if toks[0] != "MOUSEDOWN" {
			mcr.PushPointer(userinput.PointerTransition{Button: b, Down: false, X: mcr.x, Y: mcr.y})
		}

	case "WHEEL":
		if err := expectArgs(toks, 1); err != nil {
			return false, err
		}
		w, err := mcr.number(args[0])
		if err != nil {
			return false, err
		}
		mcr.PushPointer(userinput.PointerTransition{Button: userinput.NoButton, X: mcr.x, Y: mcr.y, Wheel: w})

	case "FOCUS", "UNFOCUS":
		if err := expectArgs(toks, 0); err != nil {
			return false, err
		}
		mcr.SetFocused(toks[0] == "FOCUS")

	case "GRAB", "UNGRAB":
		if err := expectArgs(toks, 0); err != nil {
			return false, err
		}
		mcr.SetPointerGrabbed(toks[0] == "GRAB")

	case "QUIT":
		if err := expectArgs(toks, 0); err != nil {
			return false, err
		}
		mcr.quit = true
		mcr.ended = true
		return true, nil

	default:
		return false, fmt.Errorf("unrecognised instruction (%s)", toks[0])
	}

	return false, nil
}

func expectArgs(toks []string, n int) error {
	if len(toks)-1 != n {
		return fmt.Errorf("%s requires %d arguments", toks[0], n)
	}
	return nil
}

// number converts an argument to an int. arguments beginning with % are
// loop variables
func (mcr *Macro) number(s string) (int, error) {
	if strings.HasPrefix(s, "%") {
		v, ok := mcr.variables[s[1:]]
		if !ok {
			return 0, fmt.Errorf("variable does not exist (%s)", s[1:])
		}
		return v, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("not a number (%s)", s)
	}
	return n, nil
}
