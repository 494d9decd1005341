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

package input

import (
	"time"

	"github.com/jetsetilly/framepoll/logger"
	"github.com/jetsetilly/framepoll/userinput"
)

type keyLatch struct {
	// the character of the most recent press
	char rune

	// one-shot latch. set on press and cleared when read by IsKeyPressed()
	pressed bool

	// the edge detection state
	held bool

	// zero if the key is not repeating
	nextRepeat time.Time
}

// remap key codes that are outside the valid range.
func validKeyCode(code int) int {
	if code < 0 || code >= KeyCount {
		logger.Logf(logger.Allow, "input", "key code out of range (%d)", code)
		return KeyUnknown
	}
	return code
}

func (inp *Input) keyTransition(now time.Time, k userinput.KeyTransition) {
	code := validKeyCode(k.Code)
	l := &inp.keys[code]

	if k.Down {
		if l.held {
			return
		}
		l.held = true
		l.char = k.Char
		l.pressed = true
		l.nextRepeat = now.Add(inp.repeatInitial)

		dispatch(inp, &inp.keyListeners, func(kl KeyListener) {
			kl.KeyPressed(code, k.Char)
		})
		return
	}

	if !l.held {
		return
	}
	l.held = false
	l.nextRepeat = time.Time{}

	dispatch(inp, &inp.keyListeners, func(kl KeyListener) {
		kl.KeyReleased(code, l.char)
	})
}

// repeat notifies key listeners of a press for every held key with an
// expired repeat deadline.
func (inp *Input) repeat(now time.Time) {
	for code := range inp.keys {
		l := &inp.keys[code]
		if !l.held || l.nextRepeat.IsZero() || !now.After(l.nextRepeat) {
			continue
		}

		l.nextRepeat = now.Add(inp.repeatInterval)

		dispatch(inp, &inp.keyListeners, func(kl KeyListener) {
			kl.KeyPressed(code, l.char)
		})
	}
}

// discard transitions that arrive while paused. the edge detection state is
// kept in step with the hardware so that a key released while paused is not
// held forever.
func (inp *Input) discard(keys []userinput.KeyTransition, pointer []userinput.PointerTransition) {
	for _, k := range keys {
		l := &inp.keys[validKeyCode(k.Code)]
		l.held = k.Down
		l.nextRepeat = time.Time{}
	}
	for _, p := range pointer {
		if p.Button >= 0 && p.Button < MaxMouseButtons {
			inp.buttons[p.Button].held = p.Down
		}
	}
}

// resync the edge detection state with the source when focus returns. a
// release may have been missed while the view was unfocused, so a key or
// button is no longer held if the source reports it as up and it has no
// transition waiting, or if its first waiting transition is a press. no
// release event is emitted
func (inp *Input) resync(keys []userinput.KeyTransition, pointer []userinput.PointerTransition) {
	firstKey := make(map[int]bool)
	for _, k := range keys {
		code := k.Code
		if code < 0 || code >= KeyCount {
			code = KeyUnknown
		}
		if _, ok := firstKey[code]; !ok {
			firstKey[code] = k.Down
		}
	}

	for code := range inp.keys {
		l := &inp.keys[code]
		if !l.held {
			continue
		}
		down, ok := firstKey[code]
		if (ok && down) || (!ok && !inp.src.KeyDown(code)) {
			l.held = false
			l.nextRepeat = time.Time{}
		}
	}

	firstButton := make(map[int]bool)
	for _, p := range pointer {
		if p.Button < 0 || p.Button >= MaxMouseButtons {
			continue
		}
		if _, ok := firstButton[p.Button]; !ok {
			firstButton[p.Button] = p.Down
		}
	}

	for b := range inp.buttons {
		l := &inp.buttons[b]
		if !l.held {
			continue
		}
		down, ok := firstButton[b]
		if (ok && down) || (!ok && !inp.src.ButtonDown(b)) {
			l.held = false
			l.pressValid = false
		}
	}
}
