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

package termpoll

import (
	"github.com/gdamore/tcell/v2"
	"github.com/jetsetilly/framepoll/input"
	"github.com/jetsetilly/framepoll/logger"
	"github.com/jetsetilly/framepoll/userinput"
)

// number of events that can be queued between frames.
const queueLength = 256

// tcell keys that are not characters
var specialKeys = map[tcell.Key]int{
	tcell.KeyEnter:      input.KeyReturn,
	tcell.KeyEscape:     input.KeyEscape,
	tcell.KeyTab:        input.KeyTab,
	tcell.KeyBackspace:  input.KeyBack,
	tcell.KeyBackspace2: input.KeyBack,
	tcell.KeyDelete:     input.KeyDelete,
	tcell.KeyInsert:     input.KeyInsert,
	tcell.KeyHome:       input.KeyHome,
	tcell.KeyEnd:        input.KeyEnd,
	tcell.KeyPgUp:       input.KeyPrior,
	tcell.KeyPgDn:       input.KeyNext,
	tcell.KeyUp:         input.KeyUp,
	tcell.KeyDown:       input.KeyDown,
	tcell.KeyLeft:       input.KeyLeft,
	tcell.KeyRight:      input.KeyRight,
	tcell.KeyF1:         input.KeyF1,
	tcell.KeyF2:         input.KeyF2,
	tcell.KeyF3:         input.KeyF3,
	tcell.KeyF4:         input.KeyF4,
	tcell.KeyF5:         input.KeyF5,
	tcell.KeyF6:         input.KeyF6,
	tcell.KeyF7:         input.KeyF7,
	tcell.KeyF8:         input.KeyF8,
	tcell.KeyF9:         input.KeyF9,
	tcell.KeyF10:        input.KeyF10,
	tcell.KeyF11:        input.KeyF11,
	tcell.KeyF12:        input.KeyF12,
}

// characters for special keys that produce one
var specialChars = map[tcell.Key]rune{
	tcell.KeyEnter:      '\r',
	tcell.KeyEscape:     0x1b,
	tcell.KeyTab:        '\t',
	tcell.KeyBackspace:  '\b',
	tcell.KeyBackspace2: '\b',
}

// mouse buttons in the order of the input mouse button numbers
var buttonMasks = []tcell.ButtonMask{
	tcell.Button1,
	tcell.Button2,
	tcell.Button3,
}

// Source services the events of a tcell.Screen.
type Source struct {
	*userinput.Buffer

	screen tcell.Screen
	events chan tcell.Event

	// mouse buttons down at the time of the previous mouse event
	buttons tcell.ButtonMask

	// set by Ctrl-C
	quit bool
}

// NewSource initialises the screen and starts servicing its events. Mouse
// and focus reporting are enabled.
func NewSource(screen tcell.Screen) (*Source, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.EnableFocus()

	src := &Source{
		Buffer: userinput.NewBuffer(),
		screen: screen,
		events: make(chan tcell.Event, queueLength),
	}

	// PollEvent() returns nil once the screen has been closed
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case src.events <- ev:
			default:
				logger.Log(logger.Allow, "termpoll", "dropped event")
			}
		}
	}()

	return src, nil
}

// Close the screen, restoring the terminal.
func (src *Source) Close() {
	src.screen.Fini()
}

// Size returns the size of the screen in cells.
func (src *Source) Size() (int, int) {
	return src.screen.Size()
}

// Quit returns true if Ctrl-C has been pressed.
func (src *Source) Quit() bool {
	return src.quit
}

// KeyTransitions implements the userinput.Source interface. Events queued
// since the previous call are serviced before the key transitions are
// returned.
func (src *Source) KeyTransitions() []userinput.KeyTransition {
	src.service()
	return src.Buffer.KeyTransitions()
}

// service all queued events without blocking
func (src *Source) service() {
	for {
		select {
		case ev := <-src.events:
			src.serviceEvent(ev)
		default:
			return
		}
	}
}

func (src *Source) serviceEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		src.serviceKey(ev)

	case *tcell.EventMouse:
		src.serviceMouse(ev)

	case *tcell.EventFocus:
		src.SetFocused(ev.Focused)
	}
}

func (src *Source) serviceKey(ev *tcell.EventKey) {
	var code int
	var char rune

	switch ev.Key() {
	case tcell.KeyRune:
		char = ev.Rune()
		code, _ = input.RuneKey(char)
	case tcell.KeyCtrlC:
		src.quit = true
		return
	default:
		var ok bool
		code, ok = specialKeys[ev.Key()]
		if !ok {
			logger.Logf(logger.Allow, "termpoll", "unmapped key (%s)", ev.Name())
			return
		}
		char = specialChars[ev.Key()]
	}

	src.PushKey(userinput.KeyTransition{Code: code, Char: char, Down: true})
	src.PushKey(userinput.KeyTransition{Code: code, Char: char, Down: false})
}

func (src *Source) serviceMouse(ev *tcell.EventMouse) {
	_, height := src.screen.Size()
	x, y := ev.Position()
	y = height - y

	btns := ev.Buttons()
	for b, m := range buttonMasks {
		down := btns&m == m
		if down != (src.buttons&m == m) {
			src.PushPointer(userinput.PointerTransition{Button: b, Down: down, X: x, Y: y})
		}
	}
	src.buttons = btns

	wheel := 0
	if btns&tcell.WheelUp == tcell.WheelUp {
		wheel++
	}
	if btns&tcell.WheelDown == tcell.WheelDown {
		wheel--
	}
	if wheel != 0 {
		src.PushPointer(userinput.PointerTransition{Button: userinput.NoButton, X: x, Y: y, Wheel: wheel})
	}

	src.SetPointerPosition(x, y)
}
