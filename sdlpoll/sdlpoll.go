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

package sdlpoll

import (
	"fmt"
	"sync/atomic"
	"unicode/utf8"

	"github.com/jetsetilly/framepoll/logger"
	"github.com/jetsetilly/framepoll/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// Source services the SDL event queue of a window. Transitions are pushed to
// the embedded userinput.Buffer, which implements the userinput.Source
// interface.
type Source struct {
	*userinput.Buffer

	window *sdl.Window
	quit   atomic.Bool

	// key transitions collected during a call to Service(). text input events
	// follow the key press they belong to so the transitions are held back
	// until the event queue has been drained
	keys []userinput.KeyTransition

	joysticks []*joystick
}

// NewSource creates a window of the specified size and a Source that services
// its events. Must be called from the main thread.
func NewSource(title string, width int, height int) (*Source, error) {
	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("sdlpoll: %w", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdlpoll", "version: %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	src := &Source{
		Buffer: userinput.NewBuffer(),
	}

	src.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height),
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdlpoll: %w", err)
	}

	return src, nil
}

// Destroy the window and close any open controllers. Must be called from the
// main thread.
func (src *Source) Destroy() error {
	for _, j := range src.joysticks {
		j.joy.Close()
	}
	src.joysticks = nil

	if src.window != nil {
		err := src.window.Destroy()
		if err != nil {
			return fmt.Errorf("sdlpoll: %w", err)
		}
		src.window = nil
	}
	sdl.Quit()

	return nil
}

// Size returns the size of the window.
func (src *Source) Size() (int, int) {
	w, h := src.window.GetSize()
	return int(w), int(h)
}

// Quit returns true if the window has been closed.
func (src *Source) Quit() bool {
	return src.quit.Load()
}

// SetGrabbed changes whether the pointer is grabbed by the window. A grabbed
// pointer is hidden and reports relative motion only. Must be called from the
// main thread.
func (src *Source) SetGrabbed(grabbed bool) {
	sdl.SetRelativeMouseMode(grabbed)
	src.SetPointerGrabbed(sdl.GetRelativeMouseMode())
}

// Service drains the SDL event queue. Must be called from the main thread.
func (src *Source) Service() {
	_, height := src.window.GetSize()

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			src.quit.Store(true)

		case *sdl.WindowEvent:
			switch ev.Event {
			case sdl.WINDOWEVENT_FOCUS_GAINED:
				src.SetFocused(true)
			case sdl.WINDOWEVENT_FOCUS_LOST:
				src.SetFocused(false)
			case sdl.WINDOWEVENT_CLOSE:
				src.quit.Store(true)
			}

		case *sdl.KeyboardEvent:
			src.serviceKeyboard(ev)

		case *sdl.TextInputEvent:
			src.serviceText(ev)

		case *sdl.MouseButtonEvent:
			src.PushPointer(userinput.PointerTransition{
				Button: button(ev.Button),
				Down:   ev.Type == sdl.MOUSEBUTTONDOWN,
				X:      int(ev.X),
				Y:      int(height - ev.Y),
			})

		case *sdl.MouseMotionEvent:
			x := int(ev.X)
			y := int(height - ev.Y)
			src.SetPointerPosition(x, y)
			if sdl.GetRelativeMouseMode() {
				src.PushPointer(userinput.PointerTransition{
					Button: userinput.NoButton,
					X:      x,
					Y:      y,
					DX:     int(ev.XRel),
					DY:     -int(ev.YRel),
				})
			}

		case *sdl.MouseWheelEvent:
			wheel := int(ev.Y)
			if ev.Direction == sdl.MOUSEWHEEL_FLIPPED {
				wheel = -wheel
			}
			if wheel != 0 {
				x, y := src.PointerPosition()
				src.PushPointer(userinput.PointerTransition{
					Button: userinput.NoButton,
					X:      x,
					Y:      y,
					Wheel:  wheel,
				})
			}
		}
	}

	src.flushKeys()

	// joystick state is updated by the event loop but only if joystick
	// events are enabled. update explicitly in case they are not
	if len(src.joysticks) > 0 {
		sdl.JoystickUpdate()
	}
}

// push the key transitions collected by Service() to the Buffer
func (src *Source) flushKeys() {
	for _, k := range src.keys {
		src.PushKey(k)
	}
	src.keys = src.keys[:0]
}

func (src *Source) serviceKeyboard(ev *sdl.KeyboardEvent) {
	// key repeat is handled by the input system
	if ev.Repeat != 0 {
		return
	}

	code := keyCode(ev.Keysym.Scancode)
	if code == 0 {
		logger.Logf(logger.Allow, "sdlpoll", "unmapped scancode (%d)", ev.Keysym.Scancode)
	}

	src.keys = append(src.keys, userinput.KeyTransition{
		Code: code,
		Down: ev.Type == sdl.KEYDOWN,
	})
}

// the character for a key press is delivered as a separate event, after the
// key press event. the character is added to the most recent key press that
// has not yet been given a character
func (src *Source) serviceText(ev *sdl.TextInputEvent) {
	r, _ := utf8.DecodeRune(ev.Text[:])
	if r == utf8.RuneError {
		return
	}
	for i := len(src.keys) - 1; i >= 0; i-- {
		if src.keys[i].Down {
			if src.keys[i].Char == 0 {
				src.keys[i].Char = r
			}
			return
		}
	}
}
