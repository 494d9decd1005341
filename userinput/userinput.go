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

package userinput

import "fmt"

// NoButton is the value of PointerTransition.Button when the transition is
// for motion or for the wheel.
const NoButton = -1

// KeyTransition is a single key press or key release. Code is a key code as
// defined by the input package.
type KeyTransition struct {
	Code int
	Char rune
	Down bool
}

func (t KeyTransition) String() string {
	if t.Down {
		return fmt.Sprintf("key %d down (%q)", t.Code, t.Char)
	}
	return fmt.Sprintf("key %d up (%q)", t.Code, t.Char)
}

// PointerTransition is a change to the pointer. If Button is NoButton then the
// transition describes motion (DX and DY) and/or a change to the wheel.
//
// X and Y are the raw position of the pointer at the time of the transition.
// The origin of raw coordinates is the bottom-left corner of the view.
type PointerTransition struct {
	Button int
	Down   bool
	X, Y   int
	DX, DY int
	Wheel  int
}

func (t PointerTransition) String() string {
	if t.Button == NoButton {
		return fmt.Sprintf("pointer motion %d,%d (wheel %d)", t.DX, t.DY, t.Wheel)
	}
	if t.Down {
		return fmt.Sprintf("pointer button %d down at %d,%d", t.Button, t.X, t.Y)
	}
	return fmt.Sprintf("pointer button %d up at %d,%d", t.Button, t.X, t.Y)
}

// Source is the interface to the hardware. KeyTransitions() and
// PointerTransitions() drain the transitions that have been queued since the
// previous call.
//
// KeyTransitions() is called exactly once per frame, before any other
// function, and is called even when the input system is paused. A source that
// works frame by frame can use the call to advance its frame.
type Source interface {
	KeyTransitions() []KeyTransition
	PointerTransitions() []PointerTransition

	// current raw position of pointer. bottom-left origin
	PointerPosition() (x int, y int)

	// whether the pointer is grabbed by the view. when grabbed, the pointer
	// reports relative motion only
	PointerGrabbed() bool

	// whether the view has input focus
	Focused() bool

	// current held state of a key or pointer button
	KeyDown(code int) bool
	ButtonDown(button int) bool
}

// ControllerSource is implemented by hardware sources that support game
// controllers. The list of controllers is requested once only.
type ControllerSource interface {
	Controllers() ([]Controller, error)
}
