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

// Receiver is the part of the listener interface that is common to all
// categories of listener.
type Receiver interface {
	// IsAcceptingInput is checked immediately before every notification. A
	// listener that returns false is skipped for that notification only.
	IsAcceptingInput() bool

	// InputStarted and InputEnded bracket the notifications of every frame.
	// They are called on every registered listener once per frame, even if
	// the listener is registered in more than one category.
	InputStarted()
	InputEnded()
}

// KeyListener is implemented by types that want to receive key events.
type KeyListener interface {
	Receiver
	KeyPressed(key int, char rune)
	KeyReleased(key int, char rune)
}

// MouseListener is implemented by types that want to receive pointer events.
// Coordinates are logical coordinates (see Transform).
type MouseListener interface {
	Receiver
	MouseWheelMoved(change int)
	MouseClicked(button int, x int, y int, clickCount int)
	MousePressed(button int, x int, y int)
	MouseReleased(button int, x int, y int)
	MouseMoved(oldX int, oldY int, newX int, newY int)
	MouseDragged(oldX int, oldY int, newX int, newY int)
}

// ControllerListener is implemented by types that want to receive game
// controller events. Buttons are numbered from one.
type ControllerListener interface {
	Receiver
	ControllerDirectionPressed(controller int, dir Direction)
	ControllerDirectionReleased(controller int, dir Direction)
	ControllerButtonPressed(controller int, button int)
	ControllerButtonReleased(controller int, button int)
}

// Listener is the union of all listener categories.
type Listener interface {
	KeyListener
	MouseListener
	ControllerListener
}

// Adapter implements the Listener interface with functions that do nothing.
// It can be embedded in a type that only wants to implement some of the
// listener functions. An Adapter is always accepting input.
type Adapter struct{}

func (Adapter) IsAcceptingInput() bool                         { return true }
func (Adapter) InputStarted()                                  {}
func (Adapter) InputEnded()                                    {}
func (Adapter) KeyPressed(_ int, _ rune)                       {}
func (Adapter) KeyReleased(_ int, _ rune)                      {}
func (Adapter) MouseWheelMoved(_ int)                          {}
func (Adapter) MouseClicked(_ int, _ int, _ int, _ int)        {}
func (Adapter) MousePressed(_ int, _ int, _ int)               {}
func (Adapter) MouseReleased(_ int, _ int, _ int)              {}
func (Adapter) MouseMoved(_ int, _ int, _ int, _ int)          {}
func (Adapter) MouseDragged(_ int, _ int, _ int, _ int)        {}
func (Adapter) ControllerDirectionPressed(_ int, _ Direction)  {}
func (Adapter) ControllerDirectionReleased(_ int, _ Direction) {}
func (Adapter) ControllerButtonPressed(_ int, _ int)           {}
func (Adapter) ControllerButtonReleased(_ int, _ int)          {}
