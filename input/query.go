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

import "fmt"

// IsKeyPressed returns true if the key has been pressed since the last call
// to IsKeyPressed() for that key. The record of the press is cleared.
//
// Panics if the key code is out of range.
func (inp *Input) IsKeyPressed(code int) bool {
	if code < 0 || code >= KeyCount {
		panic(fmt.Sprintf("input: key code out of range (%d)", code))
	}
	if inp.keys[code].pressed {
		inp.keys[code].pressed = false
		return true
	}
	return false
}

// IsKeyDown returns true if the key is currently held down.
func (inp *Input) IsKeyDown(code int) bool {
	return inp.src.KeyDown(code)
}

// IsMousePressed returns true if the pointer button has been pressed since the
// last call to IsMousePressed() for that button. The record of the press is
// cleared.
//
// Panics if the button is out of range.
func (inp *Input) IsMousePressed(button int) bool {
	if button < 0 || button >= MaxMouseButtons {
		panic(fmt.Sprintf("input: pointer button out of range (%d)", button))
	}
	if inp.buttons[button].pressed {
		inp.buttons[button].pressed = false
		return true
	}
	return false
}

// IsMouseButtonDown returns true if the pointer button is currently held down.
func (inp *Input) IsMouseButtonDown(button int) bool {
	return inp.src.ButtonDown(button)
}

// IsControlPressed returns true if the control has been pressed since the
// last call to IsControlPressed() for that control. The record of the press is
// cleared. See ControlLeft etc. for the list of controls.
//
// Panics if the controller or control is out of range.
func (inp *Input) IsControlPressed(control int, controller int) bool {
	inp.mustBeController(controller)
	c := &inp.controllers[controller]
	if control < 0 || control > c.lastControl() {
		panic(fmt.Sprintf("input: control out of range (%d)", control))
	}
	if c.pressed[control] {
		c.pressed[control] = false
		return true
	}
	return false
}

// ClearKeyPressedRecord clears the record of all key presses.
func (inp *Input) ClearKeyPressedRecord() {
	for i := range inp.keys {
		inp.keys[i].pressed = false
	}
}

// ClearMousePressedRecord clears the record of all pointer button presses.
func (inp *Input) ClearMousePressedRecord() {
	for i := range inp.buttons {
		inp.buttons[i].pressed = false
	}
}

// ClearControlPressedRecord clears the record of all controller presses.
func (inp *Input) ClearControlPressedRecord() {
	for i := range inp.controllers {
		clear(inp.controllers[i].pressed[:])
	}
}

// MouseX returns the logical X coordinate of the pointer.
func (inp *Input) MouseX() int {
	x, _ := inp.src.PointerPosition()
	lx, _ := inp.transform.ToLogical(x, 0, inp.height)
	return lx
}

// MouseY returns the logical Y coordinate of the pointer.
func (inp *Input) MouseY() int {
	_, y := inp.src.PointerPosition()
	_, ly := inp.transform.ToLogical(0, y, inp.height)
	return ly
}

// AbsoluteMouseX returns the X coordinate of the pointer without the
// coordinate transform.
func (inp *Input) AbsoluteMouseX() int {
	x, _ := inp.src.PointerPosition()
	return x
}

// AbsoluteMouseY returns the Y coordinate of the pointer without the
// coordinate transform. The vertical flip is applied.
func (inp *Input) AbsoluteMouseY() int {
	_, y := inp.src.PointerPosition()
	return inp.height - y
}

// Wheel returns the accumulated movement of the pointer wheel.
func (inp *Input) Wheel() int {
	return inp.wheel
}
