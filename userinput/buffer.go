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

import "sync"

// Buffer implements the Source interface. Transitions and state changes can
// be pushed from any goroutine and will be drained by the input system on the
// next frame.
//
// The held state of keys and buttons is updated when the transition is pushed,
// not when it is drained.
type Buffer struct {
	crit sync.Mutex

	keys    []KeyTransition
	pointer []PointerTransition

	keysDown    map[int]bool
	buttonsDown map[int]bool

	x, y      int
	grabbed   bool
	unfocused bool
}

// NewBuffer is the preferred method of initialisation for the Buffer type.
// The Buffer begins focused with the pointer at the origin.
func NewBuffer() *Buffer {
	return &Buffer{
		keysDown:    make(map[int]bool),
		buttonsDown: make(map[int]bool),
	}
}

// PushKey adds a key transition to the buffer.
func (b *Buffer) PushKey(t KeyTransition) {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.keys = append(b.keys, t)
	if t.Down {
		b.keysDown[t.Code] = true
	} else {
		delete(b.keysDown, t.Code)
	}
}

// PushPointer adds a pointer transition to the buffer. Button transitions
// also move the pointer position to the position of the transition.
func (b *Buffer) PushPointer(t PointerTransition) {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.pointer = append(b.pointer, t)
	if t.Button == NoButton {
		return
	}
	b.x = t.X
	b.y = t.Y
	if t.Down {
		b.buttonsDown[t.Button] = true
	} else {
		delete(b.buttonsDown, t.Button)
	}
}

// SetPointerPosition changes the raw pointer position.
func (b *Buffer) SetPointerPosition(x int, y int) {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.x = x
	b.y = y
}

// SetPointerGrabbed changes the grabbed state of the pointer.
func (b *Buffer) SetPointerGrabbed(grabbed bool) {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.grabbed = grabbed
}

// SetFocused changes the focus state of the buffer.
func (b *Buffer) SetFocused(focused bool) {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.unfocused = !focused
}

// KeyTransitions implements the Source interface.
func (b *Buffer) KeyTransitions() []KeyTransition {
	b.crit.Lock()
	defer b.crit.Unlock()
	k := b.keys
	b.keys = nil
	return k
}

// PointerTransitions implements the Source interface.
func (b *Buffer) PointerTransitions() []PointerTransition {
	b.crit.Lock()
	defer b.crit.Unlock()
	p := b.pointer
	b.pointer = nil
	return p
}

// PointerPosition implements the Source interface.
func (b *Buffer) PointerPosition() (int, int) {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.x, b.y
}

// PointerGrabbed implements the Source interface.
func (b *Buffer) PointerGrabbed() bool {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.grabbed
}

// Focused implements the Source interface.
func (b *Buffer) Focused() bool {
	b.crit.Lock()
	defer b.crit.Unlock()
	return !b.unfocused
}

// KeyDown implements the Source interface.
func (b *Buffer) KeyDown(code int) bool {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.keysDown[code]
}

// ButtonDown implements the Source interface.
func (b *Buffer) ButtonDown(button int) bool {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.buttonsDown[button]
}
