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

type buttonLatch struct {
	// one-shot latch. set on press and cleared when read by IsMousePressed()
	pressed bool

	// the edge detection state
	held bool

	// logical position of the most recent press. only valid if pressValid
	// is true
	pressX     int
	pressY     int
	pressValid bool
}

// pendingClick is the first click of a possible double-click. the zero value
// indicates that no click is pending.
type pendingClick struct {
	button   int
	x, y     int
	deadline time.Time
}

func (c *pendingClick) pending() bool {
	return !c.deadline.IsZero()
}

// expire the pending click if the deadline has passed. no event is emitted
// because the single click event was emitted when the click was made.
func (c *pendingClick) expire(now time.Time) {
	if c.pending() && now.After(c.deadline) {
		c.deadline = time.Time{}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (inp *Input) pointerTransition(now time.Time, p userinput.PointerTransition) {
	if p.Button == userinput.NoButton {
		inp.relativeMotion(p)
		return
	}

	if p.Button < 0 || p.Button >= MaxMouseButtons {
		logger.Logf(logger.Allow, "input", "pointer button out of range (%d)", p.Button)
		return
	}

	b := &inp.buttons[p.Button]
	x, y := inp.transform.ToLogical(p.X, p.Y, inp.height)

	if p.Down {
		if b.held {
			return
		}
		b.held = true
		b.pressed = true
		b.pressX = x
		b.pressY = y
		b.pressValid = true

		dispatch(inp, &inp.mouseListeners, func(ml MouseListener) {
			ml.MousePressed(p.Button, x, y)
		})
		return
	}

	if !b.held {
		return
	}
	b.held = false

	if b.pressValid && abs(b.pressX-x) < inp.clickTolerance && abs(b.pressY-y) < inp.clickTolerance {
		inp.considerDoubleClick(now, p.Button, x, y)
		b.pressValid = false
	}

	dispatch(inp, &inp.mouseListeners, func(ml MouseListener) {
		ml.MouseReleased(p.Button, x, y)
	})
}

// considerDoubleClick is called for every release that qualifies as a click.
// there is only one pending click so a click with a different button while a
// click is pending is ignored.
func (inp *Input) considerDoubleClick(now time.Time, button int, x int, y int) {
	if !inp.click.pending() {
		inp.click = pendingClick{
			button:   button,
			x:        x,
			y:        y,
			deadline: now.Add(inp.doubleClickDelay),
		}
		inp.fireClicked(button, x, y, 1)
		return
	}

	if inp.click.button == button && now.Before(inp.click.deadline) {
		inp.click.deadline = time.Time{}
		inp.fireClicked(button, x, y, 2)
	}
}

func (inp *Input) fireClicked(button int, x int, y int, count int) {
	dispatch(inp, &inp.mouseListeners, func(ml MouseListener) {
		ml.MouseClicked(button, x, y, count)
	})
}

// anyMouseDown returns true if any of the three primary pointer buttons are
// down. used to decide between moved and dragged events.
func (inp *Input) anyMouseDown() bool {
	for b := range 3 {
		if inp.src.ButtonDown(b) {
			return true
		}
	}
	return false
}

// relative motion and wheel changes.
func (inp *Input) relativeMotion(p userinput.PointerTransition) {
	if inp.src.PointerGrabbed() && inp.focused && (p.DX != 0 || p.DY != 0) {
		drag := inp.anyMouseDown()
		dispatch(inp, &inp.mouseListeners, func(ml MouseListener) {
			if drag {
				ml.MouseDragged(0, 0, p.DX, -p.DY)
			} else {
				ml.MouseMoved(0, 0, p.DX, -p.DY)
			}
		})
	}

	inp.wheel += p.Wheel
	if p.Wheel != 0 {
		dispatch(inp, &inp.mouseListeners, func(ml MouseListener) {
			ml.MouseWheelMoved(p.Wheel)
		})
	}
}

// absolute motion. when the view is not focused or the pointer is grabbed the
// last position is resynchronised without an event.
func (inp *Input) pointerMotion() {
	x := inp.MouseX()
	y := inp.MouseY()

	if !inp.focused || inp.src.PointerGrabbed() {
		inp.lastMouseX = x
		inp.lastMouseY = y
		return
	}

	if x == inp.lastMouseX && y == inp.lastMouseY {
		return
	}

	oldX := inp.lastMouseX
	oldY := inp.lastMouseY
	inp.lastMouseX = x
	inp.lastMouseY = y

	drag := inp.anyMouseDown()
	dispatch(inp, &inp.mouseListeners, func(ml MouseListener) {
		if drag {
			ml.MouseDragged(oldX, oldY, x, y)
		} else {
			ml.MouseMoved(oldX, oldY, x, y)
		}
	})
}

func (inp *Input) clearPressPositions() {
	for i := range inp.buttons {
		inp.buttons[i].pressValid = false
	}
}
