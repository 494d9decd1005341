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

package input_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/framepoll/input"
	"github.com/jetsetilly/framepoll/test"
	"github.com/jetsetilly/framepoll/userinput"
)

// click button at logical coordinates at time ms
func click(inp *input.Input, src *userinput.Buffer, clk *testClock, ms int, button int, x int, y int) {
	clk.at(ms)
	buttonDown(src, button, x, y)
	buttonUp(src, button, x, y)
	inp.Poll(100, viewHeight)
}

func TestClickOrder(t *testing.T) {
	inp, src, clk, rec := newTestInput(t)

	click(inp, src, clk, 0, input.MouseLeftButton, 10, 10)

	// the click is delivered before the release. the pointer motion is
	// delivered after all transitions
	test.ExpectEquality(t, strings.Join(rec.events, "\n"),
		"pressed 0 10,10\nclicked 0 10,10 1\nreleased 0 10,10\nmoved 0,100 10,10")
}

func TestDoubleClick(t *testing.T) {
	inp, src, clk, rec := newTestInput(t)
	inp.SetDoubleClickInterval(250 * time.Millisecond)

	click(inp, src, clk, 0, input.MouseLeftButton, 10, 10)
	test.ExpectEquality(t, strings.Join(rec.filter("clicked"), "\n"), "clicked 0 10,10 1")

	// second click inside the window is a double-click and not another
	// single click
	click(inp, src, clk, 100, input.MouseLeftButton, 10, 10)
	test.ExpectEquality(t, strings.Join(rec.filter("clicked"), "\n"),
		"clicked 0 10,10 1\nclicked 0 10,10 2")

	// the double-click returns the debouncer to idle so the next click is a
	// single click
	click(inp, src, clk, 500, input.MouseLeftButton, 10, 10)
	test.ExpectEquality(t, strings.Join(rec.filter("clicked"), "\n"),
		"clicked 0 10,10 1\nclicked 0 10,10 2\nclicked 0 10,10 1")
}

func TestDoubleClickExpiry(t *testing.T) {
	inp, src, clk, rec := newTestInput(t)

	click(inp, src, clk, 0, input.MouseLeftButton, 10, 10)
	click(inp, src, clk, 400, input.MouseLeftButton, 10, 10)

	test.ExpectEquality(t, strings.Join(rec.filter("clicked"), "\n"),
		"clicked 0 10,10 1\nclicked 0 10,10 1")
}

func TestDoubleClickDeadline(t *testing.T) {
	inp, src, clk, rec := newTestInput(t)

	// a second click exactly on the deadline is neither a double-click nor a
	// new single click. the pending click expires on the next poll
	click(inp, src, clk, 0, input.MouseLeftButton, 10, 10)
	click(inp, src, clk, 250, input.MouseLeftButton, 10, 10)
	test.ExpectEquality(t, len(rec.filter("clicked")), 1)

	click(inp, src, clk, 300, input.MouseLeftButton, 10, 10)
	test.ExpectEquality(t, strings.Join(rec.filter("clicked"), "\n"),
		"clicked 0 10,10 1\nclicked 0 10,10 1")
}

func TestDoubleClickOtherButton(t *testing.T) {
	inp, src, clk, rec := newTestInput(t)

	click(inp, src, clk, 0, input.MouseLeftButton, 10, 10)

	// a click with another button while a click is pending emits nothing
	click(inp, src, clk, 50, input.MouseRightButton, 10, 10)
	test.ExpectEquality(t, len(rec.filter("clicked")), 1)
	test.ExpectEquality(t, len(rec.filter("released 1")), 1)

	// the pending click can still be completed. the position of the second
	// click is not compared with the first
	click(inp, src, clk, 100, input.MouseLeftButton, 50, 50)
	test.ExpectEquality(t, strings.Join(rec.filter("clicked"), "\n"),
		"clicked 0 10,10 1\nclicked 0 50,50 2")
}

func TestClickTolerance(t *testing.T) {
	inp, src, clk, rec := newTestInput(t)

	// release within tolerance
	clk.at(0)
	buttonDown(src, input.MouseLeftButton, 10, 10)
	buttonUp(src, input.MouseLeftButton, 14, 14)
	inp.Poll(100, viewHeight)
	test.ExpectEquality(t, strings.Join(rec.filter("clicked"), "\n"), "clicked 0 14,14 1")

	// release exactly at the tolerance is not a click
	clk.at(1000)
	buttonDown(src, input.MouseLeftButton, 10, 10)
	buttonUp(src, input.MouseLeftButton, 15, 10)
	inp.Poll(100, viewHeight)
	test.ExpectEquality(t, len(rec.filter("clicked")), 1)
	test.ExpectEquality(t, len(rec.filter("released")), 2)

	// tolerance can be changed
	inp.SetMouseClickTolerance(10)
	clk.at(2000)
	buttonDown(src, input.MouseLeftButton, 10, 10)
	buttonUp(src, input.MouseLeftButton, 15, 10)
	inp.Poll(100, viewHeight)
	test.ExpectEquality(t, len(rec.filter("clicked")), 2)
}

func TestClickPressAcrossFrames(t *testing.T) {
	inp, src, clk, rec := newTestInput(t)

	clk.at(0)
	buttonDown(src, input.MouseLeftButton, 10, 10)
	inp.Poll(100, viewHeight)

	clk.at(100)
	buttonUp(src, input.MouseLeftButton, 11, 10)
	inp.Poll(100, viewHeight)

	test.ExpectEquality(t, strings.Join(rec.filter("clicked"), "\n"), "clicked 0 11,10 1")
}

func TestMousePressedQuery(t *testing.T) {
	inp, src, clk, _ := newTestInput(t)

	click(inp, src, clk, 0, input.MouseRightButton, 10, 10)
	test.ExpectSuccess(t, inp.IsMousePressed(input.MouseRightButton))
	test.ExpectFailure(t, inp.IsMousePressed(input.MouseRightButton))
	test.ExpectFailure(t, inp.IsMousePressed(input.MouseLeftButton))

	buttonDown(src, input.MouseMiddleButton, 10, 10)
	inp.Poll(100, viewHeight)
	test.ExpectSuccess(t, inp.IsMouseButtonDown(input.MouseMiddleButton))
	inp.ClearMousePressedRecord()
	test.ExpectFailure(t, inp.IsMousePressed(input.MouseMiddleButton))
}

func TestPointerButtonOutOfRange(t *testing.T) {
	inp, src, _, rec := newTestInput(t)

	src.PushPointer(userinput.PointerTransition{Button: input.MaxMouseButtons, Down: true})
	inp.Poll(100, viewHeight)
	test.ExpectEquality(t, len(rec.filter("pressed")), 0)
}

func TestMouseMotion(t *testing.T) {
	inp, src, _, rec := newTestInput(t)

	src.SetPointerPosition(20, 70)
	inp.Poll(100, viewHeight)
	test.ExpectEquality(t, rec.events[len(rec.events)-1], "moved 0,100 20,30")

	// no event if the pointer has not moved
	n := len(rec.events)
	inp.Poll(100, viewHeight)
	test.ExpectEquality(t, len(rec.events), n)

	// motion with a button held is a drag
	buttonDown(src, input.MouseLeftButton, 20, 30)
	inp.Poll(100, viewHeight)
	src.SetPointerPosition(25, 65)
	inp.Poll(100, viewHeight)
	test.ExpectEquality(t, rec.events[len(rec.events)-1], "dragged 20,30 25,35")
}

func TestMouseMotionFocus(t *testing.T) {
	inp, src, _, rec := newTestInput(t)

	src.SetFocused(false)
	inp.Poll(100, viewHeight)
	n := len(rec.events)

	// motion while not focused resynchronises without an event
	src.SetPointerPosition(50, 50)
	inp.Poll(100, viewHeight)
	test.ExpectEquality(t, len(rec.events), n)

	src.SetFocused(true)
	inp.Poll(100, viewHeight)
	inp.Poll(100, viewHeight)
	test.ExpectEquality(t, len(rec.events), n)

	// motion is measured from the resynchronised position
	src.SetPointerPosition(60, 40)
	inp.Poll(100, viewHeight)
	test.ExpectEquality(t, strings.Join(rec.events[n:], "\n"), "moved 50,50 60,60")
}

func TestMouseMotionGrabbed(t *testing.T) {
	inp, src, _, rec := newTestInput(t)
	src.SetPointerGrabbed(true)

	src.PushPointer(userinput.PointerTransition{Button: userinput.NoButton, DX: 3, DY: 4})
	inp.Poll(100, viewHeight)
	test.ExpectEquality(t, strings.Join(rec.events, "\n"), "moved 0,0 3,-4")

	// absolute motion is suppressed while grabbed
	src.SetPointerPosition(50, 50)
	inp.Poll(100, viewHeight)
	test.ExpectEquality(t, len(rec.events), 1)

	// relative motion with a button held is a drag
	buttonDown(src, input.MouseLeftButton, 50, 50)
	src.PushPointer(userinput.PointerTransition{Button: userinput.NoButton, DX: -1, DY: 0})
	inp.Poll(100, viewHeight)
	test.ExpectEquality(t, rec.events[len(rec.events)-1], "dragged 0,0 -1,0")
}

func TestWheel(t *testing.T) {
	inp, src, _, rec := newTestInput(t)

	src.PushPointer(userinput.PointerTransition{Button: userinput.NoButton, Wheel: 2})
	src.PushPointer(userinput.PointerTransition{Button: userinput.NoButton, Wheel: -1})
	inp.Poll(100, viewHeight)

	test.ExpectEquality(t, strings.Join(rec.events, "\n"), "wheel 2\nwheel -1")
	test.ExpectEquality(t, inp.Wheel(), 1)
}

func TestTransform(t *testing.T) {
	x, y := input.IdentityTransform.ToLogical(10, 30, viewHeight)
	test.ExpectEquality(t, x, 10)
	test.ExpectEquality(t, y, 70)

	tr := input.Transform{ScaleX: 2, ScaleY: 2, OffsetX: 5, OffsetY: 5}
	x, y = tr.ToLogical(10, 30, viewHeight)
	test.ExpectEquality(t, x, 25)
	test.ExpectEquality(t, y, 145)

	inp, src, _, rec := newTestInput(t)
	src.SetPointerPosition(10, 30)
	test.ExpectEquality(t, inp.MouseX(), 10)
	test.ExpectEquality(t, inp.MouseY(), 70)

	inp.SetScale(2, 2)
	inp.SetOffset(5, 5)
	test.ExpectEquality(t, inp.Transform(), tr)
	test.ExpectEquality(t, inp.MouseX(), 25)
	test.ExpectEquality(t, inp.MouseY(), 145)
	test.ExpectEquality(t, inp.AbsoluteMouseX(), 10)
	test.ExpectEquality(t, inp.AbsoluteMouseY(), 70)

	// button events are transformed
	src.PushPointer(userinput.PointerTransition{Button: input.MouseLeftButton, Down: true, X: 10, Y: 30})
	inp.Poll(100, viewHeight)
	test.ExpectEquality(t, rec.filter("pressed")[0], "pressed 0 25,145")

	inp.ResetInputTransform()
	test.ExpectEquality(t, inp.Transform(), input.IdentityTransform)
	test.ExpectEquality(t, inp.MouseX(), 10)
}
