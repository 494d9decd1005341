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
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/framepoll/input"
	"github.com/jetsetilly/framepoll/userinput"
)

// height of the view used by all tests
const viewHeight = 100

// clock with a time that only changes when told to
type testClock struct {
	start time.Time
	now   time.Time
}

func newTestClock() *testClock {
	t := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	return &testClock{start: t, now: t}
}

func (clk *testClock) Now() time.Time {
	return clk.now
}

// set the time to milliseconds since the start of the clock
func (clk *testClock) at(ms int) {
	clk.now = clk.start.Add(time.Duration(ms) * time.Millisecond)
}

// listener that records every event it receives
type recorder struct {
	input.Adapter

	name   string
	events []string

	started int
	ended   int

	refuse bool

	// called after an event has been recorded
	onEvent func(ev string)
}

func (r *recorder) record(f string, args ...any) {
	ev := fmt.Sprintf(f, args...)
	r.events = append(r.events, ev)
	if r.onEvent != nil {
		r.onEvent(ev)
	}
}

// filter returns the events that begin with prefix
func (r *recorder) filter(prefix string) []string {
	var f []string
	for _, ev := range r.events {
		if strings.HasPrefix(ev, prefix) {
			f = append(f, ev)
		}
	}
	return f
}

func (r *recorder) IsAcceptingInput() bool { return !r.refuse }
func (r *recorder) InputStarted()          { r.started++ }
func (r *recorder) InputEnded()            { r.ended++ }

func (r *recorder) KeyPressed(key int, char rune) {
	r.record("key pressed %d %q", key, char)
}

func (r *recorder) KeyReleased(key int, char rune) {
	r.record("key released %d %q", key, char)
}

func (r *recorder) MouseWheelMoved(change int) {
	r.record("wheel %d", change)
}

func (r *recorder) MouseClicked(button int, x int, y int, count int) {
	r.record("clicked %d %d,%d %d", button, x, y, count)
}

func (r *recorder) MousePressed(button int, x int, y int) {
	r.record("pressed %d %d,%d", button, x, y)
}

func (r *recorder) MouseReleased(button int, x int, y int) {
	r.record("released %d %d,%d", button, x, y)
}

func (r *recorder) MouseMoved(oldX int, oldY int, newX int, newY int) {
	r.record("moved %d,%d %d,%d", oldX, oldY, newX, newY)
}

func (r *recorder) MouseDragged(oldX int, oldY int, newX int, newY int) {
	r.record("dragged %d,%d %d,%d", oldX, oldY, newX, newY)
}

func (r *recorder) ControllerDirectionPressed(controller int, dir input.Direction) {
	r.record("controller %d %s pressed", controller, dir)
}

func (r *recorder) ControllerDirectionReleased(controller int, dir input.Direction) {
	r.record("controller %d %s released", controller, dir)
}

func (r *recorder) ControllerButtonPressed(controller int, button int) {
	r.record("controller %d button %d pressed", controller, button)
}

func (r *recorder) ControllerButtonReleased(controller int, button int) {
	r.record("controller %d button %d released", controller, button)
}

// newTestInput creates an Input with a buffer source and a test clock. a
// recorder is added and the first poll is made so that the recorder is
// active
func newTestInput(t *testing.T) (*input.Input, *userinput.Buffer, *testClock, *recorder) {
	t.Helper()
	src := userinput.NewBuffer()
	inp := input.NewInput(src, viewHeight)
	clk := newTestClock()
	inp.SetClock(clk)
	rec := &recorder{name: "rec"}
	inp.AddListener(rec)
	inp.Poll(100, viewHeight)
	return inp, src, clk, rec
}

func keyDown(src *userinput.Buffer, code int, char rune) {
	src.PushKey(userinput.KeyTransition{Code: code, Char: char, Down: true})
}

func keyUp(src *userinput.Buffer, code int, char rune) {
	src.PushKey(userinput.KeyTransition{Code: code, Char: char, Down: false})
}

// press and release of a pointer button given in logical coordinates. the
// raw coordinates are flipped against the view height
func buttonDown(src *userinput.Buffer, button int, x int, y int) {
	src.PushPointer(userinput.PointerTransition{Button: button, Down: true, X: x, Y: viewHeight - y})
}

func buttonUp(src *userinput.Buffer, button int, x int, y int) {
	src.PushPointer(userinput.PointerTransition{Button: button, Down: false, X: x, Y: viewHeight - y})
}

func expectPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	f()
}
