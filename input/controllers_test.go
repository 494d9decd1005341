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
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jetsetilly/framepoll/curated"
	"github.com/jetsetilly/framepoll/input"
	"github.com/jetsetilly/framepoll/test"
	"github.com/jetsetilly/framepoll/userinput"
)

// controller with state that is set directly by the test
type fakeController struct {
	name    string
	x, y    float32
	povX    float32
	povY    float32
	buttons []bool
}

func newFakeController(name string, buttons int) *fakeController {
	return &fakeController{name: name, buttons: make([]bool, buttons)}
}

func (c *fakeController) Name() string     { return c.name }
func (c *fakeController) AxisCount() int   { return 2 }
func (c *fakeController) XAxis() float32   { return c.x }
func (c *fakeController) YAxis() float32   { return c.y }
func (c *fakeController) PovX() float32    { return c.povX }
func (c *fakeController) PovY() float32    { return c.povY }
func (c *fakeController) ButtonCount() int { return len(c.buttons) }

func (c *fakeController) AxisValue(axis int) float32 {
	if axis == 0 {
		return c.x
	}
	return c.y
}

func (c *fakeController) AxisName(axis int) string {
	return fmt.Sprintf("axis %d", axis)
}

func (c *fakeController) ButtonDown(button int) bool {
	if button < 0 || button >= len(c.buttons) {
		return false
	}
	return c.buttons[button]
}

// buffer that also supports controllers
type controllerBuffer struct {
	*userinput.Buffer
	controllers []userinput.Controller
	err         error
}

func (b *controllerBuffer) Controllers() ([]userinput.Controller, error) {
	return b.controllers, b.err
}

func newControllerInput(t *testing.T, cs ...userinput.Controller) (*input.Input, *recorder) {
	t.Helper()
	src := &controllerBuffer{Buffer: userinput.NewBuffer(), controllers: cs}
	inp := input.NewInput(src, viewHeight)
	inp.SetClock(newTestClock())
	test.DemandSuccess(t, inp.InitControllers())
	rec := &recorder{}
	inp.AddControllerListener(rec)
	inp.Poll(100, viewHeight)
	return inp, rec
}

func TestControllerDirections(t *testing.T) {
	pad := newFakeController("pad", 4)
	inp, rec := newControllerInput(t, pad)
	test.ExpectEquality(t, inp.ControllerCount(), 1)

	pad.x = -1.0
	inp.Poll(100, viewHeight)
	test.ExpectEquality(t, strings.Join(rec.events, "\n"), "controller 0 left pressed")
	test.ExpectSuccess(t, inp.IsControllerLeft(0))
	test.ExpectFailure(t, inp.IsControllerRight(0))

	// held controls do not repeat
	inp.Poll(100, viewHeight)
	test.ExpectEquality(t, len(rec.events), 1)

	// the hat works the same as the stick
	pad.x = 0
	pad.povY = 1.0
	inp.Poll(100, viewHeight)
	test.ExpectEquality(t, strings.Join(rec.events[1:], "\n"),
		"controller 0 left released\ncontroller 0 down pressed")

	// small movements are not a direction
	pad.povY = 0
	pad.y = -0.4
	inp.Poll(100, viewHeight)
	test.ExpectEquality(t, rec.events[len(rec.events)-1], "controller 0 down released")
	test.ExpectFailure(t, inp.IsControllerUp(0))
}

func TestControllerButtons(t *testing.T) {
	pad := newFakeController("pad", 4)
	inp, rec := newControllerInput(t, pad)

	// buttons are numbered from one in events and from zero in queries
	pad.buttons[0] = true
	pad.buttons[3] = true
	inp.Poll(100, viewHeight)
	test.ExpectEquality(t, strings.Join(rec.events, "\n"),
		"controller 0 button 1 pressed\ncontroller 0 button 4 pressed")
	test.ExpectSuccess(t, inp.IsButton1Pressed(0))
	test.ExpectFailure(t, inp.IsButton2Pressed(0))
	test.ExpectSuccess(t, inp.IsButtonPressed(3, 0))

	pad.buttons[0] = false
	inp.Poll(100, viewHeight)
	test.ExpectEquality(t, rec.events[len(rec.events)-1], "controller 0 button 1 released")
}

func TestControlPressedQuery(t *testing.T) {
	pad := newFakeController("pad", 4)
	inp, _ := newControllerInput(t, pad)

	test.ExpectFailure(t, inp.IsControlPressed(input.ControlButton1, 0))

	pad.buttons[0] = true
	pad.x = 1.0
	inp.Poll(100, viewHeight)
	test.ExpectSuccess(t, inp.IsControlPressed(input.ControlButton1, 0))
	test.ExpectSuccess(t, inp.IsControlPressed(input.ControlRight, 0))

	// the record of the press is cleared by the query
	test.ExpectFailure(t, inp.IsControlPressed(input.ControlButton1, 0))

	// and is not set again while the button is held
	inp.Poll(100, viewHeight)
	test.ExpectFailure(t, inp.IsControlPressed(input.ControlButton1, 0))

	// cleared without being queried
	pad.buttons[1] = true
	inp.Poll(100, viewHeight)
	inp.ClearControlPressedRecord()
	test.ExpectFailure(t, inp.IsControlPressed(input.ControlButton1+1, 0))

	// the last control of a four button controller is the fourth button
	expectPanic(t, func() { inp.IsControlPressed(input.ControlButton1+4, 0) })
	expectPanic(t, func() { inp.IsControlPressed(input.ControlLeft, 1) })
}

func TestControllerLimit(t *testing.T) {
	pad := newFakeController("pad", 30)
	inp, rec := newControllerInput(t, pad)

	// buttons beyond the twenty-first are not edge detected
	pad.buttons[20] = true
	pad.buttons[21] = true
	inp.Poll(100, viewHeight)
	test.ExpectEquality(t, strings.Join(rec.events, "\n"), "controller 0 button 21 pressed")

	// but can still be queried
	test.ExpectSuccess(t, inp.IsButtonPressed(21, 0))
}

func TestAnyController(t *testing.T) {
	a := newFakeController("a", 4)
	b := newFakeController("b", 4)
	inp, rec := newControllerInput(t, a, b)
	test.ExpectEquality(t, inp.ControllerCount(), 2)

	test.ExpectFailure(t, inp.IsButton1Pressed(input.AnyController))

	b.buttons[0] = true
	inp.Poll(100, viewHeight)
	test.ExpectEquality(t, strings.Join(rec.events, "\n"), "controller 1 button 1 pressed")
	test.ExpectSuccess(t, inp.IsButton1Pressed(input.AnyController))
	test.ExpectFailure(t, inp.IsButton1Pressed(0))
	test.ExpectSuccess(t, inp.IsButton1Pressed(1))

	// an index beyond the number of controllers is never pressed
	test.ExpectFailure(t, inp.IsButton1Pressed(2))
	test.ExpectFailure(t, inp.IsControllerLeft(10))

	// other negative indexes are misuse
	expectPanic(t, func() { inp.IsButton1Pressed(-2) })
}

func TestControllerFilter(t *testing.T) {
	inp, _ := newControllerInput(t,
		newFakeController("mouse", 2),
		newFakeController("pad", 3),
		newFakeController("keyboard", 100),
		newFakeController("wheel", 99),
	)
	test.ExpectEquality(t, inp.ControllerCount(), 2)
	test.ExpectEquality(t, inp.AxisName(1, 0), "axis 0")
	test.ExpectEquality(t, inp.AxisCount(0), 2)
	expectPanic(t, func() { inp.AxisCount(2) })
}

func TestControllersUnavailable(t *testing.T) {
	src := &controllerBuffer{
		Buffer:      userinput.NewBuffer(),
		controllers: []userinput.Controller{newFakeController("pad", 4)},
		err:         errors.New("no joystick subsystem"),
	}
	inp := input.NewInput(src, viewHeight)

	err := inp.InitControllers()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, input.ControllersUnavailable))
	test.ExpectEquality(t, inp.ControllerCount(), 0)

	// only the first call has any effect
	test.ExpectSuccess(t, inp.InitControllers())

	// input is still usable
	inp.Poll(100, viewHeight)
	test.ExpectFailure(t, inp.IsButton1Pressed(input.AnyController))
}

func TestControllersUnsupported(t *testing.T) {
	inp := input.NewInput(userinput.NewBuffer(), viewHeight)
	test.ExpectSuccess(t, inp.InitControllers())
	test.ExpectEquality(t, inp.ControllerCount(), 0)
}

func TestDisableControllers(t *testing.T) {
	src := &controllerBuffer{
		Buffer:      userinput.NewBuffer(),
		controllers: []userinput.Controller{newFakeController("pad", 4)},
	}
	inp := input.NewInput(src, viewHeight)
	inp.DisableControllers()
	test.ExpectSuccess(t, inp.InitControllers())
	test.ExpectEquality(t, inp.ControllerCount(), 0)
}

func TestControllerPaused(t *testing.T) {
	pad := newFakeController("pad", 4)
	inp, rec := newControllerInput(t, pad)

	inp.Pause()
	pad.buttons[2] = true
	inp.Poll(100, viewHeight)
	test.ExpectEquality(t, len(rec.events), 0)
	test.ExpectFailure(t, inp.IsControlPressed(input.ControlButton1+2, 0))

	inp.Resume()
	inp.Poll(100, viewHeight)
	test.ExpectEquality(t, strings.Join(rec.events, "\n"), "controller 0 button 3 pressed")
}
