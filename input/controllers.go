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
	"fmt"

	"github.com/jetsetilly/framepoll/curated"
	"github.com/jetsetilly/framepoll/logger"
	"github.com/jetsetilly/framepoll/userinput"
)

// ControllersUnavailable is returned by InitControllers() when the source
// fails to enumerate its controllers.
const ControllersUnavailable = "input: controllers unavailable: %v"

// AnyController can be used as the controller index in query functions. The
// query will be true if it is true for any connected controller.
const AnyController = -1

// controllers with fewer buttons than minControllerButtons, or with as many
// as maxControllerButtons, are not accepted. they are unlikely to be game
// controllers
const (
	minControllerButtons = 3
	maxControllerButtons = 100
)

// highest control index that is edge detected.
const maxControlIndex = 24

// Control indexes used by IsControlPressed(). Button controls start at
// ControlButton1.
const (
	ControlLeft = iota
	ControlRight
	ControlUp
	ControlDown
	ControlButton1
)

// Direction is the direction of a controller's stick or hat.
type Direction int

// List of valid Direction values. Each Direction is also the control index of
// that direction.
const (
	DirLeft  Direction = ControlLeft
	DirRight Direction = ControlRight
	DirUp    Direction = ControlUp
	DirDown  Direction = ControlDown
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

type controller struct {
	userinput.Controller

	// edge detection state and one-shot latches, indexed by control
	controls [maxControlIndex + 1]bool
	pressed  [maxControlIndex + 1]bool
}

// number of the highest control index for the controller
func (c *controller) lastControl() int {
	return min(c.ButtonCount()+3, maxControlIndex)
}

// InitControllers requests the list of controllers from the source. Only the
// first call has any effect. If the source does not support controllers then
// the Input will have no controllers and no error is returned.
//
// A failure is logged and returned as a ControllersUnavailable error. The
// Input remains usable with no controllers.
func (inp *Input) InitControllers() error {
	if inp.controllersInited {
		return nil
	}
	inp.controllersInited = true

	cs, ok := inp.src.(userinput.ControllerSource)
	if !ok {
		logger.Log(logger.Allow, "input", "source does not support controllers")
		return nil
	}

	found, err := cs.Controllers()
	if err != nil {
		err = curated.Errorf(ControllersUnavailable, err)
		logger.Log(logger.Allow, "input", err)
		return err
	}

	for _, c := range found {
		n := c.ButtonCount()
		if n < minControllerButtons || n >= maxControllerButtons {
			logger.Logf(logger.Allow, "input", "ignoring %s: %d buttons", c.Name(), n)
			continue
		}
		inp.controllers = append(inp.controllers, controller{Controller: c})
	}

	logger.Logf(logger.Allow, "input", "found %d controllers", len(inp.controllers))
	for i, c := range inp.controllers {
		logger.Logf(logger.Allow, "input", "%d: %s", i, c.Name())
	}

	return nil
}

// DisableControllers prevents controllers from being initialised. It has no
// effect if InitControllers() has already been called.
func (inp *Input) DisableControllers() {
	inp.controllersInited = true
}

// ControllerCount returns the number of controllers. Always zero until
// InitControllers() has been called.
func (inp *Input) ControllerCount() int {
	return len(inp.controllers)
}

func (inp *Input) mustBeController(idx int) {
	if idx < 0 || idx >= len(inp.controllers) {
		panic(fmt.Sprintf("input: controller index out of range (%d)", idx))
	}
}

// AxisCount returns the number of axes of a controller.
func (inp *Input) AxisCount(controller int) int {
	inp.mustBeController(controller)
	return inp.controllers[controller].AxisCount()
}

// AxisValue returns the value of a controller's axis.
func (inp *Input) AxisValue(controller int, axis int) float32 {
	inp.mustBeController(controller)
	return inp.controllers[controller].AxisValue(axis)
}

// AxisName returns the name of a controller's axis.
func (inp *Input) AxisName(controller int, axis int) string {
	inp.mustBeController(controller)
	return inp.controllers[controller].AxisName(axis)
}

// controllerTest runs test function against the controller. an index beyond
// the number of controllers is false. the AnyController index is true if the
// test is true for any controller
func (inp *Input) controllerTest(idx int, f func(c userinput.Controller) bool) bool {
	if idx >= len(inp.controllers) {
		return false
	}

	if idx == AnyController {
		for _, c := range inp.controllers {
			if f(c.Controller) {
				return true
			}
		}
		return false
	}

	if idx < 0 {
		panic(fmt.Sprintf("input: controller index out of range (%d)", idx))
	}

	return f(inp.controllers[idx].Controller)
}

// IsControllerLeft returns true if the controller is pushed to the left.
func (inp *Input) IsControllerLeft(controller int) bool {
	return inp.controllerTest(controller, func(c userinput.Controller) bool {
		return c.XAxis() < -0.5 || c.PovX() < -0.5
	})
}

// IsControllerRight returns true if the controller is pushed to the right.
func (inp *Input) IsControllerRight(controller int) bool {
	return inp.controllerTest(controller, func(c userinput.Controller) bool {
		return c.XAxis() > 0.5 || c.PovX() > 0.5
	})
}

// IsControllerUp returns true if the controller is pushed up.
func (inp *Input) IsControllerUp(controller int) bool {
	return inp.controllerTest(controller, func(c userinput.Controller) bool {
		return c.YAxis() < -0.5 || c.PovY() < -0.5
	})
}

// IsControllerDown returns true if the controller is pushed down.
func (inp *Input) IsControllerDown(controller int) bool {
	return inp.controllerTest(controller, func(c userinput.Controller) bool {
		return c.YAxis() > 0.5 || c.PovY() > 0.5
	})
}

// IsButtonPressed returns true if the button is down. Buttons are numbered
// from zero. Note that this is not a one-shot query.
func (inp *Input) IsButtonPressed(button int, controller int) bool {
	return inp.controllerTest(controller, func(c userinput.Controller) bool {
		return c.ButtonDown(button)
	})
}

// IsButton1Pressed is a convenience function for the first button.
func (inp *Input) IsButton1Pressed(controller int) bool {
	return inp.IsButtonPressed(0, controller)
}

// IsButton2Pressed is a convenience function for the second button.
func (inp *Input) IsButton2Pressed(controller int) bool {
	return inp.IsButtonPressed(1, controller)
}

// IsButton3Pressed is a convenience function for the third button.
func (inp *Input) IsButton3Pressed(controller int) bool {
	return inp.IsButtonPressed(2, controller)
}

func (inp *Input) isControlDown(control int, controller int) bool {
	switch control {
	case ControlLeft:
		return inp.IsControllerLeft(controller)
	case ControlRight:
		return inp.IsControllerRight(controller)
	case ControlUp:
		return inp.IsControllerUp(controller)
	case ControlDown:
		return inp.IsControllerDown(controller)
	}
	return inp.IsButtonPressed(control-ControlButton1, controller)
}

// edge detection of every control of every controller.
func (inp *Input) pollControllers() {
	for i := range inp.controllers {
		c := &inp.controllers[i]
		for ctrl := 0; ctrl <= c.lastControl(); ctrl++ {
			down := inp.isControlDown(ctrl, i)
			if c.controls[ctrl] && !down {
				c.controls[ctrl] = false
				inp.fireControl(i, ctrl, false)
			} else if !c.controls[ctrl] && down {
				c.controls[ctrl] = true
				c.pressed[ctrl] = true
				inp.fireControl(i, ctrl, true)
			}
		}
	}
}

func (inp *Input) fireControl(controller int, control int, pressed bool) {
	if control < ControlButton1 {
		dir := Direction(control)
		dispatch(inp, &inp.controllerListeners, func(cl ControllerListener) {
			if pressed {
				cl.ControllerDirectionPressed(controller, dir)
			} else {
				cl.ControllerDirectionReleased(controller, dir)
			}
		})
		return
	}

	button := control - ControlButton1 + 1
	dispatch(inp, &inp.controllerListeners, func(cl ControllerListener) {
		if pressed {
			cl.ControllerButtonPressed(controller, button)
		} else {
			cl.ControllerButtonReleased(controller, button)
		}
	})
}
