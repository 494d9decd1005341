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

	"github.com/jetsetilly/framepoll/logger"
	"github.com/jetsetilly/framepoll/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// joystick implements the userinput.Controller interface for an SDL joystick.
type joystick struct {
	joy *sdl.Joystick
}

func (j *joystick) Name() string {
	return j.joy.Name()
}

func (j *joystick) AxisCount() int {
	return j.joy.NumAxes()
}

func (j *joystick) AxisValue(axis int) float32 {
	if axis < 0 || axis >= j.joy.NumAxes() {
		return 0
	}
	return userinput.Normalise(j.joy.Axis(axis))
}

func (j *joystick) AxisName(axis int) string {
	switch axis {
	case 0:
		return "X Axis"
	case 1:
		return "Y Axis"
	}
	return fmt.Sprintf("Axis %d", axis)
}

func (j *joystick) XAxis() float32 {
	return j.AxisValue(0)
}

func (j *joystick) YAxis() float32 {
	return j.AxisValue(1)
}

// the first hat of the joystick. up is negative in the same way as it is for
// the Y axis
func (j *joystick) hat() byte {
	if j.joy.NumHats() == 0 {
		return sdl.HAT_CENTERED
	}
	return j.joy.Hat(0)
}

func (j *joystick) PovX() float32 {
	h := j.hat()
	switch {
	case h&sdl.HAT_LEFT == sdl.HAT_LEFT:
		return -1
	case h&sdl.HAT_RIGHT == sdl.HAT_RIGHT:
		return 1
	}
	return 0
}

func (j *joystick) PovY() float32 {
	h := j.hat()
	switch {
	case h&sdl.HAT_UP == sdl.HAT_UP:
		return -1
	case h&sdl.HAT_DOWN == sdl.HAT_DOWN:
		return 1
	}
	return 0
}

func (j *joystick) ButtonCount() int {
	return j.joy.NumButtons()
}

func (j *joystick) ButtonDown(button int) bool {
	if button < 0 || button >= j.joy.NumButtons() {
		return false
	}
	return j.joy.Button(button) == 1
}

// Controllers implements the userinput.ControllerSource interface. Must be
// called from the main thread.
func (src *Source) Controllers() ([]userinput.Controller, error) {
	err := sdl.InitSubSystem(sdl.INIT_JOYSTICK)
	if err != nil {
		return nil, fmt.Errorf("sdlpoll: %w", err)
	}

	var cs []userinput.Controller
	for i := 0; i < sdl.NumJoysticks(); i++ {
		joy := sdl.JoystickOpen(i)
		if joy == nil || !joy.Attached() {
			logger.Logf(logger.Allow, "sdlpoll", "joystick %d: cannot open", i)
			continue
		}
		logger.Logf(logger.Allow, "sdlpoll", "joystick: %s", joy.Name())
		j := &joystick{joy: joy}
		src.joysticks = append(src.joysticks, j)
		cs = append(cs, j)
	}

	return cs, nil
}
