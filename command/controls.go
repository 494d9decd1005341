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

package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/framepoll/curated"
	"github.com/jetsetilly/framepoll/input"
)

// UnknownControl is returned by ParseControl() when a string does not
// describe a control.
const UnknownControl = "command: unknown control (%s)"

// Control is a key, button or direction that can be bound to a Command. All
// implementations are comparable and can be used as map keys.
//
// The String() function returns the serialised form of the control, which
// can be converted back with ParseControl().
type Control interface {
	fmt.Stringer
	isControl()
}

// KeyControl is a key on the keyboard. Key is one of the input.Key* values.
type KeyControl struct {
	Key int
}

func (_ KeyControl) isControl() {}

func (c KeyControl) String() string {
	return fmt.Sprintf("key/%d", c.Key)
}

// MouseButtonControl is a button on the mouse. Button is one of the
// input.Mouse*Button values.
type MouseButtonControl struct {
	Button int
}

func (_ MouseButtonControl) isControl() {}

func (c MouseButtonControl) String() string {
	return fmt.Sprintf("mouse/%d", c.Button)
}

// ControllerDirectionControl is a direction of a controller's stick or hat.
type ControllerDirectionControl struct {
	Controller int
	Direction  input.Direction
}

func (_ ControllerDirectionControl) isControl() {}

func (c ControllerDirectionControl) String() string {
	return fmt.Sprintf("controller/%d/%s", c.Controller, c.Direction)
}

// ControllerButtonControl is a button on a controller. Buttons are numbered
// from one, in the same way as they are by input.ControllerListener.
type ControllerButtonControl struct {
	Controller int
	Button     int
}

func (_ ControllerButtonControl) isControl() {}

func (c ControllerButtonControl) String() string {
	return fmt.Sprintf("controller/%d/button/%d", c.Controller, c.Button)
}

var directions = map[string]input.Direction{
	input.DirLeft.String():  input.DirLeft,
	input.DirRight.String(): input.DirRight,
	input.DirUp.String():    input.DirUp,
	input.DirDown.String():  input.DirDown,
}

// ParseControl converts the serialised form of a control back into a
// Control. Returns an UnknownControl error if the string is not recognised.
func ParseControl(s string) (Control, error) {
	flds := strings.Split(s, "/")

	// all controls have a numeric second field
	if len(flds) < 2 {
		return nil, curated.Errorf(UnknownControl, s)
	}
	n, err := strconv.Atoi(flds[1])
	if err != nil || n < 0 {
		return nil, curated.Errorf(UnknownControl, s)
	}

	switch flds[0] {
	case "key":
		if len(flds) == 2 && n < input.KeyCount {
			return KeyControl{Key: n}, nil
		}
	case "mouse":
		if len(flds) == 2 && n < input.MaxMouseButtons {
			return MouseButtonControl{Button: n}, nil
		}
	case "controller":
		switch len(flds) {
		case 3:
			if d, ok := directions[flds[2]]; ok {
				return ControllerDirectionControl{Controller: n, Direction: d}, nil
			}
		case 4:
			if flds[2] != "button" {
				break
			}
			b, err := strconv.Atoi(flds[3])
			if err == nil && b > 0 {
				return ControllerButtonControl{Controller: n, Button: b}, nil
			}
		}
	}

	return nil, curated.Errorf(UnknownControl, s)
}
