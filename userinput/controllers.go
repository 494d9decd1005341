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

// Controller is a handle to a connected game controller. Axis values are
// normalised to the range -1.0 to 1.0.
type Controller interface {
	Name() string

	AxisCount() int
	AxisValue(axis int) float32
	AxisName(axis int) string

	// the primary stick
	XAxis() float32
	YAxis() float32

	// the point-of-view hat. zero if the controller has no hat
	PovX() float32
	PovY() float32

	ButtonCount() int
	ButtonDown(button int) bool
}

// DeadZone is applied by sources that read raw axis values. Values closer to
// zero than DeadZone are reported as zero.
const DeadZone = 0.05

// Normalise converts a raw signed 16bit axis value to the range -1.0 to 1.0,
// applying the DeadZone.
func Normalise(raw int16) float32 {
	var v float32
	if raw < 0 {
		v = float32(raw) / 32768.0
	} else {
		v = float32(raw) / 32767.0
	}
	if v > -DeadZone && v < DeadZone {
		return 0
	}
	return v
}
