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

// Transform converts raw pointer coordinates to logical coordinates. The
// origin of raw coordinates is the bottom-left corner of the view and the
// origin of logical coordinates is the top-left corner.
//
// The fields should not be set to a non-positive scale.
type Transform struct {
	ScaleX  float64
	ScaleY  float64
	OffsetX float64
	OffsetY float64
}

// IdentityTransform does not scale or offset. The vertical flip is still
// applied.
var IdentityTransform = Transform{ScaleX: 1, ScaleY: 1}

// ToLogical converts raw coordinates to logical coordinates for a view of the
// given height.
func (t Transform) ToLogical(rawX int, rawY int, viewHeight int) (int, int) {
	x := float64(rawX)*t.ScaleX + t.OffsetX
	y := float64(viewHeight-rawY)*t.ScaleY + t.OffsetY
	return int(x), int(y)
}
