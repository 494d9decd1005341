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

package userinput_test

import (
	"testing"

	"github.com/jetsetilly/framepoll/test"
	"github.com/jetsetilly/framepoll/userinput"
)

func TestBufferDrain(t *testing.T) {
	b := userinput.NewBuffer()
	test.ExpectSuccess(t, b.Focused())

	b.PushKey(userinput.KeyTransition{Code: 30, Char: 'a', Down: true})
	test.ExpectSuccess(t, b.KeyDown(30))

	b.PushKey(userinput.KeyTransition{Code: 30, Char: 'a', Down: false})
	test.ExpectFailure(t, b.KeyDown(30))

	k := b.KeyTransitions()
	test.DemandEquality(t, len(k), 2)
	test.ExpectEquality(t, k[0].Down, true)
	test.ExpectEquality(t, k[1].Down, false)

	// the queue is empty after draining
	test.ExpectEquality(t, len(b.KeyTransitions()), 0)
}

func TestBufferPointer(t *testing.T) {
	b := userinput.NewBuffer()

	b.PushPointer(userinput.PointerTransition{Button: 1, Down: true, X: 10, Y: 20})
	test.ExpectSuccess(t, b.ButtonDown(1))
	test.ExpectFailure(t, b.ButtonDown(0))

	x, y := b.PointerPosition()
	test.ExpectEquality(t, x, 10)
	test.ExpectEquality(t, y, 20)

	// motion does not change the absolute position
	b.PushPointer(userinput.PointerTransition{Button: userinput.NoButton, DX: 5, DY: 5})
	x, y = b.PointerPosition()
	test.ExpectEquality(t, x, 10)
	test.ExpectEquality(t, y, 20)

	test.ExpectEquality(t, len(b.PointerTransitions()), 2)
	test.ExpectEquality(t, len(b.PointerTransitions()), 0)

	b.SetFocused(false)
	test.ExpectFailure(t, b.Focused())
	b.SetPointerGrabbed(true)
	test.ExpectSuccess(t, b.PointerGrabbed())
}

func TestNormalise(t *testing.T) {
	test.ExpectEquality(t, userinput.Normalise(0), 0)
	test.ExpectEquality(t, userinput.Normalise(100), 0)
	test.ExpectEquality(t, userinput.Normalise(32767), 1.0)
	test.ExpectEquality(t, userinput.Normalise(-32768), -1.0)
	test.ExpectApproximate(t, userinput.Normalise(16384), 0.5, 0.01)
}
