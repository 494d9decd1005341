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

func TestKeyEdges(t *testing.T) {
	inp, src, _, rec := newTestInput(t)

	keyDown(src, input.KeyA, 'a')
	inp.Poll(100, viewHeight)

	// a second press without a release is not an edge
	keyDown(src, input.KeyA, 'a')
	inp.Poll(100, viewHeight)

	keyUp(src, input.KeyA, 'a')
	inp.Poll(100, viewHeight)

	// nor is a second release
	keyUp(src, input.KeyA, 'a')
	inp.Poll(100, viewHeight)

	keyDown(src, input.KeyA, 'a')
	inp.Poll(100, viewHeight)

	test.ExpectEquality(t, strings.Join(rec.events, "\n"),
		"key pressed 30 'a'\nkey released 30 'a'\nkey pressed 30 'a'")

	// polling with no transitions produces no events
	inp.Poll(100, viewHeight)
	inp.Poll(100, viewHeight)
	test.ExpectEquality(t, len(rec.events), 3)
}

func TestKeyReleaseCharacter(t *testing.T) {
	inp, src, _, rec := newTestInput(t)

	// the release is reported with the character of the press
	keyDown(src, input.KeyA, 'A')
	keyUp(src, input.KeyA, 0)
	inp.Poll(100, viewHeight)

	test.DemandEquality(t, len(rec.events), 2)
	test.ExpectEquality(t, rec.events[1], "key released 30 'A'")
}

func TestKeyPressedQuery(t *testing.T) {
	inp, src, _, _ := newTestInput(t)

	test.ExpectFailure(t, inp.IsKeyPressed(input.KeyA))

	keyDown(src, input.KeyA, 'a')
	inp.Poll(100, viewHeight)
	test.ExpectSuccess(t, inp.IsKeyPressed(input.KeyA))
	test.ExpectFailure(t, inp.IsKeyPressed(input.KeyA))
	test.ExpectSuccess(t, inp.IsKeyDown(input.KeyA))

	// the record of a press survives the release of the key
	keyDown(src, input.KeyB, 'b')
	keyUp(src, input.KeyB, 'b')
	inp.Poll(100, viewHeight)
	test.ExpectFailure(t, inp.IsKeyDown(input.KeyB))
	test.ExpectSuccess(t, inp.IsKeyPressed(input.KeyB))
	test.ExpectFailure(t, inp.IsKeyPressed(input.KeyB))

	// clearing the record
	keyDown(src, input.KeyC, 'c')
	inp.Poll(100, viewHeight)
	inp.ClearKeyPressedRecord()
	test.ExpectFailure(t, inp.IsKeyPressed(input.KeyC))
}

func TestKeyCodeOutOfRange(t *testing.T) {
	inp, src, _, rec := newTestInput(t)

	src.PushKey(userinput.KeyTransition{Code: 999, Char: 'x', Down: true})
	src.PushKey(userinput.KeyTransition{Code: -1, Char: 'x', Down: false})
	inp.Poll(100, viewHeight)

	test.ExpectEquality(t, strings.Join(rec.events, "\n"),
		"key pressed 0 'x'\nkey released 0 'x'")
}

func TestQueryMisuse(t *testing.T) {
	inp, _, _, _ := newTestInput(t)

	expectPanic(t, func() { inp.IsKeyPressed(input.KeyCount) })
	expectPanic(t, func() { inp.IsKeyPressed(-1) })
	expectPanic(t, func() { inp.IsMousePressed(input.MaxMouseButtons) })
	expectPanic(t, func() { inp.IsControlPressed(input.ControlLeft, 0) })
}

func TestKeyRepeat(t *testing.T) {
	inp, src, clk, rec := newTestInput(t)
	inp.EnableKeyRepeat()
	inp.SetKeyRepeatTiming(500*time.Millisecond, 100*time.Millisecond)

	clk.at(0)
	keyDown(src, input.KeyA, 'a')
	inp.Poll(100, viewHeight)

	for _, ms := range []int{250, 501, 602, 703, 750} {
		clk.at(ms)
		inp.Poll(100, viewHeight)
	}

	test.ExpectEquality(t, len(rec.filter("key pressed")), 4)

	// releasing the key stops the repeat
	clk.at(760)
	keyUp(src, input.KeyA, 'a')
	inp.Poll(100, viewHeight)

	for _, ms := range []int{850, 1000, 2000} {
		clk.at(ms)
		inp.Poll(100, viewHeight)
	}

	test.ExpectEquality(t, len(rec.filter("key pressed")), 4)
	test.ExpectEquality(t, len(rec.filter("key released")), 1)

	// repeated presses do not set the one-shot latch
	test.ExpectSuccess(t, inp.IsKeyPressed(input.KeyA))
	test.ExpectFailure(t, inp.IsKeyPressed(input.KeyA))
}

func TestKeyRepeatDisabled(t *testing.T) {
	inp, src, clk, rec := newTestInput(t)
	test.ExpectFailure(t, inp.IsKeyRepeatEnabled())

	clk.at(0)
	keyDown(src, input.KeyA, 'a')
	inp.Poll(100, viewHeight)

	clk.at(5000)
	inp.Poll(100, viewHeight)

	test.ExpectEquality(t, len(rec.filter("key pressed")), 1)
}

func TestPause(t *testing.T) {
	inp, src, _, rec := newTestInput(t)

	keyDown(src, input.KeyA, 'a')
	buttonDown(src, input.MouseLeftButton, 10, 10)
	inp.Poll(100, viewHeight)
	n := len(rec.events)

	inp.Pause()
	test.ExpectSuccess(t, inp.IsPaused())

	// latches are cleared immediately
	test.ExpectFailure(t, inp.IsKeyPressed(input.KeyA))
	test.ExpectFailure(t, inp.IsMousePressed(input.MouseLeftButton))

	// transitions while paused produce no events and set no latches
	keyUp(src, input.KeyA, 'a')
	keyDown(src, input.KeyB, 'b')
	buttonUp(src, input.MouseLeftButton, 10, 10)
	src.PushPointer(userinput.PointerTransition{Button: userinput.NoButton, Wheel: 1})
	inp.Poll(100, viewHeight)
	test.ExpectEquality(t, len(rec.events), n)
	test.ExpectFailure(t, inp.IsKeyPressed(input.KeyB))

	// the transitions are not delivered after resuming
	inp.Resume()
	test.ExpectFailure(t, inp.IsPaused())
	inp.Poll(100, viewHeight)
	test.ExpectEquality(t, len(rec.events), n)

	// the key released during the pause can be pressed again
	keyDown(src, input.KeyA, 'a')
	inp.Poll(100, viewHeight)
	test.ExpectEquality(t, len(rec.events), n+1)
	test.ExpectEquality(t, rec.events[n], "key pressed 30 'a'")
}

func TestFocusLoss(t *testing.T) {
	inp, src, _, rec := newTestInput(t)

	keyDown(src, input.KeyA, 'a')
	inp.Poll(100, viewHeight)

	src.SetFocused(false)
	inp.Poll(100, viewHeight)

	// losing focus clears the latches but does not pause
	test.ExpectFailure(t, inp.IsKeyPressed(input.KeyA))
	test.ExpectFailure(t, inp.IsPaused())

	// events are still delivered
	keyUp(src, input.KeyA, 'a')
	inp.Poll(100, viewHeight)
	test.ExpectEquality(t, rec.events[len(rec.events)-1], "key released 30 'a'")
}

func TestKeyRepeatAfterPause(t *testing.T) {
	inp, src, clk, rec := newTestInput(t)
	inp.EnableKeyRepeat()
	inp.SetKeyRepeatTiming(500*time.Millisecond, 100*time.Millisecond)

	clk.at(0)
	keyDown(src, input.KeyA, 'a')
	inp.Poll(100, viewHeight)

	// a key held through a pause continues to repeat
	inp.Pause()
	inp.Resume()

	for _, ms := range []int{501, 602, 703} {
		clk.at(ms)
		inp.Poll(100, viewHeight)
	}
	test.ExpectEquality(t, len(rec.filter("key pressed")), 4)
}

func TestKeyRepeatAfterFocusLoss(t *testing.T) {
	inp, src, clk, rec := newTestInput(t)
	inp.EnableKeyRepeat()
	inp.SetKeyRepeatTiming(500*time.Millisecond, 100*time.Millisecond)

	clk.at(0)
	keyDown(src, input.KeyA, 'a')
	inp.Poll(100, viewHeight)

	// one frame without focus
	clk.at(16)
	src.SetFocused(false)
	inp.Poll(100, viewHeight)
	src.SetFocused(true)

	for _, ms := range []int{501, 602, 703} {
		clk.at(ms)
		inp.Poll(100, viewHeight)
	}
	test.ExpectEquality(t, len(rec.filter("key pressed")), 4)
	test.ExpectEquality(t, len(rec.filter("key released")), 0)
}

// source that stops reporting held keys and buttons, as happens when a
// release occurs while another window has focus
type missedRelease struct {
	*userinput.Buffer
	missed bool
}

func (src *missedRelease) KeyDown(code int) bool {
	return !src.missed && src.Buffer.KeyDown(code)
}

func (src *missedRelease) ButtonDown(button int) bool {
	return !src.missed && src.Buffer.ButtonDown(button)
}

func TestMissedReleaseOnRefocus(t *testing.T) {
	src := &missedRelease{Buffer: userinput.NewBuffer()}
	inp := input.NewInput(src, viewHeight)
	inp.SetClock(newTestClock())
	rec := &recorder{name: "rec"}
	inp.AddListener(rec)
	inp.Poll(100, viewHeight)

	keyDown(src.Buffer, input.KeyA, 'a')
	buttonDown(src.Buffer, input.MouseLeftButton, 10, 10)
	inp.Poll(100, viewHeight)

	src.SetFocused(false)
	inp.Poll(100, viewHeight)

	// on refocus the source no longer reports the key or button as held. the
	// held state is dropped without a release event
	src.missed = true
	src.SetFocused(true)
	inp.Poll(100, viewHeight)
	test.ExpectEquality(t, len(rec.filter("key released")), 0)
	test.ExpectEquality(t, len(rec.filter("released 0")), 0)

	// so the next press is delivered
	src.missed = false
	keyDown(src.Buffer, input.KeyA, 'a')
	buttonDown(src.Buffer, input.MouseLeftButton, 10, 10)
	inp.Poll(100, viewHeight)
	test.ExpectEquality(t, len(rec.filter("key pressed")), 2)
	test.ExpectEquality(t, len(rec.filter("pressed 0")), 2)
}

func TestPressAfterRefocus(t *testing.T) {
	inp, src, _, rec := newTestInput(t)

	keyDown(src, input.KeyA, 'a')
	inp.Poll(100, viewHeight)

	src.SetFocused(false)
	inp.Poll(100, viewHeight)

	// the release was never reported. a press waiting when focus returns is
	// a new press
	src.SetFocused(true)
	keyDown(src, input.KeyA, 'a')
	inp.Poll(100, viewHeight)
	test.ExpectEquality(t, len(rec.filter("key pressed")), 2)

	// a press while the key is known to be held is still ignored
	keyDown(src, input.KeyA, 'a')
	inp.Poll(100, viewHeight)
	test.ExpectEquality(t, len(rec.filter("key pressed")), 2)
}

func TestKeyNames(t *testing.T) {
	test.ExpectEquality(t, input.KeyName(input.KeyEscape), "ESCAPE")
	test.ExpectEquality(t, input.KeyName(input.KeyA), "A")
	test.ExpectEquality(t, input.KeyName(input.KeyEnter), "RETURN")
	test.ExpectEquality(t, input.KeyName(0xff), "")

	code, ok := input.KeyCode("SPACE")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, code, input.KeySpace)

	_, ok = input.KeyCode("NOT A KEY")
	test.ExpectFailure(t, ok)
}

func TestRuneKey(t *testing.T) {
	for _, tc := range []struct {
		r    rune
		code int
	}{
		{'a', input.KeyA},
		{'Z', input.KeyZ},
		{'0', input.Key0},
		{'!', input.Key1},
		{' ', input.KeySpace},
		{'?', input.KeySlash},
		{'\r', input.KeyReturn},
	} {
		code, ok := input.RuneKey(tc.r)
		test.ExpectSuccess(t, ok)
		test.ExpectEquality(t, code, tc.code)
	}

	_, ok := input.RuneKey('é')
	test.ExpectFailure(t, ok)
}
