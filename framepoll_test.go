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

package main

import (
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/jetsetilly/framepoll/command"
	"github.com/jetsetilly/framepoll/input"
	"github.com/jetsetilly/framepoll/test"
)

func TestEventPrinter(t *testing.T) {
	tw := &test.CompareWriter{}
	p := &eventPrinter{output: tw}

	p.KeyPressed(input.KeyA, 'a')
	p.KeyReleased(input.KeyReturn, '\r')
	p.MouseClicked(0, 10, 20, 2)
	p.MouseWheelMoved(-1)
	p.ControllerDirectionPressed(1, input.DirLeft)
	p.ControllerButtonReleased(0, 3)

	test.DemandEquality(t, len(tw.Lines()), 6)
	test.ExpectEquality(t, tw.Lines()[0], "key pressed: A 'a'")
	test.ExpectEquality(t, tw.Lines()[1], "key released: RETURN")
	test.ExpectEquality(t, tw.Lines()[2], "mouse clicked: 0 at 10,20 (x2)")
	test.ExpectEquality(t, tw.Lines()[3], "wheel: -1")
	test.ExpectEquality(t, tw.Lines()[4], "controller 1 pressed: left")
	test.ExpectEquality(t, tw.Lines()[5], "controller 0 released: button 3")
}

func TestCRLFWriter(t *testing.T) {
	tw := &test.CompareWriter{}
	cw := crlfWriter{w: tw}

	n, err := cw.Write([]byte("one\ntwo\n"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 8)
	test.ExpectSuccess(t, tw.Compare("one\r\ntwo\r\n"))
}

func TestScreenLog(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	test.DemandSuccess(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(20, 2)

	sl := newScreenLog(screen)
	sl.Write([]byte("first\nsec"))
	sl.Write([]byte("ond\nthird\n"))

	// only the most recent lines that fit on the screen are kept
	test.DemandEquality(t, len(sl.lines), 2)
	test.ExpectEquality(t, sl.lines[0], "second")
	test.ExpectEquality(t, sl.lines[1], "third")
}

func TestHostPrefs(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	hp, err := newHostPrefs(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, hp.Bindings.String(), command.DefaultBindingsFile)

	test.ExpectFailure(t, hp.Bindings.Set("../bindings"))
	test.ExpectFailure(t, hp.Bindings.Set(""))
	test.ExpectEquality(t, hp.Bindings.String(), command.DefaultBindingsFile)

	test.DemandSuccess(t, hp.Bindings.Set("pad"))
	test.DemandSuccess(t, hp.dsk.Save())

	hp, err = newHostPrefs(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, hp.Bindings.String(), "pad")
}
