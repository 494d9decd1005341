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
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/jetsetilly/framepoll/input"
)

// eventPrinter writes every event it receives to an io.Writer
type eventPrinter struct {
	input.Adapter
	output io.Writer
}

func (p *eventPrinter) KeyPressed(key int, char rune) {
	fmt.Fprintf(p.output, "key pressed: %s%s\n", input.KeyName(key), printable(char))
}

func (p *eventPrinter) KeyReleased(key int, char rune) {
	fmt.Fprintf(p.output, "key released: %s%s\n", input.KeyName(key), printable(char))
}

func (p *eventPrinter) MouseWheelMoved(change int) {
	fmt.Fprintf(p.output, "wheel: %+d\n", change)
}

func (p *eventPrinter) MouseClicked(button int, x int, y int, clickCount int) {
	fmt.Fprintf(p.output, "mouse clicked: %d at %d,%d (x%d)\n", button, x, y, clickCount)
}

func (p *eventPrinter) MousePressed(button int, x int, y int) {
	fmt.Fprintf(p.output, "mouse pressed: %d at %d,%d\n", button, x, y)
}

func (p *eventPrinter) MouseReleased(button int, x int, y int) {
	fmt.Fprintf(p.output, "mouse released: %d at %d,%d\n", button, x, y)
}

func (p *eventPrinter) MouseMoved(oldX int, oldY int, newX int, newY int) {
	fmt.Fprintf(p.output, "mouse moved: %d,%d -> %d,%d\n", oldX, oldY, newX, newY)
}

func (p *eventPrinter) MouseDragged(oldX int, oldY int, newX int, newY int) {
	fmt.Fprintf(p.output, "mouse dragged: %d,%d -> %d,%d\n", oldX, oldY, newX, newY)
}

func (p *eventPrinter) ControllerDirectionPressed(controller int, dir input.Direction) {
	fmt.Fprintf(p.output, "controller %d pressed: %s\n", controller, dir)
}

func (p *eventPrinter) ControllerDirectionReleased(controller int, dir input.Direction) {
	fmt.Fprintf(p.output, "controller %d released: %s\n", controller, dir)
}

func (p *eventPrinter) ControllerButtonPressed(controller int, button int) {
	fmt.Fprintf(p.output, "controller %d pressed: button %d\n", controller, button)
}

func (p *eventPrinter) ControllerButtonReleased(controller int, button int) {
	fmt.Fprintf(p.output, "controller %d released: button %d\n", controller, button)
}

// quoted character preceded by a space or nothing at all if the character is
// not printable
func printable(char rune) string {
	if char < ' ' || char == 0x7f {
		return ""
	}
	return fmt.Sprintf(" %q", char)
}

// crlfWriter replaces newlines with carriage return and newline. needed when
// writing to a terminal in raw mode
type crlfWriter struct {
	w io.Writer
}

func (cw crlfWriter) Write(p []byte) (int, error) {
	_, err := cw.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n")))
	if err != nil {
		return 0, err
	}
	return len(p), nil
}

// screenLog is an io.Writer that shows the most recent lines written to it on
// a tcell.Screen
type screenLog struct {
	crit   sync.Mutex
	screen tcell.Screen

	lines []string

	// text written since the last newline
	partial strings.Builder
}

func newScreenLog(screen tcell.Screen) *screenLog {
	return &screenLog{screen: screen}
}

func (sl *screenLog) Write(p []byte) (int, error) {
	sl.crit.Lock()
	defer sl.crit.Unlock()

	sl.partial.Write(p)
	s := sl.partial.String()
	idx := strings.LastIndexByte(s, '\n')
	if idx == -1 {
		return len(p), nil
	}

	sl.lines = append(sl.lines, strings.Split(s[:idx], "\n")...)
	sl.partial.Reset()
	sl.partial.WriteString(s[idx+1:])

	_, height := sl.screen.Size()
	if len(sl.lines) > height {
		sl.lines = sl.lines[len(sl.lines)-height:]
	}

	sl.draw()
	return len(p), nil
}

func (sl *screenLog) draw() {
	sl.screen.Clear()
	width, _ := sl.screen.Size()
	for y, l := range sl.lines {
		x := 0
		for _, r := range l {
			if x >= width {
				break // for loop
			}
			sl.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
			x++
		}
	}
	sl.screen.Show()
}
