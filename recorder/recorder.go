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

package recorder

import (
	"bufio"
	"io"

	"github.com/jetsetilly/framepoll/curated"
	"github.com/jetsetilly/framepoll/logger"
	"github.com/jetsetilly/framepoll/userinput"
)

// RecordingError is returned by Recorder.End() if the transcript could not
// be written.
const RecordingError = "recorder: %v"

// Recorder is an implementation of userinput.Source that passes the state of
// another Source through unchanged, writing a transcript of every transition
// and state change.
//
// Controllers are not recorded. The controllers of the recorded Source are
// passed through by Controllers().
type Recorder struct {
	src    userinput.Source
	output *bufio.Writer

	// the frame is advanced on every call to KeyTransitions()
	frame int

	// the most recently recorded state
	x, y    int
	grabbed bool
	focused bool

	// the first write error. no more output is written once an error has
	// occurred
	err error
}

// NewRecorder is the preferred method of initialisation for the Recorder
// type. The initial state of the source is written to the transcript.
func NewRecorder(src userinput.Source, output io.Writer) (*Recorder, error) {
	rec := &Recorder{
		src:    src,
		output: bufio.NewWriter(output),
	}

	if err := writeHeader(rec.output); err != nil {
		return nil, curated.Errorf(RecordingError, err)
	}

	rec.x, rec.y = src.PointerPosition()
	rec.grabbed = src.PointerGrabbed()
	rec.focused = src.Focused()
	rec.write(entry{kind: kindPos, x: rec.x, y: rec.y})
	rec.write(entry{kind: kindGrab, flag: rec.grabbed})
	rec.write(entry{kind: kindFocus, flag: rec.focused})

	if rec.err != nil {
		return nil, rec.err
	}

	return rec, nil
}

func (rec *Recorder) write(e entry) {
	if rec.err != nil {
		return
	}
	e.frame = rec.frame
	if _, err := rec.output.WriteString(e.String() + "\n"); err != nil {
		rec.err = curated.Errorf(RecordingError, err)
		logger.Log(logger.Allow, "recorder", rec.err)
	}
}

// End the recording. The final frame is marked and any buffered output is
// flushed. Returns the first error that occurred during the recording.
func (rec *Recorder) End() error {
	rec.write(entry{kind: kindEnd})
	if rec.err != nil {
		return rec.err
	}
	if err := rec.output.Flush(); err != nil {
		rec.err = curated.Errorf(RecordingError, err)
	}
	return rec.err
}

// Frame returns the number of frames that have been recorded.
func (rec *Recorder) Frame() int {
	return rec.frame
}

// KeyTransitions implements the userinput.Source interface.
func (rec *Recorder) KeyTransitions() []userinput.KeyTransition {
	rec.frame++
	keys := rec.src.KeyTransitions()
	for _, k := range keys {
		rec.write(entry{kind: kindKey, key: k})
	}
	return keys
}

// PointerTransitions implements the userinput.Source interface.
func (rec *Recorder) PointerTransitions() []userinput.PointerTransition {
	ptr := rec.src.PointerTransitions()
	for _, p := range ptr {
		rec.write(entry{kind: kindPointer, ptr: p})
	}
	return ptr
}

// PointerPosition implements the userinput.Source interface.
func (rec *Recorder) PointerPosition() (int, int) {
	x, y := rec.src.PointerPosition()
	if x != rec.x || y != rec.y {
		rec.x, rec.y = x, y
		rec.write(entry{kind: kindPos, x: x, y: y})
	}
	return x, y
}

// PointerGrabbed implements the userinput.Source interface.
func (rec *Recorder) PointerGrabbed() bool {
	g := rec.src.PointerGrabbed()
	if g != rec.grabbed {
		rec.grabbed = g
		rec.write(entry{kind: kindGrab, flag: g})
	}
	return g
}

// Focused implements the userinput.Source interface.
func (rec *Recorder) Focused() bool {
	f := rec.src.Focused()
	if f != rec.focused {
		rec.focused = f
		rec.write(entry{kind: kindFocus, flag: f})
	}
	return f
}

// Controllers implements the userinput.ControllerSource interface. If the
// recorded Source does not support controllers then there are no controllers.
func (rec *Recorder) Controllers() ([]userinput.Controller, error) {
	if cs, ok := rec.src.(userinput.ControllerSource); ok {
		return cs.Controllers()
	}
	return nil, nil
}

// KeyDown implements the userinput.Source interface.
func (rec *Recorder) KeyDown(code int) bool {
	return rec.src.KeyDown(code)
}

// ButtonDown implements the userinput.Source interface.
func (rec *Recorder) ButtonDown(button int) bool {
	return rec.src.ButtonDown(button)
}
