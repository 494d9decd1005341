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
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/framepoll/curated"
	"github.com/jetsetilly/framepoll/userinput"
)

// Sentinel errors for the Playback type.
const (
	PlaybackEnded       = "playback: ended at frame %d"
	MalformedTranscript = "playback: malformed transcript at line %d: %v"
)

// Playback is an implementation of userinput.Source that replays a transcript
// made by a Recorder. Each call to KeyTransitions() advances playback by one
// frame.
type Playback struct {
	sequence []entry
	seqCt    int

	frame int

	// the last frame where an entry occurs
	endFrame int

	// transitions for the current frame
	keys []userinput.KeyTransition
	ptr  []userinput.PointerTransition

	// state reconstructed from the transcript
	x, y        int
	grabbed     bool
	focused     bool
	keysHeld    map[int]bool
	buttonsHeld map[int]bool
}

func (plb *Playback) String() string {
	if plb.endFrame == 0 {
		return fmt.Sprintf("%d/0", plb.frame)
	}
	return fmt.Sprintf("%d/%d (%.1f%%)", plb.frame, plb.endFrame, 100*(float64(plb.frame)/float64(plb.endFrame)))
}

// NewPlayback is the preferred method of initialisation for the Playback
// type. The entire transcript is read and parsed before playback starts.
// Entries for frame zero are applied immediately.
func NewPlayback(transcript io.Reader) (*Playback, error) {
	plb := &Playback{
		focused:     true,
		keysHeld:    make(map[int]bool),
		buttonsHeld: make(map[int]bool),
	}

	buffer, err := io.ReadAll(transcript)
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}

	// convert transcript to an array of lines. the final newline does not
	// start a new line
	lines := strings.Split(strings.TrimSuffix(string(buffer), "\n"), "\n")

	err = readHeader(lines)
	if err != nil {
		return nil, err
	}

	for i := numHeaderLines; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}

		e, err := parseEntry(lines[i], i+1)
		if err != nil {
			return nil, err
		}

		if e.frame < plb.endFrame {
			return nil, curated.Errorf(MalformedTranscript, i+1, fmt.Sprintf("frame %d is out of order", e.frame))
		}
		plb.endFrame = e.frame

		plb.sequence = append(plb.sequence, e)
	}

	plb.apply()

	return plb, nil
}

// apply all entries for the current frame
func (plb *Playback) apply() {
	plb.keys = plb.keys[:0]
	plb.ptr = plb.ptr[:0]

	for plb.seqCt < len(plb.sequence) {
		e := plb.sequence[plb.seqCt]
		if e.frame > plb.frame {
			break
		}
		plb.seqCt++

		switch e.kind {
		case kindKey:
			plb.keys = append(plb.keys, e.key)
			plb.keysHeld[e.key.Code] = e.key.Down
		case kindPointer:
			plb.ptr = append(plb.ptr, e.ptr)
			if e.ptr.Button != userinput.NoButton {
				plb.buttonsHeld[e.ptr.Button] = e.ptr.Down
				plb.x, plb.y = e.ptr.X, e.ptr.Y
			}
		case kindPos:
			plb.x, plb.y = e.x, e.y
		case kindGrab:
			plb.grabbed = e.flag
		case kindFocus:
			plb.focused = e.flag
		}
	}
}

// Ended returns a PlaybackEnded error once every frame of the transcript has
// been played.
func (plb *Playback) Ended() error {
	if plb.frame > plb.endFrame {
		return curated.Errorf(PlaybackEnded, plb.endFrame)
	}
	return nil
}

// KeyTransitions implements the userinput.Source interface.
func (plb *Playback) KeyTransitions() []userinput.KeyTransition {
	plb.frame++
	plb.apply()
	if len(plb.keys) == 0 {
		return nil
	}
	return append([]userinput.KeyTransition(nil), plb.keys...)
}

// PointerTransitions implements the userinput.Source interface.
func (plb *Playback) PointerTransitions() []userinput.PointerTransition {
	if len(plb.ptr) == 0 {
		return nil
	}
	ptr := append([]userinput.PointerTransition(nil), plb.ptr...)
	plb.ptr = plb.ptr[:0]
	return ptr
}

// PointerPosition implements the userinput.Source interface.
func (plb *Playback) PointerPosition() (int, int) {
	return plb.x, plb.y
}

// PointerGrabbed implements the userinput.Source interface.
func (plb *Playback) PointerGrabbed() bool {
	return plb.grabbed
}

// Focused implements the userinput.Source interface.
func (plb *Playback) Focused() bool {
	return plb.focused
}

// KeyDown implements the userinput.Source interface.
func (plb *Playback) KeyDown(code int) bool {
	return plb.keysHeld[code]
}

// ButtonDown implements the userinput.Source interface.
func (plb *Playback) ButtonDown(button int) bool {
	return plb.buttonsHeld[button]
}
