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

package remotepoll

import (
	"fmt"
	"unicode/utf8"

	"github.com/jetsetilly/framepoll/curated"
	"github.com/jetsetilly/framepoll/input"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MalformedMessage is the curated error pattern for messages that can not be
// decoded.
const MalformedMessage = "remotepoll: malformed message: %v"

// message types
const (
	TypeKey      = "key"
	TypePointer  = "pointer"
	TypePosition = "position"
	TypeFocus    = "focus"
	TypeGrab     = "grab"
)

// Message is the decoded form of a single websocket message. Only the fields
// relevant to the type are used.
type Message struct {
	Type string `json:"type"`

	// key
	Code   int    `json:"code,omitempty"`
	Char   string `json:"char,omitempty"`
	Repeat bool   `json:"repeat,omitempty"`

	// key and pointer
	Down bool `json:"down,omitempty"`

	// pointer. a nil button indicates motion
	Button *int `json:"button,omitempty"`
	DX     int  `json:"dx,omitempty"`
	DY     int  `json:"dy,omitempty"`
	Wheel  int  `json:"wheel,omitempty"`

	// pointer and position
	X int `json:"x,omitempty"`
	Y int `json:"y,omitempty"`

	Focused bool `json:"focused,omitempty"`
	Grabbed bool `json:"grabbed,omitempty"`
}

// KeyMessage is a convenience function that creates a key message.
func KeyMessage(code int, char rune, down bool) Message {
	m := Message{Type: TypeKey, Code: code, Down: down}
	if char != 0 {
		m.Char = string(char)
	}
	return m
}

// ButtonMessage is a convenience function that creates a pointer message for
// a button transition.
func ButtonMessage(button int, down bool, x int, y int) Message {
	return Message{Type: TypePointer, Button: &button, Down: down, X: x, Y: y}
}

// decode and validate a message
func decode(data []byte) (Message, error) {
	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		return Message{}, curated.Errorf(MalformedMessage, err)
	}

	switch m.Type {
	case TypeKey:
		if m.Code < 0 || m.Code >= input.KeyCount {
			return Message{}, curated.Errorf(MalformedMessage, fmt.Sprintf("key code out of range (%d)", m.Code))
		}
		if utf8.RuneCountInString(m.Char) > 1 {
			return Message{}, curated.Errorf(MalformedMessage, fmt.Sprintf("char must be a single character (%q)", m.Char))
		}
	case TypePointer:
		if m.Button != nil && (*m.Button < 0 || *m.Button >= input.MaxMouseButtons) {
			return Message{}, curated.Errorf(MalformedMessage, fmt.Sprintf("button out of range (%d)", *m.Button))
		}
	case TypePosition, TypeFocus, TypeGrab:
	case "":
		return Message{}, curated.Errorf(MalformedMessage, "missing type")
	default:
		return Message{}, curated.Errorf(MalformedMessage, fmt.Sprintf("unknown type (%s)", m.Type))
	}

	return m, nil
}

// the first rune of the char field or zero if the field is empty
func (m Message) char() rune {
	r, _ := utf8.DecodeRuneInString(m.Char)
	if r == utf8.RuneError {
		return 0
	}
	return r
}
