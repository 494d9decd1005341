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

// Package remotepoll is an implementation of userinput.Source that receives
// transitions from remote clients over a websocket. The Server type is an
// http.Handler and can be added to any http.ServeMux.
//
// Each websocket text message is a single JSON object. The type field
// selects how the rest of the object is interpreted:
//
//	{"type": "key", "code": 30, "char": "a", "down": true}
//	{"type": "pointer", "button": 0, "down": true, "x": 10, "y": 20}
//	{"type": "pointer", "dx": 4, "dy": -2, "wheel": 1}
//	{"type": "position", "x": 10, "y": 20}
//	{"type": "focus", "focused": false}
//	{"type": "grab", "grabbed": true}
//
// A pointer message without a button field is motion and/or a wheel change.
// Key messages with the repeat field set are ignored, the input system
// schedules its own repeats.
//
// Malformed messages are logged and dropped. The connection is not closed.
// Keys and buttons still held when a client disconnects are released.
package remotepoll
