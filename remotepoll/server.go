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
	"net/http"
	"sync/atomic"

	"github.com/gorilla/websocket"
	"github.com/jetsetilly/framepoll/logger"
	"github.com/jetsetilly/framepoll/userinput"
)

// maximum size of a single message in bytes
const maxMessageSize = 1024

// Server receives transitions from websocket clients. Any number of clients
// can be connected at once and their transitions are merged.
type Server struct {
	*userinput.Buffer

	upgrader websocket.Upgrader

	clients atomic.Int32
}

// NewServer is the preferred method of initialisation for the Server type.
func NewServer() *Server {
	return &Server{
		Buffer: userinput.NewBuffer(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  maxMessageSize,
			WriteBufferSize: maxMessageSize,
			CheckOrigin: func(_ *http.Request) bool {
				return true
			},
		},
	}
}

// Clients returns the number of connected clients.
func (srv *Server) Clients() int {
	return int(srv.clients.Load())
}

// ServeHTTP implements the http.Handler interface.
func (srv *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !websocket.IsWebSocketUpgrade(r) {
		http.Error(w, "websocket connection required", http.StatusBadRequest)
		return
	}

	conn, err := srv.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already replied to the client
		logger.Log(logger.Allow, "remotepoll", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(maxMessageSize)

	srv.clients.Add(1)
	defer srv.clients.Add(-1)

	logger.Logf(logger.Allow, "remotepoll", "client connected (%s)", r.RemoteAddr)

	c := client{
		srv:     srv,
		keys:    make(map[int]bool),
		buttons: make(map[int]bool),
	}
	defer c.release()

	for {
		typ, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Log(logger.Allow, "remotepoll", err)
			}
			logger.Logf(logger.Allow, "remotepoll", "client disconnected (%s)", r.RemoteAddr)
			return
		}
		if typ != websocket.TextMessage {
			logger.Log(logger.Allow, "remotepoll", "binary messages are not supported")
			continue
		}
		if err := c.handle(data); err != nil {
			logger.Log(logger.Allow, "remotepoll", err)
		}
	}
}

// client tracks the keys and buttons held by a single connection
type client struct {
	srv *Server

	keys    map[int]bool
	buttons map[int]bool

	// last known position of the pointer
	x, y int
}

func (c *client) handle(data []byte) error {
	m, err := decode(data)
	if err != nil {
		return err
	}

	switch m.Type {
	case TypeKey:
		if m.Repeat {
			return nil
		}
		c.srv.PushKey(userinput.KeyTransition{Code: m.Code, Char: m.char(), Down: m.Down})
		if m.Down {
			c.keys[m.Code] = true
		} else {
			delete(c.keys, m.Code)
		}

	case TypePointer:
		if m.Button == nil {
			c.srv.PushPointer(userinput.PointerTransition{
				Button: userinput.NoButton,
				X:      c.x,
				Y:      c.y,
				DX:     m.DX,
				DY:     m.DY,
				Wheel:  m.Wheel,
			})
			return nil
		}
		c.x, c.y = m.X, m.Y
		c.srv.PushPointer(userinput.PointerTransition{Button: *m.Button, Down: m.Down, X: m.X, Y: m.Y})
		if m.Down {
			c.buttons[*m.Button] = true
		} else {
			delete(c.buttons, *m.Button)
		}

	case TypePosition:
		c.x, c.y = m.X, m.Y
		c.srv.SetPointerPosition(m.X, m.Y)

	case TypeFocus:
		c.srv.SetFocused(m.Focused)

	case TypeGrab:
		c.srv.SetPointerGrabbed(m.Grabbed)
	}

	return nil
}

// release everything the client still holds
func (c *client) release() {
	for k := range c.keys {
		c.srv.PushKey(userinput.KeyTransition{Code: k})
	}
	for b := range c.buttons {
		c.srv.PushPointer(userinput.PointerTransition{Button: b, X: c.x, Y: c.y})
	}
}
