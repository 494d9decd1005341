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

	"github.com/gorilla/websocket"
)

// Client is a connection to a Server.
type Client struct {
	conn *websocket.Conn
}

// Dial connects to the Server at the websocket URL.
func Dial(url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("remotepoll: %w", err)
	}
	return &Client{conn: conn}, nil
}

// Send a message to the Server.
func (c *Client) Send(m Message) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("remotepoll: %w", err)
	}
	return c.SendRaw(data)
}

// SendRaw sends data to the Server without encoding it first.
func (c *Client) SendRaw(data []byte) error {
	err := c.conn.WriteMessage(websocket.TextMessage, data)
	if err != nil {
		return fmt.Errorf("remotepoll: %w", err)
	}
	return nil
}

// Close the connection cleanly.
func (c *Client) Close() error {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = c.conn.WriteMessage(websocket.CloseMessage, msg)
	return c.conn.Close()
}
