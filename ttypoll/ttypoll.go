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

package ttypoll

import (
	"bufio"
	"fmt"
	"io"
	"sync/atomic"
	"unicode"

	"github.com/jetsetilly/framepoll/input"
	"github.com/jetsetilly/framepoll/logger"
	"github.com/jetsetilly/framepoll/userinput"
	"github.com/pkg/term"
)

// DefaultTTY is the controlling terminal of the process.
const DefaultTTY = "/dev/tty"

// ascii codes with special meaning
const (
	keyCtrlC     = 0x03
	keyBackspace = 0x08
	keyTab       = 0x09
	keyNewline   = 0x0a
	keyReturn    = 0x0d
	keyEsc       = 0x1b
	keyDelete    = 0x7f
)

// the byte following keyEsc that indicates a control sequence
const escCSI = '['

// final byte of control sequences
var csiKeys = map[rune]int{
	'A': input.KeyUp,
	'B': input.KeyDown,
	'C': input.KeyRight,
	'D': input.KeyLeft,
	'H': input.KeyHome,
	'F': input.KeyEnd,
}

// control sequences of the form ESC [ n ~
var tildeKeys = map[rune]int{
	'2': input.KeyInsert,
	'3': input.KeyDelete,
	'5': input.KeyPrior,
	'6': input.KeyNext,
}

// Source reads keys from a tty.
type Source struct {
	*userinput.Buffer

	tty *term.Term

	// closed when the reading goroutine ends
	done chan struct{}

	quit atomic.Bool
}

// NewSource opens the tty at the specified path in raw mode and starts
// reading from it.
func NewSource(pth string) (*Source, error) {
	tty, err := term.Open(pth, term.RawMode)
	if err != nil {
		return nil, fmt.Errorf("ttypoll: %w", err)
	}
	src := newSource(tty)
	src.tty = tty
	return src, nil
}

func newSource(r io.Reader) *Source {
	src := &Source{
		Buffer: userinput.NewBuffer(),
		done:   make(chan struct{}),
	}
	go func() {
		defer close(src.done)
		err := src.read(bufio.NewReader(r))
		if err != nil && err != io.EOF {
			logger.Log(logger.Allow, "ttypoll", err)
		}
	}()
	return src
}

// Close restores the tty to the mode it was in before NewSource() was
// called.
func (src *Source) Close() error {
	if src.tty == nil {
		return nil
	}
	err := src.tty.Restore()
	if err != nil {
		return fmt.Errorf("ttypoll: %w", err)
	}
	err = src.tty.Close()
	if err != nil {
		return fmt.Errorf("ttypoll: %w", err)
	}
	return nil
}

// Quit returns true if Ctrl-C has been pressed.
func (src *Source) Quit() bool {
	return src.quit.Load()
}

func (src *Source) push(code int, char rune) {
	src.PushKey(userinput.KeyTransition{Code: code, Char: char, Down: true})
	src.PushKey(userinput.KeyTransition{Code: code, Char: char, Down: false})
}

// read runes until the reader fails
func (src *Source) read(rd *bufio.Reader) error {
	for {
		r, _, err := rd.ReadRune()
		if err != nil {
			return err
		}

		switch r {
		case keyCtrlC:
			src.quit.Store(true)

		case keyReturn, keyNewline:
			src.push(input.KeyReturn, '\r')

		case keyBackspace, keyDelete:
			src.push(input.KeyBack, '\b')

		case keyTab:
			src.push(input.KeyTab, '\t')

		case keyEsc:
			// an escape with nothing following it is the escape key
			if rd.Buffered() == 0 {
				src.push(input.KeyEscape, keyEsc)
				continue
			}
			if err := src.readEscape(rd); err != nil {
				return err
			}

		default:
			if !unicode.IsPrint(r) {
				logger.Logf(logger.Allow, "ttypoll", "unprintable character (%#02x)", r)
				continue
			}
			code, ok := input.RuneKey(r)
			if !ok {
				code = input.KeyUnknown
			}
			src.push(code, r)
		}
	}
}

// read the remainder of an escape sequence. unrecognised sequences are logged
// and ignored
func (src *Source) readEscape(rd *bufio.Reader) error {
	r, _, err := rd.ReadRune()
	if err != nil {
		return err
	}
	if r != escCSI {
		logger.Logf(logger.Allow, "ttypoll", "unrecognised escape sequence (ESC %c)", r)
		return nil
	}

	r, _, err = rd.ReadRune()
	if err != nil {
		return err
	}

	if k, ok := csiKeys[r]; ok {
		src.push(k, 0)
		return nil
	}

	// parameter bytes are consumed up to and including the final byte of the
	// sequence
	var params []rune
	for r >= 0x30 && r <= 0x3f {
		params = append(params, r)
		r, _, err = rd.ReadRune()
		if err != nil {
			return err
		}
	}

	if len(params) == 1 && r == '~' {
		if k, ok := tildeKeys[params[0]]; ok {
			src.push(k, 0)
			return nil
		}
	}

	logger.Logf(logger.Allow, "ttypoll", "unrecognised escape sequence (ESC [ %s%c)", string(params), r)
	return nil
}
