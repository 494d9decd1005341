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
	"strconv"
	"strings"

	"github.com/jetsetilly/framepoll/curated"
	"github.com/jetsetilly/framepoll/userinput"
)

// transcript file format
// ----------------------
//
// framepoll transcript
// <version>
// <frame>, <kind>, <fields...>
// ...
// <frame>, end
//
// the frame of each line is never less than the frame of the previous line.
// frame zero is the state of the source before the first poll

const (
	lineMagic int = iota
	lineVersion
	numHeaderLines
)

const (
	magic   = "framepoll transcript"
	version = "1"
)

const fieldSep = ", "

// the kind of each transcript line
const (
	kindKey     = "key"
	kindPointer = "ptr"
	kindPos     = "pos"
	kindGrab    = "grab"
	kindFocus   = "focus"

	// the final frame of the recording
	kindEnd = "end"
)

// first two fields of every line
const (
	fieldFrame int = iota
	fieldKind
	numCommonFields
)

// number of fields after the common fields for each kind
var kindFields = map[string]int{
	kindKey:     3, // code, char, down
	kindPointer: 7, // button, down, x, y, dx, dy, wheel
	kindPos:     2, // x, y
	kindGrab:    1,
	kindFocus:   1,
	kindEnd:     0,
}

// entry is a single line of a transcript
type entry struct {
	frame int
	kind  string

	key userinput.KeyTransition
	ptr userinput.PointerTransition

	x, y int
	flag bool

	// the line in the transcript the entry appears
	line int
}

func (e entry) String() string {
	var flds []string
	switch e.kind {
	case kindKey:
		flds = []string{itoa(e.key.Code), itoa(int(e.key.Char)), btoa(e.key.Down)}
	case kindPointer:
		flds = []string{itoa(e.ptr.Button), btoa(e.ptr.Down), itoa(e.ptr.X), itoa(e.ptr.Y),
			itoa(e.ptr.DX), itoa(e.ptr.DY), itoa(e.ptr.Wheel)}
	case kindPos:
		flds = []string{itoa(e.x), itoa(e.y)}
	case kindGrab, kindFocus:
		flds = []string{btoa(e.flag)}
	}
	s := fmt.Sprintf("%d%s%s", e.frame, fieldSep, e.kind)
	if len(flds) > 0 {
		s = fmt.Sprintf("%s%s%s", s, fieldSep, strings.Join(flds, fieldSep))
	}
	return s
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

func btoa(v bool) string {
	return strconv.FormatBool(v)
}

func writeHeader(w io.Writer) error {
	lines := make([]string, numHeaderLines)
	lines[lineMagic] = magic
	lines[lineVersion] = version
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

func readHeader(lines []string) error {
	if len(lines) <= lineMagic || lines[lineMagic] != magic {
		return curated.Errorf(MalformedTranscript, lineMagic+1, "not a transcript")
	}
	if len(lines) <= lineVersion {
		return curated.Errorf(MalformedTranscript, lineVersion+1, "missing version")
	}
	if lines[lineVersion] != version {
		return curated.Errorf(MalformedTranscript, lineVersion+1, fmt.Sprintf("unsupported version (%s)", lines[lineVersion]))
	}
	return nil
}

// parse a line of the transcript. the line number is used in error messages
func parseEntry(s string, line int) (entry, error) {
	e := entry{line: line}

	toks := strings.Split(s, fieldSep)
	if len(toks) < numCommonFields {
		return e, curated.Errorf(MalformedTranscript, line, "too few fields")
	}

	var err error
	e.frame, err = strconv.Atoi(toks[fieldFrame])
	if err != nil || e.frame < 0 {
		return e, curated.Errorf(MalformedTranscript, line, fmt.Sprintf("bad frame (%s)", toks[fieldFrame]))
	}

	e.kind = toks[fieldKind]
	n, ok := kindFields[e.kind]
	if !ok {
		return e, curated.Errorf(MalformedTranscript, line, fmt.Sprintf("unknown kind (%s)", e.kind))
	}

	toks = toks[numCommonFields:]
	if len(toks) != n {
		return e, curated.Errorf(MalformedTranscript, line, fmt.Sprintf("expected %d fields for %s", n, e.kind))
	}

	// parse the fields in order. the first error stops any further parsing
	p := fieldParser{toks: toks}
	switch e.kind {
	case kindKey:
		e.key.Code = p.asInt()
		e.key.Char = rune(p.asInt())
		e.key.Down = p.asBool()
	case kindPointer:
		e.ptr.Button = p.asInt()
		e.ptr.Down = p.asBool()
		e.ptr.X = p.asInt()
		e.ptr.Y = p.asInt()
		e.ptr.DX = p.asInt()
		e.ptr.DY = p.asInt()
		e.ptr.Wheel = p.asInt()
	case kindPos:
		e.x = p.asInt()
		e.y = p.asInt()
	case kindGrab, kindFocus:
		e.flag = p.asBool()
	}
	if p.err != nil {
		return e, curated.Errorf(MalformedTranscript, line, p.err)
	}

	return e, nil
}

type fieldParser struct {
	toks []string
	err  error
}

func (p *fieldParser) next() string {
	s := p.toks[0]
	p.toks = p.toks[1:]
	return s
}

func (p *fieldParser) asInt() int {
	s := p.next()
	if p.err != nil {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		p.err = err
	}
	return v
}

func (p *fieldParser) asBool() bool {
	s := p.next()
	if p.err != nil {
		return false
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		p.err = err
	}
	return v
}
