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

package modalflag

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
)

// separates modes in the string returned by Path()
const modeSeparator = "/"

// ParseResult is returned by the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// command line processing should continue. if sub-modes were added then
	// Mode() will return the selected mode
	ParseContinue ParseResult = iota

	// help was requested and has been written to the Output field
	ParseHelp

	// the error returned by Parse() says what went wrong
	ParseError
)

// Modes is a layered command line parser. The zero value is not ready for use
// until NewArgs() has been called.
type Modes struct {
	// help messages are written to Output. nothing is written if Output is nil
	Output io.Writer

	args    []string
	argsIdx int

	// flags and sub-modes for the current layer. recreated by NewMode()
	flags    *flag.FlagSet
	subModes []string
	help     string

	// every mode selected so far
	path []string
}

// NewArgs begins parsing of a new list of arguments. Usually os.Args[1:].
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode begins a new layer of flags and sub-modes. Arguments consumed by
// the previous call to Parse() are not seen again.
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.flags.Usage = func() {}
	md.flags.SetOutput(io.Discard)
	md.subModes = md.subModes[:0]
	md.help = ""
}

// AddSubModes adds to the list of modes that may be selected by the next
// argument. The first mode to be added is the default mode.
func (md *Modes) AddSubModes(modes ...string) {
	for _, m := range modes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AdditionalHelp is printed after the list of flags and modes when help is
// requested.
func (md *Modes) AdditionalHelp(help string) {
	md.help = help
}

// Mode returns the most recently selected mode. Returns the empty string if
// no mode has been selected.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every mode selected so far.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

func (md *Modes) String() string {
	return md.Path()
}

// Parse the flags of the current layer followed by the optional mode
// selector.
func (md *Modes) Parse() (ParseResult, error) {
	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			md.writeHelp()
			return ParseHelp, nil
		}

		// an unknown flag may belong to the default mode. if there are no modes
		// then it is an error
		if len(md.subModes) == 0 {
			return ParseError, fmt.Errorf("modalflag: %w", err)
		}
		md.path = append(md.path, md.subModes[0])
		return ParseContinue, nil
	}

	// the flag package stops at the first non-flag argument
	md.argsIdx = len(md.args) - md.flags.NArg()

	if len(md.subModes) > 0 {
		mode := md.subModes[0]
		arg := strings.ToUpper(md.flags.Arg(0))
		for _, m := range md.subModes {
			if m == arg {
				mode = m
				md.argsIdx++
				break // for loop
			}
		}
		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// RemainingArgs returns the arguments that were not consumed by Parse() as
// either a flag or as a mode selector.
func (md *Modes) RemainingArgs() []string {
	return md.args[md.argsIdx:]
}

// GetArg returns the numbered argument of RemainingArgs(). Returns the empty
// string if there is no such argument.
func (md *Modes) GetArg(i int) string {
	rem := md.RemainingArgs()
	if i < 0 || i >= len(rem) {
		return ""
	}
	return rem[i]
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddDuration flag for next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// Visit calls fn for every flag that has been set in the current layer, in
// lexicographical order.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}
