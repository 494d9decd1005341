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

// Package modalflag wraps the flag package of the standard library and adds
// program modes. A mode is a special argument that changes which flags and
// arguments are expected by the rest of the command line. For example, the
// framepoll command is run in one of several modes, each selecting a different
// source of input:
//
//	framepoll -log TERM
//	framepoll PLAYBACK -repeat session.transcript
//
// Modes and flags are parsed in layers. Each layer begins with NewMode() (or
// NewArgs() for the first layer), adds the flags and sub-modes that are valid
// at that point, and is then parsed with Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("SDL", "TERM")
//	verbose := md.AddBool("log", false, "echo log entries")
//	r, err := md.Parse()
//	switch r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "TERM":
//		md.NewMode()
//		addr := md.AddString("addr", "", "address")
//		...
//	}
//
// The first sub-mode in the list is the default mode and is selected when the
// next argument is not a known mode. Mode comparisons are case insensitive and
// the value returned by Mode() is always upper case.
package modalflag
