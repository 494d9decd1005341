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

// Package ttypoll is an implementation of userinput.Source that reads key
// presses from a raw mode tty. It is the simplest of the sources and has no
// pointer and no controllers. It is always focused.
//
// As with any terminal, there are no key releases. Every key results in a
// press and a release in the same frame.
package ttypoll
