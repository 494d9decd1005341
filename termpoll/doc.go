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

// Package termpoll is an implementation of userinput.Source for a terminal,
// using the tcell package.
//
// Terminals do not report key releases. Every key event results in a press
// and a release in the same frame. Mouse buttons are reported as a mask of the
// buttons that are down and are converted into individual transitions.
//
// Pointer positions are measured in cells.
package termpoll
