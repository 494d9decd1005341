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

// Package macro implements a userinput.Source that plays a macro script. It
// is useful for driving an Input without any hardware at all, for example
// when checking how an application responds to a particular sequence of
// input.
//
// A macro file begins with two header lines, the identifier and the version:
//
//	framepollmacro
//	1
//
// Each following line is a single instruction. Instructions are executed in
// order until a WAIT instruction, which ends the frame. Execution continues
// when the number of frames given to WAIT have passed. If no value is given
// the number of frames defaults to 60.
//
//	WAIT [frames]
//
// Loops are made with DO and LOOP. Loops can be nested. The loop name is
// optional. When a loop is named the current count can be used as an
// argument to a numeric parameter with the % symbol.
//
//	DO count [name]
//		...
//	LOOP
//
// Keys are named with the names returned by input.KeyName(). Transitions made
// with TYPE carry the character. Transitions made by the other instructions
// do not.
//
//	PRESS key
//	RELEASE key
//	TAP key
//	TYPE text
//
// Pointer instructions. Coordinates are raw coordinates with the origin in
// the bottom-left corner of the view. Buttons are numbered from zero.
//
//	MOVE x y
//	MOUSEDOWN button
//	MOUSEUP button
//	CLICK button
//	WHEEL change
//
// State instructions.
//
//	FOCUS
//	UNFOCUS
//	GRAB
//	UNGRAB
//	QUIT
//
// Lines can be commented by prefixing the line with two dashes (--). Leading
// and trailing white space is ignored.
//
// Any error in a macro script results in a log entry and the end of the
// macro. The error is available with the Err() function.
package macro
