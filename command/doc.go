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

// Package command maps controls to named commands. A control is a key, a
// mouse button or a part of a controller. More than one control can be bound
// to the same command.
//
// A Provider listens to an input.Input and tracks the state of every bound
// command. The state can be queried with IsCommandControlDown() and
// IsCommandControlPressed(), or a Listener can be added to the Provider to
// be notified when a command's control is pressed or released.
//
// Bindings can be saved to and loaded from a file in the same format as the
// prefs package.
package command
