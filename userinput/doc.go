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

// Package userinput is the boundary between the hardware (or whatever is
// pretending to be the hardware) and the input package. It defines the
// transitions that a hardware source reports and the interfaces that a
// source must implement.
//
// It can be thought of as a translation layer. Packages such as sdlpoll and
// termpoll translate the events of a particular system into the types
// defined here. The input package never sees the underlying system.
//
// The Buffer type is a thread-safe implementation of the Source interface
// that can be filled from another goroutine. It is useful for sources that
// receive events asynchronously, and for testing.
//
// The SDL implementation was the first implementation and so there will be a
// bias towards that system.
package userinput
